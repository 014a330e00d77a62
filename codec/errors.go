/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package codec

import (
	"fmt"
	"reflect"
)

// FormatError reports a malformed or incomplete wire payload: a missing
// discriminant, a missing value slot, an out-of-range union index, or a wrong
// structural token.
//
// A FormatError is always fatal to the decode call that raised it. The codec
// never retries or suppresses it, and never returns a partially-decoded
// container alongside it.
type FormatError struct {
	msg   string
	cause error
}

// formatErrf builds a FormatError with a formatted message. Every message is
// prefixed with "dresult:" so it is scannable in logs.
func formatErrf(format string, args ...any) *FormatError {
	return &FormatError{msg: "dresult: " + fmt.Sprintf(format, args...)}
}

// wrapFormat attaches an underlying decode error as the cause.
func wrapFormat(cause error, format string, args ...any) *FormatError {
	return &FormatError{msg: "dresult: " + fmt.Sprintf(format, args...), cause: cause}
}

// Error implements the built-in error interface.
func (e *FormatError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap returns the underlying cause (if any), enabling errors.Is /
// errors.As chains through the codec boundary.
func (e *FormatError) Unwrap() error { return e.cause }

// UnsupportedTypeError reports that the dispatch registry was asked to handle
// a type that is not an instantiation of Result, Maybe or Union2/3/4.
//
// Unlike FormatError this signals a caller or registration mistake, not a
// data problem.
type UnsupportedTypeError struct {
	Type reflect.Type
}

// Error implements the built-in error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("dresult: codec cannot handle type %s", e.Type)
}
