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

// Package httpx writes dresult containers as HTTP JSON responses using the
// codec wire format.
package httpx

import (
	"net/http"

	"github.com/go-json-experiment/json"

	"dirpx.dev/dresult/codec"
	"dirpx.dev/dresult/reason"
)

// StatusFunc resolves the HTTP status for a failed result from its error
// reasons. It is only consulted on failure.
type StatusFunc func(errs []reason.ErrorReason) int

// Writer is a thin adapter that turns a dresult container into an HTTP
// response in the codec wire format.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the reasons is exposed as-is. Higher-level handlers should apply
// policies if needed.
type Writer struct {
	// Status maps a failure to an HTTP status code. When nil, failures are
	// written as 422 Unprocessable Entity.
	Status StatusFunc

	// Options extend codec encoding, typically codec.WithSubtypes for the
	// matching reader.
	Options []codec.Option
}

// WriteResult serializes a result container and writes it with a status of
// 200 on success or the mapped failure status otherwise. A serialization
// failure downgrades to 500 with an empty body, since at that point no
// well-formed envelope can be produced.
func (w Writer) WriteResult(rw http.ResponseWriter, r codec.ResultContainer) {
	st := http.StatusOK
	if !r.IsSuccess() {
		st = w.failureStatus(r.Errors())
	}
	w.write(rw, st, r)
}

// WriteMaybe serializes an optional container. Absence is still a 200: the
// envelope itself says there is no value.
func (w Writer) WriteMaybe(rw http.ResponseWriter, m codec.MaybeContainer) {
	w.write(rw, http.StatusOK, m)
}

// WriteUnion serializes a union container with a 200 status.
func (w Writer) WriteUnion(rw http.ResponseWriter, u codec.UnionContainer) {
	w.write(rw, http.StatusOK, u)
}

func (w Writer) failureStatus(errs []reason.ErrorReason) int {
	if w.Status == nil {
		return http.StatusUnprocessableEntity
	}
	return w.Status(errs)
}

func (w Writer) write(rw http.ResponseWriter, st int, v any) {
	b, err := json.Marshal(v, codec.Options(w.Options...))
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(st)
	_, _ = rw.Write(b)
}
