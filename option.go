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

package dresult

import "dirpx.dev/dresult/reason"

// Option is a functional option for constructing a Result. It always takes a
// Result and returns a (possibly new) Result.
type Option[T any] func(Result[T]) Result[T]

// WithSuccessOption appends a success reason on construction.
// Intended to be used with Ok(...).
func WithSuccessOption[T any](s *reason.Success) Option[T] {
	return func(r Result[T]) Result[T] {
		return r.WithSuccess(s)
	}
}

// WithSuccessesOption appends multiple success reasons on construction, in
// order. Intended to be used with Ok(...).
func WithSuccessesOption[T any](ss ...*reason.Success) Option[T] {
	return func(r Result[T]) Result[T] {
		for _, s := range ss {
			r = r.WithSuccess(s)
		}
		return r
	}
}
