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

// Package dresult provides algebraic value containers for dirpx services:
// the Result success-or-failure container defined here, plus the optional
// and tagged-union containers in the maybe and union subpackages. The codec
// subpackage round-trips all of them through a single JSON wire format, and
// grpcx/httpx adapt failures to transport-level responses.
package dresult

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/dresult/reason"
)

// Result is the canonical success-or-failure container for dirpx.
//
// It carries:
//   - a value of T, present only in the successful variant;
//   - error reasons: at least one when failed, none when successful;
//   - success reasons: annotations that may be present on either variant
//     (a later failure keeps the successes accrued before it).
//
// The central invariant is: IsFailed() is true if and only if at least one
// error-kind reason is present. All constructors and mutation helpers
// preserve it, and decoding through dresult/codec enforces it.
//
// Result values are immutable. All WithX helpers return a shallow copy, so
// instances can be safely shared across goroutines and modified in a
// functional style.
type Result[T any] struct {
	ok    bool
	value T
	errs  []reason.ErrorReason
	notes []*reason.Success
}

var (
	// ErrNoErrorReason is returned (or panicked, from Fail) when a failed
	// Result would end up with zero error reasons.
	ErrNoErrorReason = errors.New("dresult: failed result requires at least one error reason")

	// ErrSuccessWithErrors is returned when a successful Result would end up
	// carrying error reasons, which violates the failed-state invariant.
	ErrSuccessWithErrors = errors.New("dresult: successful result cannot carry error reasons")
)

// Ok constructs a successful Result carrying v.
//
// Usage:
//
//	return dresult.Ok(user,
//	    dresult.WithSuccessOption[User](reason.NewSuccess("loaded from cache")),
//	)
func Ok[T any](v T, opts ...Option[T]) Result[T] {
	r := Result[T]{ok: true, value: v}
	for _, opt := range opts {
		r = opt(r)
	}
	return r
}

// Fail constructs a failed Result. The non-variadic first argument forces at
// least one error reason at compile time; a nil first reason panics, because
// it is always a programmer error.
func Fail[T any](first reason.ErrorReason, rest ...reason.ErrorReason) Result[T] {
	if first == nil {
		panic("dresult: nil error reason in Fail")
	}
	errs := make([]reason.ErrorReason, 0, 1+len(rest))
	errs = append(errs, first)
	for _, e := range rest {
		if e == nil {
			continue
		}
		errs = append(errs, e)
	}
	return Result[T]{errs: errs}
}

// FailMsg is shorthand for Fail with a single base error reason built from msg.
func FailMsg[T any](msg string) Result[T] {
	return Fail[T](reason.NewError(msg))
}

// IsSuccess reports whether the Result is in the successful variant.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailed reports whether the Result carries at least one error reason.
func (r Result[T]) IsFailed() bool { return !r.ok }

// Get returns the carried value and whether the Result is successful.
// For a failed Result it returns the zero value of T and false.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// MustGet returns the carried value and panics when the Result is failed.
// Use Get when the state is not known at the call site.
func (r Result[T]) MustGet() T {
	if !r.ok {
		panic(fmt.Sprintf("dresult: MustGet on failed result: %v", r.errs))
	}
	return r.value
}

// Raw returns the carried value as an untyped any, or nil when failed.
// It never panics; this is the accessor the codec uses during encoding.
func (r Result[T]) Raw() any {
	if !r.ok {
		return nil
	}
	return r.value
}

// Errors returns the error reasons, in insertion order. Empty when
// successful. The returned slice is the Result's own storage and is treated
// as immutable; callers must not modify it.
func (r Result[T]) Errors() []reason.ErrorReason { return r.errs }

// Successes returns the success reasons, in insertion order. May be
// non-empty on either variant. The returned slice is treated as immutable.
func (r Result[T]) Successes() []*reason.Success { return r.notes }

// WithSuccess returns a shallow copy of r with one more success reason
// appended. The original Result is not modified. A nil reason is ignored.
func (r Result[T]) WithSuccess(s *reason.Success) Result[T] {
	if s == nil {
		return r
	}
	cp := r
	cp.notes = appendCopied(cp.notes, s)
	return cp
}

// WithError returns a failed shallow copy of r with the given error reason
// appended. Success reasons accrued so far are kept; the value (if any) is
// dropped, so the failed-state invariant holds. A nil reason is ignored.
func (r Result[T]) WithError(e reason.ErrorReason) Result[T] {
	if e == nil {
		return r
	}
	cp := r
	cp.ok = false
	var zero T
	cp.value = zero
	cp.errs = appendCopied(cp.errs, e)
	return cp
}

// ValueType returns the reflect descriptor of the element type T. The codec
// uses it to decode the value slot without knowing T statically.
func (Result[T]) ValueType() reflect.Type {
	return reflect.TypeFor[T]()
}

// Restore rebuilds a Result in place from decoded parts. It is the
// constructor the codec uses after a decode pass; business code should use
// Ok/Fail instead.
//
// The caller hands over ownership of both slices. value must be assignable
// to T (a nil value yields the zero value of T). Restore enforces the
// failed-state invariant and rejects inconsistent parts.
func (r *Result[T]) Restore(ok bool, value any, errs []reason.ErrorReason, notes []*reason.Success) error {
	if ok && len(errs) > 0 {
		return ErrSuccessWithErrors
	}
	if !ok && len(errs) == 0 {
		return ErrNoErrorReason
	}
	var v T
	if ok && value != nil {
		tv, good := value.(T)
		if !good {
			return fmt.Errorf("dresult: cannot restore %T value from %T", v, value)
		}
		v = tv
	}
	*r = Result[T]{ok: ok, value: v, errs: errs, notes: notes}
	return nil
}

// appendCopied appends v to a fresh copy of s, leaving s untouched. This is
// what keeps WithSuccess/WithError copy-on-write.
func appendCopied[E any](s []E, v E) []E {
	cp := make([]E, len(s), len(s)+1)
	copy(cp, s)
	return append(cp, v)
}
