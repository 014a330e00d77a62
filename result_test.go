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

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/dresult/reason"
)

func TestOk_Basics(t *testing.T) {
	r := Ok(42,
		WithSuccessOption[int](reason.NewSuccess("from cache")),
	)

	if !r.IsSuccess() || r.IsFailed() {
		t.Fatal("variant mismatch")
	}
	v, ok := r.Get()
	if !ok || v != 42 {
		t.Fatalf("Get() = %v, %v", v, ok)
	}
	if r.MustGet() != 42 {
		t.Fatal("MustGet mismatch")
	}
	if r.Raw() != any(42) {
		t.Fatalf("Raw() = %v", r.Raw())
	}
	if len(r.Errors()) != 0 {
		t.Fatal("successful result must carry no errors")
	}
	if len(r.Successes()) != 1 || r.Successes()[0].Message() != "from cache" {
		t.Fatal("success reason missing")
	}
}

func TestFail_Basics(t *testing.T) {
	r := Fail[string](reason.NewError("e1"), reason.NewError("e2"))

	if r.IsSuccess() || !r.IsFailed() {
		t.Fatal("variant mismatch")
	}
	if _, ok := r.Get(); ok {
		t.Fatal("Get on failed result must report false")
	}
	if r.Raw() != nil {
		t.Fatal("Raw on failed result must be nil")
	}
	if len(r.Errors()) != 2 || r.Errors()[0].Message() != "e1" {
		t.Fatalf("Errors() = %v", r.Errors())
	}
}

func TestFail_NilFirstPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Fail(nil) must panic")
		}
	}()
	Fail[int](nil)
}

func TestMustGet_PanicsWhenFailed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustGet on failed result must panic")
		}
	}()
	FailMsg[int]("nope").MustGet()
}

func TestWithError_FlipsToFailedKeepingSuccesses(t *testing.T) {
	ok := Ok("v").WithSuccess(reason.NewSuccess("step 1"))
	failed := ok.WithError(reason.NewError("step 2 broke"))

	if !ok.IsSuccess() {
		t.Fatal("original mutated")
	}
	if !failed.IsFailed() {
		t.Fatal("WithError must flip to failed")
	}
	if failed.Raw() != nil {
		t.Fatal("failed result must not expose a value")
	}
	if len(failed.Successes()) != 1 {
		t.Fatal("accrued successes must survive the failure")
	}
	if len(failed.Errors()) != 1 {
		t.Fatal("error reason missing")
	}
}

func TestWithSuccess_CopyOnWrite(t *testing.T) {
	r1 := Ok(1).WithSuccess(reason.NewSuccess("a"))
	r2 := r1.WithSuccess(reason.NewSuccess("b"))

	if len(r1.Successes()) != 1 || len(r2.Successes()) != 2 {
		t.Fatal("successes size mismatch")
	}
}

func TestValueType(t *testing.T) {
	if got := Ok("x").ValueType(); got != reflect.TypeFor[string]() {
		t.Fatalf("ValueType() = %v", got)
	}
	if got := (Result[*int]{}).ValueType(); got != reflect.TypeFor[*int]() {
		t.Fatalf("ValueType() = %v", got)
	}
}

func TestRestore(t *testing.T) {
	var r Result[int]
	if err := r.Restore(true, 5, nil, nil); err != nil {
		t.Fatalf("Restore(ok) unexpected error: %v", err)
	}
	if v, ok := r.Get(); !ok || v != 5 {
		t.Fatalf("restored = %v, %v", v, ok)
	}

	var f Result[int]
	errs := []reason.ErrorReason{reason.NewError("e1")}
	if err := f.Restore(false, nil, errs, nil); err != nil {
		t.Fatalf("Restore(failed) unexpected error: %v", err)
	}
	if !f.IsFailed() || len(f.Errors()) != 1 {
		t.Fatal("restored failed variant mismatch")
	}
}

func TestRestore_InvariantViolations(t *testing.T) {
	var r Result[int]
	if err := r.Restore(false, nil, nil, nil); !errors.Is(err, ErrNoErrorReason) {
		t.Fatalf("Restore(failed, no errors) error = %v, want ErrNoErrorReason", err)
	}
	errs := []reason.ErrorReason{reason.NewError("e")}
	if err := r.Restore(true, 1, errs, nil); !errors.Is(err, ErrSuccessWithErrors) {
		t.Fatalf("Restore(ok, with errors) error = %v, want ErrSuccessWithErrors", err)
	}
	if err := r.Restore(true, "not an int", nil, nil); err == nil {
		t.Fatal("Restore with mismatched value type must fail")
	}
}

func TestRestore_NilValueYieldsZero(t *testing.T) {
	var r Result[*int]
	if err := r.Restore(true, nil, nil, nil); err != nil {
		t.Fatalf("Restore unexpected error: %v", err)
	}
	if v, ok := r.Get(); !ok || v != nil {
		t.Fatalf("restored = %v, %v, want nil pointer", v, ok)
	}
}
