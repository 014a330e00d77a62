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

package maybe

import (
	"reflect"
	"testing"
)

func TestSome_And_None(t *testing.T) {
	s := Some(7)
	if !s.IsPresent() {
		t.Fatal("Some must be present")
	}
	if v, ok := s.Get(); !ok || v != 7 {
		t.Fatalf("Get() = %v, %v", v, ok)
	}

	n := None[int]()
	if n.IsPresent() {
		t.Fatal("None must be absent")
	}
	if v, ok := n.Get(); ok || v != 0 {
		t.Fatalf("Get() = %v, %v", v, ok)
	}
}

func TestZeroValue_IsNone(t *testing.T) {
	var m Maybe[string]
	if m.IsPresent() {
		t.Fatal("zero Maybe must be absent")
	}
}

func TestSome_NilPointer_IsPresent(t *testing.T) {
	// A present nil is not the same thing as absence.
	m := Some[*int](nil)
	if !m.IsPresent() {
		t.Fatal("Some(nil) must be present")
	}
	if v, ok := m.Get(); !ok || v != nil {
		t.Fatalf("Get() = %v, %v", v, ok)
	}
	if None[*int]().IsPresent() {
		t.Fatal("None must stay absent")
	}
}

func TestFromPtr(t *testing.T) {
	v := 5
	if m := FromPtr(&v); !m.IsPresent() || m.OrZero() != 5 {
		t.Fatal("FromPtr(&v) mismatch")
	}
	if m := FromPtr[int](nil); m.IsPresent() {
		t.Fatal("FromPtr(nil) must be absent")
	}
}

func TestAccessors(t *testing.T) {
	s := Some("x")
	n := None[string]()

	if s.OrZero() != "x" || n.OrZero() != "" {
		t.Fatal("OrZero mismatch")
	}
	if s.OrElse("d") != "x" || n.OrElse("d") != "d" {
		t.Fatal("OrElse mismatch")
	}
	if p := s.Ptr(); p == nil || *p != "x" {
		t.Fatal("Ptr mismatch")
	}
	if n.Ptr() != nil {
		t.Fatal("Ptr on absent must be nil")
	}
	if s.Raw() != any("x") || n.Raw() != nil {
		t.Fatal("Raw mismatch")
	}
	if s.MustGet() != "x" {
		t.Fatal("MustGet mismatch")
	}
}

func TestMustGet_PanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustGet on absent value must panic")
		}
	}()
	None[int]().MustGet()
}

func TestValueType(t *testing.T) {
	if got := Some(1.5).ValueType(); got != reflect.TypeFor[float64]() {
		t.Fatalf("ValueType() = %v", got)
	}
}

func TestRestore(t *testing.T) {
	var m Maybe[int]
	if err := m.Restore(true, 3); err != nil {
		t.Fatalf("Restore unexpected error: %v", err)
	}
	if v, ok := m.Get(); !ok || v != 3 {
		t.Fatalf("restored = %v, %v", v, ok)
	}

	// Absence wins regardless of the value argument.
	if err := m.Restore(false, 9); err != nil {
		t.Fatalf("Restore unexpected error: %v", err)
	}
	if m.IsPresent() {
		t.Fatal("Restore(false, ...) must produce the absent variant")
	}

	if err := m.Restore(true, "wrong"); err == nil {
		t.Fatal("Restore with mismatched value type must fail")
	}
}
