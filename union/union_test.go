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

package union

import (
	"reflect"
	"strings"
	"testing"
)

func TestUnion2_Slots(t *testing.T) {
	a := NewUnion2A[string, int]("hello")
	if a.Index() != 0 || !a.IsA() || a.IsB() {
		t.Fatal("slot A discriminant mismatch")
	}
	if v, ok := a.A(); !ok || v != "hello" {
		t.Fatalf("A() = %v, %v", v, ok)
	}
	if _, ok := a.B(); ok {
		t.Fatal("B() must report false on slot A")
	}
	if a.Raw() != any("hello") {
		t.Fatalf("Raw() = %v", a.Raw())
	}

	b := NewUnion2B[string, int](9)
	if b.Index() != 1 || !b.IsB() {
		t.Fatal("slot B discriminant mismatch")
	}
	if v, ok := b.B(); !ok || v != 9 {
		t.Fatalf("B() = %v, %v", v, ok)
	}
}

func TestUnion3_IdenticalAlternativeTypes(t *testing.T) {
	// The index, not the dynamic type, is the discriminant: a Union3 of
	// three identical types must keep the slot it was built with.
	u := NewUnion3B[int, int, int](5)
	if u.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", u.Index())
	}
	if _, ok := u.A(); ok {
		t.Fatal("A() must report false")
	}
	if v, ok := u.B(); !ok || v != 5 {
		t.Fatalf("B() = %v, %v", v, ok)
	}
	if _, ok := u.C(); ok {
		t.Fatal("C() must report false")
	}
}

func TestUnion4_Slots(t *testing.T) {
	u := NewUnion4D[int, string, bool, float64](1.25)
	if u.Index() != 3 || !u.IsD() {
		t.Fatal("slot D discriminant mismatch")
	}
	if v, ok := u.D(); !ok || v != 1.25 {
		t.Fatalf("D() = %v, %v", v, ok)
	}
}

func TestAlternativeTypes(t *testing.T) {
	got := (Union3[string, int, bool]{}).AlternativeTypes()
	want := []reflect.Type{
		reflect.TypeFor[string](),
		reflect.TypeFor[int](),
		reflect.TypeFor[bool](),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AlternativeTypes() = %v, want %v", got, want)
	}
}

func TestRestore(t *testing.T) {
	var u Union2[string, int]
	if err := u.Restore(1, 7); err != nil {
		t.Fatalf("Restore unexpected error: %v", err)
	}
	if v, ok := u.B(); !ok || v != 7 {
		t.Fatalf("restored B() = %v, %v", v, ok)
	}
}

func TestRestore_IndexOutOfRange(t *testing.T) {
	var u Union2[string, int]
	err := u.Restore(5, "x")
	if err == nil {
		t.Fatal("Restore(5) must fail on a two-alternative union")
	}
	if !strings.Contains(err.Error(), "[0, 1]") {
		t.Fatalf("error %q must name the valid range", err)
	}
	if err := u.Restore(-1, "x"); err == nil {
		t.Fatal("Restore(-1) must fail")
	}
}

func TestRestore_WrongSlotType(t *testing.T) {
	var u Union2[string, int]
	if err := u.Restore(0, 42); err == nil {
		t.Fatal("Restore with a value of the wrong slot type must fail")
	}
}

func TestRestore_NilValueYieldsZero(t *testing.T) {
	var u Union3[string, *int, bool]
	if err := u.Restore(1, nil); err != nil {
		t.Fatalf("Restore unexpected error: %v", err)
	}
	if v, ok := u.B(); !ok || v != nil {
		t.Fatalf("restored B() = %v, %v, want nil pointer", v, ok)
	}
}
