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
	"strings"
	"testing"

	"dirpx.dev/dresult/union"
)

func TestUnion2_Encode(t *testing.T) {
	b := mustMarshal(t, union.NewUnion2B[string, int](7))
	want := `{"index":1,"value":7}`
	if string(b) != want {
		t.Fatalf("encoded = %s, want %s", b, want)
	}
}

func TestUnion2_RoundTrip(t *testing.T) {
	var u union.Union2[string, int]
	if err := Unmarshal(mustMarshal(t, union.NewUnion2A[string, int]("hi")), &u); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if u.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", u.Index())
	}
	if v, ok := u.A(); !ok || v != "hi" {
		t.Fatalf("A() = %v, %v", v, ok)
	}
}

func TestUnion3_IdenticalAlternativesKeepSlot(t *testing.T) {
	// All three alternatives are structurally identical; only the index can
	// tell them apart, and it must survive the round trip.
	orig := union.NewUnion3B[int, int, int](5)

	var u union.Union3[int, int, int]
	if err := Unmarshal(mustMarshal(t, orig), &u); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if u.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", u.Index())
	}
	if v, ok := u.B(); !ok || v != 5 {
		t.Fatalf("B() = %v, %v", v, ok)
	}
}

func TestUnion4_RoundTrip_StructAlternative(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	orig := union.NewUnion4C[int, string, point, bool](point{X: 1, Y: 2})

	var u union.Union4[int, string, point, bool]
	if err := Unmarshal(mustMarshal(t, orig), &u); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v, ok := u.C(); !ok || v != (point{X: 1, Y: 2}) {
		t.Fatalf("C() = %v, %v", v, ok)
	}
}

func TestUnion_Decode_ValueBeforeIndex(t *testing.T) {
	// The payload type is unknown until index arrives, so the value must be
	// buffered; both orders decode identically.
	inOrder := `{"index":1,"value":7}`
	reversed := `{"value":7,"index":1}`

	for _, payload := range []string{inOrder, reversed} {
		var u union.Union2[string, int]
		if err := Unmarshal([]byte(payload), &u); err != nil {
			t.Fatalf("Unmarshal(%s): %v", payload, err)
		}
		if v, ok := u.B(); !ok || v != 7 {
			t.Fatalf("decode(%s) B() = %v, %v", payload, v, ok)
		}
	}
}

func TestUnion_Decode_IndexOutOfRange(t *testing.T) {
	var u union.Union2[string, int]
	err := Unmarshal([]byte(`{"index":5,"value":1}`), &u)
	fe := wantFormatError(t, err)
	if !strings.Contains(fe.Error(), "[0, 1]") {
		t.Fatalf("error %q must name the valid range", fe)
	}
	// It must not clamp or silently default to slot 0.
	if v, ok := u.A(); ok && v != "" {
		t.Fatal("out-of-range index must not populate a slot")
	}

	var u2 union.Union2[string, int]
	wantFormatError(t, Unmarshal([]byte(`{"index":-1,"value":1}`), &u2))
}

func TestUnion_Decode_MissingIndex(t *testing.T) {
	var u union.Union2[string, int]
	wantFormatError(t, Unmarshal([]byte(`{"value":1}`), &u))
}

func TestUnion_Decode_MissingValue(t *testing.T) {
	var u union.Union2[string, int]
	wantFormatError(t, Unmarshal([]byte(`{"index":0}`), &u))
}

func TestUnion_Decode_UnknownPropertiesSkipped(t *testing.T) {
	var u union.Union2[string, int]
	if err := Unmarshal([]byte(`{"index":0,"hint":"x","value":"a"}`), &u); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v, ok := u.A(); !ok || v != "a" {
		t.Fatalf("A() = %v, %v", v, ok)
	}
}

func TestUnion_Decode_NonIntegerIndex(t *testing.T) {
	var u union.Union2[string, int]
	wantFormatError(t, Unmarshal([]byte(`{"index":"one","value":1}`), &u))
}

func TestUnion_Decode_FractionalIndex(t *testing.T) {
	// A fractional index must fail, not truncate to a slot.
	var u union.Union2[string, int]
	wantFormatError(t, Unmarshal([]byte(`{"index":1.5,"value":7}`), &u))
	if v, ok := u.B(); ok && v != 0 {
		t.Fatal("fractional index must not populate a slot")
	}

	// Exponent forms are rejected as non-integral, not saturated into the
	// range check.
	var u2 union.Union2[string, int]
	fe := wantFormatError(t, Unmarshal([]byte(`{"index":1e300,"value":7}`), &u2))
	if !strings.Contains(fe.Error(), "integer") {
		t.Fatalf("error %q must report a non-integer index", fe)
	}
}

func TestUnion_RoundTrip_NestedUnion(t *testing.T) {
	inner := union.NewUnion2B[bool, string]("deep")
	orig := union.NewUnion3C[int, bool, union.Union2[bool, string]](inner)

	var u union.Union3[int, bool, union.Union2[bool, string]]
	if err := Unmarshal(mustMarshal(t, orig), &u); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got, ok := u.C()
	if !ok {
		t.Fatal("outer slot lost")
	}
	if v, ok := got.B(); !ok || v != "deep" {
		t.Fatalf("inner B() = %v, %v", v, ok)
	}
}
