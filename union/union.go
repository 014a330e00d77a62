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

// Package union provides immutable N-ary tagged unions for N = 2, 3, 4.
//
// A union holds exactly one value out of N statically declared alternatives.
// Alternatives are identified by a zero-based index in declaration order:
// slot A is index 0, B is 1, C is 2, D is 3. The index (not the dynamic type
// of the value) is the discriminant, so two structurally identical
// alternative types remain distinguishable.
//
// Constructors are per-slot (NewUnion2A, NewUnion3C, ...), which makes it
// impossible to build an instance with more or less than one populated
// alternative.
package union

import (
	"fmt"
	"reflect"
)

// restoreValue asserts value against T for the Restore constructors.
// A nil value yields the zero value of T.
func restoreValue[T any](value any) (T, error) {
	var v T
	if value == nil {
		return v, nil
	}
	tv, ok := value.(T)
	if !ok {
		return v, fmt.Errorf("union: cannot restore %T alternative from %T", v, value)
	}
	return tv, nil
}

// Union2 holds exactly one of two alternatives.
//
// The zero value is alternative A holding the zero value of TA.
type Union2[TA, TB any] struct {
	idx int
	val any
}

// NewUnion2A constructs a Union2 populated at slot A (index 0).
func NewUnion2A[TA, TB any](v TA) Union2[TA, TB] {
	return Union2[TA, TB]{idx: 0, val: v}
}

// NewUnion2B constructs a Union2 populated at slot B (index 1).
func NewUnion2B[TA, TB any](v TB) Union2[TA, TB] {
	return Union2[TA, TB]{idx: 1, val: v}
}

// Index returns the zero-based index of the populated alternative.
func (u Union2[TA, TB]) Index() int { return u.idx }

// IsA reports whether slot A is populated.
func (u Union2[TA, TB]) IsA() bool { return u.idx == 0 }

// IsB reports whether slot B is populated.
func (u Union2[TA, TB]) IsB() bool { return u.idx == 1 }

// A returns the slot-A value and whether slot A is populated.
func (u Union2[TA, TB]) A() (TA, bool) {
	var v TA
	if u.idx != 0 {
		return v, false
	}
	v, _ = u.val.(TA)
	return v, true
}

// B returns the slot-B value and whether slot B is populated.
func (u Union2[TA, TB]) B() (TB, bool) {
	var v TB
	if u.idx != 1 {
		return v, false
	}
	v, _ = u.val.(TB)
	return v, true
}

// Raw returns the populated value as an untyped any. It never panics; this
// is the accessor the codec uses during encoding.
func (u Union2[TA, TB]) Raw() any { return u.val }

// AlternativeTypes returns the reflect descriptors of the alternative types,
// in slot order. The codec uses them to decode the value slot once the index
// is known.
func (Union2[TA, TB]) AlternativeTypes() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[TA](), reflect.TypeFor[TB]()}
}

// Restore rebuilds the union in place from decoded parts. It validates the
// index range and the value type for the selected slot; business code should
// use the NewUnion2X constructors instead.
func (u *Union2[TA, TB]) Restore(index int, value any) error {
	switch index {
	case 0:
		v, err := restoreValue[TA](value)
		if err != nil {
			return err
		}
		*u = Union2[TA, TB]{idx: 0, val: v}
	case 1:
		v, err := restoreValue[TB](value)
		if err != nil {
			return err
		}
		*u = Union2[TA, TB]{idx: 1, val: v}
	default:
		return fmt.Errorf("union: index %d out of range [0, 1]", index)
	}
	return nil
}

// Union3 holds exactly one of three alternatives.
//
// The zero value is alternative A holding the zero value of TA.
type Union3[TA, TB, TC any] struct {
	idx int
	val any
}

// NewUnion3A constructs a Union3 populated at slot A (index 0).
func NewUnion3A[TA, TB, TC any](v TA) Union3[TA, TB, TC] {
	return Union3[TA, TB, TC]{idx: 0, val: v}
}

// NewUnion3B constructs a Union3 populated at slot B (index 1).
func NewUnion3B[TA, TB, TC any](v TB) Union3[TA, TB, TC] {
	return Union3[TA, TB, TC]{idx: 1, val: v}
}

// NewUnion3C constructs a Union3 populated at slot C (index 2).
func NewUnion3C[TA, TB, TC any](v TC) Union3[TA, TB, TC] {
	return Union3[TA, TB, TC]{idx: 2, val: v}
}

// Index returns the zero-based index of the populated alternative.
func (u Union3[TA, TB, TC]) Index() int { return u.idx }

// IsA reports whether slot A is populated.
func (u Union3[TA, TB, TC]) IsA() bool { return u.idx == 0 }

// IsB reports whether slot B is populated.
func (u Union3[TA, TB, TC]) IsB() bool { return u.idx == 1 }

// IsC reports whether slot C is populated.
func (u Union3[TA, TB, TC]) IsC() bool { return u.idx == 2 }

// A returns the slot-A value and whether slot A is populated.
func (u Union3[TA, TB, TC]) A() (TA, bool) {
	var v TA
	if u.idx != 0 {
		return v, false
	}
	v, _ = u.val.(TA)
	return v, true
}

// B returns the slot-B value and whether slot B is populated.
func (u Union3[TA, TB, TC]) B() (TB, bool) {
	var v TB
	if u.idx != 1 {
		return v, false
	}
	v, _ = u.val.(TB)
	return v, true
}

// C returns the slot-C value and whether slot C is populated.
func (u Union3[TA, TB, TC]) C() (TC, bool) {
	var v TC
	if u.idx != 2 {
		return v, false
	}
	v, _ = u.val.(TC)
	return v, true
}

// Raw returns the populated value as an untyped any. It never panics.
func (u Union3[TA, TB, TC]) Raw() any { return u.val }

// AlternativeTypes returns the reflect descriptors of the alternative types,
// in slot order.
func (Union3[TA, TB, TC]) AlternativeTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[TA](),
		reflect.TypeFor[TB](),
		reflect.TypeFor[TC](),
	}
}

// Restore rebuilds the union in place from decoded parts. It validates the
// index range and the value type for the selected slot.
func (u *Union3[TA, TB, TC]) Restore(index int, value any) error {
	switch index {
	case 0:
		v, err := restoreValue[TA](value)
		if err != nil {
			return err
		}
		*u = Union3[TA, TB, TC]{idx: 0, val: v}
	case 1:
		v, err := restoreValue[TB](value)
		if err != nil {
			return err
		}
		*u = Union3[TA, TB, TC]{idx: 1, val: v}
	case 2:
		v, err := restoreValue[TC](value)
		if err != nil {
			return err
		}
		*u = Union3[TA, TB, TC]{idx: 2, val: v}
	default:
		return fmt.Errorf("union: index %d out of range [0, 2]", index)
	}
	return nil
}

// Union4 holds exactly one of four alternatives.
//
// The zero value is alternative A holding the zero value of TA.
type Union4[TA, TB, TC, TD any] struct {
	idx int
	val any
}

// NewUnion4A constructs a Union4 populated at slot A (index 0).
func NewUnion4A[TA, TB, TC, TD any](v TA) Union4[TA, TB, TC, TD] {
	return Union4[TA, TB, TC, TD]{idx: 0, val: v}
}

// NewUnion4B constructs a Union4 populated at slot B (index 1).
func NewUnion4B[TA, TB, TC, TD any](v TB) Union4[TA, TB, TC, TD] {
	return Union4[TA, TB, TC, TD]{idx: 1, val: v}
}

// NewUnion4C constructs a Union4 populated at slot C (index 2).
func NewUnion4C[TA, TB, TC, TD any](v TC) Union4[TA, TB, TC, TD] {
	return Union4[TA, TB, TC, TD]{idx: 2, val: v}
}

// NewUnion4D constructs a Union4 populated at slot D (index 3).
func NewUnion4D[TA, TB, TC, TD any](v TD) Union4[TA, TB, TC, TD] {
	return Union4[TA, TB, TC, TD]{idx: 3, val: v}
}

// Index returns the zero-based index of the populated alternative.
func (u Union4[TA, TB, TC, TD]) Index() int { return u.idx }

// IsA reports whether slot A is populated.
func (u Union4[TA, TB, TC, TD]) IsA() bool { return u.idx == 0 }

// IsB reports whether slot B is populated.
func (u Union4[TA, TB, TC, TD]) IsB() bool { return u.idx == 1 }

// IsC reports whether slot C is populated.
func (u Union4[TA, TB, TC, TD]) IsC() bool { return u.idx == 2 }

// IsD reports whether slot D is populated.
func (u Union4[TA, TB, TC, TD]) IsD() bool { return u.idx == 3 }

// A returns the slot-A value and whether slot A is populated.
func (u Union4[TA, TB, TC, TD]) A() (TA, bool) {
	var v TA
	if u.idx != 0 {
		return v, false
	}
	v, _ = u.val.(TA)
	return v, true
}

// B returns the slot-B value and whether slot B is populated.
func (u Union4[TA, TB, TC, TD]) B() (TB, bool) {
	var v TB
	if u.idx != 1 {
		return v, false
	}
	v, _ = u.val.(TB)
	return v, true
}

// C returns the slot-C value and whether slot C is populated.
func (u Union4[TA, TB, TC, TD]) C() (TC, bool) {
	var v TC
	if u.idx != 2 {
		return v, false
	}
	v, _ = u.val.(TC)
	return v, true
}

// D returns the slot-D value and whether slot D is populated.
func (u Union4[TA, TB, TC, TD]) D() (TD, bool) {
	var v TD
	if u.idx != 3 {
		return v, false
	}
	v, _ = u.val.(TD)
	return v, true
}

// Raw returns the populated value as an untyped any. It never panics.
func (u Union4[TA, TB, TC, TD]) Raw() any { return u.val }

// AlternativeTypes returns the reflect descriptors of the alternative types,
// in slot order.
func (Union4[TA, TB, TC, TD]) AlternativeTypes() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[TA](),
		reflect.TypeFor[TB](),
		reflect.TypeFor[TC](),
		reflect.TypeFor[TD](),
	}
}

// Restore rebuilds the union in place from decoded parts. It validates the
// index range and the value type for the selected slot.
func (u *Union4[TA, TB, TC, TD]) Restore(index int, value any) error {
	switch index {
	case 0:
		v, err := restoreValue[TA](value)
		if err != nil {
			return err
		}
		*u = Union4[TA, TB, TC, TD]{idx: 0, val: v}
	case 1:
		v, err := restoreValue[TB](value)
		if err != nil {
			return err
		}
		*u = Union4[TA, TB, TC, TD]{idx: 1, val: v}
	case 2:
		v, err := restoreValue[TC](value)
		if err != nil {
			return err
		}
		*u = Union4[TA, TB, TC, TD]{idx: 2, val: v}
	case 3:
		v, err := restoreValue[TD](value)
		if err != nil {
			return err
		}
		*u = Union4[TA, TB, TC, TD]{idx: 3, val: v}
	default:
		return fmt.Errorf("union: index %d out of range [0, 3]", index)
	}
	return nil
}
