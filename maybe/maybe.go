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

// Package maybe provides an immutable optional-value container.
//
// Unlike a bare pointer, Maybe distinguishes "no value" from "a present nil"
// for nullable element types, and that distinction survives serialization
// through dresult/codec (the wire object simply omits the value slot when
// absent).
package maybe

import (
	"fmt"
	"reflect"
)

// Maybe holds either one value of T or nothing.
//
// The zero value of Maybe[T] is the absent variant, which makes it safe to
// embed in structs without explicit initialization.
type Maybe[T any] struct {
	present bool
	value   T
}

// Some constructs a present Maybe carrying v. Note that v may be the zero
// value of T (including a nil pointer): Some(nil) is present and remains
// distinguishable from None.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{present: true, value: v}
}

// None constructs the canonical absent Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr lifts a pointer into a Maybe: nil becomes None, otherwise the
// pointee is copied into a present Maybe.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsPresent reports whether a value is held.
func (m Maybe[T]) IsPresent() bool { return m.present }

// Get returns the held value and whether it is present.
// For the absent variant it returns the zero value of T and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// MustGet returns the held value and panics when absent.
func (m Maybe[T]) MustGet() T {
	if !m.present {
		panic("maybe: MustGet on absent value")
	}
	return m.value
}

// OrZero returns the held value, or the zero value of T when absent.
func (m Maybe[T]) OrZero() T { return m.value }

// OrElse returns the held value, or def when absent.
func (m Maybe[T]) OrElse(def T) T {
	if !m.present {
		return def
	}
	return m.value
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (m Maybe[T]) Ptr() *T {
	if !m.present {
		return nil
	}
	v := m.value
	return &v
}

// Raw returns the held value as an untyped any, or nil when absent.
// It never panics; this is the accessor the codec uses during encoding.
func (m Maybe[T]) Raw() any {
	if !m.present {
		return nil
	}
	return m.value
}

// ValueType returns the reflect descriptor of the element type T. The codec
// uses it to decode the value slot without knowing T statically.
func (Maybe[T]) ValueType() reflect.Type {
	return reflect.TypeFor[T]()
}

// Restore rebuilds a Maybe in place from decoded parts. It is the
// constructor the codec uses after a decode pass; business code should use
// Some/None instead.
//
// When present is false the value argument is ignored entirely and the
// canonical absent variant is produced.
func (m *Maybe[T]) Restore(present bool, value any) error {
	if !present {
		*m = Maybe[T]{}
		return nil
	}
	var v T
	if value != nil {
		tv, ok := value.(T)
		if !ok {
			return fmt.Errorf("maybe: cannot restore %T value from %T", v, value)
		}
		v = tv
	}
	*m = Maybe[T]{present: true, value: v}
	return nil
}
