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
	"reflect"

	"github.com/go-json-experiment/json/jsontext"

	"dirpx.dev/dresult/reason"
)

// ResultContainer is the read surface a success-or-failure container exposes
// to the codec. dresult.Result[T] satisfies it for every T.
type ResultContainer interface {
	// IsSuccess is the discriminant predicate.
	IsSuccess() bool
	// Raw returns the carried value untyped, or nil when failed. It must
	// never panic.
	Raw() any
	// Errors returns the error reasons in insertion order.
	Errors() []reason.ErrorReason
	// Successes returns the success reasons in insertion order.
	Successes() []*reason.Success
	// ValueType is the reflect descriptor of the element type.
	ValueType() reflect.Type
}

// ResultRestorer is the constructor surface the codec uses to rebuild a
// decoded Result. *dresult.Result[T] satisfies it for every T.
type ResultRestorer interface {
	ResultContainer
	Restore(ok bool, value any, errs []reason.ErrorReason, notes []*reason.Success) error
}

// MaybeContainer is the read surface an optional-value container exposes to
// the codec. maybe.Maybe[T] satisfies it for every T.
type MaybeContainer interface {
	// IsPresent is the discriminant predicate.
	IsPresent() bool
	// Raw returns the held value untyped, or nil when absent. It must never
	// panic.
	Raw() any
	// ValueType is the reflect descriptor of the element type.
	ValueType() reflect.Type
}

// MaybeRestorer is the constructor surface the codec uses to rebuild a
// decoded Maybe. *maybe.Maybe[T] satisfies it for every T.
type MaybeRestorer interface {
	MaybeContainer
	Restore(present bool, value any) error
}

// UnionContainer is the read surface an N-ary tagged union exposes to the
// codec. union.Union2/3/4 satisfy it.
type UnionContainer interface {
	// Index is the discriminant: the zero-based slot of the populated
	// alternative.
	Index() int
	// Raw returns the populated value untyped. It must never panic.
	Raw() any
	// AlternativeTypes returns the reflect descriptors of the alternatives
	// in slot order; its length is the union's arity.
	AlternativeTypes() []reflect.Type
}

// UnionRestorer is the constructor surface the codec uses to rebuild a
// decoded union. *union.Union2/3/4 satisfy it.
type UnionRestorer interface {
	UnionContainer
	Restore(index int, value any) error
}

// Converter encodes and decodes one concrete container instantiation.
//
// Encode borrows v read-only for the duration of the call; Decode fully owns
// construction and writes the fresh instance through the restorer interface
// of v (a pointer to the container). A Converter holds no mutable state and
// may be used from multiple goroutines, provided each call owns its stream.
type Converter interface {
	Encode(enc *jsontext.Encoder, v any) error
	Decode(dec *jsontext.Decoder, v any) error
}

var (
	resultContainerType = reflect.TypeFor[ResultContainer]()
	resultRestorerType  = reflect.TypeFor[ResultRestorer]()
	maybeContainerType  = reflect.TypeFor[MaybeContainer]()
	maybeRestorerType   = reflect.TypeFor[MaybeRestorer]()
	unionContainerType  = reflect.TypeFor[UnionContainer]()
	unionRestorerType   = reflect.TypeFor[UnionRestorer]()
)

// Registry recognizes container instantiations from their runtime type
// descriptors and produces converters bound to the concrete element types.
//
// It is a pure, stateless function of the descriptor: repeated calls for the
// same type are idempotent, and the supported family set (Result, Maybe,
// Union of arity 2..4) is closed. There is deliberately no open-ended
// registration of new families.
type Registry struct {
	subtypes *SubtypeRegistry
}

// NewRegistry returns a registry with default behavior. A nil subtype
// registry keeps error-reason decoding lossy (base kind only).
func NewRegistry(subtypes *SubtypeRegistry) Registry {
	return Registry{subtypes: subtypes}
}

// CanHandle reports whether t is a generic instantiation of Result, Maybe,
// or a Union of arity 2, 3 or 4. t is the container type itself, not a
// pointer to it.
func (r Registry) CanHandle(t reflect.Type) bool {
	_, err := r.Create(t)
	return err == nil
}

// Create produces the converter matching t, bound to the element types
// extracted from the instantiation. Any other type, including a union shape
// of unsupported arity, fails with *UnsupportedTypeError.
func (r Registry) Create(t reflect.Type) (Converter, error) {
	if t == nil || t.Kind() == reflect.Pointer {
		return nil, &UnsupportedTypeError{Type: t}
	}
	pt := reflect.PointerTo(t)
	switch {
	case t.Implements(resultContainerType) && pt.Implements(resultRestorerType):
		elem := reflect.Zero(t).Interface().(ResultContainer).ValueType()
		return &resultConverter{elem: elem, subtypes: r.subtypes}, nil

	case t.Implements(maybeContainerType) && pt.Implements(maybeRestorerType):
		elem := reflect.Zero(t).Interface().(MaybeContainer).ValueType()
		return &maybeConverter{elem: elem}, nil

	case t.Implements(unionContainerType) && pt.Implements(unionRestorerType):
		alts := reflect.Zero(t).Interface().(UnionContainer).AlternativeTypes()
		if len(alts) < 2 || len(alts) > 4 {
			return nil, &UnsupportedTypeError{Type: t}
		}
		return &unionConverter{alts: alts}, nil
	}
	return nil, &UnsupportedTypeError{Type: t}
}

// containerType normalizes the dynamic type of a container value handed to
// the dispatch factories: pointers are unwrapped to the container type the
// Registry works with.
func containerType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
