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
	"errors"
	"fmt"

	"dirpx.dev/dresult/reason"
)

// RebuildFunc builds a concrete error reason from the decoded wire parts.
// The tags map is owned by the callee.
type RebuildFunc func(message string, tags map[string]any) reason.ErrorReason

// SubtypeRegistry is the opt-in extension point for error-subtype fidelity.
//
// By default the codec discards the wire type name and rebuilds every error
// as the base *reason.Error. A SubtypeRegistry installed via WithSubtypes
// lets a deployment map known type names back to concrete reason types. Type
// names it does not know still fall back to the lossy default, so installing
// a registry never makes decoding stricter.
//
// Register all subtypes before handing the registry to WithSubtypes; the
// registry is not synchronized for concurrent mutation.
type SubtypeRegistry struct {
	rebuilders map[string]RebuildFunc
}

var (
	// ErrSubtypeRegistered is returned when a type name is registered twice.
	ErrSubtypeRegistered = errors.New("dresult: subtype already registered")

	// ErrSubtypeName is returned for an empty or nil registration.
	ErrSubtypeName = errors.New("dresult: invalid subtype registration")
)

// NewSubtypeRegistry returns an empty registry.
func NewSubtypeRegistry() *SubtypeRegistry {
	return &SubtypeRegistry{rebuilders: make(map[string]RebuildFunc)}
}

// Register maps a wire type name to a rebuild function. Registering the same
// name twice is an error: silently replacing a rebuilder is more likely to
// hide a wiring bug than to be intended.
func (r *SubtypeRegistry) Register(typeName string, fn RebuildFunc) error {
	if typeName == "" || fn == nil {
		return ErrSubtypeName
	}
	if _, dup := r.rebuilders[typeName]; dup {
		return fmt.Errorf("%w: %q", ErrSubtypeRegistered, typeName)
	}
	r.rebuilders[typeName] = fn
	return nil
}

// MustRegister is the panic-on-error variant of Register, for package-level
// wiring blocks.
func (r *SubtypeRegistry) MustRegister(typeName string, fn RebuildFunc) {
	if err := r.Register(typeName, fn); err != nil {
		panic(err)
	}
}

// rebuild resolves a wire type name, reporting whether it was known.
func (r *SubtypeRegistry) rebuild(typeName, message string, tags map[string]any) (reason.ErrorReason, bool) {
	fn, ok := r.rebuilders[typeName]
	if !ok {
		return nil, false
	}
	return fn(message, tags), true
}
