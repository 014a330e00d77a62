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

package reason

import (
	"errors"
	"strings"
)

// Kind is the canonical, validated classification of a reason.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// The set of kinds is closed: a reason either marks a success or an error.
// There is deliberately no "warning" or "info" middle ground, because the
// failed-state invariant of dresult.Result is defined purely in terms of
// error-kind reasons being present.
type Kind string

const (
	// KindSuccess marks a reason that annotates a successful (or partially
	// successful) operation. Success reasons never flip a Result into the
	// failed state.
	KindSuccess Kind = "success"

	// KindError marks a reason that explains a failure. A Result is failed
	// if and only if it carries at least one error-kind reason.
	KindError Kind = "error"
)

var (
	// ErrUnknownKind is returned when a string does not name one of the
	// closed set of reason kinds.
	ErrUnknownKind = errors.New("dresult: unknown reason kind")
)

// ParseKind takes a user-provided string, normalizes it (trim + lowercase)
// and validates it against the closed kind set.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindSuccess:
		return KindSuccess, nil
	case KindError:
		return KindError, nil
	}
	return "", ErrUnknownKind
}

// MustParseKind is the panic-on-error variant of ParseKind. It is useful for
// declaring package-level constants in var blocks.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate checks whether k is a member of the closed kind set.
func (k Kind) Validate() error {
	if k != KindSuccess && k != KindError {
		return ErrUnknownKind
	}
	return nil
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}
