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

// Reason is the common read surface of all reason types.
//
// It carries:
//   - Kind: success or error classification (required);
//   - Message: human-oriented description (what happened);
//   - Tags: arbitrary key/value payload (for logging / API bodies);
//   - TypeName: the declared name of the concrete reason type.
//
// TypeName exists for informational wire output only. Decoders read it and
// discard it; they always reconstruct the base Success/Error types.
type Reason interface {
	// Kind reports whether this reason marks a success or an error.
	Kind() Kind

	// Message returns the human-readable explanation.
	Message() string

	// Tags returns the structured key/value context attached to the reason.
	//
	// The returned map is the reason's own storage and is treated as
	// immutable: WithTag/WithTags always copy it. Callers must not mutate it.
	Tags() map[string]any

	// TypeName returns the declared name of the concrete reason type,
	// e.g. "Error" or "Exception". Written to the wire for information only.
	TypeName() string
}

// ErrorReason is the interface satisfied by every error-kind reason.
//
// It extends Reason with the built-in error interface, so error reasons can
// be returned, wrapped and matched like ordinary Go errors. The base *Error
// type and all its subtypes (e.g. *Exception) satisfy it.
type ErrorReason interface {
	Reason
	error
}

// Success is the base success-kind reason.
//
// Success instances are immutable: all WithX helpers return a shallow copy,
// so they can be safely shared across goroutines and Result values.
type Success struct {
	msg  string
	tags map[string]any
}

// NewSuccess constructs a success reason with the given message.
func NewSuccess(msg string) *Success {
	return &Success{msg: msg}
}

// Kind implements Reason. It always returns KindSuccess.
func (s *Success) Kind() Kind { return KindSuccess }

// Message implements Reason.
func (s *Success) Message() string { return s.msg }

// Tags implements Reason.
func (s *Success) Tags() map[string]any { return s.tags }

// TypeName implements Reason.
func (s *Success) TypeName() string { return "Success" }

// WithTag returns a shallow copy of s with one extra key/value in Tags.
// The original reason is not modified.
func (s *Success) WithTag(k string, v any) *Success {
	cp := *s
	cp.tags = tagsWith(cp.tags, k, v)
	return &cp
}

// WithTags returns a shallow copy of s with all provided kv merged into Tags,
// with kv taking precedence on key conflicts.
func (s *Success) WithTags(kv map[string]any) *Success {
	if len(kv) == 0 {
		return s
	}
	cp := *s
	cp.tags = tagsMerged(cp.tags, kv)
	return &cp
}

// Error is the base error-kind reason.
//
// It is deliberately small: a message plus an open tag map. Subtypes may add
// in-memory behavior (causes, stack context, domain accessors), but the wire
// representation of every error reason is exactly this shape.
//
// Error instances are immutable: all WithX helpers return a shallow copy.
type Error struct {
	msg  string
	tags map[string]any
}

// NewError constructs a base error reason with the given message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the built-in error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.msg
}

// Kind implements Reason. It always returns KindError.
func (e *Error) Kind() Kind { return KindError }

// Message implements Reason.
func (e *Error) Message() string { return e.msg }

// Tags implements Reason.
func (e *Error) Tags() map[string]any { return e.tags }

// TypeName implements Reason.
func (e *Error) TypeName() string { return "Error" }

// WithTag returns a shallow copy of e with one extra key/value in Tags.
// The original reason is not modified.
func (e *Error) WithTag(k string, v any) *Error {
	cp := *e
	cp.tags = tagsWith(cp.tags, k, v)
	return &cp
}

// WithTags returns a shallow copy of e with all provided kv merged into Tags,
// with kv taking precedence on key conflicts.
func (e *Error) WithTags(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	cp.tags = tagsMerged(cp.tags, kv)
	return &cp
}

// Exception is an error reason that wraps an underlying Go error.
//
// It exists so that business code can lift an ordinary error into a Result
// without losing the original for errors.Is / errors.As chains. On the wire
// an Exception is indistinguishable from a base Error carrying the same
// message and tags; decoding always yields *Error, never *Exception.
type Exception struct {
	msg   string
	tags  map[string]any
	cause error
}

// NewException lifts an ordinary Go error into an error reason. The message
// is taken from cause.Error(); the cause itself stays reachable via Unwrap.
func NewException(cause error) *Exception {
	ex := &Exception{cause: cause}
	if cause != nil {
		ex.msg = cause.Error()
	}
	return ex
}

// Error implements the built-in error interface.
func (e *Exception) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.msg
}

// Unwrap returns the wrapped cause, enabling errors.Is / errors.As chains.
func (e *Exception) Unwrap() error { return e.cause }

// Kind implements Reason. It always returns KindError.
func (e *Exception) Kind() Kind { return KindError }

// Message implements Reason.
func (e *Exception) Message() string { return e.msg }

// Tags implements Reason.
func (e *Exception) Tags() map[string]any { return e.tags }

// TypeName implements Reason.
func (e *Exception) TypeName() string { return "Exception" }

// WithTag returns a shallow copy of e with one extra key/value in Tags.
// The original reason is not modified.
func (e *Exception) WithTag(k string, v any) *Exception {
	cp := *e
	cp.tags = tagsWith(cp.tags, k, v)
	return &cp
}

// WithTags returns a shallow copy of e with all provided kv merged into Tags,
// with kv taking precedence on key conflicts.
func (e *Exception) WithTags(kv map[string]any) *Exception {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	cp.tags = tagsMerged(cp.tags, kv)
	return &cp
}

// tagsWith copies tags and adds one key/value. The input map is never
// modified.
func tagsWith(tags map[string]any, k string, v any) map[string]any {
	if len(tags) == 0 {
		return map[string]any{k: v}
	}
	m := make(map[string]any, len(tags)+1)
	for k0, v0 := range tags {
		m[k0] = v0
	}
	m[k] = v
	return m
}

// tagsMerged copies tags and merges kv on top. Neither input map is modified.
func tagsMerged(tags, kv map[string]any) map[string]any {
	m := make(map[string]any, len(tags)+len(kv))
	for k0, v0 := range tags {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	return m
}
