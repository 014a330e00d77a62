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

// Package codec serializes and deserializes the dresult container family
// (dresult.Result, maybe.Maybe, union.Union2/3/4) as JSON.
//
// The containers carry no self-describing tag, so the codec writes an
// explicit discriminant per family:
//
//	Result:  { "isSuccess": bool, "value": T | absent, "errors": [...], "successes": [...] }
//	Maybe:   { "hasValue": bool, "value"?: T }     // "value" omitted entirely when absent
//	Union_N: { "index": int, "value": T_index }
//	Reason:  { "type": string, "message": string, "tags": { ... } }
//
// Dispatch is runtime: a Registry recognizes, from a reflect.Type alone,
// which family (if any) the type instantiates and produces a converter bound
// to the concrete element types. Options() installs the three dispatch
// factories into the jsonv2 serializer, which is also what the converters
// re-enter for every nested element payload, so containers nest arbitrarily.
//
// Decoding is order-independent: a union's payload cannot be typed until its
// index has been read, so payloads are buffered as untyped jsontext.Value
// and decoded in a second pass. Invalid input fails atomically with a
// *FormatError; no partially-valid container is ever produced.
//
// One contract is deliberately lossy: the "type" property of a decoded error
// reason is read and discarded, so every error comes back as the base
// *reason.Error, never the concrete subtype that was encoded. Callers that
// need subtype fidelity can opt in per call with WithSubtypes.
//
// The codec holds no mutable state across calls, never logs and never
// retries; converters are safe for concurrent use as long as each call owns
// its own encoder or decoder.
package codec
