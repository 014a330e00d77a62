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
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the wire envelopes. Consumers pulling container payloads
// off queues or caches can pre-validate the structural contract before
// spending a decode on them. The schemas check the envelope only: element
// values are application-specific and stay unconstrained, and unknown
// properties are allowed, matching the decoders' forward-compatibility
// policy.

const reasonSchemaDef = `{
	"type": "object",
	"required": ["message"],
	"properties": {
		"type": {"type": "string"},
		"message": {"type": "string"},
		"tags": {"type": ["object", "null"]}
	}
}`

// ResultSchema is the JSON Schema for the Result wire shape.
var ResultSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["isSuccess"],
	"properties": {
		"isSuccess": {"type": "boolean"},
		"errors": {"type": ["array", "null"], "items": ` + reasonSchemaDef + `},
		"successes": {"type": ["array", "null"], "items": ` + reasonSchemaDef + `}
	}
}`

// MaybeSchema is the JSON Schema for the Maybe wire shape.
var MaybeSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["hasValue"],
	"properties": {
		"hasValue": {"type": "boolean"}
	}
}`

// UnionSchema is the JSON Schema for the union wire shape. The index upper
// bound depends on the union's arity, which a schema for all arities cannot
// pin down; ValidateUnion adds the arity-specific bound.
var UnionSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["index", "value"],
	"properties": {
		"index": {"type": "integer", "minimum": 0}
	}
}`

var (
	resultSchema = mustSchema(ResultSchema)
	maybeSchema  = mustSchema(MaybeSchema)
	unionSchemas = map[int]*gojsonschema.Schema{
		2: mustSchema(unionSchemaForArity(2)),
		3: mustSchema(unionSchemaForArity(3)),
		4: mustSchema(unionSchemaForArity(4)),
	}
)

func unionSchemaForArity(arity int) string {
	return `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["index", "value"],
	"properties": {
		"index": {"type": "integer", "minimum": 0, "maximum": ` + fmt.Sprint(arity-1) + `}
	}
}`
}

func mustSchema(doc string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("dresult: invalid built-in schema: %v", err))
	}
	return s
}

// ValidateResult checks payload against the Result wire schema. A violation
// is reported as a *FormatError listing every failed constraint.
func ValidateResult(payload []byte) error {
	return validateSchema(resultSchema, payload)
}

// ValidateMaybe checks payload against the Maybe wire schema.
func ValidateMaybe(payload []byte) error {
	return validateSchema(maybeSchema, payload)
}

// ValidateUnion checks payload against the union wire schema for the given
// arity. Arities outside 2..4 are a caller mistake and fail with
// *UnsupportedTypeError semantics folded into a plain error, since there is
// no container type to report.
func ValidateUnion(payload []byte, arity int) error {
	s, ok := unionSchemas[arity]
	if !ok {
		return fmt.Errorf("dresult: no union of arity %d", arity)
	}
	return validateSchema(s, payload)
}

func validateSchema(s *gojsonschema.Schema, payload []byte) error {
	res, err := s.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return wrapFormat(err, "validating payload")
	}
	if res.Valid() {
		return nil
	}
	descs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		descs = append(descs, e.String())
	}
	return formatErrf("payload violates wire schema: %s", strings.Join(descs, "; "))
}
