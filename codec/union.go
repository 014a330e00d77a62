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

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// unionConverter handles one concrete union instantiation. One algorithm
// covers every arity; the bound alternative-type list is what varies.
//
// Wire shape:
//
//	{ "index": int, "value": T_index }
//
// The value's decode type is unknown until the index has been read, and the
// wire guarantees no property order, so Decode buffers the value untyped and
// only gives it a type in a second pass. A single-pass typed reader cannot
// implement this contract.
type unionConverter struct {
	alts []reflect.Type
}

// Encode writes v, which must satisfy UnionContainer. The populated slot's
// predicate contract (exactly one alternative populated) is established by
// the union constructors and is not re-validated here.
func (c *unionConverter) Encode(enc *jsontext.Encoder, v any) error {
	u, ok := v.(UnionContainer)
	if !ok {
		return &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String("index")); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.Int(int64(u.Index()))); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String("value")); err != nil {
		return err
	}
	if err := json.MarshalEncode(enc, u.Raw()); err != nil {
		return err
	}
	return enc.WriteToken(jsontext.EndObject)
}

// Decode reads one union object into v, which must satisfy UnionRestorer.
//
// Both index and value are required. An index outside [0, arity-1] is a
// *FormatError naming the valid range; it is never clamped or defaulted.
func (c *unionConverter) Decode(dec *jsontext.Decoder, v any) error {
	u, ok := v.(UnionRestorer)
	if !ok {
		return &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}
	if err := readObjectStart(dec); err != nil {
		return err
	}

	var (
		index     int64
		indexSeen bool
		rawValue  jsontext.Value
		rawSeen   bool
	)
	for dec.PeekKind() != '}' {
		name, err := readPropertyName(dec)
		if err != nil {
			return err
		}
		switch name {
		case "index":
			if index, err = readInt(dec, "index"); err != nil {
				return err
			}
			indexSeen = true
		case "value":
			if rawValue, err = readBufferedValue(dec); err != nil {
				return err
			}
			rawSeen = true
		default:
			if err := skipValue(dec); err != nil {
				return err
			}
		}
	}
	if err := readObjectEnd(dec); err != nil {
		return err
	}

	if !indexSeen {
		return formatErrf("union object is missing the %q discriminant", "index")
	}
	if !rawSeen {
		return formatErrf("union object is missing the %q property", "value")
	}
	arity := len(c.alts)
	if index < 0 || index >= int64(arity) {
		return formatErrf("union index %d out of range [0, %d]", index, arity-1)
	}

	// Second pass: the dispatch key is known, give the buffered tree its type.
	ptr := reflect.New(c.alts[index])
	if err := json.Unmarshal(rawValue, ptr.Interface(), dec.Options()); err != nil {
		return wrapFormat(err, "decoding union alternative %d as %s", index, c.alts[index])
	}
	if err := u.Restore(int(index), ptr.Elem().Interface()); err != nil {
		return wrapFormat(err, "restoring union")
	}
	return nil
}
