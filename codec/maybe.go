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

// maybeConverter handles one concrete Maybe instantiation.
//
// Wire shape:
//
//	{ "hasValue": bool, "value"?: T }
//
// The value property is omitted entirely (not written as null) when absent,
// so "no value" stays distinguishable from "a present null" for nullable
// element types.
type maybeConverter struct {
	elem reflect.Type
}

// Encode writes v, which must satisfy MaybeContainer.
func (c *maybeConverter) Encode(enc *jsontext.Encoder, v any) error {
	m, ok := v.(MaybeContainer)
	if !ok {
		return &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String("hasValue")); err != nil {
		return err
	}
	present := m.IsPresent()
	if err := enc.WriteToken(jsontext.Bool(present)); err != nil {
		return err
	}
	if present {
		if err := enc.WriteToken(jsontext.String("value")); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, m.Raw()); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

// Decode reads one Maybe object into v, which must satisfy MaybeRestorer.
//
// hasValue is required; its absence is a *FormatError. When hasValue is
// false the canonical absent variant is produced regardless of any
// accompanying value property: the discriminant is authoritative.
func (c *maybeConverter) Decode(dec *jsontext.Decoder, v any) error {
	m, ok := v.(MaybeRestorer)
	if !ok {
		return &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}
	if err := readObjectStart(dec); err != nil {
		return err
	}

	var (
		present     bool
		presentSeen bool
		rawValue    jsontext.Value
	)
	for dec.PeekKind() != '}' {
		name, err := readPropertyName(dec)
		if err != nil {
			return err
		}
		switch name {
		case "hasValue":
			if present, err = readBool(dec, "hasValue"); err != nil {
				return err
			}
			presentSeen = true
		case "value":
			if rawValue, err = readBufferedValue(dec); err != nil {
				return err
			}
		default:
			if err := skipValue(dec); err != nil {
				return err
			}
		}
	}
	if err := readObjectEnd(dec); err != nil {
		return err
	}

	if !presentSeen {
		return formatErrf("maybe object is missing the %q discriminant", "hasValue")
	}
	if !present {
		if err := m.Restore(false, nil); err != nil {
			return wrapFormat(err, "restoring maybe")
		}
		return nil
	}

	var value any
	if rawValue != nil {
		ptr := reflect.New(c.elem)
		if err := json.Unmarshal(rawValue, ptr.Interface(), dec.Options()); err != nil {
			return wrapFormat(err, "decoding maybe value as %s", c.elem)
		}
		value = ptr.Elem().Interface()
	}
	if err := m.Restore(true, value); err != nil {
		return wrapFormat(err, "restoring maybe")
	}
	return nil
}
