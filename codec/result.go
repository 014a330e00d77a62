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

	"dirpx.dev/dresult/reason"
)

// resultConverter handles one concrete Result instantiation.
//
// Wire shape:
//
//	{ "isSuccess": bool, "value": T | absent, "errors": [Reason...], "successes": [Reason...] }
//
// The value slot is present exactly when the result is successful; the codec
// never touches the value accessor of a failed result.
type resultConverter struct {
	elem     reflect.Type
	subtypes *SubtypeRegistry
}

// Encode writes v, which must satisfy ResultContainer.
func (c *resultConverter) Encode(enc *jsontext.Encoder, v any) error {
	r, ok := v.(ResultContainer)
	if !ok {
		return &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String("isSuccess")); err != nil {
		return err
	}
	success := r.IsSuccess()
	if err := enc.WriteToken(jsontext.Bool(success)); err != nil {
		return err
	}
	if success {
		if err := enc.WriteToken(jsontext.String("value")); err != nil {
			return err
		}
		// Element payloads go through the general serializer, so nested
		// containers re-enter dispatch.
		if err := json.MarshalEncode(enc, r.Raw()); err != nil {
			return err
		}
	}
	if err := enc.WriteToken(jsontext.String("errors")); err != nil {
		return err
	}
	if err := encodeReasonList(enc, r.Errors()); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String("successes")); err != nil {
		return err
	}
	if err := encodeReasonList(enc, r.Successes()); err != nil {
		return err
	}
	return enc.WriteToken(jsontext.EndObject)
}

// Decode reads one Result object into v, which must satisfy ResultRestorer.
//
// Properties may arrive in any order and unknown ones are skipped. The value
// slot is buffered untyped and only decoded, into the element type, once the
// whole object has been read and the discriminant is known; a value
// accompanying a failed result is ignored. Missing discriminant, a failed
// result without errors, or a successful one with errors all fail atomically
// with *FormatError.
func (c *resultConverter) Decode(dec *jsontext.Decoder, v any) error {
	r, ok := v.(ResultRestorer)
	if !ok {
		return &UnsupportedTypeError{Type: reflect.TypeOf(v)}
	}
	if err := readObjectStart(dec); err != nil {
		return err
	}

	var (
		success     bool
		successSeen bool
		rawValue    jsontext.Value
		errs        []reason.ErrorReason
		notes       []*reason.Success
	)
	for dec.PeekKind() != '}' {
		name, err := readPropertyName(dec)
		if err != nil {
			return err
		}
		switch name {
		case "isSuccess":
			if success, err = readBool(dec, "isSuccess"); err != nil {
				return err
			}
			successSeen = true
		case "value":
			if rawValue, err = readBufferedValue(dec); err != nil {
				return err
			}
		case "errors":
			if errs, err = decodeErrorList(dec, c.subtypes); err != nil {
				return err
			}
		case "successes":
			if notes, err = decodeSuccessList(dec); err != nil {
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

	if !successSeen {
		return formatErrf("result object is missing the %q discriminant", "isSuccess")
	}
	if !success && len(errs) == 0 {
		return formatErrf("failed result requires at least one error reason")
	}

	var value any
	if success && rawValue != nil {
		ptr := reflect.New(c.elem)
		if err := json.Unmarshal(rawValue, ptr.Interface(), dec.Options()); err != nil {
			return wrapFormat(err, "decoding result value as %s", c.elem)
		}
		value = ptr.Elem().Interface()
	}
	if err := r.Restore(success, value, errs, notes); err != nil {
		return wrapFormat(err, "restoring result")
	}
	return nil
}
