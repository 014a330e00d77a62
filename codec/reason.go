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
	"sort"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"dirpx.dev/dresult/reason"
)

// Reason wire shape: { "type": string, "message": string, "tags": { ... } }.
//
// The type property is written for information only. On decode it is read
// and, unless a subtype registry knows it, discarded: every decoded error is
// the base *reason.Error and every decoded success the base *reason.Success.
// Concrete subtype identity never survives a round trip by default.

// encodeReason writes one reason object. Tag keys are sorted so the output
// is deterministic regardless of map iteration order; insertion order of
// tags carries no meaning on the wire.
func encodeReason(enc *jsontext.Encoder, r reason.Reason) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String("type")); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String(r.TypeName())); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String("message")); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String(r.Message())); err != nil {
		return err
	}
	if err := enc.WriteToken(jsontext.String("tags")); err != nil {
		return err
	}
	if err := encodeTags(enc, r.Tags()); err != nil {
		return err
	}
	return enc.WriteToken(jsontext.EndObject)
}

func encodeTags(enc *jsontext.Encoder, tags map[string]any) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := enc.WriteToken(jsontext.String(k)); err != nil {
			return err
		}
		// Tag values go through the general serializer, so nested containers
		// used as tag values re-enter dispatch.
		if err := json.MarshalEncode(enc, tags[k]); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

// encodeReasonList writes an ordered array of reason objects.
func encodeReasonList[R reason.Reason](enc *jsontext.Encoder, rs []R) error {
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}
	for _, r := range rs {
		if err := encodeReason(enc, r); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndArray)
}

// decodedReason is the field bag one reason object decodes into before the
// concrete reason value is built.
type decodedReason struct {
	typeName string
	message  string
	tags     map[string]any
}

// decodeReasonParts reads one reason object into a field bag. Properties may
// arrive in any order; unknown ones are skipped. Tag values are decoded as
// opaque untyped-tree entries (the general serializer's any mapping), since
// their original static type cannot be recovered from the wire alone.
func decodeReasonParts(dec *jsontext.Decoder) (decodedReason, error) {
	var parts decodedReason
	if err := readObjectStart(dec); err != nil {
		return parts, err
	}
	for dec.PeekKind() != '}' {
		name, err := readPropertyName(dec)
		if err != nil {
			return parts, err
		}
		switch name {
		case "type":
			if parts.typeName, err = readString(dec, "type"); err != nil {
				return parts, err
			}
		case "message":
			if parts.message, err = readString(dec, "message"); err != nil {
				return parts, err
			}
		case "tags":
			if dec.PeekKind() == 'n' {
				if err := skipValue(dec); err != nil {
					return parts, err
				}
				break
			}
			if err := json.UnmarshalDecode(dec, &parts.tags); err != nil {
				return parts, wrapFormat(err, "decoding tags")
			}
		default:
			if err := skipValue(dec); err != nil {
				return parts, err
			}
		}
	}
	return parts, readObjectEnd(dec)
}

// decodeErrorReason reads one reason object as an error-kind reason.
//
// The wire type name resolves through the subtype registry when one is
// installed; otherwise (the default) it is discarded and the base kind is
// built. This loss is contractual, not accidental.
func decodeErrorReason(dec *jsontext.Decoder, subtypes *SubtypeRegistry) (reason.ErrorReason, error) {
	parts, err := decodeReasonParts(dec)
	if err != nil {
		return nil, err
	}
	if subtypes != nil {
		if rebuilt, ok := subtypes.rebuild(parts.typeName, parts.message, parts.tags); ok {
			return rebuilt, nil
		}
	}
	return reason.NewError(parts.message).WithTags(parts.tags), nil
}

// decodeSuccessReason reads one reason object as a success-kind reason.
// The wire type name is always discarded for successes.
func decodeSuccessReason(dec *jsontext.Decoder) (*reason.Success, error) {
	parts, err := decodeReasonParts(dec)
	if err != nil {
		return nil, err
	}
	return reason.NewSuccess(parts.message).WithTags(parts.tags), nil
}

// decodeErrorList reads an ordered array of error reasons. A null is
// tolerated and treated as an empty list.
func decodeErrorList(dec *jsontext.Decoder, subtypes *SubtypeRegistry) ([]reason.ErrorReason, error) {
	if dec.PeekKind() == 'n' {
		return nil, skipValue(dec)
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, wrapFormat(err, "reading error list")
	}
	if tok.Kind() != '[' {
		return nil, formatErrf("property %q must be an array, got %q", "errors", tok.Kind().String())
	}
	var out []reason.ErrorReason
	for dec.PeekKind() != ']' {
		r, err := decodeErrorReason(dec, subtypes)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if _, err := dec.ReadToken(); err != nil {
		return nil, wrapFormat(err, "reading error list end")
	}
	return out, nil
}

// decodeSuccessList reads an ordered array of success reasons. A null is
// tolerated and treated as an empty list.
func decodeSuccessList(dec *jsontext.Decoder) ([]*reason.Success, error) {
	if dec.PeekKind() == 'n' {
		return nil, skipValue(dec)
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, wrapFormat(err, "reading success list")
	}
	if tok.Kind() != '[' {
		return nil, formatErrf("property %q must be an array, got %q", "successes", tok.Kind().String())
	}
	var out []*reason.Success
	for dec.PeekKind() != ']' {
		r, err := decodeSuccessReason(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if _, err := dec.ReadToken(); err != nil {
		return nil, wrapFormat(err, "reading success list end")
	}
	return out, nil
}
