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
	"bytes"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
)

// readObjectStart consumes the next token and requires it to open an object.
func readObjectStart(dec *jsontext.Decoder) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return wrapFormat(err, "reading object start")
	}
	if tok.Kind() != '{' {
		return formatErrf("expected object start, got %q", tok.Kind().String())
	}
	return nil
}

// readObjectEnd consumes the closing '}' after a property loop has drained
// the object.
func readObjectEnd(dec *jsontext.Decoder) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return wrapFormat(err, "reading object end")
	}
	if tok.Kind() != '}' {
		return formatErrf("expected object end, got %q", tok.Kind().String())
	}
	return nil
}

// readPropertyName consumes and returns the next property name.
func readPropertyName(dec *jsontext.Decoder) (string, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return "", wrapFormat(err, "reading property name")
	}
	if tok.Kind() != '"' {
		return "", formatErrf("expected property name, got %q", tok.Kind().String())
	}
	return tok.String(), nil
}

// readBool consumes a boolean scalar for the named property.
func readBool(dec *jsontext.Decoder, prop string) (bool, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return false, wrapFormat(err, "reading %q", prop)
	}
	if k := tok.Kind(); k != 't' && k != 'f' {
		return false, formatErrf("property %q must be a boolean, got %q", prop, k.String())
	}
	return tok.Bool(), nil
}

// readString consumes a string scalar for the named property.
func readString(dec *jsontext.Decoder, prop string) (string, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return "", wrapFormat(err, "reading %q", prop)
	}
	if tok.Kind() != '"' {
		return "", formatErrf("property %q must be a string, got %q", prop, tok.Kind().String())
	}
	return tok.String(), nil
}

// readInt consumes an integer scalar for the named property. Fractional and
// exponent forms are rejected rather than truncated: a discriminant that is
// not exactly an integer is a malformed payload.
func readInt(dec *jsontext.Decoder, prop string) (int64, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return 0, wrapFormat(err, "reading %q", prop)
	}
	if tok.Kind() != '0' {
		return 0, formatErrf("property %q must be a number, got %q", prop, tok.Kind().String())
	}
	// For number tokens String returns the raw JSON text, so ParseInt sees
	// "1.5" or "1e300" verbatim and fails instead of coercing.
	n, err := strconv.ParseInt(tok.String(), 10, 64)
	if err != nil {
		return 0, formatErrf("property %q must be an integer, got %s", prop, tok.String())
	}
	return n, nil
}

// readBufferedValue captures the next value, whatever its shape, as an
// untyped intermediate tree. The decoder's internal buffer is only valid
// until the next read, so the value is cloned.
//
// This is the first half of the two-pass strategy used for order-independent
// decoding: buffer now, decode once the dispatch key is known.
func readBufferedValue(dec *jsontext.Decoder) (jsontext.Value, error) {
	raw, err := dec.ReadValue()
	if err != nil {
		return nil, wrapFormat(err, "buffering value")
	}
	return jsontext.Value(bytes.Clone(raw)), nil
}

// skipValue discards the next value. Used for unknown properties, which the
// decoders tolerate for forward compatibility.
func skipValue(dec *jsontext.Decoder) error {
	if err := dec.SkipValue(); err != nil {
		return wrapFormat(err, "skipping unknown property")
	}
	return nil
}
