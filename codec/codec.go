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
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Option is a functional option for configuring the codec installation.
type Option func(*config)

type config struct {
	subtypes *SubtypeRegistry
}

// WithSubtypes opts in to concrete error-subtype reconstruction on decode.
//
// Without it (the default) the wire "type" property of an error reason is
// read and discarded, and every decoded error is the base *reason.Error.
// Passing a registry changes only the reasons whose type name it knows; all
// other behavior is unchanged.
func WithSubtypes(reg *SubtypeRegistry) Option {
	return func(c *config) {
		c.subtypes = reg
	}
}

// Options is the registration entry point: it installs the three dispatch
// factories (Result, Maybe, Union) into the jsonv2 serializer and returns
// the combined options to pass to json.Marshal / json.Unmarshal.
//
// The returned options are immutable and safe to build once and share:
//
//	var wire = codec.Options()
//	...
//	b, err := json.Marshal(v, wire)
//	err = json.Unmarshal(b, &v, wire)
func Options(opts ...Option) json.Options {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	reg := NewRegistry(cfg.subtypes)
	return json.JoinOptions(
		json.WithMarshalers(marshalers(reg)),
		json.WithUnmarshalers(unmarshalers(reg)),
	)
}

// Marshal encodes v with the container converters installed. It is shorthand
// for json.Marshal(v, Options(opts...)).
func Marshal(v any, opts ...Option) ([]byte, error) {
	return json.Marshal(v, Options(opts...))
}

// Unmarshal decodes data into v with the container converters installed. It
// is shorthand for json.Unmarshal(data, v, Options(opts...)).
func Unmarshal(data []byte, v any, opts ...Option) error {
	return json.Unmarshal(data, v, Options(opts...))
}

// marshalers builds the encode-side dispatch factories. Matching is by
// interface satisfaction, so one factory covers every instantiation of its
// family.
func marshalers(reg Registry) *json.Marshalers {
	return json.JoinMarshalers(
		json.MarshalToFunc(func(enc *jsontext.Encoder, v ResultContainer) error {
			conv, err := reg.Create(containerType(v))
			if err != nil {
				return err
			}
			return conv.Encode(enc, v)
		}),
		json.MarshalToFunc(func(enc *jsontext.Encoder, v MaybeContainer) error {
			conv, err := reg.Create(containerType(v))
			if err != nil {
				return err
			}
			return conv.Encode(enc, v)
		}),
		json.MarshalToFunc(func(enc *jsontext.Encoder, v UnionContainer) error {
			conv, err := reg.Create(containerType(v))
			if err != nil {
				return err
			}
			return conv.Encode(enc, v)
		}),
	)
}

// unmarshalers builds the decode-side dispatch factories. The decode target
// arrives as a pointer to the container, which is exactly the restorer
// surface the converters construct through.
func unmarshalers(reg Registry) *json.Unmarshalers {
	return json.JoinUnmarshalers(
		json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v ResultRestorer) error {
			conv, err := reg.Create(containerType(v))
			if err != nil {
				return err
			}
			return conv.Decode(dec, v)
		}),
		json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v MaybeRestorer) error {
			conv, err := reg.Create(containerType(v))
			if err != nil {
				return err
			}
			return conv.Decode(dec, v)
		}),
		json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v UnionRestorer) error {
			conv, err := reg.Create(containerType(v))
			if err != nil {
				return err
			}
			return conv.Decode(dec, v)
		}),
	)
}
