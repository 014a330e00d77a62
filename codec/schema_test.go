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
	"testing"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/reason"
)

func TestValidateResult(t *testing.T) {
	good := mustMarshal(t, dresult.Ok(5))
	if err := ValidateResult(good); err != nil {
		t.Fatalf("ValidateResult(encoded): %v", err)
	}

	bad := [][]byte{
		[]byte(`{"value":5}`),                      // missing isSuccess
		[]byte(`{"isSuccess":"yes"}`),              // wrong discriminant type
		[]byte(`{"isSuccess":false,"errors":{}}`),  // errors not an array
		[]byte(`{"isSuccess":true,"errors":[{}]}`), // reason missing message
	}
	for _, payload := range bad {
		if err := ValidateResult(payload); err == nil {
			t.Errorf("ValidateResult(%s) = nil, want error", payload)
		} else {
			wantFormatError(t, err)
		}
	}
}

func TestValidateMaybe(t *testing.T) {
	if err := ValidateMaybe([]byte(`{"hasValue":false}`)); err != nil {
		t.Fatalf("ValidateMaybe: %v", err)
	}
	if err := ValidateMaybe([]byte(`{"value":1}`)); err == nil {
		t.Fatal("missing hasValue must fail validation")
	}
}

func TestValidateUnion(t *testing.T) {
	if err := ValidateUnion([]byte(`{"index":1,"value":7}`), 2); err != nil {
		t.Fatalf("ValidateUnion: %v", err)
	}
	if err := ValidateUnion([]byte(`{"index":5,"value":7}`), 2); err == nil {
		t.Fatal("out-of-range index must fail validation")
	}
	if err := ValidateUnion([]byte(`{"value":7}`), 3); err == nil {
		t.Fatal("missing index must fail validation")
	}
	if err := ValidateUnion([]byte(`{"index":0,"value":7}`), 7); err == nil {
		t.Fatal("unsupported arity must fail")
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if err := ValidateResult([]byte(`{`)); err == nil {
		t.Fatal("malformed JSON must fail validation")
	}
}

func TestValidate_AgreesWithEncoder(t *testing.T) {
	payloads := [][]byte{
		mustMarshal(t, dresult.FailMsg[string]("e1")),
		mustMarshal(t, dresult.Ok("v",
			dresult.WithSuccessOption[string](reason.NewSuccess("s").WithTag("k", "v")),
		)),
	}
	for _, p := range payloads {
		if err := ValidateResult(p); err != nil {
			t.Errorf("encoder output %s rejected by schema: %v", p, err)
		}
	}
}
