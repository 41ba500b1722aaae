/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fixparser

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

// buildMessage assembles a wire-correct message from body fields: BeginString
// prepended, BodyLength and CheckSum computed.
func buildMessage(t *testing.T, bodyFields ...string) string {
	t.Helper()
	body := strings.Join(bodyFields, SOH) + SOH
	buf := "8=FIX.4.4" + SOH + "9=" + strconv.Itoa(len(body)) + SOH + body
	return buf + "10=" + Checksum(buf) + SOH
}

func mustTokenize(t *testing.T, raw string) ([]RawField, string) {
	t.Helper()
	fields, normalized, err := Tokenize(raw, true, false)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	return fields, normalized
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		buf  string
		want string
	}{
		{"", "000"},
		{"\x01", "001"},
		{"A", "065"},
		{"AB", "131"},
		{strings.Repeat("\xff", 2), "254"},
	}
	for _, tc := range tests {
		if got := Checksum(tc.buf); got != tc.want {
			t.Errorf("Checksum(%q) = %s, want %s", tc.buf, got, tc.want)
		}
	}
}

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantTag int // 0 means valid
	}{
		{name: "valid boundaries", raw: "8=FIX.4.4\x0135=0\x0110=000\x01"},
		{name: "missing begin string", raw: "35=0\x0110=000\x01", wantTag: 8},
		{name: "missing checksum", raw: "8=FIX.4.4\x0135=0\x01", wantTag: 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields, _ := mustTokenize(t, tc.raw)
			err := validateStructure(fields)
			if tc.wantTag == 0 {
				if err != nil {
					t.Fatalf("expected valid structure, got %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if vErr.Tag != tc.wantTag {
				t.Errorf("got tag %d, want %d", vErr.Tag, tc.wantTag)
			}
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	valid := buildMessage(t, "35=0")
	fields, normalized := mustTokenize(t, valid)
	if err := verifyChecksum(normalized, fields); err != nil {
		t.Fatalf("valid message failed checksum: %v", err)
	}

	// Tamper with a body byte; the transmitted trailer no longer matches.
	tampered := strings.Replace(valid, "35=0", "35=1", 1)
	fields, normalized = mustTokenize(t, tampered)
	ckErr := verifyChecksum(normalized, fields)
	if ckErr == nil {
		t.Fatal("expected checksum mismatch, got nil")
	}
	if ckErr.Expected == ckErr.Actual {
		t.Errorf("expected and actual should differ: %s", ckErr.Expected)
	}
	if len(ckErr.Expected) != 3 {
		t.Errorf("expected checksum must be three digits, got %q", ckErr.Expected)
	}
}

func TestVerifyChecksumIncludesPrecedingDelimiter(t *testing.T) {
	// The delimiter terminating the field before "10=" belongs to the summed
	// range. Verify by recomputing by hand over everything before "10=".
	raw := buildMessage(t, "35=D", "55=EUR/USD")
	idx := strings.LastIndex(raw, "10=")
	manual := Checksum(raw[:idx])
	fields, normalized := mustTokenize(t, raw)
	if err := verifyChecksum(normalized, fields); err != nil {
		t.Fatalf("checksum mismatch: %v (manual %s)", err, manual)
	}
	if got := fields[len(fields)-1].Value; got != manual {
		t.Errorf("trailer %s does not match manual computation %s", got, manual)
	}
}

func TestVerifyBodyLength(t *testing.T) {
	t.Run("correct declared length", func(t *testing.T) {
		fields, normalized := mustTokenize(t, buildMessage(t, "35=0", "58=hello"))
		if err := verifyBodyLength(normalized, fields); err != nil {
			t.Fatalf("expected match, got %v", err)
		}
	})

	t.Run("wrong declared length", func(t *testing.T) {
		raw := "8=FIX.4.4\x019=500\x0135=0\x0110=000\x01"
		fields, normalized := mustTokenize(t, raw)
		blErr := verifyBodyLength(normalized, fields)
		if blErr == nil {
			t.Fatal("expected mismatch, got nil")
		}
		if blErr.Expected != 500 {
			t.Errorf("Expected = %d, want declared 500", blErr.Expected)
		}
		if blErr.Actual != len("35=0\x01") {
			t.Errorf("Actual = %d, want %d", blErr.Actual, len("35=0\x01"))
		}
	})

	t.Run("missing tag 9 is not checked", func(t *testing.T) {
		fields, normalized := mustTokenize(t, "8=FIX.4.4\x0135=0\x0110=000\x01")
		if err := verifyBodyLength(normalized, fields); err != nil {
			t.Fatalf("expected nil without tag 9, got %v", err)
		}
	})

	t.Run("non numeric tag 9 is not checked", func(t *testing.T) {
		fields, normalized := mustTokenize(t, "8=FIX.4.4\x019=abc\x0135=0\x0110=000\x01")
		if err := verifyBodyLength(normalized, fields); err != nil {
			t.Fatalf("expected nil for non-numeric tag 9, got %v", err)
		}
	})
}
