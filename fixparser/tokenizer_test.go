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
	"testing"
)

func TestTokenizeBasic(t *testing.T) {
	raw := "8=FIX.4.4\x0135=0\x0110=000\x01"
	fields, normalized, err := Tokenize(raw, true, false)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if normalized != raw {
		t.Errorf("normalized buffer changed: %q", normalized)
	}
	want := []RawField{
		{Tag: 8, Value: "FIX.4.4", Pos: 0},
		{Tag: 35, Value: "0", Pos: 1},
		{Tag: 10, Value: "000", Pos: 2},
	}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i, w := range want {
		got := fields[i]
		if got.Tag != w.Tag || got.Value != w.Value || got.Pos != w.Pos {
			t.Errorf("field %d: got tag=%d value=%q pos=%d, want tag=%d value=%q pos=%d",
				i, got.Tag, got.Value, got.Pos, w.Tag, w.Value, w.Pos)
		}
	}
}

func TestTokenizeDelimiterSelection(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		allowPipe bool
		wantTags  []int
		wantVals  []string
	}{
		{
			name:      "pipe delimited log extract",
			raw:       "8=FIX.4.4|35=0|10=000|",
			allowPipe: true,
			wantTags:  []int{8, 35, 10},
			wantVals:  []string{"FIX.4.4", "0", "000"},
		},
		{
			name:      "soh wins over pipe in values",
			raw:       "8=FIX.4.4\x0158=a|b\x0110=000\x01",
			allowPipe: true,
			wantTags:  []int{8, 58, 10},
			wantVals:  []string{"FIX.4.4", "a|b", "000"},
		},
		{
			name:      "crlf stripped before splitting",
			raw:       "8=FIX.4.4\x01\r\n35=0\x0110=000\x01\r\n",
			allowPipe: true,
			wantTags:  []int{8, 35, 10},
			wantVals:  []string{"FIX.4.4", "0", "000"},
		},
		{
			name:      "missing terminal delimiter tolerated",
			raw:       "8=FIX.4.4|35=0|10=000",
			allowPipe: true,
			wantTags:  []int{8, 35, 10},
			wantVals:  []string{"FIX.4.4", "0", "000"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields, _, err := Tokenize(tc.raw, tc.allowPipe, false)
			if err != nil {
				t.Fatalf("Tokenize failed: %v", err)
			}
			if len(fields) != len(tc.wantTags) {
				t.Fatalf("got %d fields, want %d", len(fields), len(tc.wantTags))
			}
			for i := range fields {
				if fields[i].Tag != tc.wantTags[i] || fields[i].Value != tc.wantVals[i] {
					t.Errorf("field %d: got %d=%q, want %d=%q",
						i, fields[i].Tag, fields[i].Value, tc.wantTags[i], tc.wantVals[i])
				}
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		allowPipe bool
		strict    bool
		wantInput bool // MalformedInputError vs MalformedFieldError
	}{
		{name: "empty buffer", raw: "", wantInput: true},
		{name: "whitespace only", raw: "  \r\n ", wantInput: true},
		{name: "segment without separator", raw: "8=FIX.4.4\x01garbage\x0110=000\x01"},
		{name: "segment with two separators", raw: "8=FIX.4.4|35=0=1|10=000|", allowPipe: true},
		{name: "non numeric tag", raw: "8=FIX.4.4\x01abc=1\x0110=000\x01"},
		{name: "zero tag", raw: "0=x\x0110=000\x01"},
		{name: "negative tag", raw: "-5=x\x0110=000\x01"},
		{name: "strict delimiter missing trailer", raw: "8=FIX.4.4\x0110=000", strict: true, wantInput: true},
		{
			// Without pipe handling the whole buffer is one segment holding
			// several '=' characters.
			name: "pipe buffer with pipes disallowed",
			raw:  "8=FIX.4.4|35=0|10=000|",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Tokenize(tc.raw, tc.allowPipe, tc.strict)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var inputErr *MalformedInputError
			var fieldErr *MalformedFieldError
			switch {
			case tc.wantInput && !errors.As(err, &inputErr):
				t.Errorf("expected MalformedInputError, got %T: %v", err, err)
			case !tc.wantInput && !errors.As(err, &fieldErr):
				t.Errorf("expected MalformedFieldError, got %T: %v", err, err)
			}
		})
	}
}

func TestTokenizeValueEdgeCases(t *testing.T) {
	// Empty values are legal on the wire; the tag is kept with "".
	fields, _, err := Tokenize("8=FIX.4.4\x0158=\x0110=000\x01", false, false)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if fields[1].Tag != 58 || fields[1].Value != "" {
		t.Errorf("got %d=%q, want 58 with empty value", fields[1].Tag, fields[1].Value)
	}
}
