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
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestFieldString(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{
			name:  "plain field",
			field: Field{Tag: 55, Name: "Symbol", RawValue: "EUR/USD"},
			want:  "Symbol (55): EUR/USD",
		},
		{
			name:  "enumerated value",
			field: Field{Tag: 54, Name: "Side", RawValue: "1", ValueDescription: "Buy"},
			want:  "Side (54): 1 (Buy)",
		},
		{
			name:  "unknown tag",
			field: Field{Tag: 23456, Name: "Unknown", RawValue: "x"},
			want:  "Unknown (23456): x",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.field.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMessageRender(t *testing.T) {
	raw := buildMessage(t, "35=8", "54=1", "453=1", "448=BANKA", "452=1")
	msg := mustParse(t, raw, DefaultConfig())
	out := msg.Render()

	wantLines := []string{
		"MsgType (35): 8 (ExecutionReport)\n",
		"Side (54): 1 (Buy)\n",
		"NoPartyIDs (453): 1 - Party IDs\n",
		"  [Entry 1]\n",
		"    PartyID (448): BANKA\n",
		"    PartyRole (452): 1 (ExecutingFirm)\n",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("render output missing %q\n%s", line, out)
		}
	}
}

func TestMessageRenderNestedIndent(t *testing.T) {
	raw := buildMessage(t, "35=8",
		"453=1", "448=BANKA", "802=1", "523=DESK1")
	msg := mustParse(t, raw, DefaultConfig())
	out := msg.Render()

	// The nested group header sits inside entry 1 of the outer group, and its
	// own entry block is indented one level further.
	if !strings.Contains(out, "    NoPartySubIDs (802): 1 - Party Sub IDs\n") {
		t.Errorf("nested group header missing or misindented:\n%s", out)
	}
	if !strings.Contains(out, "      [Entry 1]\n") {
		t.Errorf("nested entry block missing or misindented:\n%s", out)
	}
	if !strings.Contains(out, "        PartySubID (523): DESK1\n") {
		t.Errorf("nested member missing or misindented:\n%s", out)
	}
}

func TestMessageDocument(t *testing.T) {
	raw := buildMessage(t, "35=8", "49=FXGO", "56=CLIENT", "55=EUR/USD",
		"268=1", "269=0", "270=1.0848")
	msg := mustParse(t, raw, DefaultConfig()).WithVenue("FXGO").WithProduct("Spot")

	doc := msg.Document()
	if doc.MsgType != "8" || doc.SenderCompID != "FXGO" {
		t.Errorf("doc header = %q/%q", doc.MsgType, doc.SenderCompID)
	}
	if doc.Venue != "FXGO" || doc.ProductType != "Spot" {
		t.Errorf("doc classification = %q/%q", doc.Venue, doc.ProductType)
	}

	var group *GroupDoc
	for _, item := range doc.Fields {
		if g, ok := item.(GroupDoc); ok && g.CountTag == 268 {
			group = &g
		}
	}
	if group == nil {
		t.Fatal("group document missing")
	}
	if group.Count != 1 || len(group.Entries) != 1 {
		t.Fatalf("group doc = %+v", group)
	}
}

func TestMessageMarshalJSON(t *testing.T) {
	raw := buildMessage(t, "35=S", "117=Q1", "55=EUR/USD", "132=1.0848", "133=1.0852")
	msg := mustParse(t, raw, DefaultConfig())

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded["msg_type"] != "S" {
		t.Errorf("msg_type = %v, want S", decoded["msg_type"])
	}
	if _, present := decoded["venue"]; present {
		t.Error("empty venue should be omitted")
	}
	fields, ok := decoded["fields"].([]any)
	if !ok || len(fields) == 0 {
		t.Fatalf("fields = %v", decoded["fields"])
	}
}

func TestMessageDerivedCopies(t *testing.T) {
	raw := buildMessage(t, "35=8", "55=EUR/USD")
	msg := mustParse(t, raw, DefaultConfig())

	tagged := msg.WithVenue("360T").WithProduct("Forward")
	if tagged.Venue() != "360T" || tagged.ProductType() != "Forward" {
		t.Errorf("derived copy = %q/%q", tagged.Venue(), tagged.ProductType())
	}
	if msg.Venue() != "" || msg.ProductType() != "" {
		t.Error("original message must stay untagged")
	}
	if tagged.Raw() != msg.Raw() {
		t.Error("derived copy must share the raw buffer")
	}
}
