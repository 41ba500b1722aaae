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
	"strings"
	"testing"
)

// lenient turns every strictness flag off while keeping pipe support.
func lenient() Config {
	return Config{AllowPipeDelimiter: true}
}

func mustParse(t *testing.T, raw string, cfg Config) *Message {
	t.Helper()
	msg, err := Parse(raw, cfg)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return msg
}

func TestParseLogExtract(t *testing.T) {
	// Pipe-delimited execution report pasted from a venue log. Checksum and
	// body length are stale; lenient mode keeps the message and flags both.
	raw := "8=FIX.4.4|9=100|35=8|49=FXGO|56=CLIENT|55=EUR/USD|54=1|32=1000000|31=1.0850|10=123|"
	msg := mustParse(t, raw, lenient())

	if msg.MsgType() != "8" {
		t.Errorf("MsgType = %q, want 8", msg.MsgType())
	}
	if msg.SenderCompID() != "FXGO" {
		t.Errorf("SenderCompID = %q, want FXGO", msg.SenderCompID())
	}
	if v, _ := msg.Value(55); v != "EUR/USD" {
		t.Errorf("Symbol = %q, want EUR/USD", v)
	}

	side := msg.Get(54)
	if side == nil {
		t.Fatal("Side field missing")
	}
	if side.Name != "Side" || side.ValueDescription != "Buy" {
		t.Errorf("Side decorated as %q (%q), want Side (Buy)", side.Name, side.ValueDescription)
	}

	qty := msg.Get(32)
	if qty == nil {
		t.Fatal("LastQty field missing")
	}
	if f, ok := qty.Float(); !ok || f != 1000000 {
		t.Errorf("LastQty typed value = %v, want 1000000", qty.TypedValue)
	}

	if !msg.HasFlag(FlagChecksum) {
		t.Error("expected checksum mismatch flag")
	}
	if !msg.HasFlag(FlagBodyLength) {
		t.Error("expected body length mismatch flag")
	}
}

func TestParseValidMessageHasNoFlags(t *testing.T) {
	raw := buildMessage(t, "35=D", "49=CLIENT", "56=BANK", "55=EUR/USD", "54=1", "38=5000000", "40=2", "44=1.0901")
	msg := mustParse(t, raw, DefaultConfig())
	if flags := msg.Flags(); len(flags) != 0 {
		t.Fatalf("expected clean parse, got flags: %v", flags)
	}
	if msg.BeginString() != "FIX.4.4" {
		t.Errorf("BeginString = %q", msg.BeginString())
	}
	price := msg.Get(44)
	if f, ok := price.Float(); !ok || f != 1.0901 {
		t.Errorf("Price typed value = %v, want 1.0901", price.TypedValue)
	}
}

func TestParseStrictModes(t *testing.T) {
	t.Run("checksum mismatch is fatal by default", func(t *testing.T) {
		valid := buildMessage(t, "35=0")
		idx := strings.LastIndex(valid, "10=")
		tampered := valid[:idx] + "10=999" + SOH

		_, err := Parse(tampered, DefaultConfig())
		var ckErr *ChecksumError
		if !errors.As(err, &ckErr) {
			t.Fatalf("expected ChecksumError, got %T: %v", err, err)
		}
		if ckErr.Actual != "999" {
			t.Errorf("Actual = %q, want 999", ckErr.Actual)
		}
	})

	t.Run("body length mismatch fatal when strict", func(t *testing.T) {
		raw := "8=FIX.4.4|9=500|35=0|10=000|"
		cfg := lenient()
		cfg.StrictBodyLength = true
		_, err := Parse(raw, cfg)
		var blErr *BodyLengthError
		if !errors.As(err, &blErr) {
			t.Fatalf("expected BodyLengthError, got %T: %v", err, err)
		}
		if blErr.Expected != 500 {
			t.Errorf("Expected = %d, want 500", blErr.Expected)
		}
	})

	t.Run("coercion failure fatal when strict", func(t *testing.T) {
		raw := buildMessage(t, "35=D", "38=abc")
		cfg := DefaultConfig()
		cfg.StrictTypes = true
		_, err := Parse(raw, cfg)
		var tcErr *TypeCoercionError
		if !errors.As(err, &tcErr) {
			t.Fatalf("expected TypeCoercionError, got %T: %v", err, err)
		}
		if tcErr.Tag != 38 {
			t.Errorf("Tag = %d, want 38", tcErr.Tag)
		}
	})

	t.Run("coercion failure flagged when lenient", func(t *testing.T) {
		raw := buildMessage(t, "35=D", "38=abc")
		msg := mustParse(t, raw, DefaultConfig())
		if !msg.HasFlag(FlagCoercion) {
			t.Error("expected coercion flag")
		}
		if msg.Get(38).RawValue != "abc" {
			t.Error("raw value must survive failed coercion")
		}
	})

	t.Run("strict delimiter requires terminator", func(t *testing.T) {
		cfg := lenient()
		cfg.StrictDelimiter = true
		_, err := Parse("8=FIX.4.4|35=0|10=000", cfg)
		var inputErr *MalformedInputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("expected MalformedInputError, got %T: %v", err, err)
		}
	})

	t.Run("missing begin string always fatal", func(t *testing.T) {
		_, err := Parse("35=0|10=000|", lenient())
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %T: %v", err, err)
		}
	})
}

func TestParseMarketDataGroup(t *testing.T) {
	raw := buildMessage(t,
		"35=W", "49=FXGO", "56=CLIENT", "55=EUR/USD",
		"268=2",
		"269=0", "270=1.0848", "271=1000000",
		"269=1", "270=1.0852", "271=2000000",
	)
	msg := mustParse(t, raw, DefaultConfig())

	if len(msg.Flags()) != 0 {
		t.Fatalf("unexpected flags: %v", msg.Flags())
	}
	group, ok := msg.Group(268)
	if !ok {
		t.Fatal("NoMDEntries group missing")
	}
	if group.Declared != 2 || len(group.Entries) != 2 {
		t.Fatalf("declared %d, captured %d entries", group.Declared, len(group.Entries))
	}
	bid := group.Entries[0]
	if f := bid.Get(270); f == nil || f.RawValue != "1.0848" {
		t.Errorf("entry 1 MDEntryPx = %v, want 1.0848", bid.Get(270))
	}
	offer := group.Entries[1]
	if f := offer.Get(269); f == nil || f.RawValue != "1" {
		t.Errorf("entry 2 MDEntryType = %v, want 1", offer.Get(269))
	}
	// Symbol precedes the group and stays top-level.
	foundGroup := false
	for _, n := range msg.Nodes() {
		if n.IsGroup() && n.Group.CountTag == 268 {
			foundGroup = true
		}
	}
	if !foundGroup {
		t.Error("group node missing from top-level structure")
	}
}

func TestParseNestedPartyGroups(t *testing.T) {
	raw := buildMessage(t,
		"35=8",
		"453=2",
		"448=BANKA", "447=D", "452=1",
		"802=1", "523=DESK1", "803=2",
		"448=BANKB", "452=17",
		"55=EUR/USD",
	)
	msg := mustParse(t, raw, DefaultConfig())

	if len(msg.Flags()) != 0 {
		t.Fatalf("unexpected flags: %v", msg.Flags())
	}
	parties, ok := msg.Group(453)
	if !ok {
		t.Fatal("NoPartyIDs group missing")
	}
	if len(parties.Entries) != 2 {
		t.Fatalf("captured %d party entries, want 2", len(parties.Entries))
	}

	first := parties.Entries[0]
	if f := first.Get(448); f == nil || f.RawValue != "BANKA" {
		t.Errorf("entry 1 PartyID = %v, want BANKA", first.Get(448))
	}
	var subIDs *GroupInstance
	for _, n := range first.Nodes {
		if n.IsGroup() && n.Group.CountTag == 802 {
			subIDs = n.Group
		}
	}
	if subIDs == nil {
		t.Fatal("nested NoPartySubIDs group missing from entry 1")
	}
	if len(subIDs.Entries) != 1 {
		t.Fatalf("captured %d sub-ID entries, want 1", len(subIDs.Entries))
	}
	if f := subIDs.Entries[0].Get(523); f == nil || f.RawValue != "DESK1" {
		t.Errorf("PartySubID = %v, want DESK1", subIDs.Entries[0].Get(523))
	}

	second := parties.Entries[1]
	if f := second.Get(452); f == nil || f.RawValue != "17" {
		t.Errorf("entry 2 PartyRole = %v, want 17", second.Get(452))
	}

	// Symbol after the group closes back at the top level.
	if v, _ := msg.Value(55); v != "EUR/USD" {
		t.Errorf("Symbol = %q, want EUR/USD", v)
	}
}

func TestParseGroupEdgeCases(t *testing.T) {
	t.Run("excess entries captured and flagged", func(t *testing.T) {
		raw := buildMessage(t, "35=V", "267=1", "269=0", "269=1")
		msg := mustParse(t, raw, DefaultConfig())
		group, ok := msg.Group(267)
		if !ok {
			t.Fatal("NoMDEntryTypes group missing")
		}
		if len(group.Entries) != 2 {
			t.Fatalf("captured %d entries, want 2 (excess kept)", len(group.Entries))
		}
		if !msg.HasFlag(FlagGroupCount) {
			t.Error("expected group count mismatch flag")
		}
	})

	t.Run("zero count consumes nothing", func(t *testing.T) {
		raw := buildMessage(t, "35=V", "267=0", "55=EUR/USD")
		msg := mustParse(t, raw, DefaultConfig())
		group, ok := msg.Group(267)
		if !ok {
			t.Fatal("empty group instance missing")
		}
		if group.Declared != 0 || len(group.Entries) != 0 {
			t.Errorf("declared %d, entries %d, want 0/0", group.Declared, len(group.Entries))
		}
		// Symbol must not be swallowed by the empty group.
		if f := msg.Get(55); f == nil {
			t.Fatal("Symbol missing")
		}
		if len(msg.Flags()) != 0 {
			t.Errorf("unexpected flags: %v", msg.Flags())
		}
	})

	t.Run("member before first delimiter reattached", func(t *testing.T) {
		raw := buildMessage(t, "35=8", "453=1", "452=1", "55=EUR/USD")
		msg := mustParse(t, raw, DefaultConfig())
		if !msg.HasFlag(FlagReattached) {
			t.Error("expected reattached flag")
		}
		if !msg.HasFlag(FlagGroupCount) {
			t.Error("expected group count flag for empty group")
		}
		// The orphan member lands at the top level as a plain field.
		var topLevel bool
		for _, n := range msg.Nodes() {
			if !n.IsGroup() && n.Field.Tag == 452 {
				topLevel = true
			}
		}
		if !topLevel {
			t.Error("orphan member should be a top-level field")
		}
	})

	t.Run("duplicate top-level tag flagged", func(t *testing.T) {
		raw := buildMessage(t, "35=8", "55=EUR/USD", "55=GBP/USD")
		msg := mustParse(t, raw, lenient())
		if !msg.HasFlag(FlagDuplicateTag) {
			t.Error("expected duplicate tag flag")
		}
		if all := msg.GetAll(55); len(all) != 2 {
			t.Errorf("GetAll(55) = %d fields, want both occurrences", len(all))
		}
	})

	t.Run("flat swap legs are distinct top-level fields", func(t *testing.T) {
		raw := buildMessage(t, "35=8", "40=G", "55=EUR/USD",
			"64=20260825", "193=20270825", "192=1000000", "194=1.0850", "195=0.0123")
		msg := mustParse(t, raw, DefaultConfig())
		if msg.HasFlag(FlagDuplicateTag) {
			t.Error("near/far leg tags must not be treated as duplicates")
		}
		if v, _ := msg.Value(64); v != "20260825" {
			t.Errorf("SettlDate = %q", v)
		}
		if v, _ := msg.Value(193); v != "20270825" {
			t.Errorf("SettlDate2 = %q", v)
		}
	})
}

func TestParseHeaderTrailerSubsets(t *testing.T) {
	raw := buildMessage(t, "35=8", "34=2", "49=FXGO", "56=CLIENT",
		"52=20260823-10:00:00.000", "55=EUR/USD", "31=1.0850")
	msg := mustParse(t, raw, DefaultConfig())

	wantHeader := []int{8, 9, 35, 34, 49, 56, 52}
	header := msg.Header()
	if len(header) != len(wantHeader) {
		t.Fatalf("header has %d fields, want %d", len(header), len(wantHeader))
	}
	for i, tag := range wantHeader {
		if header[i].Tag != tag {
			t.Errorf("header[%d] = tag %d, want %d", i, header[i].Tag, tag)
		}
	}

	trailer := msg.Trailer()
	if len(trailer) != 1 || trailer[0].Tag != 10 {
		t.Fatalf("trailer = %v, want single CheckSum field", trailer)
	}
}

func TestParseUnknownTagFallback(t *testing.T) {
	raw := buildMessage(t, "35=8", "23456=mystery")
	msg := mustParse(t, raw, DefaultConfig())
	f := msg.Get(23456)
	if f == nil {
		t.Fatal("unknown tag dropped")
	}
	if f.Name != "Unknown" {
		t.Errorf("Name = %q, want Unknown", f.Name)
	}
	if f.RawValue != "mystery" || f.TypedValue != "mystery" {
		t.Errorf("value not preserved: %q / %v", f.RawValue, f.TypedValue)
	}
}
