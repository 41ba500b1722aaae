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

package products

import (
	"strconv"
	"strings"
	"testing"

	"github.com/chanchunyinjohnny/FxFixParser/fixparser"
)

func parseMessage(t *testing.T, bodyFields ...string) *fixparser.Message {
	t.Helper()
	body := strings.Join(bodyFields, fixparser.SOH) + fixparser.SOH
	buf := "8=FIX.4.4" + fixparser.SOH + "9=" + strconv.Itoa(len(body)) + fixparser.SOH + body
	raw := buf + "10=" + fixparser.Checksum(buf) + fixparser.SOH
	msg, err := fixparser.Parse(raw, fixparser.DefaultConfig())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return msg
}

func TestDetectProduct(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name   string
		fields []string
		want   string // "" means no product
	}{
		{
			name:   "swap by security type",
			fields: []string{"35=8", "55=EUR/USD", "167=FXSWAP"},
			want:   "Swap",
		},
		{
			name:   "swap by forex swap ord type",
			fields: []string{"35=D", "55=EUR/USD", "40=G"},
			want:   "Swap",
		},
		{
			name:   "swap by two settlement dates",
			fields: []string{"35=8", "55=EUR/USD", "64=20260825", "193=20270825"},
			want:   "Swap",
		},
		{
			name:   "swap by far leg tenor",
			fields: []string{"35=R", "55=EUR/USD", "8004=M3"},
			want:   "Swap",
		},
		{
			name:   "swap by near tenor plus far quantity",
			fields: []string{"35=R", "55=EUR/USD", "63=SPOT", "192=1000000"},
			want:   "Swap",
		},
		{
			name:   "ndf by security type",
			fields: []string{"35=8", "55=USD/INR", "167=FXNDF"},
			want:   "NDF",
		},
		{
			name:   "ndf by fixing tags",
			fields: []string{"35=8", "55=USD/KRW", "5709=20260825", "5711=WMR"},
			want:   "NDF",
		},
		{
			name:   "options by put or call",
			fields: []string{"35=8", "55=EUR/USD", "201=1", "202=1.1000"},
			want:   "Options",
		},
		{
			name:   "futures by security type",
			fields: []string{"35=8", "55=6E", "167=FUT"},
			want:   "Futures",
		},
		{
			name:   "futures by contract month and exchange",
			fields: []string{"35=8", "55=6E", "200=202609", "207=CME"},
			want:   "Futures",
		},
		{
			name:   "forward by settl type",
			fields: []string{"35=8", "55=EUR/USD", "63=B", "64=20261125"},
			want:   "Forward",
		},
		{
			name:   "forward by forward points",
			fields: []string{"35=8", "55=EUR/USD", "194=1.0850", "195=0.0021"},
			want:   "Forward",
		},
		{
			name:   "spot by security type",
			fields: []string{"35=8", "55=EUR/USD", "167=FXSPOT"},
			want:   "Spot",
		},
		{
			name:   "spot fallback for plain execution",
			fields: []string{"35=8", "55=EUR/USD", "31=1.0850", "32=1000000"},
			want:   "Spot",
		},
		{
			name:   "heartbeat gets no product",
			fields: []string{"35=0"},
			want:   "",
		},
		{
			name:   "logon gets no product",
			fields: []string{"35=A", "98=0", "108=30"},
			want:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := parseMessage(t, tc.fields...)
			h := reg.Detect(msg)
			switch {
			case tc.want == "" && h != nil:
				t.Errorf("detected %q, want none", h.ProductType())
			case tc.want != "" && h == nil:
				t.Errorf("detected nothing, want %q", tc.want)
			case tc.want != "" && h != nil && h.ProductType() != tc.want:
				t.Errorf("detected %q, want %q", h.ProductType(), tc.want)
			}
		})
	}
}

func TestDetectOrderPrecedence(t *testing.T) {
	reg := DefaultRegistry()

	// Both swap and forward markers present: the more specific swap handler
	// sits earlier in the chain and must win.
	msg := parseMessage(t, "35=8", "55=EUR/USD", "64=20260825", "193=20270825", "195=0.0021")
	h := reg.Detect(msg)
	if h == nil || h.ProductType() != "Swap" {
		t.Fatalf("detected %v, want Swap before Forward", h)
	}

	// NDF fixing tags beat the forward-points heuristic too.
	msg = parseMessage(t, "35=8", "55=USD/BRL", "5709=20260825", "195=0.0021")
	h = reg.Detect(msg)
	if h == nil || h.ProductType() != "NDF" {
		t.Fatalf("detected %v, want NDF before Forward", h)
	}
}

func TestClassify(t *testing.T) {
	reg := DefaultRegistry()

	msg := parseMessage(t, "35=8", "55=EUR/USD", "167=FXSWAP")
	tagged, h := reg.Classify(msg)
	if h == nil || tagged.ProductType() != "Swap" {
		t.Fatalf("Classify = %q", tagged.ProductType())
	}
	if msg.ProductType() != "" {
		t.Error("Classify must not mutate the input message")
	}

	hb := parseMessage(t, "35=0")
	same, h := reg.Classify(hb)
	if h != nil || same.ProductType() != "" {
		t.Error("session message should pass through unclassified")
	}
}

func TestSwapDetails(t *testing.T) {
	msg := parseMessage(t, "35=8", "55=EUR/USD",
		"64=20260825", "193=20270825", "32=1000000", "192=1000000",
		"194=1.0850", "195=0.0123")
	details := Swap{}.Details(msg)

	want := map[string]string{
		"near_settlement_date": "20260825",
		"far_settlement_date":  "20270825",
		"near_quantity":        "1000000",
		"far_quantity":         "1000000",
		"spot_rate":            "1.0850",
		"forward_points":       "0.0123",
	}
	for k, v := range want {
		if details[k] != v {
			t.Errorf("details[%q] = %q, want %q", k, details[k], v)
		}
	}
}

func TestOptionsDetails(t *testing.T) {
	msg := parseMessage(t, "35=8", "55=EUR/USD", "201=1", "202=1.1000", "541=20261215")
	details := Options{}.Details(msg)
	if details["put_or_call"] != "Call" {
		t.Errorf("put_or_call = %q, want enum description Call", details["put_or_call"])
	}
	if details["strike_price"] != "1.1000" || details["maturity_date"] != "20261215" {
		t.Errorf("details = %v", details)
	}
}

func TestNDFDetails(t *testing.T) {
	msg := parseMessage(t, "35=8", "55=USD/INR",
		"167=FXNDF", "64=20260827", "120=USD",
		"5709=20260825", "5710=83.25", "5711=RBI")
	details := NDF{}.Details(msg)
	if details["fixing_date"] != "20260825" || details["fixing_source"] != "RBI" {
		t.Errorf("details = %v", details)
	}
	if details["settlement_currency"] != "USD" {
		t.Errorf("settlement_currency = %q", details["settlement_currency"])
	}
}
