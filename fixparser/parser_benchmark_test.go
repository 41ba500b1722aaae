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

// Benchmarks for the decode pipeline.
// Run with: go test -bench=. -benchmem ./fixparser/
package fixparser

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// generateMarketDataMessage builds a wire-correct market data snapshot with
// the given number of repeating group entries.
func generateMarketDataMessage(numEntries int) string {
	var body strings.Builder
	body.WriteString("35=W\x0149=FXGO\x0156=CLIENT\x0134=12345\x01")
	body.WriteString("52=20260823-12:00:00.123\x0155=EUR/USD\x01262=req-1\x01")
	fmt.Fprintf(&body, "268=%d\x01", numEntries)

	for i := 0; i < numEntries; i++ {
		entryType := i % 2 // alternate bid/offer
		price := 1.0850 + float64(i)*0.0001
		size := 1000000 + i*100000

		fmt.Fprintf(&body, "269=%d\x01", entryType)
		fmt.Fprintf(&body, "270=%.4f\x01", price)
		fmt.Fprintf(&body, "271=%d\x01", size)
		body.WriteString("273=12:00:00\x01")
	}

	buf := "8=FIX.4.4\x019=" + strconv.Itoa(body.Len()) + "\x01" + body.String()
	return buf + "10=" + Checksum(buf) + "\x01"
}

func BenchmarkTokenize(b *testing.B) {
	benchCases := []struct {
		name       string
		numEntries int
	}{
		{"1Entry", 1},
		{"10Entries", 10},
		{"100Entries", 100},
	}

	for _, bc := range benchCases {
		raw := generateMarketDataMessage(bc.numEntries)
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _, _ = Tokenize(raw, true, false)
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	benchCases := []struct {
		name       string
		numEntries int
	}{
		{"1Entry", 1},
		{"10Entries", 10},
		{"100Entries", 100},
	}

	p := New(DefaultConfig())
	for _, bc := range benchCases {
		raw := generateMarketDataMessage(bc.numEntries)
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := p.Parse(raw); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkChecksum(b *testing.B) {
	raw := generateMarketDataMessage(50)
	buf := raw[:strings.LastIndex(raw, "10=")]

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Checksum(buf)
	}
}
