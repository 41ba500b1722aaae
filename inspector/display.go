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

package inspector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chanchunyinjohnny/FxFixParser/venues"
)

func displayHelp() {
	fmt.Print(`Commands:
  --- Decoding ---
  <raw message>                 - Paste a FIX message (SOH or | delimited) to decode it
  decode <raw message>          - Same, explicit form
  json [N]                      - Last (or Nth-from-last) decoded message as JSON

  --- History ---
  last                          - Redisplay the last decoded message
  history [N]                   - Table of the last N decoded trades (default 20)
  symbol <pair> [N]             - History filtered by symbol (e.g. symbol EUR/USD)

  --- Reference ---
  venues                        - List known venues and their sender comp IDs
  products                      - List product types in detection order
  dict <tag>                    - Look up a tag in the dictionary

  --- Configuration ---
  strict                        - Show current strictness settings
  strict <setting> <on|off>     - Toggle checksum, bodylength, delimiter, types

  --- General ---
  help                          - Show this help message
  exit

Examples:
  8=FIX.4.4|9=100|35=8|49=FXGO|55=EUR/USD|54=1|32=1000000|31=1.0850|10=123|
  json
  history 50
  symbol USD/JPY 10
  dict 194
  strict checksum off
`)
}

func displayResult(res *Result) {
	msg := res.Msg

	fmt.Println()
	fmt.Print(msg.Render())

	if msg.Venue() != "" || msg.ProductType() != "" {
		fmt.Println()
		if msg.Venue() != "" {
			fmt.Printf("Venue:   %s\n", msg.Venue())
		}
		if msg.ProductType() != "" {
			fmt.Printf("Product: %s\n", msg.ProductType())
		}
	}

	if len(res.Details) > 0 {
		fmt.Println("Details:")
		keys := make([]string, 0, len(res.Details))
		for k := range res.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if res.Details[k] != "" {
				fmt.Printf("  %-22s %s\n", k+":", res.Details[k])
			}
		}
	}

	if flags := msg.Flags(); len(flags) > 0 {
		fmt.Println("Flags:")
		for _, f := range flags {
			fmt.Printf("  ⚠ %s\n", f)
		}
	}

	if res.Trade != nil {
		displayTrade(res.Trade)
	}
	fmt.Println()
}

func decStr(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func displayTrade(trade *venues.Trade) {
	kind := "Trade"
	if trade.IsQuote {
		kind = "Quote"
	}

	fmt.Printf("\n%s Summary:\n", kind)
	fmt.Printf("┌──────────────┬──────────────────────────────┐\n")
	printTradeRow("Symbol", trade.Symbol)
	printTradeRow("Side", trade.Side)
	printTradeRow("Quantity", decStr(trade.Quantity))
	printTradeRow("Price", decStr(trade.Price))
	if trade.IsQuote {
		printTradeRow("Bid", decStr(trade.BidPrice))
		printTradeRow("Offer", decStr(trade.OfferPrice))
	}
	printTradeRow("Currency", trade.Currency)
	printTradeRow("Settl Date", trade.SettlementDate)
	if trade.IsSwap {
		printTradeRow("Far Settl", trade.FarSettlementDate)
		printTradeRow("Bid Swap Pts", decStr(trade.BidSwapPoints))
		printTradeRow("Offer Swap Pts", decStr(trade.OfferSwapPoints))
	}
	printTradeRow("Order ID", trade.OrderID)
	printTradeRow("Exec ID", trade.ExecID)
	fmt.Printf("└──────────────┴──────────────────────────────┘\n")
}

func printTradeRow(label, value string) {
	if value == "" || value == "-" {
		return
	}
	fmt.Printf("│ %-12s │ %-28s │\n", label, value)
}

func displayHistory(results []Result) {
	if len(results) == 0 {
		fmt.Println("No decoded messages yet")
		return
	}

	fmt.Print(`
History:
┌──────────┬──────┬───────────────────────────┬─────────────┬──────────┬───────────────┬───────────────┐
│ Time     │ Type │ Venue                     │ Symbol      │ Product  │ Qty           │ Price         │
├──────────┼──────┼───────────────────────────┼─────────────┼──────────┼───────────────┼───────────────┤
`)

	for _, res := range results {
		venue := res.Msg.Venue()
		if venue == "" {
			venue = "-"
		}
		if len(venue) > 25 {
			venue = venue[:22] + "..."
		}

		symbol, product, qty, price := "-", "-", "-", "-"
		if res.Trade != nil {
			if res.Trade.Symbol != "" {
				symbol = res.Trade.Symbol
			}
			if res.Trade.ProductType != "" {
				product = res.Trade.ProductType
			}
			qty = decStr(res.Trade.Quantity)
			price = decStr(res.Trade.Price)
		}

		fmt.Printf("│ %-8s │ %-4s │ %-25s │ %-11s │ %-8s │ %-13s │ %-13s │\n",
			res.ReceivedAt.Format("15:04:05"), res.Msg.MsgType(), venue, symbol, product, qty, price)
	}

	fmt.Println("└──────────┴──────┴───────────────────────────┴─────────────┴──────────┴───────────────┴───────────────┘")
}

func displayVenues(reg *venues.Registry) {
	fmt.Print(`
Venues:
┌────────────────────────────┬──────────────────────────────────────────────┬─────────────┐
│ Name                       │ Sender Comp IDs                              │ Custom Tags │
├────────────────────────────┼──────────────────────────────────────────────┼─────────────┤
`)
	for _, h := range reg.All() {
		senders := strings.Join(h.SenderCompIDs(), ", ")
		if len(senders) > 44 {
			senders = senders[:41] + "..."
		}
		fmt.Printf("│ %-26s │ %-44s │ %-11d │\n", h.Name(), senders, len(h.CustomTags()))
	}
	fmt.Println("└────────────────────────────┴──────────────────────────────────────────────┴─────────────┘")
}

func displayStrictness(s *Session) {
	cfg := s.Config()
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	fmt.Printf("Strictness: checksum=%s bodylength=%s delimiter=%s types=%s (pipe delimiter %s)\n",
		onOff(cfg.StrictChecksum), onOff(cfg.StrictBodyLength),
		onOff(cfg.StrictDelimiter), onOff(cfg.StrictTypes),
		map[bool]string{true: "allowed", false: "rejected"}[cfg.AllowPipeDelimiter])
}
