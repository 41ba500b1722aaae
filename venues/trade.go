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

package venues

import (
	"github.com/shopspring/decimal"

	"github.com/chanchunyinjohnny/FxFixParser/fixparser"
	"github.com/chanchunyinjohnny/FxFixParser/fixtag"
)

// Trade is the flat summary extracted from one message: the fields a blotter
// or persistence layer cares about. Rates and amounts are decimals; FX prices
// carry more precision than float64 comfortably represents and survive
// round-trips to storage unchanged. Nil means the message did not carry the
// field.
type Trade struct {
	Symbol             string `json:"symbol,omitempty"`
	Side               string `json:"side,omitempty"`
	Venue              string `json:"venue,omitempty"`
	ProductType        string `json:"product_type,omitempty"`
	OrderID            string `json:"order_id,omitempty"`
	ExecID             string `json:"exec_id,omitempty"`
	Currency           string `json:"currency,omitempty"`
	SettlementCurrency string `json:"settlement_currency,omitempty"`
	TradeDate          string `json:"trade_date,omitempty"`
	SettlementDate     string `json:"settlement_date,omitempty"`

	Quantity *decimal.Decimal `json:"quantity,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`

	// Quote fields
	BidPrice       *decimal.Decimal `json:"bid_price,omitempty"`
	OfferPrice     *decimal.Decimal `json:"offer_price,omitempty"`
	BidSize        *decimal.Decimal `json:"bid_size,omitempty"`
	OfferSize      *decimal.Decimal `json:"offer_size,omitempty"`
	BidSpotRate    *decimal.Decimal `json:"bid_spot_rate,omitempty"`
	OfferSpotRate  *decimal.Decimal `json:"offer_spot_rate,omitempty"`
	BidFwdPoints   *decimal.Decimal `json:"bid_fwd_points,omitempty"`
	OfferFwdPoints *decimal.Decimal `json:"offer_fwd_points,omitempty"`

	// Swap far leg fields
	FarSettlementDate string           `json:"far_settlement_date,omitempty"`
	FarBidFwdPoints   *decimal.Decimal `json:"far_bid_fwd_points,omitempty"`
	FarOfferFwdPoints *decimal.Decimal `json:"far_offer_fwd_points,omitempty"`
	BidSwapPoints     *decimal.Decimal `json:"bid_swap_points,omitempty"`
	OfferSwapPoints   *decimal.Decimal `json:"offer_swap_points,omitempty"`
	NearLegBidRate    *decimal.Decimal `json:"near_leg_bid_rate,omitempty"`
	NearLegOfferRate  *decimal.Decimal `json:"near_leg_offer_rate,omitempty"`
	FarLegBidRate     *decimal.Decimal `json:"far_leg_bid_rate,omitempty"`
	FarLegOfferRate   *decimal.Decimal `json:"far_leg_offer_rate,omitempty"`

	IsQuote bool `json:"is_quote,omitempty"`
	IsSwap  bool `json:"is_swap,omitempty"`
}

// decimalAt returns the first tag with a parseable decimal value, or nil.
func decimalAt(msg *fixparser.Message, tags ...int) *decimal.Decimal {
	for _, tag := range tags {
		raw, ok := msg.Value(tag)
		if !ok || raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		return &d
	}
	return nil
}

// valueAt returns the first non-empty raw value among the given tags.
func valueAt(msg *fixparser.Message, tags ...int) string {
	for _, tag := range tags {
		if raw, ok := msg.Value(tag); ok && raw != "" {
			return raw
		}
	}
	return ""
}

// ExtractTrade pulls the trade summary out of a parsed message. Quotes
// (35=S), quote requests (35=R), and execution-style messages each populate a
// different subset; fields the message does not carry stay zero.
func ExtractTrade(venue string, msg *fixparser.Message) *Trade {
	trade := &Trade{
		Venue:              venue,
		ProductType:        msg.ProductType(),
		Symbol:             valueAt(msg, fixtag.Symbol),
		Currency:           valueAt(msg, fixtag.Currency, fixtag.DealCurrency),
		SettlementCurrency: valueAt(msg, fixtag.SettlCurrency),
		SettlementDate:     valueAt(msg, fixtag.SettlDate),
		TradeDate:          valueAt(msg, fixtag.TradeDate),
		OrderID:            valueAt(msg, fixtag.OrderID, fixtag.ClOrdID),
		ExecID:             valueAt(msg, fixtag.ExecID),
	}

	switch msg.MsgType() {
	case fixtag.MsgTypeQuote:
		extractQuote(msg, trade)
	case fixtag.MsgTypeQuoteRequest:
		extractQuoteRequest(msg, trade)
	default:
		extractExecution(msg, trade)
	}
	return trade
}

func sideDescription(msg *fixparser.Message) string {
	f := msg.Get(fixtag.Side)
	if f == nil {
		return ""
	}
	if f.ValueDescription != "" {
		return f.ValueDescription
	}
	return f.RawValue
}

// extractExecution covers execution reports, orders, and trade captures:
// filled values first, order values as fallback.
func extractExecution(msg *fixparser.Message, trade *Trade) {
	trade.Side = sideDescription(msg)
	trade.Quantity = decimalAt(msg, fixtag.LastQty, fixtag.OrderQty)
	trade.Price = decimalAt(msg, fixtag.LastPx, fixtag.Price)
}

func extractQuoteRequest(msg *fixparser.Message, trade *Trade) {
	if side := sideDescription(msg); side != "" {
		trade.Side = side
	} else {
		trade.Side = "Request"
	}
	trade.Quantity = decimalAt(msg, fixtag.OrderQty)
}

func extractQuote(msg *fixparser.Message, trade *Trade) {
	trade.IsQuote = true

	trade.BidPrice = decimalAt(msg, fixtag.BidPx)
	trade.OfferPrice = decimalAt(msg, fixtag.OfferPx)
	trade.BidSize = decimalAt(msg, fixtag.BidSize)
	trade.OfferSize = decimalAt(msg, fixtag.OfferSize)
	trade.BidSpotRate = decimalAt(msg, fixtag.BidSpotRate)
	trade.OfferSpotRate = decimalAt(msg, fixtag.OfferSpotRate)
	trade.BidFwdPoints = decimalAt(msg, fixtag.BidForwardPoints)
	trade.OfferFwdPoints = decimalAt(msg, fixtag.OfferForwardPoints)

	if trade.BidSize != nil {
		trade.Quantity = trade.BidSize
	}

	// A far leg settlement date marks a swap quote.
	if far := valueAt(msg, fixtag.SettlDate2); far != "" {
		trade.IsSwap = true
		trade.FarSettlementDate = far
		trade.FarBidFwdPoints = decimalAt(msg, fixtag.BidForwardPoints2)
		trade.FarOfferFwdPoints = decimalAt(msg, fixtag.OfferForwardPoints2)
		trade.BidSwapPoints = decimalAt(msg, fixtag.BidSwapPoints)
		trade.OfferSwapPoints = decimalAt(msg, fixtag.OfferSwapPoints)
		trade.NearLegBidRate = decimalAt(msg, fixtag.NearLegBidRate)
		trade.NearLegOfferRate = decimalAt(msg, fixtag.NearLegOfferRate)
		trade.FarLegBidRate = decimalAt(msg, fixtag.FarLegBidRate)
		trade.FarLegOfferRate = decimalAt(msg, fixtag.FarLegOfferRate)
	}

	switch {
	case trade.BidPrice != nil && trade.OfferPrice != nil:
		trade.Side = "Two-Way"
		mid := trade.BidPrice.Add(*trade.OfferPrice).Div(decimal.NewFromInt(2))
		trade.Price = &mid
	case trade.BidPrice != nil:
		trade.Side = "Bid Only"
		trade.Price = trade.BidPrice
	case trade.OfferPrice != nil:
		trade.Side = "Offer Only"
		trade.Price = trade.OfferPrice
	}
}
