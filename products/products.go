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

// Package products classifies parsed FIX messages into FX product types and
// extracts the product-specific detail fields. Classification is heuristic:
// handlers inspect instrument tags in a fixed specificity order, most
// specific first, with Spot as the trade-message fallback.
package products

import (
	"strings"

	"github.com/chanchunyinjohnny/FxFixParser/fixparser"
	"github.com/chanchunyinjohnny/FxFixParser/fixtag"
)

// Handler classifies one FX product type.
type Handler interface {
	// ProductType is the display name of the product.
	ProductType() string
	// Detect reports whether the message trades this product.
	Detect(msg *fixparser.Message) bool
	// Details extracts the product-specific fields as raw tag values.
	Details(msg *fixparser.Message) map[string]string
}

// Registry holds product handlers in detection order. Order matters: more
// specific products must come before the Spot fallback.
type Registry struct {
	handlers []Handler
}

// NewRegistry returns a registry detecting in the given order.
func NewRegistry(handlers ...Handler) *Registry {
	return &Registry{handlers: handlers}
}

// Detect returns the first handler claiming the message, or nil.
func (r *Registry) Detect(msg *fixparser.Message) Handler {
	for _, h := range r.handlers {
		if h.Detect(msg) {
			return h
		}
	}
	return nil
}

// Classify tags a parsed message with its product type. Messages no handler
// claims (session-level traffic) are returned unchanged.
func (r *Registry) Classify(msg *fixparser.Message) (*fixparser.Message, Handler) {
	h := r.Detect(msg)
	if h == nil {
		return msg, nil
	}
	return msg.WithProduct(h.ProductType()), h
}

// All returns the handlers in detection order.
func (r *Registry) All() []Handler {
	return r.handlers
}

// DefaultRegistry returns the standard product chain: Swap, NDF, Options,
// Futures, Forward, then Spot as the fallback for trade messages.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Swap{}, NDF{}, Options{}, Futures{}, Forward{}, Spot{},
	)
}

func value(msg *fixparser.Message, tag int) string {
	v, _ := msg.Value(tag)
	return v
}

func securityTypeIs(msg *fixparser.Message, types ...string) bool {
	st := strings.ToUpper(value(msg, fixtag.SecurityType))
	if st == "" {
		return false
	}
	for _, t := range types {
		if st == t {
			return true
		}
	}
	return false
}

func has(msg *fixparser.Message, tag int) bool {
	return value(msg, tag) != ""
}

// Swap detects FX swaps: SecurityType FXSWAP, OrdType G (ForexSwap), both
// near and far settlement dates, a far leg tenor, or a near tenor paired
// with a far leg quantity.
type Swap struct{}

func (Swap) ProductType() string { return "Swap" }

func (Swap) Detect(msg *fixparser.Message) bool {
	switch {
	case securityTypeIs(msg, "FXSWAP"):
		return true
	case value(msg, fixtag.OrdType) == fixtag.OrdTypeForexSwap:
		return true
	case has(msg, fixtag.SettlDate) && has(msg, fixtag.SettlDate2):
		return true
	case has(msg, fixtag.FarLegSettlType):
		return true
	case has(msg, fixtag.SettlType) && has(msg, fixtag.OrderQty2):
		return true
	}
	return false
}

func (Swap) Details(msg *fixparser.Message) map[string]string {
	return map[string]string{
		"near_settlement_date": value(msg, fixtag.SettlDate),
		"far_settlement_date":  value(msg, fixtag.SettlDate2),
		"near_quantity":        value(msg, fixtag.LastQty),
		"far_quantity":         value(msg, fixtag.OrderQty2),
		"spot_rate":            value(msg, fixtag.LastSpotRate),
		"forward_points":       value(msg, fixtag.LastForwardPoints),
	}
}

// NDF detects non-deliverable forwards: SecurityType FXNDF or the NDF fixing
// tags.
type NDF struct{}

func (NDF) ProductType() string { return "NDF" }

func (NDF) Detect(msg *fixparser.Message) bool {
	if securityTypeIs(msg, "FXNDF") {
		return true
	}
	return has(msg, fixtag.NDFFixingDate) || has(msg, fixtag.NDFFixingSource)
}

func (NDF) Details(msg *fixparser.Message) map[string]string {
	return map[string]string{
		"settlement_date":     value(msg, fixtag.SettlDate),
		"fixing_date":         value(msg, fixtag.NDFFixingDate),
		"fixing_rate":         value(msg, fixtag.NDFFixingRate),
		"fixing_source":       value(msg, fixtag.NDFFixingSource),
		"settlement_currency": value(msg, fixtag.SettlCurrency),
	}
}

// Options detects FX options: SecurityType OPT, PutOrCall, or a strike price.
type Options struct{}

func (Options) ProductType() string { return "Options" }

func (Options) Detect(msg *fixparser.Message) bool {
	if securityTypeIs(msg, "OPT") {
		return true
	}
	return has(msg, fixtag.PutOrCall) || has(msg, fixtag.StrikePrice)
}

func (Options) Details(msg *fixparser.Message) map[string]string {
	details := map[string]string{
		"strike_price":        value(msg, fixtag.StrikePrice),
		"maturity_date":       value(msg, fixtag.MaturityDate),
		"maturity_month_year": value(msg, fixtag.MaturityMonthYear),
		"opt_attribute":       value(msg, fixtag.OptAttribute),
	}
	if f := msg.Get(fixtag.PutOrCall); f != nil {
		if f.ValueDescription != "" {
			details["put_or_call"] = f.ValueDescription
		} else {
			details["put_or_call"] = f.RawValue
		}
	}
	return details
}

// Futures detects listed FX futures: SecurityType FUT, or a contract month
// together with a listing exchange.
type Futures struct{}

func (Futures) ProductType() string { return "Futures" }

func (Futures) Detect(msg *fixparser.Message) bool {
	if securityTypeIs(msg, "FUT") {
		return true
	}
	return has(msg, fixtag.MaturityMonthYear) && has(msg, fixtag.SecurityExchange)
}

func (Futures) Details(msg *fixparser.Message) map[string]string {
	return map[string]string{
		"maturity_month_year": value(msg, fixtag.MaturityMonthYear),
		"maturity_date":       value(msg, fixtag.MaturityDate),
		"security_exchange":   value(msg, fixtag.SecurityExchange),
		"contract_multiplier": value(msg, fixtag.ContractMultiplier),
	}
}

// Forward detects outright forwards: SecurityType FXFWD, a forward-dated
// settlement type, or forward points on the execution.
type Forward struct{}

func (Forward) ProductType() string { return "Forward" }

func (Forward) Detect(msg *fixparser.Message) bool {
	if securityTypeIs(msg, "FXFWD") {
		return true
	}
	switch value(msg, fixtag.SettlType) {
	case "6", "B":
		return true
	}
	return has(msg, fixtag.LastForwardPoints)
}

func (Forward) Details(msg *fixparser.Message) map[string]string {
	return map[string]string{
		"settlement_date": value(msg, fixtag.SettlDate),
		"spot_rate":       value(msg, fixtag.LastSpotRate),
		"forward_points":  value(msg, fixtag.LastForwardPoints),
	}
}

// tradeMsgTypes are the messages that can carry a product at all. Session
// traffic (heartbeats, logons, rejects) never gets a product type.
var tradeMsgTypes = map[string]bool{
	"8": true, "D": true, "E": true, "F": true, "G": true,
	"R": true, "S": true, "i": true, "W": true, "X": true,
	"AE": true, "AR": true,
}

// Spot is the fallback product for trade messages: an explicit spot security
// type or settlement code, or any trade message nothing more specific
// claimed.
type Spot struct{}

func (Spot) ProductType() string { return "Spot" }

func (Spot) Detect(msg *fixparser.Message) bool {
	if !tradeMsgTypes[msg.MsgType()] {
		return false
	}
	if securityTypeIs(msg, "FXSPOT", "FX") {
		return true
	}
	switch value(msg, fixtag.SettlType) {
	case "0", "1", "2", "3", "C":
		return true
	}
	return true
}

func (Spot) Details(msg *fixparser.Message) map[string]string {
	return map[string]string{
		"settlement_date": value(msg, fixtag.SettlDate),
		"spot_rate":       value(msg, fixtag.LastSpotRate),
	}
}
