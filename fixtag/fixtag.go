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

// Package fixtag defines the FIX tag numbers referenced throughout the
// decoder, venue handlers, and product classifiers. Tags are plain ints so
// they can index dictionary and schema maps directly.
package fixtag

// --- Header / Trailer Tags ---
const (
	BeginString  = 8
	BodyLength   = 9
	CheckSum     = 10
	MsgSeqNum    = 34
	MsgType      = 35
	PossDupFlag  = 43
	SenderCompID = 49
	SenderSubID  = 50
	SendingTime  = 52
	TargetCompID = 56
	TargetSubID  = 57
	PossResend   = 97
	Signature    = 89
	SignatureLen = 93
)

// --- Order / Trade Tags ---
const (
	Account      = 1
	AvgPx        = 6
	ClOrdID      = 11
	CumQty       = 14
	Currency     = 15
	ExecID       = 17
	LastPx       = 31
	LastQty      = 32
	OrderID      = 37
	OrderQty     = 38
	OrdStatus    = 39
	OrdType      = 40
	OrigClOrdID  = 41
	Price        = 44
	Side         = 54
	Symbol       = 55
	Text         = 58
	TimeInForce  = 59
	TransactTime = 60
	SettlType    = 63
	SettlDate    = 64
	TradeDate    = 75
	ExecType     = 150
	LeavesQty    = 151
	SecurityType = 167
)

// --- Quote Tags ---
const (
	QuoteID            = 117
	QuoteReqID         = 131
	BidPx              = 132
	OfferPx            = 133
	BidSize            = 134
	OfferSize          = 135
	BidSpotRate        = 188
	BidForwardPoints   = 189
	OfferSpotRate      = 190
	OfferForwardPoints = 191
)

// --- FX Forward / Swap Tags ---
const (
	OrderQty2            = 192
	SettlDate2           = 193
	LastSpotRate         = 194
	LastForwardPoints    = 195
	BidForwardPoints2    = 642
	OfferForwardPoints2  = 643
	BidSwapPoints        = 1065
	OfferSwapPoints      = 1066
	SettlCurrency        = 120
	SettlCurrAmt         = 119
	FarLegSettlType      = 8004 // Smart Trade LFX: far leg tenor
	NearLegBidRate       = 8011 // Smart Trade LFX: near leg all-in bid
	NearLegOfferRate     = 8012 // Smart Trade LFX: near leg all-in offer
	FarLegBidRate        = 8019 // Smart Trade LFX: far leg all-in bid
	FarLegOfferRate      = 8020 // Smart Trade LFX: far leg all-in offer
	DealCurrency         = 8021 // Smart Trade LFX: bid currency
)

// --- Derivatives Tags ---
const (
	MaturityMonthYear  = 200
	PutOrCall          = 201
	StrikePrice        = 202
	OptAttribute       = 206
	SecurityExchange   = 207
	ContractMultiplier = 231
	MaturityDate       = 541
)

// --- NDF Custom Tags ---
const (
	NDFFixingDate   = 5709
	NDFFixingRate   = 5710
	NDFFixingSource = 5711
)

// --- Repeating Group Count Tags ---
const (
	NoOrders       = 73
	NoAllocs       = 78
	NoRelatedSym   = 146
	NoMDEntryTypes = 267
	NoMDEntries    = 268
	NoPartyIDs     = 453
	NoPartySubIDs  = 802
	NoLegs         = 555
	NoTradingRules = 1141
	NoFills        = 1362
)

// --- Market Data Tags ---
const (
	MDEntryType = 269
	MDEntryPx   = 270
	MDEntrySize = 271
	MDEntryDate = 272
	MDEntryTime = 273
)

// --- Session Tags ---
const (
	TradingSessionID    = 336
	TradingSessionSubID = 625
)

// --- Party Tags ---
const (
	PartyIDSource  = 447
	PartyID        = 448
	PartyRole      = 452
	PartySubID     = 523
	PartySubIDType = 803
)

// --- Message Types (Tag 35) ---
const (
	MsgTypeHeartbeat        = "0"
	MsgTypeExecutionReport  = "8"
	MsgTypeLogon            = "A"
	MsgTypeNewOrderSingle   = "D"
	MsgTypeNewOrderList     = "E"
	MsgTypeOrderCancel      = "F"
	MsgTypeOrderReplace     = "G"
	MsgTypeQuoteRequest     = "R"
	MsgTypeQuote            = "S"
	MsgTypeMassQuote        = "i"
	MsgTypeMDSnapshot       = "W"
	MsgTypeMDIncremental    = "X"
	MsgTypeTradeCapture     = "AE"
	MsgTypeTradeCaptureReq  = "AR"
)

// --- Side (Tag 54) ---
const (
	SideBuy  = "1"
	SideSell = "2"
)

// --- OrdType (Tag 40) ---
const (
	OrdTypeForexSwap = "G"
)
