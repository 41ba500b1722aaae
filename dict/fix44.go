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

package dict

// FIX44Definitions returns the base-layer tag table: the FIX 4.4 fields that
// appear in FX trading flows. A full FIX44.xml data dictionary can replace
// this layer via LoadFIX44Spec when richer coverage is needed.
func FIX44Definitions() []Definition {
	return []Definition{
		// Header fields
		{Tag: 8, Name: "BeginString", Type: TypeString, Description: "FIX protocol version identifier."},
		{Tag: 9, Name: "BodyLength", Type: TypeLength, Description: "Message body length in bytes, counted from after the tag 9 delimiter to before tag 10."},
		{Tag: 35, Name: "MsgType", Type: TypeString, Description: "Message type identifier.", Enums: map[string]string{
			"0": "Heartbeat", "1": "TestRequest", "2": "ResendRequest",
			"3": "Reject", "4": "SequenceReset", "5": "Logout",
			"6": "IOI", "7": "Advertisement", "8": "ExecutionReport",
			"9": "OrderCancelReject", "A": "Logon", "B": "News",
			"C": "Email", "D": "NewOrderSingle", "E": "NewOrderList",
			"F": "OrderCancelRequest", "G": "OrderCancelReplaceRequest",
			"H": "OrderStatusRequest", "J": "AllocationInstruction",
			"Q": "DontKnowTrade", "R": "QuoteRequest", "S": "Quote",
			"V": "MarketDataRequest", "W": "MarketDataSnapshotFullRefresh",
			"X": "MarketDataIncrementalRefresh", "Y": "MarketDataRequestReject",
			"Z": "QuoteCancel", "a": "QuoteStatusRequest", "b": "MassQuoteAck",
			"i": "MassQuote", "j": "BusinessMessageReject",
			"AE": "TradeCaptureReport", "AR": "TradeCaptureReportRequest",
		}},
		{Tag: 34, Name: "MsgSeqNum", Type: TypeSeqNum, Description: "Message sequence number within the FIX session."},
		{Tag: 49, Name: "SenderCompID", Type: TypeString, Description: "Sender's company or system identifier."},
		{Tag: 56, Name: "TargetCompID", Type: TypeString, Description: "Intended recipient's company or system identifier."},
		{Tag: 52, Name: "SendingTime", Type: TypeUTCTime, Description: "UTC timestamp of message transmission."},
		{Tag: 50, Name: "SenderSubID", Type: TypeString, Description: "Sender sub-identifier (desk, trader, or application)."},
		{Tag: 57, Name: "TargetSubID", Type: TypeString, Description: "Recipient sub-identifier."},
		{Tag: 115, Name: "OnBehalfOfCompID", Type: TypeString, Description: "Originating firm when routed through an intermediary."},
		{Tag: 116, Name: "OnBehalfOfSubID", Type: TypeString, Description: "Originating sub-identifier."},
		{Tag: 128, Name: "DeliverToCompID", Type: TypeString, Description: "Final destination when routed through intermediaries."},
		{Tag: 129, Name: "DeliverToSubID", Type: TypeString, Description: "Final destination sub-identifier."},
		{Tag: 43, Name: "PossDupFlag", Type: TypeBoolean, Description: "Message may duplicate a previously sent message.", Enums: yesNo()},
		{Tag: 97, Name: "PossResend", Type: TypeBoolean, Description: "Message may have been sent before under another sequence number.", Enums: yesNo()},
		{Tag: 122, Name: "OrigSendingTime", Type: TypeUTCTime, Description: "Sending time of the original transmission when PossDupFlag=Y."},

		// Trailer fields
		{Tag: 10, Name: "CheckSum", Type: TypeString, Description: "Three-digit checksum: byte sum of the message modulo 256, zero padded."},
		{Tag: 93, Name: "SignatureLength", Type: TypeLength, Description: "Length of the signature field."},
		{Tag: 89, Name: "Signature", Type: TypeString, Description: "Electronic signature."},

		// Order and trade fields
		{Tag: 1, Name: "Account", Type: TypeString, Description: "Trading account for booking and attribution."},
		{Tag: 11, Name: "ClOrdID", Type: TypeString, Description: "Client-assigned unique order identifier."},
		{Tag: 37, Name: "OrderID", Type: TypeString, Description: "Venue-assigned unique order identifier."},
		{Tag: 17, Name: "ExecID", Type: TypeString, Description: "Unique identifier of this execution report."},
		{Tag: 19, Name: "ExecRefID", Type: TypeString, Description: "Reference to a prior execution for corrections and busts."},
		{Tag: 39, Name: "OrdStatus", Type: TypeChar, Description: "Current state of the order.", Enums: map[string]string{
			"0": "New", "1": "PartiallyFilled", "2": "Filled", "3": "DoneForDay",
			"4": "Canceled", "5": "Replaced", "6": "PendingCancel",
			"7": "Stopped", "8": "Rejected", "9": "Suspended",
			"A": "PendingNew", "B": "Calculated", "C": "Expired",
			"D": "AcceptedForBidding", "E": "PendingReplace",
		}},
		{Tag: 40, Name: "OrdType", Type: TypeChar, Description: "How the order should be executed.", Enums: map[string]string{
			"1": "Market", "2": "Limit", "3": "Stop", "4": "StopLimit",
			"C": "ForexMarket", "D": "PreviouslyQuoted", "F": "ForexLimit",
			"G": "ForexSwap", "H": "ForexPreviouslyQuoted", "P": "Pegged",
		}},
		{Tag: 41, Name: "OrigClOrdID", Type: TypeString, Description: "ClOrdID of the order being amended or canceled."},
		{Tag: 54, Name: "Side", Type: TypeChar, Description: "Direction of the trade for the base currency.", Enums: map[string]string{
			"1": "Buy", "2": "Sell", "3": "BuyMinus", "4": "SellPlus",
			"5": "SellShort", "6": "SellShortExempt", "7": "Undisclosed",
			"8": "Cross", "9": "CrossShort", "B": "AsDefined", "C": "Opposite",
		}},
		{Tag: 55, Name: "Symbol", Type: TypeString, Description: "Currency pair, base currency first (e.g. EUR/USD)."},
		{Tag: 48, Name: "SecurityID", Type: TypeString, Description: "Alternative instrument identifier."},
		{Tag: 22, Name: "SecurityIDSource", Type: TypeString, Description: "Source of the SecurityID value.", Enums: map[string]string{
			"1": "CUSIP", "2": "SEDOL", "4": "ISINNumber", "5": "RICCode",
			"6": "ISOCurrencyCode", "8": "ExchangeSymbol",
		}},
		{Tag: 65, Name: "SymbolSfx", Type: TypeString, Description: "Symbol suffix for instrument variants."},
		{Tag: 167, Name: "SecurityType", Type: TypeString, Description: "FX instrument type.", Enums: map[string]string{
			"FX": "ForeignExchange", "FXSPOT": "FXSpot", "FXFWD": "FXForward",
			"FXSWAP": "FXSwap", "FXNDF": "FXNonDeliverableForward",
			"FUT": "Future", "OPT": "Option",
		}},
		{Tag: 58, Name: "Text", Type: TypeString, Description: "Free-form text, typically reject reasons."},
		{Tag: 59, Name: "TimeInForce", Type: TypeChar, Description: "How long the order remains active.", Enums: map[string]string{
			"0": "Day", "1": "GoodTillCancel", "3": "ImmediateOrCancel",
			"4": "FillOrKill", "6": "GoodTillDate",
		}},
		{Tag: 60, Name: "TransactTime", Type: TypeUTCTime, Description: "UTC time of the transaction."},
		{Tag: 75, Name: "TradeDate", Type: TypeLocalDate, Description: "Date the trade was agreed (YYYYMMDD)."},
		{Tag: 150, Name: "ExecType", Type: TypeChar, Description: "Purpose of the execution report.", Enums: map[string]string{
			"0": "New", "1": "PartialFill", "2": "Fill", "3": "DoneForDay",
			"4": "Canceled", "5": "Replaced", "6": "PendingCancel",
			"8": "Rejected", "A": "PendingNew", "C": "Expired",
			"D": "Restated", "F": "Trade", "I": "OrderStatus",
		}},

		// Price and quantity fields
		{Tag: 31, Name: "LastPx", Type: TypePrice, Description: "Rate at which the last fill executed."},
		{Tag: 32, Name: "LastQty", Type: TypeQty, Description: "Amount filled in the last execution, in the deal currency."},
		{Tag: 38, Name: "OrderQty", Type: TypeQty, Description: "Total amount to trade in the deal currency."},
		{Tag: 44, Name: "Price", Type: TypePrice, Description: "Limit or indicative price."},
		{Tag: 6, Name: "AvgPx", Type: TypePrice, Description: "Volume-weighted average fill price."},
		{Tag: 14, Name: "CumQty", Type: TypeQty, Description: "Total quantity filled so far."},
		{Tag: 151, Name: "LeavesQty", Type: TypeQty, Description: "Quantity remaining open."},
		{Tag: 99, Name: "StopPx", Type: TypePrice, Description: "Trigger price for stop orders."},
		{Tag: 110, Name: "MinQty", Type: TypeQty, Description: "Minimum acceptable fill size."},
		{Tag: 111, Name: "MaxFloor", Type: TypeQty, Description: "Maximum displayed quantity for iceberg orders."},

		// Currency and settlement fields
		{Tag: 15, Name: "Currency", Type: TypeCurrency, Description: "Deal currency in which OrderQty is expressed."},
		{Tag: 120, Name: "SettlCurrency", Type: TypeCurrency, Description: "Currency for cash settlement, significant for NDFs."},
		{Tag: 119, Name: "SettlCurrAmt", Type: TypeAmt, Description: "Amount to settle in the settlement currency."},
		{Tag: 155, Name: "SettlCurrFxRate", Type: TypeFloat, Description: "Rate converting deal currency to settlement currency."},
		{Tag: 156, Name: "SettlCurrFxRateCalc", Type: TypeChar, Description: "How to apply SettlCurrFxRate.", Enums: map[string]string{
			"M": "Multiply", "D": "Divide",
		}},
		{Tag: 63, Name: "SettlType", Type: TypeString, Description: "Settlement tenor determining the value date.", Enums: map[string]string{
			"0": "Regular", "1": "Cash", "2": "NextDay", "3": "TPlus2",
			"4": "TPlus3", "5": "TPlus4", "6": "Future", "7": "WhenIssued",
			"8": "SellersOption", "9": "TPlus5", "B": "BrokenDate", "C": "FXSpotNextSettlement",
		}},
		{Tag: 64, Name: "SettlDate", Type: TypeLocalDate, Description: "Value date (YYYYMMDD). Near leg date for swaps."},
		{Tag: 193, Name: "SettlDate2", Type: TypeLocalDate, Description: "Far leg value date for FX swaps (YYYYMMDD)."},
		{Tag: 192, Name: "OrderQty2", Type: TypeQty, Description: "Far leg quantity for FX swaps."},
		{Tag: 194, Name: "LastSpotRate", Type: TypePrice, Description: "Spot rate component of the executed price."},
		{Tag: 195, Name: "LastForwardPoints", Type: TypePriceOffset, Description: "Forward points added to LastSpotRate."},
		{Tag: 640, Name: "Price2", Type: TypePrice, Description: "Far leg all-in price for FX swaps."},
		{Tag: 641, Name: "LastForwardPoints2", Type: TypePriceOffset, Description: "Far leg forward points for FX swaps."},
		{Tag: 642, Name: "BidForwardPoints2", Type: TypePriceOffset, Description: "Far leg bid forward points."},
		{Tag: 643, Name: "OfferForwardPoints2", Type: TypePriceOffset, Description: "Far leg offer forward points."},

		// Quote fields
		{Tag: 117, Name: "QuoteID", Type: TypeString, Description: "Unique quote identifier."},
		{Tag: 131, Name: "QuoteReqID", Type: TypeString, Description: "Identifier of the originating quote request."},
		{Tag: 132, Name: "BidPx", Type: TypePrice, Description: "Bid price of the quote."},
		{Tag: 133, Name: "OfferPx", Type: TypePrice, Description: "Offer price of the quote."},
		{Tag: 134, Name: "BidSize", Type: TypeQty, Description: "Quantity available at the bid."},
		{Tag: 135, Name: "OfferSize", Type: TypeQty, Description: "Quantity available at the offer."},
		{Tag: 188, Name: "BidSpotRate", Type: TypePrice, Description: "Spot rate component of the bid."},
		{Tag: 189, Name: "BidForwardPoints", Type: TypePriceOffset, Description: "Forward points component of the bid."},
		{Tag: 190, Name: "OfferSpotRate", Type: TypePrice, Description: "Spot rate component of the offer."},
		{Tag: 191, Name: "OfferForwardPoints", Type: TypePriceOffset, Description: "Forward points component of the offer."},
		{Tag: 126, Name: "ExpireTime", Type: TypeUTCTime, Description: "UTC time the order or quote expires."},
		{Tag: 62, Name: "ValidUntilTime", Type: TypeUTCTime, Description: "UTC time the quote remains valid."},
		{Tag: 537, Name: "QuoteType", Type: TypeInt, Description: "Nature of the quote.", Enums: map[string]string{
			"0": "Indicative", "1": "Tradeable", "2": "RestrictedTradeable", "3": "Counter",
		}},

		// Market data fields
		{Tag: 262, Name: "MDReqID", Type: TypeString, Description: "Unique market data request identifier."},
		{Tag: 263, Name: "SubscriptionRequestType", Type: TypeChar, Description: "Snapshot, subscribe, or unsubscribe.", Enums: map[string]string{
			"0": "Snapshot", "1": "SnapshotAndUpdates", "2": "Unsubscribe",
		}},
		{Tag: 264, Name: "MarketDepth", Type: TypeInt, Description: "Depth of book requested; 0 for full book."},
		{Tag: 265, Name: "MDUpdateType", Type: TypeInt, Description: "Full refresh or incremental.", Enums: map[string]string{
			"0": "FullRefresh", "1": "IncrementalRefresh",
		}},
		{Tag: 267, Name: "NoMDEntryTypes", Type: TypeNumInGroup, Description: "Number of market data entry types requested."},
		{Tag: 268, Name: "NoMDEntries", Type: TypeNumInGroup, Description: "Number of market data entries in the message."},
		{Tag: 269, Name: "MDEntryType", Type: TypeChar, Description: "Kind of market data entry.", Enums: map[string]string{
			"0": "Bid", "1": "Offer", "2": "Trade", "4": "OpeningPrice",
			"5": "ClosingPrice", "6": "SettlementPrice", "7": "TradingSessionHighPrice",
			"8": "TradingSessionLowPrice", "B": "TradeVolume",
		}},
		{Tag: 270, Name: "MDEntryPx", Type: TypePrice, Description: "Price of the market data entry."},
		{Tag: 271, Name: "MDEntrySize", Type: TypeQty, Description: "Quantity of the market data entry."},
		{Tag: 272, Name: "MDEntryDate", Type: TypeLocalDate, Description: "Date of the market data entry."},
		{Tag: 273, Name: "MDEntryTime", Type: TypeString, Description: "Time of the market data entry."},
		{Tag: 274, Name: "TickDirection", Type: TypeChar, Description: "Direction of the last tick.", Enums: map[string]string{
			"0": "PlusTick", "1": "ZeroPlusTick", "2": "MinusTick", "3": "ZeroMinusTick",
		}},
		{Tag: 276, Name: "QuoteCondition", Type: TypeString, Description: "Condition qualifying the quote."},
		{Tag: 277, Name: "TradeCondition", Type: TypeString, Description: "Condition qualifying the trade."},
		{Tag: 278, Name: "MDEntryID", Type: TypeString, Description: "Unique identifier of the market data entry."},
		{Tag: 279, Name: "MDUpdateAction", Type: TypeChar, Description: "Action for an incremental update entry.", Enums: map[string]string{
			"0": "New", "1": "Change", "2": "Delete",
		}},
		{Tag: 280, Name: "MDEntryRefID", Type: TypeString, Description: "Reference to a previous market data entry."},
		{Tag: 282, Name: "MDEntryOriginator", Type: TypeString, Description: "Originator of the entry."},
		{Tag: 286, Name: "OpenCloseSettlFlag", Type: TypeString, Description: "Qualifies open, close, or settlement entries."},
		{Tag: 290, Name: "MDEntryPositionNo", Type: TypeInt, Description: "Display position of the entry in the book."},
		{Tag: 1026, Name: "MDEntrySpotRate", Type: TypeFloat, Description: "Spot rate component of a forward market data entry."},
		{Tag: 1027, Name: "MDEntryForwardPoints", Type: TypePriceOffset, Description: "Forward points component of a market data entry."},

		// Derivatives fields
		{Tag: 200, Name: "MaturityMonthYear", Type: TypeString, Description: "Contract maturity month and year (YYYYMM)."},
		{Tag: 201, Name: "PutOrCall", Type: TypeInt, Description: "Option right.", Enums: map[string]string{
			"0": "Put", "1": "Call",
		}},
		{Tag: 202, Name: "StrikePrice", Type: TypePrice, Description: "Option strike price."},
		{Tag: 206, Name: "OptAttribute", Type: TypeChar, Description: "Additional option attribute (exercise style)."},
		{Tag: 207, Name: "SecurityExchange", Type: TypeString, Description: "Exchange where the instrument is listed."},
		{Tag: 231, Name: "ContractMultiplier", Type: TypeFloat, Description: "Multiplier converting contracts to notional."},
		{Tag: 541, Name: "MaturityDate", Type: TypeLocalDate, Description: "Contract maturity date (YYYYMMDD)."},

		// Party fields
		{Tag: 453, Name: "NoPartyIDs", Type: TypeNumInGroup, Description: "Number of party entries."},
		{Tag: 448, Name: "PartyID", Type: TypeString, Description: "Identifier of the party."},
		{Tag: 447, Name: "PartyIDSource", Type: TypeChar, Description: "Scheme of the PartyID value.", Enums: map[string]string{
			"B": "BIC", "C": "AcceptedMarketParticipant", "D": "ProprietaryCustomCode",
			"G": "MIC", "N": "LEI",
		}},
		{Tag: 452, Name: "PartyRole", Type: TypeInt, Description: "Role of the party in the trade.", Enums: map[string]string{
			"1": "ExecutingFirm", "3": "ClientID", "11": "OrderOriginationTrader",
			"12": "ExecutingTrader", "13": "OrderOriginationFirm", "17": "ContraFirm",
		}},
		{Tag: 802, Name: "NoPartySubIDs", Type: TypeNumInGroup, Description: "Number of sub-identifiers for the party."},
		{Tag: 523, Name: "PartySubID", Type: TypeString, Description: "Sub-identifier of the party."},
		{Tag: 803, Name: "PartySubIDType", Type: TypeInt, Description: "Type of the party sub-identifier."},

		// Instrument leg fields
		{Tag: 555, Name: "NoLegs", Type: TypeNumInGroup, Description: "Number of instrument legs."},
		{Tag: 600, Name: "LegSymbol", Type: TypeString, Description: "Currency pair of the leg."},
		{Tag: 602, Name: "LegSecurityID", Type: TypeString, Description: "Alternative identifier of the leg instrument."},
		{Tag: 603, Name: "LegSecurityIDSource", Type: TypeString, Description: "Source of LegSecurityID."},
		{Tag: 609, Name: "LegSecurityType", Type: TypeString, Description: "Instrument type of the leg."},
		{Tag: 611, Name: "LegMaturityDate", Type: TypeLocalDate, Description: "Maturity date of the leg."},
		{Tag: 612, Name: "LegStrikePrice", Type: TypePrice, Description: "Strike price of the leg."},
		{Tag: 556, Name: "LegCurrency", Type: TypeCurrency, Description: "Deal currency of the leg."},
		{Tag: 566, Name: "LegPrice", Type: TypePrice, Description: "Price of the leg."},
		{Tag: 587, Name: "LegSettlType", Type: TypeString, Description: "Settlement tenor of the leg."},
		{Tag: 588, Name: "LegSettlDate", Type: TypeLocalDate, Description: "Value date of the leg."},
		{Tag: 620, Name: "LegSide", Type: TypeChar, Description: "Side of the leg."},
		{Tag: 623, Name: "LegRatioQty", Type: TypeFloat, Description: "Ratio quantity of the leg."},
		{Tag: 637, Name: "LegLastPx", Type: TypePrice, Description: "Fill price of the leg."},
		{Tag: 654, Name: "LegRefID", Type: TypeString, Description: "Unique identifier of the leg."},
		{Tag: 687, Name: "LegQty", Type: TypeQty, Description: "Quantity of the leg."},

		// Allocation fields
		{Tag: 78, Name: "NoAllocs", Type: TypeNumInGroup, Description: "Number of allocation entries."},
		{Tag: 79, Name: "AllocAccount", Type: TypeString, Description: "Account receiving this allocation."},
		{Tag: 80, Name: "AllocQty", Type: TypeQty, Description: "Quantity allocated to the account."},
		{Tag: 81, Name: "ProcessCode", Type: TypeChar, Description: "Processing instruction for the allocation."},
		{Tag: 366, Name: "AllocPrice", Type: TypePrice, Description: "Price for this allocation."},
		{Tag: 467, Name: "IndividualAllocID", Type: TypeString, Description: "Identifier of the individual allocation."},
		{Tag: 661, Name: "AllocAcctIDSource", Type: TypeInt, Description: "Scheme of the AllocAccount value."},
		{Tag: 736, Name: "AllocSettlCurrency", Type: TypeCurrency, Description: "Settlement currency for the allocation."},
		{Tag: 737, Name: "AllocSettlCurrAmt", Type: TypeAmt, Description: "Settlement amount for the allocation."},

		// Order list fields
		{Tag: 73, Name: "NoOrders", Type: TypeNumInGroup, Description: "Number of orders in the list."},
		{Tag: 67, Name: "ListSeqNo", Type: TypeInt, Description: "Sequence of the order within the list."},
		{Tag: 526, Name: "SecondaryClOrdID", Type: TypeString, Description: "Secondary client order identifier."},
		{Tag: 583, Name: "ClOrdLinkID", Type: TypeString, Description: "Links related client orders."},

		// Related symbol fields
		{Tag: 146, Name: "NoRelatedSym", Type: TypeNumInGroup, Description: "Number of related instruments."},
		{Tag: 106, Name: "Issuer", Type: TypeString, Description: "Issuer of the instrument."},
		{Tag: 107, Name: "SecurityDesc", Type: TypeString, Description: "Free-form instrument description."},

		// Trading session fields
		{Tag: 1141, Name: "NoMDFeedTypes", Type: TypeNumInGroup, Description: "Number of trading session rule entries."},
		{Tag: 336, Name: "TradingSessionID", Type: TypeString, Description: "Trading session identifier."},
		{Tag: 625, Name: "TradingSessionSubID", Type: TypeString, Description: "Trading session sub-identifier."},

		// Reject fields
		{Tag: 45, Name: "RefSeqNum", Type: TypeSeqNum, Description: "Sequence number of the rejected message."},
		{Tag: 371, Name: "RefTagID", Type: TypeInt, Description: "Tag that caused the reject."},
		{Tag: 372, Name: "RefMsgType", Type: TypeString, Description: "MsgType of the rejected message."},
		{Tag: 373, Name: "SessionRejectReason", Type: TypeInt, Description: "Reason the session layer rejected the message.", Enums: map[string]string{
			"0": "InvalidTagNumber", "1": "RequiredTagMissing", "2": "TagNotDefinedForThisMessageType",
			"4": "TagSpecifiedWithoutAValue", "5": "ValueIsIncorrect", "6": "IncorrectDataFormatForValue",
			"9": "CompIDProblem", "11": "InvalidMsgType",
		}},
		{Tag: 380, Name: "BusinessRejectReason", Type: TypeInt, Description: "Reason the application layer rejected the message.", Enums: map[string]string{
			"0": "Other", "1": "UnknownID", "2": "UnknownSecurity",
			"3": "UnsupportedMessageType", "4": "ApplicationNotAvailable",
			"5": "ConditionallyRequiredFieldMissing", "6": "NotAuthorized",
		}},
	}
}

func yesNo() map[string]string {
	return map[string]string{"Y": "Yes", "N": "No"}
}
