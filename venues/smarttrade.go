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

import "github.com/chanchunyinjohnny/FxFixParser/dict"

// SmartTrade handles smartTrade LiquidityFX messages. The custom tag table
// follows the LiquidityFX Distribution FIX ROE v4.2.78.0-GA specification;
// the 8000 range carries FX swap far-leg fields, the 9000 range market data
// and execution extensions, and the 11000 range client-side allocations.
type SmartTrade struct{}

func (*SmartTrade) Name() string { return "Smart Trade (LiquidityFX)" }

func (*SmartTrade) SenderCompIDs() []string {
	return []string{"SMARTTRADE", "SMTRADE", "ST", "LFX_CORE", "LFX", "UAT.ATP.RFS.MKT"}
}

func (*SmartTrade) CustomTags() []dict.Definition {
	return []dict.Definition{
		// MassQuote entry identifiers
		{Tag: 8000, Name: "BidEntryID", Type: dict.TypeString, Description: "Uniquely identifies the bid quote in a MassQuote message."},
		{Tag: 8001, Name: "OfferEntryID", Type: dict.TypeString, Description: "Uniquely identifies the offer quote in a MassQuote message."},

		// FX swap far leg
		{Tag: 8004, Name: "SettlType2", Type: dict.TypeTenor, Description: "FX Swap: far leg tenor.", Enums: dict.TenorValues},
		{Tag: 8011, Name: "BidSpotRate2", Type: dict.TypePrice, Description: "FX Swap: bid entry spot rate of the far leg."},
		{Tag: 8012, Name: "OfferSpotRate2", Type: dict.TypePrice, Description: "FX Swap: offer entry spot rate of the far leg."},
		{Tag: 8013, Name: "BidSize2", Type: dict.TypeQty, Description: "FX Swap: size of the far leg (bid entry)."},
		{Tag: 8014, Name: "OfferSize2", Type: dict.TypeQty, Description: "FX Swap: size of the far leg (offer entry)."},
		{Tag: 8015, Name: "BidSettlDate", Type: dict.TypeLocalDate, Description: "Settlement date for the bid quote (YYYYMMDD); near leg for swaps."},
		{Tag: 8016, Name: "BidSettlDate2", Type: dict.TypeLocalDate, Description: "FX Swap: far leg settlement date of the bid quote (YYYYMMDD)."},
		{Tag: 8017, Name: "OfferSettlDate", Type: dict.TypeLocalDate, Description: "Settlement date for the offer quote (YYYYMMDD); near leg for swaps."},
		{Tag: 8018, Name: "OfferSettlDate2", Type: dict.TypeLocalDate, Description: "FX Swap: far leg settlement date of the offer quote (YYYYMMDD)."},
		{Tag: 8019, Name: "BidPx2", Type: dict.TypePrice, Description: "FX Swap: all-in price of the bid entry's far leg."},
		{Tag: 8020, Name: "OfferPx2", Type: dict.TypePrice, Description: "FX Swap: all-in price of the offer entry's far leg."},
		{Tag: 8021, Name: "BidCurrency", Type: dict.TypeCurrency, Description: "Currency of the bid quote."},
		{Tag: 8022, Name: "OfferCurrency", Type: dict.TypeCurrency, Description: "Currency of the offer quote."},

		// Market data size tiers and timestamps
		{Tag: 9000, Name: "NoRequestedSize", Type: dict.TypeNumInGroup, Description: "Number of size tiers for tiered market data quotes."},
		{Tag: 9001, Name: "RequestedSize", Type: dict.TypeQty, Description: "Size of the quote tier for tiered market data."},
		{Tag: 9122, Name: "MDEntryOrigTime", Type: dict.TypeString, Description: "UTC time received from venue (HH:mm:ss.SSS); only when AggregatedBook=N."},

		// Execution report swap far leg
		{Tag: 9044, Name: "MaturityDate2", Type: dict.TypeLocalDate, Description: "NDS: fixing date of the far leg (YYYYMMDD)."},
		{Tag: 9091, Name: "LastPx2", Type: dict.TypePrice, Description: "Swap: fill price of the far leg."},
		{Tag: 9092, Name: "LastQty2", Type: dict.TypeQty, Description: "Swap: fill amount of the far leg."},
		{Tag: 9093, Name: "LeavesQty2", Type: dict.TypeQty, Description: "Swap: open quantity of the far leg."},
		{Tag: 9094, Name: "CumQty2", Type: dict.TypeQty, Description: "Swap: cumulative filled quantity of the far leg."},
		{Tag: 9095, Name: "LastSpotRate2", Type: dict.TypePrice, Description: "Swap: spot rate of the far leg."},

		// Fixing orders
		{Tag: 9300, Name: "FixingSourceID", Type: dict.TypeString, Description: "ID of the fixing source."},
		{Tag: 9301, Name: "FixingTime", Type: dict.TypeUTCTime, Description: "UTC date/time for fixing orders."},

		// Regulatory and trade identifiers
		{Tag: 9400, Name: "RegulationType", Type: dict.TypeString, Description: "Type of regulated venue.", Enums: map[string]string{
			"SEF": "Swap Execution Facility (US)", "MTF": "Multilateral Trading Facility (EU MIFID2)", "XOFF": "Off-exchange/Other",
		}},
		{Tag: 10002, Name: "UTIPrefix", Type: dict.TypeString, Description: "Unique Trade Id prefix."},
		{Tag: 10003, Name: "UTI", Type: dict.TypeString, Description: "Unique Trade Id."},
		{Tag: 10011, Name: "IsSEFTrade", Type: dict.TypeBoolean, Description: "Whether the order traded on or off a SEF facility."},

		// Forward rolls
		{Tag: 9011, Name: "ClRootOrderID", Type: dict.TypeString, Description: "Forward rolls: ID of the spot order to roll."},

		// Pre-allocations
		{Tag: 11001, Name: "RequestType", Type: dict.TypeChar, Description: "Indicates a multileg QuoteRequest.", Enums: map[string]string{"M": "Multileg"}},
		{Tag: 11003, Name: "AllocationID", Type: dict.TypeString, Description: "Client ID for the pre-allocation group."},
		{Tag: 11078, Name: "C_NoAllocs", Type: dict.TypeNumInGroup, Description: "Number of pre-allocations."},
		{Tag: 11079, Name: "C_AllocAccount", Type: dict.TypeString, Description: "Account for this allocation leg."},
		{Tag: 11467, Name: "C_IndividualAllocID", Type: dict.TypeString, Description: "Client identifier for this allocation leg."},
		{Tag: 11080, Name: "C_AllocQty", Type: dict.TypeQty, Description: "Quantity to be allocated (positive)."},
		{Tag: 11054, Name: "C_AllocSide", Type: dict.TypeChar, Description: "Side of the allocation leg.", Enums: map[string]string{
			"B": "AsDefined (same side)", "C": "Opposite", "U": "Undisclosed",
		}},
		{Tag: 11063, Name: "C_AllocSettlType", Type: dict.TypeTenor, Description: "Swaps: tenor of the allocation leg.", Enums: dict.TenorValues},
		{Tag: 11064, Name: "C_AllocSettlDate", Type: dict.TypeLocalDate, Description: "Swaps: value date of the allocation leg (YYYYMMDD)."},

		// Leg allocations
		{Tag: 11670, Name: "C_NoLegAllocs", Type: dict.TypeNumInGroup, Description: "Number of allocations for this leg."},
		{Tag: 11671, Name: "C_LegAllocAccount", Type: dict.TypeString, Description: "Allocation account for this leg."},
		{Tag: 11672, Name: "C_LegIndividualAllocID", Type: dict.TypeString, Description: "ID of this allocation leg."},
		{Tag: 11673, Name: "C_LegAllocQty", Type: dict.TypeQty, Description: "Quantity to allocate for this leg."},
		{Tag: 11654, Name: "C_LegAllocSide", Type: dict.TypeChar, Description: "Side of this allocation leg.", Enums: map[string]string{
			"B": "AsDefined (same side as leg)", "C": "Opposite (opposite side to leg)",
		}},
	}
}
