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

// BloombergDOR handles Bloomberg DOR (Derivatives Order Routing) messages:
// the ORP/DOR FIX protocol for FX spot, forward, swap, NDF, and algo orders.
// The 22000 range carries Bloomberg's FX extensions.
type BloombergDOR struct{}

func (*BloombergDOR) Name() string { return "Bloomberg DOR" }

func (*BloombergDOR) SenderCompIDs() []string {
	return []string{"BLOOMBERG_DOR", "BBGDOR", "DOR", "FXOM", "ORP"}
}

func (*BloombergDOR) CustomTags() []dict.Definition {
	return []dict.Definition{
		// FX algo fill statistics
		{Tag: 22913, Name: "LastMktSpotRate", Type: dict.TypePrice, Description: "FX Algo: prevailing market spot rate at the time of fill."},
		{Tag: 22914, Name: "AvgMktSpotRate", Type: dict.TypePrice, Description: "FX Algo: average prevailing market spot rate across all fills."},
		{Tag: 2793, Name: "AvgSpotRate", Type: dict.TypePrice, Description: "FX Algo: average all-in spot rate of all fills."},
		{Tag: 2794, Name: "AvgForwardPoints", Type: dict.TypePriceOffset, Description: "FX Algo: average forward points of all fills."},
		{Tag: 9032, Name: "AvgCommission", Type: dict.TypeAmt, Description: "FX Algo: total average commission across all fills."},
		{Tag: 22858, Name: "AlgoStrategyID", Type: dict.TypeString, Description: "FX Algo: Bloomberg internal identifier for the algorithm strategy."},

		// Tenors and currencies
		{Tag: 6215, Name: "Tenor", Type: dict.TypeTenor, Description: "FX tenor code (e.g. SP, 1W, 1M, 3M, 1Y)."},
		{Tag: 22010, Name: "LegTenor", Type: dict.TypeTenor, Description: "FX Swap: tenor code for the individual leg."},
		{Tag: 22262, Name: "CalculatedCurrency", Type: dict.TypeCurrency, Description: "Currency opposite to the dealt currency."},
		{Tag: 22263, Name: "LegCalculatedCurrency", Type: dict.TypeCurrency, Description: "Leg-level currency opposite to the dealt currency."},
		{Tag: 1056, Name: "CalculatedCcyLastQty", Type: dict.TypeQty, Description: "Calculated quantity in the non-dealt currency."},
		{Tag: 1071, Name: "LastSwapPoints", Type: dict.TypePriceOffset, Description: "FX Swap: swap points differential."},

		// Trade workflow
		{Tag: 22869, Name: "ForexAccommodationTransaction", Type: dict.TypeBoolean, Description: "Whether the trade is an FX accommodation transaction."},
		{Tag: 9575, Name: "StagedOrderIsInquiry", Type: dict.TypeBoolean, Description: "Distinguishes staged orders from inquiries."},
		{Tag: 22923, Name: "ManualTicket", Type: dict.TypeInt, Description: "Manual ticket indicator.", Enums: map[string]string{
			"0": "No", "1": "Before venue", "2": "After venue",
		}},
		{Tag: 22000, Name: "AutoConfirm", Type: dict.TypeBoolean, Description: "Whether the trade should be auto-confirmed."},
		{Tag: 22040, Name: "DV01", Type: dict.TypePrice, Description: "Dollar Value of 01: interest rate risk measure."},
		{Tag: 22041, Name: "LegDV01", Type: dict.TypePrice, Description: "Leg-level Dollar Value of 01."},
		{Tag: 22941, Name: "SideProtection", Type: dict.TypeInt, Description: "Side intended by the taker in an RFM request."},
		{Tag: 9896, Name: "PricingNo", Type: dict.TypeString, Description: "Client's TS PX number for quote routing."},
		{Tag: 2795, Name: "OffshoreIndicator", Type: dict.TypeInt, Description: "Offshore indicator.", Enums: map[string]string{
			"0": "Regular", "1": "Offshore", "2": "Onshore",
		}},

		// Bloomberg notes group
		{Tag: 9610, Name: "NoNotes", Type: dict.TypeNumInGroup, Description: "Number of note entries in the Bloomberg notes repeating group."},
		{Tag: 9612, Name: "NoteLabel", Type: dict.TypeString, Description: "Label for a Bloomberg note entry."},
		{Tag: 9613, Name: "NoteText", Type: dict.TypeString, Description: "Text content of a Bloomberg note entry."},
	}
}
