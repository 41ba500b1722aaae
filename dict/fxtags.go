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

// TenorValues maps the tenor codes used by FX liquidity providers to their
// descriptions. Applied to settlement type fields in the curated layer and
// reused by venue extension tables.
var TenorValues = map[string]string{
	"SPOT": "Spot",
	"TOD":  "Today",
	"TOM":  "Tomorrow",
	"ONI":  "Overnight",
	"TNX":  "Tomorrow Next",
	"SNX":  "Spot Next",
	"D2":   "Spot + 2 Days",
	"D3":   "Spot + 3 Days",
	"W1":   "1 Week",
	"W2":   "2 Weeks",
	"W3":   "3 Weeks",
	"M1":   "1 Month",
	"M2":   "2 Months",
	"M3":   "3 Months",
	"M6":   "6 Months",
	"M9":   "9 Months",
	"Y1":   "1 Year",
	"Y2":   "2 Years",
	"Y5":   "5 Years",
	"MAR":  "Third Wednesday of next March (IMM)",
	"JUN":  "Third Wednesday of next June (IMM)",
	"SEP":  "Third Wednesday of next September (IMM)",
	"DEC":  "Third Wednesday of next December (IMM)",
	"ME1":  "Last day of current month",
	"ME2":  "Last day of next month",
}

// FXDefinitions returns the curated FX override layer: fields missing from
// the FIX 4.4 base table (later FIX additions and common FX custom tags) plus
// FX-flavored replacements for a few base definitions. This layer sits above
// FIX44Definitions and below any venue extension table.
func FXDefinitions() []Definition {
	return []Definition{
		// FIX 5.0 additions that show up in FX flows
		{Tag: 685, Name: "LegOrderQty", Type: TypeQty, Description: "Order quantity of a multi-leg instrument leg."},
		{Tag: 1362, Name: "NoFills", Type: TypeNumInGroup, Description: "Number of fill entries."},
		{Tag: 1363, Name: "FillExecID", Type: TypeString, Description: "Sell-side identifier of the fill."},
		{Tag: 1364, Name: "FillPx", Type: TypePrice, Description: "Price of the fill."},
		{Tag: 1365, Name: "FillQty", Type: TypeQty, Description: "Quantity of the fill."},
		{Tag: 1443, Name: "FillLiquidityInd", Type: TypeInt, Description: "Whether the fill added or removed liquidity.", Enums: map[string]string{
			"1": "AddedLiquidity", "2": "RemovedLiquidity", "4": "Auction",
		}},
		{Tag: 2446, Name: "AggressorSide", Type: TypeChar, Description: "Side of the aggressing order in the trade.", Enums: map[string]string{
			"1": "Buy", "2": "Sell",
		}},

		// Swap points
		{Tag: 1065, Name: "BidSwapPoints", Type: TypePriceOffset, Description: "Swap points of the bid: far leg minus near leg."},
		{Tag: 1066, Name: "OfferSwapPoints", Type: TypePriceOffset, Description: "Swap points of the offer: far leg minus near leg."},
		{Tag: 1071, Name: "LastSwapPoints", Type: TypePriceOffset, Description: "Swap points differential of the execution."},

		// NDF fixing tags used across venues
		{Tag: 5709, Name: "FixingDate", Type: TypeLocalDate, Description: "NDF fixing date (YYYYMMDD)."},
		{Tag: 5710, Name: "FixingRate", Type: TypePrice, Description: "NDF fixing rate."},
		{Tag: 5711, Name: "FixingSource", Type: TypeString, Description: "Rate source used for the NDF fixing."},

		// Tenor-valued settlement override: the base SettlType enum only
		// carries the numeric FIX codes, FX venues also send tenor strings.
		{Tag: 63, Name: "SettlType", Type: TypeString, Description: "Settlement tenor determining the value date.", Enums: mergeEnums(map[string]string{
			"0": "Regular", "1": "Cash", "2": "NextDay", "3": "TPlus2",
			"4": "TPlus3", "5": "TPlus4", "6": "Future", "7": "WhenIssued",
			"8": "SellersOption", "9": "TPlus5", "B": "BrokenDate", "C": "FXSpotNextSettlement",
		}, TenorValues)},
	}
}

// mergeEnums combines enum maps; later maps win on key collisions.
func mergeEnums(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
