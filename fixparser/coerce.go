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

package fixparser

import (
	"strconv"

	"github.com/chanchunyinjohnny/FxFixParser/dict"
)

// Coerce converts a raw textual value to the Go type declared by the field's
// semantic type: integer kinds to int, price/quantity kinds to float64,
// BOOLEAN to bool (Y/N only), everything else stays a string.
//
// On malformed input the raw string is returned alongside a TypeCoercionError
// so the caller can retain the value and record a flag; coercion never aborts
// a parse on its own.
func Coerce(tag int, raw, semanticType string) (any, *TypeCoercionError) {
	switch semanticType {
	case dict.TypeInt, dict.TypeLength, dict.TypeSeqNum, dict.TypeNumInGroup, dict.TypeDayOfMonth:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return raw, &TypeCoercionError{Tag: tag, RawValue: raw, Type: semanticType}
		}
		return v, nil

	case dict.TypeFloat, dict.TypePrice, dict.TypeQty, dict.TypeAmt, dict.TypePercentage, dict.TypePriceOffset:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw, &TypeCoercionError{Tag: tag, RawValue: raw, Type: semanticType}
		}
		return v, nil

	case dict.TypeBoolean:
		switch raw {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		default:
			return raw, &TypeCoercionError{Tag: tag, RawValue: raw, Type: semanticType}
		}

	default:
		return raw, nil
	}
}
