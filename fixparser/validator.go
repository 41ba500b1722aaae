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
	"fmt"
	"strconv"

	"github.com/chanchunyinjohnny/FxFixParser/fixtag"
)

// validateStructure enforces the message boundaries: BeginString (8) first,
// CheckSum (10) last. This check always runs; only the numeric checksum and
// body-length verifications are gated by strictness flags.
func validateStructure(fields []RawField) error {
	if fields[0].Tag != fixtag.BeginString {
		return &ValidationError{Reason: "message must start with BeginString", Tag: fixtag.BeginString}
	}
	if fields[len(fields)-1].Tag != fixtag.CheckSum {
		return &ValidationError{Reason: "message must end with CheckSum", Tag: fixtag.CheckSum}
	}
	return nil
}

// Checksum computes the FIX checksum of a buffer: the byte sum modulo 256,
// formatted as three zero-padded decimal digits.
func Checksum(buf string) string {
	var sum int
	for i := 0; i < len(buf); i++ {
		sum += int(buf[i])
	}
	return fmt.Sprintf("%03d", sum%256)
}

// verifyChecksum recomputes the checksum over the normalized buffer up to the
// CheckSum field (the delimiter preceding "10=" is part of the sum) and
// compares it against the transmitted value. Returns nil on match.
func verifyChecksum(normalized string, fields []RawField) *ChecksumError {
	last := fields[len(fields)-1]
	if last.Tag != fixtag.CheckSum {
		return nil // structural validation already failed elsewhere
	}
	expected := Checksum(normalized[:last.off])
	if expected != last.Value {
		return &ChecksumError{Expected: expected, Actual: last.Value}
	}
	return nil
}

// verifyBodyLength counts the bytes from just after the BodyLength (9)
// field's delimiter through the delimiter terminating the last body field,
// and compares the count to tag 9's declared value. Returns nil on match or
// when the message carries no usable tag 9.
func verifyBodyLength(normalized string, fields []RawField) *BodyLengthError {
	var lengthField *RawField
	for i := range fields {
		if fields[i].Tag == fixtag.BodyLength {
			lengthField = &fields[i]
			break
		}
	}
	if lengthField == nil {
		return nil
	}
	declared, err := strconv.Atoi(lengthField.Value)
	if err != nil {
		return nil // non-numeric tag 9 is reported by type coercion instead
	}

	last := fields[len(fields)-1]
	if last.Tag != fixtag.CheckSum {
		return nil
	}

	actual := last.off - lengthField.end
	if actual < 0 {
		actual = 0
	}
	if actual != declared {
		return &BodyLengthError{Expected: declared, Actual: actual}
	}
	return nil
}
