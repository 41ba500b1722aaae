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

import "fmt"

// MalformedInputError reports input that cannot be segmented at all: empty or
// whitespace-only buffers, or a missing terminating delimiter in strict
// delimiter mode. Always fatal.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Reason
}

// MalformedFieldError reports a segment that is not a tag=value pair: missing
// or repeated separator, or a non-numeric tag. Always fatal. Position is the
// zero-based ordinal of the segment in the buffer.
type MalformedFieldError struct {
	Segment  string
	Position int
	Reason   string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %q at position %d: %s", e.Segment, e.Position, e.Reason)
}

// ValidationError reports a missing structural boundary: the message does not
// start with BeginString (8) or does not end with CheckSum (10). Always fatal.
type ValidationError struct {
	Reason string
	Tag    int
}

func (e *ValidationError) Error() string {
	if e.Tag != 0 {
		return fmt.Sprintf("validation: %s (tag %d)", e.Reason, e.Tag)
	}
	return "validation: " + e.Reason
}

// ChecksumError reports a checksum mismatch. Fatal only when the parser runs
// with StrictChecksum; otherwise recorded as a flag on the message.
type ChecksumError struct {
	Expected string
	Actual   string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// BodyLengthError reports a body length mismatch. Fatal only when the parser
// runs with StrictBodyLength; otherwise recorded as a flag on the message.
type BodyLengthError struct {
	Expected int
	Actual   int
}

func (e *BodyLengthError) Error() string {
	return fmt.Sprintf("body length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// TypeCoercionError reports a raw value that does not conform to its declared
// type. Never aborts a parse: the raw value is retained and a flag recorded,
// unless StrictTypes is set.
type TypeCoercionError struct {
	Tag      int
	RawValue string
	Type     string
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("cannot coerce tag %d value %q to %s", e.Tag, e.RawValue, e.Type)
}
