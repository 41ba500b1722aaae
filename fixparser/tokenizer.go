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

// Tokenization of raw FIX buffers.
//
// HOT PATH: Tokenize runs once per message and visits every byte exactly
// once after normalization. Values are substrings of the normalized buffer,
// so the only allocations are the normalized copy (when the input needs one)
// and the pre-sized field slice.
package fixparser

import (
	"strconv"
	"strings"
)

const (
	// SOH is the standard FIX field delimiter.
	SOH = "\x01"
	// Pipe is the lenient substitute delimiter found in log extracts.
	Pipe = "|"
)

// RawField is one tag=value pair as it appeared on the wire. Pos is the
// ordinal index of the field in the buffer; the unexported byte offsets into
// the normalized buffer drive checksum and body-length verification.
type RawField struct {
	Tag   int
	Value string
	Pos   int

	off int // byte offset of the tag's first digit in the normalized buffer
	end int // byte offset just past this field's terminating delimiter
}

// Tokenize splits a raw buffer into ordered RawFields under the delimiter
// policy and returns them together with the SOH-normalized buffer that
// checksum and body-length checks run against.
//
// Delimiter selection: a buffer containing SOH is always SOH-delimited, even
// if pipes also appear, because values may legitimately contain '|'. Pipe
// delimiting applies only when allowPipe is set and no SOH is present.
// Carriage returns and newlines are stripped first; they are line-wrapping
// artifacts from log extraction, not message content.
func Tokenize(raw string, allowPipe, strictDelimiter bool) ([]RawField, string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, "", &MalformedInputError{Reason: "empty message"}
	}

	normalized := normalizeDelimiters(raw, allowPipe)

	if strictDelimiter && !strings.HasSuffix(normalized, SOH) {
		return nil, "", &MalformedInputError{Reason: "missing terminating delimiter after final field"}
	}

	// Pre-size: one field per delimiter, plus one for a missing trailer.
	fields := make([]RawField, 0, strings.Count(normalized, SOH)+1)

	pos := 0
	offset := 0
	for offset < len(normalized) {
		sohIdx := strings.Index(normalized[offset:], SOH)
		var segment string
		var next int
		if sohIdx == -1 {
			segment = normalized[offset:]
			next = len(normalized)
		} else {
			segment = normalized[offset : offset+sohIdx]
			next = offset + sohIdx + 1
		}

		// A terminal delimiter leaves one trailing empty segment; discard it.
		if segment == "" && next == len(normalized) {
			break
		}

		field, err := splitSegment(segment, pos)
		if err != nil {
			return nil, "", err
		}
		field.off = offset
		field.end = next
		fields = append(fields, field)

		pos++
		offset = next
	}

	if len(fields) == 0 {
		return nil, "", &MalformedInputError{Reason: "no tag=value pairs found"}
	}
	return fields, normalized, nil
}

// normalizeDelimiters strips CR/LF and rewrites pipe delimiters to SOH when
// the pipe policy applies.
func normalizeDelimiters(raw string, allowPipe bool) string {
	if strings.ContainsAny(raw, "\r\n") {
		raw = strings.NewReplacer("\r", "", "\n", "").Replace(raw)
	}
	if strings.Contains(raw, SOH) {
		return raw
	}
	if allowPipe && strings.Contains(raw, Pipe) {
		return strings.ReplaceAll(raw, Pipe, SOH)
	}
	return raw
}

// splitSegment parses one "tag=value" segment. Exactly one '=' is required;
// the tag must be a positive integer.
func splitSegment(segment string, pos int) (RawField, error) {
	eq := strings.IndexByte(segment, '=')
	if eq == -1 {
		return RawField{}, &MalformedFieldError{Segment: segment, Position: pos, Reason: "missing '=' separator"}
	}
	if strings.IndexByte(segment[eq+1:], '=') != -1 {
		return RawField{}, &MalformedFieldError{Segment: segment, Position: pos, Reason: "more than one '=' separator"}
	}

	tag, err := strconv.Atoi(segment[:eq])
	if err != nil || tag < 1 {
		return RawField{}, &MalformedFieldError{Segment: segment, Position: pos, Reason: "tag is not a positive integer"}
	}

	return RawField{Tag: tag, Value: segment[eq+1:], Pos: pos}, nil
}
