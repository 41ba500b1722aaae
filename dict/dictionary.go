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

// Package dict provides the tag dictionary used to resolve FIX tag numbers to
// field names, declared types, and enumerated value descriptions.
//
// Dictionaries are assembled from ordered layers: the FIX 4.4 base table, the
// curated FX override table, and zero or more venue extension tables. A later
// layer's definition for a tag fully replaces an earlier layer's definition.
// The merge happens once at build time; the resulting Dictionary is immutable
// and safe for concurrent lookups from any number of parse calls.
package dict

import "sort"

// Field type names as they appear in FIX data dictionaries. Coercion in the
// fixparser package switches on these values.
const (
	TypeString      = "STRING"
	TypeChar        = "CHAR"
	TypeInt         = "INT"
	TypeLength      = "LENGTH"
	TypeSeqNum      = "SEQNUM"
	TypeNumInGroup  = "NUMINGROUP"
	TypeDayOfMonth  = "DAYOFMONTH"
	TypeFloat       = "FLOAT"
	TypePrice       = "PRICE"
	TypeQty         = "QTY"
	TypeAmt         = "AMT"
	TypePercentage  = "PERCENTAGE"
	TypePriceOffset = "PRICEOFFSET"
	TypeBoolean     = "BOOLEAN"
	TypeCurrency    = "CURRENCY"
	TypeLocalDate   = "LOCALMKTDATE"
	TypeUTCTime     = "UTCTIMESTAMP"
	TypeTenor       = "TENOR"
)

// Definition describes a single FIX tag: its name, declared type, and the
// descriptions of its enumerated values, if any.
type Definition struct {
	Tag         int
	Name        string
	Type        string
	Description string
	Enums       map[string]string
}

// EnumDescription returns the description for an enumerated raw value.
func (d Definition) EnumDescription(raw string) (string, bool) {
	desc, ok := d.Enums[raw]
	return desc, ok
}

// Dictionary is an immutable tag-to-definition mapping. The zero value is an
// empty dictionary; use Builder or Default to construct a populated one.
type Dictionary struct {
	defs map[int]Definition
}

// Resolve returns the definition for a tag. Unknown tags return ok=false; the
// caller decides the fallback (the message assembler uses name "Unknown" and
// type STRING).
func (d *Dictionary) Resolve(tag int) (Definition, bool) {
	if d == nil || d.defs == nil {
		return Definition{}, false
	}
	def, ok := d.defs[tag]
	return def, ok
}

// Name returns the field name for a tag, or "Unknown" when undefined.
func (d *Dictionary) Name(tag int) string {
	if def, ok := d.Resolve(tag); ok {
		return def.Name
	}
	return "Unknown"
}

// Has reports whether a tag is defined.
func (d *Dictionary) Has(tag int) bool {
	_, ok := d.Resolve(tag)
	return ok
}

// Len returns the number of defined tags.
func (d *Dictionary) Len() int {
	return len(d.defs)
}

// Tags returns all defined tag numbers in ascending order.
func (d *Dictionary) Tags() []int {
	tags := make([]int, 0, len(d.defs))
	for tag := range d.defs {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	return tags
}

// Builder accumulates ordered definition layers and merges them into a
// Dictionary. Layers are applied in the order added; for a given tag the last
// layer that defines it wins outright, with no field-level merging.
type Builder struct {
	layers [][]Definition
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Layer appends a definition layer. Returns the builder for chaining.
func (b *Builder) Layer(defs []Definition) *Builder {
	b.layers = append(b.layers, defs)
	return b
}

// Build merges all layers into an immutable Dictionary.
func (b *Builder) Build() *Dictionary {
	merged := make(map[int]Definition)
	for _, layer := range b.layers {
		for _, def := range layer {
			merged[def.Tag] = def
		}
	}
	return &Dictionary{defs: merged}
}

// Default builds the standard dictionary: the FIX 4.4 base table overlaid
// with the curated FX table. Venue extensions are layered on by the caller.
func Default() *Dictionary {
	return NewBuilder().
		Layer(FIX44Definitions()).
		Layer(FXDefinitions()).
		Build()
}

// WithVenue builds the standard dictionary with a venue extension layer on
// top. Venue definitions replace base and FX definitions for the same tags.
func WithVenue(venueTags []Definition) *Dictionary {
	return NewBuilder().
		Layer(FIX44Definitions()).
		Layer(FXDefinitions()).
		Layer(venueTags).
		Build()
}
