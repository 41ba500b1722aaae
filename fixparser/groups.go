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

import "github.com/chanchunyinjohnny/FxFixParser/fixtag"

// GroupSchema describes one repeating group: the tag carrying the entry
// count, the tag whose recurrence marks the start of each entry, the tags
// allowed inside an entry, and any nested groups keyed by their count tag.
type GroupSchema struct {
	CountTag     int
	Name         string
	DelimiterTag int
	MemberTags   []int
	Nested       map[int]*GroupSchema

	memberSet map[int]struct{}
}

// Member reports whether a tag may appear inside one entry of this group.
// Nested count tags are members of the enclosing group.
func (s *GroupSchema) Member(tag int) bool {
	_, ok := s.memberSet[tag]
	return ok
}

// GroupRegistry is an immutable table of group schemas keyed by count tag.
// Build it once and share it across concurrent parses.
type GroupRegistry struct {
	schemas map[int]*GroupSchema
}

// NewGroupRegistry indexes the given schemas (including nested ones, so a
// nested count tag resolves whether or not its parent group is open) and
// precomputes member sets.
func NewGroupRegistry(schemas ...*GroupSchema) *GroupRegistry {
	reg := &GroupRegistry{schemas: make(map[int]*GroupSchema)}
	for _, s := range schemas {
		reg.index(s)
	}
	return reg
}

func (r *GroupRegistry) index(s *GroupSchema) {
	s.memberSet = make(map[int]struct{}, len(s.MemberTags))
	for _, tag := range s.MemberTags {
		s.memberSet[tag] = struct{}{}
	}
	for countTag, nested := range s.Nested {
		s.memberSet[countTag] = struct{}{}
		r.index(nested)
	}
	r.schemas[s.CountTag] = s
}

// Lookup returns the schema for a count tag.
func (r *GroupRegistry) Lookup(countTag int) (*GroupSchema, bool) {
	s, ok := r.schemas[countTag]
	return s, ok
}

// DefaultGroups returns the registry of FIX 4.4 repeating groups seen in FX
// flows. The delimiter tag of each group is the first tag of an entry.
func DefaultGroups() *GroupRegistry {
	partySubIDs := &GroupSchema{
		CountTag:     fixtag.NoPartySubIDs,
		Name:         "Party Sub IDs",
		DelimiterTag: fixtag.PartySubID,
		MemberTags:   []int{fixtag.PartySubID, fixtag.PartySubIDType},
	}

	return NewGroupRegistry(
		&GroupSchema{
			CountTag:     fixtag.NoMDEntries,
			Name:         "Market Data Entries",
			DelimiterTag: fixtag.MDEntryType,
			MemberTags: []int{
				269, 270, 271, 272, 273, 274, 275, 276, 277, 278, 279, 280,
				282, 283, 284, 286, 290, 291, 292,
				15, 64, 40, 110, 37, 198, 336, 625, 58,
				1026, 1027, // forward market data components
				9122, 9123, // venue entry time/date extensions
			},
		},
		&GroupSchema{
			CountTag:     fixtag.NoMDEntryTypes,
			Name:         "Market Data Entry Types",
			DelimiterTag: fixtag.MDEntryType,
			MemberTags:   []int{fixtag.MDEntryType},
		},
		&GroupSchema{
			CountTag:     fixtag.NoPartyIDs,
			Name:         "Party IDs",
			DelimiterTag: fixtag.PartyID,
			MemberTags:   []int{fixtag.PartyID, fixtag.PartyIDSource, fixtag.PartyRole},
			Nested: map[int]*GroupSchema{
				fixtag.NoPartySubIDs: partySubIDs,
			},
		},
		&GroupSchema{
			CountTag:     fixtag.NoRelatedSym,
			Name:         "Related Symbols",
			DelimiterTag: fixtag.Symbol,
			MemberTags: []int{
				55, 65, 48, 22, 167, 207, 106, 107, 15, 64, 54, 38, 63,
				193, 192, 126,
				8004, // far leg tenor on swap quote requests
			},
		},
		&GroupSchema{
			CountTag:     fixtag.NoLegs,
			Name:         "Legs",
			DelimiterTag: 600,
			MemberTags: []int{
				600, 602, 603, 604, 608, 609, 610, 611, 612, 613, 614, 615,
				616, 617, 618, 619, 620, 621, 622, 623, 624, 556, 564, 565,
				566, 587, 588, 637, 654, 682, 685, 686, 687,
			},
		},
		&GroupSchema{
			CountTag:     fixtag.NoAllocs,
			Name:         "Allocations",
			DelimiterTag: 79,
			MemberTags:   []int{79, 661, 573, 366, 80, 467, 81, 736, 737, 161},
		},
		&GroupSchema{
			CountTag:     fixtag.NoOrders,
			Name:         "Orders",
			DelimiterTag: fixtag.ClOrdID,
			MemberTags:   []int{11, 526, 67, 583, 160},
		},
		&GroupSchema{
			CountTag:     fixtag.NoFills,
			Name:         "Fills",
			DelimiterTag: 1363,
			MemberTags:   []int{1363, 1364, 1365, 1443},
		},
		&GroupSchema{
			CountTag:     fixtag.NoTradingRules,
			Name:         "Trading Session Rules",
			DelimiterTag: fixtag.TradingSessionID,
			MemberTags:   []int{fixtag.TradingSessionID, fixtag.TradingSessionSubID},
		},
	)
}
