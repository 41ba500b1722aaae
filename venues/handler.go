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

// Package venues identifies the liquidity venue a FIX message came from and
// extracts venue-aware trade summaries. Each venue contributes the
// SenderCompID values it transmits under and a custom tag table that layers
// on top of the standard dictionary.
package venues

import (
	"strings"

	"github.com/chanchunyinjohnny/FxFixParser/dict"
	"github.com/chanchunyinjohnny/FxFixParser/fixparser"
)

// Handler describes one liquidity venue.
type Handler interface {
	// Name is the display name of the venue.
	Name() string
	// SenderCompIDs lists the tag 49 values the venue transmits under.
	// Matching is case-insensitive.
	SenderCompIDs() []string
	// CustomTags is the venue's dictionary extension layer. May be empty.
	CustomTags() []dict.Definition
}

// MatchesSender reports whether a SenderCompID identifies the handler's
// venue. Comparison is case-insensitive; empty never matches.
func MatchesSender(h Handler, senderCompID string) bool {
	if senderCompID == "" {
		return false
	}
	for _, id := range h.SenderCompIDs() {
		if strings.EqualFold(id, senderCompID) {
			return true
		}
	}
	return false
}

// Registry holds venue handlers in registration order.
type Registry struct {
	handlers []Handler
	byName   map[string]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Handler)}
}

// Register adds a handler. A handler with the same name (case-insensitive)
// replaces the earlier registration in name lookups but keeps its slot in
// sender matching order.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)
	r.byName[strings.ToLower(h.Name())] = h
}

// Get returns a handler by display name, case-insensitive.
func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.byName[strings.ToLower(name)]
	return h, ok
}

// BySenderCompID returns the first registered handler matching the given
// SenderCompID.
func (r *Registry) BySenderCompID(senderCompID string) (Handler, bool) {
	for _, h := range r.handlers {
		if MatchesSender(h, senderCompID) {
			return h, true
		}
	}
	return nil, false
}

// All returns every registered handler in registration order.
func (r *Registry) All() []Handler {
	return r.handlers
}

// Identify tags a parsed message with its venue, matched on SenderCompID.
// The message is returned unchanged when no venue matches.
func (r *Registry) Identify(msg *fixparser.Message) (*fixparser.Message, Handler) {
	h, ok := r.BySenderCompID(msg.SenderCompID())
	if !ok {
		return msg, nil
	}
	return msg.WithVenue(h.Name()), h
}

// DefaultRegistry returns the registry of supported venues.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&SmartTrade{})
	r.Register(&FXGO{})
	r.Register(&ThreeSixtyT{})
	r.Register(&BloombergDOR{})
	return r
}
