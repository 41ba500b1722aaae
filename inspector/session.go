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

// Package inspector ties the decoding pipeline together: parse a raw buffer,
// identify the sending venue, re-decode with the venue's custom tag layer,
// classify the product, extract the trade economics, and keep the result in a
// bounded in-memory history. It also provides the interactive REPL built on
// top of that pipeline.
package inspector

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/chanchunyinjohnny/FxFixParser/database"
	"github.com/chanchunyinjohnny/FxFixParser/dict"
	"github.com/chanchunyinjohnny/FxFixParser/fixparser"
	"github.com/chanchunyinjohnny/FxFixParser/products"
	"github.com/chanchunyinjohnny/FxFixParser/venues"
)

const defaultHistorySize = 1000

// Result is one fully decoded message together with everything derived from
// it. Trade and Details are nil for session-level traffic.
type Result struct {
	ReceivedAt time.Time
	Msg        *fixparser.Message
	Trade      *venues.Trade
	Details    map[string]string
}

// Session is the stateful decoding pipeline behind the REPL and the one-shot
// file mode. It owns a base parser plus one lazily built parser per venue
// that defines custom tags, so venue-specific fields resolve to their proper
// names instead of "Unknown".
type Session struct {
	cfg          fixparser.Config
	base         *fixparser.Parser
	venueParsers map[string]*fixparser.Parser
	overrides    []dict.Definition
	venues       *venues.Registry
	products     *products.Registry
	history      *History
	db           *database.TradeDb
	log          zerolog.Logger
}

// NewSession creates a decoding session with the default venue and product
// registries and an empty history.
func NewSession(cfg fixparser.Config, log zerolog.Logger) *Session {
	s := &Session{
		cfg:          cfg,
		venueParsers: make(map[string]*fixparser.Parser),
		venues:       venues.DefaultRegistry(),
		products:     products.DefaultRegistry(),
		history:      NewHistory(defaultHistorySize),
		log:          log,
	}
	s.base = s.newParser(nil)
	return s
}

// SetDatabase enables SQLite persistence: every decoded trade is stored as it
// arrives. Pass nil to disable.
func (s *Session) SetDatabase(db *database.TradeDb) { s.db = db }

// Config returns the current parse configuration.
func (s *Session) Config() fixparser.Config { return s.cfg }

// SetConfig replaces the parse configuration. Cached venue parsers are
// rebuilt on next use so the new strictness applies everywhere.
func (s *Session) SetConfig(cfg fixparser.Config) {
	s.cfg = cfg
	s.base = s.newParser(nil)
	s.venueParsers = make(map[string]*fixparser.Parser)
}

// SetOverrides installs user-supplied dictionary definitions, typically
// loaded from a YAML overrides file. Overrides sit above the venue layer, so
// they win for any tag they define. All parsers are rebuilt.
func (s *Session) SetOverrides(defs []dict.Definition) {
	s.overrides = defs
	s.base = s.newParser(nil)
	s.venueParsers = make(map[string]*fixparser.Parser)
}

// Dict returns the base dictionary, without venue layers.
func (s *Session) Dict() *dict.Dictionary { return s.base.Dict }

// Venues returns the venue registry.
func (s *Session) Venues() *venues.Registry { return s.venues }

// Products returns the product registry.
func (s *Session) Products() *products.Registry { return s.products }

// History returns the in-memory result history.
func (s *Session) History() *History { return s.history }

func (s *Session) newParser(venueTags []dict.Definition) *fixparser.Parser {
	p := fixparser.New(s.cfg)
	p.Log = s.log
	if venueTags != nil || s.overrides != nil {
		b := dict.NewBuilder().
			Layer(dict.FIX44Definitions()).
			Layer(dict.FXDefinitions())
		if venueTags != nil {
			b.Layer(venueTags)
		}
		if s.overrides != nil {
			b.Layer(s.overrides)
		}
		p.Dict = b.Build()
	}
	return p
}

// venueParser returns the parser carrying the handler's custom tag layer,
// building and caching it on first use. Venues without custom tags share the
// base parser.
func (s *Session) venueParser(h venues.Handler) *fixparser.Parser {
	tags := h.CustomTags()
	if len(tags) == 0 {
		return s.base
	}
	if p, ok := s.venueParsers[h.Name()]; ok {
		return p
	}
	p := s.newParser(tags)
	s.venueParsers[h.Name()] = p
	return p
}

// Decode runs the full pipeline on one raw buffer. The first parse uses the
// base dictionary; once the sender identifies a venue with custom tags the
// buffer is decoded again under that venue's layer. The result is recorded in
// history and, when a database is attached, any extracted trade is persisted.
func (s *Session) Decode(raw string) (*Result, error) {
	msg, err := s.base.Parse(raw)
	if err != nil {
		return nil, err
	}

	if h, ok := s.venues.BySenderCompID(msg.SenderCompID()); ok {
		if p := s.venueParser(h); p != s.base {
			if venueMsg, err := p.Parse(raw); err == nil {
				msg = venueMsg
			}
		}
		msg = msg.WithVenue(h.Name())
	}

	res := &Result{ReceivedAt: time.Now(), Msg: msg}

	classified, ph := s.products.Classify(msg)
	if ph != nil {
		res.Msg = classified
		res.Trade = venues.ExtractTrade(classified.Venue(), classified)
		res.Details = ph.Details(classified)
	}

	s.history.Add(*res)

	if s.db != nil && res.Trade != nil {
		if err := s.db.StoreTrade(res.Trade, raw); err != nil {
			s.log.Error().Err(err).Msg("failed to persist trade")
		}
	}

	return res, nil
}
