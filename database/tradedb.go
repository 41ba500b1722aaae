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

// Package database provides SQLite persistence for decoded trades. Numeric
// values are stored as their decimal string form; SQLite REAL would silently
// round FX rates.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/chanchunyinjohnny/FxFixParser/venues"
)

const schema = `
CREATE TABLE IF NOT EXISTS parsed_trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	received_at TEXT NOT NULL,
	venue TEXT,
	product_type TEXT,
	symbol TEXT,
	side TEXT,
	quantity TEXT,
	price TEXT,
	currency TEXT,
	settlement_currency TEXT,
	trade_date TEXT,
	settlement_date TEXT,
	far_settlement_date TEXT,
	order_id TEXT,
	exec_id TEXT,
	is_quote INTEGER NOT NULL DEFAULT 0,
	is_swap INTEGER NOT NULL DEFAULT 0,
	raw_message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_parsed_trades_symbol ON parsed_trades(symbol);
CREATE INDEX IF NOT EXISTS idx_parsed_trades_venue ON parsed_trades(venue);
`

const insertTradeQuery = `
INSERT INTO parsed_trades (
	received_at, venue, product_type, symbol, side, quantity, price,
	currency, settlement_currency, trade_date, settlement_date,
	far_settlement_date, order_id, exec_id, is_quote, is_swap, raw_message
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectRecentQuery = `
SELECT received_at, venue, product_type, symbol, side, quantity, price,
	currency, settlement_currency, trade_date, settlement_date,
	far_settlement_date, order_id, exec_id, is_quote, is_swap, raw_message
FROM parsed_trades ORDER BY id DESC LIMIT ?`

// StoredTrade is one persisted row: the extracted trade plus the raw buffer
// it came from and the time it was stored.
type StoredTrade struct {
	ReceivedAt time.Time
	Trade      venues.Trade
	Raw        string
}

// TradeDb stores decoded trades in SQLite. The insert statement is prepared
// once and reused for every row, including batch inserts.
type TradeDb struct {
	db         *sql.DB
	stmtInsert *sql.Stmt
	log        zerolog.Logger
}

// NewTradeDb opens (creating if needed) the trade database at dbPath. WAL
// journaling keeps concurrent readers off the writer's back.
func NewTradeDb(dbPath string, log zerolog.Logger) (*TradeDb, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=1000")
	if err != nil {
		return nil, fmt.Errorf("open trade database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize trade schema: %w", err)
	}

	tdb := &TradeDb{db: db, log: log}
	if tdb.stmtInsert, err = db.Prepare(insertTradeQuery); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare insert statement: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("trade database initialized")
	return tdb, nil
}

func (tdb *TradeDb) Close() error {
	if tdb.stmtInsert != nil {
		_ = tdb.stmtInsert.Close()
	}
	return tdb.db.Close()
}

func parseDecimal(s string) (*decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func insertArgs(trade *venues.Trade, raw string, receivedAt time.Time) []any {
	var quantity, price any
	if trade.Quantity != nil {
		quantity = trade.Quantity.String()
	}
	if trade.Price != nil {
		price = trade.Price.String()
	}
	return []any{
		receivedAt.UTC().Format(time.RFC3339Nano),
		trade.Venue, trade.ProductType, trade.Symbol, trade.Side,
		quantity, price,
		trade.Currency, trade.SettlementCurrency,
		trade.TradeDate, trade.SettlementDate, trade.FarSettlementDate,
		trade.OrderID, trade.ExecID,
		trade.IsQuote, trade.IsSwap, raw,
	}
}

// StoreTrade persists one decoded trade together with its raw buffer.
func (tdb *TradeDb) StoreTrade(trade *venues.Trade, raw string) error {
	_, err := tdb.stmtInsert.Exec(insertArgs(trade, raw, time.Now())...)
	if err != nil {
		return fmt.Errorf("store trade: %w", err)
	}
	return nil
}

// BeginTransaction starts a batch insert transaction.
func (tdb *TradeDb) BeginTransaction() (*sql.Tx, error) {
	return tdb.db.Begin()
}

// StoreTradeBatch inserts a trade using the prepared statement bound to the
// given transaction.
func (tdb *TradeDb) StoreTradeBatch(tx *sql.Tx, trade *venues.Trade, raw string) error {
	_, err := tx.Stmt(tdb.stmtInsert).Exec(insertArgs(trade, raw, time.Now())...)
	if err != nil {
		return fmt.Errorf("store trade batch: %w", err)
	}
	return nil
}

// RecentTrades returns the most recently stored trades, newest first.
func (tdb *TradeDb) RecentTrades(limit int) ([]StoredTrade, error) {
	rows, err := tdb.db.Query(selectRecentQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent trades: %w", err)
	}
	defer rows.Close()

	var out []StoredTrade
	for rows.Next() {
		var (
			st              StoredTrade
			receivedAt      string
			quantity, price sql.NullString
			isQuote, isSwap bool
		)
		err := rows.Scan(
			&receivedAt, &st.Trade.Venue, &st.Trade.ProductType,
			&st.Trade.Symbol, &st.Trade.Side, &quantity, &price,
			&st.Trade.Currency, &st.Trade.SettlementCurrency,
			&st.Trade.TradeDate, &st.Trade.SettlementDate,
			&st.Trade.FarSettlementDate, &st.Trade.OrderID, &st.Trade.ExecID,
			&isQuote, &isSwap, &st.Raw,
		)
		if err != nil {
			return nil, fmt.Errorf("scan trade row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, receivedAt); err == nil {
			st.ReceivedAt = t
		}
		if quantity.Valid {
			if d, err := parseDecimal(quantity.String); err == nil {
				st.Trade.Quantity = d
			}
		}
		if price.Valid {
			if d, err := parseDecimal(price.String); err == nil {
				st.Trade.Price = d
			}
		}
		st.Trade.IsQuote = isQuote
		st.Trade.IsSwap = isSwap
		out = append(out, st)
	}
	return out, rows.Err()
}
