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

// fixparse decodes FIX 4.4 tag/value messages from log extracts.
//
// With no message file it starts the interactive REPL; given a file it
// decodes every line and prints the rendered (or JSON) form.
//
//	fixparse                          # interactive REPL
//	fixparse messages.log             # decode a file of raw messages
//	fixparse -json messages.log       # same, one JSON document per line
//	fixparse -config fixparse.toml    # REPL with config-driven settings
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/chanchunyinjohnny/FxFixParser/database"
	"github.com/chanchunyinjohnny/FxFixParser/dict"
	"github.com/chanchunyinjohnny/FxFixParser/inspector"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	dbPath := flag.String("db", "", "SQLite database for decoded trades (overrides config)")
	jsonOut := flag.Bool("json", false, "file mode: emit one JSON document per message")
	flag.Parse()

	cfg := defaultAppConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fixparse: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *dbPath != "" {
		cfg.DbPath = *dbPath
	}

	logger := newLogger(cfg.LogLevel)

	session := inspector.NewSession(cfg.Parse, logger)

	if defs, err := loadDictionaryExtensions(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fixparse: %v\n", err)
		os.Exit(1)
	} else if len(defs) > 0 {
		session.SetOverrides(defs)
		logger.Info().Int("definitions", len(defs)).Msg("dictionary extensions loaded")
	}

	if cfg.DbPath != "" {
		db, err := database.NewTradeDb(cfg.DbPath, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fixparse: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
		session.SetDatabase(db)
	}

	if flag.NArg() > 0 {
		if !decodeFile(session, flag.Arg(0), *jsonOut) {
			os.Exit(1)
		}
		return
	}

	inspector.Repl(session)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

// loadDictionaryExtensions assembles the user-supplied dictionary layer: tag
// definitions from a QuickFIX XML dictionary, then YAML overrides on top.
func loadDictionaryExtensions(cfg appConfig) ([]dict.Definition, error) {
	var defs []dict.Definition

	if cfg.SpecPath != "" {
		specDefs, err := dict.LoadFIX44Spec(cfg.SpecPath)
		if err != nil {
			return nil, err
		}
		defs = append(defs, specDefs...)
	}
	if cfg.OverridesPath != "" {
		overrides, err := dict.LoadOverrides(cfg.OverridesPath)
		if err != nil {
			return nil, err
		}
		defs = append(defs, overrides...)
	}
	return defs, nil
}

// decodeFile decodes every non-empty line of the file and prints each result.
// Comment lines starting with '#' are skipped. Returns false if any line
// failed to decode.
func decodeFile(session *inspector.Session, path string, jsonOut bool) bool {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fixparse: %v\n", err)
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Log extracts can carry very long lines; the default 64K token limit is
	// raised to 1MB.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	ok := true
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		res, err := session.Decode(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fixparse: line %d: %v\n", lineNo, err)
			ok = false
			continue
		}

		if jsonOut {
			out, err := json.Marshal(res.Msg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "fixparse: line %d: %v\n", lineNo, err)
				ok = false
				continue
			}
			fmt.Println(string(out))
		} else {
			fmt.Printf("--- message %d ---\n", lineNo)
			fmt.Print(res.Msg.Render())
			for _, fl := range res.Msg.Flags() {
				fmt.Printf("  ⚠ %s\n", fl)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "fixparse: %v\n", err)
		return false
	}
	return ok
}
