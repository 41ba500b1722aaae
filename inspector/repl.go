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

package inspector

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	json "github.com/goccy/go-json"
)

// Repl runs the interactive decoder loop. Lines that look like a FIX message
// are decoded directly; everything else dispatches as a command.
func Repl(s *Session) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("decode"),
		readline.PcItem("json"),

		readline.PcItem("last"),
		readline.PcItem("history"),
		readline.PcItem("symbol",
			readline.PcItem("EUR/USD"), readline.PcItem("GBP/USD"), readline.PcItem("USD/JPY"),
		),

		readline.PcItem("venues"),
		readline.PcItem("products"),
		readline.PcItem("dict"),

		readline.PcItem("strict",
			readline.PcItem("checksum", readline.PcItem("on"), readline.PcItem("off")),
			readline.PcItem("bodylength", readline.PcItem("on"), readline.PcItem("off")),
			readline.PcItem("delimiter", readline.PcItem("on"), readline.PcItem("off")),
			readline.PcItem("types", readline.PcItem("on"), readline.PcItem("off")),
		),

		readline.PcItem("help"),
		readline.PcItem("exit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "FIX> ",
		HistoryFile:     "/tmp/fixparse_history",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Printf("Failed to create readline: %v", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// A pasted message starts with the BeginString field.
		if strings.HasPrefix(line, "8=") {
			decodeAndDisplay(s, line)
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		switch cmd {
		case "decode":
			if len(parts) < 2 {
				fmt.Println("Usage: decode <raw message>")
				continue
			}
			decodeAndDisplay(s, strings.TrimSpace(line[len(parts[0]):]))
		case "json":
			handleJSONCommand(s, parts)

		case "last":
			res, ok := s.History().Last()
			if !ok {
				fmt.Println("No decoded messages yet")
				continue
			}
			displayResult(&res)
		case "history":
			handleHistoryCommand(s, parts)
		case "symbol":
			handleSymbolCommand(s, parts)

		case "venues":
			displayVenues(s.Venues())
		case "products":
			handleProductsCommand(s)
		case "dict":
			handleDictCommand(s, parts)

		case "strict":
			handleStrictCommand(s, parts)

		case "help":
			displayHelp()
		case "exit":
			return
		default:
			fmt.Println("Unknown command. Type 'help' for available commands.")
		}
	}
}

func decodeAndDisplay(s *Session, raw string) {
	res, err := s.Decode(raw)
	if err != nil {
		fmt.Printf("Decode failed: %v\n", err)
		return
	}
	displayResult(res)
}

func handleJSONCommand(s *Session, parts []string) {
	back := 1
	if len(parts) >= 2 {
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 {
			fmt.Println("Usage: json [N]   (N counts back from the most recent)")
			return
		}
		back = n
	}

	recent := s.History().Recent(back)
	if len(recent) < back {
		fmt.Printf("Only %d decoded messages in history\n", len(recent))
		return
	}

	out, err := json.MarshalIndent(recent[0].Msg, "", "  ")
	if err != nil {
		fmt.Printf("JSON export failed: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func handleHistoryCommand(s *Session, parts []string) {
	limit := 20
	if len(parts) >= 2 {
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 {
			fmt.Println("Usage: history [N]")
			return
		}
		limit = n
	}
	displayHistory(s.History().Recent(limit))
}

func handleSymbolCommand(s *Session, parts []string) {
	if len(parts) < 2 {
		fmt.Print(`Usage: symbol <pair> [N]
Examples:
  symbol EUR/USD       - Last 20 EUR/USD trades
  symbol USD/JPY 50    - Last 50 USD/JPY trades
`)
		return
	}

	symbol := strings.ToUpper(parts[1])
	limit := 20
	if len(parts) >= 3 {
		if n, err := strconv.Atoi(parts[2]); err == nil && n > 0 {
			limit = n
		}
	}
	displayHistory(s.History().BySymbol(symbol, limit))
}

func handleProductsCommand(s *Session) {
	fmt.Println("Product detection order (first match wins):")
	for i, h := range s.Products().All() {
		fmt.Printf("  %d. %s\n", i+1, h.ProductType())
	}
}

func handleDictCommand(s *Session, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: dict <tag>")
		return
	}

	tag, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Printf("Invalid tag number: %s\n", parts[1])
		return
	}

	def, ok := s.Dict().Resolve(tag)
	if !ok {
		fmt.Printf("Tag %d is not defined in the base dictionary\n", tag)
		return
	}

	fmt.Printf("Tag:  %d\nName: %s\nType: %s\n", def.Tag, def.Name, def.Type)
	if def.Description != "" {
		fmt.Printf("Desc: %s\n", def.Description)
	}
	if len(def.Enums) > 0 {
		fmt.Println("Values:")
		values := make([]string, 0, len(def.Enums))
		for v := range def.Enums {
			values = append(values, v)
		}
		sort.Strings(values)
		for _, v := range values {
			fmt.Printf("  %-4s = %s\n", v, def.Enums[v])
		}
	}
}

func handleStrictCommand(s *Session, parts []string) {
	if len(parts) == 1 {
		displayStrictness(s)
		return
	}
	if len(parts) != 3 {
		fmt.Println("Usage: strict <checksum|bodylength|delimiter|types> <on|off>")
		return
	}

	var enable bool
	switch strings.ToLower(parts[2]) {
	case "on":
		enable = true
	case "off":
		enable = false
	default:
		fmt.Println("Usage: strict <checksum|bodylength|delimiter|types> <on|off>")
		return
	}

	cfg := s.Config()
	switch strings.ToLower(parts[1]) {
	case "checksum":
		cfg.StrictChecksum = enable
	case "bodylength":
		cfg.StrictBodyLength = enable
	case "delimiter":
		cfg.StrictDelimiter = enable
	case "types":
		cfg.StrictTypes = enable
	default:
		fmt.Println("Unknown setting. Settings: checksum, bodylength, delimiter, types")
		return
	}

	s.SetConfig(cfg)
	displayStrictness(s)
}
