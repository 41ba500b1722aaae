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

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chanchunyinjohnny/FxFixParser/fixparser"
)

// fixparse config.toml key mapping to runtime settings.
type fileConfig struct {
	DbPath           string `toml:"db_path"`
	OverridesPath    string `toml:"dictionary_overrides"`
	SpecPath         string `toml:"fix_spec"`
	StrictChecksum   bool   `toml:"strict_checksum"`
	StrictBodyLength bool   `toml:"strict_body_length"`
	StrictDelimiter  bool   `toml:"strict_delimiter"`
	StrictTypes      bool   `toml:"strict_types"`
	AllowPipe        bool   `toml:"allow_pipe_delimiter"`
	LogLevel         string `toml:"log_level"`
}

type appConfig struct {
	Parse         fixparser.Config
	DbPath        string
	OverridesPath string
	SpecPath      string
	LogLevel      string
}

func defaultAppConfig() appConfig {
	return appConfig{
		Parse:    fixparser.DefaultConfig(),
		LogLevel: "info",
	}
}

// loadConfig reads a TOML file and overlays it on the defaults. Only keys
// actually present in the file override; relative file paths resolve against
// the config file's directory.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("db_path") {
		cfg.DbPath = resolvePath(path, raw.DbPath)
	}
	if meta.IsDefined("dictionary_overrides") {
		cfg.OverridesPath = resolvePath(path, raw.OverridesPath)
	}
	if meta.IsDefined("fix_spec") {
		cfg.SpecPath = resolvePath(path, raw.SpecPath)
	}
	if meta.IsDefined("strict_checksum") {
		cfg.Parse.StrictChecksum = raw.StrictChecksum
	}
	if meta.IsDefined("strict_body_length") {
		cfg.Parse.StrictBodyLength = raw.StrictBodyLength
	}
	if meta.IsDefined("strict_delimiter") {
		cfg.Parse.StrictDelimiter = raw.StrictDelimiter
	}
	if meta.IsDefined("strict_types") {
		cfg.Parse.StrictTypes = raw.StrictTypes
	}
	if meta.IsDefined("allow_pipe_delimiter") {
		cfg.Parse.AllowPipeDelimiter = raw.AllowPipe
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	return cfg, nil
}

func resolvePath(configPath, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}
