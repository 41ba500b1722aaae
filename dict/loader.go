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

package dict

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/quickfixgo/quickfix/datadictionary"
	"gopkg.in/yaml.v3"
)

// LoadFIX44Spec parses a FIX data dictionary XML file (the standard FIX44.xml
// layout) into a definition layer. It is the external base-specification
// source; the result typically replaces FIX44Definitions as the bottom layer.
func LoadFIX44Spec(path string) ([]Definition, error) {
	dd, err := datadictionary.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("load fix spec %s: %w", path, err)
	}
	return definitionsFromDataDictionary(dd), nil
}

// ParseFIX44Spec is LoadFIX44Spec for an already-open reader.
func ParseFIX44Spec(r io.Reader) ([]Definition, error) {
	dd, err := datadictionary.ParseSrc(r)
	if err != nil {
		return nil, fmt.Errorf("parse fix spec: %w", err)
	}
	return definitionsFromDataDictionary(dd), nil
}

func definitionsFromDataDictionary(dd *datadictionary.DataDictionary) []Definition {
	defs := make([]Definition, 0, len(dd.FieldTypeByTag))
	for tag, ft := range dd.FieldTypeByTag {
		def := Definition{
			Tag:  tag,
			Name: ft.Name(),
			Type: ft.Type,
		}
		if len(ft.Enums) > 0 {
			def.Enums = make(map[string]string, len(ft.Enums))
			for _, e := range ft.Enums {
				def.Enums[e.Value] = e.Description
			}
		}
		defs = append(defs, def)
	}
	// Stable order so repeated loads build identical layers.
	sort.Slice(defs, func(i, j int) bool { return defs[i].Tag < defs[j].Tag })
	return defs
}

// yamlDefinition is the on-disk shape of one override entry.
type yamlDefinition struct {
	Tag         int               `yaml:"tag"`
	Name        string            `yaml:"name"`
	Type        string            `yaml:"type"`
	Description string            `yaml:"description"`
	Values      map[string]string `yaml:"values"`
}

// LoadOverrides reads a YAML override table:
//
//	- tag: 8004
//	  name: SettlType2
//	  type: STRING
//	  description: Far leg tenor.
//	  values: {SPOT: Spot, W1: 1 Week}
//
// Used for the curated and venue tiers when definitions live outside the
// binary. Entries missing a tag or name are rejected.
func LoadOverrides(path string) ([]Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load overrides %s: %w", path, err)
	}
	return ParseOverrides(raw)
}

// ParseOverrides decodes a YAML override document.
func ParseOverrides(raw []byte) ([]Definition, error) {
	var entries []yamlDefinition
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}

	defs := make([]Definition, 0, len(entries))
	for i, e := range entries {
		if e.Tag <= 0 || e.Name == "" {
			return nil, fmt.Errorf("parse overrides: entry %d missing tag or name", i)
		}
		typ := e.Type
		if typ == "" {
			typ = TypeString
		}
		defs = append(defs, Definition{
			Tag:         e.Tag,
			Name:        e.Name,
			Type:        typ,
			Description: e.Description,
			Enums:       e.Values,
		})
	}
	return defs, nil
}
