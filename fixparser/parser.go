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

// Package fixparser decodes FIX 4.4-style tag/value messages into structured,
// queryable form.
//
// Pipeline: raw buffer -> Tokenize -> structural validation -> checksum and
// body-length verification -> dictionary decoration and type coercion ->
// group restructuring -> assembled Message.
//
// The group parser is a single left-to-right pass with an explicit stack of
// open groups. Group boundaries are implicit on the wire: an entry starts
// when the group's delimiter tag recurs, and a group ends when a tag arrives
// that no open group can consume. The innermost open group always claims an
// ambiguous tag first. Out-of-schema tags are reattached to the nearest
// enclosing scope and flagged rather than failing the parse; log-extracted
// messages are rarely schema-perfect.
package fixparser

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chanchunyinjohnny/FxFixParser/dict"
	"github.com/chanchunyinjohnny/FxFixParser/fixtag"
)

// Config controls parse strictness. The zero value is maximally lenient;
// DefaultConfig matches production defaults (checksum strict, everything
// else lenient).
type Config struct {
	StrictChecksum     bool
	StrictBodyLength   bool
	StrictDelimiter    bool
	StrictTypes        bool
	AllowPipeDelimiter bool
}

// DefaultConfig returns the standard configuration: checksum verification
// strict, body length and delimiter lenient, pipe delimiters accepted.
func DefaultConfig() Config {
	return Config{
		StrictChecksum:     true,
		AllowPipeDelimiter: true,
	}
}

// Parser decodes raw buffers into Messages. Dict and Groups are read-only
// after construction, so one Parser may serve concurrent Parse calls on
// independent buffers.
type Parser struct {
	Config Config
	Dict   *dict.Dictionary
	Groups *GroupRegistry
	Log    zerolog.Logger
}

// New returns a Parser with the default dictionary, default group schemas,
// and no logging. Replace the exported fields before first use to customize.
func New(cfg Config) *Parser {
	return &Parser{
		Config: cfg,
		Dict:   dict.Default(),
		Groups: DefaultGroups(),
		Log:    zerolog.Nop(),
	}
}

// Parse decodes one raw buffer with the given configuration using the
// default dictionary and group schemas.
func Parse(raw string, cfg Config) (*Message, error) {
	return New(cfg).Parse(raw)
}

// Parse decodes one raw buffer into a Message. Only input that cannot be
// tokenized or structurally bounded aborts; numeric and semantic mismatches
// degrade to flags unless the corresponding strict flag is set.
func (p *Parser) Parse(raw string) (*Message, error) {
	rawFields, normalized, err := Tokenize(raw, p.Config.AllowPipeDelimiter, p.Config.StrictDelimiter)
	if err != nil {
		return nil, err
	}

	if err := validateStructure(rawFields); err != nil {
		return nil, err
	}

	// Numeric integrity checks run before group parsing so strict mode fails
	// fast without restructuring work.
	var flags []Flag
	if ckErr := verifyChecksum(normalized, rawFields); ckErr != nil {
		if p.Config.StrictChecksum {
			return nil, ckErr
		}
		flags = append(flags, Flag{Kind: FlagChecksum, Tag: fixtag.CheckSum, Detail: ckErr.Error()})
		p.Log.Debug().Str("expected", ckErr.Expected).Str("actual", ckErr.Actual).Msg("checksum mismatch tolerated")
	}
	if blErr := verifyBodyLength(normalized, rawFields); blErr != nil {
		if p.Config.StrictBodyLength {
			return nil, blErr
		}
		flags = append(flags, Flag{Kind: FlagBodyLength, Tag: fixtag.BodyLength, Detail: blErr.Error()})
		p.Log.Debug().Int("expected", blErr.Expected).Int("actual", blErr.Actual).Msg("body length mismatch tolerated")
	}

	fields, coercionFlags, err := p.decorate(rawFields)
	if err != nil {
		return nil, err
	}
	flags = append(flags, coercionFlags...)

	nodes, groups, structureFlags := p.buildStructure(fields)
	flags = append(flags, structureFlags...)

	msg := &Message{
		raw:     raw,
		fields:  fields,
		nodes:   nodes,
		groups:  groups,
		header:  headerSubset(fields),
		trailer: trailerSubset(fields),
		flags:   flags,
	}
	return msg, nil
}

// decorate resolves each raw field against the dictionary and coerces its
// value. Unknown tags never fail the parse: they fall back to name "Unknown"
// and type STRING.
func (p *Parser) decorate(rawFields []RawField) ([]*Field, []Flag, error) {
	fields := make([]*Field, 0, len(rawFields))
	var flags []Flag

	for _, rf := range rawFields {
		field := &Field{
			Tag:      rf.Tag,
			RawValue: rf.Value,
			Name:     "Unknown",
			Type:     dict.TypeString,
			Pos:      rf.Pos,
		}
		if def, ok := p.Dict.Resolve(rf.Tag); ok {
			field.Name = def.Name
			field.Type = def.Type
			if desc, ok := def.EnumDescription(rf.Value); ok {
				field.ValueDescription = desc
			}
		}

		typed, coerceErr := Coerce(rf.Tag, rf.Value, field.Type)
		if coerceErr != nil {
			if p.Config.StrictTypes {
				return nil, nil, coerceErr
			}
			flags = append(flags, Flag{Kind: FlagCoercion, Tag: rf.Tag, Detail: coerceErr.Error()})
			p.Log.Debug().Int("tag", rf.Tag).Str("type", field.Type).Str("value", rf.Value).Msg("type coercion failed, keeping raw value")
		}
		field.TypedValue = typed

		fields = append(fields, field)
	}
	return fields, flags, nil
}

// frame is one open group on the parse stack.
type frame struct {
	schema *GroupSchema
	inst   *GroupInstance
}

// buildStructure folds the flat field sequence into nested group instances
// in a single pass, per the scope-closing rules in the package comment.
func (p *Parser) buildStructure(fields []*Field) ([]Node, map[int]*GroupInstance, []Flag) {
	var (
		nodes []Node
		stack []*frame
		flags []Flag
	)
	groups := make(map[int]*GroupInstance)
	topLevelSeen := make(map[int]bool)

	appendNode := func(n Node) {
		if len(stack) == 0 {
			nodes = append(nodes, n)
			return
		}
		fr := stack[len(stack)-1]
		entry := &fr.inst.Entries[len(fr.inst.Entries)-1]
		entry.Nodes = append(entry.Nodes, n)
	}

	closeTop := func() {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if captured := len(fr.inst.Entries); captured != fr.inst.Declared {
			flags = append(flags, Flag{
				Kind:   FlagGroupCount,
				Tag:    fr.inst.CountTag,
				Detail: fmt.Sprintf("group %q declared %d entries, captured %d", fr.inst.Name, fr.inst.Declared, captured),
			})
			p.Log.Debug().Int("count_tag", fr.inst.CountTag).Int("declared", fr.inst.Declared).Int("captured", captured).Msg("group count mismatch")
		}
	}

	openGroup := func(f *Field, schema *GroupSchema) {
		declared := 0
		if n, ok := f.Int(); ok && n >= 0 {
			declared = n
		}
		inst := &GroupInstance{
			CountTag:   schema.CountTag,
			Name:       schema.Name,
			CountField: f,
			Declared:   declared,
		}
		if _, exists := groups[schema.CountTag]; !exists {
			groups[schema.CountTag] = inst
		}
		appendNode(Node{Group: inst})
		// A declared count of zero consumes no member fields.
		if declared > 0 {
			stack = append(stack, &frame{schema: schema, inst: inst})
		}
	}

	for _, f := range fields {
		claimed := false
		for !claimed {
			if len(stack) == 0 {
				if schema, ok := p.Groups.Lookup(f.Tag); ok {
					openGroup(f, schema)
				} else {
					if topLevelSeen[f.Tag] {
						flags = append(flags, Flag{
							Kind:   FlagDuplicateTag,
							Tag:    f.Tag,
							Detail: fmt.Sprintf("tag %d repeated among top-level fields", f.Tag),
						})
					}
					topLevelSeen[f.Tag] = true
					appendNode(Node{Field: f})
				}
				claimed = true
				continue
			}

			fr := stack[len(stack)-1]
			switch {
			case f.Tag == fr.schema.DelimiterTag:
				// Delimiter recurrence starts a new entry, even beyond the
				// declared count; excess is captured and flagged on close.
				fr.inst.Entries = append(fr.inst.Entries, GroupEntry{Index: len(fr.inst.Entries) + 1})
				appendNode(Node{Field: f})
				claimed = true

			case fr.schema.Member(f.Tag):
				if len(fr.inst.Entries) == 0 {
					// Member tag before the group's first delimiter: the
					// group cannot own it. Reattach to the enclosing scope.
					flags = append(flags, reattachFlag(f, fr.inst.Name))
					p.Log.Warn().Int("tag", f.Tag).Str("group", fr.inst.Name).Msg("member tag before first entry, reattached to enclosing scope")
					closeTop()
					continue
				}
				if nested, ok := fr.schema.Nested[f.Tag]; ok {
					openGroup(f, nested)
				} else if schema, ok := p.Groups.Lookup(f.Tag); ok && schema.CountTag != fr.schema.CountTag {
					openGroup(f, schema)
				} else {
					appendNode(Node{Field: f})
				}
				claimed = true

			default:
				// Not consumable here: close the innermost group and let the
				// parent scope (possibly the top level) examine the tag.
				closeTop()
			}
		}
	}

	for len(stack) > 0 {
		closeTop()
	}
	return nodes, groups, flags
}

func reattachFlag(f *Field, groupName string) Flag {
	return Flag{
		Kind:   FlagReattached,
		Tag:    f.Tag,
		Detail: fmt.Sprintf("tag %d outside schema of group %q, attached to enclosing scope", f.Tag, groupName),
	}
}

// headerTags are the FIX 4.4 session-level tags that may open a message.
var headerTags = map[int]bool{
	8: true, 9: true, 35: true, 34: true, 43: true, 49: true, 50: true,
	52: true, 56: true, 57: true, 97: true, 115: true, 116: true,
	122: true, 128: true, 129: true,
}

var trailerTags = map[int]bool{
	fixtag.CheckSum: true, fixtag.Signature: true, fixtag.SignatureLen: true,
}

// headerSubset returns the leading run of header tags: everything before the
// first application-level field.
func headerSubset(fields []*Field) []*Field {
	var header []*Field
	for _, f := range fields {
		if !headerTags[f.Tag] {
			break
		}
		header = append(header, f)
	}
	return header
}

// trailerSubset returns the trailing run of trailer tags.
func trailerSubset(fields []*Field) []*Field {
	cut := len(fields)
	for cut > 0 && trailerTags[fields[cut-1].Tag] {
		cut--
	}
	return fields[cut:]
}
