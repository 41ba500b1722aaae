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

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/chanchunyinjohnny/FxFixParser/fixtag"
)

// Field is a decoded tag=value pair decorated with dictionary metadata and a
// typed value. Fields are owned by their containing Message and never shared
// across messages.
type Field struct {
	Tag              int
	RawValue         string
	Name             string
	Type             string
	TypedValue       any
	ValueDescription string
	Pos              int
}

// String renders the field in the fixed inspection format:
// "<Name> (<tag>): <raw value>[ (<description>)]".
func (f *Field) String() string {
	if f.ValueDescription != "" {
		return fmt.Sprintf("%s (%d): %s (%s)", f.Name, f.Tag, f.RawValue, f.ValueDescription)
	}
	return fmt.Sprintf("%s (%d): %s", f.Name, f.Tag, f.RawValue)
}

// Int returns the typed value as an int when coercion produced one.
func (f *Field) Int() (int, bool) {
	v, ok := f.TypedValue.(int)
	return v, ok
}

// Float returns the typed value as a float64 when coercion produced one.
func (f *Field) Float() (float64, bool) {
	v, ok := f.TypedValue.(float64)
	return v, ok
}

// Node is one element of a structured scope: either a plain field or a
// repeating group instance.
type Node struct {
	Field *Field
	Group *GroupInstance
}

// IsGroup reports whether the node holds a group instance.
func (n Node) IsGroup() bool { return n.Group != nil }

// GroupEntry is one repetition inside a group: an ordered sequence of fields
// and nested group instances. Index is 1-based.
type GroupEntry struct {
	Index int
	Nodes []Node
}

// Get returns the first field with the given tag directly in this entry.
func (e *GroupEntry) Get(tag int) *Field {
	for _, n := range e.Nodes {
		if n.Field != nil && n.Field.Tag == tag {
			return n.Field
		}
	}
	return nil
}

// GroupInstance is a decoded repeating group: the count field plus its
// captured entries. Entries may exceed Declared when the wire carried more
// repetitions than announced; the excess is kept, not dropped.
type GroupInstance struct {
	CountTag   int
	Name       string
	CountField *Field
	Declared   int
	Entries    []GroupEntry
}

// FlagKind classifies a non-fatal observation recorded during parsing.
type FlagKind string

const (
	// FlagChecksum marks a checksum mismatch tolerated in lenient mode.
	FlagChecksum FlagKind = "checksum_mismatch"
	// FlagBodyLength marks a body-length mismatch tolerated in lenient mode.
	FlagBodyLength FlagKind = "body_length_mismatch"
	// FlagCoercion marks a value that could not be coerced to its declared type.
	FlagCoercion FlagKind = "type_coercion"
	// FlagReattached marks a tag that appeared outside its group schema and
	// was attached to the nearest enclosing scope as a plain field.
	FlagReattached FlagKind = "reattached_tag"
	// FlagGroupCount marks a group whose captured entry count differs from
	// its declared count.
	FlagGroupCount FlagKind = "group_count_mismatch"
	// FlagDuplicateTag marks a tag repeated among top-level non-group fields.
	FlagDuplicateTag FlagKind = "duplicate_tag"
)

// Flag is one non-fatal observation attached to a parsed message.
type Flag struct {
	Kind   FlagKind
	Tag    int
	Detail string
}

func (f Flag) String() string {
	if f.Tag != 0 {
		return fmt.Sprintf("%s (tag %d): %s", f.Kind, f.Tag, f.Detail)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// Message is a fully decoded FIX message. It is immutable after assembly:
// downstream consumers read it or derive copies, never mutate it, so a single
// message can back multiple independent interpretations concurrently.
type Message struct {
	raw     string
	fields  []*Field
	nodes   []Node
	groups  map[int]*GroupInstance
	header  []*Field
	trailer []*Field
	flags   []Flag

	venue   string
	product string
}

// Raw returns the original input buffer.
func (m *Message) Raw() string { return m.raw }

// Fields returns all fields in wire order, flattened across groups. The
// returned slice is shared; treat it as read-only.
func (m *Message) Fields() []*Field { return m.fields }

// Nodes returns the structured top-level view: plain fields interleaved with
// group instances in wire order.
func (m *Message) Nodes() []Node { return m.nodes }

// Get returns the first field with the given tag, searching in wire order
// across the whole message, or nil.
func (m *Message) Get(tag int) *Field {
	for _, f := range m.fields {
		if f.Tag == tag {
			return f
		}
	}
	return nil
}

// GetAll returns every field with the given tag in wire order.
func (m *Message) GetAll(tag int) []*Field {
	var out []*Field
	for _, f := range m.fields {
		if f.Tag == tag {
			out = append(out, f)
		}
	}
	return out
}

// Value returns the raw value of the first field with the given tag.
func (m *Message) Value(tag int) (string, bool) {
	if f := m.Get(tag); f != nil {
		return f.RawValue, true
	}
	return "", false
}

// Group returns the group instance announced by the given count tag.
func (m *Message) Group(countTag int) (*GroupInstance, bool) {
	g, ok := m.groups[countTag]
	return g, ok
}

// Header returns the leading run of session-level fields.
func (m *Message) Header() []*Field { return m.header }

// Trailer returns the trailing checksum/signature fields.
func (m *Message) Trailer() []*Field { return m.trailer }

// Flags returns the non-fatal observations recorded during parsing.
func (m *Message) Flags() []Flag { return m.flags }

// HasFlag reports whether any flag of the given kind was recorded.
func (m *Message) HasFlag(kind FlagKind) bool {
	for _, f := range m.flags {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

// BeginString returns the tag 8 value.
func (m *Message) BeginString() string {
	v, _ := m.Value(fixtag.BeginString)
	return v
}

// MsgType returns the tag 35 value.
func (m *Message) MsgType() string {
	v, _ := m.Value(fixtag.MsgType)
	return v
}

// SenderCompID returns the tag 49 value.
func (m *Message) SenderCompID() string {
	v, _ := m.Value(fixtag.SenderCompID)
	return v
}

// TargetCompID returns the tag 56 value.
func (m *Message) TargetCompID() string {
	v, _ := m.Value(fixtag.TargetCompID)
	return v
}

// Venue returns the venue name attached via WithVenue, or "".
func (m *Message) Venue() string { return m.venue }

// ProductType returns the product classification attached via WithProduct.
func (m *Message) ProductType() string { return m.product }

// WithVenue returns a shallow derived copy carrying the venue name. The
// receiver is not modified.
func (m *Message) WithVenue(venue string) *Message {
	derived := *m
	derived.venue = venue
	return &derived
}

// WithProduct returns a shallow derived copy carrying the product type.
func (m *Message) WithProduct(product string) *Message {
	derived := *m
	derived.product = product
	return &derived
}

// --- Export ---

// FieldDoc is the plain key-value form of one field.
type FieldDoc struct {
	Tag              int    `json:"tag"`
	Name             string `json:"name"`
	Value            string `json:"value"`
	TypedValue       any    `json:"typed_value,omitempty"`
	ValueDescription string `json:"value_description,omitempty"`
}

// EntryDoc is the plain form of one group entry.
type EntryDoc struct {
	Index int   `json:"index"`
	Items []any `json:"items"`
}

// GroupDoc is the plain form of one group instance.
type GroupDoc struct {
	Group    string     `json:"group"`
	CountTag int        `json:"count_tag"`
	Declared int        `json:"declared"`
	Count    int        `json:"count"`
	Entries  []EntryDoc `json:"entries"`
}

// MessageDoc is the plain nested key-value form of a message, suitable for
// JSON serialization and downstream tooling.
type MessageDoc struct {
	BeginString  string   `json:"begin_string"`
	MsgType      string   `json:"msg_type"`
	SenderCompID string   `json:"sender_comp_id,omitempty"`
	TargetCompID string   `json:"target_comp_id,omitempty"`
	Venue        string   `json:"venue,omitempty"`
	ProductType  string   `json:"product_type,omitempty"`
	Flags        []string `json:"flags,omitempty"`
	Fields       []any    `json:"fields"`
}

func fieldDoc(f *Field) FieldDoc {
	doc := FieldDoc{
		Tag:              f.Tag,
		Name:             f.Name,
		Value:            f.RawValue,
		ValueDescription: f.ValueDescription,
	}
	// Typed value is only interesting when coercion changed the type.
	if _, isString := f.TypedValue.(string); !isString {
		doc.TypedValue = f.TypedValue
	}
	return doc
}

func groupDoc(g *GroupInstance) GroupDoc {
	doc := GroupDoc{
		Group:    g.Name,
		CountTag: g.CountTag,
		Declared: g.Declared,
		Count:    len(g.Entries),
		Entries:  make([]EntryDoc, 0, len(g.Entries)),
	}
	for _, entry := range g.Entries {
		e := EntryDoc{Index: entry.Index, Items: make([]any, 0, len(entry.Nodes))}
		for _, n := range entry.Nodes {
			if n.IsGroup() {
				e.Items = append(e.Items, groupDoc(n.Group))
			} else {
				e.Items = append(e.Items, fieldDoc(n.Field))
			}
		}
		doc.Entries = append(doc.Entries, e)
	}
	return doc
}

// Document exports the message as a plain nested key-value document.
func (m *Message) Document() MessageDoc {
	doc := MessageDoc{
		BeginString:  m.BeginString(),
		MsgType:      m.MsgType(),
		SenderCompID: m.SenderCompID(),
		TargetCompID: m.TargetCompID(),
		Venue:        m.venue,
		ProductType:  m.product,
		Fields:       make([]any, 0, len(m.nodes)),
	}
	for _, flag := range m.flags {
		doc.Flags = append(doc.Flags, flag.String())
	}
	for _, n := range m.nodes {
		if n.IsGroup() {
			doc.Fields = append(doc.Fields, groupDoc(n.Group))
		} else {
			doc.Fields = append(doc.Fields, fieldDoc(n.Field))
		}
	}
	return doc
}

// MarshalJSON serializes the exported document form.
func (m *Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Document())
}

// Render produces the fixed multi-line textual form: one line per field,
// groups as indented nested blocks.
func (m *Message) Render() string {
	var b strings.Builder
	for _, n := range m.nodes {
		renderNode(&b, n, 0)
	}
	return b.String()
}

func renderNode(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if !n.IsGroup() {
		b.WriteString(indent)
		b.WriteString(n.Field.String())
		b.WriteByte('\n')
		return
	}

	g := n.Group
	b.WriteString(indent)
	b.WriteString(g.CountField.String())
	fmt.Fprintf(b, " - %s\n", g.Name)
	for _, entry := range g.Entries {
		fmt.Fprintf(b, "%s  [Entry %d]\n", indent, entry.Index)
		for _, child := range entry.Nodes {
			renderNode(b, child, depth+2)
		}
	}
}
