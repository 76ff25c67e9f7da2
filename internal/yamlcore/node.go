// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

// DocumentNode is the sum type of spec §3.5: a scalar, a sequence, a
// mapping, or an alias. Concrete types below implement it; aliases carry
// neither tag nor anchor (enforced by construction, not by the interface).
type DocumentNode interface {
	// Mark returns the position where the node's content started.
	Mark() Mark
	documentNode()
}

// Scalar holds the node's text and the style it was written (or is to be
// written) in. Empty text is legal.
type Scalar struct {
	Text  string
	Style ScalarStyle
}

// ScalarNode is a leaf value, decorated with an optional tag and anchor.
type ScalarNode struct {
	Value       Scalar
	Tag, Anchor string // empty means absent
	pos         Mark
}

func (n *ScalarNode) documentNode() {}
func (n *ScalarNode) Mark() Mark    { return n.pos }

// SequenceNode is an ordered list of child nodes.
type SequenceNode struct {
	Items       []DocumentNode
	Style       CollectionStyle
	Tag, Anchor string
	pos         Mark
}

func (n *SequenceNode) documentNode() {}
func (n *SequenceNode) Mark() Mark    { return n.pos }

// MappingEntry is one key/value pair of a MappingNode. Order is the
// textual order of entries; duplicate keys are syntactically permitted and
// preserved here (dedup is the data model's job, per spec §3.5).
type MappingEntry struct {
	Key   DocumentNode
	Value DocumentNode
}

// MappingNode is an ordered list of key/value pairs.
type MappingNode struct {
	Entries     []MappingEntry
	Style       CollectionStyle
	Tag, Anchor string
	pos         Mark
}

func (n *MappingNode) documentNode() {}
func (n *MappingNode) Mark() Mark    { return n.pos }

// AliasNode is a by-name reference to a previously anchored node. Aliases
// are not pointers: the tree stays acyclic, and the event emitter checks
// only that the name was already anchored earlier in the same document,
// emitting a single Alias event rather than replaying the referenced
// node's subtree (spec §4.9, §9) — a self-referential anchor such as
// `a: &x {b: *x}` would otherwise recurse forever.
type AliasNode struct {
	Name string
	pos  Mark
}

func (n *AliasNode) documentNode() {}
func (n *AliasNode) Mark() Mark    { return n.pos }

// Document is one parsed YAML document: its root node plus whether it was
// opened/closed with explicit `---`/`...` markers (spec §3.6).
type Document struct {
	Root          DocumentNode
	ExplicitStart bool
	ExplicitEnd   bool
}
