// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yaml is the public entry point for the nyaml reader/writer
// core. It re-exports the types of internal/yamlcore and adds the two
// functions a caller actually reaches for: Parse and Write.
//
// Source code and other details for the project are available at GitHub:
//
//	https://github.com/nyaml/nyaml
package yaml

import (
	"io"

	"github.com/nyaml/nyaml/internal/yamlcore"
)

// Re-export the core's data model.
type (
	Document        = yamlcore.Document
	DocumentNode    = yamlcore.DocumentNode
	ScalarNode      = yamlcore.ScalarNode
	SequenceNode    = yamlcore.SequenceNode
	MappingNode     = yamlcore.MappingNode
	MappingEntry    = yamlcore.MappingEntry
	AliasNode       = yamlcore.AliasNode
	Scalar          = yamlcore.Scalar
	ScalarStyle     = yamlcore.ScalarStyle
	CollectionStyle = yamlcore.CollectionStyle
	Chomp           = yamlcore.Chomp
	Mark            = yamlcore.Mark
	Location        = yamlcore.Location
	ValueEvent      = yamlcore.ValueEvent
	EventKind       = yamlcore.EventKind
	ResolvedValue   = yamlcore.ResolvedValue
	ScalarKind      = yamlcore.ScalarKind
)

// Re-export the core's collection/scalar style constants.
const (
	BlockStyle = yamlcore.BlockStyle
	FlowStyle  = yamlcore.FlowStyle

	PlainScalarStyle        = yamlcore.PlainScalarStyle
	SingleQuotedScalarStyle = yamlcore.SingleQuotedScalarStyle
	DoubleQuotedScalarStyle = yamlcore.DoubleQuotedScalarStyle
	LiteralScalarStyle      = yamlcore.LiteralScalarStyle
	FoldedScalarStyle       = yamlcore.FoldedScalarStyle

	ChompClip  = yamlcore.ChompClip
	ChompStrip = yamlcore.ChompStrip
	ChompKeep  = yamlcore.ChompKeep
)

// Re-export the core's resolved-scalar-kind constants.
const (
	KindNull   = yamlcore.KindNull
	KindBool   = yamlcore.KindBool
	KindInt    = yamlcore.KindInt
	KindFloat  = yamlcore.KindFloat
	KindString = yamlcore.KindString
	KindBinary = yamlcore.KindBinary
)

// Re-export the core's error taxonomy.
type (
	SyntaxError          = yamlcore.SyntaxError
	IndentationError     = yamlcore.IndentationError
	DuplicateAnchorError = yamlcore.DuplicateAnchorError
	UnresolvedAliasError = yamlcore.UnresolvedAliasError
	EncodingError        = yamlcore.EncodingError
	EventError           = yamlcore.EventError
	StateError           = yamlcore.StateError
)

// Re-export the writer's functional options.
type Option = yamlcore.Option

var (
	WithIndent                = yamlcore.WithIndent
	WithForceBlockCollections = yamlcore.WithForceBlockCollections
	WithImplicitTyping        = yamlcore.WithImplicitTyping
	WithDocumentMarkerPrefix  = yamlcore.WithDocumentMarkerPrefix
	WithBufferSize            = yamlcore.WithBufferSize
)

// Parse reads every document in r and returns the parsed tree for each
// (spec §4.4, §6.1). Invalid UTF-8 fails with an EncodingError; any
// malformed construct fails with the core's other marked error types.
func Parse(r io.Reader) ([]Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := yamlcore.NewDocumentStreamParser(string(data))
	return p.ParseAll()
}

// EventSource is anything Write can render: a parsed Document, or any
// caller type that knows how to produce one (e.g. a hand-built tree).
type EventSource interface {
	AsDocument() Document
}

// docSource adapts a plain Document value to EventSource so callers can
// pass parsed documents directly to Write.
type docSource Document

func (d docSource) AsDocument() Document { return Document(d) }

// AsSource wraps doc so it can be passed to Write.
func AsSource(doc Document) EventSource { return docSource(doc) }

// Write renders docs as a YAML stream (spec §4.10, §6.3), inserting "---"
// markers between documents and honoring each one's recorded explicit
// start/end markers.
func Write(w io.Writer, docs []EventSource, opts ...Option) error {
	plain := make([]Document, len(docs))
	for i, d := range docs {
		plain[i] = d.AsDocument()
	}
	return yamlcore.WriteDocuments(w, plain, opts...)
}

// Events runs the event emitter over a single already-parsed document
// (spec §4.9, §5) — the flat stream both the CLI's "events" subcommand and
// round-trip tests consume.
func Events(doc Document) ([]ValueEvent, error) {
	return yamlcore.Events(&doc)
}
