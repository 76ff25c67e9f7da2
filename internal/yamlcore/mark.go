// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yamlcore implements the indentation-sensitive YAML reader/writer
// core: a line-oriented lexical preprocessor, a recursive-descent block/flow
// parser, a value-event emitter, and an inverse writer.
package yamlcore

import (
	"fmt"
	"strings"
)

// Mark identifies a position in the original input, used to annotate every
// error the core produces.
type Mark struct {
	Line   int // 1-indexed line.
	Column int // 1-indexed column.
	Index  int // 0-indexed byte offset, for internal bookkeeping.
}

// String renders the mark the way the teacher's errors render a position:
// "line L, column C", or a placeholder when the mark was never set.
func (m Mark) String() string {
	if m.Line == 0 {
		return "<unknown position>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "line %d", m.Line)
	if m.Column != 0 {
		fmt.Fprintf(&b, ", column %d", m.Column)
	}
	return b.String()
}

// Location is the public spelling of a position (spec §3.9); it is an alias
// of Mark so callers who only care about line/column need not learn both
// names.
type Location = Mark
