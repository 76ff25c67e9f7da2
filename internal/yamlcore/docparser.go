// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"strings"
	"unicode/utf8"
)

// DocumentStreamParser drives the top-level loop of spec §4.4: directives,
// document markers, and the tag handle table's per-document reset/commit,
// handing each document's body to a fresh BlockParser.
type DocumentStreamParser struct {
	lines []Line
	valid bool
}

// NewDocumentStreamParser returns a parser over the normalized input.
func NewDocumentStreamParser(input string) *DocumentStreamParser {
	return &DocumentStreamParser{lines: SplitLines(input), valid: utf8.ValidString(input)}
}

// ParseAll parses every document in the stream (spec §4.4, §3.6, §6.1).
func (p *DocumentStreamParser) ParseAll() ([]Document, error) {
	if !p.valid {
		return nil, newEncodingError(Mark{Line: 1, Column: 1}, "input is not valid UTF-8")
	}
	var docs []Document
	idx := 0
	for {
		doc, next, err := p.parseOne(idx)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			break
		}
		docs = append(docs, *doc)
		idx = next
	}
	return docs, nil
}

func (p *DocumentStreamParser) parseOne(idx int) (*Document, int, error) {
	idx = p.skipLeadingBlank(idx)
	if idx >= len(p.lines) {
		return nil, idx, nil
	}

	tags := DefaultTagHandleTable()
	pending := tags.Clone()
	sawDirective := false
	for idx < len(p.lines) {
		l := p.lines[idx]
		trimmed := strings.TrimSpace(l.Raw)
		if trimmed == "" {
			idx++
			continue
		}
		if strings.TrimSpace(StripComment(l.Content())) == "" {
			idx++
			continue
		}
		if l.Indent == 0 && strings.HasPrefix(l.Content(), "%") {
			if err := applyDirective(l, pending); err != nil {
				return nil, idx, err
			}
			sawDirective = true
			idx++
			continue
		}
		break
	}

	if idx >= len(p.lines) {
		if !sawDirective {
			return nil, idx, nil
		}
		return nil, idx, newSyntaxError(Mark{Line: p.lines[len(p.lines)-1].Number}, "directives not followed by a document")
	}

	explicitStart := false
	if isDocStart(p.lines[idx]) {
		explicitStart = true
		idx++
	} else if sawDirective {
		return nil, idx, newSyntaxError(Mark{Line: p.lines[idx].Number}, "directives must be followed by '---'")
	}

	tags = pending

	block := NewBlockParser(p.lines, tags)
	root, next, err := block.ParseRoot(idx)
	if err != nil {
		return nil, idx, err
	}
	idx = next

	explicitEnd := false
	idx = p.skipLeadingBlank(idx)
	if idx < len(p.lines) && isDocEnd(p.lines[idx]) {
		explicitEnd = true
		idx++
	}

	if root == nil {
		root = nullScalar(Mark{Line: p.lines[min(idx, len(p.lines)-1)].Number})
	}

	return &Document{Root: root, ExplicitStart: explicitStart, ExplicitEnd: explicitEnd}, idx, nil
}

func (p *DocumentStreamParser) skipLeadingBlank(idx int) int {
	for idx < len(p.lines) {
		l := p.lines[idx]
		if strings.TrimSpace(l.Raw) == "" {
			idx++
			continue
		}
		if strings.TrimSpace(StripComment(l.Content())) == "" {
			idx++
			continue
		}
		return idx
	}
	return idx
}

// applyDirective parses one "%YAML" or "%TAG" directive line (spec §4.4)
// and mutates the pending tag handle table committed at document start.
func applyDirective(l Line, pending TagHandleTable) error {
	mark := Mark{Line: l.Number, Column: 1}
	body := strings.TrimSpace(StripComment(l.Content()))
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return newSyntaxError(mark, "empty directive")
	}
	switch fields[0] {
	case "%YAML":
		if len(fields) != 2 {
			return newSyntaxError(mark, "malformed %%YAML directive")
		}
		if fields[1] != "1.1" && fields[1] != "1.2" {
			return newSyntaxError(mark, "unsupported YAML version %q", fields[1])
		}
	case "%TAG":
		if len(fields) != 3 {
			return newSyntaxError(mark, "malformed %%TAG directive")
		}
		handle, prefix := fields[1], fields[2]
		if !strings.HasPrefix(handle, "!") || !strings.HasSuffix(handle, "!") {
			return newSyntaxError(mark, "malformed tag handle %q", handle)
		}
		decoded, err := decodePercent(prefix)
		if err != nil {
			return newSyntaxError(mark, "invalid %%TAG prefix: %s", err)
		}
		pending[handle] = decoded
	default:
		return newSyntaxError(mark, "unknown directive %q", fields[0])
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
