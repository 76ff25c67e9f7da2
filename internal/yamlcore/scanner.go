// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"strings"
	"unicode/utf8"
)

// Decorators holds the tag/anchor pair an inline region may carry before its
// value (spec §4.3.2).
type Decorators struct {
	RawTag  string
	TagMark Mark
	Anchor  string
}

// InlineScanner is the character-level scanner of spec §4.3. It operates
// over one already-assembled logical region of text — a single physical
// line's remainder, or a multi-line quoted/flow region the block parser has
// already joined with real '\n' separators — and tracks the physical
// line/column of every position it visits via the newline offsets it
// crosses, playing the role of the spec's line_start_columns array without
// needing it precomputed.
type InlineScanner struct {
	text               string
	pos                int
	baseLine, baseCol  int
	newlineAt          []int
}

// NewInlineScanner creates a scanner over text whose first byte sits at
// (startLine, startCol) in the original input.
func NewInlineScanner(text string, startLine, startCol int) *InlineScanner {
	s := &InlineScanner{text: text, baseLine: startLine, baseCol: startCol}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			s.newlineAt = append(s.newlineAt, i)
		}
	}
	return s
}

// Mark reports the scanner's current physical position.
func (s *InlineScanner) Mark() Mark { return s.markAt(s.pos) }

func (s *InlineScanner) markAt(pos int) Mark {
	line := s.baseLine
	lastNL := -1
	for _, nl := range s.newlineAt {
		if nl < pos {
			line++
			lastNL = nl
		} else {
			break
		}
	}
	col := s.baseCol + pos
	if lastNL >= 0 {
		col = pos - lastNL
	}
	return Mark{Line: line, Column: col, Index: pos}
}

// Remainder returns everything not yet consumed.
func (s *InlineScanner) Remainder() string { return s.text[s.pos:] }

// AtEOF reports whether the scanner has consumed the whole region.
func (s *InlineScanner) AtEOF() bool { return s.pos >= len(s.text) }

func (s *InlineScanner) eof() bool       { return s.pos >= len(s.text) }
func (s *InlineScanner) peekByte() byte  { if s.eof() { return 0 }; return s.text[s.pos] }
func (s *InlineScanner) peekAt(n int) byte {
	if s.pos+n >= len(s.text) {
		return 0
	}
	return s.text[s.pos+n]
}

func isSpaceOrTabByte(c byte) bool { return c == ' ' || c == '\t' }

// SkipWhitespaceAndComments advances over spaces/tabs and, once whitespace
// (or start-of-text) has been seen, over a '#' comment to end of line (spec
// §4.3.1). In flow context a line break is itself insignificant whitespace
// (spec §4.3.7/§4.5.5), so it is skipped too rather than left as a
// terminator. Idempotent.
func (s *InlineScanner) SkipWhitespaceAndComments(flow bool) {
	for !s.eof() {
		c := s.peekByte()
		if c == ' ' || c == '\t' {
			s.pos++
			continue
		}
		if flow && c == '\n' {
			s.pos++
			continue
		}
		if c == '#' && (s.pos == 0 || isSpaceOrTabByte(s.text[s.pos-1]) || s.text[s.pos-1] == '\n') {
			for !s.eof() && s.peekByte() != '\n' {
				s.pos++
			}
			continue
		}
		break
	}
}

// isNameStop reports whether the scanner sits at a terminator for an
// anchor or alias name: whitespace, or (in flow context) a flow terminator.
func (s *InlineScanner) isNameStop(flow bool) bool {
	if s.eof() {
		return true
	}
	switch s.peekByte() {
	case ' ', '\t', '\n':
		return true
	case ',', ']', '}':
		return flow
	}
	return false
}

func (s *InlineScanner) colonIsStop(flow bool) bool {
	next := s.peekAt(1)
	if s.pos+1 >= len(s.text) {
		return true
	}
	if next == ' ' || next == '\t' || next == '\n' {
		return true
	}
	if flow && (next == ',' || next == ']' || next == '}') {
		return true
	}
	return false
}

func (s *InlineScanner) isTagStopHere(flow bool) bool {
	if s.isNameStop(flow) {
		return true
	}
	return s.peekByte() == ':' && s.colonIsStop(flow)
}

// ParseDecorators reads any interleaving of tags and anchors preceding a
// node (spec §4.3.2).
func (s *InlineScanner) ParseDecorators(flow bool) (Decorators, error) {
	var d Decorators
	for {
		s.SkipWhitespaceAndComments(flow)
		switch s.peekByte() {
		case '!':
			if d.RawTag != "" {
				return Decorators{}, newSyntaxError(s.Mark(), "multiple tags/anchors on node")
			}
			d.TagMark = s.Mark()
			tag, err := s.parseTagRaw(flow)
			if err != nil {
				return Decorators{}, err
			}
			d.RawTag = tag
		case '&':
			if d.Anchor != "" {
				return Decorators{}, newSyntaxError(s.Mark(), "multiple tags/anchors on node")
			}
			anchor, err := s.ParseAnchor(flow)
			if err != nil {
				return Decorators{}, err
			}
			d.Anchor = anchor
		default:
			return d, nil
		}
	}
}

// parseTagRaw consumes one tag token in any of the forms of spec §4.3.3 and
// returns it undecoded; TagHandleTable.Resolve does the handle/prefix
// expansion.
func (s *InlineScanner) parseTagRaw(flow bool) (string, error) {
	m := s.Mark()
	start := s.pos
	s.pos++ // consume leading '!'
	if s.eof() || s.isTagStopHere(flow) {
		return "!", nil
	}
	if s.peekByte() == '<' {
		s.pos++
		uriStart := s.pos
		for !s.eof() && s.peekByte() != '>' {
			s.pos++
		}
		if s.eof() || s.pos == uriStart {
			return "", newSyntaxError(m, "invalid tag")
		}
		uri := s.text[uriStart:s.pos]
		s.pos++ // consume '>'
		return "!<" + uri + ">", nil
	}
	for !s.eof() && !s.isTagStopHere(flow) {
		if s.peekByte() == '{' || s.peekByte() == '}' {
			return "", newSyntaxError(m, "invalid tag")
		}
		s.pos++
	}
	return s.text[start:s.pos], nil
}

// ParseAnchor consumes "&name" (spec §4.3.4).
func (s *InlineScanner) ParseAnchor(flow bool) (string, error) {
	m := s.Mark()
	s.pos++ // '&'
	start := s.pos
	for !s.eof() && !s.isNameStop(flow) {
		s.pos++
	}
	if s.pos == start {
		return "", newSyntaxError(m, "anchor without name")
	}
	return s.text[start:s.pos], nil
}

// ParseAlias consumes "*name" (spec §4.3.4).
func (s *InlineScanner) ParseAlias(flow bool) (string, error) {
	m := s.Mark()
	s.pos++ // '*'
	start := s.pos
	for !s.eof() && !s.isNameStop(flow) {
		s.pos++
	}
	if s.pos == start {
		return "", newSyntaxError(m, "alias without name")
	}
	return s.text[start:s.pos], nil
}

// ParseDoubleQuoted decodes a double-quoted scalar; the caller guarantees
// the scanner's text already contains the matching closing quote, including
// any continuation lines joined with real '\n' separators (spec §4.3.5,
// §4.5.4).
func (s *InlineScanner) ParseDoubleQuoted() (string, error) {
	m := s.Mark()
	s.pos++ // opening quote
	// Only real line breaks split segments for folding; an escaped "\n"
	// stays in its segment as a newline.
	var segs []string
	var raw strings.Builder
	for {
		if s.eof() {
			return "", newSyntaxError(m, "unterminated double-quoted scalar")
		}
		switch c := s.peekByte(); c {
		case '"':
			s.pos++
			return foldQuotedSegments(append(segs, raw.String())), nil
		case '\\':
			s.pos++
			if s.eof() {
				return "", newSyntaxError(m, "unterminated double-quoted scalar")
			}
			if s.peekByte() == '\n' {
				s.pos++
				for !s.eof() && isSpaceOrTabByte(s.peekByte()) {
					s.pos++
				}
				continue
			}
			r, err := s.decodeEscape()
			if err != nil {
				return "", err
			}
			raw.WriteRune(r)
		case '\n':
			segs = append(segs, raw.String())
			raw.Reset()
			s.pos++
		default:
			r, size := utf8.DecodeRuneInString(s.text[s.pos:])
			raw.WriteRune(r)
			s.pos += size
		}
	}
}

func (s *InlineScanner) decodeEscape() (rune, error) {
	m := s.Mark()
	c := s.peekByte()
	switch c {
	case '"':
		s.pos++
		return '"', nil
	case '\\':
		s.pos++
		return '\\', nil
	case '/':
		s.pos++
		return '/', nil
	case 'b':
		s.pos++
		return '\b', nil
	case 'f':
		s.pos++
		return '\f', nil
	case 'n':
		s.pos++
		return '\n', nil
	case 'r':
		s.pos++
		return '\r', nil
	case 't', '\t':
		s.pos++
		return '\t', nil
	case '0':
		s.pos++
		return 0, nil
	case 'a':
		s.pos++
		return '\a', nil
	case 'v':
		s.pos++
		return '\v', nil
	case 'e':
		s.pos++
		return 0x1B, nil
	case ' ':
		s.pos++
		return ' ', nil
	case 'x':
		return s.decodeHexEscape(2, m)
	case 'u':
		return s.decodeHexEscape(4, m)
	case 'U':
		return s.decodeHexEscape(8, m)
	default:
		return 0, newSyntaxError(m, "unknown escape sequence")
	}
}

func (s *InlineScanner) decodeHexEscape(n int, m Mark) (rune, error) {
	s.pos++ // x/u/U
	if s.pos+n > len(s.text) {
		return 0, newSyntaxError(m, "unknown escape sequence")
	}
	var v int64
	for i := 0; i < n; i++ {
		d, ok := hexDigitValue(s.text[s.pos+i])
		if !ok {
			return 0, newSyntaxError(m, "unknown escape sequence")
		}
		v = v<<4 | int64(d)
	}
	s.pos += n
	return rune(v), nil
}

// ParseSingleQuoted decodes a single-quoted scalar (spec §4.3.6); "''" is an
// escaped single quote, there is no backslash processing.
func (s *InlineScanner) ParseSingleQuoted() (string, error) {
	m := s.Mark()
	s.pos++ // opening quote
	var raw strings.Builder
	for {
		if s.eof() {
			return "", newSyntaxError(m, "unterminated single-quoted scalar")
		}
		c := s.peekByte()
		if c == '\'' {
			s.pos++
			if !s.eof() && s.peekByte() == '\'' {
				raw.WriteByte('\'')
				s.pos++
				continue
			}
			return foldQuotedLines(raw.String()), nil
		}
		if c == '\n' {
			raw.WriteByte('\n')
			s.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		raw.WriteRune(r)
		s.pos += size
	}
}

// foldQuotedLines applies quoted-scalar line folding (spec §4.3.5/4.3.6): a
// single line break folds to a space; N consecutive breaks fold to N-1
// breaks; trailing/leading run-whitespace at a break is trimmed first.
func foldQuotedLines(raw string) string {
	return foldQuotedSegments(strings.Split(raw, "\n"))
}

// foldQuotedSegments folds the text between consecutive line breaks by the
// rule foldQuotedLines describes.
func foldQuotedSegments(segments []string) string {
	if len(segments) == 1 {
		return segments[0]
	}
	for i := range segments {
		segments[i] = strings.TrimRight(segments[i], " \t")
		if i > 0 {
			segments[i] = strings.TrimLeft(segments[i], " \t")
		}
	}
	var b strings.Builder
	b.WriteString(segments[0])
	i := 1
	for i < len(segments) {
		blankRun := 0
		for i+blankRun < len(segments) && segments[i+blankRun] == "" {
			blankRun++
		}
		if blankRun == 0 {
			b.WriteByte(' ')
			b.WriteString(segments[i])
			i++
			continue
		}
		b.WriteString(strings.Repeat("\n", blankRun))
		if i+blankRun < len(segments) {
			b.WriteString(segments[i+blankRun])
			i += blankRun + 1
		} else {
			i += blankRun
		}
	}
	return b.String()
}

// ParsePlainScalar accumulates a plain scalar until a terminator (spec
// §4.3.7) and trims leading/trailing whitespace from the result. In flow
// context a line break does not terminate the scalar — it folds the same
// way a quoted scalar's line breaks do (spec §4.3.7/§4.5.5), letting a flow
// collection's plain scalars continue onto the next physical line.
func (s *InlineScanner) ParsePlainScalar(stopAtColon, flow bool) string {
	start := s.pos
	for !s.eof() {
		c := s.peekByte()
		if c == '\n' {
			if !flow {
				break
			}
			s.pos++
			continue
		}
		if flow && (c == ',' || c == ']' || c == '}') {
			break
		}
		if c == '#' && s.pos > start && (isSpaceOrTabByte(s.text[s.pos-1]) || s.text[s.pos-1] == '\n') {
			break
		}
		if stopAtColon && c == ':' && s.colonIsStop(flow) {
			break
		}
		_, size := utf8.DecodeRuneInString(s.text[s.pos:])
		s.pos += size
	}
	raw := s.text[start:s.pos]
	if strings.ContainsRune(raw, '\n') {
		raw = foldQuotedLines(raw)
	}
	return strings.TrimSpace(raw)
}

// validatePlainScalar enforces the post-scan invariant of spec §4.3.7: no
// plain scalar body may contain a colon followed by whitespace.
func validatePlainScalar(text string, m Mark) error {
	for i := 0; i < len(text); i++ {
		if text[i] == ':' && i+1 < len(text) && isSpaceOrTabByte(text[i+1]) {
			return newSyntaxError(m, "invalid plain scalar")
		}
	}
	return nil
}
