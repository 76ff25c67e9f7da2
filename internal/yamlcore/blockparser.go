// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import "strings"

// BlockParser is the recursive-descent block/flow parser of spec §4.5. It
// consumes the annotated line vector produced by SplitLines and, once
// constructed with a document's tag handle table, parses exactly one
// document's root node per call to ParseRoot.
type BlockParser struct {
	lines []Line
	tags  TagHandleTable
}

// NewBlockParser returns a parser over lines using tags for tag-handle
// expansion. tags is the table already committed for this document (spec
// §4.4); it is not mutated.
func NewBlockParser(lines []Line, tags TagHandleTable) *BlockParser {
	return &BlockParser{lines: lines, tags: tags}
}

// ParseRoot parses a single document's root node starting at idx. It
// returns a nil node (not an error) for an empty document — the caller
// resolves that to a null scalar, per spec §3.6. The returned index is the
// first line not consumed, which is either a document marker or EOF.
func (p *BlockParser) ParseRoot(idx int) (DocumentNode, int, error) {
	idx = p.skipBlank(idx)
	if idx >= len(p.lines) || p.atDocumentMarker(idx) {
		return nil, idx, nil
	}
	return p.parseNode(idx, -1, false)
}

func (p *BlockParser) atDocumentMarker(idx int) bool {
	if idx >= len(p.lines) {
		return false
	}
	l := p.lines[idx]
	return isDocStart(l) || isDocEnd(l)
}

func isDocStart(l Line) bool {
	if l.Indent != 0 {
		return false
	}
	c := strings.TrimRight(l.Content(), " \t")
	return c == "---" || strings.HasPrefix(c, "--- ")
}

func isDocEnd(l Line) bool {
	if l.Indent != 0 {
		return false
	}
	c := strings.TrimRight(l.Content(), " \t")
	return c == "..." || strings.HasPrefix(c, "... ")
}

// skipBlank advances past blank lines and comment-only lines, returning the
// index of the next line with real content (or len(p.lines) at EOF).
func (p *BlockParser) skipBlank(idx int) int {
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

// parseNode parses one node whose introducing line must be indented
// strictly more than minIndent. It returns a nil node, with idx unchanged
// from the post-blank-skip position, when no qualifying line is found —
// this is how block sequence/mapping loops detect their own end.
func (p *BlockParser) parseNode(idx, minIndent int, flow bool) (DocumentNode, int, error) {
	idx = p.skipBlank(idx)
	if idx >= len(p.lines) {
		return nil, idx, nil
	}
	line := p.lines[idx]
	if line.Indent <= minIndent {
		return nil, idx, nil
	}
	if !flow && line.HasTabIndent {
		return nil, idx, newIndentationError(Mark{Line: line.Number, Column: 1}, "tab used in block structure indentation")
	}
	if !flow && p.atDocumentMarker(idx) {
		return nil, idx, nil
	}
	content := StripComment(line.Content())
	if strings.TrimSpace(content) == "" {
		return nil, idx, nil
	}
	return p.parseNodeAt(idx, content, line.Indent+1, line.Indent, flow)
}

// parseNodeAt parses the node whose text begins at column col of line idx.
// content is that line's content from col onward, indentation and comment
// already stripped. indent is the enclosing construct's own indentation —
// the reference column for block-scalar/plain-scalar-fold continuation and
// for a bare decorator's nested value — which for an inline continuation
// (after "- " or "key: ") is the introducer's line indent, not col-1.
func (p *BlockParser) parseNodeAt(idx int, content string, col, indent int, flow bool) (DocumentNode, int, error) {
	line := p.lines[idx]
	mark := Mark{Line: line.Number, Column: col}
	scanner := NewInlineScanner(content, line.Number, col)
	dec, err := scanner.ParseDecorators(flow)
	if err != nil {
		return nil, idx, err
	}
	scanner.SkipWhitespaceAndComments(flow)

	if scanner.AtEOF() {
		return p.parseDecoratedContinuation(idx+1, indent, dec, mark, flow)
	}

	rest := scanner.Remainder()
	// siblingIndent is where rest itself begins — the alignment column a
	// nested block collection discovered here uses for its own entries.
	siblingIndent := scanner.Mark().Column - 1

	switch {
	case !flow && (rest == "-" || strings.HasPrefix(rest, "- ")):
		return p.parseBlockSequence(idx, siblingIndent, dec, mark)
	case !flow && (rest[0] == '|' || rest[0] == '>'):
		return p.parseBlockScalarEntry(idx, indent, dec, scanner, mark)
	case rest[0] == '[' || rest[0] == '{':
		return p.parseFlowEntry(idx, content, scanner, dec, mark)
	case !flow && isMappingLine(rest):
		return p.parseBlockMapping(idx, siblingIndent, dec, mark)
	case !flow && (rest == "?" || strings.HasPrefix(rest, "? ")):
		return p.parseBlockMapping(idx, siblingIndent, dec, mark)
	default:
		return p.parseScalarOrAlias(idx, scanner, content, indent, dec, mark)
	}
}

// parseDecoratedContinuation handles a node whose tag/anchor occupied the
// rest of their line: the value itself is either a nested node on a more
// deeply indented line, or — if none follows — an empty (null) scalar
// carrying the decorators (spec §4.3.2).
func (p *BlockParser) parseDecoratedContinuation(idx, baseIndent int, dec Decorators, mark Mark, flow bool) (DocumentNode, int, error) {
	if flow {
		return p.decoratedNull(dec, mark, idx)
	}
	child, nextIdx, err := p.parseNode(idx, baseIndent, false)
	if err != nil {
		return nil, idx, err
	}
	if child == nil {
		return p.decoratedNull(dec, mark, idx)
	}
	decorated, err := applyDecorators(child, dec, p.tags, mark)
	if err != nil {
		return nil, idx, err
	}
	return decorated, nextIdx, nil
}

func (p *BlockParser) decoratedNull(dec Decorators, mark Mark, idx int) (DocumentNode, int, error) {
	node, err := p.finishScalar("", PlainScalarStyle, dec, mark)
	if err != nil {
		return nil, idx, err
	}
	return node, idx, nil
}

// applyDecorators merges a tag/anchor pair parsed ahead of a nested node
// onto that node; a node that already carries its own (its line had
// decorators too) is overwritten, favoring the outer decoration.
func applyDecorators(n DocumentNode, dec Decorators, tags TagHandleTable, mark Mark) (DocumentNode, error) {
	if dec.RawTag == "" && dec.Anchor == "" {
		return n, nil
	}
	var tag string
	if dec.RawTag != "" {
		t, err := tags.Resolve(dec.RawTag, dec.TagMark)
		if err != nil {
			return nil, err
		}
		tag = t
	}
	switch v := n.(type) {
	case *ScalarNode:
		if tag != "" {
			v.Tag = tag
		}
		if dec.Anchor != "" {
			v.Anchor = dec.Anchor
		}
	case *SequenceNode:
		if tag != "" {
			v.Tag = tag
		}
		if dec.Anchor != "" {
			v.Anchor = dec.Anchor
		}
	case *MappingNode:
		if tag != "" {
			v.Tag = tag
		}
		if dec.Anchor != "" {
			v.Anchor = dec.Anchor
		}
	case *AliasNode:
		return nil, newSyntaxError(mark, "alias cannot carry a tag or anchor")
	}
	return n, nil
}

func (p *BlockParser) resolveTag(dec Decorators) (string, error) {
	if dec.RawTag == "" {
		return "", nil
	}
	return p.tags.Resolve(dec.RawTag, dec.TagMark)
}

func (p *BlockParser) finishScalar(text string, kind ScalarStyleKind, dec Decorators, mark Mark) (DocumentNode, error) {
	tag, err := p.resolveTag(dec)
	if err != nil {
		return nil, err
	}
	return &ScalarNode{
		Value:  Scalar{Text: text, Style: ScalarStyle{Kind: kind}},
		Tag:    tag,
		Anchor: dec.Anchor,
		pos:    mark,
	}, nil
}

func nullScalar(m Mark) *ScalarNode {
	return &ScalarNode{Value: Scalar{Style: ScalarStyle{Kind: PlainScalarStyle}}, pos: m}
}

// parseBlockSequence parses entries aligned at indent, starting with the
// one already detected at idx (spec §4.5.1).
func (p *BlockParser) parseBlockSequence(idx, indent int, dec Decorators, mark Mark) (DocumentNode, int, error) {
	tag, err := p.resolveTag(dec)
	if err != nil {
		return nil, idx, err
	}
	node := &SequenceNode{Style: BlockStyle, Tag: tag, Anchor: dec.Anchor, pos: mark}
	for {
		idx = p.skipBlank(idx)
		if idx >= len(p.lines) {
			break
		}
		line := p.lines[idx]
		if line.Indent != indent || p.atDocumentMarker(idx) {
			break
		}
		if line.HasTabIndent {
			return nil, idx, newIndentationError(Mark{Line: line.Number, Column: 1}, "tab used in block structure indentation")
		}
		content := StripComment(line.Content())
		if content != "-" && !strings.HasPrefix(content, "- ") {
			break
		}
		rest := content[1:]
		trimmed := strings.TrimLeft(rest, " \t")
		consumed := len(rest) - len(trimmed)
		itemCol := indent + 1 + 1 + consumed

		var item DocumentNode
		var nextIdx int
		if trimmed == "" {
			item, nextIdx, err = p.parseDecoratedContinuation(idx+1, indent, Decorators{}, Mark{Line: line.Number, Column: itemCol}, false)
		} else {
			item, nextIdx, err = p.parseNodeAt(idx, trimmed, itemCol, indent, false)
		}
		if err != nil {
			return nil, idx, err
		}
		node.Items = append(node.Items, item)
		idx = nextIdx
	}
	return node, idx, nil
}

// parseBlockMapping parses entries aligned at indent, starting with the one
// already detected at idx (spec §4.5.2).
func (p *BlockParser) parseBlockMapping(idx, indent int, dec Decorators, mark Mark) (DocumentNode, int, error) {
	tag, err := p.resolveTag(dec)
	if err != nil {
		return nil, idx, err
	}
	node := &MappingNode{Style: BlockStyle, Tag: tag, Anchor: dec.Anchor, pos: mark}
	for {
		idx = p.skipBlank(idx)
		if idx >= len(p.lines) {
			break
		}
		line := p.lines[idx]
		if line.Indent != indent || p.atDocumentMarker(idx) {
			break
		}
		if line.HasTabIndent {
			return nil, idx, newIndentationError(Mark{Line: line.Number, Column: 1}, "tab used in block structure indentation")
		}
		content := StripComment(line.Content())
		if content == "-" || strings.HasPrefix(content, "- ") {
			return nil, idx, newSyntaxError(Mark{Line: line.Number, Column: indent + 1}, "sequence entry where mapping entry expected")
		}

		var key, value DocumentNode
		var nextIdx int
		if content == "?" || strings.HasPrefix(content, "? ") {
			key, value, nextIdx, err = p.parseExplicitEntry(idx, indent, content)
		} else {
			key, value, nextIdx, err = p.parseImplicitEntry(idx, indent, content)
		}
		if err != nil {
			return nil, idx, err
		}
		node.Entries = append(node.Entries, MappingEntry{Key: key, Value: value})
		idx = nextIdx
	}
	return node, idx, nil
}

// parseImplicitEntry parses "key: value" written on one line, per spec
// §4.5.2. The key is restricted to a scalar or alias; a flow-collection
// complex key is read back as its literal plain-scalar text rather than a
// structured node — the simple case this core targets.
func (p *BlockParser) parseImplicitEntry(idx, indent int, content string) (DocumentNode, DocumentNode, int, error) {
	line := p.lines[idx]
	keyPart, valuePart, ok := splitMappingLine(content)
	if !ok {
		return nil, nil, idx, newSyntaxError(Mark{Line: line.Number, Column: indent + 1}, "expected mapping entry")
	}

	keyCol := indent + 1
	keyMark := Mark{Line: line.Number, Column: keyCol}
	keyScanner := NewInlineScanner(keyPart, line.Number, keyCol)
	keyDec, err := keyScanner.ParseDecorators(false)
	if err != nil {
		return nil, nil, idx, err
	}
	keyScanner.SkipWhitespaceAndComments(false)
	// An implicit key never continues onto the next line, so it is parsed
	// against a view of the lines that ends with its own.
	keyParser := &BlockParser{lines: p.lines[:idx+1], tags: p.tags}
	keyNode, _, err := keyParser.parseScalarOrAlias(idx, keyScanner, keyPart, indent, keyDec, keyMark)
	if err != nil {
		return nil, nil, idx, err
	}

	valueCol := indent + 1 + (len(content) - len(valuePart))
	valueMark := Mark{Line: line.Number, Column: valueCol}
	if valuePart == "" {
		valNode, after, err := p.parseDecoratedContinuation(idx+1, indent, Decorators{}, valueMark, false)
		if err != nil {
			return nil, nil, idx, err
		}
		return keyNode, valNode, after, nil
	}
	valNode, after, err := p.parseNodeAt(idx, valuePart, valueCol, indent, false)
	if err != nil {
		return nil, nil, idx, err
	}
	return keyNode, valNode, after, nil
}

// parseExplicitEntry parses the "? key" / ": value" explicit-key form (spec
// §4.5.2), each half either inline or on its own more-indented line(s).
func (p *BlockParser) parseExplicitEntry(idx, indent int, content string) (DocumentNode, DocumentNode, int, error) {
	line := p.lines[idx]
	mark := Mark{Line: line.Number, Column: indent + 1}
	rest := content[1:]
	trimmed := strings.TrimLeft(rest, " \t")
	consumed := len(rest) - len(trimmed)
	keyCol := indent + 1 + 1 + consumed

	var keyNode DocumentNode
	var afterKey int
	var err error
	if trimmed == "" {
		keyNode, afterKey, err = p.parseNode(idx+1, indent, false)
		if err != nil {
			return nil, nil, idx, err
		}
		if keyNode == nil {
			keyNode = nullScalar(mark)
			afterKey = idx + 1
		}
	} else {
		keyNode, afterKey, err = p.parseNodeAt(idx, trimmed, keyCol, indent, false)
		if err != nil {
			return nil, nil, idx, err
		}
	}

	afterKey = p.skipBlank(afterKey)
	if afterKey >= len(p.lines) || p.lines[afterKey].Indent != indent {
		return keyNode, nullScalar(mark), afterKey, nil
	}
	vline := p.lines[afterKey]
	if vline.HasTabIndent {
		return nil, nil, idx, newIndentationError(Mark{Line: vline.Number, Column: 1}, "tab used in block structure indentation")
	}
	vcontent := StripComment(vline.Content())
	if vcontent != ":" && !strings.HasPrefix(vcontent, ": ") {
		return keyNode, nullScalar(mark), afterKey, nil
	}
	vrest := vcontent[1:]
	vtrimmed := strings.TrimLeft(vrest, " \t")
	vconsumed := len(vrest) - len(vtrimmed)
	valCol := indent + 1 + 1 + vconsumed
	if vtrimmed == "" {
		valNode, after, err := p.parseDecoratedContinuation(afterKey+1, indent, Decorators{}, Mark{Line: vline.Number, Column: valCol}, false)
		if err != nil {
			return nil, nil, idx, err
		}
		return keyNode, valNode, after, nil
	}
	valNode, after, err := p.parseNodeAt(afterKey, vtrimmed, valCol, indent, false)
	if err != nil {
		return nil, nil, idx, err
	}
	return keyNode, valNode, after, nil
}

// splitMappingLine locates the first top-level ":" that introduces a
// mapping value — outside quotes, outside flow brackets, and followed by
// whitespace or end-of-line (spec §4.5.2).
func splitMappingLine(content string) (keyPart, valuePart string, ok bool) {
	depth := 0
	inSingle, inDouble := false, false
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case inSingle || inDouble:
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			if depth > 0 {
				depth--
			}
		case c == ':' && depth == 0:
			if i+1 == len(content) || content[i+1] == ' ' || content[i+1] == '\t' {
				return content[:i], strings.TrimLeft(content[i+1:], " \t"), true
			}
		}
	}
	return "", "", false
}

func isMappingLine(s string) bool {
	_, _, ok := splitMappingLine(s)
	return ok
}

// parseScalarOrAlias parses an alias, a quoted scalar (possibly spanning
// further lines), or a plain scalar (possibly folding in continuation
// lines), starting at the scanner's current position.
func (p *BlockParser) parseScalarOrAlias(idx int, s *InlineScanner, content string, baseIndent int, dec Decorators, mark Mark) (DocumentNode, int, error) {
	switch s.peekByte() {
	case '*':
		name, err := s.ParseAlias(false)
		if err != nil {
			return nil, idx, err
		}
		if dec.RawTag != "" || dec.Anchor != "" {
			return nil, idx, newSyntaxError(mark, "alias cannot carry a tag or anchor")
		}
		s.SkipWhitespaceAndComments(false)
		if !s.AtEOF() {
			return nil, idx, newSyntaxError(s.Mark(), "unexpected content after alias")
		}
		return &AliasNode{Name: name, pos: mark}, idx + 1, nil
	case '"':
		text, nextIdx, err := p.scanQuotedScalar(idx, content, s.pos, s.Mark(), '"')
		if err != nil {
			return nil, idx, err
		}
		node, err := p.finishScalar(text, DoubleQuotedScalarStyle, dec, mark)
		return node, nextIdx, err
	case '\'':
		text, nextIdx, err := p.scanQuotedScalar(idx, content, s.pos, s.Mark(), '\'')
		if err != nil {
			return nil, idx, err
		}
		node, err := p.finishScalar(text, SingleQuotedScalarStyle, dec, mark)
		return node, nextIdx, err
	default:
		first := s.ParsePlainScalar(true, false)
		s.SkipWhitespaceAndComments(false)
		if !s.AtEOF() {
			return nil, idx, newSyntaxError(s.Mark(), "unexpected content after scalar")
		}
		folded, nextIdx := FoldPlainScalar(p.lines, idx+1, first, baseIndent)
		if err := validatePlainScalar(folded, mark); err != nil {
			return nil, idx, err
		}
		node, err := p.finishScalar(folded, PlainScalarStyle, dec, mark)
		return node, nextIdx, err
	}
}

func (p *BlockParser) parseBlockScalarEntry(idx, baseIndent int, dec Decorators, s *InlineScanner, mark Mark) (DocumentNode, int, error) {
	kind := LiteralScalarStyle
	if s.peekByte() == '>' {
		kind = FoldedScalarStyle
	}
	headerMark := s.Mark()
	header := s.Remainder()[1:]
	scalar, nextIdx, err := ReadBlockScalar(p.lines, idx+1, kind, header, headerMark, baseIndent)
	if err != nil {
		return nil, idx, err
	}
	tag, err := p.resolveTag(dec)
	if err != nil {
		return nil, idx, err
	}
	return &ScalarNode{Value: scalar, Tag: tag, Anchor: dec.Anchor, pos: mark}, nextIdx, nil
}

// scanQuotedScalar decodes a single/double-quoted scalar that may continue
// onto later physical lines. It tries a same-line fast path first and only
// joins subsequent raw lines when the closing quote isn't on this one.
func (p *BlockParser) scanQuotedScalar(idx int, content string, offset int, mark Mark, quote byte) (string, int, error) {
	if closesOnLine(content[offset:], quote) {
		s := NewInlineScanner(content[offset:], mark.Line, mark.Column)
		text, err := parseQuoted(s, quote)
		if err != nil {
			return "", idx, err
		}
		s.SkipWhitespaceAndComments(false)
		if !s.AtEOF() {
			return "", idx, newSyntaxError(s.Mark(), "unexpected content after scalar")
		}
		return text, idx + 1, nil
	}
	region := p.joinedRegion(idx, content, offset, mark.Line, mark.Column)
	text, err := parseQuoted(region, quote)
	if err != nil {
		return "", idx, err
	}
	region.SkipWhitespaceAndComments(false)
	if !region.AtEOF() {
		return "", idx, newSyntaxError(region.Mark(), "unexpected content after scalar")
	}
	finalMark := region.Mark()
	return text, idx + (finalMark.Line - mark.Line) + 1, nil
}

func parseQuoted(s *InlineScanner, quote byte) (string, error) {
	if quote == '"' {
		return s.ParseDoubleQuoted()
	}
	return s.ParseSingleQuoted()
}

func closesOnLine(s string, quote byte) bool {
	for i := 1; i < len(s); i++ {
		c := s[i]
		if quote == '\'' {
			if c == '\'' {
				if i+1 < len(s) && s[i+1] == '\'' {
					i++
					continue
				}
				return true
			}
			continue
		}
		if c == '\\' {
			i++
			continue
		}
		if c == '"' {
			return true
		}
	}
	return false
}

// joinedRegion builds one string spanning from content[offset:] through
// every remaining physical line (each joined with a real '\n'), for a
// flow-collection or quoted-scalar scan that the caller already knows (or
// suspects) continues past the current line. The scanner stops consuming
// once its construct closes; trailing, unconsumed text is simply unused.
func (p *BlockParser) joinedRegion(idx int, content string, offset, startLine, startCol int) *InlineScanner {
	var b strings.Builder
	b.WriteString(content[offset:])
	for i := idx + 1; i < len(p.lines); i++ {
		b.WriteByte('\n')
		b.WriteString(p.lines[i].Raw)
	}
	return NewInlineScanner(b.String(), startLine, startCol)
}

// parseFlowEntry parses a flow sequence or mapping that begins at the
// scanner's current position, across as many physical lines as it needs.
func (p *BlockParser) parseFlowEntry(idx int, content string, s *InlineScanner, dec Decorators, mark Mark) (DocumentNode, int, error) {
	startMark := s.Mark()
	region := p.joinedRegion(idx, content, s.pos, startMark.Line, startMark.Column)
	var node DocumentNode
	var err error
	if region.peekByte() == '[' {
		node, err = p.parseFlowSequenceBody(region, dec, mark)
	} else {
		node, err = p.parseFlowMappingBody(region, dec, mark)
	}
	if err != nil {
		return nil, idx, err
	}
	region.SkipWhitespaceAndComments(false)
	finalMark := region.Mark()
	nextIdx := idx + (finalMark.Line - startMark.Line) + 1
	return node, nextIdx, nil
}

// parseFlowNode parses one node inside a flow collection (spec §4.5.3):
// tags/anchors, then an alias, a nested flow collection, a quoted scalar,
// or a plain scalar, which may continue onto following lines and is folded.
func (p *BlockParser) parseFlowNode(s *InlineScanner) (DocumentNode, error) {
	s.SkipWhitespaceAndComments(true)
	mark := s.Mark()
	dec, err := s.ParseDecorators(true)
	if err != nil {
		return nil, err
	}
	s.SkipWhitespaceAndComments(true)
	if s.AtEOF() {
		return nil, newSyntaxError(mark, "unexpected end of flow collection")
	}
	switch s.peekByte() {
	case '*':
		name, err := s.ParseAlias(true)
		if err != nil {
			return nil, err
		}
		if dec.RawTag != "" || dec.Anchor != "" {
			return nil, newSyntaxError(mark, "alias cannot carry a tag or anchor")
		}
		return &AliasNode{Name: name, pos: mark}, nil
	case '[':
		return p.parseFlowSequenceBody(s, dec, mark)
	case '{':
		return p.parseFlowMappingBody(s, dec, mark)
	case '"':
		text, err := s.ParseDoubleQuoted()
		if err != nil {
			return nil, err
		}
		return p.finishScalar(text, DoubleQuotedScalarStyle, dec, mark)
	case '\'':
		text, err := s.ParseSingleQuoted()
		if err != nil {
			return nil, err
		}
		return p.finishScalar(text, SingleQuotedScalarStyle, dec, mark)
	default:
		text := s.ParsePlainScalar(true, true)
		if err := validatePlainScalar(text, mark); err != nil {
			return nil, err
		}
		return p.finishScalar(text, PlainScalarStyle, dec, mark)
	}
}

func (p *BlockParser) parseFlowSequenceBody(s *InlineScanner, dec Decorators, mark Mark) (DocumentNode, error) {
	s.pos++ // consume '['
	tag, err := p.resolveTag(dec)
	if err != nil {
		return nil, err
	}
	node := &SequenceNode{Style: FlowStyle, Tag: tag, Anchor: dec.Anchor, pos: mark}
	s.SkipWhitespaceAndComments(true)
	if !s.AtEOF() && s.peekByte() == ']' {
		s.pos++
		return node, nil
	}
	for {
		item, err := p.parseFlowNode(s)
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)
		s.SkipWhitespaceAndComments(true)
		if s.AtEOF() {
			return nil, newSyntaxError(mark, "unterminated flow sequence")
		}
		switch s.peekByte() {
		case ',':
			s.pos++
			s.SkipWhitespaceAndComments(true)
			if !s.AtEOF() && s.peekByte() == ']' {
				s.pos++
				return node, nil
			}
		case ']':
			s.pos++
			return node, nil
		default:
			return nil, newSyntaxError(s.Mark(), "expected ',' or ']' in flow sequence")
		}
	}
}

func (p *BlockParser) parseFlowMappingBody(s *InlineScanner, dec Decorators, mark Mark) (DocumentNode, error) {
	s.pos++ // consume '{'
	tag, err := p.resolveTag(dec)
	if err != nil {
		return nil, err
	}
	node := &MappingNode{Style: FlowStyle, Tag: tag, Anchor: dec.Anchor, pos: mark}
	s.SkipWhitespaceAndComments(true)
	if !s.AtEOF() && s.peekByte() == '}' {
		s.pos++
		return node, nil
	}
	for {
		key, err := p.parseFlowNode(s)
		if err != nil {
			return nil, err
		}
		s.SkipWhitespaceAndComments(true)
		var value DocumentNode
		if !s.AtEOF() && s.peekByte() == ':' {
			s.pos++
			value, err = p.parseFlowNode(s)
			if err != nil {
				return nil, err
			}
		} else {
			value = nullScalar(key.Mark())
		}
		node.Entries = append(node.Entries, MappingEntry{Key: key, Value: value})
		s.SkipWhitespaceAndComments(true)
		if s.AtEOF() {
			return nil, newSyntaxError(mark, "unterminated flow mapping")
		}
		switch s.peekByte() {
		case ',':
			s.pos++
			s.SkipWhitespaceAndComments(true)
			if !s.AtEOF() && s.peekByte() == '}' {
				s.pos++
				return node, nil
			}
		case '}':
			s.pos++
			return node, nil
		default:
			return nil, newSyntaxError(s.Mark(), "expected ',' or '}' in flow mapping")
		}
	}
}
