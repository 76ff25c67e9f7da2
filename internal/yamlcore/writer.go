// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// writer is the inverse of the parser: it consumes the flat ValueEvent
// stream produced by Events and renders YAML text (spec §4.10). It walks
// the event slice with an explicit index rather than exposing a push-style
// Emit-per-event method, since every caller already holds the whole
// document's events in memory (Events materializes the full slice, the
// same way the document stream parser buffers the whole input up front).
type writer struct {
	buf  *bufio.Writer
	opts Options
	step int
}

const defaultIndentStep = 2
const defaultBufferSize = 4096

// WriteDocument renders a single parsed document (spec's Writer, §4.10,
// §6.3).
func WriteDocument(w io.Writer, doc *Document, opts ...Option) error {
	return WriteDocuments(w, []Document{*doc}, opts...)
}

// WriteDocuments renders a stream of documents, inserting "---" markers
// between them and honoring each Document's recorded explicit start/end
// markers (spec §3.6, §4.10).
func WriteDocuments(w io.Writer, docs []Document, opts ...Option) error {
	o, err := ApplyOptions(opts)
	if err != nil {
		return err
	}
	step := o.Indent
	if step == 0 {
		step = defaultIndentStep
	}
	bufSize := o.BufferSize
	if bufSize == 0 {
		bufSize = defaultBufferSize
	}
	wr := &writer{buf: bufio.NewWriterSize(w, bufSize), opts: o, step: step}

	if o.DocumentMarkerPrefix != "" {
		if err := wr.raw(o.DocumentMarkerPrefix); err != nil {
			return err
		}
	}

	for idx := range docs {
		doc := docs[idx]
		if idx > 0 || doc.ExplicitStart {
			if err := wr.raw("---\n"); err != nil {
				return err
			}
		}

		events, err := Events(&doc)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			if err := wr.raw("null"); err != nil {
				return err
			}
		} else {
			next, err := wr.writeNode(events, 0, 0, false, false)
			if err != nil {
				return err
			}
			if next != len(events) {
				return newStateError("multiple root values")
			}
		}
		if err := wr.raw("\n"); err != nil {
			return err
		}
		if doc.ExplicitEnd {
			if err := wr.raw("...\n"); err != nil {
				return err
			}
		}
	}

	return wr.buf.Flush()
}

func (w *writer) raw(s string) error {
	_, err := w.buf.WriteString(s)
	return err
}

func (w *writer) newlineIndent(n int) error {
	if err := w.buf.WriteByte('\n'); err != nil {
		return err
	}
	_, err := w.buf.WriteString(strings.Repeat(" ", n))
	return err
}

// writeNode consumes one complete decorated value (an optional Style/Tag*/
// Anchor* prefix followed by a Scalar, Begin*/End* collection, or Alias)
// starting at events[i] and returns the index just past it. lead tells it
// whether to emit one separating space before its first character; it is
// false only when the caller's cursor sits right after pure indentation.
func (w *writer) writeNode(events []ValueEvent, i, indent int, flowCtx, lead bool) (int, error) {
	if i >= len(events) {
		return i, newEventError("unexpected end of event stream")
	}

	if events[i].Kind == AliasEvent {
		name := events[i].AliasName
		if lead {
			if err := w.raw(" "); err != nil {
				return i, err
			}
		}
		if err := w.raw("*" + name); err != nil {
			return i, err
		}
		return i + 1, nil
	}

	if events[i].Kind != StyleEvent {
		return i, newEventError("expected style event, found %s", events[i].Kind)
	}
	se := events[i]
	i++

	var tag, anchor string
	for i < len(events) && events[i].Kind == TagEvent {
		tag = events[i].Tag
		i++
	}
	for i < len(events) && events[i].Kind == AnchorEvent {
		anchor = events[i].Anchor
		i++
	}
	if i >= len(events) {
		return i, newEventError("tag or anchor event without a following value")
	}
	// With implicit typing on, a core-schema tag that the bare text would
	// resolve to anyway is redundant and is left out.
	if tag != "" && w.opts.ImplicitTyping && events[i].Kind == ScalarEvent {
		v := events[i].Value
		if (tag == coreTagForKind(v.Kind) || (v.Kind == KindString && tag == CoreSchemaPrefix+"str")) &&
			looksLikeImplicit(v, scalarText(v)) {
			tag = ""
		}
	}
	if tag == "" && !w.opts.ImplicitTyping && events[i].Kind == ScalarEvent {
		if t := coreTagForKind(events[i].Value.Kind); t != "" {
			tag = t
		}
	}

	sep := lead
	writeTok := func(tok string) error {
		if sep {
			if err := w.raw(" "); err != nil {
				return err
			}
		}
		sep = true
		return w.raw(tok)
	}
	if anchor != "" {
		if err := writeTok("&" + anchor); err != nil {
			return i, err
		}
	}
	if tag != "" {
		if err := writeTok(formatTagToken(tag)); err != nil {
			return i, err
		}
	}

	switch events[i].Kind {
	case ScalarEvent:
		val := events[i].Value
		i++
		if sep {
			if err := w.raw(" "); err != nil {
				return i, err
			}
		}
		if err := w.writeScalarBody(val, se.ScalarStyle.Kind, flowCtx, indent); err != nil {
			return i, err
		}
		return i, nil

	case BeginArrayEvent:
		i++
		isFlow := flowCtx || (se.Collection == FlowStyle && !w.opts.ForceBlockCollections)
		if i < len(events) && events[i].Kind == EndArrayEvent {
			if sep {
				if err := w.raw(" "); err != nil {
					return i, err
				}
			}
			if err := w.raw("[]"); err != nil {
				return i, err
			}
			return i + 1, nil
		}
		if isFlow {
			if sep {
				if err := w.raw(" "); err != nil {
					return i, err
				}
			}
			if err := w.raw("["); err != nil {
				return i, err
			}
			return w.writeFlowArray(events, i, indent)
		}
		return w.writeBlockArray(events, i, indent)

	case BeginObjectEvent:
		i++
		isFlow := flowCtx || (se.Collection == FlowStyle && !w.opts.ForceBlockCollections)
		if i < len(events) && events[i].Kind == EndObjectEvent {
			if sep {
				if err := w.raw(" "); err != nil {
					return i, err
				}
			}
			if err := w.raw("{}"); err != nil {
				return i, err
			}
			return i + 1, nil
		}
		if isFlow {
			if sep {
				if err := w.raw(" "); err != nil {
					return i, err
				}
			}
			if err := w.raw("{"); err != nil {
				return i, err
			}
			return w.writeFlowObject(events, i, indent)
		}
		return w.writeBlockObject(events, i, indent)

	default:
		return i, newEventError("unexpected event %s after style", events[i].Kind)
	}
}

func (w *writer) writeFlowArray(events []ValueEvent, i, indent int) (int, error) {
	first := true
	for {
		if i >= len(events) {
			return i, newEventError("unterminated flow sequence")
		}
		if events[i].Kind == EndArrayEvent {
			i++
			break
		}
		if !first {
			if err := w.raw(","); err != nil {
				return i, err
			}
		}
		first = false
		next, err := w.writeNode(events, i, indent, true, true)
		if err != nil {
			return i, err
		}
		i = next
	}
	if err := w.raw(" ]"); err != nil {
		return i, err
	}
	return i, nil
}

func (w *writer) writeFlowObject(events []ValueEvent, i, indent int) (int, error) {
	first := true
	for {
		if i >= len(events) {
			return i, newEventError("unterminated flow mapping")
		}
		if events[i].Kind == EndObjectEvent {
			i++
			break
		}
		if !first {
			if err := w.raw(","); err != nil {
				return i, err
			}
		}
		first = false
		next, err := w.writeNode(events, i, indent, true, true)
		if err != nil {
			return i, err
		}
		i = next
		if i >= len(events) || events[i].Kind != KeyEvent {
			return i, newEventError("expected key event in mapping")
		}
		i++
		if err := w.raw(":"); err != nil {
			return i, err
		}
		next, err = w.writeNode(events, i, indent, true, true)
		if err != nil {
			return i, err
		}
		i = next
	}
	if err := w.raw(" }"); err != nil {
		return i, err
	}
	return i, nil
}

func (w *writer) writeBlockArray(events []ValueEvent, i, indent int) (int, error) {
	childIndent := indent + w.step
	first := true
	for {
		if i >= len(events) {
			return i, newEventError("unterminated block sequence")
		}
		if events[i].Kind == EndArrayEvent {
			i++
			break
		}
		// indent == 0 only ever occurs at the document root (every nested
		// indent is at least w.step), so the very first root-level entry
		// needs no separating newline; every other entry does.
		if !(first && indent == 0) {
			if err := w.newlineIndent(indent); err != nil {
				return i, err
			}
		}
		first = false
		if err := w.raw("-"); err != nil {
			return i, err
		}
		next, err := w.writeNode(events, i, childIndent, false, true)
		if err != nil {
			return i, err
		}
		i = next
	}
	return i, nil
}

func (w *writer) writeBlockObject(events []ValueEvent, i, indent int) (int, error) {
	childIndent := indent + w.step
	first := true
	for {
		if i >= len(events) {
			return i, newEventError("unterminated block mapping")
		}
		if events[i].Kind == EndObjectEvent {
			i++
			break
		}
		// See writeBlockArray: indent == 0 only at the document root.
		if !(first && indent == 0) {
			if err := w.newlineIndent(indent); err != nil {
				return i, err
			}
		}
		first = false

		var next int
		var err error
		if explicitKeyNeeded(events, i) {
			if err = w.raw("?"); err != nil {
				return i, err
			}
			next, err = w.writeNode(events, i, childIndent, false, true)
			if err != nil {
				return i, err
			}
			i = next
			if i >= len(events) || events[i].Kind != KeyEvent {
				return i, newEventError("expected key event in mapping")
			}
			i++
			if err := w.newlineIndent(indent); err != nil {
				return i, err
			}
			if err := w.raw(":"); err != nil {
				return i, err
			}
			next, err = w.writeNode(events, i, childIndent, false, true)
			if err != nil {
				return i, err
			}
			i = next
			continue
		}

		next, err = w.writeNode(events, i, indent, false, false)
		if err != nil {
			return i, err
		}
		i = next
		if i >= len(events) || events[i].Kind != KeyEvent {
			return i, newEventError("expected key event in mapping")
		}
		i++
		if err := w.raw(":"); err != nil {
			return i, err
		}
		next, err = w.writeNode(events, i, childIndent, false, true)
		if err != nil {
			return i, err
		}
		i = next
	}
	return i, nil
}

// explicitKeyNeeded decides whether the key node starting at events[i]
// must use the "? key" / ": value" form rather than a compact inline
// "key: value" (spec §4.10 "Mappings & sequences"): any collection key, or
// a scalar key whose chosen style is multiline.
func explicitKeyNeeded(events []ValueEvent, i int) bool {
	if i >= len(events) || events[i].Kind != StyleEvent {
		return false
	}
	se := events[i]
	if se.IsCollection {
		return true
	}
	j := i + 1
	for j < len(events) && (events[j].Kind == TagEvent || events[j].Kind == AnchorEvent) {
		j++
	}
	if j >= len(events) || events[j].Kind != ScalarEvent {
		return false
	}
	val := events[j].Value
	text := scalarText(val)
	if strings.Contains(text, "\n") {
		return true
	}
	return chooseScalarStyle(se.ScalarStyle.Kind, val, false) == LiteralScalarStyle
}

func (w *writer) writeScalarBody(val ResolvedValue, preferred ScalarStyleKind, flowCtx bool, indent int) error {
	text := scalarText(val)
	switch chooseScalarStyle(preferred, val, flowCtx) {
	case PlainScalarStyle:
		return w.raw(text)
	case SingleQuotedScalarStyle:
		return w.raw(quoteSingle(text))
	case LiteralScalarStyle:
		return w.writeLiteralBlock(text, indent)
	default:
		return w.raw(quoteDouble(text))
	}
}

func quoteSingle(text string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range text {
		if r == '\'' {
			b.WriteString("''")
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func quoteDouble(text string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range text {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case 0x1B:
			b.WriteString(`\e`)
		default:
			switch {
			case isPrintableRune(r) && r != 0x85:
				b.WriteRune(r)
			case r <= 0xFF:
				fmt.Fprintf(&b, `\x%02X`, r)
			case r <= 0xFFFF:
				fmt.Fprintf(&b, `\u%04X`, r)
			default:
				fmt.Fprintf(&b, `\U%08X`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// writeLiteralBlock renders text as a literal block scalar (spec §4.6, the
// inverse of ReadBlockScalar/applyChomp in blockscalar.go). The writer
// always uses '|' even for content the reader would have folded from '>',
// since the event stream carries decoded text, not the original markup;
// this is lossless at the tree level (spec §8.2 round-trip is defined
// "ignoring style hints").
func (w *writer) writeLiteralBlock(text string, indent int) error {
	childIndent := indent + w.step

	trailing := 0
	for trailing < len(text) && text[len(text)-1-trailing] == '\n' {
		trailing++
	}
	body := text[:len(text)-trailing]
	lines := strings.Split(body, "\n")

	header := "|"
	if len(lines) > 0 && lines[0] != "" {
		c := lines[0][0]
		if c == ' ' || c == '\t' || c == '#' {
			// The reader counts the indicator from the parent node's
			// indentation, one step above indent except at the root.
			parentIndent := indent - w.step
			if parentIndent < 0 {
				parentIndent = 0
			}
			header += strconv.Itoa(childIndent - parentIndent)
		}
	}
	switch {
	case trailing == 0:
		header += "-"
	case trailing >= 2:
		header += "+"
	}
	if err := w.raw(header); err != nil {
		return err
	}

	for _, l := range lines {
		if err := w.buf.WriteByte('\n'); err != nil {
			return err
		}
		if l == "" {
			continue
		}
		if _, err := w.buf.WriteString(strings.Repeat(" ", childIndent)); err != nil {
			return err
		}
		if _, err := w.buf.WriteString(l); err != nil {
			return err
		}
	}
	if trailing >= 2 {
		for n := 0; n < trailing-1; n++ {
			if err := w.buf.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return nil
}

// coreTagForKind returns the core-schema tag for a resolved scalar kind, or
// "" for KindString, whose tag WithImplicitTyping(false) never forces (an
// untagged plain or quoted string already round-trips as a string; the
// option only guards against a reader's implicit-typing table reclaiming a
// bool/int/float/binary/null written bare).
func coreTagForKind(k ScalarKind) string {
	switch k {
	case KindNull:
		return CoreSchemaPrefix + "null"
	case KindBool:
		return CoreSchemaPrefix + "bool"
	case KindInt:
		return CoreSchemaPrefix + "int"
	case KindFloat:
		return CoreSchemaPrefix + "float"
	case KindBinary:
		return CoreSchemaPrefix + "binary"
	default:
		return ""
	}
}

// formatTagToken renders a resolved tag string back into the shorthand
// form the scanner understands (spec §4.8): the "!!" secondary handle for
// core-schema tags, a verbatim "!<...>" for everything else.
func formatTagToken(tag string) string {
	if tag == "!" {
		return "!"
	}
	if strings.HasPrefix(tag, CoreSchemaPrefix) {
		return "!!" + tag[len(CoreSchemaPrefix):]
	}
	return "!<" + tag + ">"
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

func encodeBinary(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
