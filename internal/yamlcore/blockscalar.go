// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import "strings"

// parseBlockScalarHeader reads the chomping/indentation indicators that
// follow a '|' or '>' on the header line (spec §4.6 step 1). rest is
// everything after the indicator character, trailing comment included.
func parseBlockScalarHeader(rest string, m Mark) (Chomp, int, error) {
	rest = strings.TrimSpace(StripComment(rest))
	chomp := ChompClip
	chompSet, indentSet := false, false
	indentIndicator := 0
	for i := 0; i < len(rest); i++ {
		switch c := rest[i]; {
		case c == '+' || c == '-':
			if chompSet {
				return 0, 0, newSyntaxError(m, "invalid block scalar chomping indicator")
			}
			chompSet = true
			if c == '+' {
				chomp = ChompKeep
			} else {
				chomp = ChompStrip
			}
		case c >= '1' && c <= '9':
			if indentSet {
				return 0, 0, newSyntaxError(m, "invalid block scalar indentation indicator")
			}
			indentSet = true
			indentIndicator = int(c - '0')
		default:
			return 0, 0, newSyntaxError(m, "invalid block scalar header")
		}
	}
	return chomp, indentIndicator, nil
}

// ReadBlockScalar reads a literal or folded block scalar starting at
// lines[startIdx] (the content following the header line), per spec §4.6.
// baseIndent is the parent node's indentation. It returns the decoded
// scalar and the index of the first line not consumed.
func ReadBlockScalar(lines []Line, startIdx int, kind ScalarStyleKind, headerRest string, headerMark Mark, baseIndent int) (Scalar, int, error) {
	chomp, indentIndicator, err := parseBlockScalarHeader(headerRest, headerMark)
	if err != nil {
		return Scalar{}, startIdx, err
	}

	requiredIndent := 0
	if indentIndicator > 0 {
		requiredIndent = baseIndent + indentIndicator
	} else {
		found := false
		for i := startIdx; i < len(lines); i++ {
			if strings.TrimSpace(lines[i].Raw) == "" {
				continue
			}
			if lines[i].Indent <= baseIndent {
				break
			}
			requiredIndent = lines[i].Indent
			found = true
			break
		}
		if !found {
			requiredIndent = baseIndent + 1
		}
	}

	var segs []FoldSegment
	idx := startIdx
	for idx < len(lines) {
		l := lines[idx]
		if strings.TrimRight(l.Raw, " \t") == "" {
			// The empty entry after the input's final line break is not a
			// line of the scalar.
			if idx == len(lines)-1 && l.Raw == "" {
				idx++
				break
			}
			segs = append(segs, FoldSegment{Blank: true})
			idx++
			continue
		}
		if requiredIndent == 0 {
			if stripped := strings.TrimSpace(l.Content()); stripped == "---" || stripped == "..." {
				break
			}
		}
		if l.Indent < requiredIndent {
			break
		}
		if l.HasTabIndent {
			return Scalar{}, idx, newIndentationError(Mark{Line: l.Number, Column: 1}, "tab in block scalar indent")
		}
		text := ""
		if len(l.Raw) >= requiredIndent {
			text = l.Raw[requiredIndent:]
		}
		segs = append(segs, FoldSegment{Text: text, MoreIndented: l.Indent > requiredIndent})
		idx++
	}

	var body string
	if kind == LiteralScalarStyle {
		body = joinLiteral(segs)
	} else {
		body = JoinFolded(segs)
	}
	body = applyChomp(body, chomp)
	return Scalar{Text: body, Style: ScalarStyle{Kind: kind, Chomp: chomp, Indent: indentIndicator}}, idx, nil
}

func joinLiteral(segs []FoldSegment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.Text
	}
	return strings.Join(parts, "\n")
}

// applyChomp enforces the chomp policy on an already-joined body (spec §4.6
// step 5).
func applyChomp(body string, chomp Chomp) string {
	switch chomp {
	case ChompStrip:
		return strings.TrimRight(body, "\n")
	case ChompKeep:
		if body == "" {
			return body
		}
		return body + "\n"
	default: // ChompClip
		trimmed := strings.TrimRight(body, "\n")
		if trimmed == "" {
			return ""
		}
		return trimmed + "\n"
	}
}
