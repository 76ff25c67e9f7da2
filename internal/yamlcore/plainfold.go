// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import "strings"

// FoldPlainScalar absorbs continuation lines into an inline plain scalar
// per spec §4.7: lines indented strictly greater than scalarIndent (the
// indent of the collection containing the scalar, or the scalar's own line
// when not inside a collection) are folded in using the same rules as a
// folded block scalar, minus chomping.
func FoldPlainScalar(lines []Line, startIdx int, firstText string, scalarIndent int) (string, int) {
	segs := []FoldSegment{{Text: firstText}}
	idx := startIdx
	for idx < len(lines) {
		l := lines[idx]
		if strings.TrimSpace(l.Raw) == "" {
			segs = append(segs, FoldSegment{Blank: true})
			idx++
			continue
		}
		if l.Indent <= scalarIndent {
			break
		}
		content := strings.TrimSpace(StripComment(l.Content()))
		if startsStructural(content) {
			break
		}
		segs = append(segs, FoldSegment{Text: content})
		idx++
	}
	// Trailing blank lookahead lines belong to whoever follows; don't
	// consume them if nothing more was folded in after them.
	for len(segs) > 0 && segs[len(segs)-1].Blank {
		segs = segs[:len(segs)-1]
		idx--
	}
	return JoinFolded(segs), idx
}

func startsStructural(content string) bool {
	switch {
	case content == "---" || content == "...":
		return true
	case strings.HasPrefix(content, "- ") || content == "-":
		return true
	case strings.HasPrefix(content, "? ") || content == "?":
		return true
	}
	return false
}
