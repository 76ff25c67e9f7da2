// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import "strings"

// FoldSegment is one captured content line of a block scalar or a plain
// scalar continuation, ready to be folded per spec §4.6 step 4 / §4.7.
type FoldSegment struct {
	Text string
	// Blank is true for an entirely empty captured line.
	Blank bool
	// MoreIndented is true when the line's original indent exceeds the
	// scalar's required/base indent — such lines are never folded to a
	// space on either side.
	MoreIndented bool
}

// JoinFolded joins segments using YAML folded-scalar rules: adjacent
// non-blank, equally-indented lines join with a single space; every run of
// blank lines between two content lines is preserved as that many literal
// newlines; a more-indented line is always separated by a newline instead
// of folded to a space.
func JoinFolded(segs []FoldSegment) string {
	var b strings.Builder
	started := false
	blanks := 0
	prevMoreIndented := false
	for _, seg := range segs {
		if seg.Blank {
			blanks++
			continue
		}
		if !started {
			b.WriteString(seg.Text)
			started = true
			blanks = 0
			prevMoreIndented = seg.MoreIndented
			continue
		}
		switch {
		case blanks > 0:
			b.WriteString(strings.Repeat("\n", blanks))
		case seg.MoreIndented || prevMoreIndented:
			b.WriteByte('\n')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(seg.Text)
		blanks = 0
		prevMoreIndented = seg.MoreIndented
	}
	if blanks > 0 {
		b.WriteString(strings.Repeat("\n", blanks))
	}
	return b.String()
}
