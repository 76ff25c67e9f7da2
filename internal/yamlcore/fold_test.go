// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinFoldedAdjacentLinesJoinWithSpace(t *testing.T) {
	got := JoinFolded([]FoldSegment{{Text: "one"}, {Text: "two"}})
	require.Equal(t, "one two", got)
}

func TestJoinFoldedBlankRunBecomesNewlines(t *testing.T) {
	got := JoinFolded([]FoldSegment{{Text: "one"}, {Blank: true}, {Blank: true}, {Text: "two"}})
	require.Equal(t, "one\n\ntwo", got)
}

func TestJoinFoldedSingleBlankBecomesOneNewline(t *testing.T) {
	got := JoinFolded([]FoldSegment{{Text: "one"}, {Blank: true}, {Text: "two"}})
	require.Equal(t, "one\ntwo", got)
}

func TestJoinFoldedMoreIndentedLineNeverFolded(t *testing.T) {
	got := JoinFolded([]FoldSegment{{Text: "one"}, {Text: "  two", MoreIndented: true}})
	require.Equal(t, "one\n  two", got)
}

func TestJoinFoldedLineAfterMoreIndentedNeverFolded(t *testing.T) {
	got := JoinFolded([]FoldSegment{{Text: "  one", MoreIndented: true}, {Text: "two"}})
	require.Equal(t, "  one\ntwo", got)
}

func TestJoinFoldedTrailingBlanksPreserved(t *testing.T) {
	got := JoinFolded([]FoldSegment{{Text: "one"}, {Blank: true}})
	require.Equal(t, "one\n", got)
}

func TestJoinFoldedSingleSegment(t *testing.T) {
	got := JoinFolded([]FoldSegment{{Text: "only"}})
	require.Equal(t, "only", got)
}
