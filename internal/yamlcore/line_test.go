// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLinesBasic(t *testing.T) {
	lines := SplitLines("a: 1\nb: 2\n")
	require.Len(t, lines, 3) // trailing empty line from the final \n
	require.Equal(t, 1, lines[0].Number)
	require.Equal(t, "a: 1", lines[0].Raw)
	require.Equal(t, "b: 2", lines[1].Raw)
	require.Equal(t, "", lines[2].Raw)
}

func TestSplitLinesNormalizesCRLF(t *testing.T) {
	lines := SplitLines("a\r\nb\r\n")
	require.Equal(t, "a", lines[0].Raw)
	require.Equal(t, "b", lines[1].Raw)
}

func TestSplitLinesNormalizesLoneCR(t *testing.T) {
	lines := SplitLines("a\rb")
	require.Len(t, lines, 2)
	require.Equal(t, "a", lines[0].Raw)
	require.Equal(t, "b", lines[1].Raw)
}

func TestSplitLinesEmptyInput(t *testing.T) {
	lines := SplitLines("")
	require.Len(t, lines, 1)
	require.Equal(t, "", lines[0].Raw)
}

func TestLineIndentCountsSpacesAndTabs(t *testing.T) {
	lines := SplitLines("  \tkey: value")
	require.Equal(t, 3, lines[0].Indent)
	require.True(t, lines[0].HasTabIndent)
}

func TestLineIndentNoTab(t *testing.T) {
	lines := SplitLines("    key: value")
	require.Equal(t, 4, lines[0].Indent)
	require.False(t, lines[0].HasTabIndent)
}

func TestLineContentStripsIndent(t *testing.T) {
	lines := SplitLines("  key: value")
	require.Equal(t, "key: value", lines[0].Content())
}

func TestLineContentOnBlankLine(t *testing.T) {
	lines := SplitLines("   ")
	require.Equal(t, "", lines[0].Content())
}
