package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunFmtReemitsNormalizedDocument(t *testing.T) {
	var out strings.Builder
	err := runFmt(strings.NewReader("a:   1\nb:   2\n"), &out, 2, false)
	require.NoError(t, err)
	require.Equal(t, "a: 1\nb: 2\n", out.String())
}

func TestRunFmtHonorsCustomIndent(t *testing.T) {
	var out strings.Builder
	err := runFmt(strings.NewReader("a:\n  - x\n"), &out, 4, false)
	require.NoError(t, err)
	require.Equal(t, "a:\n    - x\n", out.String())
}

func TestRunFmtFlowForcesRootCollectionToFlow(t *testing.T) {
	var out strings.Builder
	err := runFmt(strings.NewReader("- a\n- b\n"), &out, 2, true)
	require.NoError(t, err)
	require.Equal(t, "[ a, b ]\n", out.String())
}

func TestRunFmtFlowLeavesScalarRootAlone(t *testing.T) {
	var out strings.Builder
	err := runFmt(strings.NewReader("hello\n"), &out, 2, true)
	require.NoError(t, err)
	require.Equal(t, "hello\n", out.String())
}

func TestRunFmtPropagatesParseError(t *testing.T) {
	var out strings.Builder
	err := runFmt(strings.NewReader("\xff\xfe"), &out, 2, false)
	require.Error(t, err)
}
