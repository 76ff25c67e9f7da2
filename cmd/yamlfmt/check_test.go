package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckAcceptsValidDocument(t *testing.T) {
	require.NoError(t, check(strings.NewReader("a: 1\n")))
}

func TestCheckRejectsInvalidUTF8(t *testing.T) {
	require.Error(t, check(strings.NewReader("\xff\xfe")))
}

func TestCheckRejectsMalformedSequence(t *testing.T) {
	require.Error(t, check(strings.NewReader("a: 1\n- x\n")))
}
