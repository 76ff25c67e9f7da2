// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkStringUnknown(t *testing.T) {
	require.Equal(t, "<unknown position>", Mark{}.String())
}

func TestMarkStringLineOnly(t *testing.T) {
	require.Equal(t, "line 3", Mark{Line: 3}.String())
}

func TestMarkStringLineAndColumn(t *testing.T) {
	require.Equal(t, "line 3, column 7", Mark{Line: 3, Column: 7}.String())
}

func TestLocationIsMarkAlias(t *testing.T) {
	var l Location = Mark{Line: 1, Column: 2}
	require.Equal(t, "line 1, column 2", l.String())
}
