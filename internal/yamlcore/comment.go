// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

// StripComment returns the prefix of s up to the first unquoted '#' (spec
// §4.2). It is pure: given the same input it always returns the same
// output, and returns s unmodified when no comment is found.
//
// A '#' starts a comment only when it is outside single/double quotes and is
// either the first character or immediately preceded by whitespace. Escape
// sequences inside double quotes are not interpreted here — a '"' always
// toggles quote state, even if it would otherwise be escaped; that
// refinement belongs to the inline scanner, which runs over already-stripped
// text.
func StripComment(s string) string {
	inSingle, inDouble := false, false
	prevWhitespace := true // start of content counts as whitespace
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == '#' && !inSingle && !inDouble && prevWhitespace:
			return s[:i]
		}
		prevWhitespace = c == ' ' || c == '\t'
	}
	return s
}
