// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

// scalarAnalysis records which styles a scalar's text may legally be
// written in, grounded on the teacher's analyzeScalar (emitter.go):
// one forward scan classifying the text by leading/trailing whitespace,
// embedded breaks, and indicator characters that would be misread as
// structure if left unquoted.
type scalarAnalysis struct {
	multiline           bool
	blockPlainAllowed   bool
	flowPlainAllowed    bool
	singleQuotedAllowed bool
	blockAllowed        bool
}

func analyzeScalar(value string) scalarAnalysis {
	if value == "" {
		return scalarAnalysis{blockPlainAllowed: true, singleQuotedAllowed: true}
	}

	var blockIndicators, flowIndicators, lineBreaks, special, tabs bool
	var leadingSpace, leadingBreak, trailingSpace, trailingBreak bool
	var breakSpace, spaceBreak bool
	precededByWhitespace := true
	var previousSpace, previousBreak bool

	runes := []rune(value)
	if len(runes) >= 3 {
		head := string(runes[:3])
		if head == "---" || head == "..." {
			blockIndicators = true
			flowIndicators = true
		}
	}

	for i, r := range runes {
		followedByWhitespace := i+1 >= len(runes) || isBlankRune(runes[i+1])

		if i == 0 {
			switch r {
			case '#', ',', '[', ']', '{', '}', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
				flowIndicators = true
				blockIndicators = true
			case '?', ':':
				flowIndicators = true
				if followedByWhitespace {
					blockIndicators = true
				}
			case '-':
				if followedByWhitespace {
					flowIndicators = true
					blockIndicators = true
				}
			}
		} else {
			switch r {
			case ',', '?', '[', ']', '{', '}':
				flowIndicators = true
			case ':':
				flowIndicators = true
				if followedByWhitespace {
					blockIndicators = true
				}
			case '#':
				if precededByWhitespace {
					flowIndicators = true
					blockIndicators = true
				}
			}
		}

		switch {
		case r == '\t':
			tabs = true
		case !isPrintableRune(r):
			special = true
		}

		switch {
		case isBlankRune(r):
			if i == 0 {
				leadingSpace = true
			}
			if i == len(runes)-1 {
				trailingSpace = true
			}
			if previousBreak {
				breakSpace = true
			}
			previousSpace = true
			previousBreak = false
		case r == '\n':
			lineBreaks = true
			if i == 0 {
				leadingBreak = true
			}
			if i == len(runes)-1 {
				trailingBreak = true
			}
			if previousSpace {
				spaceBreak = true
			}
			previousSpace = false
			previousBreak = true
		default:
			previousSpace = false
			previousBreak = false
		}

		precededByWhitespace = isBlankRune(r)
	}

	a := scalarAnalysis{
		multiline:           lineBreaks,
		blockPlainAllowed:   true,
		flowPlainAllowed:    true,
		singleQuotedAllowed: true,
		blockAllowed:        true,
	}
	if leadingSpace || leadingBreak || trailingSpace || trailingBreak {
		a.flowPlainAllowed = false
		a.blockPlainAllowed = false
	}
	if trailingSpace {
		a.blockAllowed = false
	}
	if breakSpace {
		a.flowPlainAllowed = false
		a.blockPlainAllowed = false
		a.singleQuotedAllowed = false
	}
	if spaceBreak || tabs || special {
		a.flowPlainAllowed = false
		a.blockPlainAllowed = false
		a.singleQuotedAllowed = false
	}
	if spaceBreak || special {
		a.blockAllowed = false
	}
	if lineBreaks {
		// The writer never reconstructs fold/line-break escaping for a
		// single-quoted scalar; multiline text always goes to literal or
		// double-quoted instead.
		a.flowPlainAllowed = false
		a.blockPlainAllowed = false
		a.singleQuotedAllowed = false
	}
	if flowIndicators {
		a.flowPlainAllowed = false
	}
	if blockIndicators {
		a.blockPlainAllowed = false
	}
	return a
}

func isBlankRune(r rune) bool { return r == ' ' || r == '\t' }

func isPrintableRune(r rune) bool {
	switch {
	case r == '\n' || r == '\t':
		return true
	case r >= 0x20 && r <= 0x7e:
		return true
	case r == 0x85:
		return false
	case r >= 0xa0 && r != 0xfeff:
		return true
	default:
		return false
	}
}

// looksLikeImplicit reports whether text's core-schema implicit resolution
// (spec §4.9.1) reproduces want exactly, letting the writer drop a
// redundant explicit tag and emit a bare plain scalar.
func looksLikeImplicit(want ResolvedValue, text string) bool {
	got := ResolveImplicit(text)
	if got.Kind != want.Kind {
		return false
	}
	switch want.Kind {
	case KindNull:
		return true
	case KindBool:
		return got.Bool == want.Bool
	case KindInt:
		return got.Int == want.Int
	case KindFloat:
		return got.Float == want.Float
	default:
		return got.Text == want.Text
	}
}

// chooseScalarStyle picks the simplest style that can represent value
// without corrupting it on a later read, honoring a caller-preferred style
// when it remains legal (spec §6.2).
func chooseScalarStyle(preferred ScalarStyleKind, value ResolvedValue, flowContext bool) ScalarStyleKind {
	text := scalarText(value)
	a := analyzeScalar(text)

	plainAllowed := a.blockPlainAllowed
	if flowContext {
		plainAllowed = a.flowPlainAllowed
	}
	// A plain scalar whose text would resolve to a different type than
	// intended (e.g. the string "true" written for a KindString value)
	// must not be left plain. An empty string is indistinguishable from
	// null once written plain, so it always needs quoting.
	if plainAllowed && value.Kind == KindString && (text == "" || !looksLikeImplicit(value, text)) {
		plainAllowed = false
	}

	switch preferred {
	case LiteralScalarStyle, FoldedScalarStyle:
		// The writer never reconstructs a folded scalar's line-break
		// escaping; any preference for a block style is rendered
		// literal so the body round-trips byte-for-byte.
		if !flowContext && a.blockAllowed {
			return LiteralScalarStyle
		}
	case SingleQuotedScalarStyle:
		if a.singleQuotedAllowed {
			return SingleQuotedScalarStyle
		}
	case PlainScalarStyle:
		if plainAllowed {
			return PlainScalarStyle
		}
	}

	if plainAllowed {
		return PlainScalarStyle
	}
	if !flowContext && a.blockAllowed && a.multiline {
		return LiteralScalarStyle
	}
	if a.singleQuotedAllowed {
		return SingleQuotedScalarStyle
	}
	return DoubleQuotedScalarStyle
}

func scalarText(value ResolvedValue) string {
	switch value.Kind {
	case KindNull:
		return "null"
	case KindBool:
		if value.Bool {
			return "true"
		}
		return "false"
	case KindInt:
		return formatInt(value.Int)
	case KindFloat:
		return formatFloat(value.Float)
	case KindBinary:
		return encodeBinary(value.Bytes)
	default:
		return value.Text
	}
}
