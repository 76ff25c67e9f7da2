// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
)

// ScalarKind is the resolved type of a scalar under the core schema (spec
// §4.9.1).
type ScalarKind int

const (
	KindNull ScalarKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBinary
)

// ResolvedValue is the typed result of scalar resolution.
type ResolvedValue struct {
	Kind  ScalarKind
	Text  string // the string value for KindString, including the fallback for unresolved tags; empty for other kinds
	Bool  bool
	Int   int64
	Float float64
	Bytes []byte
	// Tag carries the resolved explicit tag, if any; empty for an
	// implicitly-typed plain scalar.
	Tag string
}

// Native converts a resolved value to a plain Go value — null, bool,
// int64, float64, []byte, or string. This is a convenience for callers
// that want Go-native scalars without a full reflection-based decoder,
// which is out of scope for this core (spec §1).
func (r ResolvedValue) Native() any {
	switch r.Kind {
	case KindNull:
		return nil
	case KindBool:
		return r.Bool
	case KindInt:
		return r.Int
	case KindFloat:
		return r.Float
	case KindBinary:
		return r.Bytes
	default:
		return r.Text
	}
}

// ResolveImplicit applies the core-schema implicit-typing table of spec
// §4.9.1 to a plain, untagged scalar.
func ResolveImplicit(text string) ResolvedValue {
	switch text {
	case "", "null", "Null", "NULL", "~":
		return ResolvedValue{Kind: KindNull}
	case "true", "True", "TRUE":
		return ResolvedValue{Kind: KindBool, Bool: true}
	case "false", "False", "FALSE":
		return ResolvedValue{Kind: KindBool, Bool: false}
	case ".nan", ".NaN", ".NAN":
		return ResolvedValue{Kind: KindFloat, Float: math.NaN()}
	case ".inf", "+.inf", "+inf", "inf", ".Inf", ".INF":
		return ResolvedValue{Kind: KindFloat, Float: math.Inf(1)}
	case "-.inf", "-inf", "-.Inf", "-.INF":
		return ResolvedValue{Kind: KindFloat, Float: math.Inf(-1)}
	}
	if i, ok := parseImplicitInt(text); ok {
		return ResolvedValue{Kind: KindInt, Int: i}
	}
	if f, ok := parseImplicitFloat(text); ok {
		return ResolvedValue{Kind: KindFloat, Float: f}
	}
	return ResolvedValue{Kind: KindString, Text: text}
}

// ResolveExplicit applies explicit-tag resolution (spec §4.9.1 second
// table). tag must already be a fully-resolved tag string (core-schema
// prefix expanded by TagHandleTable.Resolve).
func ResolveExplicit(tag, text string) ResolvedValue {
	switch tag {
	case CoreSchemaPrefix + "null":
		return ResolvedValue{Kind: KindNull, Tag: tag}
	case CoreSchemaPrefix + "bool":
		if rv := ResolveImplicit(text); rv.Kind == KindBool {
			rv.Tag = tag
			return rv
		}
	case CoreSchemaPrefix + "int":
		if i, ok := parseImplicitInt(text); ok {
			return ResolvedValue{Kind: KindInt, Int: i, Tag: tag}
		}
	case CoreSchemaPrefix + "float":
		if f, ok := parseImplicitFloat(text); ok {
			return ResolvedValue{Kind: KindFloat, Float: f, Tag: tag}
		}
	case CoreSchemaPrefix + "str":
		return ResolvedValue{Kind: KindString, Text: text, Tag: tag}
	case CoreSchemaPrefix + "binary":
		clean := strings.Map(dropBase64Whitespace, text)
		if data, err := base64.StdEncoding.DecodeString(clean); err == nil {
			return ResolvedValue{Kind: KindBinary, Bytes: data, Tag: tag}
		}
	}
	// Known tag that failed conversion, or an unknown tag: pass the text
	// through tagged rather than fail the parse (spec §4.9.1).
	return ResolvedValue{Kind: KindString, Text: text, Tag: tag}
}

func dropBase64Whitespace(r rune) rune {
	switch r {
	case ' ', '\t', '\n', '\r':
		return -1
	default:
		return r
	}
}

// parseImplicitInt parses a decimal, 0x/0o/0b-radix integer with optional
// sign and underscore digit separators.
func parseImplicitInt(text string) (int64, bool) {
	s := text
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return 0, false
	}
	var v int64
	var err error
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseInt(s[2:], 16, 64)
	case strings.HasPrefix(s, "0o") || strings.HasPrefix(s, "0O"):
		v, err = strconv.ParseInt(s[2:], 8, 64)
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		v, err = strconv.ParseInt(s[2:], 2, 64)
	default:
		for _, r := range s {
			if r < '0' || r > '9' {
				return 0, false
			}
		}
		v, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// parseImplicitFloat parses a decimal number that contains a '.' or an
// exponent, with underscore digit separators.
func parseImplicitFloat(text string) (float64, bool) {
	if !strings.ContainsAny(text, ".eE") {
		return 0, false
	}
	s := strings.ReplaceAll(text, "_", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
