// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import "fmt"

// markedError is the shared representation behind every position-carrying
// error the core raises, mirroring the teacher's MarkedYAMLError.
type markedError struct {
	Mark    Mark
	Message string
}

func (e markedError) Error() string {
	return fmt.Sprintf("yaml: %s: %s", e.Mark, e.Message)
}

// SyntaxError reports any malformed construct: directives, tags, scalars,
// flow terminators, document markers, and the like (spec's InvalidSyntax).
type SyntaxError struct{ markedError }

func newSyntaxError(m Mark, format string, args ...any) *SyntaxError {
	return &SyntaxError{markedError{m, fmt.Sprintf(format, args...)}}
}

// IndentationError reports tabs used as structural indent, under-indented
// block scalar content, or a misaligned continuation line.
type IndentationError struct{ markedError }

func newIndentationError(m Mark, format string, args ...any) *IndentationError {
	return &IndentationError{markedError{m, fmt.Sprintf(format, args...)}}
}

// DuplicateAnchorError reports the same anchor name defined twice within one
// document.
type DuplicateAnchorError struct {
	markedError
	Name string
}

func newDuplicateAnchorError(m Mark, name string) *DuplicateAnchorError {
	return &DuplicateAnchorError{markedError{m, fmt.Sprintf("duplicate anchor %q", name)}, name}
}

// UnresolvedAliasError reports an alias with no matching anchor in the same
// document.
type UnresolvedAliasError struct {
	markedError
	Name string
}

func newUnresolvedAliasError(m Mark, name string) *UnresolvedAliasError {
	return &UnresolvedAliasError{markedError{m, fmt.Sprintf("unresolved alias %q", name)}, name}
}

// EncodingError reports input that is not valid UTF-8.
type EncodingError struct{ markedError }

func newEncodingError(m Mark, format string, args ...any) *EncodingError {
	return &EncodingError{markedError{m, fmt.Sprintf(format, args...)}}
}

// EventError reports misuse of the writer's event API (a Tag/Anchor/Style
// event with no following value, a Key outside an object, and so on).
type EventError struct{ Message string }

func (e *EventError) Error() string { return fmt.Sprintf("yaml: %s", e.Message) }

func newEventError(format string, args ...any) *EventError {
	return &EventError{fmt.Sprintf(format, args...)}
}

// StateError reports a writer-level protocol violation, such as more than
// one root value.
type StateError struct{ Message string }

func (e *StateError) Error() string { return fmt.Sprintf("yaml: %s", e.Message) }

func newStateError(format string, args ...any) *StateError {
	return &StateError{fmt.Sprintf(format, args...)}
}
