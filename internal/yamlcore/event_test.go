// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func kinds(events []ValueEvent) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestEventsNilRootProducesNoEvents(t *testing.T) {
	events, err := Events(&Document{})
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestEventsPlainScalar(t *testing.T) {
	events, err := Events(&Document{Root: scalar("hello")})
	require.NoError(t, err)
	require.Equal(t, []EventKind{StyleEvent, ScalarEvent}, kinds(events))
	require.Equal(t, KindString, events[1].Value.Kind)
	require.Equal(t, "hello", events[1].Value.Text)
}

func TestEventsScalarImplicitTyping(t *testing.T) {
	events, err := Events(&Document{Root: scalar("42")})
	require.NoError(t, err)
	require.Equal(t, KindInt, events[1].Value.Kind)
	require.EqualValues(t, 42, events[1].Value.Int)
}

func TestEventsQuotedScalarNeverImplicitlyTyped(t *testing.T) {
	n := &ScalarNode{Value: Scalar{Text: "42", Style: ScalarStyle{Kind: DoubleQuotedScalarStyle}}}
	events, err := Events(&Document{Root: n})
	require.NoError(t, err)
	require.Equal(t, KindString, events[1].Value.Kind)
	require.Equal(t, "42", events[1].Value.Text)
}

func TestEventsScalarWithTagAndAnchor(t *testing.T) {
	n := scalar("v")
	n.Tag = CoreSchemaPrefix + "str"
	n.Anchor = "x"
	events, err := Events(&Document{Root: n})
	require.NoError(t, err)
	require.Equal(t, []EventKind{StyleEvent, TagEvent, AnchorEvent, ScalarEvent}, kinds(events))
	require.Equal(t, CoreSchemaPrefix+"str", events[1].Tag)
	require.Equal(t, "x", events[2].Anchor)
}

func TestEventsSequence(t *testing.T) {
	seq := &SequenceNode{Items: []DocumentNode{scalar("a"), scalar("b")}}
	events, err := Events(&Document{Root: seq})
	require.NoError(t, err)
	require.Equal(t, []EventKind{
		StyleEvent, BeginArrayEvent,
		StyleEvent, ScalarEvent,
		StyleEvent, ScalarEvent,
		EndArrayEvent,
	}, kinds(events))
}

func TestEventsMapping(t *testing.T) {
	m := &MappingNode{Entries: []MappingEntry{{Key: scalar("k"), Value: scalar("v")}}}
	events, err := Events(&Document{Root: m})
	require.NoError(t, err)
	require.Equal(t, []EventKind{
		StyleEvent, BeginObjectEvent,
		StyleEvent, ScalarEvent,
		KeyEvent,
		StyleEvent, ScalarEvent,
		EndObjectEvent,
	}, kinds(events))
}

func TestEventsAnchorThenAliasResolves(t *testing.T) {
	anchored := scalar("v")
	anchored.Anchor = "x"
	seq := &SequenceNode{Items: []DocumentNode{anchored, &AliasNode{Name: "x"}}}
	events, err := Events(&Document{Root: seq})
	require.NoError(t, err)
	require.Equal(t, AliasEvent, events[len(events)-2].Kind)
	require.Equal(t, "x", events[len(events)-2].AliasName)
}

func TestEventsUnresolvedAliasErrors(t *testing.T) {
	_, err := Events(&Document{Root: &AliasNode{Name: "missing"}})
	require.Error(t, err)
	var target *UnresolvedAliasError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "missing", target.Name)
}

func TestEventsDuplicateAnchorErrors(t *testing.T) {
	a := scalar("a")
	a.Anchor = "x"
	b := scalar("b")
	b.Anchor = "x"
	seq := &SequenceNode{Items: []DocumentNode{a, b}}
	_, err := Events(&Document{Root: seq})
	require.Error(t, err)
	var target *DuplicateAnchorError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "x", target.Name)
}

func TestEventsAliasDoesNotReplaySubtree(t *testing.T) {
	anchored := &SequenceNode{
		Items: []DocumentNode{scalar("deep")},
		Tag:   "",
	}
	anchored.Anchor = "x"
	seq := &SequenceNode{Items: []DocumentNode{anchored, &AliasNode{Name: "x"}}}
	events, err := Events(&Document{Root: seq})
	require.NoError(t, err)

	count := 0
	for _, e := range events {
		if e.Kind == ScalarEvent {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestEventKindString(t *testing.T) {
	require.Equal(t, "Scalar", ScalarEvent.String())
	require.Equal(t, "Alias", AliasEvent.String())
	require.Equal(t, "Unknown", EventKind(99).String())
}
