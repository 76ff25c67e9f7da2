// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEndToEndGoldenScenarios exercises the golden scenarios end to end:
// DocumentStreamParser.ParseAll followed by Events, the same path a caller
// takes from raw text to the flat event stream a Writer consumes.
func TestEndToEndGoldenScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, docs []Document)
	}{
		{
			name:  "flow mapping in block sequence",
			input: "- {a: 1, b: 2}\n- {c: 3}\n",
			check: func(t *testing.T, docs []Document) {
				require.Len(t, docs, 1)
				events, err := Events(&docs[0])
				require.NoError(t, err)
				require.Equal(t, []EventKind{
					StyleEvent, BeginArrayEvent,
					StyleEvent, BeginObjectEvent,
					StyleEvent, ScalarEvent, KeyEvent, StyleEvent, ScalarEvent,
					StyleEvent, ScalarEvent, KeyEvent, StyleEvent, ScalarEvent,
					EndObjectEvent,
					StyleEvent, BeginObjectEvent,
					StyleEvent, ScalarEvent, KeyEvent, StyleEvent, ScalarEvent,
					EndObjectEvent,
					EndArrayEvent,
				}, kinds(events))

				seq, ok := docs[0].Root.(*SequenceNode)
				require.True(t, ok)
				require.Len(t, seq.Items, 2)
				first := seq.Items[0].(*MappingNode)
				require.Equal(t, "a", first.Entries[0].Key.(*ScalarNode).Value.Text)
				require.EqualValues(t, 1, mustResolve(t, first.Entries[0].Value).Int)
				require.Equal(t, "b", first.Entries[1].Key.(*ScalarNode).Value.Text)
				require.EqualValues(t, 2, mustResolve(t, first.Entries[1].Value).Int)
				second := seq.Items[1].(*MappingNode)
				require.Equal(t, "c", second.Entries[0].Key.(*ScalarNode).Value.Text)
				require.EqualValues(t, 3, mustResolve(t, second.Entries[0].Value).Int)
			},
		},
		{
			name:  "literal scalar with clip chomping",
			input: "msg: |\n  line1\n  line2\n",
			check: func(t *testing.T, docs []Document) {
				require.Len(t, docs, 1)
				m, ok := docs[0].Root.(*MappingNode)
				require.True(t, ok)
				require.Equal(t, "msg", m.Entries[0].Key.(*ScalarNode).Value.Text)
				val := m.Entries[0].Value.(*ScalarNode)
				require.Equal(t, LiteralScalarStyle, val.Value.Style.Kind)
				require.Equal(t, "line1\nline2\n", val.Value.Text)

				events, err := Events(&docs[0])
				require.NoError(t, err)
				require.Equal(t, []EventKind{
					StyleEvent, BeginObjectEvent,
					StyleEvent, ScalarEvent, KeyEvent,
					StyleEvent, ScalarEvent,
					EndObjectEvent,
				}, kinds(events))
			},
		},
		{
			name:  "folded scalar with blank line",
			input: "text: >\n  a\n  b\n\n  c\n",
			check: func(t *testing.T, docs []Document) {
				require.Len(t, docs, 1)
				m := docs[0].Root.(*MappingNode)
				val := m.Entries[0].Value.(*ScalarNode)
				require.Equal(t, FoldedScalarStyle, val.Value.Style.Kind)
				require.Equal(t, "a b\nc\n", val.Value.Text)
			},
		},
		{
			name:  "anchor and alias",
			input: "defaults: &d\n  timeout: 30\nprod:\n  <<: *d\n  host: p\n",
			check: func(t *testing.T, docs []Document) {
				require.Len(t, docs, 1)
				events, err := Events(&docs[0])
				require.NoError(t, err)

				var alias *ValueEvent
				for i := range events {
					if events[i].Kind == AliasEvent {
						alias = &events[i]
						break
					}
				}
				require.NotNil(t, alias, "expected an Alias event for *d")
				require.Equal(t, "d", alias.AliasName)

				m := docs[0].Root.(*MappingNode)
				defaults := m.Entries[0].Value.(*MappingNode)
				require.Equal(t, "d", defaults.Anchor)
				require.Equal(t, "timeout", defaults.Entries[0].Key.(*ScalarNode).Value.Text)
				prod := m.Entries[1].Value.(*MappingNode)
				_, isAlias := prod.Entries[0].Value.(*AliasNode)
				require.True(t, isAlias, "merge-key value should carry the unexpanded alias; expansion is the consumer's job")
			},
		},
		{
			name:  "explicit complex key",
			input: "? [a, b]\n: 1\n",
			check: func(t *testing.T, docs []Document) {
				require.Len(t, docs, 1)
				m, ok := docs[0].Root.(*MappingNode)
				require.True(t, ok)
				require.Len(t, m.Entries, 1)
				key, ok := m.Entries[0].Key.(*SequenceNode)
				require.True(t, ok)
				require.Equal(t, FlowStyle, key.Style)
				require.Equal(t, "a", key.Items[0].(*ScalarNode).Value.Text)
				require.Equal(t, "b", key.Items[1].(*ScalarNode).Value.Text)
				require.Equal(t, "1", m.Entries[0].Value.(*ScalarNode).Value.Text)

				events, err := Events(&docs[0])
				require.NoError(t, err)
				require.Equal(t, []EventKind{
					StyleEvent, BeginObjectEvent,
					StyleEvent, BeginArrayEvent,
					StyleEvent, ScalarEvent,
					StyleEvent, ScalarEvent,
					EndArrayEvent,
					KeyEvent,
					StyleEvent, ScalarEvent,
					EndObjectEvent,
				}, kinds(events))
			},
		},
		{
			name:  "directives and two documents",
			input: "%YAML 1.2\n%TAG !e! tag:example.com,2024:\n---\n!e!foo bar\n...\n---\nbaz\n",
			check: func(t *testing.T, docs []Document) {
				require.Len(t, docs, 2)

				first := docs[0].Root.(*ScalarNode)
				require.Equal(t, "tag:example.com,2024:foo", first.Tag)
				require.Equal(t, "bar", first.Value.Text)
				firstEvents, err := Events(&docs[0])
				require.NoError(t, err)
				require.Equal(t, "bar", firstEvents[len(firstEvents)-1].Value.Text)
				require.Equal(t, "tag:example.com,2024:foo", firstEvents[len(firstEvents)-1].Value.Tag)

				second := docs[1].Root.(*ScalarNode)
				require.Equal(t, "", second.Tag)
				require.Equal(t, "baz", second.Value.Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := NewDocumentStreamParser(tt.input).ParseAll()
			require.NoError(t, err)
			tt.check(t, docs)
		})
	}
}

func mustResolve(t *testing.T, n DocumentNode) ResolvedValue {
	t.Helper()
	sn, ok := n.(*ScalarNode)
	require.True(t, ok)
	if sn.Tag != "" {
		return ResolveExplicit(sn.Tag, sn.Value.Text)
	}
	return ResolveImplicit(sn.Value.Text)
}
