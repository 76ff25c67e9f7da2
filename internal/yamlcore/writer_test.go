// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func scalar(text string) *ScalarNode {
	return &ScalarNode{Value: Scalar{Text: text, Style: ScalarStyle{Kind: PlainScalarStyle}}}
}

func writeDoc(t *testing.T, root DocumentNode, opts ...Option) string {
	t.Helper()
	var b strings.Builder
	err := WriteDocument(&b, &Document{Root: root}, opts...)
	require.NoError(t, err)
	return b.String()
}

func TestWriteDocumentScalar(t *testing.T) {
	got := writeDoc(t, scalar("hello"))
	require.Equal(t, "hello\n", got)
}

func TestWriteDocumentEmptyRootIsNull(t *testing.T) {
	var b strings.Builder
	err := WriteDocument(&b, &Document{Root: nil})
	require.NoError(t, err)
	require.Equal(t, "null\n", b.String())
}

func TestWriteDocumentBlockSequence(t *testing.T) {
	root := &SequenceNode{Items: []DocumentNode{scalar("a"), scalar("b")}}
	got := writeDoc(t, root)
	require.Equal(t, "- a\n- b\n", got)
}

func TestWriteDocumentEmptySequenceIsFlowEmpty(t *testing.T) {
	root := &SequenceNode{}
	got := writeDoc(t, root)
	require.Equal(t, "[]\n", got)
}

func TestWriteDocumentBlockMapping(t *testing.T) {
	root := &MappingNode{Entries: []MappingEntry{
		{Key: scalar("name"), Value: scalar("nyaml")},
		{Key: scalar("ok"), Value: scalar("true")},
	}}
	got := writeDoc(t, root)
	require.Equal(t, "name: nyaml\nok: true\n", got)
}

func TestWriteDocumentFlowSequence(t *testing.T) {
	root := &SequenceNode{
		Style: FlowStyle,
		Items: []DocumentNode{scalar("a"), scalar("b"), scalar("c")},
	}
	got := writeDoc(t, root)
	require.Equal(t, "[ a, b, c ]\n", got)
}

func TestWriteDocumentFlowMapping(t *testing.T) {
	root := &MappingNode{
		Style: FlowStyle,
		Entries: []MappingEntry{
			{Key: scalar("a"), Value: scalar("1")},
			{Key: scalar("b"), Value: scalar("2")},
		},
	}
	got := writeDoc(t, root)
	require.Equal(t, "{ a: 1, b: 2 }\n", got)
}

func TestWriteDocumentNestedBlockCollections(t *testing.T) {
	root := &MappingNode{Entries: []MappingEntry{
		{Key: scalar("list"), Value: &SequenceNode{Items: []DocumentNode{scalar("x"), scalar("y")}}},
	}}
	got := writeDoc(t, root)
	require.Equal(t, "list:\n  - x\n  - y\n", got)
}

func TestWriteDocumentFlowForcesDescendantsFlow(t *testing.T) {
	root := &SequenceNode{
		Style: FlowStyle,
		Items: []DocumentNode{&SequenceNode{Items: []DocumentNode{scalar("a")}}},
	}
	got := writeDoc(t, root)
	require.Equal(t, "[ [ a ] ]\n", got)
}

func TestWriteDocumentAnchorAndAlias(t *testing.T) {
	anchored := scalar("v")
	anchored.Anchor = "x"
	root := &SequenceNode{Items: []DocumentNode{anchored, &AliasNode{Name: "x"}}}
	got := writeDoc(t, root)
	require.Equal(t, "- &x v\n- *x\n", got)
}

func TestWriteDocumentTaggedScalar(t *testing.T) {
	n := &ScalarNode{Value: Scalar{Text: "hello", Style: ScalarStyle{Kind: PlainScalarStyle}}, Tag: CoreSchemaPrefix + "str"}
	got := writeDoc(t, n)
	require.Equal(t, "hello\n", got)
}

func TestWriteDocumentNonSpecificTag(t *testing.T) {
	n := &ScalarNode{Value: Scalar{Text: "x", Style: ScalarStyle{Kind: PlainScalarStyle}}, Tag: "!"}
	got := writeDoc(t, n)
	require.Equal(t, "! x\n", got)
}

func TestWriteDocumentCustomIndent(t *testing.T) {
	root := &MappingNode{Entries: []MappingEntry{
		{Key: scalar("a"), Value: &SequenceNode{Items: []DocumentNode{scalar("x")}}},
	}}
	got := writeDoc(t, root, WithIndent(4))
	require.Equal(t, "a:\n    - x\n", got)
}

func TestWriteDocumentExplicitKeyForLiteralKey(t *testing.T) {
	key := &ScalarNode{Value: Scalar{Text: "a\nb", Style: ScalarStyle{Kind: LiteralScalarStyle}}}
	root := &MappingNode{Entries: []MappingEntry{{Key: key, Value: scalar("v")}}}
	got := writeDoc(t, root)
	require.True(t, strings.HasPrefix(got, "? |"), "got %q", got)
	require.Contains(t, got, "\n: v\n")
}

func TestWriteDocumentExplicitKeyForCollectionKey(t *testing.T) {
	key := &SequenceNode{Style: FlowStyle, Items: []DocumentNode{scalar("a")}}
	root := &MappingNode{Entries: []MappingEntry{{Key: key, Value: scalar("v")}}}
	got := writeDoc(t, root)
	require.True(t, strings.HasPrefix(got, "? [ a ]"), "got %q", got)
}

func TestWriteDocumentLiteralBlockScalar(t *testing.T) {
	n := &ScalarNode{Value: Scalar{Text: "line one\nline two\n", Style: ScalarStyle{Kind: LiteralScalarStyle}}}
	got := writeDoc(t, n)
	require.Equal(t, "|\n  line one\n  line two\n", got)
}

func TestWriteDocumentLiteralBlockScalarStrip(t *testing.T) {
	n := &ScalarNode{Value: Scalar{Text: "line one", Style: ScalarStyle{Kind: LiteralScalarStyle}}}
	got := writeDoc(t, n)
	require.Equal(t, "|-\n  line one\n", got)
}

func TestWriteDocumentLiteralBlockScalarKeep(t *testing.T) {
	n := &ScalarNode{Value: Scalar{Text: "line one\n\n\n", Style: ScalarStyle{Kind: LiteralScalarStyle}}}
	got := writeDoc(t, n)
	require.Equal(t, "|+\n  line one\n\n\n", got)
}

func TestWriteDocumentDoubleQuotedEscapes(t *testing.T) {
	n := &ScalarNode{Value: Scalar{Text: "a\tb\"c", Style: ScalarStyle{Kind: DoubleQuotedScalarStyle}}}
	got := writeDoc(t, n)
	require.Equal(t, "\"a\\tb\\\"c\"\n", got)
}

func TestWriteDocumentSingleQuotedEscapesQuote(t *testing.T) {
	n := &ScalarNode{Value: Scalar{Text: "it's", Style: ScalarStyle{Kind: SingleQuotedScalarStyle}}}
	got := writeDoc(t, n)
	require.Equal(t, "'it''s'\n", got)
}

func TestWriteDocumentsMultipleDocuments(t *testing.T) {
	var b strings.Builder
	err := WriteDocuments(&b, []Document{{Root: scalar("a")}, {Root: scalar("b")}})
	require.NoError(t, err)
	require.Equal(t, "a\n---\nb\n", b.String())
}

func TestWriteDocumentExplicitMarkers(t *testing.T) {
	var b strings.Builder
	err := WriteDocuments(&b, []Document{{Root: scalar("a"), ExplicitStart: true, ExplicitEnd: true}})
	require.NoError(t, err)
	require.Equal(t, "---\na\n...\n", b.String())
}

func TestWriteDocumentUnresolvedAliasFails(t *testing.T) {
	var b strings.Builder
	err := WriteDocument(&b, &Document{Root: &AliasNode{Name: "missing"}})
	require.Error(t, err)
}
