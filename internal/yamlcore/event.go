// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

// EventKind identifies the shape of a ValueEvent in the flat stream that
// both the parser produces and the writer consumes (spec §5, §6).
type EventKind int

const (
	StyleEvent EventKind = iota
	TagEvent
	AnchorEvent
	ScalarEvent
	BeginArrayEvent
	EndArrayEvent
	BeginObjectEvent
	KeyEvent
	EndObjectEvent
	AliasEvent
)

func (k EventKind) String() string {
	switch k {
	case StyleEvent:
		return "Style"
	case TagEvent:
		return "Tag"
	case AnchorEvent:
		return "Anchor"
	case ScalarEvent:
		return "Scalar"
	case BeginArrayEvent:
		return "BeginArray"
	case EndArrayEvent:
		return "EndArray"
	case BeginObjectEvent:
		return "BeginObject"
	case KeyEvent:
		return "Key"
	case EndObjectEvent:
		return "EndObject"
	case AliasEvent:
		return "Alias"
	default:
		return "Unknown"
	}
}

// ValueEvent is one token of the flat event stream. Only the fields
// relevant to Kind are populated; the rest are zero.
type ValueEvent struct {
	Kind EventKind
	Mark Mark

	// Populated on StyleEvent: IsCollection selects which of the two
	// style fields applies. A StyleEvent always immediately precedes the
	// Begin*/Scalar event it describes.
	IsCollection bool
	Collection   CollectionStyle
	ScalarStyle  ScalarStyle

	// Populated on TagEvent.
	Tag string

	// Populated on AnchorEvent.
	Anchor string

	// Populated on ScalarEvent.
	Value ResolvedValue

	// Populated on AliasEvent.
	AliasName string
}

// Events walks doc's tree in document order and produces the flat
// ValueEvent stream a Writer consumes, resolving scalar types and
// validating anchor/alias references along the way (spec §4.9, §5).
func Events(doc *Document) ([]ValueEvent, error) {
	e := &eventEmitter{anchors: map[string]bool{}}
	var out []ValueEvent
	if doc.Root == nil {
		return out, nil
	}
	if err := e.emit(doc.Root, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type eventEmitter struct {
	anchors map[string]bool
}

func (e *eventEmitter) emit(n DocumentNode, out *[]ValueEvent) error {
	switch v := n.(type) {
	case *ScalarNode:
		*out = append(*out, ValueEvent{Kind: StyleEvent, Mark: v.pos, ScalarStyle: v.Value.Style})
		if v.Tag != "" {
			*out = append(*out, ValueEvent{Kind: TagEvent, Mark: v.pos, Tag: v.Tag})
		}
		if v.Anchor != "" {
			if err := e.registerAnchor(v.Anchor, v.pos); err != nil {
				return err
			}
			*out = append(*out, ValueEvent{Kind: AnchorEvent, Mark: v.pos, Anchor: v.Anchor})
		}
		*out = append(*out, ValueEvent{Kind: ScalarEvent, Mark: v.pos, Value: e.resolveScalar(v)})
		return nil

	case *SequenceNode:
		*out = append(*out, ValueEvent{Kind: StyleEvent, Mark: v.pos, IsCollection: true, Collection: v.Style})
		if v.Tag != "" {
			*out = append(*out, ValueEvent{Kind: TagEvent, Mark: v.pos, Tag: v.Tag})
		}
		if v.Anchor != "" {
			if err := e.registerAnchor(v.Anchor, v.pos); err != nil {
				return err
			}
			*out = append(*out, ValueEvent{Kind: AnchorEvent, Mark: v.pos, Anchor: v.Anchor})
		}
		*out = append(*out, ValueEvent{Kind: BeginArrayEvent, Mark: v.pos})
		for _, item := range v.Items {
			if err := e.emit(item, out); err != nil {
				return err
			}
		}
		*out = append(*out, ValueEvent{Kind: EndArrayEvent, Mark: v.pos})
		return nil

	case *MappingNode:
		*out = append(*out, ValueEvent{Kind: StyleEvent, Mark: v.pos, IsCollection: true, Collection: v.Style})
		if v.Tag != "" {
			*out = append(*out, ValueEvent{Kind: TagEvent, Mark: v.pos, Tag: v.Tag})
		}
		if v.Anchor != "" {
			if err := e.registerAnchor(v.Anchor, v.pos); err != nil {
				return err
			}
			*out = append(*out, ValueEvent{Kind: AnchorEvent, Mark: v.pos, Anchor: v.Anchor})
		}
		*out = append(*out, ValueEvent{Kind: BeginObjectEvent, Mark: v.pos})
		for _, entry := range v.Entries {
			if err := e.emit(entry.Key, out); err != nil {
				return err
			}
			*out = append(*out, ValueEvent{Kind: KeyEvent, Mark: entry.Key.Mark()})
			if err := e.emit(entry.Value, out); err != nil {
				return err
			}
		}
		*out = append(*out, ValueEvent{Kind: EndObjectEvent, Mark: v.pos})
		return nil

	case *AliasNode:
		if !e.anchors[v.Name] {
			return newUnresolvedAliasError(v.pos, v.Name)
		}
		*out = append(*out, ValueEvent{Kind: AliasEvent, Mark: v.pos, AliasName: v.Name})
		return nil

	default:
		return newEventError("unknown node type in tree")
	}
}

func (e *eventEmitter) registerAnchor(name string, m Mark) error {
	if e.anchors[name] {
		return newDuplicateAnchorError(m, name)
	}
	e.anchors[name] = true
	return nil
}

// resolveScalar applies explicit- or implicit-typing resolution to a
// scalar node's text (spec §4.9.1). Only plain scalars participate in
// implicit typing; quoted and block scalars resolve to str unless an
// explicit tag says otherwise.
func (e *eventEmitter) resolveScalar(n *ScalarNode) ResolvedValue {
	if n.Tag != "" {
		return ResolveExplicit(n.Tag, n.Value.Text)
	}
	if n.Value.Style.Kind == PlainScalarStyle {
		return ResolveImplicit(n.Value.Text)
	}
	return ResolvedValue{Kind: KindString, Text: n.Value.Text}
}
