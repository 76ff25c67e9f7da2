// Copyright 2026 The nyaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlcore

// Options configures a Writer (spec §6). The writer's defaults, as built
// by ApplyOptions, are the zero value except that ImplicitTyping is on.
type Options struct {
	// Indent is the number of spaces per block nesting level. Zero means
	// the writer's default (2).
	Indent int
	// ForceBlockCollections writes every sequence/mapping in block style,
	// ignoring a node's recorded Style.
	ForceBlockCollections bool
	// ImplicitTyping lets the writer omit a scalar's tag when its text
	// would resolve, on a later read, to the same ResolvedValue it was
	// constructed from. Disabling it forces an explicit tag onto every
	// non-string scalar.
	ImplicitTyping bool
	// DocumentMarkerPrefix, when non-empty, is written before the first
	// document marker of a stream regardless of ExplicitStart (used for
	// the %YAML/%TAG directive lines some consumers require).
	DocumentMarkerPrefix string
	// BufferSize sizes the writer's internal buffer; zero means the
	// default.
	BufferSize int
}

// Option mutates an Options value, returning an error for an invalid
// argument (the teacher's functional-options idiom).
type Option func(*Options) error

// ApplyOptions folds a list of Options onto a fresh Options value.
func ApplyOptions(opts []Option) (Options, error) {
	var o Options
	o.ImplicitTyping = true
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return Options{}, err
		}
	}
	return o, nil
}

// WithIndent sets the block indent width; n must be positive.
func WithIndent(n int) Option {
	return func(o *Options) error {
		if n <= 0 {
			return newStateError("indent must be positive, got %d", n)
		}
		o.Indent = n
		return nil
	}
}

// WithForceBlockCollections forces block style for every collection.
func WithForceBlockCollections(force bool) Option {
	return func(o *Options) error {
		o.ForceBlockCollections = force
		return nil
	}
}

// WithImplicitTyping toggles tag omission for implicitly-typed scalars.
func WithImplicitTyping(enabled bool) Option {
	return func(o *Options) error {
		o.ImplicitTyping = enabled
		return nil
	}
}

// WithDocumentMarkerPrefix sets a directive block written ahead of the
// first document marker.
func WithDocumentMarkerPrefix(prefix string) Option {
	return func(o *Options) error {
		o.DocumentMarkerPrefix = prefix
		return nil
	}
}

// WithBufferSize sets the writer's internal buffer size; n must be
// positive.
func WithBufferSize(n int) Option {
	return func(o *Options) error {
		if n <= 0 {
			return newStateError("buffer size must be positive, got %d", n)
		}
		o.BufferSize = n
		return nil
	}
}
