package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/nyaml/nyaml/internal/yamlcore"
	"github.com/nyaml/nyaml/yaml"
)

func newFmtCmd() *cobra.Command {
	var indent int
	var flow bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse then re-emit a YAML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			f, err := openInput(path)
			if err != nil {
				return err
			}
			defer f.Close()
			return runFmt(f, cmd.OutOrStdout(), indent, flow)
		},
	}

	cmd.Flags().IntVar(&indent, "indent", 2, "spaces per block nesting level")
	cmd.Flags().BoolVar(&flow, "flow", false, "force the top-level collection of each document to flow style")
	return cmd
}

func runFmt(r io.Reader, w io.Writer, indent int, flow bool) error {
	docs, err := yaml.Parse(r)
	if err != nil {
		return err
	}

	sources := make([]yaml.EventSource, len(docs))
	for i, doc := range docs {
		sources[i] = yaml.AsSource(doc)
	}

	opts := []yaml.Option{yaml.WithIndent(indent)}
	if !flow {
		return yaml.Write(w, sources, opts...)
	}

	// --flow rewrites each document's own root collection to flow style;
	// the writer propagates flow context to every descendant once the
	// root is flow, so forcing just the root is enough.
	forced := make([]yamlcore.Document, len(docs))
	for i, doc := range docs {
		forced[i] = forceRootFlow(doc)
	}
	forcedSources := make([]yaml.EventSource, len(forced))
	for i, d := range forced {
		forcedSources[i] = yaml.AsSource(d)
	}
	return yaml.Write(w, forcedSources, opts...)
}

// forceRootFlow rewrites doc's root node's collection style to flow, if
// the root is itself a collection.
func forceRootFlow(doc yamlcore.Document) yamlcore.Document {
	switch n := doc.Root.(type) {
	case *yamlcore.SequenceNode:
		c := *n
		c.Style = yamlcore.FlowStyle
		doc.Root = &c
	case *yamlcore.MappingNode:
		c := *n
		c.Style = yamlcore.FlowStyle
		doc.Root = &c
	}
	return doc
}
