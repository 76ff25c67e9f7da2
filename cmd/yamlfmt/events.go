package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nyaml/nyaml/yaml"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Dump the flat ValueEvent stream of a document, one event per line",
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
			return runEvents(f, cmd.OutOrStdout())
		},
	}
	return cmd
}

func runEvents(r io.Reader, w io.Writer) error {
	docs, err := yaml.Parse(r)
	if err != nil {
		return err
	}
	for docIdx, doc := range docs {
		fmt.Fprintf(w, "--- document %d\n", docIdx)
		events, err := yaml.Events(doc)
		if err != nil {
			return err
		}
		for _, ev := range events {
			fmt.Fprintln(w, formatEvent(ev))
		}
	}
	return nil
}

func formatEvent(ev yaml.ValueEvent) string {
	switch {
	case ev.Kind.String() == "Style":
		if ev.IsCollection {
			return fmt.Sprintf("Style collection=%s", ev.Collection)
		}
		return fmt.Sprintf("Style scalar=%s", ev.ScalarStyle.Kind)
	case ev.Kind.String() == "Tag":
		return fmt.Sprintf("Tag %s", ev.Tag)
	case ev.Kind.String() == "Anchor":
		return fmt.Sprintf("Anchor %s", ev.Anchor)
	case ev.Kind.String() == "Scalar":
		return fmt.Sprintf("Scalar kind=%d text=%q", ev.Value.Kind, ev.Value.Text)
	case ev.Kind.String() == "Alias":
		return fmt.Sprintf("Alias %s", ev.AliasName)
	default:
		return ev.Kind.String()
	}
}
