// Package main provides the yamlfmt CLI: parse-and-reformat, event-stream
// inspection, and parse-only validation for the nyaml reader/writer core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "yamlfmt",
		Short:         "Parse and re-emit YAML through the nyaml core",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newFmtCmd())
	root.AddCommand(newEventsCmd())
	root.AddCommand(newCheckCmd())
	return root
}

// openInput returns the named file, or stdin when path is "" or "-".
func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}
