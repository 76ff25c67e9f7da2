package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyaml/nyaml/yaml"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Parse one or more YAML files without emitting anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{""}
			}
			failed := false
			for _, path := range args {
				if err := checkOne(path); err != nil {
					failed = true
					label := path
					if label == "" || label == "-" {
						label = "<stdin>"
					}
					fmt.Fprintf(os.Stderr, "%s: %v\n", label, err)
				}
			}
			if failed {
				return errCheckFailed
			}
			return nil
		},
		SilenceErrors: true,
	}
	return cmd
}

var errCheckFailed = fmt.Errorf("one or more documents failed to parse")

func checkOne(path string) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return check(f)
}

func check(r io.Reader) error {
	_, err := yaml.Parse(r)
	return err
}
