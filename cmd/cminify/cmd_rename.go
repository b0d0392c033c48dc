package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loom-lang/cminify/rename"
)

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "rename <file>",
		Short:         "Parse a C source file and print its renaming plan, without reprinting",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := parseFile(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			r := rename.New(cfg.Reserved...)
			if err := r.Rename(node); err != nil {
				return err
			}
			for _, w := range r.Warnings() {
				fmt.Fprintln(os.Stderr, w.String())
			}
			printNode(node, 0)
			return nil
		},
	}
}
