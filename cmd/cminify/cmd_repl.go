package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/loom-lang/cminify/repl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "repl",
		Short:         "Start an interactive lex/parse/rename/minify session",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			r, err := repl.New(cfg, uuid.New())
			if err != nil {
				return err
			}
			defer r.Close()
			return r.Run()
		},
	}
}
