package main

import (
	"github.com/spf13/cobra"

	"github.com/loom-lang/cminify/lsp"
)

const cminifyVersion = "0.1.0"

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "lsp",
		Short:         "Start the Language Server Protocol server over stdio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.New(cminifyVersion)
			return server.RunStdio()
		},
	}
}
