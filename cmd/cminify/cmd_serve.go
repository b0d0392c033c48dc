package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/loom-lang/cminify/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:           "serve",
		Short:         "Serve a browser visualizer for the minifier",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("cminify serving on %s\n", addr)
			return http.ListenAndServe(addr, web.New())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}
