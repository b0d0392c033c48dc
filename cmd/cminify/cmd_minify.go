package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loom-lang/cminify/minify"
)

func runMinify(cmd *cobra.Command, args []string) error {
	return doMinify(args[0])
}

func doMinify(path string) error {
	source, err := readSource(path)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := minify.MinifyWithConfig(source, cfg)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, w.String())
	}

	fmt.Print(result.Output)
	return nil
}
