package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loom-lang/cminify/config"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "cminify <file>",
		Short:         "Minify C source: rename identifiers, strip comments, reprint compactly",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMinify,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a cminify.toml config file")

	rootCmd.AddCommand(newLexCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newRenameCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
