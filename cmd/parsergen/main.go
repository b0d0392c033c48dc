// Command parsergen reads an EBNF grammar from stdin and emits a Go
// source file embedding it as a literal grammar.Grammar value, so a
// generated parser needs no EBNF text at runtime. Grounded on
// cmd/ahi/cmd_ebnf.go's "check" subcommand for reading/validating a
// grammar file, redirected to stdin/stdout and to Go-source emission
// instead of a verification report.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/loom-lang/cminify/codegen"
	"github.com/loom-lang/cminify/ebnf"
	"github.com/loom-lang/cminify/grammar"
)

func main() {
	var pkg, varName, start, out string

	cmd := &cobra.Command{
		Use:           "parsergen",
		Short:         "Generate a Go source file embedding an EBNF grammar as literal Go values",
		Long:          "Reads an EBNF grammar from stdin, validates it, and writes Go source\ndefining it as a package-level grammar.Grammar value to stdout (or --out).",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := io.ReadAll(bufio.NewReader(os.Stdin))
			if err != nil {
				return fmt.Errorf("read grammar: %w", err)
			}

			g, err := ebnf.Parse(string(input))
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			if errs := grammar.Validate(g); len(errs) > 0 {
				return fmt.Errorf("validate grammar: %v", errs[0])
			}

			source, err := codegen.Generate(pkg, varName, start, g)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Print(source)
				return nil
			}
			return os.WriteFile(out, []byte(source), 0o644)
		},
	}

	cmd.Flags().StringVar(&pkg, "package", "main", "package name for the generated file")
	cmd.Flags().StringVar(&varName, "var", "Grammar", "name of the generated grammar.Grammar variable")
	cmd.Flags().StringVar(&start, "start", "", "start rule for the generated grammar (required)")
	cmd.Flags().StringVar(&out, "out", "", "output file path (default: stdout)")
	cmd.MarkFlagRequired("start")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
