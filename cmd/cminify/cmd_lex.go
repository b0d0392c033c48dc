package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loom-lang/cminify/cgrammar"
	"github.com/loom-lang/cminify/lexer"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "lex <file>",
		Short:         "Tokenize a C source file and print each token",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tokens, err := lexer.Lex(cgrammar.LexerConfigWithIgnore(cfg.LexerIgnore), source)
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				fmt.Printf("%s %s %q\n", tok.Position, tok.Class, tok.Lexeme)
			}
			return nil
		},
	}
}
