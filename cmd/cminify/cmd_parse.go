package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loom-lang/cminify/cgrammar"
	"github.com/loom-lang/cminify/lexer"
	"github.com/loom-lang/cminify/parse"
	"github.com/loom-lang/cminify/token"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "parse <file>",
		Short:         "Parse a C source file and print its concrete syntax tree",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := parseFile(args[0])
			if err != nil {
				return err
			}
			printNode(node, 0)
			return nil
		},
	}
}

func parseFile(path string) (*parse.Node, error) {
	source, err := readSource(path)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.Lex(cgrammar.LexerConfigWithIgnore(cfg.LexerIgnore), source)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}
	filtered := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == cgrammar.ClassComment || tok.Class == cgrammar.ClassPreprocessor {
			continue
		}
		filtered = append(filtered, tok)
	}
	node, err := parse.Parse(cgrammar.Grammar(), filtered, cgrammar.StartRule)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return node, nil
}

func printNode(n *parse.Node, depth int) {
	prefix := strings.Repeat("  ", depth)
	fmt.Printf("%s%s\n", prefix, n.Rule)
	for _, part := range n.Parts {
		for _, child := range part {
			if child.IsToken() {
				fmt.Printf("%s  %s %q\n", prefix, child.Token.Class, child.Token.Lexeme)
				continue
			}
			printNode(child.Node, depth+1)
		}
	}
}
