// Package minify composes the lexer, parser, renamer and reprinter into
// the single whole-file operation described by original_source/src/main.py's
// top-level pipeline (tokenize -> parse -> dfs -> format).
package minify

import (
	"fmt"

	"github.com/loom-lang/cminify/cgrammar"
	"github.com/loom-lang/cminify/config"
	"github.com/loom-lang/cminify/lexer"
	"github.com/loom-lang/cminify/parse"
	"github.com/loom-lang/cminify/rename"
	"github.com/loom-lang/cminify/reprint"
	"github.com/loom-lang/cminify/token"
)

// Result carries every intermediate artifact of a Minify run, so a caller
// can inspect a stage without re-running it.
type Result struct {
	Tokens   []token.Token         // the full lexed stream, before any filtering
	Tree     *parse.Node           // the parsed translation_unit, after renaming
	Output   string                // the final reprinted source
	Warnings []rename.UndefinedUse // identifier uses with no declaration in scope
}

// Minify lexes, parses, renames and reprints one C source file, using
// the default configuration (no reserved identifiers beyond "main").
func Minify(source string) (*Result, error) {
	return MinifyWithConfig(source, config.Default())
}

// MinifyWithConfig is Minify with an explicit Config, honoring its
// Reserved identifier list and reprint options.
func MinifyWithConfig(source string, cfg config.Config) (*Result, error) {
	allTokens, err := lexer.Lex(cgrammar.LexerConfigWithIgnore(cfg.LexerIgnore), source)
	if err != nil {
		return nil, fmt.Errorf("minify: lex: %w", err)
	}

	filtered := make([]token.Token, 0, len(allTokens))
	for _, tok := range allTokens {
		if tok.Class == cgrammar.ClassComment || tok.Class == cgrammar.ClassPreprocessor {
			continue
		}
		filtered = append(filtered, tok)
	}

	tree, err := parse.Parse(cgrammar.Grammar(), filtered, cgrammar.StartRule)
	if err != nil {
		return nil, fmt.Errorf("minify: parse: %w", err)
	}

	renamer := rename.New(cfg.Reserved...)
	if err := renamer.Rename(tree); err != nil {
		return nil, fmt.Errorf("minify: rename: %w", err)
	}

	renamed := tree.Tokens()
	final := spliceBack(allTokens, renamed)

	return &Result{
		Tokens:   allTokens,
		Tree:     tree,
		Output:   reprint.Format(final, cfg.Reprint),
		Warnings: renamer.Warnings(),
	}, nil
}

// spliceBack walks the original, unfiltered token stream and rebuilds it:
// COMMENT tokens are dropped (never present in output), PREPROCESSOR
// tokens are kept verbatim in their original position, and every other
// position takes the next token, in order, from the renamed stream
// (resolving Open Question (d): the grammar never models preprocessor
// directives, so they ride alongside the parse instead of through it).
func spliceBack(original []token.Token, renamed []token.Token) []token.Token {
	out := make([]token.Token, 0, len(original))
	i := 0
	for _, tok := range original {
		switch tok.Class {
		case cgrammar.ClassComment:
			continue
		case cgrammar.ClassPreprocessor:
			out = append(out, tok)
		default:
			out = append(out, renamed[i])
			i++
		}
	}
	return out
}
