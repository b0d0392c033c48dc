// Package repl implements an interactive read-eval-print loop over the
// minifier's stages, for trying a snippet without creating a file.
// Grounded on dekarrin-tunaq's internal/input package for the
// chzyer/readline wiring (InteractiveCommandReader), and on its use of
// github.com/dekarrin/rosed to wrap long output lines.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/rosed"
	"github.com/google/uuid"

	"github.com/loom-lang/cminify/cgrammar"
	"github.com/loom-lang/cminify/config"
	"github.com/loom-lang/cminify/lexer"
	"github.com/loom-lang/cminify/minify"
	"github.com/loom-lang/cminify/parse"
	"github.com/loom-lang/cminify/rename"
	"github.com/loom-lang/cminify/token"
)

const outputWidth = 100

// REPL reads snippets from stdin and runs one of :lex, :parse, :rename
// or :minify against them, printing the result. Each REPL run is tagged
// with a session id so transcripts saved elsewhere can be told apart.
type REPL struct {
	rl        *readline.Instance
	out       io.Writer
	cfg       config.Config
	sessionID uuid.UUID
}

// New starts readline on stdin/stdout with command history and the
// given configuration.
func New(cfg config.Config, sessionID uuid.UUID) (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "cminify> "})
	if err != nil {
		return nil, fmt.Errorf("repl: %w", err)
	}
	return &REPL{rl: rl, out: rl.Stdout(), cfg: cfg, sessionID: sessionID}, nil
}

// Close releases the underlying readline instance.
func (r *REPL) Close() error { return r.rl.Close() }

// Run reads commands until EOF or a :quit, dispatching each line.
func (r *REPL) Run() error {
	fmt.Fprintf(r.out, "session %s; commands: :lex :parse :rename :minify :quit\n", r.sessionID)
	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			return nil
		}

		cmd, rest, _ := strings.Cut(line, " ")
		if err := r.dispatch(cmd, rest); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

func (r *REPL) dispatch(cmd, source string) error {
	switch cmd {
	case ":lex":
		return r.runLex(source)
	case ":parse":
		return r.runParse(source)
	case ":rename":
		return r.runRename(source)
	case ":minify":
		return r.runMinify(source)
	default:
		return fmt.Errorf("unknown command %q (want :lex, :parse, :rename or :minify)", cmd)
	}
}

func (r *REPL) runLex(source string) error {
	tokens, err := lexer.Lex(cgrammar.LexerConfigWithIgnore(r.cfg.LexerIgnore), source)
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&b, "%s %q  ", tok.Class, tok.Lexeme)
	}
	fmt.Fprintln(r.out, rosed.Edit(b.String()).Wrap(outputWidth).String())
	return nil
}

func (r *REPL) parseSource(source string) (*parse.Node, error) {
	tokens, err := lexer.Lex(cgrammar.LexerConfigWithIgnore(r.cfg.LexerIgnore), source)
	if err != nil {
		return nil, err
	}
	filtered := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == cgrammar.ClassComment || tok.Class == cgrammar.ClassPreprocessor {
			continue
		}
		filtered = append(filtered, tok)
	}
	return parse.Parse(cgrammar.Grammar(), filtered, cgrammar.StartRule)
}

func (r *REPL) runParse(source string) error {
	node, err := r.parseSource(source)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, describeNode(node))
	return nil
}

func (r *REPL) runRename(source string) error {
	node, err := r.parseSource(source)
	if err != nil {
		return err
	}
	renamer := rename.New(r.cfg.Reserved...)
	if err := renamer.Rename(node); err != nil {
		return err
	}
	for _, w := range renamer.Warnings() {
		fmt.Fprintln(r.out, w.String())
	}
	fmt.Fprintln(r.out, describeNode(node))
	return nil
}

func (r *REPL) runMinify(source string) error {
	result, err := minify.MinifyWithConfig(source, r.cfg)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(r.out, w.String())
	}
	fmt.Fprintln(r.out, rosed.Edit(result.Output).Wrap(outputWidth).String())
	return nil
}

// describeNode renders a parse tree as a single indented, wrapped block
// instead of cminify's CLI tree printer, since REPL output is meant to
// be read a line at a time in a terminal.
func describeNode(n *parse.Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return rosed.Edit(b.String()).Wrap(outputWidth).String()
}

func writeNode(b *strings.Builder, n *parse.Node, depth int) {
	fmt.Fprintf(b, "%s%s ", strings.Repeat("  ", depth), n.Rule)
	for _, part := range n.Parts {
		for _, child := range part {
			if child.IsToken() {
				fmt.Fprintf(b, "%q ", child.Token.Lexeme)
				continue
			}
			writeNode(b, child.Node, depth+1)
		}
	}
}
