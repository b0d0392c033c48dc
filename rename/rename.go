// Package rename implements the scope-aware identifier renamer, grounded
// on original_source/src/minify.py's dfs function.
package rename

import (
	"fmt"

	"github.com/loom-lang/cminify/cgrammar"
	"github.com/loom-lang/cminify/parse"
)

// declarationRule and the two scope-opening rules, named by the grammar
// productions in cgrammar/c.ebnf that carry the same meaning the original
// dfs switched on.
const (
	declarationRule    = "direct_declarator"
	compoundScopeRule  = "compound_statement"
	iterationScopeRule = "iteration_statement"
	mainSymbol         = "main"
)

// alphabet is the base-52 symbol alphabet: a..z, A..Z, then aa, ab, ... .
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Conflict reports a name declared twice in the same scope.
type Conflict struct {
	Name string
}

func (e *Conflict) Error() string {
	return fmt.Sprintf("rename: %q is already declared in this scope", e.Name)
}

// UndefinedUse reports an identifier used with no declaration in scope.
// It is a warning, not a fatal error: the use is left unchanged so that
// library symbols and other externally-defined names pass through.
type UndefinedUse struct {
	Name string
}

func (w *UndefinedUse) String() string {
	return fmt.Sprintf("rename: %q used with no declaration in scope", w.Name)
}

// symbolFor turns a zero-based counter into the next base-52 symbol:
// 0->a, 1->b, ..., 51->Z, 52->aa, 53->ab, ...
func symbolFor(n int) string {
	if n < len(alphabet) {
		return string(alphabet[n])
	}
	n -= len(alphabet)
	hi := n / len(alphabet)
	lo := n % len(alphabet)
	return symbolFor(hi) + string(alphabet[lo])
}

// scope is a flat symbol table: original identifier -> assigned symbol.
// Renamer.scopes holds only the current scope; child scopes are taken as
// shallow copies and discarded on exit, mirroring dfs's dict.copy().
type scope map[string]string

// Renamer walks a parse tree and rewrites every identifier token's Lexeme
// in place to its assigned short symbol.
type Renamer struct {
	next     int
	reserved map[string]bool
	keywords map[string]bool
	warnings []UndefinedUse
}

// New creates a Renamer with an empty counter. Names in reserved, plus
// "main", are kept verbatim instead of being assigned a symbol. Every C
// keyword is treated as already reserved, so the generated alphabet
// never mints a symbol that would re-lex as a keyword instead of an
// identifier.
func New(reserved ...string) *Renamer {
	r := &Renamer{
		reserved: make(map[string]bool, len(reserved)),
		keywords: make(map[string]bool),
	}
	for _, name := range reserved {
		r.reserved[name] = true
	}
	for _, kw := range cgrammar.Keywords() {
		r.keywords[kw] = true
	}
	return r
}

// Rename renames every identifier declared under root, in place, starting
// from an empty top-level scope. It returns the first Conflict
// encountered, if any.
func (r *Renamer) Rename(root *parse.Node) error {
	r.warnings = nil
	return r.walk(root, make(scope))
}

// Warnings returns every UndefinedUse collected by the most recent
// Rename call, in the order encountered.
func (r *Renamer) Warnings() []UndefinedUse { return r.warnings }

func (r *Renamer) declare(sym scope, name string) (string, error) {
	if _, exists := sym[name]; exists {
		return "", &Conflict{Name: name}
	}
	if name == mainSymbol || r.reserved[name] {
		sym[name] = name
		return name, nil
	}
	assigned := symbolFor(r.next)
	r.next++
	for r.keywords[assigned] {
		assigned = symbolFor(r.next)
		r.next++
	}
	sym[name] = assigned
	return assigned, nil
}

// resolve looks up a use of name, falling back to the name itself (and
// recording an UndefinedUse warning) if it was never declared — type
// names and library symbols are never declared by this grammar, so this
// is the common case, not an error. Every IDENTIFIER outside a
// direct_declarator goes through here, including struct member names
// after '.'/'->' and label names — there is only one namespace, so a
// member or label that happens to match a declared variable's spelling
// is renamed along with it.
func (r *Renamer) resolve(sym scope, name string) string {
	if assigned, ok := sym[name]; ok {
		return assigned
	}
	r.warnings = append(r.warnings, UndefinedUse{Name: name})
	return name
}

func (r *Renamer) walk(n *parse.Node, sym scope) error {
	if n == nil {
		return nil
	}

	switch n.Rule {
	case declarationRule:
		return r.walkDeclaration(n, sym)
	case compoundScopeRule, iterationScopeRule:
		child := make(scope, len(sym))
		for k, v := range sym {
			child[k] = v
		}
		// A new scope is a checkpoint for the fresh-symbol counter too:
		// siblings of this scope must be able to reuse the symbols it
		// used, so the counter rewinds to its value on entry.
		saved := r.next
		err := r.walkChildren(n, child)
		r.next = saved
		return err
	default:
		return r.walkChildren(n, sym)
	}
}

func (r *Renamer) walkChildren(n *parse.Node, sym scope) error {
	for _, part := range n.Parts {
		for _, child := range part {
			if child.IsToken() {
				tok := child.Token
				if tok.Class == "IDENTIFIER" {
					tok.Lexeme = r.resolve(sym, tok.Lexeme)
				}
				continue
			}
			if err := r.walk(child.Node, sym); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkDeclaration handles a direct_declarator node: its own leading
// IDENTIFIER token (if present) is a fresh declaration; every nested
// direct_declarator reachable under it (e.g. a function's parameter
// names) is processed the same way, against the SAME scope — matching
// dfs's behavior of not giving function parameters their own scope.
func (r *Renamer) walkDeclaration(n *parse.Node, sym scope) error {
	for _, part := range n.Parts {
		for _, child := range part {
			if child.IsToken() {
				tok := child.Token
				if tok.Class != "IDENTIFIER" {
					continue
				}
				assigned, err := r.declare(sym, tok.Lexeme)
				if err != nil {
					return err
				}
				tok.Lexeme = assigned
				continue
			}
			if err := r.walk(child.Node, sym); err != nil {
				return err
			}
		}
	}
	return nil
}
