package parse

import (
	"testing"

	"github.com/loom-lang/cminify/grammar"
	"github.com/loom-lang/cminify/token"
)

// exprFactorGrammar builds a small left-factored grammar for exercising
// longest-alternative selection and unconsumed-input reporting:
//
//	expr   : factor [ '+' expr ]
//	factor : INT { '*' INT }
func exprFactorGrammar() *grammar.Grammar {
	expr := grammar.Rule{
		Name: "expr",
		Alternatives: []grammar.Alternative{{
			Items: []grammar.Item{
				{Leaves: []grammar.Leaf{grammar.Nonterminal("factor")}, Modifier: grammar.Required},
				{Leaves: []grammar.Leaf{grammar.Literal("+"), grammar.Nonterminal("expr")}, Modifier: grammar.Optional},
			},
		}},
	}
	factor := grammar.Rule{
		Name: "factor",
		Alternatives: []grammar.Alternative{{
			Items: []grammar.Item{
				{Leaves: []grammar.Leaf{grammar.Terminal("INT")}, Modifier: grammar.Required},
				{Leaves: []grammar.Leaf{grammar.Literal("*"), grammar.Terminal("INT")}, Modifier: grammar.Repeat},
			},
		}},
	}
	return grammar.New([]grammar.Rule{expr, factor})
}

func intTok(lexeme string) token.Token { return token.Token{Class: "INT", Lexeme: lexeme} }
func symTok(lexeme string) token.Token { return token.Token{Class: "PUNCT", Lexeme: lexeme} }

func TestParseLongestAlternativeWins(t *testing.T) {
	g := exprFactorGrammar()
	toks := []token.Token{intTok("1"), symTok("*"), intTok("2"), symTok("+"), intTok("3")}

	node, err := Parse(g, toks, "expr")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if node.Rule != "expr" {
		t.Fatalf("root rule = %q, want expr", node.Rule)
	}
	if len(node.Tokens()) != 5 {
		t.Fatalf("consumed %d tokens, want 5: %v", len(node.Tokens()), node.Tokens())
	}

	// Part 0 is the `factor` nonterminal, part 1 is the optional `'+' expr`.
	if len(node.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(node.Parts))
	}
	if len(node.Parts[1]) == 0 {
		t.Fatal("expected optional '+' expr part to have matched")
	}
}

func TestParseFailsOnUnconsumedInput(t *testing.T) {
	g := exprFactorGrammar()
	toks := []token.Token{intTok("1"), intTok("2")}

	_, err := Parse(g, toks, "expr")
	if err == nil {
		t.Fatal("expected ParseError for unconsumed input")
	}
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, want *Error", err)
	}
	if perr.MaxPosition != 1 {
		t.Errorf("MaxPosition = %d, want 1", perr.MaxPosition)
	}
}

func TestParseMemoizationDoesNotChangeResult(t *testing.T) {
	g := exprFactorGrammar()
	toks := []token.Token{intTok("1"), symTok("*"), intTok("2"), symTok("+"), intTok("3")}

	// A second matchRule call at the same position is served from the
	// memo table and must report the same result as the first, uncached
	// call.
	p := New(g, toks)
	n1, pos1, ok1 := p.matchRule("expr", 0)
	n2, pos2, ok2 := p.matchRule("expr", 0) // memo hit
	if !ok1 || !ok2 || pos1 != pos2 {
		t.Fatalf("inconsistent results: (%v,%v,%v) vs (%v,%v,%v)", n1, pos1, ok1, n2, pos2, ok2)
	}
	if len(n1.Tokens()) != len(n2.Tokens()) {
		t.Errorf("memoized result differs in length")
	}
}

func TestParseTreeConsumedTokensMatchInput(t *testing.T) {
	g := exprFactorGrammar()
	toks := []token.Token{intTok("1"), symTok("*"), intTok("2"), symTok("*"), intTok("3")}
	node, err := Parse(g, toks, "expr")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := node.Tokens()
	if len(got) != len(toks) {
		t.Fatalf("got %d tokens, want %d", len(got), len(toks))
	}
	for i := range toks {
		if got[i] != toks[i] {
			t.Errorf("token %d: got %+v, want %+v", i, got[i], toks[i])
		}
	}
}
