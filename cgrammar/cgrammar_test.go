package cgrammar

import (
	"testing"

	"github.com/loom-lang/cminify/grammar"
	"github.com/loom-lang/cminify/lexer"
	"github.com/loom-lang/cminify/parse"
	"github.com/loom-lang/cminify/token"
)

func TestGrammarLoadsAndValidates(t *testing.T) {
	g := Grammar()
	if g == nil {
		t.Fatal("Grammar() returned nil")
	}
	if _, ok := g.Rule(StartRule); !ok {
		t.Fatalf("grammar has no %q rule", StartRule)
	}
	if errs := grammar.Validate(g); len(errs) != 0 {
		t.Fatalf("Validate: %v", errs)
	}
}

func lexSource(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Lex(LexerConfig(), src)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	out := make([]token.Token, 0, len(toks))
	for _, tok := range toks {
		if tok.Class == ClassComment {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func TestParsesMinimalFunction(t *testing.T) {
	toks := lexSource(t, "int main(void) { return 0; }")
	node, err := parse.Parse(Grammar(), toks, StartRule)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if node.Rule != StartRule {
		t.Fatalf("root rule = %q, want %q", node.Rule, StartRule)
	}
}

func TestParsesStructAndLoop(t *testing.T) {
	src := `
struct point { int x; int y; };

int sum(struct point p) {
    int total = 0;
    for (int i = 0; i < 2; i++) {
        total += i ? p.x : p.y;
    }
    return total;
}
`
	toks := lexSource(t, src)
	if _, err := parse.Parse(Grammar(), toks, StartRule); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	toks := lexSource(t, "int main( { return }")
	if _, err := parse.Parse(Grammar(), toks, StartRule); err == nil {
		t.Fatal("expected parse error for malformed source")
	}
}
