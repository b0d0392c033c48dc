package lexer

import "testing"

func TestLexLongestMatch(t *testing.T) {
	// "12+" with INT=[0-9]+ and SYM=[0-9]+\+ should prefer the longer
	// SYM match even though INT is declared first.
	cfg, err := NewConfig([]string{"INT", "SYM"}, []string{`[0-9]+`, `[0-9]+\+`}, " ")
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	toks, err := Lex(cfg, "12+")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(toks), toks)
	}
	if toks[0].Class != "SYM" || toks[0].Lexeme != "12+" {
		t.Errorf("got %+v, want {SYM 12+}", toks[0])
	}
}

func TestLexTiebreakPrefersEarlierRule(t *testing.T) {
	cfg, err := NewConfig([]string{"A", "B"}, []string{`ab`, `ab`}, "")
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	toks, err := Lex(cfg, "ab")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if toks[0].Class != "A" {
		t.Errorf("tie should resolve to earlier rule A, got %s", toks[0].Class)
	}
}

func TestLexSkipsIgnored(t *testing.T) {
	cfg, err := NewConfig([]string{"WORD"}, []string{`[a-z]+`}, " \t\n")
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	toks, err := Lex(cfg, "  foo\tbar\n")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(toks) != 2 || toks[0].Lexeme != "foo" || toks[1].Lexeme != "bar" {
		t.Errorf("got %v", toks)
	}
}

func TestLexFailsOnUnrecognizedChar(t *testing.T) {
	cfg, err := NewConfig([]string{"WORD"}, []string{`[a-z]+`}, " ")
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	_, err = Lex(cfg, "foo 123")
	if err == nil {
		t.Fatal("expected lex error on digits")
	}
	var lexErr *Error
	if !asError(err, &lexErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if lexErr.Line != 1 || lexErr.Column != 5 {
		t.Errorf("got line %d col %d, want 1 5", lexErr.Line, lexErr.Column)
	}
}

func TestNewConfigRejectsEmptyMatch(t *testing.T) {
	_, err := NewConfig([]string{"EMPTY"}, []string{`a*`}, "")
	if err == nil {
		t.Fatal("expected rejection of a pattern that can match empty")
	}
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
