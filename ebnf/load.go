// Package ebnf loads a textual EBNF grammar description into a
// grammar.Grammar. It tokenizes with its own fixed rule set (reusing the
// generic lexer package for that) and parses with its own small
// hand-written recursive-descent bootstrap parser — it cannot use the
// grammar-driven parser package, since that package's job is to consume
// what this one produces.
package ebnf

import (
	"fmt"

	"github.com/loom-lang/cminify/grammar"
	"github.com/loom-lang/cminify/lexer"
	"github.com/loom-lang/cminify/token"
)

const (
	classTerminal    = "TERMINAL"
	classNonterminal = "NONTERMINAL"
	classLiteral     = "LITERAL"
	classNewline     = "NEWLINE"
)

var tokenConfig = mustConfig()

func mustConfig() lexer.Config {
	cfg, err := lexer.NewConfig(
		[]string{classTerminal, classNonterminal, classLiteral, classNewline,
			"COLON", "PIPE", "LBRACKET", "RBRACKET", "LBRACE", "RBRACE"},
		[]string{`[A-Z_]+`, `[a-z_]+`, `'[^'\n]+'`, `\n`,
			`:`, `\|`, `\[`, `\]`, `\{`, `\}`},
		" \t\r",
	)
	if err != nil {
		panic(fmt.Sprintf("ebnf: bad bootstrap lexer config: %v", err))
	}
	return cfg
}

// LoadError reports a malformed EBNF grammar.
type LoadError struct {
	Line, Column int
	Message      string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("ebnf: %d:%d: %s", e.Line, e.Column, e.Message)
}

// Parse reads EBNF source text and returns the Grammar it describes. It
// does not validate that every nonterminal reference resolves — call
// grammar.Validate on the result for that.
func Parse(source string) (*grammar.Grammar, error) {
	toks, err := lexer.Lex(tokenConfig, source)
	if err != nil {
		lexErr := err.(*lexer.Error)
		return nil, &LoadError{Line: lexErr.Line, Column: lexErr.Column, Message: "unknown character in grammar source"}
	}
	p := &parser{toks: toks}
	rules, err := p.parseGrammar()
	if err != nil {
		return nil, err
	}
	return grammar.New(rules), nil
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) cur() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) errorf(format string, args ...any) error {
	line, col := 1, 1
	if t, ok := p.cur(); ok {
		line, col = t.Position.Line, t.Position.Column
	} else if len(p.toks) > 0 {
		line, col = p.toks[len(p.toks)-1].Position.Line, p.toks[len(p.toks)-1].Position.Column
	}
	return &LoadError{Line: line, Column: col, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) skipBlankLines() {
	for {
		t, ok := p.cur()
		if !ok || t.Class != classNewline {
			return
		}
		p.pos++
	}
}

// parseGrammar consumes a sequence of rules. A rule ends at the first
// following line that does not start with '|', so blank lines between
// rules are allowed but not required.
func (p *parser) parseGrammar() ([]grammar.Rule, error) {
	var rules []grammar.Rule
	p.skipBlankLines()
	for {
		if _, ok := p.cur(); !ok {
			break
		}
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
		p.skipBlankLines()
	}
	return rules, nil
}

// parseRule consumes "name : production (NEWLINE '|' production)*".
func (p *parser) parseRule() (grammar.Rule, error) {
	nameTok, ok := p.cur()
	if !ok || nameTok.Class != classNonterminal {
		return grammar.Rule{}, p.errorf("expected rule name")
	}
	p.pos++

	if t, ok := p.cur(); !ok || t.Class != "COLON" {
		return grammar.Rule{}, p.errorf("expected ':' after rule name %q", nameTok.Lexeme)
	}
	p.pos++

	alt, err := p.parseAlternative()
	if err != nil {
		return grammar.Rule{}, err
	}
	alts := []grammar.Alternative{alt}

	for {
		save := p.pos
		p.consumeNewlines()
		t, ok := p.cur()
		if !ok || t.Class != "PIPE" {
			p.pos = save
			break
		}
		p.pos++
		alt, err := p.parseAlternative()
		if err != nil {
			return grammar.Rule{}, err
		}
		alts = append(alts, alt)
	}

	return grammar.Rule{Name: nameTok.Lexeme, Alternatives: alts}, nil
}

func (p *parser) consumeNewlines() {
	for {
		t, ok := p.cur()
		if !ok || t.Class != classNewline {
			return
		}
		p.pos++
	}
}

// parseAlternative consumes a sequence of production parts until a
// NEWLINE or end of input.
func (p *parser) parseAlternative() (grammar.Alternative, error) {
	var items []grammar.Item
	for {
		t, ok := p.cur()
		if !ok || t.Class == classNewline {
			break
		}
		item, err := p.parseItem()
		if err != nil {
			return grammar.Alternative{}, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return grammar.Alternative{}, p.errorf("empty production")
	}
	return grammar.Alternative{Items: items}, nil
}

// parseItem consumes one production part: a bracketed optional group, a
// braced repetition group, or a single bare leaf (which becomes a
// one-leaf Required item). Nesting of groups is rejected rather than
// flattened — see parseLeafList.
func (p *parser) parseItem() (grammar.Item, error) {
	t, ok := p.cur()
	if !ok {
		return grammar.Item{}, p.errorf("unexpected end of input")
	}

	switch t.Class {
	case "LBRACKET":
		p.pos++
		leaves, err := p.parseLeafList("RBRACKET")
		if err != nil {
			return grammar.Item{}, err
		}
		return grammar.Item{Leaves: leaves, Modifier: grammar.Optional}, nil
	case "LBRACE":
		p.pos++
		leaves, err := p.parseLeafList("RBRACE")
		if err != nil {
			return grammar.Item{}, err
		}
		return grammar.Item{Leaves: leaves, Modifier: grammar.Repeat}, nil
	default:
		leaf, err := p.parseLeaf()
		if err != nil {
			return grammar.Item{}, err
		}
		return grammar.Item{Leaves: []grammar.Leaf{leaf}, Modifier: grammar.Required}, nil
	}
}

func (p *parser) parseLeafList(closeClass string) ([]grammar.Leaf, error) {
	var leaves []grammar.Leaf
	for {
		t, ok := p.cur()
		if !ok {
			return nil, p.errorf("unbalanced grouping: expected closing bracket")
		}
		if t.Class == closeClass {
			p.pos++
			break
		}
		if t.Class == "LBRACKET" || t.Class == "LBRACE" {
			return nil, p.errorf("nested grouping is not supported")
		}
		leaf, err := p.parseLeaf()
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, leaf)
	}
	if len(leaves) == 0 {
		return nil, p.errorf("empty group")
	}
	return leaves, nil
}

func (p *parser) parseLeaf() (grammar.Leaf, error) {
	t, ok := p.cur()
	if !ok {
		return grammar.Leaf{}, p.errorf("unexpected end of input")
	}
	p.pos++
	switch t.Class {
	case classTerminal:
		return grammar.Terminal(t.Lexeme), nil
	case classNonterminal:
		return grammar.Nonterminal(t.Lexeme), nil
	case classLiteral:
		return grammar.Literal(trimQuotes(t.Lexeme)), nil
	default:
		return grammar.Leaf{}, p.errorf("unexpected token %q", t.Lexeme)
	}
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}
