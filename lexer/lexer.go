// Package lexer implements the generic longest-match tokenizer: an ordered
// list of named regular expressions plus a set of ignorable characters.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/loom-lang/cminify/token"
)

// Rule pairs a token class with the regular expression that recognizes it.
// Order matters: it is the tiebreaker between equal-length matches.
type Rule struct {
	Class   string
	Pattern *regexp.Regexp
}

// Config is an ordered list of Rules plus a set of characters skipped
// between tokens.
type Config struct {
	Rules  []Rule
	Ignore map[rune]bool
}

// NewConfig compiles names/patterns pairs into a Config, anchoring every
// pattern at the start of the remaining input. It rejects any pattern that
// can match the empty string, since that would never advance the cursor.
func NewConfig(names, patterns []string, ignore string) (Config, error) {
	if len(names) != len(patterns) {
		return Config{}, fmt.Errorf("lexer: %d names but %d patterns", len(names), len(patterns))
	}
	rules := make([]Rule, len(names))
	for i, p := range patterns {
		re, err := regexp.Compile(`\A(?:` + p + `)`)
		if err != nil {
			return Config{}, fmt.Errorf("lexer: compiling rule %s: %w", names[i], err)
		}
		if re.MatchString("") {
			return Config{}, fmt.Errorf("lexer: rule %s matches the empty string", names[i])
		}
		rules[i] = Rule{Class: names[i], Pattern: re}
	}
	ig := map[rune]bool{}
	for _, r := range ignore {
		ig[r] = true
	}
	return Config{Rules: rules, Ignore: ig}, nil
}

// Error reports a position where no configured rule matched.
type Error struct {
	Line, Column int
	Remainder    string
}

func (e *Error) Error() string {
	prefix := e.Remainder
	if len(prefix) > 16 {
		prefix = prefix[:16]
	}
	return fmt.Sprintf("lexer: no match at %d:%d near %q", e.Line, e.Column, prefix)
}

// Lex tokenizes input in full, or fails with *Error at the first
// unrecognized, non-ignored character.
func Lex(cfg Config, input string) ([]token.Token, error) {
	var out []token.Token
	pos := 0
	line, col := 1, 1
	n := len(input)

	advance := func(s string) {
		for _, r := range s {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		pos += len(s)
	}

	for pos < n {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if cfg.Ignore[r] {
			advance(input[pos : pos+size])
			continue
		}

		bestIdx := -1
		bestLen := 0
		for i, rule := range cfg.Rules {
			loc := rule.Pattern.FindStringIndex(input[pos:])
			if loc == nil {
				continue
			}
			if matchLen := loc[1]; matchLen > bestLen {
				bestLen = matchLen
				bestIdx = i
			}
		}
		if bestIdx == -1 {
			return out, &Error{Line: line, Column: col, Remainder: input[pos:]}
		}
		lexeme := input[pos : pos+bestLen]
		out = append(out, token.Token{
			Class:    cfg.Rules[bestIdx].Class,
			Lexeme:   lexeme,
			Position: token.Position{Offset: pos, Line: line, Column: col},
		})
		advance(lexeme)
	}
	return out, nil
}
