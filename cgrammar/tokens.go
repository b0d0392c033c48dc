// Package cgrammar holds the C token classes and the C grammar the
// minifier accepts, grounded in original_source/src/tokens.py and
// microtokens.py.
package cgrammar

import (
	"sort"
	"strings"

	"github.com/loom-lang/cminify/lexer"
)

// Token classes, matching original_source/src/tokens.py with one addition:
// PREPROCESSOR, which tokens.py's reprinter expects but its lexer never
// emits, so this lexer adds a regex for it directly.
const (
	ClassPreprocessor = "PREPROCESSOR"
	ClassComment      = "COMMENT"
	ClassHeaderName   = "HEADERNAME"
	ClassKeyword      = "KEYWORD"
	ClassIdentifier   = "IDENTIFIER"
	ClassConstant     = "CONSTANT"
	ClassString       = "STRINGLITERAL"
	ClassPunctuator   = "PUNCTUATOR"
)

var keywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while",
	"_Bool", "_Complex", "_Imaginary",
}

// Keywords returns the reserved words of the C subset this grammar
// accepts, so other packages (the renamer) can treat them as already
// bound without duplicating the list.
func Keywords() []string {
	out := make([]string, len(keywords))
	copy(out, keywords)
	return out
}

// punctuators is sorted longest-first by alternation so that, within the
// PUNCTUATOR rule itself, a longer operator like "<<=" is preferred over
// its prefix "<<" even before the lexer's own longest-match tiebreak runs
// across rules.
var punctuators = []string{
	"[", "]", "(", ")", "{", "}", ".", "->", "++", "--", "&", "*", "+", "-",
	"~", "!", "/", "%", "<<", ">>", "<", ">", "<=", ">=", "==", "!=", "^",
	"|", "&&", "||", "?", ":", ";", "...", "=", "*=", "/=", "%=", "+=",
	"-=", "<<=", ">>=", "&=", "^=", "|=", ",", "#", "##",
}

func alternation(words []string) string {
	sorted := append([]string(nil), words...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	parts := make([]string, len(sorted))
	for i, w := range sorted {
		parts[i] = "(" + regexpQuote(w) + ")"
	}
	return strings.Join(parts, "|")
}

// regexpQuote escapes the handful of regex metacharacters that appear in
// keyword/punctuator literals ('.', and the C punctuators themselves).
func regexpQuote(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

const (
	simpleEscape = `\\['"?\\abfnrtv]`
	octalEscape  = `\\[0-7]{1,3}`
	hexEscape    = `\\x[0-9a-fA-F]+`
	charsetBody  = `!#$%&()*+,\-./0-9:;<=?@A-Z\[\]^_` + "`" + `a-z{}|~ `
)

func escChar(extra string) string {
	return `(?:` + simpleEscape + `)|(?:` + octalEscape + `)|(?:` + hexEscape + `)|[` + charsetBody + extra + `]`
}

var (
	integerConstant    = `(?:0[xX][0-9a-fA-F]+)|(?:[1-9][0-9]*)|(?:0[0-7]*)(?:u|l|U|L|ll|LL)?`
	decFloatConstant   = `(?:(?:[0-9]+(?:\.[0-9]*)?)|(?:\.[0-9]+))(?:[eE][+\-]?[0-9]+)?`
	hexFloatConstant   = `0[xX](?:[0-9a-fA-F]+(?:\.[0-9a-fA-F]*)?|[0-9a-fA-F]*\.[0-9a-fA-F]+)[pP][+\-]?[0-9]+`
	floatingConstant   = `(?:` + hexFloatConstant + `)|(?:` + decFloatConstant + `)[flFL]?`
	cchar              = escChar(`">`)
	schar              = escChar(`'>`)
	hchar              = escChar(`'"`) // h-char-sequence: anything but '>' or newline
	qchar              = schar         // q-char-sequence: anything but '"' or newline
	charConstant       = `L?'(?:` + cchar + `)+'`
	constantPattern    = `(?:` + floatingConstant + `)|(?:` + integerConstant + `)|(?:` + charConstant + `)`
	stringLitPattern   = `L?"(?:` + schar + `)*"`
	headerNamePattern  = `(?:<(?:` + hchar + `)+>)|(?:"(?:` + qchar + `)+")`
	preprocessorPatt   = `#[^\n]*`
	commentPattern     = `(?:/\*(?:.|\n)*?\*/)|(?://[^\n]*)`
	identifierPattern  = `[a-zA-Z_][a-zA-Z0-9_]*`
)

// baseIgnore is the whitespace this lexer configuration always skips,
// regardless of any caller-supplied extra ignore characters.
const baseIgnore = " \t\r\n"

// LexerConfig builds the ordered, named-regex lexer configuration for the
// C subset: ignore whitespace, prefer PREPROCESSOR/COMMENT/HEADERNAME and
// KEYWORD over the generic IDENTIFIER on length ties.
func LexerConfig() lexer.Config {
	return LexerConfigWithIgnore("")
}

// LexerConfigWithIgnore is LexerConfig with additional characters treated
// as ignorable between tokens, letting a config.Config widen the skipped
// set (e.g. a form-feed used for page breaks in generated source) beyond
// the built-in whitespace.
func LexerConfigWithIgnore(extra string) lexer.Config {
	names := []string{
		ClassPreprocessor, ClassComment, ClassHeaderName, ClassKeyword,
		ClassIdentifier, ClassConstant, ClassString, ClassPunctuator,
	}
	patterns := []string{
		preprocessorPatt, commentPattern, headerNamePattern, alternation(keywords),
		identifierPattern, constantPattern, stringLitPattern, alternation(punctuators),
	}
	cfg, err := lexer.NewConfig(names, patterns, baseIgnore+extra)
	if err != nil {
		panic("cgrammar: bad built-in lexer config: " + err.Error())
	}
	return cfg
}
