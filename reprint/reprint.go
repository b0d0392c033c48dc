// Package reprint turns a token slice back into source text, grounded on
// original_source/src/minify.py's format function.
package reprint

import (
	"strings"

	"github.com/loom-lang/cminify/cgrammar"
	"github.com/loom-lang/cminify/config"
	"github.com/loom-lang/cminify/token"
)

// needsSpace reports whether a space must separate prev and next so that
// re-lexing the output reproduces the same two tokens, rather than one
// longer token (e.g. two adjacent IDENTIFIERs read back as one). Adjacent
// punctuators always glom with no separator, even when the concatenation
// would re-lex as a different, longer punctuator.
func needsSpace(prev, next token.Token) bool {
	if prev.Class == cgrammar.ClassPreprocessor {
		return false // the newline already written after it is separator enough
	}
	wordlike := func(c string) bool {
		return c == cgrammar.ClassIdentifier || c == cgrammar.ClassKeyword || c == cgrammar.ClassConstant
	}
	return wordlike(prev.Class) && wordlike(next.Class)
}

// Format joins tokens into minified source text: a single space only
// between two word-like tokens (identifiers, keywords, constants), with
// adjacent punctuators glued as needsSpace describes, PREPROCESSOR lines
// terminated by a newline (unless opts disables it), no trailing
// whitespace.
func Format(tokens []token.Token, opts config.ReprintOptions) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			prev := tokens[i-1]
			if prev.Class == cgrammar.ClassPreprocessor {
				if opts.KeepPreprocessorNewlines {
					b.WriteByte('\n')
				} else {
					b.WriteByte(' ')
				}
			} else if needsSpace(prev, tok) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(tok.Lexeme)
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}
