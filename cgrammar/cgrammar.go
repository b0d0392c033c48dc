package cgrammar

import (
	_ "embed"
	"fmt"

	"github.com/loom-lang/cminify/ebnf"
	"github.com/loom-lang/cminify/grammar"
)

//go:embed c.ebnf
var grammarSource string

// StartRule is the entry point for a full source file.
const StartRule = "translation_unit"

var cGrammar *grammar.Grammar

func init() {
	g, err := ebnf.Parse(grammarSource)
	if err != nil {
		panic("cgrammar: built-in grammar failed to load: " + err.Error())
	}
	if errs := grammar.Validate(g); len(errs) > 0 {
		panic(fmt.Sprintf("cgrammar: built-in grammar failed validation: %v", errs[0]))
	}
	cGrammar = g
}

// Grammar returns the loaded C grammar, parsed once at package init
// from the embedded EBNF source.
func Grammar() *grammar.Grammar { return cGrammar }
