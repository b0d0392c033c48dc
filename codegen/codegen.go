// Package codegen emits a grammar loaded by ebnf.Parse as Go source: a
// package-level grammar.Grammar value built from literal
// grammar.Rule/Alternative/Item/Leaf constructors, so a generated parser
// needs no EBNF text or file I/O at runtime. Grounded on
// cmd/ahi/cmd_ebnf.go, which drives the same grammar/lex/parse packages
// this project's equivalents are modeled on, just interactively instead
// of emitting to a file.
package codegen

import (
	"fmt"
	"strings"

	"github.com/loom-lang/cminify/grammar"
)

// Generate renders g as a self-contained Go source file in package pkg,
// exposing the grammar as varName and the given start rule as a
// constant, ready to drive parse.Parse without re-reading any EBNF text.
func Generate(pkg, varName, startRule string, g *grammar.Grammar) (string, error) {
	if _, ok := g.Rule(startRule); !ok {
		return "", fmt.Errorf("codegen: start rule %q not found in grammar", startRule)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by cminify's parsergen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"github.com/loom-lang/cminify/grammar\"\n\n")
	fmt.Fprintf(&b, "// %sStartRule is the entry point for a full parse against %s.\n", exportedName(varName), varName)
	fmt.Fprintf(&b, "const %sStartRule = %q\n\n", exportedName(varName), startRule)
	fmt.Fprintf(&b, "var %s = grammar.New([]grammar.Rule{\n", varName)
	for _, rule := range g.Rules() {
		writeRule(&b, rule, 1)
	}
	b.WriteString("})\n")
	return b.String(), nil
}

func exportedName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("\t", depth))
}

func writeRule(b *strings.Builder, rule grammar.Rule, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "{\n")
	indent(b, depth+1)
	fmt.Fprintf(b, "Name: %q,\n", rule.Name)
	indent(b, depth+1)
	b.WriteString("Alternatives: []grammar.Alternative{\n")
	for _, alt := range rule.Alternatives {
		writeAlternative(b, alt, depth+2)
	}
	indent(b, depth+1)
	b.WriteString("},\n")
	indent(b, depth)
	b.WriteString("},\n")
}

func writeAlternative(b *strings.Builder, alt grammar.Alternative, depth int) {
	indent(b, depth)
	b.WriteString("{\n")
	indent(b, depth+1)
	b.WriteString("Items: []grammar.Item{\n")
	for _, item := range alt.Items {
		writeItem(b, item, depth+2)
	}
	indent(b, depth+1)
	b.WriteString("},\n")
	indent(b, depth)
	b.WriteString("},\n")
}

func writeItem(b *strings.Builder, item grammar.Item, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "{Modifier: %s, Leaves: []grammar.Leaf{", modifierName(item.Modifier))
	for i, leaf := range item.Leaves {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(leafExpr(leaf))
	}
	b.WriteString("}},\n")
}

func modifierName(m grammar.Modifier) string {
	switch m {
	case grammar.Optional:
		return "grammar.Optional"
	case grammar.Repeat:
		return "grammar.Repeat"
	default:
		return "grammar.Required"
	}
}

func leafExpr(leaf grammar.Leaf) string {
	switch leaf.Kind {
	case grammar.TerminalLeaf:
		return fmt.Sprintf("grammar.Terminal(%q)", leaf.Value)
	case grammar.LiteralLeaf:
		return fmt.Sprintf("grammar.Literal(%q)", leaf.Value)
	default:
		return fmt.Sprintf("grammar.Nonterminal(%q)", leaf.Value)
	}
}
