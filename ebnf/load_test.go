package ebnf

import (
	"testing"

	"github.com/loom-lang/cminify/grammar"
)

// TestParseLoadsRulesWithOptionalAndRepeatItems exercises a small
// two-rule grammar covering both an optional item and a repeat item.
func TestParseLoadsRulesWithOptionalAndRepeatItems(t *testing.T) {
	src := "expr : factor [ '+' expr ]\n" +
		"factor : INT { '*' INT }\n\n"

	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rules := g.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}

	expr, ok := g.Rule("expr")
	if !ok {
		t.Fatal("missing rule expr")
	}
	if len(expr.Alternatives) != 1 {
		t.Fatalf("expr: expected 1 alternative, got %d", len(expr.Alternatives))
	}
	items := expr.Alternatives[0].Items
	if len(items) != 2 {
		t.Fatalf("expr: expected 2 items, got %d", len(items))
	}
	if items[0].Modifier != grammar.Required {
		t.Errorf("expr item 0 should be required")
	}
	if items[1].Modifier != grammar.Optional {
		t.Errorf("expr item 1 should be optional")
	}

	factor, ok := g.Rule("factor")
	if !ok {
		t.Fatal("missing rule factor")
	}
	fitems := factor.Alternatives[0].Items
	if len(fitems) != 2 {
		t.Fatalf("factor: expected 2 items, got %d", len(fitems))
	}
	if fitems[1].Modifier != grammar.Repeat {
		t.Errorf("factor item 1 should be repeat")
	}
}

func TestParseRejectsNestedGroups(t *testing.T) {
	_, err := Parse("a : [ { X } ]\n\n")
	if err == nil {
		t.Fatal("expected error for nested grouping")
	}
}

func TestParseRejectsUnbalancedGroup(t *testing.T) {
	_, err := Parse("a : [ X\n\n")
	if err == nil {
		t.Fatal("expected error for unbalanced grouping")
	}
}

func TestParseMultipleAlternatives(t *testing.T) {
	g, err := Parse("a : 'x'\n  | 'y'\n\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rule, ok := g.Rule("a")
	if !ok || len(rule.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %+v", rule)
	}
}
