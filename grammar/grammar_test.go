package grammar

import "testing"

func TestValidateCatchesUndefinedNonterminal(t *testing.T) {
	g := New([]Rule{
		{Name: "start", Alternatives: []Alternative{
			{Items: []Item{{Leaves: []Leaf{Nonterminal("missing")}}}},
		}},
	})
	errs := Validate(g)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestValidateCatchesEmptyRepeat(t *testing.T) {
	g := New([]Rule{
		{Name: "start", Alternatives: []Alternative{
			{Items: []Item{{Modifier: Repeat, Leaves: nil}}},
		}},
	})
	errs := Validate(g)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
}

func TestValidateAcceptsWellFormedGrammar(t *testing.T) {
	g := New([]Rule{
		{Name: "start", Alternatives: []Alternative{
			{Items: []Item{{Leaves: []Leaf{Terminal("IDENTIFIER")}}}},
		}},
	})
	if errs := Validate(g); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestRuleLookupAndOrderPreserved(t *testing.T) {
	g := New([]Rule{
		{Name: "b", Alternatives: []Alternative{{Items: []Item{{Leaves: []Leaf{Literal("x")}}}}}},
		{Name: "a", Alternatives: []Alternative{{Items: []Item{{Leaves: []Leaf{Literal("y")}}}}}},
	})
	if _, ok := g.Rule("missing"); ok {
		t.Fatal("expected lookup of an undeclared rule to fail")
	}
	rules := g.Rules()
	if len(rules) != 2 || rules[0].Name != "b" || rules[1].Name != "a" {
		t.Fatalf("got %v, want declaration order [b a]", rules)
	}
}
