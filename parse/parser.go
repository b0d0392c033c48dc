package parse

import (
	"fmt"

	"github.com/loom-lang/cminify/grammar"
	"github.com/loom-lang/cminify/token"
)

// Error reports a failed top-level parse: the start rule never matched
// every token in the stream.
type Error struct {
	Start       string
	MaxPosition int
	TokenCount  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse: start rule %q failed to consume all %d tokens (max position reached: %d)",
		e.Start, e.TokenCount, e.MaxPosition)
}

type memoKey struct {
	rule string
	pos  int
}

type cacheEntry struct {
	node *Node
	pos  int
	ok   bool
}

// Parser drives one Parse call over a fixed token stream and grammar. Its
// memoization table is keyed by token position, so it is only valid for
// the lifetime of that one call — build a new Parser per input.
type Parser struct {
	grammar *grammar.Grammar
	tokens  []token.Token
	memo    map[memoKey]cacheEntry
	maxPos  int
}

// New creates a Parser for one token stream against one grammar.
func New(g *grammar.Grammar, tokens []token.Token) *Parser {
	return &Parser{
		grammar: g,
		tokens:  tokens,
		memo:    make(map[memoKey]cacheEntry),
	}
}

// MaxPosition returns the furthest token position reached by any
// successful leaf match so far, for diagnostics.
func (p *Parser) MaxPosition() int { return p.maxPos }

// Parse runs the grammar's start rule over the full token stream. It
// succeeds only if the start rule matches and consumes every token.
func Parse(g *grammar.Grammar, tokens []token.Token, start string) (*Node, error) {
	p := New(g, tokens)
	node, pos, ok := p.matchRule(start, 0)
	if ok && pos == len(tokens) {
		return clone(node), nil
	}
	return nil, &Error{Start: start, MaxPosition: p.maxPos, TokenCount: len(tokens)}
}

// matchLeaf matches a single Leaf at pos, consuming exactly one token for
// Terminal/Literal, or recursing into matchRule for Nonterminal.
func (p *Parser) matchLeaf(leaf grammar.Leaf, pos int) (Child, int, bool) {
	switch leaf.Kind {
	case grammar.NonterminalLeaf:
		node, newPos, ok := p.matchRule(leaf.Value, pos)
		if !ok {
			return Child{}, pos, false
		}
		return childNode(node), newPos, true
	default:
		if pos >= len(p.tokens) {
			return Child{}, pos, false
		}
		tok := p.tokens[pos]
		matched := false
		switch leaf.Kind {
		case grammar.LiteralLeaf:
			matched = tok.Lexeme == leaf.Value
		case grammar.TerminalLeaf:
			matched = tok.Class == leaf.Value
		}
		if !matched {
			return Child{}, pos, false
		}
		newPos := pos + 1
		if newPos > p.maxPos {
			p.maxPos = newPos
		}
		return childToken(tok), newPos, true
	}
}

// matchLeafSeq matches every leaf of an item in order, atomically: any
// single failure fails the whole sequence with no partial output.
func (p *Parser) matchLeafSeq(leaves []grammar.Leaf, pos int) (Part, int, bool) {
	part := make(Part, 0, len(leaves))
	cur := pos
	for _, leaf := range leaves {
		child, newPos, ok := p.matchLeaf(leaf, cur)
		if !ok {
			return nil, pos, false
		}
		part = append(part, child)
		cur = newPos
	}
	return part, cur, true
}

// matchAlternative matches one alternative of a rule in full: required
// items must match, optional items are skipped on failure, repeat items
// run until they stop matching.
func (p *Parser) matchAlternative(alt grammar.Alternative, pos int) ([]Part, int, bool) {
	parts := make([]Part, 0, len(alt.Items))
	cur := pos
	for _, item := range alt.Items {
		switch item.Modifier {
		case grammar.Optional:
			part, newPos, ok := p.matchLeafSeq(item.Leaves, cur)
			if ok {
				parts = append(parts, part)
				cur = newPos
			}
		case grammar.Repeat:
			for {
				part, newPos, ok := p.matchLeafSeq(item.Leaves, cur)
				if !ok {
					break
				}
				parts = append(parts, part)
				cur = newPos
			}
		default: // Required
			part, newPos, ok := p.matchLeafSeq(item.Leaves, cur)
			if !ok {
				return nil, pos, false
			}
			parts = append(parts, part)
			cur = newPos
		}
	}
	return parts, cur, true
}

// matchRule is the heart of the engine: it evaluates every alternative of
// a rule at this position and keeps the one that consumes the most
// tokens, memoizing the (possibly failing) result under (rule, pos).
func (p *Parser) matchRule(ruleName string, pos int) (*Node, int, bool) {
	key := memoKey{rule: ruleName, pos: pos}
	if entry, hit := p.memo[key]; hit {
		return entry.node, entry.pos, entry.ok
	}

	rule, defined := p.grammar.Rule(ruleName)
	if !defined {
		// An undefined rule reference should have been caught by
		// grammar.Validate before parsing; treat it as a hard failure
		// here rather than panicking mid-parse.
		p.memo[key] = cacheEntry{pos: pos, ok: false}
		return nil, pos, false
	}

	var best *Node
	bestPos := pos
	bestOK := false
	for _, alt := range rule.Alternatives {
		parts, newPos, ok := p.matchAlternative(alt, pos)
		if !ok {
			continue
		}
		if !bestOK || newPos > bestPos {
			best = &Node{Rule: ruleName, Parts: parts}
			bestPos = newPos
			bestOK = true
		}
	}

	p.memo[key] = cacheEntry{node: best, pos: bestPos, ok: bestOK}
	return best, bestPos, bestOK
}

// clone deep-copies a tree before handing it to the caller, so that later
// in-place mutation (the renamer) can never touch a subtree another memo
// entry still references.
func clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{Rule: n.Rule, Parts: make([]Part, len(n.Parts))}
	for i, part := range n.Parts {
		newPart := make(Part, len(part))
		for j, child := range part {
			if child.IsToken() {
				tok := *child.Token
				newPart[j] = childToken(tok)
			} else {
				newPart[j] = childNode(clone(child.Node))
			}
		}
		out.Parts[i] = newPart
	}
	return out
}
