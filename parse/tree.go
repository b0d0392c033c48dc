// Package parse implements the grammar-driven recursive-descent parser
// and its parse-tree output (Node/Part/Child).
package parse

import "github.com/loom-lang/cminify/token"

// Child is a part's leaf result: either a matched Token or a child Node.
type Child struct {
	Token *token.Token
	Node  *Node
}

// IsToken reports whether this child is a terminal/literal match.
func (c Child) IsToken() bool { return c.Token != nil }

func childToken(t token.Token) Child { return Child{Token: &t} }
func childNode(n *Node) Child        { return Child{Node: n} }

// Part is one item's worth of matched children, in order.
type Part []Child

// Node is a matched rule: its name plus the parts produced by its winning
// alternative, one Part per item of that alternative.
type Node struct {
	Rule  string
	Parts []Part
}

// Tokens flattens a Node back into the token sequence it consumed, in
// left-to-right order: the concatenation of all terminal leaves under a
// node, in order, equals the slice of input the node consumed.
func (n *Node) Tokens() []token.Token {
	var out []token.Token
	for _, part := range n.Parts {
		for _, child := range part {
			if child.IsToken() {
				out = append(out, *child.Token)
			} else {
				out = append(out, child.Node.Tokens()...)
			}
		}
	}
	return out
}
