/*
Package pnode defines the parse-tree data model the BNF compiler produces:
a closed sum of two node kinds, a rule node (a named, ordered list of
children) and a literal node (a leaf holding matched input verbatim).

The node shape is deliberately flat: there are no sibling or parent
back-links. A pnode.Node is built once by the BNF compiler and never
mutated afterward, so there is no need for in-place editing support --
NthChild and CountChildren below give the handful of traversal helpers
that are still useful for a read-only tree, indexing directly into the
ordered child slice.
*/
package pnode

import (
	"strconv"
	"strings"
)

// Node is either a Rule node or a Literal node.
type Node interface {
	// Show reconstructs the matched input: the concatenation, in
	// left-to-right depth-first order, of every literal leaf beneath this
	// node.
	Show() string

	// String renders the node's tagged structure for debugging, e.g.
	// rule(expr, [lit("1"), lit("+"), rule(expr, [...])]).
	String() string

	isNode()
}

// Rule is an interior node: a rule name together with the ordered sequence
// of child nodes the winning BNF alternative produced.
type Rule struct {
	Name     string
	Children []Node
}

// NewRule builds a Rule node. name must be nonempty.
func NewRule(name string, children []Node) *Rule {
	return &Rule{Name: name, Children: children}
}

func (r *Rule) isNode() {}

// Show concatenates the Show of every child in order.
func (r *Rule) Show() string {
	var b strings.Builder
	for _, c := range r.Children {
		b.WriteString(c.Show())
	}
	return b.String()
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString("rule(")
	b.WriteString(r.Name)
	b.WriteString(", [")
	for i, c := range r.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteString("])")
	return b.String()
}

// Literal is a leaf node holding a literal string matched verbatim from the
// input.
type Literal struct {
	Text string
}

// NewLiteral builds a Literal node.
func NewLiteral(text string) *Literal {
	return &Literal{Text: text}
}

func (l *Literal) isNode() {}

func (l *Literal) Show() string { return l.Text }

func (l *Literal) String() string {
	return "lit(" + strconv.Quote(l.Text) + ")"
}
