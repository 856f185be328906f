// Package syntax provides the analyzer's view of a parsed program: a kinded,
// immutable node tree with byte spans, produced by an external front end and
// consumed read-only by rules. Rewrites never mutate; see Replace.
package syntax

// Node is a single node in the program tree.
//
// Nodes are treated as immutable after construction. The Parent pointer is a
// non-owning back-reference used only for ancestor lookups; all structural
// changes go through Replace, which returns a new tree.
//
// Invariant: the spans of a node's children are fully contained within the
// node's own span and do not overlap one another.
type Node struct {
	// Kind identifies what type of node this is.
	Kind Kind

	// Span is the byte range this node covers in the original source.
	Span Span

	// Name carries the identifier-like payload, when the kind has one:
	// the identifier text, the accessed member name, the invoked method
	// name, or the constructed type's source name.
	Name string

	// Text carries raw literal text for literal and interp-text nodes.
	Text string

	// Parent is the enclosing node, nil for the root.
	Parent *Node

	children []*Node
}

// NewNode creates a detached node with no children.
func NewNode(kind Kind, span Span) *Node {
	return &Node{Kind: kind, Span: span}
}

// Append attaches child to n and sets the back-reference.
// It is intended for tree construction only; built trees are immutable.
func (n *Node) Append(child *Node) *Node {
	child.Parent = n
	n.children = append(n.children, child)
	return n
}

// Children returns the ordered child nodes. Callers must not modify
// the returned slice.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the i-th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// FirstOfKind returns the first direct child of the given kind, or nil.
func (n *Node) FirstOfKind(kind Kind) *Node {
	for _, c := range n.children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// Enclosing walks the parent chain (starting at n itself) and returns the
// first node of the given kind, or nil if none exists.
func (n *Node) Enclosing(kind Kind) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == kind {
			return cur
		}
	}
	return nil
}

// clone returns a shallow copy of n with no parent and no children.
func (n *Node) clone() *Node {
	return &Node{
		Kind: n.Kind,
		Span: n.Span,
		Name: n.Name,
		Text: n.Text,
	}
}
