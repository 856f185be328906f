package syntax

// Construction helpers for synthesized nodes and test trees. The front
// end produces real trees via the dump decoder; these helpers exist for
// fixes that synthesize replacement nodes and for building fixtures.

// Ident creates an identifier node.
func Ident(name string, span Span) *Node {
	n := NewNode(KindIdentifier, span)
	n.Name = name
	return n
}

// Member creates a member-access node for operand.name.
func Member(operand *Node, name string, span Span) *Node {
	n := NewNode(KindMemberAccess, span)
	n.Name = name
	n.Append(operand)
	return n
}

// Invoke creates an invocation node calling callee with args.
// The invocation's Name mirrors the invoked method name so chain
// classification can read it without descending into the callee.
func Invoke(callee *Node, span Span, args ...*Node) *Node {
	n := NewNode(KindInvocation, span)
	n.Name = callee.Name
	n.Append(callee)
	argList := NewNode(KindArgumentList, span)
	for _, a := range args {
		argList.Append(a)
	}
	n.Append(argList)
	return n
}

// NumberLit creates a numeric literal node.
func NumberLit(text string, span Span) *Node {
	n := NewNode(KindNumericLiteral, span)
	n.Text = text
	return n
}

// StringLit creates a string literal node.
func StringLit(text string, span Span) *Node {
	n := NewNode(KindStringLiteral, span)
	n.Text = text
	return n
}

// BoolLit creates a boolean literal node.
func BoolLit(text string, span Span) *Node {
	n := NewNode(KindBoolLiteral, span)
	n.Text = text
	return n
}

// CollectionLiteral creates a collection-literal node with the given
// elements, deep-copying each so the new node owns its subtree.
func CollectionLiteral(span Span, elements ...*Node) *Node {
	n := NewNode(KindCollectionLiteral, span)
	for _, el := range elements {
		n.Append(deepCopy(el))
	}
	return n
}

// Spread creates a spread element wrapping a deep copy of expr.
func Spread(expr *Node, span Span) *Node {
	n := NewNode(KindSpreadElement, span)
	n.Append(deepCopy(expr))
	return n
}
