package syntax

// Replace returns a new tree in which target is replaced by repl.
// The input tree is never mutated. Returns nil if target is not
// reachable from root.
//
// The rebuilt tree carries fresh parent back-references throughout.
// Because parents are reachable from every node, subtrees cannot be
// shared between the old and new tree without the old tree observing
// new ancestors; the rebuild therefore copies the full tree, keeping
// kinds, spans, and payloads of untouched nodes identical.
func Replace(root, target, repl *Node) *Node {
	if root == nil || target == nil || repl == nil {
		return nil
	}

	newRoot, found := rebuild(root, target, repl)
	if !found {
		return nil
	}
	return newRoot
}

// rebuild copies n, substituting repl for target. The returned bool
// reports whether target was found in this subtree.
func rebuild(n, target, repl *Node) (*Node, bool) {
	if n == target {
		return deepCopy(repl), true
	}

	out := n.clone()
	found := false
	for _, child := range n.Children() {
		newChild, hit := rebuild(child, target, repl)
		found = found || hit
		out.Append(newChild)
	}
	return out, found
}

// deepCopy clones a subtree with fresh parent links.
func deepCopy(n *Node) *Node {
	out := n.clone()
	for _, child := range n.Children() {
		out.Append(deepCopy(child))
	}
	return out
}
