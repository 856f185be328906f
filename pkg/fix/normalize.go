package fix

import "github.com/flintlabs/flint/pkg/syntax"

// Normalize runs the best-effort simplification pass over a rewritten
// tree and returns a new root. It is shape-preserving for untouched
// code; the simplifications are local cleanups a rewrite may leave
// behind:
//
//   - empty argument-list and initializer-list nodes are dropped from
//     collection literals (a synthesized literal needs neither),
//   - adjacent interp-text siblings are merged into one segment,
//   - raw nodes with no span and no payload are dropped.
//
// Normalization never fails; anything it does not recognize is kept
// verbatim.
func Normalize(root *syntax.Node) *syntax.Node {
	if root == nil {
		return nil
	}

	var kept []*syntax.Node
	for _, child := range root.Children() {
		norm := Normalize(child)
		if norm == nil || dropFrom(root, norm) {
			continue
		}

		// Merge runs of interp-text segments.
		if norm.Kind == syntax.KindInterpText && len(kept) > 0 {
			last := kept[len(kept)-1]
			if last.Kind == syntax.KindInterpText {
				merged := syntax.NewNode(syntax.KindInterpText,
					syntax.NewSpan(last.Span.Start, norm.Span.End))
				merged.Text = last.Text + norm.Text
				kept[len(kept)-1] = merged
				continue
			}
		}

		kept = append(kept, norm)
	}

	out := cloneShallow(root)
	for _, c := range kept {
		out.Append(c)
	}
	return out
}

// dropFrom reports whether child should be removed from parent.
func dropFrom(parent, child *syntax.Node) bool {
	if parent.Kind == syntax.KindCollectionLiteral && child.ChildCount() == 0 {
		if child.Kind == syntax.KindArgumentList || child.Kind == syntax.KindInitializerList {
			return true
		}
	}
	if child.Kind == syntax.KindRaw && child.Span.IsEmpty() && child.Text == "" && child.ChildCount() == 0 {
		return true
	}
	return false
}

func cloneShallow(n *syntax.Node) *syntax.Node {
	out := syntax.NewNode(n.Kind, n.Span)
	out.Name = n.Name
	out.Text = n.Text
	return out
}
