// Package fix provides the fix-proposal model and tree-rewrite
// application logic, single and batched.
package fix

import (
	"errors"

	"github.com/flintlabs/flint/pkg/syntax"
)

// ErrInapplicable reports that a proposal cannot be applied to the
// given tree (its target is gone or the rewrite declined). Callers
// treat it as "skip", never as a failure of the whole operation.
var ErrInapplicable = errors.New("fix: proposal not applicable")

// RewriteFunc is a pure tree transform. It receives the current root
// and the located target node and returns a replacement for the target.
// It must not mutate either argument, must be idempotent, and must not
// assume any other proposal has been applied.
type RewriteFunc func(root, target *syntax.Node) (*syntax.Node, error)

// Proposal describes one automated fix attached to a finding.
type Proposal struct {
	// Title is the human-readable fix description.
	Title string

	// Transform is the stable transform identifier (e.g.,
	// "collection-literal/empty"), used for grouping and reporting.
	Transform string

	// TargetKind and TargetSpan locate the node the rewrite applies
	// to. Rewrites preserve spans of untouched nodes, so a span plus
	// kind re-locates the target across earlier batch applications.
	TargetKind syntax.Kind
	TargetSpan syntax.Span

	// Rewrite produces the replacement node for the target.
	Rewrite RewriteFunc
}

// IsValid returns true if the proposal is well formed.
func (p Proposal) IsValid() bool {
	return p.Rewrite != nil && p.TargetSpan.IsValid()
}
