package fix

import (
	"errors"
	"fmt"
	"sort"

	"github.com/flintlabs/flint/pkg/syntax"
)

// ApplyOne applies a single proposal to the document and runs the
// normalization pass over the result. The input document is unchanged.
// Returns ErrInapplicable if the target cannot be located.
func ApplyOne(doc *syntax.Document, p Proposal) (*syntax.Document, error) {
	if !p.IsValid() {
		return nil, ErrInapplicable
	}

	root, err := applyTo(doc.Root, p)
	if err != nil {
		return nil, err
	}

	return doc.WithRoot(Normalize(root)), nil
}

// BatchResult reports the outcome of ApplyAll.
type BatchResult struct {
	// Doc is the rewritten document.
	Doc *syntax.Document

	// Applied contains the proposals that were applied, in source order.
	Applied []Proposal

	// Skipped contains proposals dropped because their target span
	// overlapped or nested with an earlier-starting accepted one, or
	// because their target could not be located.
	Skipped []Proposal
}

// ApplyAll applies a set of proposals from one analysis pass to a
// single document in a batch, then normalizes once.
//
// Proposals are ordered by target span start (then end); when two
// target spans overlap or nest, the later-starting proposal is skipped
// deterministically rather than failing the batch. Inapplicable
// survivors (target no longer present) are also skipped.
func ApplyAll(doc *syntax.Document, proposals []Proposal) (*BatchResult, error) {
	result := &BatchResult{Doc: doc}
	if len(proposals) == 0 {
		return result, nil
	}

	ordered := make([]Proposal, len(proposals))
	copy(ordered, proposals)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TargetSpan.Start != ordered[j].TargetSpan.Start {
			return ordered[i].TargetSpan.Start < ordered[j].TargetSpan.Start
		}
		return ordered[i].TargetSpan.End < ordered[j].TargetSpan.End
	})

	// Filter overlapping/nested targets, earlier start wins.
	accepted := make([]Proposal, 0, len(ordered))
	var lastSpan syntax.Span
	for _, p := range ordered {
		if !p.IsValid() {
			result.Skipped = append(result.Skipped, p)
			continue
		}
		if len(accepted) > 0 && p.TargetSpan.Overlaps(lastSpan) {
			result.Skipped = append(result.Skipped, p)
			continue
		}
		accepted = append(accepted, p)
		lastSpan = p.TargetSpan
	}

	root := doc.Root
	for _, p := range accepted {
		newRoot, err := applyTo(root, p)
		if errors.Is(err, ErrInapplicable) {
			result.Skipped = append(result.Skipped, p)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("apply %s: %w", p.Transform, err)
		}
		root = newRoot
		result.Applied = append(result.Applied, p)
	}

	result.Doc = doc.WithRoot(Normalize(root))
	return result, nil
}

// applyTo locates the proposal target in root and substitutes the
// rewritten node. No normalization.
func applyTo(root *syntax.Node, p Proposal) (*syntax.Node, error) {
	target := syntax.NodeAt(root, p.TargetKind, p.TargetSpan)
	if target == nil {
		return nil, ErrInapplicable
	}

	repl, err := p.Rewrite(root, target)
	if err != nil {
		return nil, err
	}
	if repl == nil {
		return nil, ErrInapplicable
	}

	newRoot := syntax.Replace(root, target, repl)
	if newRoot == nil {
		return nil, ErrInapplicable
	}
	return newRoot, nil
}
