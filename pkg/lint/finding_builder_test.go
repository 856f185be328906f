package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/fix"
	"github.com/flintlabs/flint/pkg/syntax"
)

func TestNewFinding(t *testing.T) {
	node := syntax.Ident("x", syntax.NewSpan(5, 6))

	f := NewFinding("FL0021", node, "prefer a literal").
		WithSeverity(config.SeverityInfo).
		WithSuggestion("use [..] instead").
		Build()

	assert.Equal(t, "FL0021", f.RuleID)
	assert.Equal(t, "prefer a literal", f.Message)
	assert.Equal(t, syntax.NewSpan(5, 6), f.Span)
	assert.Equal(t, config.SeverityInfo, f.Severity)
	assert.Equal(t, "use [..] instead", f.Suggestion)
	assert.False(t, f.HasFix())
}

func TestNewFinding_NilNode(t *testing.T) {
	f := NewFinding("FL0021", nil, "m").Build()
	assert.True(t, f.Span.IsEmpty())
}

func TestNewFindingAt(t *testing.T) {
	f := NewFindingAt("FL0011", "app.tree.json", syntax.NewSpan(1, 4), "m").Build()

	assert.Equal(t, "app.tree.json", f.Path)
	assert.Equal(t, syntax.NewSpan(1, 4), f.Span)
}

func TestFindingBuilder_WithFix(t *testing.T) {
	node := syntax.Ident("x", syntax.NewSpan(5, 6))
	p := fix.Proposal{
		Transform:  "test/noop",
		TargetKind: syntax.KindIdentifier,
		TargetSpan: node.Span,
		Rewrite:    func(_, target *syntax.Node) (*syntax.Node, error) { return target, nil },
	}

	f := NewFinding("FL0021", node, "m").WithFix(p).Build()

	assert.True(t, f.HasFix())
	assert.Len(t, f.Fixes, 1)
	assert.Equal(t, "test/noop", f.Fixes[0].Transform)
}
