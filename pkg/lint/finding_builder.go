package lint

import (
	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/fix"
	"github.com/flintlabs/flint/pkg/syntax"
)

// FindingBuilder helps construct Finding values.
type FindingBuilder struct {
	finding Finding
}

// NewFinding starts building a finding for the given rule and node.
func NewFinding(ruleID string, node *syntax.Node, message string) *FindingBuilder {
	var span syntax.Span
	if node != nil {
		span = node.Span
	}

	return &FindingBuilder{
		finding: Finding{
			RuleID:  ruleID,
			Message: message,
			Span:    span,
		},
	}
}

// NewFindingAt starts building a finding at a specific span.
func NewFindingAt(ruleID, path string, span syntax.Span, message string) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			RuleID:  ruleID,
			Message: message,
			Path:    path,
			Span:    span,
		},
	}
}

// WithSeverity sets the severity.
func (b *FindingBuilder) WithSeverity(s config.Severity) *FindingBuilder {
	b.finding.Severity = s
	return b
}

// WithSuggestion sets a human-readable remediation hint.
func (b *FindingBuilder) WithSuggestion(s string) *FindingBuilder {
	b.finding.Suggestion = s
	return b
}

// WithFix attaches a fix proposal.
func (b *FindingBuilder) WithFix(p fix.Proposal) *FindingBuilder {
	b.finding.Fixes = append(b.finding.Fixes, p)
	return b
}

// Build returns the constructed Finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
