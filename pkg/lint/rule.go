// Package lint provides the rule engine, findings, and registry for flint.
package lint

import (
	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/fix"
	"github.com/flintlabs/flint/pkg/syntax"
)

// Finding represents a single issue reported by a rule.
type Finding struct {
	// RuleID is the identifier of the rule that produced this finding.
	RuleID string

	// RuleName is the human-readable name of the rule
	// (e.g., "prefer-collection-literal").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the finding. Stamped from
	// the rule's resolved severity at emission time.
	Severity config.Severity

	// Path is the path of the document containing the issue.
	Path string

	// Span is the source byte range the finding points at.
	Span syntax.Span

	// Suggestion is an optional human-readable remediation hint.
	Suggestion string

	// Fixes contains proposed automated fixes (may be empty).
	Fixes []fix.Proposal
}

// HasFix returns true if this finding carries at least one proposal.
func (f *Finding) HasFix() bool {
	return len(f.Fixes) > 0
}

// Rule defines the interface that all flint rules implement.
//
// A rule is a unit of polymorphic behavior over the capability set
// {declares interest in node kinds, evaluates a node, optionally emits
// findings}. Rules are read-only with respect to the tree, the
// semantic index, and each other's findings.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "FL0021").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DocURL returns the documentation link for this rule.
	DocURL() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags (e.g., ["style", "collections"]).
	Tags() []string

	// CanFix returns whether this rule can propose automated fixes.
	CanFix() bool

	// Kinds returns the node kinds this rule subscribes to. The engine
	// invokes Evaluate only for nodes of these kinds.
	Kinds() []syntax.Kind

	// Evaluate inspects one node and returns zero or more findings.
	//
	// Rules must:
	//   - Treat unresolved semantic queries as "does not apply".
	//   - Use the context's resolver for all semantic questions.
	//   - Return an error only for internal failures, not for issues.
	Evaluate(ctx *RuleContext, node *syntax.Node) ([]Finding, error)
}
