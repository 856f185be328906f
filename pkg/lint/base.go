package lint

import (
	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/syntax"
)

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with
// interface methods.
type BaseRule struct {
	id      string
	name    string
	desc    string
	tags    []string
	kinds   []syntax.Kind
	fixable bool
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, kinds []syntax.Kind, fixable bool) BaseRule {
	return BaseRule{
		id:      id,
		name:    name,
		desc:    desc,
		tags:    tags,
		kinds:   kinds,
		fixable: fixable,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DocURL returns the documentation link for this rule.
func (r *BaseRule) DocURL() string {
	return "https://flintlabs.github.io/flint/rules/" + r.id
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// DefaultSeverity returns the default severity for this rule.
// Override this method to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityWarning
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// CanFix returns whether this rule can propose automated fixes.
func (r *BaseRule) CanFix() bool {
	return r.fixable
}

// Kinds returns the node kinds this rule subscribes to.
func (r *BaseRule) Kinds() []syntax.Kind {
	return r.kinds
}

// Evaluate must be overridden by concrete rule implementations.
// The default implementation returns no findings.
func (r *BaseRule) Evaluate(_ *RuleContext, _ *syntax.Node) ([]Finding, error) {
	return nil, nil
}
