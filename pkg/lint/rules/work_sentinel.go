package rules

import (
	"fmt"

	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/lint"
	"github.com/flintlabs/flint/pkg/syntax"
)

// WorkSentinelRule flags accesses to the shared work-token sentinel
// members inside routines that already receive a richer work-state
// value. Passing the sentinel onward silently detaches the callee from
// the caller's cancellation, so inside such routines the sentinel is
// at best redundant and usually a bug.
//
// No fix: the correct replacement is whichever in-scope parameter the
// author meant to thread through.
type WorkSentinelRule struct {
	lint.BaseRule
}

// NewWorkSentinelRule creates the forbidden-sentinel rule.
func NewWorkSentinelRule() *WorkSentinelRule {
	return &WorkSentinelRule{
		BaseRule: lint.NewBaseRule(
			"FL0011",
			"no-work-token-sentinel",
			"Work-token sentinels must not be used where a work-state parameter is in scope",
			[]string{"correctness", "cancellation"},
			[]syntax.Kind{syntax.KindMemberAccess},
			false,
		),
	}
}

// DefaultSeverity returns Error: the sentinel swallows cancellation.
func (r *WorkSentinelRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Evaluate checks one member-access node.
func (r *WorkSentinelRule) Evaluate(ctx *lint.RuleContext, node *syntax.Node) ([]lint.Finding, error) {
	if !workTokenSentinels[node.Name] {
		return nil, nil
	}

	// The member must actually be declared on the work-token type;
	// unrelated members sharing a sentinel name do not count.
	sym := ctx.Resolver.ResolveSymbol(node)
	tokenType := ctx.Resolver.LookupType(WorkTokenType)
	if sym == nil || !ctx.Resolver.Same(sym.Container, tokenType) {
		return nil, nil
	}

	routine := node.Enclosing(syntax.KindRoutineDecl)
	if routine == nil {
		return nil, nil
	}

	param := richerWorkParam(ctx, routine)
	if param == nil {
		return nil, nil
	}

	paramName := param.Name
	if paramName == "" {
		paramName = "the work-state parameter"
	}

	finding := lint.NewFinding(r.ID(), node,
		fmt.Sprintf("%s.%s used although %s is in scope", WorkTokenType, node.Name, paramName)).
		WithSuggestion(fmt.Sprintf("Thread %s through instead of the sentinel", paramName)).
		Build()
	return []lint.Finding{finding}, nil
}

// richerWorkParam returns the first parameter of the enclosing routine
// whose type is the work token itself or implements the work-context
// interface, or nil when the signature exposes neither.
func richerWorkParam(ctx *lint.RuleContext, routine *syntax.Node) *syntax.Node {
	paramList := routine.FirstOfKind(syntax.KindParamList)
	if paramList == nil {
		return nil
	}

	token := ctx.Resolver.LookupType(WorkTokenType)
	workContext := ctx.Resolver.LookupType(WorkContextType)

	for _, param := range paramList.Children() {
		if param.Kind != syntax.KindParam {
			continue
		}
		paramType := ctx.Resolver.TypeOf(param)
		if paramType == nil {
			continue
		}
		if ctx.Resolver.Same(paramType, token) || ctx.Resolver.Same(paramType, workContext) {
			return param
		}
		if workContext != nil && ctx.Resolver.Implements(paramType, workContext) {
			return param
		}
	}
	return nil
}
