package rules

import (
	"fmt"

	"github.com/flintlabs/flint/pkg/lint"
	"github.com/flintlabs/flint/pkg/sem"
	"github.com/flintlabs/flint/pkg/syntax"
)

// ConcurrentAccessorRule flags calls to the get-or-create convenience
// method on receivers whose static type is the concurrent map. The
// convenience method reads then writes without holding the map's
// internal synchronization across both steps, so concurrent callers
// can create the value twice.
//
// No fix: choosing the correct thread-safe replacement needs human
// judgment about the value factory's side effects.
type ConcurrentAccessorRule struct {
	lint.BaseRule
}

// NewConcurrentAccessorRule creates the unsafe-accessor rule.
func NewConcurrentAccessorRule() *ConcurrentAccessorRule {
	return &ConcurrentAccessorRule{
		BaseRule: lint.NewBaseRule(
			"FL0004",
			"no-unsafe-map-get-or-create",
			"The get-or-create accessor is not atomic on concurrent maps",
			[]string{"correctness", "concurrency"},
			[]syntax.Kind{syntax.KindInvocation},
			false,
		),
	}
}

// Evaluate checks one invocation node.
func (r *ConcurrentAccessorRule) Evaluate(ctx *lint.RuleContext, node *syntax.Node) ([]lint.Finding, error) {
	sym := ctx.Resolver.ResolveSymbol(node)
	if sym == nil || sym.Kind != sem.SymbolMethod || sym.Name != GetOrCreateMethod {
		return nil, nil
	}

	// The symbol must be the known utility, not any same-named method.
	utility := ctx.Resolver.LookupType(MapUtilType)
	if !ctx.Resolver.Same(sym.Container, utility) {
		return nil, nil
	}

	// The receiver's static type decides: the accessor is fine on
	// plain maps.
	callee := node.FirstOfKind(syntax.KindMemberAccess)
	if callee == nil {
		return nil, nil
	}
	receiver := callee.Child(0)
	if receiver == nil {
		return nil, nil
	}

	receiverType := ctx.Resolver.TypeOf(receiver)
	concurrentMap := ctx.Resolver.LookupType(ConcurrentMapType)
	if !ctx.Resolver.Same(receiverType, concurrentMap) {
		return nil, nil
	}

	finding := lint.NewFinding(r.ID(), node,
		fmt.Sprintf("%s is not atomic on %s; concurrent callers may run the value factory twice",
			GetOrCreateMethod, ConcurrentMapType)).
		WithSuggestion("Use the map's own atomic accessor or guard the call").
		Build()
	return []lint.Finding{finding}, nil
}
