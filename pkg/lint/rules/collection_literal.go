package rules

import (
	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/fix"
	"github.com/flintlabs/flint/pkg/lint"
	"github.com/flintlabs/flint/pkg/syntax"
)

// Transform identifiers for the collection-literal fixes.
const (
	TransformLiteralEmpty    = "collection-literal/empty"
	TransformLiteralElements = "collection-literal/elements"
	TransformLiteralSpread   = "collection-literal/spread"
)

// defaultMaxLiteralElements is the initializer-size cutoff above which
// the literal form is judged to hurt rather than help readability.
const defaultMaxLiteralElements = 10

// CollectionLiteralRule suggests replacing explicit construction of the
// growable-list container with an inline collection literal.
//
// The classification runs in a precise order: resolve the constructed
// type; bare constructions always fire; initializer lists fire only
// when small and simple; a single constructor argument fires with a
// spread-style fix unless it is a deferred-transform chain, which is
// never materialized.
type CollectionLiteralRule struct {
	lint.BaseRule
}

// NewCollectionLiteralRule creates the prefer-collection-literal rule.
func NewCollectionLiteralRule() *CollectionLiteralRule {
	return &CollectionLiteralRule{
		BaseRule: lint.NewBaseRule(
			"FL0021",
			"prefer-collection-literal",
			"Constructions of the growable-list type should use the inline collection-literal syntax",
			[]string{"style", "collections"},
			[]syntax.Kind{syntax.KindObjectCreation},
			true,
		),
	}
}

// DefaultSeverity returns Info: the rewrite is stylistic.
func (r *CollectionLiteralRule) DefaultSeverity() config.Severity {
	return config.SeverityInfo
}

// Evaluate classifies one object-creation node.
func (r *CollectionLiteralRule) Evaluate(ctx *lint.RuleContext, node *syntax.Node) ([]lint.Finding, error) {
	// Step 1: the constructed type must be the growable list.
	constructed := ctx.Resolver.TypeOf(node)
	listType := ctx.Resolver.LookupType(GrowableListType)
	if !ctx.Resolver.Same(constructed, listType) {
		return nil, nil
	}

	argList := node.FirstOfKind(syntax.KindArgumentList)
	init := node.FirstOfKind(syntax.KindInitializerList)
	argCount := 0
	if argList != nil {
		argCount = argList.ChildCount()
	}

	// Step 2: bare construction, unconditional finding.
	if argCount == 0 && init == nil {
		return r.emit(ctx, node, TransformLiteralEmpty), nil
	}

	// Step 3: initializer list, finding only when simple.
	if init != nil {
		if argCount > 0 {
			return nil, nil
		}
		maxElements := ctx.OptionInt("max_elements", defaultMaxLiteralElements)
		if !isSimpleInitializer(init, maxElements) {
			return nil, nil
		}
		return r.emit(ctx, node, TransformLiteralElements), nil
	}

	// Step 4: exactly one constructor argument.
	if argCount == 1 {
		arg := argList.Child(0)
		if isChainCall(arg) {
			// Materializing a lazy pipeline is not equivalent.
			return nil, nil
		}
		return r.emit(ctx, node, TransformLiteralSpread), nil
	}

	// Step 5: anything else, no finding.
	return nil, nil
}

// emit builds the finding and, when the language configuration allows
// the literal syntax, attaches the rewrite. The fix gate runs at
// proposal-registration time; the finding itself is unconditional.
func (r *CollectionLiteralRule) emit(
	ctx *lint.RuleContext,
	node *syntax.Node,
	transform string,
) []lint.Finding {
	builder := lint.NewFinding(r.ID(), node,
		"Use an inline collection literal instead of explicit construction").
		WithSuggestion("Replace the construction with a collection literal")

	if ctx.LiteralFixesSupported() {
		builder.WithFix(literalProposal(node, transform))
	}

	return []lint.Finding{builder.Build()}
}

// literalProposal builds the pure rewrite for one classified creation.
// The synthesized literal keeps the creation node's span so untouched
// siblings remain addressable during batch application.
func literalProposal(node *syntax.Node, transform string) fix.Proposal {
	span := node.Span
	return fix.Proposal{
		Title:      "Replace with collection literal",
		Transform:  transform,
		TargetKind: syntax.KindObjectCreation,
		TargetSpan: span,
		Rewrite: func(_, target *syntax.Node) (*syntax.Node, error) {
			switch transform {
			case TransformLiteralElements:
				// Re-read the elements from the located target so the
				// rewrite holds no reference into a superseded tree.
				init := target.FirstOfKind(syntax.KindInitializerList)
				if init == nil {
					return nil, fix.ErrInapplicable
				}
				return syntax.CollectionLiteral(span, init.Children()...), nil
			case TransformLiteralSpread:
				argList := target.FirstOfKind(syntax.KindArgumentList)
				if argList == nil || argList.ChildCount() != 1 {
					return nil, fix.ErrInapplicable
				}
				return syntax.CollectionLiteral(span,
					syntax.Spread(argList.Child(0), span)), nil
			default:
				return syntax.CollectionLiteral(span), nil
			}
		},
	}
}

// isSimpleInitializer reports whether every initializer element is a
// literal, a bare identifier, or a simple member access, and the
// element count is within the cutoff.
func isSimpleInitializer(init *syntax.Node, maxElements int) bool {
	elements := init.Children()
	if len(elements) > maxElements {
		return false
	}
	for _, el := range elements {
		if !isSimpleElement(el) {
			return false
		}
	}
	return true
}

// isSimpleElement classifies one initializer element.
func isSimpleElement(n *syntax.Node) bool {
	if n.Kind.IsLiteral() || n.Kind == syntax.KindIdentifier {
		return true
	}
	return isSimpleAccess(n)
}

// isSimpleAccess reports whether n is a property/field access chain
// over identifiers only (a.b, a.b.c), with no calls or other
// expressions anywhere in the chain.
func isSimpleAccess(n *syntax.Node) bool {
	if n.Kind != syntax.KindMemberAccess {
		return false
	}
	operand := n.Child(0)
	if operand == nil {
		return false
	}
	if operand.Kind == syntax.KindIdentifier {
		return true
	}
	return isSimpleAccess(operand)
}

// isChainCall reports whether the argument is a call whose method name
// belongs to the deferred-transform set. Only the outermost call name
// decides: Where(...).Select(...) inside is irrelevant, the node given
// here is the full argument expression.
func isChainCall(arg *syntax.Node) bool {
	if arg == nil || arg.Kind != syntax.KindInvocation {
		return false
	}
	return chainMethodNames[arg.Name]
}
