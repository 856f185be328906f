package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/lint"
	"github.com/flintlabs/flint/pkg/sem"
	"github.com/flintlabs/flint/pkg/syntax"
)

// fixture assembles a one-unit document and its semantic index.
type fixture struct {
	root *syntax.Node
	ix   *sem.Index
}

func newFixture() *fixture {
	return &fixture{
		root: syntax.NewNode(syntax.KindSourceUnit, syntax.NewSpan(0, 1000)),
		ix:   sem.NewIndex(),
	}
}

func (f *fixture) doc() *syntax.Document {
	return syntax.NewDocument("demo.tree.json", nil, f.root)
}

// listCreation builds an object-creation of the growable list at span
// and records its type in the index. Optional parts are attached by
// the caller.
func (f *fixture) listCreation(span syntax.Span) *syntax.Node {
	creation := syntax.NewNode(syntax.KindObjectCreation, span)
	creation.Name = "List"
	f.ix.SetTypeOf(creation, f.ix.InternType(GrowableListType))
	return creation
}

// withArgs attaches an argument list holding the given expressions.
func withArgs(creation *syntax.Node, args ...*syntax.Node) *syntax.Node {
	argList := syntax.NewNode(syntax.KindArgumentList, creation.Span)
	for _, a := range args {
		argList.Append(a)
	}
	creation.Append(argList)
	return creation
}

// withInit attaches an initializer list holding the given elements.
func withInit(creation *syntax.Node, elements ...*syntax.Node) *syntax.Node {
	init := syntax.NewNode(syntax.KindInitializerList, creation.Span)
	for _, el := range elements {
		init.Append(el)
	}
	creation.Append(init)
	return creation
}

// analyze runs a single rule over the fixture through the engine.
func analyze(t *testing.T, rule lint.Rule, f *fixture, cfg *config.Config) *lint.Result {
	t.Helper()

	registry := lint.NewRegistry()
	registry.Register(rule)
	engine := lint.NewEngine(registry)

	result, err := engine.Analyze(context.Background(), f.doc(), f.ix, cfg)
	require.NoError(t, err)
	require.Empty(t, result.Faults)
	return result
}

// numberLits builds n numeric literal elements with distinct spans.
func numberLits(n int, base int) []*syntax.Node {
	out := make([]*syntax.Node, 0, n)
	for i := range n {
		start := base + i*2
		out = append(out, syntax.NumberLit("1", syntax.NewSpan(start, start+1)))
	}
	return out
}

// chainInvocation builds source.<method>(lambda) shaped as the front
// end dumps it: an invocation node named after the invoked method.
func chainInvocation(method string, span syntax.Span) *syntax.Node {
	callee := syntax.Member(syntax.Ident("source", span), method, span)
	return syntax.Invoke(callee, span)
}
