package lint

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/fix"
	"github.com/flintlabs/flint/pkg/sem"
	"github.com/flintlabs/flint/pkg/syntax"
)

// engineDoc builds a document with two invocations and one identifier:
//
//	source-unit
//	├── invocation "First"  [10,20)
//	├── identifier "x"      [25,26)
//	└── invocation "Second" [30,40)
func engineDoc() *syntax.Document {
	root := syntax.NewNode(syntax.KindSourceUnit, syntax.NewSpan(0, 50))

	first := syntax.NewNode(syntax.KindInvocation, syntax.NewSpan(10, 20))
	first.Name = "First"
	root.Append(first)

	root.Append(syntax.Ident("x", syntax.NewSpan(25, 26)))

	second := syntax.NewNode(syntax.KindInvocation, syntax.NewSpan(30, 40))
	second.Name = "Second"
	root.Append(second)

	return syntax.NewDocument("demo.tree.json", nil, root)
}

// reportEverything returns an evaluate func that emits one finding per
// visited node, tagged with the given message prefix.
func reportEverything(prefix string) func(*RuleContext, *syntax.Node) ([]Finding, error) {
	return func(_ *RuleContext, node *syntax.Node) ([]Finding, error) {
		msg := fmt.Sprintf("%s at %d", prefix, node.Span.Start)
		return []Finding{NewFinding("", node, msg).Build()}, nil
	}
}

func TestEngine_DispatchByKind(t *testing.T) {
	reg := NewRegistry()
	invRule := newMockRule("FL0001", "inv-rule", syntax.KindInvocation)
	invRule.evaluate = reportEverything("inv")
	reg.Register(invRule)

	idRule := newMockRule("FL0002", "id-rule", syntax.KindIdentifier)
	idRule.evaluate = reportEverything("id")
	reg.Register(idRule)

	engine := NewEngine(reg)
	result, err := engine.Analyze(context.Background(), engineDoc(), sem.NewIndex(), nil)
	require.NoError(t, err)

	require.Len(t, result.Findings, 3)
	assert.Equal(t, "inv at 10", result.Findings[0].Message)
	assert.Equal(t, "id at 25", result.Findings[1].Message)
	assert.Equal(t, "inv at 30", result.Findings[2].Message)
}

func TestEngine_RegistrationOrderWithinNode(t *testing.T) {
	reg := NewRegistry()
	second := newMockRule("FL0002", "registered-first", syntax.KindInvocation)
	second.evaluate = reportEverything("one")
	reg.Register(second)

	first := newMockRule("FL0001", "registered-second", syntax.KindInvocation)
	first.evaluate = reportEverything("two")
	reg.Register(first)

	engine := NewEngine(reg)
	result, err := engine.Analyze(context.Background(), engineDoc(), sem.NewIndex(), nil)
	require.NoError(t, err)

	require.Len(t, result.Findings, 4)
	// Registration order decides within a node, not ID order.
	assert.Equal(t, "one at 10", result.Findings[0].Message)
	assert.Equal(t, "two at 10", result.Findings[1].Message)
	assert.Equal(t, "one at 30", result.Findings[2].Message)
	assert.Equal(t, "two at 30", result.Findings[3].Message)
}

func TestEngine_StampsSeverityPathAndName(t *testing.T) {
	reg := NewRegistry()
	rule := newMockRule("FL0001", "inv-rule", syntax.KindInvocation)
	rule.severity = config.SeverityError
	rule.evaluate = reportEverything("inv")
	reg.Register(rule)

	engine := NewEngine(reg)
	result, err := engine.Analyze(context.Background(), engineDoc(), sem.NewIndex(), nil)
	require.NoError(t, err)

	require.NotEmpty(t, result.Findings)
	f := result.Findings[0]
	assert.Equal(t, config.SeverityError, f.Severity)
	assert.Equal(t, "demo.tree.json", f.Path)
	assert.Equal(t, "inv-rule", f.RuleName)
}

func TestEngine_FaultIsolation(t *testing.T) {
	reg := NewRegistry()

	failing := newMockRule("FL0001", "failing", syntax.KindInvocation)
	failing.evaluate = func(_ *RuleContext, _ *syntax.Node) ([]Finding, error) {
		return nil, errors.New("internal failure")
	}
	reg.Register(failing)

	healthy := newMockRule("FL0002", "healthy", syntax.KindInvocation)
	healthy.evaluate = reportEverything("ok")
	reg.Register(healthy)

	engine := NewEngine(reg)
	result, err := engine.Analyze(context.Background(), engineDoc(), sem.NewIndex(), nil)
	require.NoError(t, err)

	// The healthy rule still reports on every node.
	assert.Len(t, result.Findings, 2)
	require.Len(t, result.Faults, 2)
	assert.Equal(t, "FL0001", result.Faults[0].RuleID)
	assert.Equal(t, syntax.NewSpan(10, 20), result.Faults[0].Span)
}

func TestEngine_PanicBecomesFault(t *testing.T) {
	reg := NewRegistry()

	panicking := newMockRule("FL0001", "panicking", syntax.KindIdentifier)
	panicking.evaluate = func(_ *RuleContext, _ *syntax.Node) ([]Finding, error) {
		panic("unexpected state")
	}
	reg.Register(panicking)

	healthy := newMockRule("FL0002", "healthy", syntax.KindInvocation)
	healthy.evaluate = reportEverything("ok")
	reg.Register(healthy)

	engine := NewEngine(reg)
	result, err := engine.Analyze(context.Background(), engineDoc(), sem.NewIndex(), nil)
	require.NoError(t, err)

	require.Len(t, result.Faults, 1)
	assert.Equal(t, "FL0001", result.Faults[0].RuleID)
	assert.Contains(t, result.Faults[0].Err.Error(), "panicked")
	assert.Len(t, result.Findings, 2)
}

func TestEngine_FixPlanGatedByAutoFix(t *testing.T) {
	proposal := fix.Proposal{
		Transform:  "test/noop",
		TargetKind: syntax.KindInvocation,
		TargetSpan: syntax.NewSpan(10, 20),
		Rewrite: func(_, target *syntax.Node) (*syntax.Node, error) {
			return target, nil
		},
	}

	makeRule := func(id string, fixable bool) *mockRule {
		r := newMockRule(id, "rule-"+id, syntax.KindInvocation)
		r.fixable = fixable
		r.evaluate = func(_ *RuleContext, node *syntax.Node) ([]Finding, error) {
			return []Finding{NewFinding(id, node, "m").WithFix(proposal).Build()}, nil
		}
		return r
	}

	reg := NewRegistry()
	reg.Register(makeRule("FL0001", true))
	reg.Register(makeRule("FL0002", false))

	engine := NewEngine(reg)
	result, err := engine.Analyze(context.Background(), engineDoc(), sem.NewIndex(), nil)
	require.NoError(t, err)

	// Both rules expose their proposals on the findings.
	assert.Equal(t, 4, result.FixableCount())
	// Only the fixable rule contributes to the application plan:
	// one proposal per invocation node.
	assert.Len(t, result.FixPlan, 2)
}

func TestEngine_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	reg := NewRegistry()
	rule := newMockRule("FL0001", "slow", syntax.KindInvocation)
	rule.evaluate = func(rc *RuleContext, node *syntax.Node) ([]Finding, error) {
		cancel() // cancel mid-pass
		return []Finding{NewFinding("FL0001", node, "m").Build()}, nil
	}
	reg.Register(rule)

	engine := NewEngine(reg)
	result, err := engine.Analyze(ctx, engineDoc(), sem.NewIndex(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	// Findings collected before cancellation are preserved.
	require.NotNil(t, result)
	assert.Len(t, result.Findings, 1)
}

func TestEngine_ParallelMatchesSequential(t *testing.T) {
	buildRegistry := func() *Registry {
		reg := NewRegistry()
		inv := newMockRule("FL0001", "inv", syntax.KindInvocation)
		inv.evaluate = reportEverything("inv")
		reg.Register(inv)
		id := newMockRule("FL0002", "id", syntax.KindIdentifier)
		id.evaluate = reportEverything("id")
		reg.Register(id)
		return reg
	}

	sequential := NewEngine(buildRegistry())
	seqResult, err := sequential.Analyze(context.Background(), engineDoc(), sem.NewIndex(), nil)
	require.NoError(t, err)

	parallel := NewEngine(buildRegistry())
	parallel.Workers = 4

	// Scheduling varies run to run; output order must not.
	for range 20 {
		parResult, err := parallel.Analyze(context.Background(), engineDoc(), sem.NewIndex(), nil)
		require.NoError(t, err)

		require.Equal(t, len(seqResult.Findings), len(parResult.Findings))
		for i := range seqResult.Findings {
			assert.Equal(t, seqResult.Findings[i].Message, parResult.Findings[i].Message)
		}
	}
}

func TestEngine_EmptyDocument(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newMockRule("FL0001", "a", syntax.KindInvocation))
	engine := NewEngine(reg)

	result, err := engine.Analyze(context.Background(), &syntax.Document{}, sem.NewIndex(), nil)
	require.NoError(t, err)
	assert.False(t, result.HasIssues())

	result, err = engine.Analyze(context.Background(), nil, sem.NewIndex(), nil)
	require.NoError(t, err)
	assert.False(t, result.HasIssues())
}

func TestEngine_NoSubscribedRules(t *testing.T) {
	engine := NewEngine(NewRegistry())

	result, err := engine.Analyze(context.Background(), engineDoc(), sem.NewIndex(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Findings)
}
