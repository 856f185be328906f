package lint

import (
	"context"
	"fmt"
	"sync"

	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/fix"
	"github.com/flintlabs/flint/pkg/sem"
	"github.com/flintlabs/flint/pkg/syntax"
)

// Fault records an unexpected failure inside one rule at one node.
// Faults are isolated: they never abort the pass or affect other rules.
type Fault struct {
	// RuleID identifies the misbehaving rule.
	RuleID string

	// Span is the node the rule was evaluating.
	Span syntax.Span

	// Err is the captured evaluation error or recovered panic.
	Err error
}

// Result contains the outcome of analyzing a single document.
type Result struct {
	// Doc is the analyzed document.
	Doc *syntax.Document

	// Findings contains all issues found, in traversal order
	// (pre-order, left-to-right; registration order within a node).
	Findings []Finding

	// FixPlan contains proposals collected from findings of rules
	// with fix application enabled, in finding order.
	FixPlan []fix.Proposal

	// Faults contains isolated rule-evaluation failures.
	Faults []Fault
}

// HasIssues returns true if any findings were produced.
func (r *Result) HasIssues() bool {
	return len(r.Findings) > 0
}

// FixableCount returns the number of findings carrying proposals.
func (r *Result) FixableCount() int {
	count := 0
	for i := range r.Findings {
		if r.Findings[i].HasFix() {
			count++
		}
	}
	return count
}

// Engine routes tree events to interested rules.
//
// It subscribes once per node kind: one traversal of the tree fans
// each visited node out to every rule registered for that node's kind.
// Rules cannot observe or alter one another's findings during a pass.
type Engine struct {
	// Registry holds the active rule set.
	Registry *Registry

	// Workers sets the parallelism of rule evaluation across nodes.
	// Values below 2 mean sequential evaluation. Output order is
	// deterministic regardless of the setting.
	Workers int
}

// NewEngine creates an Engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// visit pairs one tree node with the rules subscribed to its kind.
type visit struct {
	node  *syntax.Node
	rules []ResolvedRule
}

// slot holds the outcome of evaluating one visit.
type slot struct {
	findings []Finding
	fixPlan  []fix.Proposal
	faults   []Fault
}

// Analyze performs one pass over the document.
//
// The tree is traversed exactly once, pre-order and left-to-right; for
// every node the engine looks up the rules interested in its kind and
// invokes each in registration order. Findings are collected in
// traversal order. A rule that panics or returns an error at a node is
// recorded as a Fault and the pass continues.
//
// Analysis is cancellable between node visits; a cancelled pass
// returns the findings collected so far plus the context error.
func (e *Engine) Analyze(
	ctx context.Context,
	doc *syntax.Document,
	resolver sem.Resolver,
	cfg *config.Config,
) (*Result, error) {
	result := &Result{Doc: doc}
	if doc == nil || doc.Root == nil {
		return result, nil
	}

	resolved := ResolveRules(e.Registry, cfg)
	if len(resolved) == 0 {
		return result, nil
	}

	// Build the kind subscription map once per pass.
	subscribers := make(map[syntax.Kind][]ResolvedRule)
	for _, rr := range resolved {
		for _, kind := range rr.Rule.Kinds() {
			subscribers[kind] = append(subscribers[kind], rr)
		}
	}

	// Collect the visit list in traversal order. Nodes nobody
	// subscribed to are not visited at all.
	var visits []visit
	walkErr := syntax.Walk(doc.Root, func(n *syntax.Node) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if rules, ok := subscribers[n.Kind]; ok {
			visits = append(visits, visit{node: n, rules: rules})
		}
		return nil
	})
	if walkErr != nil {
		return result, fmt.Errorf("analysis cancelled: %w", walkErr)
	}

	slots := make([]slot, len(visits))

	if e.Workers > 1 && len(visits) > 1 {
		e.evaluateParallel(ctx, doc, resolver, cfg, visits, slots)
	} else {
		for i, v := range visits {
			if err := ctx.Err(); err != nil {
				e.merge(result, slots[:i])
				return result, fmt.Errorf("analysis cancelled: %w", err)
			}
			slots[i] = e.evaluateNode(ctx, doc, resolver, cfg, v)
		}
	}

	e.merge(result, slots)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("analysis cancelled: %w", err)
	}
	return result, nil
}

// evaluateParallel fans visits out across e.Workers goroutines. Each
// visit owns its slot, so the merged output is identical to the
// sequential order no matter how evaluation is scheduled.
func (e *Engine) evaluateParallel(
	ctx context.Context,
	doc *syntax.Document,
	resolver sem.Resolver,
	cfg *config.Config,
	visits []visit,
	slots []slot,
) {
	workers := e.Workers
	if workers > len(visits) {
		workers = len(visits)
	}

	indexCh := make(chan int)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexCh {
				slots[i] = e.evaluateNode(ctx, doc, resolver, cfg, visits[i])
			}
		}()
	}

	for i := range visits {
		select {
		case <-ctx.Done():
			close(indexCh)
			wg.Wait()
			return
		case indexCh <- i:
		}
	}
	close(indexCh)
	wg.Wait()
}

// evaluateNode runs every subscribed rule against one node.
func (e *Engine) evaluateNode(
	ctx context.Context,
	doc *syntax.Document,
	resolver sem.Resolver,
	cfg *config.Config,
	v visit,
) slot {
	var s slot

	for _, rr := range v.rules {
		findings, err := e.evaluateRule(ctx, doc, resolver, cfg, rr, v.node)
		if err != nil {
			s.faults = append(s.faults, Fault{
				RuleID: rr.Rule.ID(),
				Span:   v.node.Span,
				Err:    err,
			})
			continue
		}

		for i := range findings {
			// Stamp resolved severity and document identity.
			findings[i].Severity = rr.Severity
			if findings[i].Path == "" {
				findings[i].Path = doc.Path
			}
			if findings[i].RuleName == "" {
				findings[i].RuleName = rr.Rule.Name()
			}
			// Proposals stay visible on the finding either way;
			// AutoFix only gates the application plan.
			if rr.AutoFix {
				s.fixPlan = append(s.fixPlan, findings[i].Fixes...)
			}
		}
		s.findings = append(s.findings, findings...)
	}

	return s
}

// evaluateRule invokes one rule on one node, containing panics.
func (e *Engine) evaluateRule(
	ctx context.Context,
	doc *syntax.Document,
	resolver sem.Resolver,
	cfg *config.Config,
	rr ResolvedRule,
	node *syntax.Node,
) (findings []Finding, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			findings = nil
			err = fmt.Errorf("rule %s panicked at [%d:%d]: %v",
				rr.Rule.ID(), node.Span.Start, node.Span.End, rec)
		}
	}()

	rc := NewRuleContext(ctx, doc, resolver, cfg, rr.Config)
	rc.Registry = e.Registry

	return rr.Rule.Evaluate(rc, node)
}

// merge appends slot contents to the result in visit order.
func (e *Engine) merge(result *Result, slots []slot) {
	for i := range slots {
		result.Findings = append(result.Findings, slots[i].findings...)
		result.FixPlan = append(result.FixPlan, slots[i].fixPlan...)
		result.Faults = append(result.Faults, slots[i].faults...)
	}
}
