package lint

import (
	"context"

	"github.com/flintlabs/flint/pkg/config"
	"github.com/flintlabs/flint/pkg/sem"
	"github.com/flintlabs/flint/pkg/syntax"
)

// RuleContext provides everything a rule needs to evaluate a node.
//
// Design note: RuleContext stores context.Context as a field (Ctx)
// rather than threading it through every Evaluate parameter. It is a
// short-lived parameter object created once per analysis pass, not a
// long-lived struct, and this keeps the Rule interface narrow while
// still supporting cancellation via Cancelled().
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Doc is the document under analysis.
	Doc *syntax.Document

	// Root is the tree root (convenience alias for Doc.Root).
	Root *syntax.Node

	// Resolver answers semantic point-queries. Never nil during a
	// pass; engine callers may supply a no-op resolver.
	Resolver sem.Resolver

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Registry provides access to the active rule set for lookups.
	Registry *Registry
}

// NewRuleContext creates a RuleContext for the given document.
func NewRuleContext(
	ctx context.Context,
	doc *syntax.Document,
	resolver sem.Resolver,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
) *RuleContext {
	var root *syntax.Node
	if doc != nil {
		root = doc.Root
	}

	return &RuleContext{
		Ctx:        ctx,
		Doc:        doc,
		Root:       root,
		Resolver:   resolver,
		Config:     cfg,
		RuleConfig: ruleCfg,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// LiteralFixesSupported reports whether the target language
// configuration permits collection-literal rewrites.
func (rc *RuleContext) LiteralFixesSupported() bool {
	return rc.Config == nil || rc.Config.Language.CollectionLiterals
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or
// the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML parsing.
	if iface, ok := v.([]any); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
