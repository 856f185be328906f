package rules

import "github.com/flintlabs/flint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
// Registration order is evaluation order for rules sharing a kind.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewConcurrentAccessorRule()) // FL0004
	registry.Register(NewWorkSentinelRule())       // FL0011
	registry.Register(NewCollectionLiteralRule())  // FL0021
	registry.Register(NewInterpolationRule())      // FL0035
}

// NewRegistry returns a registry preloaded with all built-in rules.
func NewRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	return registry
}
