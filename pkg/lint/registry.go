package lint

import "sync"

// Registry holds registered rules. It is an explicit, constructed
// object passed into the engine — never ambient process state — so
// independent engine instances can carry different active rule sets.
//
// Registration order is preserved: rules subscribed to the same node
// kind are evaluated in the order they were registered.
type Registry struct {
	mu      sync.RWMutex
	ordered []Rule
	byID    map[string]Rule
	byName  map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule to the registry. If a rule with the same ID
// already exists, it is replaced in place, keeping its original
// position in the evaluation order.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byID[rule.ID()]; ok {
		for i, existing := range r.ordered {
			if existing == prev {
				r.ordered[i] = rule
				break
			}
		}
		delete(r.byName, prev.Name())
	} else {
		r.ordered = append(r.ordered, rule)
	}

	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by ID or name. It tries ID first, then name.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// GetByID retrieves a rule by its ID only.
func (r *Registry) GetByID(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byID[id]
	return rule, ok
}

// GetByName retrieves a rule by its name only.
func (r *Registry) GetByName(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byName[name]
	return rule, ok
}

// Rules returns all registered rules in registration order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// IDs returns all registered rule IDs in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.ordered))
	for _, rule := range r.ordered {
		result = append(result, rule.ID())
	}
	return result
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}
