package sem

import (
	"sort"

	"github.com/flintlabs/flint/pkg/syntax"
)

// Index is an in-memory Resolver backed by recorded facts. The dump
// decoder populates one per document; tests populate them directly.
//
// An Index is safe for concurrent reads after population. Population
// and reads must not be interleaved.
type Index struct {
	types      map[string]*TypeDescriptor
	symbols    map[factKey]*Symbol
	exprTypes  map[factKey]*TypeDescriptor
	implements map[*TypeDescriptor]map[*TypeDescriptor]bool
}

// factKey addresses a node by kind and span rather than identity.
// Fix application rebuilds the whole tree with fresh nodes but keeps
// the kinds and spans of untouched nodes, so facts recorded at decode
// time stay addressable after a rewrite. Synthesized nodes reuse the
// replaced node's span under a different kind and therefore resolve
// to nothing, the same as a fresh parse.
type factKey struct {
	kind       syntax.Kind
	start, end int
}

func keyOf(n *syntax.Node) factKey {
	return factKey{kind: n.Kind, start: n.Span.Start, end: n.Span.End}
}

// Compile-time interface check.
var _ Resolver = (*Index)(nil)

// NewIndex creates an empty semantic index.
func NewIndex() *Index {
	return &Index{
		types:      make(map[string]*TypeDescriptor),
		symbols:    make(map[factKey]*Symbol),
		exprTypes:  make(map[factKey]*TypeDescriptor),
		implements: make(map[*TypeDescriptor]map[*TypeDescriptor]bool),
	}
}

// InternType returns the identity-stable descriptor for a canonical
// name, creating it on first use.
func (ix *Index) InternType(canonicalName string) *TypeDescriptor {
	if t, ok := ix.types[canonicalName]; ok {
		return t
	}
	t := &TypeDescriptor{Name: canonicalName}
	ix.types[canonicalName] = t
	return t
}

// SetSymbol records the symbol a node resolves to.
func (ix *Index) SetSymbol(n *syntax.Node, sym *Symbol) {
	ix.symbols[keyOf(n)] = sym
}

// SetTypeOf records the static type of an expression node.
func (ix *Index) SetTypeOf(n *syntax.Node, t *TypeDescriptor) {
	ix.exprTypes[keyOf(n)] = t
}

// AddImplements records that t implements iface.
func (ix *Index) AddImplements(t, iface *TypeDescriptor) {
	set, ok := ix.implements[t]
	if !ok {
		set = make(map[*TypeDescriptor]bool)
		ix.implements[t] = set
	}
	set[iface] = true
}

// ResolveSymbol implements Resolver.
func (ix *Index) ResolveSymbol(n *syntax.Node) *Symbol {
	if n == nil {
		return nil
	}
	return ix.symbols[keyOf(n)]
}

// TypeOf implements Resolver.
func (ix *Index) TypeOf(n *syntax.Node) *TypeDescriptor {
	if n == nil {
		return nil
	}
	return ix.exprTypes[keyOf(n)]
}

// LookupType implements Resolver. Unlike InternType it never creates:
// only types the program actually contains are returned.
func (ix *Index) LookupType(canonicalName string) *TypeDescriptor {
	return ix.types[canonicalName]
}

// Same implements Resolver. Identity comparison; nil matches nothing.
func (ix *Index) Same(a, b *TypeDescriptor) bool {
	return a != nil && a == b
}

// Implements implements Resolver.
func (ix *Index) Implements(t, iface *TypeDescriptor) bool {
	if t == nil || iface == nil {
		return false
	}
	return ix.implements[t][iface]
}

// TypeNames returns the canonical names of all known types, sorted.
func (ix *Index) TypeNames() []string {
	names := make([]string, 0, len(ix.types))
	for name := range ix.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ImplementsPairs returns the conformance relation as canonical name
// pairs, with deterministic ordering.
func (ix *Index) ImplementsPairs() map[string][]string {
	out := make(map[string][]string, len(ix.implements))
	for t, set := range ix.implements {
		ifaces := make([]string, 0, len(set))
		for iface := range set {
			ifaces = append(ifaces, iface.Name)
		}
		sort.Strings(ifaces)
		out[t.Name] = ifaces
	}
	return out
}
