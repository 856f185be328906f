// Package sem defines the semantic side of analysis: resolved symbols,
// type descriptors, and the Resolver capability the rule engine consumes.
// Resolution is a point-query service supplied by the front end; the
// analyzer never builds semantic information itself.
package sem

import "github.com/flintlabs/flint/pkg/syntax"

// TypeDescriptor identifies a type in the compiled program's type
// universe. Descriptors are identity-stable: the resolver returns the
// same *TypeDescriptor for the same canonical name for its lifetime,
// and equality is identity, not structural.
type TypeDescriptor struct {
	// Name is the canonical full name (e.g., "core.collections.List").
	Name string
}

// String returns the canonical name.
func (t *TypeDescriptor) String() string {
	if t == nil {
		return "<unresolved>"
	}
	return t.Name
}

// SymbolKind classifies a resolved symbol.
type SymbolKind uint8

// Symbol kinds.
const (
	SymbolUnknown SymbolKind = iota
	SymbolMethod
	SymbolField
	SymbolProperty
	SymbolLocal
	SymbolParam
	SymbolType
)

// String returns the dump name for the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case SymbolMethod:
		return "method"
	case SymbolField:
		return "field"
	case SymbolProperty:
		return "property"
	case SymbolLocal:
		return "local"
	case SymbolParam:
		return "param"
	case SymbolType:
		return "type"
	default:
		return "unknown"
	}
}

// SymbolKindFromString returns the kind for a dump name.
func SymbolKindFromString(name string) SymbolKind {
	switch name {
	case "method":
		return SymbolMethod
	case "field":
		return SymbolField
	case "property":
		return SymbolProperty
	case "local":
		return SymbolLocal
	case "param":
		return SymbolParam
	case "type":
		return SymbolType
	default:
		return SymbolUnknown
	}
}

// Symbol is a resolved program entity referenced by a syntax node.
type Symbol struct {
	// Name is the declared name of the entity.
	Name string

	// Kind classifies the entity.
	Kind SymbolKind

	// Type is the declared type of the entity (result type for
	// methods). May be nil when the front end omitted it.
	Type *TypeDescriptor

	// Container is the type declaring this entity, when it is a
	// member. Nil for locals and free functions.
	Container *TypeDescriptor
}

// Resolver answers semantic point-queries about syntax nodes.
//
// All methods treat "unknown" as a valid answer: a nil result means the
// front end could not resolve, and callers must interpret that as
// "does not apply", never as an error.
type Resolver interface {
	// ResolveSymbol returns the symbol a node refers to, or nil.
	ResolveSymbol(n *syntax.Node) *Symbol

	// TypeOf returns the static type of an expression node, or nil.
	TypeOf(n *syntax.Node) *TypeDescriptor

	// LookupType returns the descriptor for a canonical type name if
	// the type exists in the compiled program, or nil.
	LookupType(canonicalName string) *TypeDescriptor

	// Same reports identity equality of two type descriptors.
	// Both nil yields false: an unresolved type matches nothing.
	Same(a, b *TypeDescriptor) bool

	// Implements reports whether type t implements the interface
	// type iface, per the front end's conformance relation.
	Implements(t, iface *TypeDescriptor) bool
}
