// Package treedump decodes and encodes the serialized program trees
// flint consumes. A dump is the front end's export of one compilation
// unit: the node tree plus the semantic facts (type universe,
// conformance relation, per-node symbols and types) the rules query.
// flint never parses source text itself.
package treedump

// FileExtension is the conventional dump file suffix.
const FileExtension = ".tree.json"

// document is the wire shape of one dump.
type document struct {
	// Path is the original source file path.
	Path string `json:"path"`

	// Source is the original source text, optional.
	Source string `json:"source,omitempty"`

	// Types lists the canonical names of the program's type universe.
	Types []string `json:"types,omitempty"`

	// Implements maps a canonical type name to the interface names it
	// conforms to.
	Implements map[string][]string `json:"implements,omitempty"`

	// Root is the tree root.
	Root *node `json:"root"`
}

// node is the wire shape of one tree node.
type node struct {
	// Kind is the stable kind name (see syntax.Kind).
	Kind string `json:"kind"`

	// Span is the [start, end) byte range.
	Span [2]int `json:"span"`

	// Name is the identifier-like payload, optional.
	Name string `json:"name,omitempty"`

	// Text is the literal payload, optional.
	Text string `json:"text,omitempty"`

	// Type is the canonical static type of the expression, optional.
	Type string `json:"type,omitempty"`

	// Symbol is the resolved symbol, optional.
	Symbol *symbol `json:"symbol,omitempty"`

	// Children are the ordered child nodes.
	Children []*node `json:"children,omitempty"`
}

// symbol is the wire shape of a resolved symbol.
type symbol struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Type      string `json:"type,omitempty"`
	Container string `json:"container,omitempty"`
}
