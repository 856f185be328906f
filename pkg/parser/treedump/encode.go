package treedump

import (
	"encoding/json"
	"fmt"

	"github.com/flintlabs/flint/pkg/sem"
	"github.com/flintlabs/flint/pkg/syntax"
)

// Encode serializes a document and its semantic index back into dump
// bytes. Encoding a decoded dump reproduces the same semantic content.
// After fix application untouched nodes keep their recorded facts
// (the index addresses them by kind and span, which rewrites preserve);
// only the synthesized nodes carry none, which is exactly what the
// front end would re-derive on the next parse.
func Encode(doc *syntax.Document, index *sem.Index) ([]byte, error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("encode dump: missing document root")
	}

	wire := document{
		Path:   doc.Path,
		Source: string(doc.Source),
		Root:   encodeNode(doc.Root, index),
	}
	if index != nil {
		wire.Types = index.TypeNames()
		pairs := index.ImplementsPairs()
		if len(pairs) > 0 {
			wire.Implements = pairs
		}
	}

	data, err := json.MarshalIndent(&wire, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode dump: %w", err)
	}
	return append(data, '\n'), nil
}

// encodeNode converts one tree node to the wire shape.
func encodeNode(n *syntax.Node, index *sem.Index) *node {
	w := &node{
		Kind: n.Kind.String(),
		Span: [2]int{n.Span.Start, n.Span.End},
		Name: n.Name,
		Text: n.Text,
	}

	if index != nil {
		if t := index.TypeOf(n); t != nil {
			w.Type = t.Name
		}
		if sym := index.ResolveSymbol(n); sym != nil {
			ws := &symbol{
				Name: sym.Name,
				Kind: sym.Kind.String(),
			}
			if sym.Type != nil {
				ws.Type = sym.Type.Name
			}
			if sym.Container != nil {
				ws.Container = sym.Container.Name
			}
			w.Symbol = ws
		}
	}

	for _, child := range n.Children() {
		w.Children = append(w.Children, encodeNode(child, index))
	}

	return w
}
