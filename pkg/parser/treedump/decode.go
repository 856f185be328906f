package treedump

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flintlabs/flint/pkg/sem"
	"github.com/flintlabs/flint/pkg/syntax"
)

// Decode parses dump bytes into a document and its semantic index.
// The path argument is used when the dump itself carries none.
func Decode(path string, data []byte) (*syntax.Document, *sem.Index, error) {
	var wire document
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, nil, fmt.Errorf("parse dump: %w", err)
	}
	if wire.Root == nil {
		return nil, nil, fmt.Errorf("parse dump: missing root node")
	}

	index := sem.NewIndex()
	for _, name := range wire.Types {
		index.InternType(name)
	}
	for typeName, ifaces := range wire.Implements {
		t := index.InternType(typeName)
		for _, ifaceName := range ifaces {
			index.AddImplements(t, index.InternType(ifaceName))
		}
	}

	root, err := decodeNode(wire.Root, index)
	if err != nil {
		return nil, nil, err
	}

	docPath := wire.Path
	if docPath == "" {
		docPath = path
	}

	doc := syntax.NewDocument(docPath, []byte(wire.Source), root)
	return doc, index, nil
}

// DecodeFile reads and decodes one dump file.
func DecodeFile(path string) (*syntax.Document, *sem.Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read dump: %w", err)
	}
	return Decode(path, data)
}

// decodeNode converts one wire node and registers its semantic facts.
func decodeNode(w *node, index *sem.Index) (*syntax.Node, error) {
	kind, ok := syntax.KindFromString(w.Kind)
	if !ok {
		return nil, fmt.Errorf("parse dump: unknown node kind %q", w.Kind)
	}

	n := syntax.NewNode(kind, syntax.NewSpan(w.Span[0], w.Span[1]))
	n.Name = w.Name
	n.Text = w.Text

	if w.Type != "" {
		index.SetTypeOf(n, index.InternType(w.Type))
	}
	if w.Symbol != nil {
		sym := &sem.Symbol{
			Name: w.Symbol.Name,
			Kind: sem.SymbolKindFromString(w.Symbol.Kind),
		}
		if w.Symbol.Type != "" {
			sym.Type = index.InternType(w.Symbol.Type)
		}
		if w.Symbol.Container != "" {
			sym.Container = index.InternType(w.Symbol.Container)
		}
		index.SetSymbol(n, sym)
	}

	for _, child := range w.Children {
		c, err := decodeNode(child, index)
		if err != nil {
			return nil, err
		}
		n.Append(c)
	}

	return n, nil
}
