package syntax

// Document is an immutable view of one analyzed compilation unit: the tree
// root plus the raw source text it was parsed from (when the front end
// included it in the dump).
type Document struct {
	// Path is the source file path (may be empty for in-memory trees).
	Path string

	// Source is the original source text. Optional; used only to map
	// byte offsets to line/column positions for presentation.
	Source []byte

	// Root is the tree root node, normally a KindSourceUnit.
	Root *Node

	lineStarts []int
}

// NewDocument creates a Document and builds its line index.
func NewDocument(path string, source []byte, root *Node) *Document {
	return &Document{
		Path:       path,
		Source:     source,
		Root:       root,
		lineStarts: buildLineStarts(source),
	}
}

// WithRoot returns a copy of the document holding a different root.
// Path, source, and the line index are shared; used by fix application.
func (d *Document) WithRoot(root *Node) *Document {
	return &Document{
		Path:       d.Path,
		Source:     d.Source,
		Root:       root,
		lineStarts: d.lineStarts,
	}
}

// PositionAt maps a byte offset to a 1-based line/column position.
// Returns an invalid position if the document carries no source text.
func (d *Document) PositionAt(offset int) Position {
	if len(d.lineStarts) == 0 {
		return Position{}
	}
	if offset < 0 {
		offset = 0
	}
	// Binary search for the last line start <= offset.
	lo, hi := 0, len(d.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if d.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Position{Line: lo + 1, Column: offset - d.lineStarts[lo] + 1}
}

// buildLineStarts returns the byte offset of each line start.
func buildLineStarts(source []byte) []int {
	if len(source) == 0 {
		return nil
	}
	starts := []int{0}
	for i, b := range source {
		if b == '\n' && i+1 < len(source) {
			starts = append(starts, i+1)
		}
	}
	return starts
}
