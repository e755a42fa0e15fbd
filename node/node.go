// Package node defines the capability set the decoder requires from a parse
// tree. Any parser able to expose a typed, positioned node tree can drive the
// engine by implementing Node; the engine itself never depends on a concrete
// producer.
//
// A Node is an immutable handle into a tree owned by its producer. The engine
// borrows nodes, never mutates them, and must not outlive the source buffer
// they were sliced from.
package node

// Node is one node of a parse tree.
//
// Named children are children with a grammatical role of their own; children
// with purely structural roles (punctuation and the like) are unnamed and are
// excluded from all child counting done by the decoder. Child order is stable
// and matches source order.
type Node interface {
	// Kind is the static grammar category of the node.
	Kind() string

	// Text is the slice of the source buffer spanning exactly this node.
	// The returned string is a view; callers needing ownership past the
	// buffer's lifetime copy it.
	Text() string

	NamedChildCount() int
	NamedChild(i int) Node
	NamedChildren() []Node

	// ChildrenByField returns, in source order, the children tagged by the
	// grammar with the given field name. A child carries at most one field
	// tag, assigned by the producer, never by the decoder.
	ChildrenByField(name string) []Node
}

// FieldTagger is implemented by producers that can report the field tag of a
// named child, used only for inspection output.
type FieldTagger interface {
	// FieldTag returns the field tag of the i-th named child, or "".
	FieldTag(i int) string
}

// Point is a zero-based row/column position in the source buffer.
type Point struct {
	Row    int
	Column int
}

// Span is the extent of a node in the source buffer.
type Span struct {
	StartByte int
	EndByte   int
	Start     Point
	End       Point
}

// ErrorMarker is implemented by producers whose trees record parse errors as
// marker nodes. ScanErrors uses it for the strict pre-decode check.
type ErrorMarker interface {
	// IsError reports whether this node is itself a parse-error marker.
	IsError() bool

	// HasError reports whether this node or any descendant is a marker.
	HasError() bool

	// AllChildren returns every child, named or not; error markers may
	// hide under unnamed children.
	AllChildren() []Node

	Span() Span
}

// ScanErrors walks n depth-first and collects the spans of all parse-error
// markers. Subtrees whose producer does not implement ErrorMarker contribute
// nothing. The scan is independent of decoding and can be skipped for
// trusted trees.
func ScanErrors(n Node) []Span {
	var spans []Span
	scanErrors(n, &spans)
	return spans
}

func scanErrors(n Node, spans *[]Span) {
	m, ok := n.(ErrorMarker)
	if !ok {
		return
	}
	if m.IsError() {
		*spans = append(*spans, m.Span())
	}
	if !m.HasError() {
		return
	}
	for _, c := range m.AllChildren() {
		scanErrors(c, spans)
	}
}
