// Package shape defines the descriptor vocabulary the decode engine dispatches
// on, together with three ways of producing descriptors: hand-built
// constructors, reflection over Go types (Of), and YAML documents (FromYAML).
//
// The engine is agnostic to how a descriptor was produced; it only consumes
// the vocabulary defined here. Descriptors are immutable once built and safe
// for concurrent use.
package shape

import (
	"fmt"
	"reflect"
)

// Kind discriminates the shape variants.
type Kind int

const (
	InvalidKind Kind = iota
	AtomKind
	OptionKind
	TupleKind
	SeqKind
	WrapperKind
	RecordKind
	UnionKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		AtomKind:    "atom",
		OptionKind:  "option",
		TupleKind:   "tuple",
		SeqKind:     "seq",
		WrapperKind: "wrapper",
		RecordKind:  "record",
		UnionKind:   "union",
	}[k]
	if ok {
		return s
	}
	return "<invalid shape kind>"
}

// Shape is a tagged union describing the value a node (or a field's child
// set) must decode into. Which fields are meaningful depends on Kind.
type Shape struct {
	Kind Kind

	// Atom is set for AtomKind.
	Atom Atom

	// Name is the required node kind for WrapperKind and RecordKind.
	Name string

	// Elem is the inner shape for OptionKind, SeqKind and WrapperKind.
	Elem *Shape

	// Elems are the positional shapes for TupleKind.
	Elems []*Shape

	// Fields are the declared fields for RecordKind, in declaration order.
	Fields []Field

	// Variants resolves a node kind to a union variant for UnionKind.
	Variants VariantResolver

	// Check is an optional value constraint on atoms.
	Check *Check

	// Type is the Go target type this shape was generated for. Nil for
	// descriptor-only decoding, where generic values are produced.
	Type reflect.Type

	// ElemIndex locates the wrapper payload field within Type for the
	// single-field struct form of a named wrapper. Nil when the wrapper
	// type itself is the payload target.
	ElemIndex []int
}

// Field pairs a declared field name with its inner shape.
type Field struct {
	Name  string
	Shape *Shape

	// Index is the Go struct field index within the record's Type. Nil
	// fields are resolved by name, or become map/generic entries.
	Index []int
}

// String describes the shape for diagnostics.
func (s *Shape) String() string {
	if s == nil {
		return "<nil shape>"
	}
	switch s.Kind {
	case AtomKind:
		return s.Atom.String()
	case OptionKind:
		return fmt.Sprintf("option(%s)", s.Elem)
	case TupleKind:
		return fmt.Sprintf("tuple(%d)", len(s.Elems))
	case SeqKind:
		return fmt.Sprintf("seq(%s)", s.Elem)
	case WrapperKind:
		return fmt.Sprintf("wrapper(%s)", s.Name)
	case RecordKind:
		return fmt.Sprintf("record(%s)", s.Name)
	case UnionKind:
		return "union"
	}
	return "<invalid shape>"
}

func AtomOf(a Atom) *Shape {
	return &Shape{Kind: AtomKind, Atom: a}
}

func Option(inner *Shape) *Shape {
	return &Shape{Kind: OptionKind, Elem: inner}
}

func Tuple(elems ...*Shape) *Shape {
	return &Shape{Kind: TupleKind, Elems: elems}
}

func Seq(inner *Shape) *Shape {
	return &Shape{Kind: SeqKind, Elem: inner}
}

// Wrapper declares a named single-value container whose payload shares the
// container's own node. An empty name skips the node kind check; the engine
// uses that form for union newtype payloads.
func Wrapper(name string, inner *Shape) *Shape {
	return &Shape{Kind: WrapperKind, Name: name, Elem: inner}
}

func Record(name string, fields ...Field) *Shape {
	return &Shape{Kind: RecordKind, Name: name, Fields: fields}
}

func Union(r VariantResolver) *Shape {
	return &Shape{Kind: UnionKind, Variants: r}
}

func FieldOf(name string, s *Shape) Field {
	return Field{Name: name, Shape: s}
}

// WithType attaches a Go target type, returning s.
func (s *Shape) WithType(t reflect.Type) *Shape {
	s.Type = t
	return s
}

// WithCheck attaches a value constraint, returning s. Constraints apply to
// atoms only.
func (s *Shape) WithCheck(c *Check) *Shape {
	s.Check = c
	return s
}
