// Package decode implements the shape-directed decoding engine.
//
// Given a tree node and a shape descriptor, the engine walks the node's
// children according to fixed rules and either fills in a Go value or returns
// one structured error. The walk is a single top-down, read-only pass: no
// node is visited twice for the same decode, the engine holds no state across
// calls, and concurrent decodes over the same tree need no coordination.
//
// Dispatch is driven entirely by the descriptor — the engine never inspects
// node content to guess a shape. When the descriptor carries Go type
// information (shape.Of), values are written through reflection in the
// target's own types; descriptor-only shapes produce generic values (see
// Value).
package decode

import (
	"reflect"

	"github.com/treebind/treebind/debug"
	"github.com/treebind/treebind/node"
	"github.com/treebind/treebind/shape"
)

// Opts adjusts decoding behavior. The zero value is ready to use.
type Opts struct {
	// CopyStrings clones decoded strings so results may outlive the source
	// buffer. By default string values are views of the buffer.
	CopyStrings bool
}

var defaultOpts = &Opts{}

// Into decodes n against s into dst, which must be settable (typically
// reflect.ValueOf(ptr).Elem()).
func Into(n node.Node, s *shape.Shape, dst reflect.Value, o *Opts) error {
	if o == nil {
		o = defaultOpts
	}
	if !dst.IsValid() || !dst.CanSet() {
		return customf("destination is not settable")
	}
	return into(n, s, dst, o)
}

// Value decodes n against s into a generic value: atoms become Go scalars,
// sequences and tuples []any, records map[string]any, options a value or
// nil, and unions Tagged.
func Value(n node.Node, s *shape.Shape, o *Opts) (any, error) {
	if o == nil {
		o = defaultOpts
	}
	return value(n, s, o)
}

// Tagged is the generic decoding of a union value.
type Tagged struct {
	Tag   string
	Value any
}

func into(n node.Node, s *shape.Shape, dst reflect.Value, o *Opts) error {
	if debug.Decode() {
		debug.Logf("decode %s node %q against %s\n", s.Kind, n.Kind(), s)
	}
	// Generic sink: unions resolve their own target (the variant's Go type
	// when it has one), everything else builds a generic value.
	if isAny(dst) && s.Kind != shape.UnionKind {
		v, err := value(n, s, o)
		if err != nil {
			return err
		}
		setAny(dst, v)
		return nil
	}
	if s.Kind != shape.OptionKind && dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		dst = dst.Elem()
	}

	switch s.Kind {
	case shape.AtomKind:
		return intoAtom(n, s, dst, o)
	case shape.OptionKind:
		return intoOption(n.NamedChildren(), s.Elem, dst, o, positionalArity)
	case shape.SeqKind:
		return intoSeq(n.NamedChildren(), s.Elem, dst, o)
	case shape.TupleKind:
		kids := n.NamedChildren()
		if len(kids) != len(s.Elems) {
			return &ArityError{Expected: len(s.Elems), Actual: len(kids)}
		}
		return intoTuple(kids, s.Elems, dst, o)
	case shape.WrapperKind:
		return intoWrapper(n, s.Name, s.Elem, s.ElemIndex, dst, o)
	case shape.RecordKind:
		return intoRecord(n, s.Name, s.Fields, dst, o)
	case shape.UnionKind:
		return intoUnion(n, s, dst, o)
	}
	return &UnsupportedShapeError{Shape: s.String()}
}

func positionalArity(actual int) error {
	return &ArityError{Expected: 1, Actual: actual}
}

func checkKind(n node.Node, name string) error {
	if n.Kind() != name {
		return &NodeKindError{Expected: name, Actual: n.Kind()}
	}
	return nil
}

// isAny reports whether dst is an empty-interface sink.
func isAny(dst reflect.Value) bool {
	return dst.Kind() == reflect.Interface && dst.NumMethod() == 0
}

func setAny(dst reflect.Value, v any) {
	if v == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	dst.Set(reflect.ValueOf(v))
}
