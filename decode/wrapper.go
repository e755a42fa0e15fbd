package decode

import (
	"reflect"

	"github.com/treebind/treebind/node"
	"github.com/treebind/treebind/shape"
)

// intoWrapper decodes a named single-value container. The payload shares the
// wrapper's own node: atoms parse the node's text, sequences, options and
// tuples consume its named children directly, and structured payloads (a
// record, union or nested wrapper) occupy exactly one named child which then
// decodes in full.
//
// An empty name skips the kind check; union newtype variants use that form.
// elemIndex, when set, routes the payload into the single payload field of a
// newtype struct.
func intoWrapper(n node.Node, name string, inner *shape.Shape, elemIndex []int, dst reflect.Value, o *Opts) error {
	if name != "" {
		if err := checkKind(n, name); err != nil {
			return err
		}
	}
	if isAny(dst) {
		v, err := wrapperValue(n, "", inner, o)
		if err != nil {
			return err
		}
		setAny(dst, v)
		return nil
	}
	payload := dst
	if elemIndex != nil && dst.Kind() == reflect.Struct {
		payload = dst.FieldByIndex(elemIndex)
	}
	switch inner.Kind {
	case shape.AtomKind:
		switch inner.Atom {
		case shape.Char, shape.Bytes, shape.ByteBuf, shape.Ident:
			return &UnsupportedShapeError{Shape: inner.Atom.String(), Wrapper: name}
		}
		return intoAtom(n, inner, payload, o)
	case shape.OptionKind:
		return intoOption(n.NamedChildren(), inner.Elem, payload, o, positionalArity)
	case shape.SeqKind:
		return intoSeq(n.NamedChildren(), inner.Elem, payload, o)
	case shape.TupleKind:
		kids := n.NamedChildren()
		if len(kids) != len(inner.Elems) {
			return &ArityError{Expected: len(inner.Elems), Actual: len(kids)}
		}
		return intoTuple(kids, inner.Elems, payload, o)
	case shape.RecordKind, shape.UnionKind, shape.WrapperKind:
		kids := n.NamedChildren()
		if len(kids) != 1 {
			return &ArityError{Expected: 1, Actual: len(kids)}
		}
		return into(kids[0], inner, payload, o)
	}
	return &UnsupportedShapeError{Shape: inner.String(), Wrapper: name}
}
