package decode

import (
	"reflect"

	"github.com/treebind/treebind/node"
	"github.com/treebind/treebind/shape"
)

// intoUnion selects a variant by the node's kind and decodes its payload. The
// tag set is open: the resolver decides which kinds are acceptable, and its
// rejections surface as caller-precondition errors unless they already belong
// to the error set.
func intoUnion(n node.Node, s *shape.Shape, dst reflect.Value, o *Opts) error {
	tag := n.Kind()
	v, err := s.Variants.Resolve(tag)
	if err != nil {
		return resolverErr(err)
	}
	if v.Type == nil {
		if isAny(dst) {
			val, err := variantValue(n, tag, v, o)
			if err != nil {
				return err
			}
			setAny(dst, val)
			return nil
		}
		return intoVariant(n, v, dst, o)
	}
	rv := reflect.New(v.Type).Elem()
	if err := intoVariant(n, v, rv, o); err != nil {
		return err
	}
	if !rv.Type().AssignableTo(dst.Type()) {
		return customf("variant %s value of type %s is not assignable to %s", tag, rv.Type(), dst.Type())
	}
	dst.Set(rv)
	return nil
}

func intoVariant(n node.Node, v *shape.Variant, dst reflect.Value, o *Opts) error {
	switch v.Kind {
	case shape.UnitVariant:
		// The node's text and children are ignored.
		return nil
	case shape.NewtypeVariant:
		return intoWrapper(n, "", v.Elem, v.ElemIndex, dst, o)
	case shape.TupleVariant:
		kids := n.NamedChildren()
		if len(kids) != len(v.Elems) {
			return &ArityError{Expected: len(v.Elems), Actual: len(kids)}
		}
		return intoTuple(kids, v.Elems, dst, o)
	case shape.RecordVariant:
		return intoRecord(n, "", v.Fields, dst, o)
	}
	return &UnsupportedShapeError{Shape: v.Kind.String()}
}
