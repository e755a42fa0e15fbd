package decode

import (
	"reflect"

	"github.com/treebind/treebind/node"
	"github.com/treebind/treebind/shape"
)

// value is the generic-sink engine: same walk and same error set as into, but
// producing plain Go values instead of writing through reflection. Atoms
// become scalars, sequences and tuples []any, records map[string]any, options
// a value or nil, and unions Tagged (or the variant's own type when it
// carries one).
func value(n node.Node, s *shape.Shape, o *Opts) (any, error) {
	switch s.Kind {
	case shape.AtomKind:
		return atomValue(n, s, o)
	case shape.OptionKind:
		kids := n.NamedChildren()
		switch len(kids) {
		case 0:
			return nil, nil
		case 1:
			return value(kids[0], s.Elem, o)
		}
		return nil, positionalArity(len(kids))
	case shape.SeqKind:
		return seqValue(n.NamedChildren(), s.Elem, o)
	case shape.TupleKind:
		kids := n.NamedChildren()
		if len(kids) != len(s.Elems) {
			return nil, &ArityError{Expected: len(s.Elems), Actual: len(kids)}
		}
		return tupleValue(kids, s.Elems, o)
	case shape.WrapperKind:
		return wrapperValue(n, s.Name, s.Elem, o)
	case shape.RecordKind:
		if err := checkKind(n, s.Name); err != nil {
			return nil, err
		}
		return recordFields(n, s.Fields, o)
	case shape.UnionKind:
		tag := n.Kind()
		v, err := s.Variants.Resolve(tag)
		if err != nil {
			return nil, resolverErr(err)
		}
		return variantValue(n, tag, v, o)
	}
	return nil, &UnsupportedShapeError{Shape: s.String()}
}

func seqValue(kids []node.Node, inner *shape.Shape, o *Opts) ([]any, error) {
	out := make([]any, len(kids))
	for i, k := range kids {
		v, err := value(k, inner, o)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func tupleValue(kids []node.Node, elems []*shape.Shape, o *Opts) ([]any, error) {
	out := make([]any, len(elems))
	for i, e := range elems {
		v, err := value(kids[i], e, o)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func wrapperValue(n node.Node, name string, inner *shape.Shape, o *Opts) (any, error) {
	if name != "" {
		if err := checkKind(n, name); err != nil {
			return nil, err
		}
	}
	switch inner.Kind {
	case shape.AtomKind:
		switch inner.Atom {
		case shape.Char, shape.Bytes, shape.ByteBuf, shape.Ident:
			return nil, &UnsupportedShapeError{Shape: inner.Atom.String(), Wrapper: name}
		}
		return atomValue(n, inner, o)
	case shape.OptionKind:
		kids := n.NamedChildren()
		switch len(kids) {
		case 0:
			return nil, nil
		case 1:
			return value(kids[0], inner.Elem, o)
		}
		return nil, positionalArity(len(kids))
	case shape.SeqKind:
		return seqValue(n.NamedChildren(), inner.Elem, o)
	case shape.TupleKind:
		kids := n.NamedChildren()
		if len(kids) != len(inner.Elems) {
			return nil, &ArityError{Expected: len(inner.Elems), Actual: len(kids)}
		}
		return tupleValue(kids, inner.Elems, o)
	case shape.RecordKind, shape.UnionKind, shape.WrapperKind:
		kids := n.NamedChildren()
		if len(kids) != 1 {
			return nil, &ArityError{Expected: 1, Actual: len(kids)}
		}
		return value(kids[0], inner, o)
	}
	return nil, &UnsupportedShapeError{Shape: inner.String(), Wrapper: name}
}

func recordFields(n node.Node, fields []shape.Field, o *Opts) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		v, err := fieldValue(n, f, o)
		if err != nil {
			return nil, err
		}
		out[f.Name] = v
	}
	return out, nil
}

func fieldValue(n node.Node, f shape.Field, o *Opts) (any, error) {
	kids := n.ChildrenByField(f.Name)
	s := f.Shape
	switch s.Kind {
	case shape.TupleKind:
		if len(kids) != len(s.Elems) {
			return nil, &FieldArityError{Field: f.Name, Expected: len(s.Elems), Actual: len(kids)}
		}
		return tupleValue(kids, s.Elems, o)
	case shape.SeqKind:
		return seqValue(kids, s.Elem, o)
	case shape.OptionKind:
		switch len(kids) {
		case 0:
			return nil, nil
		case 1:
			return value(kids[0], s.Elem, o)
		}
		return nil, &FieldArityError{Field: f.Name, Expected: 1, Actual: len(kids)}
	}
	if len(kids) != 1 {
		return nil, &FieldArityError{Field: f.Name, Expected: 1, Actual: len(kids)}
	}
	return value(kids[0], s, o)
}

// variantValue decodes a selected variant's payload generically. Variants
// carrying a Go type construct that type; the rest decode into Tagged.
func variantValue(n node.Node, tag string, v *shape.Variant, o *Opts) (any, error) {
	if v.Type != nil {
		rv := reflect.New(v.Type).Elem()
		if err := intoVariant(n, v, rv, o); err != nil {
			return nil, err
		}
		return rv.Interface(), nil
	}
	var (
		payload any
		err     error
	)
	switch v.Kind {
	case shape.UnitVariant:
		payload = nil
	case shape.NewtypeVariant:
		payload, err = wrapperValue(n, "", v.Elem, o)
	case shape.TupleVariant:
		kids := n.NamedChildren()
		if len(kids) != len(v.Elems) {
			return nil, &ArityError{Expected: len(v.Elems), Actual: len(kids)}
		}
		payload, err = tupleValue(kids, v.Elems, o)
	case shape.RecordVariant:
		payload, err = recordFields(n, v.Fields, o)
	default:
		return nil, &UnsupportedShapeError{Shape: v.Kind.String()}
	}
	if err != nil {
		return nil, err
	}
	return Tagged{Tag: tag, Value: payload}, nil
}
