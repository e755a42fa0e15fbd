package decode

import (
	"reflect"

	"github.com/treebind/treebind/node"
	"github.com/treebind/treebind/shape"
)

// intoRecord decodes a record node field by field, in declaration order. An
// empty name skips the node kind check; union record variants use that form
// because the node kind already selected the variant.
func intoRecord(n node.Node, name string, fields []shape.Field, dst reflect.Value, o *Opts) error {
	if name != "" {
		if err := checkKind(n, name); err != nil {
			return err
		}
	}
	if isAny(dst) {
		m, err := recordFields(n, fields, o)
		if err != nil {
			return err
		}
		setAny(dst, m)
		return nil
	}
	switch dst.Kind() {
	case reflect.Struct:
		for _, f := range fields {
			fv, err := structField(dst, f)
			if err != nil {
				return err
			}
			if err := intoField(n, f, fv, o); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		t := dst.Type()
		if t.Key().Kind() != reflect.String {
			return customf("cannot decode record into %s", t)
		}
		if dst.IsNil() {
			dst.Set(reflect.MakeMapWithSize(t, len(fields)))
		}
		for _, f := range fields {
			ev := reflect.New(t.Elem()).Elem()
			if err := intoField(n, f, ev, o); err != nil {
				return err
			}
			dst.SetMapIndex(reflect.ValueOf(f.Name).Convert(t.Key()), ev)
		}
		return nil
	}
	return customf("cannot decode record into %s", dst.Type())
}

// intoField decodes one declared field from the node's children tagged with
// the field's name. The field's inner shape decides how many tagged children
// are acceptable: a tuple consumes exactly its arity, a sequence any number,
// an option zero or one, and everything else exactly one child which then
// decodes in full.
func intoField(n node.Node, f shape.Field, dst reflect.Value, o *Opts) error {
	kids := n.ChildrenByField(f.Name)
	s := f.Shape
	switch s.Kind {
	case shape.TupleKind:
		if len(kids) != len(s.Elems) {
			return &FieldArityError{Field: f.Name, Expected: len(s.Elems), Actual: len(kids)}
		}
		return intoTuple(kids, s.Elems, dst, o)
	case shape.SeqKind:
		return intoSeq(kids, s.Elem, dst, o)
	case shape.OptionKind:
		return intoOption(kids, s.Elem, dst, o, func(actual int) error {
			return &FieldArityError{Field: f.Name, Expected: 1, Actual: actual}
		})
	}
	if len(kids) != 1 {
		return &FieldArityError{Field: f.Name, Expected: 1, Actual: len(kids)}
	}
	return into(kids[0], s, dst, o)
}

func structField(dst reflect.Value, f shape.Field) (reflect.Value, error) {
	if f.Index != nil {
		return dst.FieldByIndex(f.Index), nil
	}
	fv := dst.FieldByName(f.Name)
	if !fv.IsValid() {
		return reflect.Value{}, customf("type %s has no field %s", dst.Type(), f.Name)
	}
	return fv, nil
}
