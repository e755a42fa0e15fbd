package decode

import (
	"reflect"

	"github.com/treebind/treebind/node"
	"github.com/treebind/treebind/shape"
)

var nameType = reflect.TypeOf(shape.Name{})

// intoOption decodes an optional value from zero or one children. The arity
// callback produces the error for more than one, so field-level options can
// report their field name.
func intoOption(kids []node.Node, inner *shape.Shape, dst reflect.Value, o *Opts, arity func(actual int) error) error {
	switch len(kids) {
	case 0:
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	case 1:
		if dst.Kind() == reflect.Pointer {
			if dst.IsNil() {
				dst.Set(reflect.New(dst.Type().Elem()))
			}
			return into(kids[0], inner, dst.Elem(), o)
		}
		return into(kids[0], inner, dst, o)
	}
	return arity(len(kids))
}

func intoSeq(kids []node.Node, inner *shape.Shape, dst reflect.Value, o *Opts) error {
	if isAny(dst) {
		vs, err := seqValue(kids, inner, o)
		if err != nil {
			return err
		}
		setAny(dst, vs)
		return nil
	}
	switch dst.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(dst.Type(), len(kids), len(kids))
		for i, k := range kids {
			if err := into(k, inner, out.Index(i), o); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	case reflect.Array:
		if dst.Len() != len(kids) {
			return &ArityError{Expected: dst.Len(), Actual: len(kids)}
		}
		for i, k := range kids {
			if err := into(k, inner, dst.Index(i), o); err != nil {
				return err
			}
		}
		return nil
	}
	return customf("cannot decode sequence into %s", dst.Type())
}

// intoTuple decodes positional children into a struct's exported fields in
// declaration order, an array, or a slice. Arity has been checked by the
// caller against the tuple's own rule.
func intoTuple(kids []node.Node, elems []*shape.Shape, dst reflect.Value, o *Opts) error {
	if isAny(dst) {
		vs, err := tupleValue(kids, elems, o)
		if err != nil {
			return err
		}
		setAny(dst, vs)
		return nil
	}
	switch dst.Kind() {
	case reflect.Struct:
		targets, err := positional(dst, len(elems))
		if err != nil {
			return err
		}
		for i, e := range elems {
			if err := into(kids[i], e, targets[i], o); err != nil {
				return err
			}
		}
		return nil
	case reflect.Array:
		if dst.Len() != len(elems) {
			return customf("cannot decode %d-tuple into %s", len(elems), dst.Type())
		}
		for i, e := range elems {
			if err := into(kids[i], e, dst.Index(i), o); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		out := reflect.MakeSlice(dst.Type(), len(elems), len(elems))
		for i, e := range elems {
			if err := into(kids[i], e, out.Index(i), o); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	}
	return customf("cannot decode tuple into %s", dst.Type())
}

// positional collects the settable exported fields of a struct, skipping the
// node kind marker field.
func positional(dst reflect.Value, want int) ([]reflect.Value, error) {
	t := dst.Type()
	targets := make([]reflect.Value, 0, want)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type == nameType || !f.IsExported() {
			continue
		}
		targets = append(targets, dst.Field(i))
	}
	if len(targets) != want {
		return nil, customf("type %s has %d positional fields, tuple has %d", t, len(targets), want)
	}
	return targets, nil
}
