package decode

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/treebind/treebind/node"
	"github.com/treebind/treebind/shape"
)

// intoAtom parses the node's own text (or kind, for ident) into dst. The
// atom's width and signedness pick the parse, locale independent; dst's kind
// only has to be able to hold the result.
func intoAtom(n node.Node, s *shape.Shape, dst reflect.Value, o *Opts) error {
	if isAny(dst) {
		v, err := atomValue(n, s, o)
		if err != nil {
			return err
		}
		setAny(dst, v)
		return nil
	}
	a := s.Atom
	switch {
	case a == shape.Unit:
		// Text and children are ignored.
		dst.Set(reflect.Zero(dst.Type()))
		return checkAtom(s, nil)
	case a == shape.Bool:
		b, err := strconv.ParseBool(n.Text())
		if err != nil {
			return &BoolError{Err: err}
		}
		if dst.Kind() != reflect.Bool {
			return customf("cannot decode bool into %s", dst.Type())
		}
		dst.SetBool(b)
		return checkAtom(s, b)
	case a.IsInt():
		i, err := strconv.ParseInt(n.Text(), 10, a.BitSize())
		if err != nil {
			return &NumberError{Atom: a, Err: err}
		}
		switch dst.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if dst.OverflowInt(i) {
				return customf("value %d overflows %s", i, dst.Type())
			}
			dst.SetInt(i)
		default:
			return customf("cannot decode %s into %s", a, dst.Type())
		}
		return checkAtom(s, i)
	case a.IsUint():
		u, err := strconv.ParseUint(n.Text(), 10, a.BitSize())
		if err != nil {
			return &NumberError{Atom: a, Err: err}
		}
		switch dst.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if dst.OverflowUint(u) {
				return customf("value %d overflows %s", u, dst.Type())
			}
			dst.SetUint(u)
		default:
			return customf("cannot decode %s into %s", a, dst.Type())
		}
		return checkAtom(s, u)
	case a.IsFloat():
		f, err := strconv.ParseFloat(n.Text(), a.BitSize())
		if err != nil {
			return &NumberError{Atom: a, Err: err}
		}
		if k := dst.Kind(); k != reflect.Float32 && k != reflect.Float64 {
			return customf("cannot decode %s into %s", a, dst.Type())
		}
		dst.SetFloat(f)
		return checkAtom(s, f)
	case a == shape.String:
		t := n.Text()
		if o.CopyStrings {
			t = strings.Clone(t)
		}
		if dst.Kind() != reflect.String {
			return customf("cannot decode string into %s", dst.Type())
		}
		dst.SetString(t)
		return checkAtom(s, t)
	case a == shape.Bytes:
		if dst.Kind() != reflect.Slice || dst.Type().Elem().Kind() != reflect.Uint8 {
			return customf("cannot decode bytes into %s", dst.Type())
		}
		b := []byte(n.Text())
		dst.SetBytes(b)
		return checkAtom(s, b)
	case a == shape.Ident:
		if dst.Kind() != reflect.String {
			return customf("cannot decode ident into %s", dst.Type())
		}
		dst.SetString(n.Kind())
		return checkAtom(s, n.Kind())
	}
	return &UnsupportedShapeError{Shape: a.String()}
}

// atomValue is the generic-sink counterpart of intoAtom.
func atomValue(n node.Node, s *shape.Shape, o *Opts) (any, error) {
	a := s.Atom
	var v any
	switch {
	case a == shape.Unit:
		v = nil
	case a == shape.Bool:
		b, err := strconv.ParseBool(n.Text())
		if err != nil {
			return nil, &BoolError{Err: err}
		}
		v = b
	case a.IsInt():
		i, err := strconv.ParseInt(n.Text(), 10, a.BitSize())
		if err != nil {
			return nil, &NumberError{Atom: a, Err: err}
		}
		switch a {
		case shape.I8:
			v = int8(i)
		case shape.I16:
			v = int16(i)
		case shape.I32:
			v = int32(i)
		default:
			v = i
		}
	case a.IsUint():
		u, err := strconv.ParseUint(n.Text(), 10, a.BitSize())
		if err != nil {
			return nil, &NumberError{Atom: a, Err: err}
		}
		switch a {
		case shape.U8:
			v = uint8(u)
		case shape.U16:
			v = uint16(u)
		case shape.U32:
			v = uint32(u)
		default:
			v = u
		}
	case a.IsFloat():
		f, err := strconv.ParseFloat(n.Text(), a.BitSize())
		if err != nil {
			return nil, &NumberError{Atom: a, Err: err}
		}
		if a == shape.F32 {
			v = float32(f)
		} else {
			v = f
		}
	case a == shape.String:
		t := n.Text()
		if o.CopyStrings {
			t = strings.Clone(t)
		}
		v = t
	case a == shape.Bytes:
		v = []byte(n.Text())
	case a == shape.Ident:
		v = n.Kind()
	default:
		return nil, &UnsupportedShapeError{Shape: a.String()}
	}
	if err := checkAtom(s, v); err != nil {
		return nil, err
	}
	return v, nil
}

func checkAtom(s *shape.Shape, v any) error {
	if s.Check == nil {
		return nil
	}
	if err := s.Check.Verify(v); err != nil {
		return &CustomError{Message: err.Error()}
	}
	return nil
}
