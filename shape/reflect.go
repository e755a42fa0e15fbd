package shape

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/treebind/treebind/debug"
)

// Name is a zero-size marker field naming the node kind a struct decodes
// from, in the manner of encoding/xml's XMLName:
//
//	type Root struct {
//	    Name shape.Name `tree:"root"`
//	    A    uint64     `tree:"a"`
//	    B    string     `tree:"b"`
//	}
//
// The tree tag may carry a form suffix: `tree:"root"` (record, the default),
// `tree:"root,newtype"` (single payload field sharing the struct's node) or
// `tree:"root,tuple"` (positional fields matched against named children).
type Name struct{}

// Namer names the node kind of a defined non-struct type, e.g.
//
//	type Celsius float64
//	func (Celsius) TreeKind() string { return "celsius" }
type Namer interface {
	TreeKind() string
}

var (
	nameType  = reflect.TypeOf(Name{})
	namerType = reflect.TypeOf((*Namer)(nil)).Elem()

	ofCache sync.Map // reflect.Type -> *Shape
)

// Of derives the shape descriptor for a Go target type. Results are cached;
// a type's shape is generated once and reused across decode calls.
//
// Interface types must be registered with RegisterUnion first. Maps, chans,
// funcs and unregistered interfaces have no node representation and are
// refused: the engine never guesses a shape from node content.
func Of(t reflect.Type) (*Shape, error) {
	if s, ok := ofCache.Load(t); ok {
		return s.(*Shape), nil
	}
	s, err := of(t, map[reflect.Type]*Shape{})
	if err != nil {
		return nil, err
	}
	if debug.Shape() {
		debug.Logf("shape.Of(%s) = %s\n", t, s)
	}
	ofCache.Store(t, s)
	return s, nil
}

func of(t reflect.Type, seen map[reflect.Type]*Shape) (*Shape, error) {
	if s, ok := seen[t]; ok {
		return s, nil
	}
	switch t.Kind() {
	case reflect.Bool:
		return named(t, AtomOf(Bool).WithType(t))
	case reflect.Int, reflect.Int64:
		return named(t, AtomOf(I64).WithType(t))
	case reflect.Int8:
		return named(t, AtomOf(I8).WithType(t))
	case reflect.Int16:
		return named(t, AtomOf(I16).WithType(t))
	case reflect.Int32:
		return named(t, AtomOf(I32).WithType(t))
	case reflect.Uint, reflect.Uint64:
		return named(t, AtomOf(U64).WithType(t))
	case reflect.Uint8:
		return named(t, AtomOf(U8).WithType(t))
	case reflect.Uint16:
		return named(t, AtomOf(U16).WithType(t))
	case reflect.Uint32:
		return named(t, AtomOf(U32).WithType(t))
	case reflect.Float32:
		return named(t, AtomOf(F32).WithType(t))
	case reflect.Float64:
		return named(t, AtomOf(F64).WithType(t))
	case reflect.String:
		return named(t, AtomOf(String).WithType(t))
	case reflect.Pointer:
		inner, err := of(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return Option(inner).WithType(t), nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return named(t, AtomOf(Bytes).WithType(t))
		}
		inner, err := of(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return named(t, Seq(inner).WithType(t))
	case reflect.Array:
		inner, err := of(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		elems := make([]*Shape, t.Len())
		for i := range elems {
			elems[i] = inner
		}
		return named(t, Tuple(elems...).WithType(t))
	case reflect.Struct:
		return structOf(t, seen)
	case reflect.Interface:
		if r, ok := unionFor(t); ok {
			return Union(r).WithType(t), nil
		}
		return nil, fmt.Errorf("interface type %s has no registered union (see shape.RegisterUnion)", t)
	default:
		return nil, fmt.Errorf("type %s has no node representation", t)
	}
}

// named wraps a derived base shape when the type names its own node kind via
// the Namer interface, making defined scalar types first-class wrappers.
func named(t reflect.Type, base *Shape) (*Shape, error) {
	if !t.Implements(namerType) {
		return base, nil
	}
	kind := reflect.Zero(t).Interface().(Namer).TreeKind()
	return Wrapper(kind, base).WithType(t), nil
}

func structOf(t reflect.Type, seen map[reflect.Type]*Shape) (*Shape, error) {
	s := &Shape{Type: t}
	seen[t] = s

	var (
		kindName string
		form     string
		fields   []Field
	)
	haveMarker := false
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type == nameType {
			if haveMarker {
				return nil, fmt.Errorf("struct %s has multiple shape.Name fields", t)
			}
			haveMarker = true
			kindName, form = splitTag(f.Tag.Get("tree"))
			if kindName == "" {
				return nil, fmt.Errorf("struct %s: shape.Name field needs a tree tag naming the node kind", t)
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		tag, _ := splitTag(f.Tag.Get("tree"))
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = f.Name
		}
		fs, err := of(f.Type, seen)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t, f.Name, err)
		}
		fields = append(fields, Field{Name: tag, Shape: fs, Index: f.Index})
	}
	if !haveMarker {
		if t.Implements(namerType) {
			kindName = reflect.Zero(t).Interface().(Namer).TreeKind()
		} else {
			return nil, fmt.Errorf("struct %s has no shape.Name field and does not implement shape.Namer", t)
		}
	}

	switch form {
	case "", "record":
		s.Kind = RecordKind
		s.Name = kindName
		s.Fields = fields
	case "newtype":
		if len(fields) != 1 {
			return nil, fmt.Errorf("newtype struct %s must have exactly one payload field, has %d", t, len(fields))
		}
		s.Kind = WrapperKind
		s.Name = kindName
		s.Elem = fields[0].Shape
		s.ElemIndex = fields[0].Index
	case "tuple":
		elems := make([]*Shape, len(fields))
		for i, f := range fields {
			elems[i] = f.Shape
		}
		s.Kind = WrapperKind
		s.Name = kindName
		s.Elem = Tuple(elems...)
	default:
		return nil, fmt.Errorf("struct %s: unrecognized tree form %q", t, form)
	}
	return s, nil
}

func splitTag(tag string) (name, form string) {
	name, form, _ = strings.Cut(tag, ",")
	return strings.TrimSpace(name), strings.TrimSpace(form)
}
