package shape

import (
	"fmt"
	"reflect"
	"sync"
)

// VariantKind discriminates the four payload forms of a union variant.
type VariantKind int

const (
	UnitVariant VariantKind = iota
	NewtypeVariant
	TupleVariant
	RecordVariant
)

func (k VariantKind) String() string {
	s, ok := map[VariantKind]string{
		UnitVariant:    "unit",
		NewtypeVariant: "newtype",
		TupleVariant:   "tuple",
		RecordVariant:  "record",
	}[k]
	if ok {
		return s
	}
	return "<invalid variant kind>"
}

// Variant describes one union alternative. The decoder selects a variant by
// node kind; the variant then says how the selected node's payload decodes.
type Variant struct {
	Kind VariantKind

	// Elem is the newtype payload shape.
	Elem *Shape

	// Elems are the tuple payload shapes, matched against named children.
	Elems []*Shape

	// Fields are the record payload fields.
	Fields []Field

	// Type is the concrete Go type to construct for this variant. Nil for
	// descriptor-only decoding.
	Type reflect.Type

	// ElemIndex locates the newtype payload within Type for single-field
	// struct variants.
	ElemIndex []int
}

// VariantResolver maps a node kind to the variant it selects. The tag set is
// open: the engine accepts any kind and defers rejection to the resolver.
type VariantResolver interface {
	Resolve(tag string) (*Variant, error)
}

// VariantMap is a closed-set resolver rejecting unknown tags.
type VariantMap map[string]*Variant

func (m VariantMap) Resolve(tag string) (*Variant, error) {
	v, ok := m[tag]
	if !ok {
		return nil, fmt.Errorf("unknown variant tag %q", tag)
	}
	return v, nil
}

func UnitVariantOf(t reflect.Type) *Variant {
	return &Variant{Kind: UnitVariant, Type: t}
}

func NewtypeVariantOf(t reflect.Type, inner *Shape) *Variant {
	return &Variant{Kind: NewtypeVariant, Type: t, Elem: inner}
}

func TupleVariantOf(t reflect.Type, elems ...*Shape) *Variant {
	return &Variant{Kind: TupleVariant, Type: t, Elems: elems}
}

func RecordVariantOf(t reflect.Type, fields ...Field) *Variant {
	return &Variant{Kind: RecordVariant, Type: t, Fields: fields}
}

var (
	unionMu sync.RWMutex
	unions  = map[reflect.Type]VariantResolver{}
)

// RegisterUnion associates a resolver with a Go interface type so that Of can
// derive shapes for types embedding that interface. Registration is global,
// like a schema registry, and should happen at init time.
func RegisterUnion(iface reflect.Type, r VariantResolver) {
	if iface == nil || iface.Kind() != reflect.Interface {
		panic("shape: RegisterUnion requires an interface type")
	}
	unionMu.Lock()
	defer unionMu.Unlock()
	unions[iface] = r
}

func unionFor(t reflect.Type) (VariantResolver, bool) {
	unionMu.RLock()
	defer unionMu.RUnlock()
	r, ok := unions[t]
	return r, ok
}
