package shape

import (
	"reflect"
	"testing"
)

type celsius float64

func (celsius) TreeKind() string { return "celsius" }

func TestOfScalars(t *testing.T) {
	tests := []struct {
		v    any
		atom Atom
	}{
		{true, Bool},
		{int(0), I64},
		{int8(0), I8},
		{int16(0), I16},
		{int32(0), I32},
		{int64(0), I64},
		{uint(0), U64},
		{uint8(0), U8},
		{uint16(0), U16},
		{uint32(0), U32},
		{uint64(0), U64},
		{float32(0), F32},
		{float64(0), F64},
		{"", String},
		{[]byte(nil), Bytes},
	}
	for _, tc := range tests {
		rt := reflect.TypeOf(tc.v)
		s, err := Of(rt)
		if err != nil {
			t.Fatalf("%s: %v", rt, err)
		}
		if s.Kind != AtomKind || s.Atom != tc.atom {
			t.Errorf("%s: got %s, want %s", rt, s, tc.atom)
		}
	}
}

func TestOfContainers(t *testing.T) {
	s, err := Of(reflect.TypeOf([]int32{}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != SeqKind || s.Elem.Atom != I32 {
		t.Errorf("slice: got %s", s)
	}

	s, err = Of(reflect.TypeOf([3]string{}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != TupleKind || len(s.Elems) != 3 || s.Elems[0].Atom != String {
		t.Errorf("array: got %s", s)
	}

	s, err = Of(reflect.TypeOf((*uint32)(nil)))
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != OptionKind || s.Elem.Atom != U32 {
		t.Errorf("pointer: got %s", s)
	}
}

func TestOfStructForms(t *testing.T) {
	type record struct {
		Name Name   `tree:"root"`
		A    uint64 `tree:"a"`
		B    string `tree:"b"`
		Skip string `tree:"-"`
		C    bool
	}
	s, err := Of(reflect.TypeOf(record{}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != RecordKind || s.Name != "root" {
		t.Fatalf("record: got %s", s)
	}
	if len(s.Fields) != 3 {
		t.Fatalf("fields: got %d", len(s.Fields))
	}
	if s.Fields[0].Name != "a" || s.Fields[1].Name != "b" || s.Fields[2].Name != "C" {
		t.Errorf("field names: got %v, %v, %v", s.Fields[0].Name, s.Fields[1].Name, s.Fields[2].Name)
	}

	type newtype struct {
		Name  Name `tree:"root,newtype"`
		Items []uint32
	}
	s, err = Of(reflect.TypeOf(newtype{}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != WrapperKind || s.Name != "root" || s.Elem.Kind != SeqKind {
		t.Errorf("newtype: got %s", s)
	}
	if len(s.ElemIndex) == 0 {
		t.Error("newtype: missing payload index")
	}

	type tuple struct {
		Name Name `tree:"root,tuple"`
		A    uint32
		B    string
	}
	s, err = Of(reflect.TypeOf(tuple{}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != WrapperKind || s.Elem.Kind != TupleKind || len(s.Elem.Elems) != 2 {
		t.Errorf("tuple: got %s", s)
	}
}

func TestOfNamer(t *testing.T) {
	s, err := Of(reflect.TypeOf(celsius(0)))
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind != WrapperKind || s.Name != "celsius" || s.Elem.Atom != F64 {
		t.Errorf("got %s", s)
	}
}

func TestOfRefusals(t *testing.T) {
	type hidden interface{ secret() }
	for _, v := range []any{
		map[string]int{},
		make(chan int),
	} {
		if _, err := Of(reflect.TypeOf(v)); err == nil {
			t.Errorf("%T: expected error", v)
		}
	}
	if _, err := Of(reflect.TypeOf((*hidden)(nil)).Elem()); err == nil {
		t.Error("unregistered interface: expected error")
	}

	type unmarked struct {
		A int
	}
	if _, err := Of(reflect.TypeOf(unmarked{})); err == nil {
		t.Error("unmarked struct: expected error")
	}

	type badNewtype struct {
		Name Name `tree:"root,newtype"`
		A    int
		B    int
	}
	if _, err := Of(reflect.TypeOf(badNewtype{})); err == nil {
		t.Error("two-field newtype: expected error")
	}
}

func TestOfRecursive(t *testing.T) {
	type item struct {
		Name Name   `tree:"item"`
		Kids []item `tree:"kid"`
	}
	s, err := Of(reflect.TypeOf(item{}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Fields[0].Shape.Elem != s {
		t.Error("recursive field does not close over its own shape")
	}
}

func TestOfCaches(t *testing.T) {
	type root struct {
		Name Name `tree:"root"`
	}
	a, err := Of(reflect.TypeOf(root{}))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Of(reflect.TypeOf(root{}))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("derived shapes are not cached")
	}
}
