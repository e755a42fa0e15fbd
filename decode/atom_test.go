package decode_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/treebind/treebind/decode"
	"github.com/treebind/treebind/sexp"
	"github.com/treebind/treebind/shape"
)

func intErr(s string, bits int) error {
	_, err := strconv.ParseInt(s, 10, bits)
	return err
}

func uintErr(s string, bits int) error {
	_, err := strconv.ParseUint(s, 10, bits)
	return err
}

func floatErr(s string, bits int) error {
	_, err := strconv.ParseFloat(s, bits)
	return err
}

func TestAtoms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		atom shape.Atom
		dst  any
		want any
	}{
		{"i8", `(root "123")`, shape.I8, new(int8), int8(123)},
		{"i16", `(root "123")`, shape.I16, new(int16), int16(123)},
		{"i32", `(root "123")`, shape.I32, new(int32), int32(123)},
		{"i64", `(root "123")`, shape.I64, new(int64), int64(123)},
		{"i64_negative", `(root "-42")`, shape.I64, new(int64), int64(-42)},
		{"u8", `(root "123")`, shape.U8, new(uint8), uint8(123)},
		{"u16", `(root "123")`, shape.U16, new(uint16), uint16(123)},
		{"u32", `(root "123")`, shape.U32, new(uint32), uint32(123)},
		{"u64", `(root "123")`, shape.U64, new(uint64), uint64(123)},
		{"f32", `(root "1234.5")`, shape.F32, new(float32), float32(1234.5)},
		{"f64", `(root "1234.5")`, shape.F64, new(float64), float64(1234.5)},
		{"bool", `(root "true")`, shape.Bool, new(bool), true},
		{"string", `(root "abc")`, shape.String, new(string), "abc"},
		{"bytes", `(root "abc")`, shape.Bytes, new([]byte), []byte("abc")},
		{"unit", `(root "anything" (child))`, shape.Unit, new(struct{}), struct{}{}},
		{"ident", `(root "ignored")`, shape.Ident, new(string), "root"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := sexp.MustParse(tc.src)
			dst := reflect.ValueOf(tc.dst).Elem()
			if err := decode.Into(n, shape.AtomOf(tc.atom), dst, nil); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got := dst.Interface(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tc.want, tc.want)
			}
		})
	}
}

func TestAtomParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		atom    shape.Atom
		dst     any
		wantErr error
	}{
		{"i8", shape.I8, new(int8), &decode.NumberError{Atom: shape.I8, Err: intErr("invalid_value", 8)}},
		{"i64", shape.I64, new(int64), &decode.NumberError{Atom: shape.I64, Err: intErr("invalid_value", 64)}},
		{"u8", shape.U8, new(uint8), &decode.NumberError{Atom: shape.U8, Err: uintErr("invalid_value", 8)}},
		{"u64", shape.U64, new(uint64), &decode.NumberError{Atom: shape.U64, Err: uintErr("invalid_value", 64)}},
		{"f32", shape.F32, new(float32), &decode.NumberError{Atom: shape.F32, Err: floatErr("invalid_value", 32)}},
		{"f64", shape.F64, new(float64), &decode.NumberError{Atom: shape.F64, Err: floatErr("invalid_value", 64)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := sexp.MustParse(`(root "invalid_value")`)
			dst := reflect.ValueOf(tc.dst).Elem()
			err := decode.Into(n, shape.AtomOf(tc.atom), dst, nil)
			if !reflect.DeepEqual(err, tc.wantErr) {
				t.Errorf("got %#v, want %#v", err, tc.wantErr)
			}
		})
	}

	t.Run("bool", func(t *testing.T) {
		n := sexp.MustParse(`(root "invalid_value")`)
		var b bool
		err := decode.Into(n, shape.AtomOf(shape.Bool), reflect.ValueOf(&b).Elem(), nil)
		_, parseErr := strconv.ParseBool("invalid_value")
		want := &decode.BoolError{Err: parseErr}
		if !reflect.DeepEqual(err, want) {
			t.Errorf("got %#v, want %#v", err, want)
		}
	})
}

func TestAtomRange(t *testing.T) {
	// The parse width follows the atom, not the destination.
	n := sexp.MustParse(`(root "300")`)
	var v int64
	err := decode.Into(n, shape.AtomOf(shape.I8), reflect.ValueOf(&v).Elem(), nil)
	want := &decode.NumberError{Atom: shape.I8, Err: intErr("300", 8)}
	if !reflect.DeepEqual(err, want) {
		t.Errorf("got %#v, want %#v", err, want)
	}
}

func TestAtomUnsupported(t *testing.T) {
	n := sexp.MustParse(`(root "x")`)
	for _, a := range []shape.Atom{shape.Char, shape.ByteBuf} {
		var v string
		err := decode.Into(n, shape.AtomOf(a), reflect.ValueOf(&v).Elem(), nil)
		want := &decode.UnsupportedShapeError{Shape: a.String()}
		if !reflect.DeepEqual(err, want) {
			t.Errorf("%s: got %#v, want %#v", a, err, want)
		}
	}
}

func TestAtomCopyStrings(t *testing.T) {
	n := sexp.MustParse(`(root "abc")`)
	var v string
	o := &decode.Opts{CopyStrings: true}
	if err := decode.Into(n, shape.AtomOf(shape.String), reflect.ValueOf(&v).Elem(), o); err != nil {
		t.Fatal(err)
	}
	if v != "abc" {
		t.Errorf("got %q", v)
	}
}

func TestAtomCheck(t *testing.T) {
	s := shape.AtomOf(shape.U32).WithCheck(shape.MustCheck("value > 100"))

	var v uint32
	if err := decode.Into(sexp.MustParse(`(root "123")`), s, reflect.ValueOf(&v).Elem(), nil); err != nil {
		t.Fatalf("passing check: %v", err)
	}
	if v != 123 {
		t.Errorf("got %d", v)
	}

	err := decode.Into(sexp.MustParse(`(root "7")`), s, reflect.ValueOf(&v).Elem(), nil)
	var custom *decode.CustomError
	if !errors.As(err, &custom) {
		t.Errorf("failing check: got %#v", err)
	}
}
