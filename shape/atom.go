package shape

import "fmt"

// Atom enumerates the primitive shapes. Char and ByteBuf are part of the
// vocabulary but are structurally inexpressible against a node and always
// fail to decode; Ident decodes a node's kind rather than its text and is
// rejected inside wrappers.
type Atom int

const (
	NoAtom Atom = iota
	Unit
	Bool
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	String
	Bytes
	Char
	ByteBuf
	Ident
)

var atomNames = map[Atom]string{
	Unit:    "unit",
	Bool:    "bool",
	I8:      "i8",
	I16:     "i16",
	I32:     "i32",
	I64:     "i64",
	U8:      "u8",
	U16:     "u16",
	U32:     "u32",
	U64:     "u64",
	F32:     "f32",
	F64:     "f64",
	String:  "string",
	Bytes:   "bytes",
	Char:    "char",
	ByteBuf: "bytebuf",
	Ident:   "ident",
}

func (a Atom) String() string {
	if s, ok := atomNames[a]; ok {
		return s
	}
	return "<unknown atom>"
}

func (a Atom) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Atom) UnmarshalText(d []byte) error {
	for atom, name := range atomNames {
		if name == string(d) {
			*a = atom
			return nil
		}
	}
	return fmt.Errorf("unrecognized atom %q", d)
}

// BitSize returns the parse width for numeric atoms, 0 otherwise.
func (a Atom) BitSize() int {
	switch a {
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32, F32:
		return 32
	case I64, U64, F64:
		return 64
	}
	return 0
}

func (a Atom) IsInt() bool {
	switch a {
	case I8, I16, I32, I64:
		return true
	}
	return false
}

func (a Atom) IsUint() bool {
	switch a {
	case U8, U16, U32, U64:
		return true
	}
	return false
}

func (a Atom) IsFloat() bool {
	return a == F32 || a == F64
}
