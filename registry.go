package bytepack

import "reflect"

// Kind identifies an elementary binary-encodable kind, plus the two
// fixed-length leaf classes (string/bytes) that only exist behind a length
// annotation and therefore have no registry entry of their own.
type Kind int

const (
	KindInvalid Kind = iota

	// Elementary registry kinds.
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F16
	F32
	F64
	Bool
	Char

	// Annotated-only leaf classes.
	FixedString
	FixedBytes
)

// kindInfo is one immutable registry entry: the pack tag consumed by the
// byte-level primitive, the fixed encoded length, and the in-memory Go type
// an unpacked value decodes to.
type kindInfo struct {
	tag    string
	length int
	goType reflect.Type
}

// registry is the closed elementary-type registry. The tag alphabet follows
// the C-style struct convention (B/H/I/Q unsigned, b/h/i/q signed, e/f/d
// floats, ? bool, c char). FROZEN: a tag must never change meaning once
// assigned, or every existing pattern string breaks.
var registry = map[Kind]kindInfo{
	U8:   {tag: "B", length: 1, goType: reflect.TypeOf(uint8(0))},
	U16:  {tag: "H", length: 2, goType: reflect.TypeOf(uint16(0))},
	U32:  {tag: "I", length: 4, goType: reflect.TypeOf(uint32(0))},
	U64:  {tag: "Q", length: 8, goType: reflect.TypeOf(uint64(0))},
	I8:   {tag: "b", length: 1, goType: reflect.TypeOf(int8(0))},
	I16:  {tag: "h", length: 2, goType: reflect.TypeOf(int16(0))},
	I32:  {tag: "i", length: 4, goType: reflect.TypeOf(int32(0))},
	I64:  {tag: "q", length: 8, goType: reflect.TypeOf(int64(0))},
	F16:  {tag: "e", length: 2, goType: reflect.TypeOf(float32(0))},
	F32:  {tag: "f", length: 4, goType: reflect.TypeOf(float32(0))},
	F64:  {tag: "d", length: 8, goType: reflect.TypeOf(float64(0))},
	Bool: {tag: "?", length: 1, goType: reflect.TypeOf(false)},
	Char: {tag: "c", length: 1, goType: reflect.TypeOf(byte(0))},
}

// ElementaryKinds lists every registry kind in a stable order, primarily for
// enumeration in exports and tests.
func ElementaryKinds() []Kind {
	return []Kind{U8, U16, U32, U64, I8, I16, I32, I64, F16, F32, F64, Bool, Char}
}

// IsElementary reports whether k is a member of the elementary registry.
func IsElementary(k Kind) bool {
	_, ok := registry[k]
	return ok
}

// KindTag returns the pack tag for an elementary kind ("" when unknown).
func KindTag(k Kind) string { return registry[k].tag }

// KindLength returns the encoded byte length for an elementary kind
// (0 when unknown).
func KindLength(k Kind) int { return registry[k].length }

// KindGoType returns the in-memory Go type an unpacked value of kind k
// decodes to (nil when unknown).
func KindGoType(k Kind) reflect.Type { return registry[k].goType }

// String renders the kind name used in layout exports and error hints.
func (k Kind) String() string {
	switch k {
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F16:
		return "f16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case FixedString:
		return "string"
	case FixedBytes:
		return "bytes"
	default:
		return "invalid"
	}
}
