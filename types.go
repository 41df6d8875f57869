package bytepack

// TypeKind discriminates the closed set of declared field types.
type TypeKind int

const (
	TypeInvalid TypeKind = iota
	TypeElementary
	TypeStruct
	TypeString // bare text type; only valid under an Annotated length
	TypeBytes  // bare blob type; only valid under an Annotated length
	TypeList   // bare repeated type; only valid under an Annotated count
	TypeAnnotated
)

// Type is a declared field type. It is a closed tagged variant rather than
// an interface so the builder can exhaustively switch on it, and it is
// deliberately able to represent ill-formed declarations (bare lists,
// non-integer annotation arguments); BuildDescription is where those are
// rejected with field-qualified issues.
type Type struct {
	kind  TypeKind
	elem  Kind        // TypeElementary
	st    *StructType // TypeStruct
	elems []Type      // TypeList element types (well-formed: exactly one)
	inner *Type       // TypeAnnotated subject
	args  []any       // TypeAnnotated auxiliary arguments (well-formed: one int)
}

// Kind returns the variant discriminator.
func (t Type) Kind() TypeKind { return t.kind }

// Elementary declares a field of a registry kind.
func Elementary(k Kind) Type { return Type{kind: TypeElementary, elem: k} }

// StructOf declares a nested structure field.
func StructOf(st *StructType) Type { return Type{kind: TypeStruct, st: st} }

// StringType declares the bare text type. Bare occurrences are rejected at
// build time; wrap with Annotated to give it a fixed length.
func StringType() Type { return Type{kind: TypeString} }

// BytesType declares the bare blob type. Bare occurrences are rejected at
// build time; wrap with Annotated to give it a fixed length.
func BytesType() Type { return Type{kind: TypeBytes} }

// ListOf declares the bare repeated type over the given element type(s).
// Bare occurrences are rejected at build time; wrap with Annotated to give
// it a fixed count. A well-formed list carries exactly one element type.
func ListOf(elems ...Type) Type { return Type{kind: TypeList, elems: elems} }

// Annotated attaches auxiliary arguments to an inner type. A well-formed
// annotation carries exactly one integer argument: a fixed length for
// string/bytes, a repetition count for lists.
func Annotated(inner Type, args ...any) Type {
	in := inner
	return Type{kind: TypeAnnotated, inner: &in, args: args}
}

// Field is one declared structure member: name, declared type, and an
// optional default value (nil means absent). Default/type compatibility is
// not enforced by the builder; it is the caller's responsibility.
type Field struct {
	Name    string
	Type    Type
	Default any
}

// StructType is a named, ordered field declaration. Field order is
// semantically load-bearing: it determines pattern concatenation order and
// therefore wire order.
type StructType struct {
	Name   string
	Fields []Field
}
