package bytepack

import (
	"fmt"
	"reflect"

	"github.com/reoring/bytepack/i18n"
)

// BuildDescription derives the wire-layout Description tree of st. It is a
// pure function of the declaration: on any ill-formed field it fails with a
// field-qualified Issues error and no partial result. Build once per type
// and reuse the tree for every pack/unpack of that type.
func BuildDescription(st *StructType) (*Description, error) {
	if st == nil {
		return nil, schemaIssue("/", CodeUnsupportedType, "nil struct type")
	}
	return buildStruct(st, "")
}

func buildStruct(st *StructType, path string) (*Description, error) {
	d := &Description{TypeName: st.Name}
	for _, f := range st.Fields {
		node, err := buildField(f, path+"/"+f.Name)
		if err != nil {
			return nil, err
		}
		d.Fields = append(d.Fields, NamedNode{Name: f.Name, Node: node})
	}
	return d, nil
}

func buildField(f Field, path string) (Node, error) {
	t := f.Type
	switch t.kind {
	case TypeElementary:
		info, ok := registry[t.elem]
		if !ok {
			return nil, schemaIssue(path, CodeUnsupportedType, "unknown elementary kind")
		}
		return &Leaf{Elem: t.elem, GoType: info.goType, Tag: info.tag, Length: info.length, Default: f.Default}, nil
	case TypeStruct:
		if t.st == nil {
			return nil, schemaIssue(path, CodeUnsupportedType, "nil struct type")
		}
		if f.Default != nil {
			return nil, schemaIssue(path, CodeNestedDefault, "")
		}
		return buildStruct(t.st, path)
	case TypeAnnotated:
		return buildAnnotated(f, path)
	case TypeString, TypeBytes, TypeList:
		return nil, schemaIssue(path, CodeLengthRequired, "")
	default:
		return nil, schemaIssue(path, CodeUnsupportedType, "declared type: "+typeName(t))
	}
}

func buildAnnotated(f Field, path string) (Node, error) {
	t := f.Type
	if len(t.args) != 1 {
		return nil, schemaIssue(path, CodeBadAnnotation,
			fmt.Sprintf("annotated type takes exactly one length argument, got %d", len(t.args)))
	}
	n, ok := t.args[0].(int)
	if !ok {
		return nil, schemaIssue(path, CodeBadAnnotation,
			fmt.Sprintf("length argument must be an integer, got %T", t.args[0]))
	}
	inner := *t.inner
	switch inner.kind {
	case TypeString:
		if n <= 0 {
			return nil, schemaIssue(path, CodeBadAnnotation, "string length must be positive")
		}
		return &Leaf{Elem: FixedString, GoType: reflect.TypeOf(""), Tag: fmt.Sprintf("%ds", n), Length: n, Default: f.Default}, nil
	case TypeBytes:
		if n <= 0 {
			return nil, schemaIssue(path, CodeBadAnnotation, "bytes length must be positive")
		}
		return &Leaf{Elem: FixedBytes, GoType: reflect.TypeOf([]byte(nil)), Tag: fmt.Sprintf("%dp", n), Length: n, Default: f.Default}, nil
	case TypeList:
		if n < 0 {
			return nil, schemaIssue(path, CodeBadAnnotation, "list count must be non-negative")
		}
		if len(inner.elems) != 1 {
			return nil, schemaIssue(path, CodeBadAnnotation,
				fmt.Sprintf("list takes exactly one element type, got %d", len(inner.elems)))
		}
		return buildRepeat(inner.elems[0], n, path)
	default:
		return nil, schemaIssue(path, CodeUnsupportedType, "unsupported annotated type: "+typeName(inner))
	}
}

// buildRepeat materializes a fixed-count block. Replicated elements carry no
// default value, and every slot is an independently owned copy of the
// per-element schema.
func buildRepeat(elem Type, count int, path string) (Node, error) {
	switch elem.kind {
	case TypeElementary:
		info, ok := registry[elem.elem]
		if !ok {
			return nil, schemaIssue(path, CodeUnsupportedList, "unknown elementary kind")
		}
		elems := make([]Node, count)
		for i := range elems {
			elems[i] = &Leaf{Elem: elem.elem, GoType: info.goType, Tag: info.tag, Length: info.length}
		}
		return &Repeat{Count: count, Elems: elems}, nil
	case TypeStruct:
		if elem.st == nil {
			return nil, schemaIssue(path, CodeUnsupportedType, "nil struct type")
		}
		sub, err := buildStruct(elem.st, path)
		if err != nil {
			return nil, err
		}
		elems := make([]Node, count)
		for i := range elems {
			elems[i] = copyNode(sub)
		}
		return &Repeat{Count: count, Elems: elems}, nil
	default:
		return nil, schemaIssue(path, CodeUnsupportedList, "element type: "+typeName(elem))
	}
}

func schemaIssue(path, code, hint string) Issues {
	return Issues{Issue{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint}}
}

// typeName renders a declared type for error hints.
func typeName(t Type) string {
	switch t.kind {
	case TypeElementary:
		return t.elem.String()
	case TypeStruct:
		if t.st != nil {
			return t.st.Name
		}
		return "struct"
	case TypeString:
		return "string"
	case TypeBytes:
		return "bytes"
	case TypeList:
		if len(t.elems) == 1 {
			return "list[" + typeName(t.elems[0]) + "]"
		}
		return "list"
	case TypeAnnotated:
		if t.inner != nil {
			return "annotated[" + typeName(*t.inner) + "]"
		}
		return "annotated"
	default:
		return "invalid"
	}
}
