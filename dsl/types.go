package dsl

import (
	bytepack "github.com/reoring/bytepack"
)

// Elementary kind shorthands.

func U8() bytepack.Type   { return bytepack.Elementary(bytepack.U8) }
func U16() bytepack.Type  { return bytepack.Elementary(bytepack.U16) }
func U32() bytepack.Type  { return bytepack.Elementary(bytepack.U32) }
func U64() bytepack.Type  { return bytepack.Elementary(bytepack.U64) }
func I8() bytepack.Type   { return bytepack.Elementary(bytepack.I8) }
func I16() bytepack.Type  { return bytepack.Elementary(bytepack.I16) }
func I32() bytepack.Type  { return bytepack.Elementary(bytepack.I32) }
func I64() bytepack.Type  { return bytepack.Elementary(bytepack.I64) }
func F16() bytepack.Type  { return bytepack.Elementary(bytepack.F16) }
func F32() bytepack.Type  { return bytepack.Elementary(bytepack.F32) }
func F64() bytepack.Type  { return bytepack.Elementary(bytepack.F64) }
func Bool() bytepack.Type { return bytepack.Elementary(bytepack.Bool) }
func Char() bytepack.Type { return bytepack.Elementary(bytepack.Char) }

// String declares a fixed-length text field of n bytes.
func String(n int) bytepack.Type { return bytepack.Annotated(bytepack.StringType(), n) }

// Bytes declares a fixed-length opaque blob of n bytes (count-prefixed on
// the wire).
func Bytes(n int) bytepack.Type { return bytepack.Annotated(bytepack.BytesType(), n) }

// ListOf declares a fixed-count repeated block over one element type.
func ListOf(elem bytepack.Type, count int) bytepack.Type {
	return bytepack.Annotated(bytepack.ListOf(elem), count)
}

// Nested declares an embedded structure field.
func Nested(st *bytepack.StructType) bytepack.Type { return bytepack.StructOf(st) }

// Annotated is the raw escape hatch for arbitrary annotation arguments; the
// well-formed shape is exactly one integer. Prefer String/Bytes/ListOf.
func Annotated(inner bytepack.Type, args ...any) bytepack.Type {
	return bytepack.Annotated(inner, args...)
}
