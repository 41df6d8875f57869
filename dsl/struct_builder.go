package dsl

import (
	bytepack "github.com/reoring/bytepack"
)

// StructBuilder accumulates an ordered field declaration and compiles it
// into a bytepack.Layout. Declaration order is wire order.
type StructBuilder struct {
	name   string
	fields []bytepack.Field
}

type fieldStep struct {
	b *StructBuilder
}

// Struct creates a new builder for the named structure type.
func Struct(name string) *StructBuilder {
	return &StructBuilder{name: name}
}

// Field appends a field with its declared type.
func (b *StructBuilder) Field(name string, t bytepack.Type) *fieldStep {
	b.fields = append(b.fields, bytepack.Field{Name: name, Type: t})
	return &fieldStep{b: b}
}

// Default sets a default value for the current field and returns the
// builder. Default/type compatibility is the caller's responsibility;
// declaring one on a nested-struct field fails at Build.
func (f *fieldStep) Default(v any) *StructBuilder {
	f.b.fields[len(f.b.fields)-1].Default = v
	return f.b
}

func (f *fieldStep) Field(name string, t bytepack.Type) *fieldStep { return f.b.Field(name, t) }
func (f *fieldStep) Type() *bytepack.StructType                    { return f.b.Type() }
func (f *fieldStep) Build() (*bytepack.Layout, error)              { return f.b.Build() }
func (f *fieldStep) MustBuild() *bytepack.Layout                   { return f.b.MustBuild() }

// Type snapshots the declaration as a StructType, e.g. for use as a nested
// field of another builder.
func (b *StructBuilder) Type() *bytepack.StructType {
	fields := make([]bytepack.Field, len(b.fields))
	copy(fields, b.fields)
	return &bytepack.StructType{Name: b.name, Fields: fields}
}

// Build validates the declaration and returns the compiled Layout.
func (b *StructBuilder) Build() (*bytepack.Layout, error) {
	return bytepack.Compile(b.Type())
}

// MustBuild is like Build but panics on error.
func (b *StructBuilder) MustBuild() *bytepack.Layout {
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}
