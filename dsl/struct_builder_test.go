package dsl_test

import (
	"testing"

	bytepack "github.com/reoring/bytepack"
	d "github.com/reoring/bytepack/dsl"
)

func TestStructBuilder_Basic(t *testing.T) {
	point := d.Struct("Point").
		Field("x", d.F32()).
		Field("y", d.F32())

	l, err := point.Build()
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	if l.Pattern() != "ff" {
		t.Fatalf("want ff, got %q", l.Pattern())
	}
	if l.Description().TypeName != "Point" {
		t.Fatalf("want marker Point, got %q", l.Description().TypeName)
	}
}

func TestStructBuilder_FullDeclaration(t *testing.T) {
	point := d.Struct("Point").
		Field("x", d.F32()).
		Field("y", d.F32())

	order := d.Struct("Order").
		Field("id", d.U64()).
		Field("ticker", d.String(8)).
		Field("qty", d.U32()).Default(uint32(1)).
		Field("flag", d.Bool()).
		Field("venue", d.Nested(point.Type())).
		Field("levels", d.ListOf(d.F64(), 3)).
		Field("blob", d.Bytes(16)).
		MustBuild()

	if order.Pattern() != "Q8sI?ffddd16p" {
		t.Fatalf("unexpected pattern %q", order.Pattern())
	}
	defs := order.DefaultValues()
	if defs[2] != uint32(1) {
		t.Fatalf("want qty default carried, got %v", defs[2])
	}
}

func TestStructBuilder_DeclarationOrderIsWireOrder(t *testing.T) {
	a := d.Struct("M").Field("a", d.U8()).Field("b", d.U16()).MustBuild()
	b := d.Struct("M").Field("b", d.U16()).Field("a", d.U8()).MustBuild()
	if a.Pattern() != "BH" || b.Pattern() != "HB" {
		t.Fatalf("field order not preserved: %q vs %q", a.Pattern(), b.Pattern())
	}
}

func TestStructBuilder_NestedListOfStructs(t *testing.T) {
	point := d.Struct("Point").
		Field("x", d.F32()).
		Field("y", d.F32())

	line := d.Struct("Line").
		Field("pts", d.ListOf(d.Nested(point.Type()), 2)).
		MustBuild()
	if line.Pattern() != "ffff" {
		t.Fatalf("want ffff, got %q", line.Pattern())
	}
}

func TestStructBuilder_DefaultOnNestedFails(t *testing.T) {
	point := d.Struct("Point").Field("x", d.F32())
	_, err := d.Struct("Bad").
		Field("p", d.Nested(point.Type())).Default(1).
		Build()
	iss, ok := bytepack.AsIssues(err)
	if !ok || iss[0].Code != bytepack.CodeNestedDefault {
		t.Fatalf("want nested_default, got %v", err)
	}
	if iss[0].Path != "/p" {
		t.Fatalf("want path /p, got %s", iss[0].Path)
	}
}

func TestStructBuilder_RawAnnotatedEscapeHatch(t *testing.T) {
	_, err := d.Struct("Bad").
		Field("s", d.Annotated(bytepack.StringType(), int64(4))).
		Build()
	iss, ok := bytepack.AsIssues(err)
	if !ok || iss[0].Code != bytepack.CodeBadAnnotation {
		t.Fatalf("want bad_annotation for non-int length literal, got %v", err)
	}
}

func TestStructBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	d.Struct("Bad").Field("raw", bytepack.BytesType()).MustBuild()
}

func TestStructBuilder_TypeSnapshotIsStable(t *testing.T) {
	b := d.Struct("M").Field("a", d.U8())
	st := b.Type()
	b.Field("b", d.U16())
	if len(st.Fields) != 1 {
		t.Fatalf("snapshot mutated by later Field calls: %d fields", len(st.Fields))
	}
}
