package bytepack_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	bytepack "github.com/reoring/bytepack"
)

func orderType() *bytepack.StructType {
	return &bytepack.StructType{
		Name: "Order",
		Fields: []bytepack.Field{
			{Name: "id", Type: bytepack.Elementary(bytepack.U64)},
			{Name: "ticker", Type: bytepack.Annotated(bytepack.StringType(), 4)},
			{Name: "qty", Type: bytepack.Elementary(bytepack.U32), Default: uint32(1)},
			{Name: "pos", Type: bytepack.StructOf(pointType())},
		},
	}
}

func TestCompile_EndToEnd(t *testing.T) {
	l, err := bytepack.Compile(orderType())
	if err != nil {
		t.Fatalf("compile err: %v", err)
	}
	if l.Pattern() != "Q4sIff" {
		t.Fatalf("want pattern Q4sIff, got %q", l.Pattern())
	}
	if l.Size() != 8+4+4+4+4 {
		t.Fatalf("want size 24, got %d", l.Size())
	}

	in := []any{uint64(42), "ACME", uint32(7), float32(1.5), float32(-2)}
	buf, err := l.Pack(in)
	if err != nil {
		t.Fatalf("pack err: %v", err)
	}
	out, err := l.Unpack(buf)
	if err != nil {
		t.Fatalf("unpack err: %v", err)
	}
	if out[0] != uint64(42) || out[2] != uint32(7) || out[3] != float32(1.5) || out[4] != float32(-2) {
		t.Fatalf("round trip mismatch: %v", out)
	}
	if out[1] != "ACME" {
		t.Fatalf("want ACME, got %q", out[1])
	}
}

func TestCompile_WithOrder(t *testing.T) {
	st := &bytepack.StructType{
		Name:   "One",
		Fields: []bytepack.Field{{Name: "v", Type: bytepack.Elementary(bytepack.U16)}},
	}
	le := bytepack.MustCompile(st)
	be := le.WithOrder(binary.BigEndian)

	bufLE, _ := le.Pack([]any{uint16(0x0102)})
	bufBE, _ := be.Pack([]any{uint16(0x0102)})
	if !bytes.Equal(bufLE, []byte{2, 1}) || !bytes.Equal(bufBE, []byte{1, 2}) {
		t.Fatalf("byte order not honored: le=%v be=%v", bufLE, bufBE)
	}
	// WithOrder must not mutate the original
	if le.Order() != binary.ByteOrder(binary.LittleEndian) {
		t.Fatalf("original layout order changed")
	}
}

func TestCompile_DefaultValues(t *testing.T) {
	l := bytepack.MustCompile(orderType())
	defs := l.DefaultValues()
	if len(defs) != 5 {
		t.Fatalf("want 5 slots, got %d", len(defs))
	}
	if defs[2] != uint32(1) {
		t.Fatalf("want default 1 for qty, got %v", defs[2])
	}
	for _, i := range []int{0, 1, 3, 4} {
		if defs[i] != nil {
			t.Fatalf("slot %d: want no default, got %v", i, defs[i])
		}
	}
}

func TestParseState_RecordsRawAndValues(t *testing.T) {
	l := bytepack.MustCompile(orderType())
	st := l.NewState()

	in := []any{uint64(1), "ABCD", uint32(9), float32(0), float32(4)}
	buf, err := l.Pack(in)
	if err != nil {
		t.Fatalf("pack err: %v", err)
	}
	if err := l.UnpackInto(buf, st); err != nil {
		t.Fatalf("unpack into err: %v", err)
	}
	if st.Len() != 5 {
		t.Fatalf("want 5 slots, got %d", st.Len())
	}
	if st.Slot(1).Value != "ABCD" {
		t.Fatalf("want ABCD, got %v", st.Slot(1).Value)
	}
	if !bytes.Equal(st.Slot(1).Raw, []byte("ABCD")) {
		t.Fatalf("want raw ABCD, got %v", st.Slot(1).Raw)
	}
	if got := st.Leaf(2).Tag; got != "I" {
		t.Fatalf("want leaf tag I, got %q", got)
	}
	vals := st.Values()
	if vals[0] != uint64(1) || vals[2] != uint32(9) {
		t.Fatalf("values mismatch: %v", vals)
	}
}

func TestParseState_IndependentOverlays(t *testing.T) {
	// One shared immutable layout, two in-flight parses.
	l := bytepack.MustCompile(pointType())
	a := l.NewState()
	b := l.NewState()

	bufA, _ := l.Pack([]any{float32(1), float32(2)})
	bufB, _ := l.Pack([]any{float32(3), float32(4)})

	if err := l.UnpackInto(bufA, a); err != nil {
		t.Fatalf("unpack a: %v", err)
	}
	if err := l.UnpackInto(bufB, b); err != nil {
		t.Fatalf("unpack b: %v", err)
	}
	if a.Slot(0).Value != float32(1) || b.Slot(0).Value != float32(3) {
		t.Fatalf("scratch state crossed between parses: a=%v b=%v", a.Slot(0).Value, b.Slot(0).Value)
	}

	a.Reset()
	if a.Slot(0).Value != nil || a.Slot(0).Raw != nil {
		t.Fatalf("reset left scratch behind: %+v", a.Slot(0))
	}
	if b.Slot(0).Value != float32(3) {
		t.Fatalf("reset of a must not touch b")
	}
}

func TestMustCompile_PanicsOnBadType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	bad := &bytepack.StructType{
		Name:   "Bad",
		Fields: []bytepack.Field{{Name: "s", Type: bytepack.StringType()}},
	}
	bytepack.MustCompile(bad)
}
