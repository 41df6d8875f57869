package bytepack

import "encoding/binary"

// Layout bundles everything derived from one structure type: the
// Description tree, its compiled pattern, and the fixed packed size.
// A Layout is immutable and safe to share; per-parse scratch comes from
// NewState.
type Layout struct {
	desc    *Description
	pattern string
	size    int
	order   binary.ByteOrder
}

// Compile builds the Description of st and compiles its pattern in one
// step. The byte order defaults to little-endian; see WithOrder.
func Compile(st *StructType) (*Layout, error) {
	d, err := BuildDescription(st)
	if err != nil {
		return nil, err
	}
	p, err := Pattern(d)
	if err != nil {
		return nil, err
	}
	return &Layout{desc: d, pattern: p, size: d.Size(), order: binary.LittleEndian}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(st *StructType) *Layout {
	l, err := Compile(st)
	if err != nil {
		panic(err)
	}
	return l
}

// Description returns the derived tree.
func (l *Layout) Description() *Description { return l.desc }

// Pattern returns the compiled pack pattern.
func (l *Layout) Pattern() string { return l.pattern }

// Size returns the fixed packed byte size.
func (l *Layout) Size() int { return l.size }

// Order returns the byte order used by Pack/Unpack.
func (l *Layout) Order() binary.ByteOrder { return l.order }

// WithOrder returns a copy of the layout bound to the given byte order.
func (l *Layout) WithOrder(order binary.ByteOrder) *Layout {
	c := *l
	c.order = order
	return &c
}

// NewState allocates a fresh per-parse scratch overlay for this layout.
func (l *Layout) NewState() *ParseState { return NewParseState(l.desc) }

// DefaultValues returns the declared default of every leaf in wire order
// (nil where the field declared none). Replicated list elements never carry
// defaults.
func (l *Layout) DefaultValues() []any {
	leaves := l.desc.Leaves()
	out := make([]any, len(leaves))
	for i, lf := range leaves {
		out[i] = lf.Default
	}
	return out
}

// Pack serializes the flat, wire-ordered leaf values.
func (l *Layout) Pack(values []any) ([]byte, error) {
	return Pack(l.pattern, values, l.order)
}

// Unpack deserializes an exact-size buffer into the flat leaf value list.
func (l *Layout) Unpack(buf []byte) ([]any, error) {
	return Unpack(l.pattern, buf, l.order)
}

// UnpackInto deserializes buf and records each leaf's raw bytes and decoded
// value into the given scratch state. The state must have been allocated
// for this layout (or one with an identical tree shape).
func (l *Layout) UnpackInto(buf []byte, st *ParseState) error {
	values, err := Unpack(l.pattern, buf, l.order)
	if err != nil {
		return err
	}
	if st.Len() != len(values) {
		return packIssue(CodeValueCount, "state shape does not match layout")
	}
	leaves := l.desc.Leaves()
	off := 0
	for i, v := range values {
		raw := make([]byte, leaves[i].Length)
		copy(raw, buf[off:off+leaves[i].Length])
		st.Record(i, raw, v)
		off += leaves[i].Length
	}
	return nil
}
