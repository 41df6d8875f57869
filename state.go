package bytepack

// Slot holds the most recent scratch for one leaf of a live parse: the raw
// bytes that were consumed and the decoded value.
type Slot struct {
	Raw   []byte
	Value any
}

// ParseState is the mutable per-parse overlay for one Description tree.
// The tree itself stays immutable and shareable; every logically concurrent
// parse must own its own ParseState. Slots are addressed by leaf index in
// wire order (Description.Leaves order).
type ParseState struct {
	leaves []*Leaf
	slots  []Slot
}

// NewParseState allocates a zeroed overlay sized for d's leaves.
func NewParseState(d *Description) *ParseState {
	ls := d.Leaves()
	return &ParseState{leaves: ls, slots: make([]Slot, len(ls))}
}

// Len returns the leaf count.
func (s *ParseState) Len() int { return len(s.slots) }

// Leaf returns the immutable leaf metadata at index i.
func (s *ParseState) Leaf(i int) *Leaf { return s.leaves[i] }

// Slot returns the current scratch for leaf i.
func (s *ParseState) Slot(i int) Slot { return s.slots[i] }

// Record overwrites the scratch for leaf i.
func (s *ParseState) Record(i int, raw []byte, v any) {
	s.slots[i] = Slot{Raw: raw, Value: v}
}

// Values returns the decoded values in wire order.
func (s *ParseState) Values() []any {
	out := make([]any, len(s.slots))
	for i, sl := range s.slots {
		out[i] = sl.Value
	}
	return out
}

// Reset clears all scratch so the state can drive a fresh parse.
func (s *ParseState) Reset() {
	for i := range s.slots {
		s.slots[i] = Slot{}
	}
}
