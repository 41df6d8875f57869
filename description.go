package bytepack

import "reflect"

// NodeKind identifies a Description tree node type.
type NodeKind int

const (
	NodeLeaf NodeKind = iota
	NodeRepeat
	NodeStruct
)

// Node is the root Description tree interface. The set of implementations
// is closed: Leaf, Repeat, and Description. Nodes are immutable after
// BuildDescription returns; per-parse scratch lives in ParseState instead
// (see NewParseState), so one tree is safely shared across parses.
type Node interface {
	Kind() NodeKind
}

// Leaf is one scalar encodable unit: an elementary registry kind or a
// fixed-length string/blob.
type Leaf struct {
	Elem    Kind         // registry kind, or FixedString/FixedBytes
	GoType  reflect.Type // in-memory type an unpacked value decodes to
	Tag     string       // pack tag, e.g. "I" or "12s"
	Length  int          // fixed encoded byte length
	Default any          // nil when the declaring field had no default
}

func (l *Leaf) Kind() NodeKind { return NodeLeaf }

// Repeat is a fixed-count repeated block. Every element shares an identical
// per-element schema; elements are independently owned copies, never views
// of one shared sub-tree.
type Repeat struct {
	Count int
	Elems []Node
}

func (r *Repeat) Kind() NodeKind { return NodeRepeat }

// NamedNode pairs a field name with its sub-node. Descriptions hold slices
// of these rather than a map so declaration order survives.
type NamedNode struct {
	Name string
	Node Node
}

// Description is the derived wire layout of one structure type: the
// originating type name (the marker) plus the ordered per-field sub-nodes.
type Description struct {
	TypeName string
	Fields   []NamedNode
}

func (d *Description) Kind() NodeKind { return NodeStruct }

// Leaves returns every leaf of the tree in wire order. The returned slice
// indexes ParseState slots and matches the flat value order expected by
// Pack/Unpack.
func (d *Description) Leaves() []*Leaf {
	var out []*Leaf
	collectLeaves(d, &out)
	return out
}

func collectLeaves(n Node, out *[]*Leaf) {
	switch v := n.(type) {
	case *Leaf:
		*out = append(*out, v)
	case *Repeat:
		for _, e := range v.Elems {
			collectLeaves(e, out)
		}
	case *Description:
		for _, f := range v.Fields {
			collectLeaves(f.Node, out)
		}
	}
}

// Size returns the total fixed byte length of the layout.
func (d *Description) Size() int {
	n := 0
	for _, l := range d.Leaves() {
		n += l.Length
	}
	return n
}

// copyNode deep-copies a sub-tree so repeated blocks never alias one shared
// instance across slots.
func copyNode(n Node) Node {
	switch v := n.(type) {
	case *Leaf:
		c := *v
		return &c
	case *Repeat:
		elems := make([]Node, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = copyNode(e)
		}
		return &Repeat{Count: v.Count, Elems: elems}
	case *Description:
		fields := make([]NamedNode, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = NamedNode{Name: f.Name, Node: copyNode(f.Node)}
		}
		return &Description{TypeName: v.TypeName, Fields: fields}
	default:
		return n
	}
}
