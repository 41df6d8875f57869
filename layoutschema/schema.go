package layoutschema

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	bytepack "github.com/reoring/bytepack"
)

// Document is a minimal exportable representation of one derived wire
// layout: per-field tags, offsets, and sizes, plus the compiled pattern.
// Keep this struct small and extend incrementally.
type Document struct {
	Name    string  `json:"name" yaml:"name"`
	Pattern string  `json:"pattern" yaml:"pattern"`
	Size    int     `json:"size" yaml:"size"`
	Fields  []Field `json:"fields" yaml:"fields"`
}

// Field describes one declared member. Exactly one shape applies per kind:
// leaves carry Tag, structs carry Struct/Fields, lists carry Count/Item.
type Field struct {
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	Kind    string  `json:"kind" yaml:"kind"`
	Tag     string  `json:"tag,omitempty" yaml:"tag,omitempty"`
	Offset  int     `json:"offset" yaml:"offset"`
	Size    int     `json:"size" yaml:"size"`
	Default any     `json:"default,omitempty" yaml:"default,omitempty"`
	Count   int     `json:"count,omitempty" yaml:"count,omitempty"`
	Item    *Field  `json:"item,omitempty" yaml:"item,omitempty"`
	Struct  string  `json:"struct,omitempty" yaml:"struct,omitempty"`
	Fields  []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// FromLayout exports a compiled layout.
func FromLayout(l *bytepack.Layout) (*Document, error) {
	return FromDescription(l.Description())
}

// FromDescription exports a Description tree.
func FromDescription(d *bytepack.Description) (*Document, error) {
	pattern, err := bytepack.Pattern(d)
	if err != nil {
		return nil, err
	}
	fields, _, err := structFields(d, 0)
	if err != nil {
		return nil, err
	}
	return &Document{Name: d.TypeName, Pattern: pattern, Size: d.Size(), Fields: fields}, nil
}

func structFields(d *bytepack.Description, off int) ([]Field, int, error) {
	fields := make([]Field, 0, len(d.Fields))
	for _, nn := range d.Fields {
		f, end, err := nodeField(nn.Name, nn.Node, off)
		if err != nil {
			return nil, 0, err
		}
		fields = append(fields, f)
		off = end
	}
	return fields, off, nil
}

func nodeField(name string, n bytepack.Node, off int) (Field, int, error) {
	switch v := n.(type) {
	case *bytepack.Leaf:
		f := Field{
			Name:    name,
			Kind:    v.Elem.String(),
			Tag:     v.Tag,
			Offset:  off,
			Size:    v.Length,
			Default: v.Default,
		}
		return f, off + v.Length, nil
	case *bytepack.Repeat:
		f := Field{Name: name, Kind: "list", Offset: off, Count: v.Count}
		end := off
		if len(v.Elems) > 0 {
			item, itemEnd, err := nodeField("", v.Elems[0], off)
			if err != nil {
				return Field{}, 0, err
			}
			f.Item = &item
			end = off + (itemEnd-off)*v.Count
		}
		f.Size = end - off
		return f, end, nil
	case *bytepack.Description:
		sub, end, err := structFields(v, off)
		if err != nil {
			return Field{}, 0, err
		}
		f := Field{
			Name:   name,
			Kind:   "struct",
			Struct: v.TypeName,
			Offset: off,
			Size:   end - off,
			Fields: sub,
		}
		return f, end, nil
	default:
		return Field{}, 0, fmt.Errorf("layoutschema: unknown node kind at %q", name)
	}
}

// EncodeJSON renders the document as indented JSON.
func (doc *Document) EncodeJSON() ([]byte, error) {
	return gojson.MarshalIndent(doc, "", "  ")
}

// EncodeYAML renders the document as YAML.
func (doc *Document) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(doc)
}
