package bytepack

import (
	"strings"

	"github.com/reoring/bytepack/i18n"
)

// Pattern flattens a Description into the single pack pattern string
// consumed by Pack/Unpack: an in-order concatenation of every leaf's tag.
// The type-name marker contributes nothing; repeated blocks expand
// element-by-element; nested structures recurse in field order. The result
// is deterministic for a given tree shape, so callers may cache it.
func Pattern(d *Description) (string, error) {
	b := &strings.Builder{}
	if err := appendPattern(b, d, ""); err != nil {
		return "", err
	}
	return b.String(), nil
}

func appendPattern(b *strings.Builder, d *Description, path string) error {
	for _, f := range d.Fields {
		fpath := path + "/" + f.Name
		switch node := f.Node.(type) {
		case *Leaf:
			b.WriteString(node.Tag)
		case *Repeat:
			// Sub elements can only be leaves or nested descriptions.
			for _, e := range node.Elems {
				switch sub := e.(type) {
				case *Leaf:
					b.WriteString(sub.Tag)
				case *Description:
					if err := appendPattern(b, sub, fpath); err != nil {
						return err
					}
				default:
					return internalIssue(fpath)
				}
			}
		case *Description:
			if err := appendPattern(b, node, fpath); err != nil {
				return err
			}
		default:
			return internalIssue(fpath)
		}
	}
	return nil
}

// internalIssue flags a node kind the compiler does not know. Unreachable
// for trees produced by BuildDescription.
func internalIssue(path string) Issues {
	return Issues{Issue{Path: path, Code: CodeInternalTree, Message: i18n.T(CodeInternalTree, nil)}}
}
