package bytepack

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Schema build failures. All are permanent: retrying without changing
	// the structure declaration is pointless.
	CodeNestedDefault   = "nested_default"
	CodeLengthRequired  = "length_required"
	CodeBadAnnotation   = "bad_annotation"
	CodeUnsupportedList = "unsupported_list"
	CodeUnsupportedType = "unsupported_type"
	// Internal consistency failure from the pattern compiler. Unreachable
	// for builder-produced trees.
	CodeInternalTree = "internal_tree"
	// Pack/unpack failures against live data.
	CodeTruncated    = "truncated"
	CodeValueCount   = "value_count"
	CodeInvalidValue = "invalid_value"
	CodeBadPattern   = "bad_pattern"
)

// Issue represents a single schema or packing error entry.
type Issue struct {
	Path    string // Slash-separated field path (for example: /header/ticker).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: the offending declared type, expected counts, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. nested_default at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
