package bytepack_test

import (
	"testing"

	bytepack "github.com/reoring/bytepack"
)

func TestRegistry_TagsAreUnique(t *testing.T) {
	seen := map[string]bytepack.Kind{}
	for _, k := range bytepack.ElementaryKinds() {
		tag := bytepack.KindTag(k)
		if tag == "" {
			t.Fatalf("kind %v has no tag", k)
		}
		if prev, dup := seen[tag]; dup {
			t.Fatalf("tag %q assigned to both %v and %v", tag, prev, k)
		}
		seen[tag] = k
	}
}

func TestRegistry_LengthsAndTypes(t *testing.T) {
	want := map[bytepack.Kind]int{
		bytepack.U8: 1, bytepack.U16: 2, bytepack.U32: 4, bytepack.U64: 8,
		bytepack.I8: 1, bytepack.I16: 2, bytepack.I32: 4, bytepack.I64: 8,
		bytepack.F16: 2, bytepack.F32: 4, bytepack.F64: 8,
		bytepack.Bool: 1, bytepack.Char: 1,
	}
	if len(want) != len(bytepack.ElementaryKinds()) {
		t.Fatalf("registry size drifted: want %d kinds", len(want))
	}
	for k, n := range want {
		if got := bytepack.KindLength(k); got != n {
			t.Fatalf("kind %v: want length %d, got %d", k, n, got)
		}
		if bytepack.KindGoType(k) == nil {
			t.Fatalf("kind %v: missing go type", k)
		}
		if !bytepack.IsElementary(k) {
			t.Fatalf("kind %v should be elementary", k)
		}
	}
}

func TestRegistry_AnnotatedClassesAreNotElementary(t *testing.T) {
	if bytepack.IsElementary(bytepack.FixedString) || bytepack.IsElementary(bytepack.FixedBytes) {
		t.Fatalf("fixed string/bytes must not be registry members")
	}
}
