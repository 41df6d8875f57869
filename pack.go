package bytepack

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/reoring/bytepack/i18n"
)

// The pack primitive: a C-struct-style interpreter over the pattern
// alphabet emitted by Pattern. Integer-prefixed "s" is a fixed-length
// string (NUL padded), integer-prefixed "p" a count-prefixed blob whose
// first byte stores the payload length. All other tags are single-letter
// registry tags.

// patternToken is one decoded pattern element.
type patternToken struct {
	kind   Kind // registry kind, or FixedString/FixedBytes
	length int  // bytes consumed on the wire
}

// tagKinds maps a registry tag letter back to its kind.
var tagKinds = func() map[byte]Kind {
	m := make(map[byte]Kind, len(registry))
	for k, info := range registry {
		m[info.tag[0]] = k
	}
	return m
}()

func tokenize(pattern string) ([]patternToken, error) {
	var out []patternToken
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c >= '0' && c <= '9' {
			n := 0
			for i < len(pattern) && pattern[i] >= '0' && pattern[i] <= '9' {
				n = n*10 + int(pattern[i]-'0')
				i++
			}
			if i >= len(pattern) || (pattern[i] != 's' && pattern[i] != 'p') {
				return nil, packIssue(CodeBadPattern, fmt.Sprintf("length prefix %d must qualify s or p", n))
			}
			kind := FixedString
			if pattern[i] == 'p' {
				kind = FixedBytes
			}
			if n <= 0 {
				return nil, packIssue(CodeBadPattern, "length prefix must be positive")
			}
			out = append(out, patternToken{kind: kind, length: n})
			i++
			continue
		}
		k, ok := tagKinds[c]
		if !ok {
			return nil, packIssue(CodeBadPattern, fmt.Sprintf("unknown tag %q", string(c)))
		}
		out = append(out, patternToken{kind: k, length: registry[k].length})
		i++
	}
	return out, nil
}

// PatternSize returns the fixed byte size a pattern packs to.
func PatternSize(pattern string) (int, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, t := range toks {
		n += t.length
	}
	return n, nil
}

// Pack serializes the flat, wire-ordered values into a byte buffer per the
// pattern. The value count must match the pattern's leaf count exactly.
func Pack(pattern string, values []any, order binary.ByteOrder) ([]byte, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	if len(values) != len(toks) {
		return nil, packIssue(CodeValueCount, fmt.Sprintf("pattern wants %d values, got %d", len(toks), len(values)))
	}
	size := 0
	for _, t := range toks {
		size += t.length
	}
	buf := make([]byte, size)
	off := 0
	for i, t := range toks {
		if err := packOne(buf[off:off+t.length], t, values[i], order); err != nil {
			return nil, err
		}
		off += t.length
	}
	return buf, nil
}

// Unpack deserializes a byte buffer into the flat, wire-ordered value list.
// The buffer must hold exactly the pattern's packed size.
func Unpack(pattern string, buf []byte, order binary.ByteOrder) ([]any, error) {
	toks, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	size := 0
	for _, t := range toks {
		size += t.length
	}
	if len(buf) != size {
		return nil, packIssue(CodeTruncated, fmt.Sprintf("pattern wants %d bytes, got %d", size, len(buf)))
	}
	out := make([]any, len(toks))
	off := 0
	for i, t := range toks {
		out[i] = unpackOne(buf[off:off+t.length], t, order)
		off += t.length
	}
	return out, nil
}

func packOne(dst []byte, t patternToken, v any, order binary.ByteOrder) error {
	switch t.kind {
	case U8, Char:
		u, ok := asUint(v, math.MaxUint8)
		if !ok {
			return valueIssue(t, v)
		}
		dst[0] = byte(u)
	case U16:
		u, ok := asUint(v, math.MaxUint16)
		if !ok {
			return valueIssue(t, v)
		}
		order.PutUint16(dst, uint16(u))
	case U32:
		u, ok := asUint(v, math.MaxUint32)
		if !ok {
			return valueIssue(t, v)
		}
		order.PutUint32(dst, uint32(u))
	case U64:
		u, ok := asUint(v, math.MaxUint64)
		if !ok {
			return valueIssue(t, v)
		}
		order.PutUint64(dst, u)
	case I8:
		n, ok := asInt(v, math.MinInt8, math.MaxInt8)
		if !ok {
			return valueIssue(t, v)
		}
		dst[0] = byte(int8(n))
	case I16:
		n, ok := asInt(v, math.MinInt16, math.MaxInt16)
		if !ok {
			return valueIssue(t, v)
		}
		order.PutUint16(dst, uint16(int16(n)))
	case I32:
		n, ok := asInt(v, math.MinInt32, math.MaxInt32)
		if !ok {
			return valueIssue(t, v)
		}
		order.PutUint32(dst, uint32(int32(n)))
	case I64:
		n, ok := asInt(v, math.MinInt64, math.MaxInt64)
		if !ok {
			return valueIssue(t, v)
		}
		order.PutUint64(dst, uint64(n))
	case F16:
		f, ok := asFloat(v)
		if !ok {
			return valueIssue(t, v)
		}
		order.PutUint16(dst, floatToHalf(float32(f)))
	case F32:
		f, ok := asFloat(v)
		if !ok {
			return valueIssue(t, v)
		}
		order.PutUint32(dst, math.Float32bits(float32(f)))
	case F64:
		f, ok := asFloat(v)
		if !ok {
			return valueIssue(t, v)
		}
		order.PutUint64(dst, math.Float64bits(f))
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return valueIssue(t, v)
		}
		if b {
			dst[0] = 1
		}
	case FixedString:
		s, ok := asBytes(v)
		if !ok {
			return valueIssue(t, v)
		}
		copy(dst, s) // NUL padded, silently truncated, like C struct packing
	case FixedBytes:
		s, ok := asBytes(v)
		if !ok {
			return valueIssue(t, v)
		}
		stored := len(s)
		if stored > t.length-1 {
			stored = t.length - 1
		}
		// the count lives in one byte, so payloads cap at 255 even when the
		// field is wider
		if stored > 255 {
			stored = 255
		}
		dst[0] = byte(stored)
		copy(dst[1:], s[:stored])
	default:
		return packIssue(CodeBadPattern, "unknown token kind")
	}
	return nil
}

func unpackOne(src []byte, t patternToken, order binary.ByteOrder) any {
	switch t.kind {
	case U8:
		return src[0]
	case U16:
		return order.Uint16(src)
	case U32:
		return order.Uint32(src)
	case U64:
		return order.Uint64(src)
	case I8:
		return int8(src[0])
	case I16:
		return int16(order.Uint16(src))
	case I32:
		return int32(order.Uint32(src))
	case I64:
		return int64(order.Uint64(src))
	case F16:
		return halfToFloat(order.Uint16(src))
	case F32:
		return math.Float32frombits(order.Uint32(src))
	case F64:
		return math.Float64frombits(order.Uint64(src))
	case Bool:
		return src[0] != 0
	case Char:
		return src[0]
	case FixedString:
		return string(src)
	case FixedBytes:
		stored := int(src[0])
		if stored > len(src)-1 {
			stored = len(src) - 1
		}
		out := make([]byte, stored)
		copy(out, src[1:1+stored])
		return out
	default:
		return nil
	}
}

// asUint accepts any unsigned type or an untyped-int literal, range checked
// against the tag's width.
func asUint(v any, max uint64) (uint64, bool) {
	var u uint64
	switch n := v.(type) {
	case uint8:
		u = uint64(n)
	case uint16:
		u = uint64(n)
	case uint32:
		u = uint64(n)
	case uint64:
		u = n
	case int:
		if n < 0 {
			return 0, false
		}
		u = uint64(n)
	default:
		return 0, false
	}
	return u, u <= max
}

func asInt(v any, min, max int64) (int64, bool) {
	var i int64
	switch n := v.(type) {
	case int8:
		i = int64(n)
	case int16:
		i = int64(n)
	case int32:
		i = int64(n)
	case int64:
		i = n
	case int:
		i = int64(n)
	default:
		return 0, false
	}
	return i, i >= min && i <= max
}

func asFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	default:
		return 0, false
	}
}

func asBytes(v any) ([]byte, bool) {
	switch s := v.(type) {
	case []byte:
		return s, true
	case string:
		return []byte(s), true
	default:
		return nil, false
	}
}

func packIssue(code, hint string) Issues {
	return Issues{Issue{Path: "/", Code: code, Message: i18n.T(code, nil), Hint: hint}}
}

func valueIssue(t patternToken, v any) Issues {
	return Issues{Issue{
		Path:    "/",
		Code:    CodeInvalidValue,
		Message: i18n.T(CodeInvalidValue, nil),
		Hint:    fmt.Sprintf("kind %s cannot encode %T", t.kind, v),
	}}
}

// halfToFloat widens an IEEE 754 binary16 value to float32.
func halfToFloat(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h & 0x7c00)
	mant := uint32(h & 0x03ff)
	var bits uint32
	switch {
	case exp == 0x7c00:
		bits = sign | 0x7f800000 | mant<<13 // inf / nan
	case exp != 0:
		bits = sign | (exp>>10+112)<<23 | mant<<13
	case mant != 0:
		// subnormal half, normalizes in float32
		e := int32(1)
		for mant&0x0400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x03ff
		bits = sign | uint32(e+112)<<23 | mant<<13
	default:
		bits = sign
	}
	return math.Float32frombits(bits)
}

// floatToHalf narrows a float32 to IEEE 754 binary16, rounding to nearest.
func floatToHalf(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	mant := bits & 0x7fffff
	exp := int32(bits>>23&0xff) - 127 + 15
	switch {
	case int32(bits>>23&0xff) == 255:
		if mant != 0 {
			return sign | 0x7c00 | 0x0200 // nan
		}
		return sign | 0x7c00
	case exp >= 0x1f:
		return sign | 0x7c00 // overflow to inf
	case exp <= 0:
		if exp < -10 {
			return sign // underflow to zero
		}
		mant |= 0x800000
		shift := uint32(14 - exp)
		h := uint16(mant >> shift)
		if mant>>(shift-1)&1 != 0 {
			h++
		}
		return sign | h
	default:
		h := sign | uint16(exp)<<10 | uint16(mant>>13)
		if mant&0x1000 != 0 {
			h++
		}
		return h
	}
}
