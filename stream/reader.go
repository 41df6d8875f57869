// Package stream feeds raw bytes to a compiled layout: a pull-style Reader
// over io.Reader and a push-style Buffer for arbitrary chunk arrival. Each
// Reader/Buffer owns its scratch state, so one shared Layout can drive many
// concurrent streams.
package stream

import (
	"io"

	bytepack "github.com/reoring/bytepack"
)

// Reader decodes consecutive fixed-size messages from an io.Reader.
type Reader struct {
	r   io.Reader
	l   *bytepack.Layout
	st  *bytepack.ParseState
	buf []byte
}

// NewReader wraps r for the given layout.
func NewReader(r io.Reader, l *bytepack.Layout) *Reader {
	return &Reader{r: r, l: l, st: l.NewState(), buf: make([]byte, l.Size())}
}

// Next reads exactly one message and returns its flat leaf values in wire
// order. It returns io.EOF on a clean end of stream and
// io.ErrUnexpectedEOF when the stream ends mid-message.
func (r *Reader) Next() ([]any, error) {
	if _, err := io.ReadFull(r.r, r.buf); err != nil {
		return nil, err
	}
	if err := r.l.UnpackInto(r.buf, r.st); err != nil {
		return nil, err
	}
	return r.st.Values(), nil
}

// State exposes the reader's scratch overlay: per-leaf raw bytes and
// decoded values of the most recent message.
func (r *Reader) State() *bytepack.ParseState { return r.st }

// Buffer reassembles messages from arbitrarily sized chunks.
type Buffer struct {
	l   *bytepack.Layout
	buf []byte
}

// NewBuffer creates an empty reassembly buffer for the given layout.
func NewBuffer(l *bytepack.Layout) *Buffer {
	return &Buffer{l: l}
}

// Feed appends a chunk. Chunks may split messages at any byte boundary.
func (b *Buffer) Feed(p []byte) {
	b.buf = append(b.buf, p...)
}

// Pending returns the number of buffered, not-yet-consumed bytes.
func (b *Buffer) Pending() int { return len(b.buf) }

// Next pops one complete message if enough bytes have arrived. ok is false
// when the buffer does not yet hold a full message.
func (b *Buffer) Next() (values []any, ok bool, err error) {
	size := b.l.Size()
	if size == 0 || len(b.buf) < size {
		return nil, false, nil
	}
	values, err = b.l.Unpack(b.buf[:size])
	if err != nil {
		return nil, false, err
	}
	b.buf = append(b.buf[:0], b.buf[size:]...)
	return values, true, nil
}
