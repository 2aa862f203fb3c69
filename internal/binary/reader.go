// Package binary provides the low-level byte decoding and checksum helpers
// used to walk PNG containers.
package binary

import (
	"encoding/binary"
	"io"
)

// Reader decodes fixed-width integers from an in-memory buffer. All reads
// are bounds checked; a read past the end of the buffer returns
// io.ErrUnexpectedEOF and leaves the position unchanged.
type Reader struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// Config holds reader configuration.
type Config struct {
	ByteOrder binary.ByteOrder
}

// DefaultConfig returns the network byte order used by PNG.
func DefaultConfig() Config {
	return Config{
		ByteOrder: binary.BigEndian,
	}
}

// NewReader creates a reader over buf with the given configuration.
func NewReader(buf []byte, cfg Config) *Reader {
	order := cfg.ByteOrder
	if order == nil {
		order = binary.BigEndian
	}
	return &Reader{
		buf:   buf,
		order: order,
	}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying buffer but has independent position.
func (r *Reader) At(offset int) *Reader {
	return &Reader{
		buf:   r.buf,
		order: r.order,
		pos:   offset,
	}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	if r.pos >= len(r.buf) {
		return 0
	}
	return len(r.buf) - r.pos
}

// ReadBytes returns the next n bytes. The result aliases the underlying
// buffer; callers that keep it must copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > r.Remaining() {
		return nil, io.ErrUnexpectedEOF
	}
	buf := r.buf[r.pos : r.pos+n]
	r.pos += n
	return buf, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}
