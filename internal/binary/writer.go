package binary

import (
	"encoding/binary"
)

// Writer appends fixed-width integers to a growable buffer. It is the
// counterpart of Reader and is used to re-emit chunk streams.
type Writer struct {
	buf   []byte
	order binary.AppendByteOrder
}

// NewWriter creates a writer with the given configuration.
func NewWriter(cfg Config) *Writer {
	order, ok := cfg.ByteOrder.(binary.AppendByteOrder)
	if !ok {
		order = binary.BigEndian
	}
	return &Writer{order: order}
}

// Bytes returns the written bytes. The slice aliases the writer's buffer
// until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends data.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	w.buf = w.order.AppendUint32(w.buf, v)
}
