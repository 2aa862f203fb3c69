package chunk

import (
	"github.com/robert-malhotra/go-png/internal/binary"
)

// Writer serializes a chunk stream. Lengths and CRCs are always computed
// from the payload, so a stream re-emitted through a Writer has no CRC
// mismatches.
type Writer struct {
	w *binary.Writer
}

// NewWriter returns a Writer that has already emitted the PNG signature.
func NewWriter() *Writer {
	w := binary.NewWriter(binary.DefaultConfig())
	w.WriteBytes(Signature[:])
	return &Writer{w: w}
}

// WriteChunk appends one chunk.
func (cw *Writer) WriteChunk(typ Type, data []byte) {
	cw.w.WriteUint32(uint32(len(data)))
	cw.w.WriteBytes(typ[:])
	cw.w.WriteBytes(data)
	cw.w.WriteUint32(binary.ChunkCRC(typ[:], data))
}

// WriteRaw appends a chunk with a caller-supplied CRC. It exists to build
// deliberately damaged streams.
func (cw *Writer) WriteRaw(typ Type, data []byte, crc uint32) {
	cw.w.WriteUint32(uint32(len(data)))
	cw.w.WriteBytes(typ[:])
	cw.w.WriteBytes(data)
	cw.w.WriteUint32(crc)
}

// Bytes returns the stream written so far.
func (cw *Writer) Bytes() []byte {
	return cw.w.Bytes()
}
