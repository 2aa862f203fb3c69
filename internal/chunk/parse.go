package chunk

import (
	"bytes"

	"github.com/rs/zerolog"

	"github.com/robert-malhotra/go-png/internal/binary"
	"github.com/robert-malhotra/go-png/internal/oops"
)

// Walk visits each chunk of buf starting at offset, in file order. valid is
// false when the stored CRC does not match the type tag and payload. The
// walk ends after the IEND chunk has been visited. If fn returns an error
// the walk stops and Walk returns it.
func Walk(buf []byte, offset int, fn func(c Chunk, valid bool) error) error {
	r := binary.NewReader(buf, binary.DefaultConfig()).At(offset)

	for r.Remaining() > 0 {
		start := r.Pos()

		length, err := r.ReadUint32()
		if err != nil {
			return oops.New(oops.ErrUnexpectedEOF, "reading chunk length at offset %d", start)
		}
		tag, err := r.ReadBytes(4)
		if err != nil {
			return oops.New(oops.ErrUnexpectedEOF, "reading chunk type at offset %d", start)
		}
		var typ Type
		copy(typ[:], tag)

		if uint64(length) > uint64(r.Remaining()) {
			return oops.New(oops.ErrUnexpectedEOF, "reading %d-byte %s payload at offset %d", length, typ, start)
		}
		payload, err := r.ReadBytes(int(length))
		if err != nil {
			return oops.New(oops.ErrUnexpectedEOF, "reading %s payload at offset %d", typ, start)
		}
		stored, err := r.ReadUint32()
		if err != nil {
			return oops.New(oops.ErrUnexpectedEOF, "reading %s crc at offset %d", typ, start)
		}

		c := Chunk{
			Length: length,
			Type:   typ,
			Data:   bytes.Clone(payload),
			CRC:    stored,
			Offset: start,
		}
		if c.Data == nil {
			c.Data = []byte{}
		}
		valid := binary.ChunkCRC(typ[:], payload) == stored

		if err := fn(c, valid); err != nil {
			return err
		}
		if typ == TypeIEND {
			return nil
		}
	}

	return oops.New(oops.ErrUnexpectedEOF, "chunk stream ended without IEND")
}

// Parse returns the valid chunks of buf starting at offset. Chunks with a
// CRC mismatch are dropped and logged at warn level.
func Parse(buf []byte, offset int, logger zerolog.Logger) ([]Chunk, error) {
	var chunks []Chunk

	err := Walk(buf, offset, func(c Chunk, valid bool) error {
		if !valid {
			logger.Warn().
				Err(oops.ErrChecksumMismatch).
				Str("chunk", c.Type.String()).
				Int("offset", c.Offset).
				Uint32("stored_crc", c.CRC).
				Uint32("computed_crc", binary.ChunkCRC(c.Type[:], c.Data)).
				Msg("dropping corrupt chunk")
			return nil
		}
		logger.Trace().
			Str("chunk", c.Type.String()).
			Uint32("length", c.Length).
			Msg("chunk ok")
		chunks = append(chunks, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return chunks, nil
}

// Count returns the number of chunks of the given type.
func Count(chunks []Chunk, typ Type) int {
	n := 0
	for _, c := range chunks {
		if c.Type == typ {
			n++
		}
	}
	return n
}
