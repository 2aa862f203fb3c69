package png

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/robert-malhotra/go-png/internal/chunk"
	"github.com/robert-malhotra/go-png/internal/filter"
	"github.com/robert-malhotra/go-png/internal/header"
	"github.com/robert-malhotra/go-png/internal/oops"
)

// ChunkInfo describes one chunk as found in the file, including chunks that
// a decode would drop.
type ChunkInfo struct {
	Type     string
	Offset   int
	Length   uint32
	CRC      uint32
	Valid    bool
	Critical bool
}

// Inspect lists every chunk of input in file order.
func Inspect(input []byte) ([]ChunkInfo, error) {
	if err := checkSignature(input); err != nil {
		return nil, err
	}

	var infos []ChunkInfo
	err := chunk.Walk(input, chunk.SignatureSize, func(c chunk.Chunk, valid bool) error {
		infos = append(infos, ChunkInfo{
			Type:     c.Type.String(),
			Offset:   c.Offset,
			Length:   c.Length,
			CRC:      c.CRC,
			Valid:    valid,
			Critical: c.Type.IsCritical(),
		})
		return nil
	})
	if err != nil {
		return infos, err
	}
	return infos, nil
}

// ReadHeader returns the IHDR fields without decoding image data. The header
// is not checked against the decoder's supported formats, so it also works
// for images Decode would reject.
func ReadHeader(input []byte) (Header, error) {
	if err := checkSignature(input); err != nil {
		return Header{}, err
	}

	chunks, err := chunk.Parse(input, chunk.SignatureSize, zerolog.Nop())
	if err != nil {
		return Header{}, fmt.Errorf("reading chunks: %w", err)
	}
	c, idx := chunk.Find(chunks, chunk.TypeIHDR)
	if idx < 0 {
		return Header{}, oops.New(ErrInvalidFormat, "missing IHDR chunk")
	}
	return header.Parse(c.Data)
}

// ReadPalette returns the palette of an indexed image, with tRNS alpha
// applied. It is nil for other color types.
func ReadPalette(input []byte, opts ...DecodeOption) (Palette, error) {
	o := newDecodeOptions(opts)

	chunks, err := parseChunks(input, o)
	if err != nil {
		return nil, err
	}
	_, pal, err := header.Interpret(chunks, header.Options{
		StrictOrder: o.strictOrder,
		Logger:      o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return pal, nil
}

// InflatedSize returns the number of bytes the concatenated IDAT payloads
// inflate to, without defiltering them.
func InflatedSize(input []byte, opts ...DecodeOption) (int, error) {
	o := newDecodeOptions(opts)

	chunks, err := parseChunks(input, o)
	if err != nil {
		return 0, err
	}
	idat := concatIDAT(chunks)
	if len(idat) == 0 {
		return 0, oops.New(ErrInvalidFormat, "no IDAT chunks")
	}
	data, err := filter.Inflate(idat, o.maxInflated)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

func parseChunks(input []byte, o *decodeOptions) ([]chunk.Chunk, error) {
	if err := checkSignature(input); err != nil {
		return nil, err
	}
	chunks, err := chunk.Parse(input, chunk.SignatureSize, o.logger)
	if err != nil {
		return nil, fmt.Errorf("reading chunks: %w", err)
	}
	return chunks, nil
}

// keepOnStrip lists the chunks Strip preserves besides IHDR and IEND.
var keepOnStrip = map[chunk.Type]bool{
	chunk.TypePLTE: true,
	chunk.TypeTRNS: true,
	chunk.TypeIDAT: true,
}

// Strip rewrites input keeping only the chunks needed to render it (IHDR,
// PLTE, tRNS, IDAT, IEND). Chunks with a bad CRC are dropped like during a
// decode. Image data is copied, not recompressed.
func Strip(input []byte, opts ...DecodeOption) ([]byte, error) {
	o := newDecodeOptions(opts)

	chunks, err := parseChunks(input, o)
	if err != nil {
		return nil, err
	}
	ihdr, idx := chunk.Find(chunks, chunk.TypeIHDR)
	if idx < 0 {
		return nil, oops.New(ErrInvalidFormat, "missing IHDR chunk")
	}

	w := chunk.NewWriter()
	w.WriteChunk(chunk.TypeIHDR, ihdr.Data)
	dropped := 0
	for _, c := range chunks {
		if !keepOnStrip[c.Type] {
			if c.Type != chunk.TypeIHDR && c.Type != chunk.TypeIEND {
				dropped++
			}
			continue
		}
		w.WriteChunk(c.Type, c.Data)
	}
	w.WriteChunk(chunk.TypeIEND, nil)

	o.logger.Debug().Int("dropped", dropped).Msg("png stripped")
	return w.Bytes(), nil
}
