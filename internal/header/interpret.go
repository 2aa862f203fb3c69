package header

import (
	"github.com/rs/zerolog"

	"github.com/robert-malhotra/go-png/internal/chunk"
	"github.com/robert-malhotra/go-png/internal/oops"
)

// Options control how strictly the chunk order is checked.
type Options struct {
	// StrictOrder requires IHDR to be the first chunk. Otherwise it may be
	// anywhere before the first IDAT.
	StrictOrder bool

	Logger zerolog.Logger
}

// Interpret locates and validates the header and, for indexed images,
// builds the palette. The palette is nil for other color types.
func Interpret(chunks []chunk.Chunk, opts Options) (Header, Palette, error) {
	ihdr, idx := chunk.Find(chunks, chunk.TypeIHDR)
	if idx < 0 {
		return Header{}, nil, oops.New(oops.ErrInvalidFormat, "missing IHDR chunk")
	}
	if opts.StrictOrder && idx != 0 {
		return Header{}, nil, oops.New(oops.ErrInvalidFormat, "IHDR is chunk %d, want first", idx)
	}
	if _, idat := chunk.Find(chunks, chunk.TypeIDAT); idat >= 0 && idat < idx {
		return Header{}, nil, oops.New(oops.ErrInvalidFormat, "IHDR appears after image data")
	}

	h, err := Parse(ihdr.Data)
	if err != nil {
		return Header{}, nil, err
	}
	if err := h.Validate(); err != nil {
		return Header{}, nil, err
	}

	if h.ColorType != ColorIndexed {
		return h, nil, nil
	}

	plte, idx := chunk.Find(chunks, chunk.TypePLTE)
	if idx < 0 {
		return Header{}, nil, oops.New(oops.ErrInvalidFormat, "indexed image without PLTE chunk")
	}
	var trns []byte
	if c, i := chunk.Find(chunks, chunk.TypeTRNS); i >= 0 {
		trns = c.Data
	}

	pal, extra, err := ParsePalette(plte.Data, trns)
	if err != nil {
		return Header{}, nil, err
	}
	if extra > 0 {
		opts.Logger.Warn().
			Int("entries", len(pal)).
			Int("ignored", extra).
			Msg("tRNS longer than palette")
	}

	return h, pal, nil
}
