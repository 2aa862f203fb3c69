package png

import (
	"bytes"
	"fmt"

	"github.com/robert-malhotra/go-png/internal/chunk"
	"github.com/robert-malhotra/go-png/internal/filter"
	"github.com/robert-malhotra/go-png/internal/header"
	"github.com/robert-malhotra/go-png/internal/oops"
	"github.com/robert-malhotra/go-png/resource"
)

// Format is the format tag the codec registers under.
const Format = "png"

func init() {
	resource.RegisterCodec(resource.Codec{
		Format: Format,
		Match:  IsPNG,
		Decode: func(name string, buf []byte, reg resource.Registry) error {
			return Decode(name, buf, WithRegistry(reg))
		},
	})
}

// IsPNG reports whether buf starts with the PNG signature.
func IsPNG(buf []byte) bool {
	return chunk.HasSignature(buf)
}

// Decode decodes input and registers the image under name. On failure
// nothing is registered.
func Decode(name string, input []byte, opts ...DecodeOption) error {
	o := newDecodeOptions(opts)

	img, err := decode(input, o)
	if err != nil {
		o.logger.Debug().Err(err).Str("name", name).Msg("png decode failed")
		return fmt.Errorf("decoding %q: %w", name, err)
	}

	if err := o.registry.Register(name, img); err != nil {
		return fmt.Errorf("registering %q: %w", name, err)
	}
	return nil
}

// DecodeImage decodes input without registering it anywhere.
func DecodeImage(input []byte, opts ...DecodeOption) (*Image, error) {
	return decode(input, newDecodeOptions(opts))
}

func decode(input []byte, o *decodeOptions) (*Image, error) {
	if err := checkSignature(input); err != nil {
		return nil, err
	}

	chunks, err := chunk.Parse(input, chunk.SignatureSize, o.logger)
	if err != nil {
		return nil, fmt.Errorf("reading chunks: %w", err)
	}

	h, pal, err := header.Interpret(chunks, header.Options{
		StrictOrder: o.strictOrder,
		Logger:      o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if pixels := uint64(h.Width) * uint64(h.Height); o.maxPixels > 0 && pixels > o.maxPixels {
		return nil, oops.New(ErrInvalidFormat, "image is %dx%d, more than %d pixels", h.Width, h.Height, o.maxPixels)
	}

	idat := concatIDAT(chunks)
	if len(idat) == 0 {
		return nil, oops.New(ErrInvalidFormat, "no IDAT chunks")
	}

	geom := filter.Geometry{
		Width:       int(h.Width),
		Height:      int(h.Height),
		Channels:    h.Channels(),
		MaxInflated: o.maxInflated,
	}
	pipeline, err := filter.NewPipeline(geom)
	if err != nil {
		return nil, err
	}
	pix, err := pipeline.Decode(idat)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	if pal != nil {
		if err := checkIndices(pix, len(pal)); err != nil {
			return nil, err
		}
	}

	o.logger.Debug().
		Uint32("width", h.Width).
		Uint32("height", h.Height).
		Str("color", h.ColorName()).
		Int("chunks", len(chunks)).
		Int("idat_chunks", chunk.Count(chunks, chunk.TypeIDAT)).
		Int("idat_bytes", len(idat)).
		Int64("inflated_bytes", geom.FilteredSize()).
		Msg("png decoded")

	return &Image{
		Width:     h.Width,
		Height:    h.Height,
		Channels:  h.Channels(),
		BitDepth:  int(h.BitDepth),
		ColorType: h.ColorType,
		Palette:   pal,
		Pix:       pix,
	}, nil
}

func checkSignature(input []byte) error {
	if !chunk.HasSignature(input) {
		return oops.Wrap(ErrInvalidFormat, ErrNotPNG, "signature")
	}
	return nil
}

func concatIDAT(chunks []chunk.Chunk) []byte {
	n := 0
	for _, c := range chunks {
		if c.Type == chunk.TypeIDAT {
			n += len(c.Data)
		}
	}
	if n == 0 {
		return nil
	}

	var buf bytes.Buffer
	buf.Grow(n)
	for _, c := range chunks {
		if c.Type == chunk.TypeIDAT {
			buf.Write(c.Data)
		}
	}
	return buf.Bytes()
}

func checkIndices(pix []byte, entries int) error {
	if entries >= header.MaxPaletteEntries {
		return nil
	}
	for i, idx := range pix {
		if int(idx) >= entries {
			return oops.New(ErrInvalidFormat, "palette index %d at byte %d, palette has %d entries", idx, i, entries)
		}
	}
	return nil
}
