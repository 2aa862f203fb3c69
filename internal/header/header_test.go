package header

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-png/internal/chunk"
	"github.com/robert-malhotra/go-png/internal/oops"
)

func ihdrPayload(w, h uint32, depth, colorType, compression, filter, interlace uint8) []byte {
	return []byte{
		byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
		depth, colorType, compression, filter, interlace,
	}
}

func opts() Options {
	return Options{Logger: zerolog.Nop()}
}

func TestParse(t *testing.T) {
	h, err := Parse(ihdrPayload(0x01020304, 0x0A0B0C0D, 8, ColorRGBA, 0, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, uint32(0x01020304), h.Width)
	assert.Equal(t, uint32(0x0A0B0C0D), h.Height)
	assert.Equal(t, uint8(8), h.BitDepth)
	assert.Equal(t, ColorRGBA, h.ColorType)
	assert.Equal(t, 4, h.Channels())
	assert.Equal(t, "rgba", h.ColorName())
}

func TestParseWrongSize(t *testing.T) {
	valid := ihdrPayload(1, 1, 8, ColorRGB, 0, 0, 0)
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", valid[:12]},
		{"trailing byte", append(bytes.Clone(valid), 0xAA)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, oops.ErrInvalidFormat)
		})
	}
}

func TestChannels(t *testing.T) {
	tests := []struct {
		colorType uint8
		channels  int
	}{
		{ColorGray, 1},
		{ColorRGB, 3},
		{ColorIndexed, 1},
		{ColorGrayAlpha, 2},
		{ColorRGBA, 4},
		{5, 0},
	}
	for _, tt := range tests {
		h := Header{Width: 10, ColorType: tt.colorType}
		assert.Equal(t, tt.channels, h.Channels(), "color type %d", tt.colorType)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		h     Header
		valid bool
	}{
		{"gray 8", Header{1, 1, 8, ColorGray, 0, 0, 0}, true},
		{"rgb 8", Header{1, 1, 8, ColorRGB, 0, 0, 0}, true},
		{"indexed 8", Header{1, 1, 8, ColorIndexed, 0, 0, 0}, true},
		{"gray+alpha 8", Header{1, 1, 8, ColorGrayAlpha, 0, 0, 0}, true},
		{"rgba 8", Header{1, 1, 8, ColorRGBA, 0, 0, 0}, true},

		// Allowed by PNG but not supported here.
		{"gray 1", Header{1, 1, 1, ColorGray, 0, 0, 0}, false},
		{"gray 16", Header{1, 1, 16, ColorGray, 0, 0, 0}, false},
		{"rgb 16", Header{1, 1, 16, ColorRGB, 0, 0, 0}, false},
		{"indexed 4", Header{1, 1, 4, ColorIndexed, 0, 0, 0}, false},
		{"rgb 4", Header{1, 1, 4, ColorRGB, 0, 0, 0}, false},
		{"interlaced", Header{1, 1, 8, ColorRGB, 0, 0, 1}, false},
		{"compression 1", Header{1, 1, 8, ColorRGB, 1, 0, 0}, false},
		{"filter method 1", Header{1, 1, 8, ColorRGB, 0, 1, 0}, false},

		// Not allowed by PNG at all.
		{"rgb 2", Header{1, 1, 2, ColorRGB, 0, 0, 0}, false},
		{"indexed 16", Header{1, 1, 16, ColorIndexed, 0, 0, 0}, false},
		{"color type 1", Header{1, 1, 8, 1, 0, 0, 0}, false},
		{"color type 7", Header{1, 1, 8, 7, 0, 0, 0}, false},
		{"zero width", Header{0, 1, 8, ColorRGB, 0, 0, 0}, false},
		{"zero height", Header{1, 0, 8, ColorRGB, 0, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.h.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, oops.ErrInvalidFormat)
			}
		})
	}
}

func TestParsePalette(t *testing.T) {
	plte := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}

	p, extra, err := ParsePalette(plte, []byte{0x80})
	require.NoError(t, err)
	assert.Equal(t, 0, extra)
	assert.Equal(t, Palette{
		{R: 1, G: 2, B: 3, A: 0x80},
		{R: 4, G: 5, B: 6, A: 0xFF},
		{R: 7, G: 8, B: 9, A: 0xFF},
	}, p)

	cp := p.Color()
	require.Len(t, cp, 3)
	assert.Equal(t, color.NRGBA{R: 4, G: 5, B: 6, A: 0xFF}, cp[1])
}

func TestParsePaletteErrors(t *testing.T) {
	_, _, err := ParsePalette([]byte{1, 2, 3, 4}, nil)
	assert.ErrorIs(t, err, oops.ErrInvalidFormat)

	_, _, err = ParsePalette(nil, nil)
	assert.ErrorIs(t, err, oops.ErrInvalidFormat)

	_, _, err = ParsePalette(make([]byte, 3*257), nil)
	assert.ErrorIs(t, err, oops.ErrInvalidFormat)
}

func TestParsePaletteLongTRNS(t *testing.T) {
	p, extra, err := ParsePalette([]byte{1, 2, 3}, []byte{0, 9, 9})
	require.NoError(t, err)
	assert.Equal(t, 2, extra)
	assert.Equal(t, uint8(0), p[0].A)
}

func chunks(cs ...chunk.Chunk) []chunk.Chunk { return cs }

func mk(typ chunk.Type, data []byte) chunk.Chunk {
	return chunk.Chunk{Length: uint32(len(data)), Type: typ, Data: data}
}

func TestInterpretRGB(t *testing.T) {
	h, pal, err := Interpret(chunks(
		mk(chunk.TypeIHDR, ihdrPayload(3, 2, 8, ColorRGB, 0, 0, 0)),
		// A suggested palette in a truecolor image is ignored.
		mk(chunk.TypePLTE, []byte{1, 2, 3}),
		mk(chunk.TypeIDAT, nil),
	), opts())
	require.NoError(t, err)
	assert.Nil(t, pal)
	assert.Equal(t, uint32(3), h.Width)
	assert.Equal(t, uint32(2), h.Height)
	assert.Equal(t, 3, h.Channels())
}

func TestInterpretMissingHeader(t *testing.T) {
	_, _, err := Interpret(chunks(mk(chunk.TypeIDAT, nil), mk(chunk.TypeIEND, nil)), opts())
	assert.ErrorIs(t, err, oops.ErrInvalidFormat)
}

func TestInterpretHeaderOrder(t *testing.T) {
	ihdr := mk(chunk.TypeIHDR, ihdrPayload(1, 1, 8, ColorGray, 0, 0, 0))
	text := mk(chunk.Type{'t', 'E', 'X', 't'}, []byte("a\x00b"))

	_, _, err := Interpret(chunks(text, ihdr, mk(chunk.TypeIDAT, nil)), opts())
	assert.NoError(t, err)

	strict := opts()
	strict.StrictOrder = true
	_, _, err = Interpret(chunks(text, ihdr, mk(chunk.TypeIDAT, nil)), strict)
	assert.ErrorIs(t, err, oops.ErrInvalidFormat)

	_, _, err = Interpret(chunks(mk(chunk.TypeIDAT, nil), ihdr), opts())
	assert.ErrorIs(t, err, oops.ErrInvalidFormat)
}

func TestInterpretIndexed(t *testing.T) {
	ihdr := mk(chunk.TypeIHDR, ihdrPayload(2, 2, 8, ColorIndexed, 0, 0, 0))

	t.Run("missing palette", func(t *testing.T) {
		_, _, err := Interpret(chunks(ihdr, mk(chunk.TypeIDAT, nil)), opts())
		assert.ErrorIs(t, err, oops.ErrInvalidFormat)
	})

	t.Run("bad palette length", func(t *testing.T) {
		_, _, err := Interpret(chunks(ihdr, mk(chunk.TypePLTE, []byte{1, 2, 3, 4, 5}), mk(chunk.TypeIDAT, nil)), opts())
		assert.ErrorIs(t, err, oops.ErrInvalidFormat)
	})

	t.Run("palette with transparency", func(t *testing.T) {
		_, pal, err := Interpret(chunks(
			ihdr,
			mk(chunk.TypePLTE, []byte{10, 20, 30, 40, 50, 60}),
			mk(chunk.TypeTRNS, []byte{0x00}),
			mk(chunk.TypeIDAT, nil),
		), opts())
		require.NoError(t, err)
		assert.Equal(t, Palette{{10, 20, 30, 0}, {40, 50, 60, 0xFF}}, pal)
	})

	t.Run("transparency longer than palette", func(t *testing.T) {
		var logs bytes.Buffer
		o := Options{Logger: zerolog.New(&logs)}
		_, pal, err := Interpret(chunks(
			ihdr,
			mk(chunk.TypePLTE, []byte{10, 20, 30}),
			mk(chunk.TypeTRNS, []byte{1, 2}),
		), o)
		require.NoError(t, err)
		assert.Len(t, pal, 1)
		assert.Contains(t, logs.String(), "tRNS longer than palette")
	})
}
