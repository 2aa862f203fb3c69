package header

import (
	"image/color"

	"github.com/robert-malhotra/go-png/internal/oops"
)

// MaxPaletteEntries is the largest palette an 8-bit index can address.
const MaxPaletteEntries = 256

// Palette is the color table of an indexed image.
type Palette []color.NRGBA

// ParsePalette builds a palette from a PLTE payload and an optional tRNS
// payload. It returns the number of tRNS bytes that did not correspond to a
// palette entry.
func ParsePalette(plte, trns []byte) (Palette, int, error) {
	if len(plte)%3 != 0 {
		return nil, 0, oops.New(oops.ErrInvalidFormat, "PLTE length %d is not a multiple of 3", len(plte))
	}
	n := len(plte) / 3
	if n == 0 || n > MaxPaletteEntries {
		return nil, 0, oops.New(oops.ErrInvalidFormat, "PLTE has %d entries", n)
	}

	p := make(Palette, n)
	for i := range p {
		p[i] = color.NRGBA{R: plte[3*i], G: plte[3*i+1], B: plte[3*i+2], A: 0xFF}
	}

	extra := 0
	if len(trns) > n {
		extra = len(trns) - n
		trns = trns[:n]
	}
	for i, a := range trns {
		p[i].A = a
	}

	return p, extra, nil
}

// Color returns the palette as a color.Palette.
func (p Palette) Color() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = c
	}
	return cp
}
