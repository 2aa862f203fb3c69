package png

import (
	"image"

	"github.com/robert-malhotra/go-png/internal/header"
)

// Header holds the IHDR fields of a PNG image.
type Header = header.Header

// Palette is the color table of an indexed image.
type Palette = header.Palette

// Color types as stored in Header.ColorType.
const (
	ColorGray      = header.ColorGray
	ColorRGB       = header.ColorRGB
	ColorIndexed   = header.ColorIndexed
	ColorGrayAlpha = header.ColorGrayAlpha
	ColorRGBA      = header.ColorRGBA
)

// Image is a decoded PNG. Pix holds Height rows of Width pixels, each
// Channels bytes, with no padding between rows. For indexed images each
// byte is an index into Palette.
type Image struct {
	Width     uint32
	Height    uint32
	Channels  int
	BitDepth  int
	ColorType uint8
	Palette   Palette // nil unless ColorType is ColorIndexed
	Pix       []byte
}

// Stride returns the number of bytes per row.
func (img *Image) Stride() int {
	return int(img.Width) * img.Channels
}

// Size returns the number of bytes held by the pixel buffer and palette.
func (img *Image) Size() int {
	return len(img.Pix) + 4*len(img.Palette)
}

// ToImage converts the decoded pixels to a standard library image. The
// result does not share memory with img.
//
//	gray        *image.Gray
//	gray+alpha  *image.NRGBA
//	rgb         *image.RGBA (opaque)
//	rgba        *image.NRGBA
//	indexed     *image.Paletted
func (img *Image) ToImage() image.Image {
	w, h := int(img.Width), int(img.Height)
	rect := image.Rect(0, 0, w, h)

	switch img.ColorType {
	case ColorGray:
		dst := image.NewGray(rect)
		copy(dst.Pix, img.Pix)
		return dst

	case ColorIndexed:
		dst := image.NewPaletted(rect, img.Palette.Color())
		copy(dst.Pix, img.Pix)
		return dst

	case ColorRGB:
		dst := image.NewRGBA(rect)
		for i, j := 0, 0; i+2 < len(img.Pix); i, j = i+3, j+4 {
			dst.Pix[j+0] = img.Pix[i+0]
			dst.Pix[j+1] = img.Pix[i+1]
			dst.Pix[j+2] = img.Pix[i+2]
			dst.Pix[j+3] = 0xFF
		}
		return dst

	case ColorGrayAlpha:
		dst := image.NewNRGBA(rect)
		for i, j := 0, 0; i+1 < len(img.Pix); i, j = i+2, j+4 {
			y := img.Pix[i]
			dst.Pix[j+0] = y
			dst.Pix[j+1] = y
			dst.Pix[j+2] = y
			dst.Pix[j+3] = img.Pix[i+1]
		}
		return dst

	case ColorRGBA:
		dst := image.NewNRGBA(rect)
		copy(dst.Pix, img.Pix)
		return dst
	}

	return nil
}
