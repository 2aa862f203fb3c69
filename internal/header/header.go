package header

import (
	"fmt"

	"github.com/robert-malhotra/go-png/internal/binary"
	"github.com/robert-malhotra/go-png/internal/oops"
)

// Size is the length of an IHDR payload.
const Size = 13

// Color types.
const (
	ColorGray      uint8 = 0
	ColorRGB       uint8 = 2
	ColorIndexed   uint8 = 3
	ColorGrayAlpha uint8 = 4
	ColorRGBA      uint8 = 6
)

// allowedDepths is the PNG allow-list of bit depths per color type.
var allowedDepths = map[uint8][]uint8{
	ColorGray:      {1, 2, 4, 8, 16},
	ColorRGB:       {8, 16},
	ColorIndexed:   {1, 2, 4, 8},
	ColorGrayAlpha: {8, 16},
	ColorRGBA:      {8, 16},
}

var colorNames = map[uint8]string{
	ColorGray:      "gray",
	ColorRGB:       "rgb",
	ColorIndexed:   "indexed",
	ColorGrayAlpha: "gray+alpha",
	ColorRGBA:      "rgba",
}

// Header holds the IHDR fields.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// Parse decodes an IHDR payload. Fields are big-endian at fixed offsets.
func Parse(data []byte) (Header, error) {
	if len(data) != Size {
		return Header{}, oops.New(oops.ErrInvalidFormat, "IHDR payload is %d bytes, want %d", len(data), Size)
	}

	r := binary.NewReader(data, binary.DefaultConfig())
	var h Header
	// Length was checked above, so none of these reads can fail.
	h.Width, _ = r.ReadUint32()
	h.Height, _ = r.ReadUint32()
	h.BitDepth, _ = r.ReadUint8()
	h.ColorType, _ = r.ReadUint8()
	h.CompressionMethod, _ = r.ReadUint8()
	h.FilterMethod, _ = r.ReadUint8()
	h.InterlaceMethod, _ = r.ReadUint8()

	return h, nil
}

// Channels returns the number of samples per pixel for the color type, or 0
// for an unknown color type.
func (h Header) Channels() int {
	switch h.ColorType {
	case ColorGray, ColorIndexed:
		return 1
	case ColorGrayAlpha:
		return 2
	case ColorRGB:
		return 3
	case ColorRGBA:
		return 4
	}
	return 0
}

// ColorName returns a short name for the color type.
func (h Header) ColorName() string {
	if name, ok := colorNames[h.ColorType]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", h.ColorType)
}

// Validate checks the header against the PNG allow-list and the subset of
// it this decoder supports.
func (h Header) Validate() error {
	depths, ok := allowedDepths[h.ColorType]
	if !ok {
		return oops.New(oops.ErrInvalidFormat, "unknown color type %d", h.ColorType)
	}
	allowed := false
	for _, d := range depths {
		if d == h.BitDepth {
			allowed = true
			break
		}
	}
	if !allowed {
		return oops.New(oops.ErrInvalidFormat, "bit depth %d not allowed for %s images", h.BitDepth, h.ColorName())
	}

	if h.BitDepth != 8 {
		return oops.New(oops.ErrInvalidFormat, "bit depth %d is not supported", h.BitDepth)
	}
	if h.CompressionMethod != 0 {
		return oops.New(oops.ErrInvalidFormat, "unknown compression method %d", h.CompressionMethod)
	}
	if h.FilterMethod != 0 {
		return oops.New(oops.ErrInvalidFormat, "unknown filter method %d", h.FilterMethod)
	}
	if h.InterlaceMethod != 0 {
		return oops.New(oops.ErrInvalidFormat, "interlace method %d is not supported", h.InterlaceMethod)
	}
	if h.Width == 0 || h.Height == 0 {
		return oops.New(oops.ErrInvalidFormat, "zero image dimension %dx%d", h.Width, h.Height)
	}
	return nil
}
