package filter

import (
	"strconv"

	"github.com/robert-malhotra/go-png/internal/oops"
)

// Scanline filter types, stored as the first byte of every row.
const (
	FilterNone    = 0
	FilterSub     = 1
	FilterUp      = 2
	FilterAverage = 3
	FilterPaeth   = 4
)

// Scanline reverses per-row PNG filtering for 8-bit samples.
type Scanline struct {
	width    int
	height   int
	channels int
}

// NewScanline creates a scanline filter for the given geometry.
func NewScanline(g Geometry) *Scanline {
	return &Scanline{width: g.Width, height: g.Height, channels: g.Channels}
}

func (f *Scanline) ID() ID {
	return IDScanline
}

func (f *Scanline) Decode(input []byte) ([]byte, error) {
	return Reconstruct(input, f.width, f.height, f.channels)
}

// Reconstruct defilters height rows of width pixels with channels bytes
// each. data holds the rows as inflated: a filter-type byte followed by
// width*channels filtered bytes. The result is row-major and
// channel-interleaved, without filter bytes. Bytes after the last row are
// ignored.
func Reconstruct(data []byte, width, height, channels int) ([]byte, error) {
	stride := width * channels
	need := int64(height) * int64(1+stride)
	if int64(len(data)) < need {
		return nil, oops.New(oops.ErrUnexpectedEOF, "image data is %d bytes, want %d", len(data), need)
	}

	pix := make([]byte, height*stride)
	prior := make([]byte, stride) // zero row above the first
	for y := 0; y < height; y++ {
		in := data[y*(1+stride) : (y+1)*(1+stride)]
		filterType := in[0]
		cur := pix[y*stride : (y+1)*stride]
		copy(cur, in[1:])

		if err := unfilterRow(filterType, cur, prior, channels); err != nil {
			return nil, oops.New(oops.ErrInvalidFormat, "row %d: %v", y, err)
		}
		prior = cur
	}

	return pix, nil
}

type badFilterError uint8

func (e badFilterError) Error() string {
	return "unknown filter type " + strconv.Itoa(int(e))
}

// unfilterRow reconstructs cur in place. prior is the reconstructed row
// above, all zeros for the first row. bpp is the distance to the byte of the
// same channel in the previous pixel.
func unfilterRow(filterType byte, cur, prior []byte, bpp int) error {
	switch filterType {
	case FilterNone:
	case FilterSub:
		for i := bpp; i < len(cur); i++ {
			cur[i] += cur[i-bpp]
		}
	case FilterUp:
		for i, p := range prior {
			cur[i] += p
		}
	case FilterAverage:
		for i := 0; i < bpp && i < len(cur); i++ {
			cur[i] += prior[i] / 2
		}
		for i := bpp; i < len(cur); i++ {
			cur[i] += uint8((int(cur[i-bpp]) + int(prior[i])) / 2)
		}
	case FilterPaeth:
		for i := 0; i < bpp && i < len(cur); i++ {
			// a and c are zero in the first pixel, so Paeth selects b.
			cur[i] += prior[i]
		}
		for i := bpp; i < len(cur); i++ {
			cur[i] += Paeth(cur[i-bpp], prior[i], prior[i-bpp])
		}
	default:
		return badFilterError(filterType)
	}
	return nil
}

// Paeth returns whichever of a (left), b (above) and c (upper left) is
// closest to a+b-c, preferring a, then b, then c on ties.
func Paeth(a, b, c uint8) uint8 {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
