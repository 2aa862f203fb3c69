package filter

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/robert-malhotra/go-png/internal/oops"
)

// maxPrealloc bounds the up-front output allocation so that a header
// claiming huge dimensions cannot force it before any data is inflated.
const maxPrealloc = 64 << 20

// Deflate implements the zlib/DEFLATE stage.
type Deflate struct {
	sizeHint int64
	limit    int64
}

// NewDeflate creates a new DEFLATE filter. The geometry's filtered size is
// used to size the output buffer up front.
func NewDeflate(g Geometry) *Deflate {
	return &Deflate{sizeHint: g.FilteredSize(), limit: g.MaxInflated}
}

func (f *Deflate) ID() ID {
	return IDDeflate
}

func (f *Deflate) Decode(input []byte) ([]byte, error) {
	return inflate(input, f.sizeHint, f.limit)
}

// Inflate decompresses a complete zlib stream. If limit is positive and the
// stream inflates to more than limit bytes, Inflate fails.
func Inflate(input []byte, limit int64) ([]byte, error) {
	return inflate(input, 0, limit)
}

func inflate(input []byte, sizeHint, limit int64) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, oops.Wrap(oops.ErrInflate, err, "zlib reader")
	}
	defer r.Close()

	var out bytes.Buffer
	if limit > 0 && sizeHint > limit {
		sizeHint = limit
	}
	if sizeHint > 0 {
		out.Grow(int(min(sizeHint, maxPrealloc)))
	}

	var src io.Reader = r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}
	n, err := out.ReadFrom(src)
	if err != nil {
		return nil, oops.Wrap(oops.ErrInflate, err, "zlib decompress")
	}
	if limit > 0 && n > limit {
		return nil, oops.New(oops.ErrInflate, "inflated data exceeds %d bytes", limit)
	}

	return out.Bytes(), nil
}
