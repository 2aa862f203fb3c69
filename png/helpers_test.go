package png

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-png/internal/chunk"
	"github.com/robert-malhotra/go-png/resource"
)

type fixture struct {
	width, height uint32
	depth         uint8
	colorType     uint8
	interlace     uint8
	plte, trns    []byte
	rows          []byte // filter byte + samples per row, uncompressed
	idatSplits    int    // split the compressed data into this many IDAT chunks
}

func ihdrBytes(w, h uint32, depth, colorType, interlace uint8) []byte {
	return []byte{
		byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
		depth, colorType, 0, 0, interlace,
	}
}

func zlibCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func (f fixture) build(t *testing.T) []byte {
	t.Helper()
	depth := f.depth
	if depth == 0 {
		depth = 8
	}

	w := chunk.NewWriter()
	w.WriteChunk(chunk.TypeIHDR, ihdrBytes(f.width, f.height, depth, f.colorType, f.interlace))
	if f.plte != nil {
		w.WriteChunk(chunk.TypePLTE, f.plte)
	}
	if f.trns != nil {
		w.WriteChunk(chunk.TypeTRNS, f.trns)
	}

	data := zlibCompress(t, f.rows)
	parts := f.idatSplits
	if parts < 1 {
		parts = 1
	}
	step := (len(data) + parts - 1) / parts
	for start := 0; start < len(data); start += step {
		end := min(start+step, len(data))
		w.WriteChunk(chunk.TypeIDAT, data[start:end])
	}
	w.WriteChunk(chunk.TypeIEND, nil)
	return w.Bytes()
}

// rgb1x1 is the minimal 1x1 RGB image with pixel (10, 20, 30).
func rgb1x1() fixture {
	return fixture{
		width:     1,
		height:    1,
		colorType: ColorRGB,
		rows:      []byte{0, 10, 20, 30},
	}
}

func quiet() []DecodeOption {
	return []DecodeOption{WithLogger(zerolog.Nop()), WithRegistry(resource.NewLibrary())}
}
