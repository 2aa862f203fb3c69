// Package filter turns the concatenated IDAT payload of a PNG into raw
// pixel rows.
//
// A PNG encoder first filters each scanline with a per-row predictor and
// then compresses the whole image with zlib. Decoding undoes these in
// reverse order.
//
// # Filters
//
//   - Inflate ([Deflate]): zlib/DEFLATE decompression using
//     github.com/klauspost/compress/zlib. Invalid or truncated streams fail
//     with oops.ErrInflate. An optional output limit guards against
//     decompression bombs.
//
//   - Scanline ([Scanline]): reverses the five PNG filter types (None, Sub,
//     Up, Average, Paeth) row by row, dropping the filter-type byte that
//     prefixes each row. See [Reconstruct] and [Paeth].
//
// # Filter Pipeline
//
// The [Pipeline] type lists filters in the order an encoder applied them
// and decodes in reverse:
//
//	p, err := filter.NewPipeline(filter.Geometry{Width: w, Height: h, Channels: c})
//	pix, err := p.Decode(idat)
//
// # Key Types
//
//   - [Filter]: interface implemented by all filters (ID and Decode methods)
//   - [Pipeline]: applies a sequence of filters for decoding
//   - [Geometry]: image dimensions the filters need
package filter
