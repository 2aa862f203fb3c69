// Package png decodes PNG images held in memory into raw pixel buffers and
// registers them in a resource library.
//
// # Decoding
//
//	err := png.Decode("ui/button", buf)
//	res, _ := resource.Default.Get("ui/button")
//	img := res.(*png.Image)
//
// [DecodeImage] runs the same pipeline without registering the result.
//
// Decoding is a fixed sequence: the signature is checked, the chunk stream
// is parsed and every chunk CRC verified, the IHDR (and PLTE/tRNS for
// indexed images) is interpreted, all IDAT payloads are concatenated and
// inflated, and each scanline is defiltered. Chunks with a bad CRC are
// dropped with a warning; every other problem aborts the decode and nothing
// is registered.
//
// # Supported Images
//
// 8-bit gray, gray+alpha, RGB, RGBA and indexed images without interlacing.
// Other bit depths and Adam7 interlacing fail with [ErrInvalidFormat].
//
// # Errors
//
// Every decode failure matches one of [ErrUnexpectedEOF], [ErrInvalidFormat]
// or [ErrInflate] with errors.Is. [ErrChecksumMismatch] is only ever logged.
// When the image decodes but the registry refuses it, [Decode] returns the
// registry's error (for example [resource.ErrEmptyName]) wrapped instead.
//
// Nothing is logged unless a logger is passed with [WithLogger].
package png
