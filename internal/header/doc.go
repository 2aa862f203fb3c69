// Package header interprets the IHDR, PLTE and tRNS chunks of a PNG stream.
//
// # Validation
//
// [Header.Validate] first applies the PNG allow-list of bit depths per color
// type:
//
//	color type        allowed bit depths
//	0 gray            1, 2, 4, 8, 16
//	2 rgb             8, 16
//	3 indexed         1, 2, 4, 8
//	4 gray+alpha      8, 16
//	6 rgba            8, 16
//
// and then narrows it to what this decoder reconstructs: 8-bit samples,
// compression method 0, filter method 0 and no interlacing. Anything else
// is rejected with oops.ErrInvalidFormat rather than decoded incorrectly.
//
// # Palette
//
// Indexed images must carry a PLTE chunk whose length is a multiple of
// three. A tRNS chunk, if present, supplies alpha for the leading palette
// entries; the rest stay opaque.
package header
