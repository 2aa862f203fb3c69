package png

import (
	"errors"

	"github.com/robert-malhotra/go-png/internal/oops"
)

// Error kinds.
var (
	ErrUnexpectedEOF    = oops.ErrUnexpectedEOF
	ErrInvalidFormat    = oops.ErrInvalidFormat
	ErrChecksumMismatch = oops.ErrChecksumMismatch
	ErrInflate          = oops.ErrInflate
)

// ErrNotPNG is returned, together with ErrInvalidFormat, when the input does
// not start with the PNG signature.
var ErrNotPNG = errors.New("not a PNG file")

// DefaultMaxPixels is the largest width*height decoded unless
// WithMaxPixels says otherwise.
const DefaultMaxPixels = 1 << 28
