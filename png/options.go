package png

import (
	"github.com/rs/zerolog"

	"github.com/robert-malhotra/go-png/resource"
)

// DecodeOption configures a decode.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	logger      zerolog.Logger
	registry    resource.Registry
	strictOrder bool
	maxInflated int64
	maxPixels   uint64
}

func defaultDecodeOptions() *decodeOptions {
	return &decodeOptions{
		logger:    zerolog.Nop(),
		registry:  resource.Default,
		maxPixels: DefaultMaxPixels,
	}
}

func newDecodeOptions(opts []DecodeOption) *decodeOptions {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for chunk warnings and decode progress. The
// default logger discards everything.
func WithLogger(logger zerolog.Logger) DecodeOption {
	return func(o *decodeOptions) {
		o.logger = logger
	}
}

// WithRegistry sets where Decode registers the image.
func WithRegistry(reg resource.Registry) DecodeOption {
	return func(o *decodeOptions) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithStrictHeaderOrder requires IHDR to be the very first chunk. By default
// it may appear anywhere before the first IDAT.
func WithStrictHeaderOrder() DecodeOption {
	return func(o *decodeOptions) {
		o.strictOrder = true
	}
}

// WithMaxInflatedSize caps the size of the inflated image data (0 = no cap).
func WithMaxInflatedSize(n int64) DecodeOption {
	return func(o *decodeOptions) {
		if n >= 0 {
			o.maxInflated = n
		}
	}
}

// WithMaxPixels rejects images whose width*height exceeds n (0 = no limit).
func WithMaxPixels(n uint64) DecodeOption {
	return func(o *decodeOptions) {
		o.maxPixels = n
	}
}
