package filter

import (
	"fmt"
)

// ID identifies a filter stage.
type ID uint8

const (
	IDScanline ID = iota + 1
	IDDeflate
)

// Filter is the interface implemented by all decode stages.
type Filter interface {
	// ID returns the filter identifier.
	ID() ID

	// Decode transforms encoded data to decoded form.
	Decode(input []byte) ([]byte, error)
}

// Geometry describes the image a pipeline decodes.
type Geometry struct {
	Width    int
	Height   int
	Channels int

	// MaxInflated caps the inflated size in bytes; 0 means no limit.
	MaxInflated int64
}

// FilteredSize is the expected inflated size: a filter-type byte plus one
// row of samples per scanline.
func (g Geometry) FilteredSize() int64 {
	return int64(g.Height) * (1 + int64(g.Width)*int64(g.Channels))
}

// Registry maps filter IDs to filter constructors.
var Registry = map[ID]func(Geometry) Filter{
	IDScanline: func(g Geometry) Filter { return NewScanline(g) },
	IDDeflate:  func(g Geometry) Filter { return NewDeflate(g) },
}

var filterNames = map[ID]string{
	IDScanline: "scanline",
	IDDeflate:  "deflate",
}

func (id ID) String() string {
	if name, ok := filterNames[id]; ok {
		return name
	}
	return fmt.Sprintf("filter(%d)", uint8(id))
}

// New creates a filter for the given geometry.
func New(id ID, g Geometry) (Filter, error) {
	constructor, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("unsupported filter ID: %d", id)
	}
	return constructor(g), nil
}
