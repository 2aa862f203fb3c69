package filter

import (
	"fmt"
)

// encodeOrder is the order a PNG encoder applies its stages.
var encodeOrder = []ID{IDScanline, IDDeflate}

// Pipeline represents a filter pipeline that can decode image data.
type Pipeline struct {
	filters []Filter
}

// NewPipeline creates the PNG decode pipeline for the given geometry.
func NewPipeline(g Geometry) (*Pipeline, error) {
	return NewPipelineOf(g, encodeOrder...)
}

// NewPipelineOf creates a pipeline from filter IDs listed in encode order.
func NewPipelineOf(g Geometry, ids ...ID) (*Pipeline, error) {
	p := &Pipeline{
		filters: make([]Filter, 0, len(ids)),
	}

	for _, id := range ids {
		f, err := New(id, g)
		if err != nil {
			return nil, fmt.Errorf("creating %s filter: %w", id, err)
		}
		p.filters = append(p.filters, f)
	}

	return p, nil
}

// Decode applies the filter pipeline to encoded data.
// Filters are applied in reverse order (last filter first).
func (p *Pipeline) Decode(input []byte) ([]byte, error) {
	if len(p.filters) == 0 {
		return input, nil
	}

	data := input

	for i := len(p.filters) - 1; i >= 0; i-- {
		var err error
		data, err = p.filters[i].Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.filters[i].ID(), err)
		}
	}

	return data, nil
}
