// Package resource is a named store of decoded resources with a registry of
// codecs keyed by format tag.
//
// Codecs register themselves, usually from an init function:
//
//	resource.RegisterCodec(resource.Codec{
//		Format: "png",
//		Match:  png.IsPNG,
//		Decode: decodeInto,
//	})
//
// and a Library dispatches raw buffers to the codec whose Match accepts
// them. The Library only sees the Resource interface; it knows nothing
// about any particular format.
package resource

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrUnknownFormat = errors.New("unknown resource format")
	ErrEmptyName     = errors.New("resource name is empty")
	ErrNilResource   = errors.New("resource is nil")
)

// Resource is anything a Library can hold.
type Resource interface {
	// Size returns the number of bytes the resource keeps in memory.
	Size() int
}

// Registry receives decoded resources.
type Registry interface {
	Register(name string, r Resource) error
}

// DecodeFunc decodes buf and registers the result in reg under name.
// It must register nothing when it fails.
type DecodeFunc func(name string, buf []byte, reg Registry) error

// Codec describes a decoder for one format.
type Codec struct {
	Format string
	Match  func(buf []byte) bool
	Decode DecodeFunc
}

var (
	codecsMu sync.RWMutex
	codecs   []Codec
)

// RegisterCodec makes a codec available to every Library. Registering a
// second codec for the same format replaces the first.
func RegisterCodec(c Codec) {
	codecsMu.Lock()
	defer codecsMu.Unlock()

	for i := range codecs {
		if codecs[i].Format == c.Format {
			codecs[i] = c
			return
		}
	}
	codecs = append(codecs, c)
}

// Formats returns the registered format tags in registration order.
func Formats() []string {
	codecsMu.RLock()
	defer codecsMu.RUnlock()

	formats := make([]string, len(codecs))
	for i, c := range codecs {
		formats[i] = c.Format
	}
	return formats
}

// Sniff returns the first registered codec that matches buf.
func Sniff(buf []byte) (Codec, bool) {
	codecsMu.RLock()
	defer codecsMu.RUnlock()

	for _, c := range codecs {
		if c.Match != nil && c.Match(buf) {
			return c, true
		}
	}
	return Codec{}, false
}

// Library holds resources by name. It is safe for concurrent use.
type Library struct {
	mu    sync.RWMutex
	items map[string]Resource
	used  int64
}

// Default is the library used when a decoder is not given another registry.
var Default = NewLibrary()

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{items: make(map[string]Resource)}
}

// Register stores r under name, replacing any previous resource of that
// name.
func (l *Library) Register(name string, r Resource) error {
	if name == "" {
		return ErrEmptyName
	}
	if r == nil {
		return ErrNilResource
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if old, ok := l.items[name]; ok {
		l.used -= int64(old.Size())
	}
	l.items[name] = r
	l.used += int64(r.Size())
	return nil
}

// AddBuffer decodes buf with the codec that recognizes it and stores the
// result under name.
func (l *Library) AddBuffer(name string, buf []byte) error {
	codec, ok := Sniff(buf)
	if !ok {
		return ErrUnknownFormat
	}
	return codec.Decode(name, buf, l)
}

// Get returns the resource stored under name.
func (l *Library) Get(name string) (Resource, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, ok := l.items[name]
	return r, ok
}

// Remove drops the resource stored under name, if any.
func (l *Library) Remove(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if old, ok := l.items[name]; ok {
		l.used -= int64(old.Size())
		delete(l.items, name)
	}
}

// Names returns the stored names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.items))
	for name := range l.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored resources.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// UsedMemory returns the summed Size of all stored resources.
func (l *Library) UsedMemory() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.used
}
