package codec

import (
	"slices"
	"sync"
)

// Registry maps media types to codecs. The zero value is not usable; use
// NewRegistry. A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[MediaType]Codec
}

// NewRegistry returns a registry containing the given codecs.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{codecs: make(map[MediaType]Codec, len(codecs))}
	for _, c := range codecs {
		r.codecs[c.MediaType()] = c
	}
	return r
}

// DefaultRegistry holds the codecs this package ships: JSON, YAML,
// text/plain, and application/octet-stream.
var DefaultRegistry = NewRegistry(JSON{}, YAML{}, Text{}, Binary{})

// Register adds c to the registry, replacing any codec previously
// registered for the same media type.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[c.MediaType()] = c
}

// Lookup returns the codec for the given media type. It returns a
// *NoCodecError when no codec is registered for it.
func (r *Registry) Lookup(mediaType MediaType) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[mediaType]
	if !ok {
		return nil, &NoCodecError{MediaType: mediaType}
	}
	return c, nil
}

// MediaTypes returns the registered media types in sorted order.
func (r *Registry) MediaTypes() []MediaType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]MediaType, 0, len(r.codecs))
	for mt := range r.codecs {
		types = append(types, mt)
	}
	slices.Sort(types)
	return types
}
