package codec

import (
	"fmt"
	"strings"
)

// Registry holds the available output encoders.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	return NewRegistryWith(&WebPEncoder{}, &JPEGEncoder{})
}

// NewRegistryWith registers the given encoders. Only available ones are kept.
func NewRegistryWith(all ...Encoder) *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}
	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}
	return r
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	format = strings.ToLower(format)
	if format == "jpg" {
		format = "jpeg"
	}
	return r.encoders[format]
}

// Available returns all available format names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range []string{"webp", "jpeg"} {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// Resolve returns the encoder for preferred, falling back to JPEG.
// The second return value is false when the fallback was taken.
func (r *Registry) Resolve(preferred string) (Encoder, bool, error) {
	if enc := r.Get(preferred); enc != nil {
		return enc, true, nil
	}
	if enc := r.Get("jpeg"); enc != nil {
		return enc, false, nil
	}
	return nil, false, fmt.Errorf("no encoder available for %q", preferred)
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
