package compress

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// CompressorRegistry holds compressors for outbound message encoding.
// Unlike DecompressorRegistry it is mutable: outbound registration is an
// application-startup concern, not a per-handler one, so a single shared
// registry guarded by a lock is the simpler fit. Registering an existing
// encoding name overwrites the prior compressor.
type CompressorRegistry struct {
	mu          sync.RWMutex
	compressors map[string]Compressor
}

// NewCompressorRegistry returns an empty compressor registry.
func NewCompressorRegistry() *CompressorRegistry {
	return &CompressorRegistry{compressors: map[string]Compressor{}}
}

var defaultCompressorRegistry = func() *CompressorRegistry {
	r := NewCompressorRegistry()
	if err := r.Register(NewGzip()); err != nil {
		panic(err)
	}
	if err := r.Register(Identity{}); err != nil {
		panic(err)
	}
	return r
}()

// DefaultCompressorRegistry returns the process-wide compressor registry,
// pre-populated with gzip and identity.
func DefaultCompressorRegistry() *CompressorRegistry {
	return defaultCompressorRegistry
}

// Register adds c, replacing any compressor previously registered under the
// same encoding name. Returns ErrInvalidEncodingName if the name is empty or
// contains a comma.
func (r *CompressorRegistry) Register(c Compressor) error {
	encoding := c.MessageEncoding()
	if encoding == "" {
		return fmt.Errorf("%w: empty", ErrInvalidEncodingName)
	}
	if strings.Contains(encoding, ",") {
		return fmt.Errorf("%w: comma not allowed in %q", ErrInvalidEncodingName, encoding)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.compressors[encoding] = c
	return nil
}

// Lookup returns the compressor registered for encoding, or false if there
// is none.
func (r *CompressorRegistry) Lookup(encoding string) (Compressor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.compressors[encoding]
	return c, ok
}

// Names returns the registered encoding names, sorted.
func (r *CompressorRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.compressors))
	for name := range r.compressors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
