package compress

import (
	"fmt"
	"strings"
)

// decompressorInfo pairs a registered decompressor with its advertisement
// flag. Never mutated after construction.
type decompressorInfo struct {
	decompressor Decompressor
	advertised   bool
}

// DecompressorRegistry is an ordered, immutable mapping from message
// encoding name to decompressor. With returns a new registry and leaves the
// receiver untouched, so a snapshot held by concurrent request handlers is
// always safe to read without synchronization.
//
// The advertised subset is cached as a comma-joined header value at
// construction time; reading it is O(1).
type DecompressorRegistry struct {
	decompressors map[string]decompressorInfo
	// order holds the keys of decompressors in registration order, most
	// recently registered last.
	order      []string
	advertised string
}

// EmptyDecompressorRegistry returns a registry with no entries and an empty
// advertised header.
func EmptyDecompressorRegistry() *DecompressorRegistry {
	return &DecompressorRegistry{decompressors: map[string]decompressorInfo{}}
}

var defaultDecompressorRegistry = func() *DecompressorRegistry {
	r, err := EmptyDecompressorRegistry().With(NewGzip(), true)
	if err != nil {
		panic(err)
	}
	r, err = r.With(Identity{}, false)
	if err != nil {
		panic(err)
	}
	return r
}()

// DefaultDecompressorRegistry returns the process-wide default registry:
// gzip (advertised) and identity (not advertised). It is built once at
// package initialization and, being immutable, is safe to share everywhere.
func DefaultDecompressorRegistry() *DecompressorRegistry {
	return defaultDecompressorRegistry
}

// With registers d for both inbound decompression and, when advertised is
// true, outbound encoding negotiation. It returns a new registry; the
// receiver is unchanged and remains usable by any other holder.
//
// Registering an encoding name that already exists replaces the prior entry
// (decompressor and advertised flag both) and moves it to the end of the
// registration order. Returns ErrInvalidEncodingName if d's encoding name is
// empty or contains a comma.
func (r *DecompressorRegistry) With(d Decompressor, advertised bool) (*DecompressorRegistry, error) {
	encoding := d.MessageEncoding()
	if encoding == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidEncodingName)
	}
	if strings.Contains(encoding, ",") {
		return nil, fmt.Errorf("%w: comma not allowed in %q", ErrInvalidEncodingName, encoding)
	}

	size := len(r.order)
	if _, ok := r.decompressors[encoding]; !ok {
		size++
	}
	next := &DecompressorRegistry{
		decompressors: make(map[string]decompressorInfo, size),
		order:         make([]string, 0, size),
	}
	for _, name := range r.order {
		if name == encoding {
			continue
		}
		next.decompressors[name] = r.decompressors[name]
		next.order = append(next.order, name)
	}
	next.decompressors[encoding] = decompressorInfo{decompressor: d, advertised: advertised}
	next.order = append(next.order, encoding)
	next.advertised = strings.Join(next.AdvertisedMessageEncodings(), ",")
	return next, nil
}

// KnownMessageEncodings returns every registered encoding name, advertised
// or not, in registration order. The returned slice is a copy owned by the
// caller.
func (r *DecompressorRegistry) KnownMessageEncodings() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// AdvertisedMessageEncodings returns the encoding names registered with
// advertised == true. The wire protocol promises peers a set, not an order;
// this implementation happens to return registration order, matching the
// cached header value.
func (r *DecompressorRegistry) AdvertisedMessageEncodings() []string {
	out := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if r.decompressors[name].advertised {
			out = append(out, name)
		}
	}
	return out
}

// RawAdvertisedMessageEncodings returns the precomputed comma-joined
// advertised encoding names, suitable for an Accept-Encoding style header.
func (r *DecompressorRegistry) RawAdvertisedMessageEncodings() string {
	return r.advertised
}

// LookupDecompressor returns the decompressor registered for encoding, or
// false if there is none. The advertised flag is ignored: if we know how to
// decode an encoding we do so even when we never advertised it, since the
// peer may have used it anyway.
func (r *DecompressorRegistry) LookupDecompressor(encoding string) (Decompressor, bool) {
	info, ok := r.decompressors[encoding]
	if !ok {
		return nil, false
	}
	return info.decompressor, true
}
