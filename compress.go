package compress

import "io"

// Compressor compresses outbound message bodies. Implementations must be
// safe for concurrent use.
type Compressor interface {
	// Compress returns a WriteCloser that compresses data written to it
	// into w. Close must be called to flush any trailing bytes before the
	// message is considered complete.
	Compress(w io.Writer) (io.WriteCloser, error)

	// MessageEncoding returns the encoding token carried in negotiation
	// headers (e.g. "gzip"). The result must be static across calls.
	MessageEncoding() string
}

// Decompressor decompresses inbound message bodies. Implementations must be
// safe for concurrent use.
type Decompressor interface {
	// Decompress reads compressed data from r and provides the
	// uncompressed data via the returned Reader. If the stream cannot be
	// initialized (e.g. a bad header), that error is returned instead.
	Decompress(r io.Reader) (io.Reader, error)

	// MessageEncoding returns the encoding token carried in negotiation
	// headers. The result must be static across calls.
	MessageEncoding() string
}

// Codec handles both directions of a compression scheme.
type Codec interface {
	Compressor
	Decompressor
}
