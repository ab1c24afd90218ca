package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// Message encoding tokens for the codecs shipped with this package.
const (
	EncodingGzip     = "gzip"
	EncodingIdentity = "identity"
)

var (
	_ Codec = (*Gzip)(nil)
	_ Codec = Identity{}
)

// Gzip is the gzip Codec. Compression writers are pooled; a single Gzip
// value is safe for concurrent use.
type Gzip struct {
	level   int
	writers sync.Pool
}

// NewGzip returns a gzip codec at the default compression level.
func NewGzip() *Gzip {
	g, err := NewGzipLevel(gzip.DefaultCompression)
	if err != nil {
		// DefaultCompression is always valid
		panic(err)
	}
	return g
}

// NewGzipLevel returns a gzip codec at the given compression level.
// Returns an error for levels outside the range accepted by
// klauspost/compress/gzip.
func NewGzipLevel(level int) (*Gzip, error) {
	if _, err := gzip.NewWriterLevel(io.Discard, level); err != nil {
		return nil, fmt.Errorf("gzip codec: %w", err)
	}
	g := &Gzip{level: level}
	g.writers.New = func() any {
		w, _ := gzip.NewWriterLevel(io.Discard, g.level)
		return w
	}
	return g, nil
}

// Compress returns a pooled gzip writer targeting w. Close returns the
// writer to the pool.
func (g *Gzip) Compress(w io.Writer) (io.WriteCloser, error) {
	gz := g.writers.Get().(*gzip.Writer)
	gz.Reset(w)
	return &gzipWriteCloser{Writer: gz, pool: &g.writers}, nil
}

// Decompress returns a reader yielding the uncompressed stream. Fails if r
// does not start with a valid gzip header.
func (g *Gzip) Decompress(r io.Reader) (io.Reader, error) {
	return gzip.NewReader(r)
}

// MessageEncoding returns "gzip".
func (g *Gzip) MessageEncoding() string { return EncodingGzip }

type gzipWriteCloser struct {
	*gzip.Writer
	pool *sync.Pool
}

func (w *gzipWriteCloser) Close() error {
	defer w.pool.Put(w.Writer)
	return w.Writer.Close()
}

// Identity is the no-op Codec for the "identity" encoding: bytes pass
// through unchanged in both directions.
type Identity struct{}

// Compress returns a WriteCloser that writes straight through to w.
func (Identity) Compress(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

// Decompress returns r unchanged.
func (Identity) Decompress(r io.Reader) (io.Reader, error) {
	return r, nil
}

// MessageEncoding returns "identity".
func (Identity) MessageEncoding() string { return EncodingIdentity }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
