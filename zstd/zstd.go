// Package zstd provides a Zstandard compress.Codec backed by
// github.com/klauspost/compress/zstd.
//
// Zstandard is not part of the default registry; applications opt in:
//
//	reg, err := compress.DefaultDecompressorRegistry().With(zstd.New(), true)
package zstd

import (
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/rchzzjcn/compress"
)

// Name is the message encoding token for Zstandard.
const Name = "zstd"

var _ compress.Codec = (*Codec)(nil)

// Codec is the Zstandard codec. Encoders and decoders are pooled; a single
// Codec value is safe for concurrent use.
type Codec struct {
	encoders sync.Pool
	decoders sync.Pool
}

// New returns a Zstandard codec with default encoder and decoder settings.
func New() *Codec {
	c := &Codec{}
	c.encoders.New = func() any {
		// Options are fixed, so NewWriter cannot fail here.
		enc, _ := zstd.NewWriter(nil)
		return enc
	}
	c.decoders.New = func() any {
		dec, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
		return dec
	}
	return c
}

// Compress returns a pooled Zstandard encoder targeting w. Close flushes the
// frame and returns the encoder to the pool.
func (c *Codec) Compress(w io.Writer) (io.WriteCloser, error) {
	enc := c.encoders.Get().(*zstd.Encoder)
	enc.Reset(w)
	return &writeCloser{enc: enc, pool: &c.encoders}, nil
}

// Decompress returns a reader yielding the uncompressed stream. The pooled
// decoder is recycled once the stream has been fully consumed.
func (c *Codec) Decompress(r io.Reader) (io.Reader, error) {
	dec := c.decoders.Get().(*zstd.Decoder)
	if err := dec.Reset(r); err != nil {
		c.decoders.Put(dec)
		return nil, err
	}
	return &reader{dec: dec, pool: &c.decoders}, nil
}

// MessageEncoding returns "zstd".
func (c *Codec) MessageEncoding() string { return Name }

type writeCloser struct {
	enc  *zstd.Encoder
	pool *sync.Pool
}

func (w *writeCloser) Write(p []byte) (int, error) {
	return w.enc.Write(p)
}

func (w *writeCloser) Close() error {
	defer w.pool.Put(w.enc)
	return w.enc.Close()
}

type reader struct {
	dec  *zstd.Decoder
	pool *sync.Pool
}

func (r *reader) Read(p []byte) (int, error) {
	if r.dec == nil {
		return 0, io.EOF
	}
	n, err := r.dec.Read(p)
	if err == io.EOF {
		r.pool.Put(r.dec)
		r.dec, r.pool = nil, nil
	}
	return n, err
}
