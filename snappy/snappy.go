// Package snappy provides a Snappy compress.Codec backed by
// github.com/klauspost/compress/snappy (the S2 encoder in Snappy-compatible
// mode).
package snappy

import (
	"io"

	"github.com/klauspost/compress/snappy"

	"github.com/rchzzjcn/compress"
)

// Name is the message encoding token for Snappy.
const Name = "snappy"

var _ compress.Codec = Codec{}

// Codec is the Snappy codec, using the framed stream format. The zero value
// is ready to use and safe for concurrent use.
type Codec struct{}

// New returns a Snappy codec.
func New() Codec { return Codec{} }

// Compress returns a buffered Snappy stream writer targeting w.
func (Codec) Compress(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

// Decompress returns a reader yielding the uncompressed stream.
func (Codec) Decompress(r io.Reader) (io.Reader, error) {
	return snappy.NewReader(r), nil
}

// MessageEncoding returns "snappy".
func (Codec) MessageEncoding() string { return Name }
