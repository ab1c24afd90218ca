// Package grpcenc bridges compress codecs with gRPC's encoding registry, so
// the same codec set can serve both an event transport and a gRPC channel.
package grpcenc

import (
	"io"

	"google.golang.org/grpc/encoding"

	"github.com/rchzzjcn/compress"
)

// grpcCompressor adapts a compress.Codec to grpc's encoding.Compressor.
type grpcCompressor struct {
	codec compress.Codec
}

func (c grpcCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	return c.codec.Compress(w)
}

func (c grpcCompressor) Decompress(r io.Reader) (io.Reader, error) {
	return c.codec.Decompress(r)
}

func (c grpcCompressor) Name() string {
	return c.codec.MessageEncoding()
}

// Register registers c with gRPC under its message encoding name, making it
// usable via grpc.UseCompressor and for inbound messages carrying that
// encoding. Like encoding.RegisterCompressor, this must only be called
// during initialization; the last registration for a name wins.
func Register(c compress.Codec) {
	encoding.RegisterCompressor(grpcCompressor{codec: c})
}

// codecAdapter wraps a grpc encoding.Compressor as a compress.Codec.
type codecAdapter struct {
	compressor encoding.Compressor
}

func (c codecAdapter) Compress(w io.Writer) (io.WriteCloser, error) {
	return c.compressor.Compress(w)
}

func (c codecAdapter) Decompress(r io.Reader) (io.Reader, error) {
	return c.compressor.Decompress(r)
}

func (c codecAdapter) MessageEncoding() string {
	return c.compressor.Name()
}

// Wrap returns the compressor registered with gRPC under name, adapted to a
// compress.Codec so it can be fed into a DecompressorRegistry. Returns false
// if gRPC has no compressor by that name.
func Wrap(name string) (compress.Codec, bool) {
	c := encoding.GetCompressor(name)
	if c == nil {
		return nil, false
	}
	return codecAdapter{compressor: c}, true
}
