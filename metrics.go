package compress

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "compress"

// instrumentedCodec wraps a Codec with OpenTelemetry byte counters.
type instrumentedCodec struct {
	codec             Codec
	compressedBytes   metric.Int64Counter
	decompressedBytes metric.Int64Counter
	attrs             metric.MeasurementOption
}

var _ Codec = (*instrumentedCodec)(nil)

// InstrumentCodec wraps c so that the volume of bytes accepted for
// compression and produced by decompression is recorded with the global
// OpenTelemetry meter provider, tagged with c's encoding name. With the
// default no-op provider the wrapper adds nothing but a counter call.
func InstrumentCodec(c Codec) Codec {
	meter := otel.Meter(meterName)
	compressed, _ := meter.Int64Counter("compress.compressed.bytes",
		metric.WithDescription("Bytes accepted for compression"),
		metric.WithUnit("By"),
	)
	decompressed, _ := meter.Int64Counter("compress.decompressed.bytes",
		metric.WithDescription("Bytes produced by decompression"),
		metric.WithUnit("By"),
	)
	return &instrumentedCodec{
		codec:             c,
		compressedBytes:   compressed,
		decompressedBytes: decompressed,
		attrs:             metric.WithAttributes(attribute.String("encoding", c.MessageEncoding())),
	}
}

func (ic *instrumentedCodec) Compress(w io.Writer) (io.WriteCloser, error) {
	wc, err := ic.codec.Compress(w)
	if err != nil {
		return nil, err
	}
	return &countingWriteCloser{wc: wc, counter: ic.compressedBytes, attrs: ic.attrs}, nil
}

func (ic *instrumentedCodec) Decompress(r io.Reader) (io.Reader, error) {
	dr, err := ic.codec.Decompress(r)
	if err != nil {
		return nil, err
	}
	return &countingReader{r: dr, counter: ic.decompressedBytes, attrs: ic.attrs}, nil
}

func (ic *instrumentedCodec) MessageEncoding() string {
	return ic.codec.MessageEncoding()
}

type countingWriteCloser struct {
	wc      io.WriteCloser
	counter metric.Int64Counter
	attrs   metric.MeasurementOption
}

func (c *countingWriteCloser) Write(p []byte) (int, error) {
	n, err := c.wc.Write(p)
	if n > 0 {
		c.counter.Add(context.Background(), int64(n), c.attrs)
	}
	return n, err
}

func (c *countingWriteCloser) Close() error {
	return c.wc.Close()
}

type countingReader struct {
	r       io.Reader
	counter metric.Int64Counter
	attrs   metric.MeasurementOption
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.counter.Add(context.Background(), int64(n), c.attrs)
	}
	return n, err
}
