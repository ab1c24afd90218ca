// Package compress provides message-encoding negotiation for RPC and event
// transports: capability interfaces for wire-level compression, an immutable
// decompressor registry that backs inbound decoding and Accept-Encoding style
// advertisement, and a mutable compressor registry for the outbound side.
//
// The decompressor registry is a persistent value: With never mutates the
// receiver, it returns a new snapshot. Any number of request handlers may
// read a snapshot concurrently without synchronization.
//
// Basic example:
//
//	// Start from the process-wide default (gzip advertised, identity not)
//	reg := compress.DefaultDecompressorRegistry()
//
//	// Derive a snapshot that also accepts zstd
//	reg, err := reg.With(zstd.New(), true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Outbound: advertise what we accept
//	header := reg.RawAdvertisedMessageEncodings() // "gzip,zstd"
//
//	// Inbound: decode whatever the peer actually used, advertised or not
//	if d, ok := reg.LookupDecompressor(peerEncoding); ok {
//	    r, err := d.Decompress(body)
//	    ...
//	}
//
// Subpackages:
//   - zstd: Zstandard codec (klauspost/compress/zstd)
//   - snappy: Snappy codec (klauspost/compress/snappy)
//   - grpcenc: adapters for google.golang.org/grpc/encoding
package compress
