package snappy

import (
	"bytes"
	"io"
	"testing"
	"time"

	"syreclabs.com/go/faker"

	"github.com/rchzzjcn/compress"
)

func init() {
	faker.Seed(time.Now().UnixNano())
}

func TestCodec(t *testing.T) {
	codec := New()

	t.Run("encoding name", func(t *testing.T) {
		if got := codec.MessageEncoding(); got != Name {
			t.Errorf("MessageEncoding = %q, want %q", got, Name)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		payload := []byte(faker.Lorem().Paragraph(4))
		var buf bytes.Buffer
		w, err := codec.Compress(&buf)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}
		if _, err := w.Write(payload); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		r, err := codec.Decompress(&buf)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		out, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if !bytes.Equal(payload, out) {
			t.Error("round trip corrupted payload")
		}
	})
}

func TestRegistryIntegration(t *testing.T) {
	reg, err := compress.DefaultDecompressorRegistry().With(New(), true)
	if err != nil {
		t.Fatalf("With failed: %v", err)
	}
	if got, want := reg.RawAdvertisedMessageEncodings(), "gzip,snappy"; got != want {
		t.Errorf("RawAdvertisedMessageEncodings = %q, want %q", got, want)
	}
	if _, ok := reg.LookupDecompressor(Name); !ok {
		t.Error("snappy missing after registration")
	}
}
