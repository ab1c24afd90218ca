package compress

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeCompressor struct {
	encoding string
	tag      string
}

func (f fakeCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

func (f fakeCompressor) MessageEncoding() string { return f.encoding }

func TestCompressorRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		reg := NewCompressorRegistry()
		c := fakeCompressor{encoding: "zstd"}
		if err := reg.Register(c); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		got, ok := reg.Lookup("zstd")
		if !ok || got != c {
			t.Errorf("Lookup(zstd) = (%v, %v), want registered compressor", got, ok)
		}
	})

	t.Run("lookup miss is absence", func(t *testing.T) {
		if c, ok := NewCompressorRegistry().Lookup("nope"); ok || c != nil {
			t.Errorf("expected absent, got (%v, %v)", c, ok)
		}
	})

	t.Run("re-registration overwrites", func(t *testing.T) {
		reg := NewCompressorRegistry()
		if err := reg.Register(fakeCompressor{encoding: "br", tag: "first"}); err != nil {
			t.Fatal(err)
		}
		second := fakeCompressor{encoding: "br", tag: "second"}
		if err := reg.Register(second); err != nil {
			t.Fatal(err)
		}
		if got, _ := reg.Lookup("br"); got != second {
			t.Errorf("Lookup(br) = %v, want last registration", got)
		}
	})

	t.Run("invalid names rejected", func(t *testing.T) {
		reg := NewCompressorRegistry()
		if err := reg.Register(fakeCompressor{encoding: "a,b"}); !errors.Is(err, ErrInvalidEncodingName) {
			t.Errorf("Register(a,b) error = %v, want ErrInvalidEncodingName", err)
		}
		if err := reg.Register(fakeCompressor{}); !errors.Is(err, ErrInvalidEncodingName) {
			t.Errorf("Register(\"\") error = %v, want ErrInvalidEncodingName", err)
		}
		if got := reg.Names(); len(got) != 0 {
			t.Errorf("failed Register left entries behind: %v", got)
		}
	})

	t.Run("names sorted", func(t *testing.T) {
		reg := NewCompressorRegistry()
		for _, name := range []string{"zstd", "br", "snappy"} {
			if err := reg.Register(fakeCompressor{encoding: name}); err != nil {
				t.Fatal(err)
			}
		}
		want := []string{"br", "snappy", "zstd"}
		if diff := cmp.Diff(want, reg.Names()); diff != "" {
			t.Errorf("Names mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestDefaultCompressorRegistry(t *testing.T) {
	reg := DefaultCompressorRegistry()

	want := []string{EncodingGzip, EncodingIdentity}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}

	gz, ok := reg.Lookup(EncodingGzip)
	if !ok {
		t.Fatal("default registry has no gzip compressor")
	}
	payload := []byte("default compressor registry payload")
	out := decompressWith(t, NewGzip(), compressWith(t, gz, payload))
	if diff := cmp.Diff(payload, out); diff != "" {
		t.Errorf("gzip round trip mismatch (-want +got):\n%s", diff)
	}
}
