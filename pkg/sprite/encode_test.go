package sprite

import (
	"bytes"
	"encoding/base64"
	stderrors "errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"golang.org/x/image/webp"

	"github.com/sitedeck/sitedeck/pkg/errors"
)

// decodeDataURI splits a data URI and decodes its base64 payload.
func decodeDataURI(t *testing.T, uri string) (mime string, payload []byte) {
	t.Helper()

	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		t.Fatalf("data URI %q missing data: prefix", uri)
	}
	mime, b64, ok := strings.Cut(rest, ";base64,")
	if !ok {
		t.Fatalf("data URI %q missing ;base64, separator", uri)
	}
	payload, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	return mime, payload
}

func TestEncodeWebP(t *testing.T) {
	cfg := mustConfig(t, Config{IconSize: 24})
	enc := NewEncoder(cfg)

	sheet := solidNRGBA(color.NRGBA{R: 120, G: 40, B: 200, A: 255}, 48, 24)
	out, err := enc.Encode(sheet)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	if out.Format != "webp" {
		t.Errorf("Format = %q, want %q", out.Format, "webp")
	}
	if out.Size != "48px 24px" {
		t.Errorf("Size = %q, want %q", out.Size, "48px 24px")
	}

	mime, payload := decodeDataURI(t, out.DataURI)
	if mime != "image/webp" {
		t.Errorf("MIME = %q, want image/webp", mime)
	}

	img, err := webp.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("payload does not decode as WebP: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 24 {
		t.Errorf("decoded size = %dx%d, want 48x24", b.Dx(), b.Dy())
	}
}

func TestEncodeFallsBackWhenPrimaryFails(t *testing.T) {
	broken := Codec{
		Name: "webp",
		MIME: "image/webp",
		Encode: func(w io.Writer, img image.Image) error {
			return stderrors.New("codec unavailable")
		},
	}
	pngCodec := Codec{
		Name: "png",
		MIME: "image/png",
		Encode: func(w io.Writer, img image.Image) error {
			return png.Encode(w, img)
		},
	}
	enc := &Encoder{Codecs: []Codec{broken, pngCodec}}

	sheet := solidNRGBA(color.NRGBA{G: 255, A: 255}, 24, 24)
	out, err := enc.Encode(sheet)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	if out.Format != "png" {
		t.Errorf("Format = %q, want fallback %q", out.Format, "png")
	}

	mime, payload := decodeDataURI(t, out.DataURI)
	if mime != "image/png" {
		t.Errorf("MIME = %q, want image/png", mime)
	}
	if _, err := png.Decode(bytes.NewReader(payload)); err != nil {
		t.Errorf("fallback payload does not decode as PNG: %v", err)
	}
}

func TestEncodeAllCodecsFailing(t *testing.T) {
	fail := func(name string) Codec {
		return Codec{
			Name: name,
			MIME: "image/" + name,
			Encode: func(w io.Writer, img image.Image) error {
				return stderrors.New(name + " exploded")
			},
		}
	}
	enc := &Encoder{Codecs: []Codec{fail("webp"), fail("jpeg")}}

	_, err := enc.Encode(solidNRGBA(color.NRGBA{A: 255}, 1, 1))
	if err == nil {
		t.Fatal("Encode() error = nil, want fatal error when every codec fails")
	}
	if !errors.Is(err, errors.ErrCodeEncodeFailed) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeEncodeFailed)
	}
	// Both codec failures must be reported.
	if msg := err.Error(); !strings.Contains(msg, "webp exploded") || !strings.Contains(msg, "jpeg exploded") {
		t.Errorf("error %q does not list every codec failure", msg)
	}
}

func TestEncoderFallbackMatchesFillPolicy(t *testing.T) {
	tests := []struct {
		name string
		fill FillPolicy
		want string
	}{
		{name: "opaque uses lossy jpeg", fill: FillOpaque, want: "jpeg"},
		{name: "transparent requires lossless png", fill: FillTransparent, want: "png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mustConfig(t, Config{Fill: tt.fill})
			enc := NewEncoder(cfg)

			if len(enc.Codecs) != 2 {
				t.Fatalf("len(Codecs) = %d, want 2", len(enc.Codecs))
			}
			if enc.Codecs[0].Name != "webp" {
				t.Errorf("primary codec = %q, want webp", enc.Codecs[0].Name)
			}
			if enc.Codecs[1].Name != tt.want {
				t.Errorf("fallback codec = %q, want %q", enc.Codecs[1].Name, tt.want)
			}
		})
	}
}

func TestEncodeEmptySentinel(t *testing.T) {
	cfg := mustConfig(t, Config{})
	assembled := NewAssembler(cfg).Assemble(nil)

	out, err := NewEncoder(cfg).Encode(assembled.Sheet)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if out.Size != "1px 1px" {
		t.Errorf("Size = %q, want %q", out.Size, "1px 1px")
	}

	_, payload := decodeDataURI(t, out.DataURI)
	img, err := webp.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("sentinel payload does not decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("decoded sentinel = %dx%d, want 1x1", b.Dx(), b.Dy())
	}
}
