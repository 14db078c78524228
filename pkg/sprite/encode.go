package sprite

import (
	"bytes"
	"encoding/base64"
	stderrors "errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"

	"github.com/sitedeck/sitedeck/pkg/errors"
)

// Codec is one encoding candidate. The encoder tries its candidates in
// order and keeps the first success, so codec selection is an explicit list
// rather than exception-driven control flow.
type Codec struct {
	Name   string // short format name, e.g. "webp"
	MIME   string // media type for the data URI, e.g. "image/webp"
	Encode func(w io.Writer, img image.Image) error
}

// Encoded is a serialized sprite sheet ready for template embedding.
type Encoded struct {
	DataURI string // "data:<mime>;base64,<payload>"
	Format  string // name of the codec that succeeded
	MIME    string // media type of the payload
	Width   int    // sheet width in pixels
	Height  int    // sheet height in pixels
	Size    string // "<width>px <height>px", usable as a CSS background-size
}

// Encoder serializes sprite sheets. The candidate list is chosen from the
// fill policy: WebP is always preferred; the fallback must tolerate the
// policy (JPEG for opaque sheets, PNG where alpha must survive losslessly).
type Encoder struct {
	// Codecs is the ordered candidate list. Exposed so tests can inject
	// failing codecs; NewEncoder fills it from the configuration.
	Codecs []Codec
}

// NewEncoder creates an encoder with the candidate chain for cfg.
// The configuration must already be validated.
func NewEncoder(cfg Config) *Encoder {
	webp := Codec{
		Name: "webp",
		MIME: "image/webp",
		Encode: func(w io.Writer, img image.Image) error {
			return nativewebp.Encode(w, img, nil)
		},
	}

	fallback := Codec{
		Name: "jpeg",
		MIME: "image/jpeg",
		Encode: func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: cfg.JPEGQuality})
		},
	}
	if cfg.Fill == FillTransparent {
		// JPEG cannot carry alpha; fall back to lossless PNG instead.
		fallback = Codec{
			Name: "png",
			MIME: "image/png",
			Encode: func(w io.Writer, img image.Image) error {
				return png.Encode(w, img)
			},
		}
	}

	return &Encoder{Codecs: []Codec{webp, fallback}}
}

// Encode serializes sheet with the first candidate codec that succeeds and
// wraps the bytes into a base64 data URI.
//
// Every candidate failing is fatal: it indicates a broken imaging backend
// rather than bad input, so the combined error is surfaced with
// ErrCodeEncodeFailed listing each codec's failure.
func (e *Encoder) Encode(sheet *image.NRGBA) (Encoded, error) {
	bounds := sheet.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var failures []error
	for _, c := range e.Codecs {
		var buf bytes.Buffer
		if err := c.Encode(&buf, sheet); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", c.Name, err))
			continue
		}

		payload := base64.StdEncoding.EncodeToString(buf.Bytes())
		return Encoded{
			DataURI: fmt.Sprintf("data:%s;base64,%s", c.MIME, payload),
			Format:  c.Name,
			MIME:    c.MIME,
			Width:   w,
			Height:  h,
			Size:    fmt.Sprintf("%dpx %dpx", w, h),
		}, nil
	}

	return Encoded{}, errors.Wrap(errors.ErrCodeEncodeFailed, stderrors.Join(failures...),
		"all %d sprite codecs failed", len(e.Codecs))
}
