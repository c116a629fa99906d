// Package imaging provides the ImageDecoder capability interface the core
// extraction pipeline consumes (spec §6) plus a default, stdlib-backed
// implementation. The core never imports an image-decoding library
// directly; it only calls Decoder methods, so an external collaborator
// can swap in a different decode path (e.g. a GPU-accelerated resizer)
// without touching the pipeline.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	"image/png"

	_ "golang.org/x/image/webp" // register WebP decoding
)

// RawImage is the decoded pixel buffer handed to the pixel extractor:
// interleaved 8-bit channels, row-major, top-to-bottom.
type RawImage struct {
	Width, Height, Channels int
	Data                    []byte
}

// Meta reports an image's dimensions and detected format without fully
// decoding pixel data.
type Meta struct {
	Width, Height int
	Format        string
}

// Decoder is the ImageDecoder capability interface from spec §6.
type Decoder interface {
	// DecodeRaw decodes image bytes into an interleaved RGB(A) buffer.
	DecodeRaw(data []byte) (RawImage, error)

	// GreyscaleResize decodes a greyscale PNG mask and resizes it to
	// (w,h) by nearest-neighbour fill, returning raw 8-bit greyscale
	// bytes (no PNG framing).
	GreyscaleResize(pngBytes []byte, w, h int) ([]byte, error)

	// EncodePNGGray encodes an 8-bit greyscale buffer as PNG bytes.
	EncodePNGGray(buf []byte, w, h int) ([]byte, error)

	// Metadata reports dimensions/format without a full pixel decode.
	Metadata(data []byte) (Meta, error)
}

// StdDecoder implements Decoder using the standard library's image
// package (plus x/image/webp for WebP support), the same stack the
// teacher's internal/image.FileLoader uses.
type StdDecoder struct{}

// NewStdDecoder constructs the default Decoder.
func NewStdDecoder() *StdDecoder {
	return &StdDecoder{}
}

// DecodeRaw implements Decoder.
func (StdDecoder) DecodeRaw(data []byte) (RawImage, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return RawImage{}, fmt.Errorf("imaging: decode failed: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := make([]byte, 0, w*h*3)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf = append(buf, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}

	return RawImage{Width: w, Height: h, Channels: 3, Data: buf}, nil
}

// GreyscaleResize implements Decoder using nearest-neighbour sampling,
// matching spec §4.2/§4.3's "resize to (width, height) via fill".
func (StdDecoder) GreyscaleResize(pngBytes []byte, w, h int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("imaging: mask decode failed: %w", err)
	}

	src := img.Bounds()
	sw, sh := src.Dx(), src.Dy()
	out := make([]byte, w*h)

	for y := 0; y < h; y++ {
		sy := src.Min.Y + y*sh/h
		for x := 0; x < w; x++ {
			sx := src.Min.X + x*sw/w
			gr, gg, gb, _ := img.At(sx, sy).RGBA()
			grey := (gr>>8 + gg>>8 + gb>>8) / 3
			out[y*w+x] = byte(grey)
		}
	}

	return out, nil
}

// EncodePNGGray implements Decoder.
func (StdDecoder) EncodePNGGray(buf []byte, w, h int) ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, buf)

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("imaging: grey png encode failed: %w", err)
	}
	return out.Bytes(), nil
}

// Metadata implements Decoder.
func (StdDecoder) Metadata(data []byte) (Meta, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Meta{}, fmt.Errorf("imaging: metadata decode failed: %w", err)
	}
	return Meta{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
