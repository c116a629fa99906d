package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, w, h int, fill color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestStdDecoderDecodeRaw(t *testing.T) {
	data := encodeTestPNG(t, 4, 2, color.RGBA{R: 200, G: 10, B: 10, A: 255})

	dec := NewStdDecoder()
	raw, err := dec.DecodeRaw(data)
	if err != nil {
		t.Fatalf("DecodeRaw returned error: %v", err)
	}
	if raw.Width != 4 || raw.Height != 2 || raw.Channels != 3 {
		t.Fatalf("unexpected dims: %+v", raw)
	}
	if len(raw.Data) != 4*2*3 {
		t.Fatalf("unexpected buffer length: %d", len(raw.Data))
	}
	if raw.Data[0] != 200 || raw.Data[1] != 10 || raw.Data[2] != 10 {
		t.Fatalf("unexpected first pixel: %v", raw.Data[:3])
	}
}

func TestStdDecoderMetadata(t *testing.T) {
	data := encodeTestPNG(t, 10, 5, color.RGBA{R: 0, G: 0, B: 0, A: 255})

	dec := NewStdDecoder()
	meta, err := dec.Metadata(data)
	if err != nil {
		t.Fatalf("Metadata returned error: %v", err)
	}
	if meta.Width != 10 || meta.Height != 5 || meta.Format != "png" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestStdDecoderGreyscaleResizeAndEncode(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 2, 2))
	mask.SetGray(0, 0, color.Gray{Y: 0})
	mask.SetGray(1, 0, color.Gray{Y: 255})
	mask.SetGray(0, 1, color.Gray{Y: 0})
	mask.SetGray(1, 1, color.Gray{Y: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, mask); err != nil {
		t.Fatalf("encode mask: %v", err)
	}

	dec := NewStdDecoder()
	resized, err := dec.GreyscaleResize(buf.Bytes(), 4, 4)
	if err != nil {
		t.Fatalf("GreyscaleResize returned error: %v", err)
	}
	if len(resized) != 16 {
		t.Fatalf("unexpected resized length: %d", len(resized))
	}

	out, err := dec.EncodePNGGray(resized, 4, 4)
	if err != nil {
		t.Fatalf("EncodePNGGray returned error: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("encoded output did not decode as png: %v", err)
	}
}

func TestStdDecoderInvalidInput(t *testing.T) {
	dec := NewStdDecoder()
	if _, err := dec.DecodeRaw([]byte("not an image")); err == nil {
		t.Fatal("expected error for invalid image bytes")
	}
	if _, err := dec.Metadata([]byte("not an image")); err == nil {
		t.Fatal("expected error for invalid metadata bytes")
	}
}
