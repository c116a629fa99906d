package engine

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/paletteforge/engine/internal/colorspace"
	"github.com/paletteforge/engine/internal/imaging"
	"github.com/paletteforge/engine/internal/palette"
	"github.com/paletteforge/engine/internal/segmentation"
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// noopProvider returns no segments at all, so the adapter falls back to
// luminance masking for every extraction in this file.
type noopProvider struct{}

func (noopProvider) Panoptic(ctx context.Context, data []byte) ([]segmentation.SegmentOut, error) {
	return nil, nil
}

func (noopProvider) Semantic(ctx context.Context, data []byte) ([]segmentation.SegmentOut, error) {
	return nil, nil
}

func solidImagePNG(t *testing.T, w, h int, fill color.Color) []byte {
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

func newTestEngine() *Engine {
	return New(imaging.NewStdDecoder(), noopProvider{}, nil)
}

// leftHalfMaskProvider reports a single "person" segment (a foreground
// category per the classification ladder) whose mask covers the left
// half of the image, letting a test drive a real panoptic mask path
// instead of the luminance fallback.
type leftHalfMaskProvider struct {
	maskPNG []byte
}

func leftHalfMask(t *testing.T, w, h int) []byte {
	t.Helper()
	mask := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				mask.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, mask); err != nil {
		t.Fatalf("encode test mask: %v", err)
	}
	return buf.Bytes()
}

func (p leftHalfMaskProvider) Panoptic(ctx context.Context, data []byte) ([]segmentation.SegmentOut, error) {
	return []segmentation.SegmentOut{{Label: "person", Score: 0.9, Mask: p.maskPNG}}, nil
}

func (p leftHalfMaskProvider) Semantic(ctx context.Context, data []byte) ([]segmentation.SegmentOut, error) {
	return nil, nil
}

func TestExtractPureRedYieldsWarmTopColor(t *testing.T) {
	data := solidImagePNG(t, 64, 64, color.RGBA{R: 255, G: 0, B: 0, A: 255})

	e := newTestEngine()
	n := 3
	result, err := e.Extract(context.Background(), data, "red.png", Options{NumColors: &n, IncludeBackground: true, GenerateHarmonies: true}, Hooks{})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(result.Palette) == 0 {
		t.Fatal("expected a non-empty palette")
	}
	top := result.Palette[0]
	rgb, err := colorspace.ParseHex(top.Formats.Hex)
	if err != nil {
		t.Fatalf("top color hex %q did not parse: %v", top.Formats.Hex, err)
	}
	if absInt(int(rgb.R)-255) > 4 || absInt(int(rgb.G)) > 4 || absInt(int(rgb.B)) > 4 {
		t.Errorf("top color hex = %q, want within +-4 of #FF0000", top.Formats.Hex)
	}
	if top.Metadata.Temperature != "warm" {
		t.Errorf("top color temperature = %q, want warm", top.Metadata.Temperature)
	}
}

func TestExtractNeutralGrayStaysLowSaturation(t *testing.T) {
	data := solidImagePNG(t, 64, 64, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	e := newTestEngine()
	n := 5
	result, err := e.Extract(context.Background(), data, "gray.png", Options{NumColors: &n, IncludeBackground: true}, Hooks{})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	for _, c := range result.Palette {
		if c.Formats.HSL.Values.S*100 > 18 {
			t.Errorf("color %s has saturation %.1f%%, want <= 18", c.Name, c.Formats.HSL.Values.S*100)
		}
	}
	if result.Metadata.DominantTemperature != "neutral" {
		t.Errorf("dominant_temperature = %q, want neutral", result.Metadata.DominantTemperature)
	}
}

func TestExtractAllDarkPixelsIsEmptyInput(t *testing.T) {
	data := solidImagePNG(t, 32, 32, color.RGBA{R: 10, G: 10, B: 10, A: 255})

	e := newTestEngine()
	_, err := e.Extract(context.Background(), data, "dark.png", DefaultOptions(), Hooks{})
	if err == nil {
		t.Fatal("expected an EmptyInput error")
	}
}

func TestExtractRespectsCancelledContext(t *testing.T) {
	data := solidImagePNG(t, 16, 16, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	partialCalled := false
	hooks := Hooks{OnPartial: func(palette.Palette) { partialCalled = true }}

	e := newTestEngine()
	_, err := e.Extract(ctx, data, "white.png", DefaultOptions(), hooks)
	if err == nil {
		t.Fatal("expected a Cancelled error")
	}
	if partialCalled {
		t.Error("OnPartial must not be invoked when extraction is cancelled")
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	data := solidImagePNG(t, 48, 48, color.RGBA{R: 40, G: 120, B: 200, A: 255})

	e := newTestEngine()
	n := 4
	opts := Options{NumColors: &n, IncludeBackground: true, GenerateHarmonies: true}

	first, err := e.Extract(context.Background(), data, "blue.png", opts, Hooks{})
	if err != nil {
		t.Fatalf("first Extract returned error: %v", err)
	}
	second, err := e.Extract(context.Background(), data, "blue.png", opts, Hooks{})
	if err != nil {
		t.Fatalf("second Extract returned error: %v", err)
	}

	if len(first.Palette) != len(second.Palette) {
		t.Fatalf("palette length differs: %d vs %d", len(first.Palette), len(second.Palette))
	}
	for i := range first.Palette {
		if first.Palette[i].Formats.Hex != second.Palette[i].Formats.Hex {
			t.Errorf("palette[%d].hex differs: %s vs %s", i, first.Palette[i].Formats.Hex, second.Palette[i].Formats.Hex)
		}
	}
	if first.Exports.CSSVariables != second.Exports.CSSVariables {
		t.Error("css export differs between identical runs")
	}
}

func TestExtractRedBlueCheckerSplitsByMask(t *testing.T) {
	const w, h = 64, 64
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 0, G: 0, B: 255, A: 255})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}

	provider := leftHalfMaskProvider{maskPNG: leftHalfMask(t, w, h)}
	e := New(imaging.NewStdDecoder(), provider, nil)

	n := 2
	result, err := e.Extract(context.Background(), buf.Bytes(), "checker.png", Options{NumColors: &n, IncludeBackground: true}, Hooks{})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if d := result.Segments.ForegroundPercentage - 50; d > 2 || d < -2 {
		t.Errorf("foreground percentage = %.1f, want ~50 (+-2)", result.Segments.ForegroundPercentage)
	}
	if d := result.Segments.BackgroundPercentage - 50; d > 2 || d < -2 {
		t.Errorf("background percentage = %.1f, want ~50 (+-2)", result.Segments.BackgroundPercentage)
	}

	var sawWarm, sawCool, sawForeground bool
	for _, c := range result.Palette {
		if c.Metadata.Temperature == "warm" {
			sawWarm = true
		}
		if c.Metadata.Temperature == "cool" {
			sawCool = true
		}
		if c.Source.Segment == palette.SegmentForeground {
			sawForeground = true
		}
	}
	if !sawWarm || !sawCool {
		t.Errorf("expected both a warm and a cool color, palette: %+v", result.Palette)
	}
	if !sawForeground {
		t.Error("expected at least one foreground-segment color")
	}
}

func TestExtractGradientSpansLightness(t *testing.T) {
	const w, h = 32, 256
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := uint8(255 * y / (h - 1))
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}

	e := newTestEngine()
	n := 5
	result, err := e.Extract(context.Background(), buf.Bytes(), "gradient.png", Options{NumColors: &n, IncludeBackground: true}, Hooks{})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	minL, maxL := 1.0, 0.0
	for _, c := range result.Palette {
		l := c.Formats.OKLCh.Values.L
		if l < minL {
			minL = l
		}
		if l > maxL {
			maxL = l
		}
	}
	if minL >= 0.2 {
		t.Errorf("min lightness = %.3f, want < 0.2", minL)
	}
	if maxL <= 0.8 {
		t.Errorf("max lightness = %.3f, want > 0.8", maxL)
	}
	if result.Metadata.ColorDiversity < 0.7 {
		t.Errorf("color diversity = %.3f, want >= 0.7", result.Metadata.ColorDiversity)
	}
}
