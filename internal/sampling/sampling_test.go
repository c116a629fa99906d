package sampling

import (
	"testing"

	"github.com/paletteforge/engine/internal/imaging"
)

func solidRaw(w, h int, r, g, b uint8) imaging.RawImage {
	data := make([]byte, w*h*3)
	for i := 0; i < w*h; i++ {
		data[i*3] = r
		data[i*3+1] = g
		data[i*3+2] = b
	}
	return imaging.RawImage{Width: w, Height: h, Channels: 3, Data: data}
}

func TestExtractDropsOutOfRangeBrightness(t *testing.T) {
	raw := solidRaw(10, 10, 10, 10, 10) // brightness 10, below MinBrightness 15
	sample := Extract(raw, nil, DefaultTuning())
	if len(sample.FGPixels) != 0 || len(sample.BGPixels) != 0 {
		t.Fatalf("expected all pixels dropped, got fg=%d bg=%d", len(sample.FGPixels), len(sample.BGPixels))
	}
}

func TestExtractMaskSplitsForegroundBackground(t *testing.T) {
	w, h := 4, 4
	raw := solidRaw(w, h, 120, 80, 60)
	mask := make([]byte, w*h)
	for i := 0; i < w*h; i++ {
		if i%2 == 0 {
			mask[i] = 255
		}
	}

	sample := Extract(raw, mask, DefaultTuning())
	if len(sample.FGPixels) == 0 || len(sample.BGPixels) == 0 {
		t.Fatalf("expected both fg and bg populated, got fg=%d bg=%d", len(sample.FGPixels), len(sample.BGPixels))
	}
	if sample.UsedSalience {
		t.Fatal("did not expect salience fallback for a balanced mask")
	}
}

func TestExtractSalienceFallbackWhenMaskDegenerate(t *testing.T) {
	w, h := 8, 8
	raw := solidRaw(w, h, 200, 30, 30)
	mask := make([]byte, w*h) // all zero => all background => degenerate

	sample := Extract(raw, mask, DefaultTuning())
	if !sample.UsedSalience {
		t.Fatal("expected salience fallback when mask yields zero foreground")
	}
	if len(sample.FGPixels) == 0 {
		t.Fatal("expected salience split to populate foreground")
	}
}
