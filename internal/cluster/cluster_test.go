package cluster

import (
	"testing"

	"github.com/paletteforge/engine/internal/colorspace"
	"github.com/paletteforge/engine/internal/sampling"
)

func solidPixels(n int, r, g, b uint8) []sampling.Pixel {
	out := make([]sampling.Pixel, n)
	for i := range out {
		out[i] = sampling.Pixel{R: r, G: g, B: b}
	}
	return out
}

func TestClusterSolidColorYieldsSingleDominant(t *testing.T) {
	fg := solidPixels(200, 200, 30, 30)
	bg := solidPixels(200, 40, 40, 45)

	sides := Cluster(fg, bg, nil, DefaultTuning())

	if len(sides.Foreground) == 0 {
		t.Fatal("expected at least one foreground candidate")
	}
	if len(sides.Background) == 0 {
		t.Fatal("expected at least one background candidate")
	}

	top := sides.Foreground[0]
	if top.RGB.R < 150 {
		t.Fatalf("expected dominant foreground color to be reddish, got %v", top.RGB)
	}
}

func TestClusterIsDeterministic(t *testing.T) {
	fg := mixedPixels()
	bg := solidPixels(100, 50, 50, 50)

	first := Cluster(fg, bg, nil, DefaultTuning())
	second := Cluster(fg, bg, nil, DefaultTuning())

	if len(first.Foreground) != len(second.Foreground) {
		t.Fatalf("non-deterministic candidate count: %d vs %d", len(first.Foreground), len(second.Foreground))
	}
	for i := range first.Foreground {
		if first.Foreground[i].RGB != second.Foreground[i].RGB {
			t.Fatalf("non-deterministic candidate %d: %v vs %v", i, first.Foreground[i], second.Foreground[i])
		}
	}
}

func mixedPixels() []sampling.Pixel {
	var out []sampling.Pixel
	for i := 0; i < 80; i++ {
		out = append(out, sampling.Pixel{R: 220, G: 30, B: 30})
	}
	for i := 0; i < 80; i++ {
		out = append(out, sampling.Pixel{R: 30, G: 220, B: 30})
	}
	for i := 0; i < 40; i++ {
		out = append(out, sampling.Pixel{R: 30, G: 30, B: 220})
	}
	return out
}

func TestTargetCountsRespectRequested(t *testing.T) {
	requested := 8
	fg := solidPixels(100, 100, 100, 100)
	bg := solidPixels(100, 200, 200, 200)

	fgCount, bgCount := targetCounts(fg, bg, &requested)
	if fgCount+bgCount < 4 {
		t.Fatalf("unexpected tiny distribution: fg=%d bg=%d", fgCount, bgCount)
	}
	if fgCount < 2 || bgCount < 2 {
		t.Fatalf("expected each side to get at least 2, got fg=%d bg=%d", fgCount, bgCount)
	}
}

func TestDeduplicateMergesNearIdenticalNeutrals(t *testing.T) {
	candidates := []scoredColor{
		newScoredColor(mustRGB(40, 40, 40), 0.5),
		newScoredColor(mustRGB(42, 42, 43), 0.5),
	}
	merged := deduplicate(candidates)
	if len(merged) != 1 {
		t.Fatalf("expected near-identical greys to merge, got %d entries", len(merged))
	}
	if merged[0].Weight != 1.0 {
		t.Fatalf("expected merged weight to sum, got %f", merged[0].Weight)
	}
}

func mustRGB(r, g, b uint8) colorspace.RGB {
	return colorspace.RGB{R: r, G: g, B: b}
}
