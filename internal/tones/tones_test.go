package tones

import (
	"testing"

	"github.com/paletteforge/engine/internal/colorspace"
)

func TestTintsLightenMonotonically(t *testing.T) {
	base := colorspace.RGB{R: 120, G: 40, B: 40}
	scale := TintsAndShades(base)

	baseL := colorspace.RGBToOKLCh(base).L
	prevL := baseL
	for i, tint := range scale.Tints {
		l := colorspace.RGBToOKLCh(tint).L
		if l < prevL-1e-6 {
			t.Fatalf("tint %d not lighter than previous step: %f < %f", i, l, prevL)
		}
		prevL = l
	}
}

func TestShadesDarkenMonotonically(t *testing.T) {
	base := colorspace.RGB{R: 120, G: 40, B: 40}
	scale := TintsAndShades(base)

	baseL := colorspace.RGBToOKLCh(base).L
	prevL := baseL
	for i, shade := range scale.Shades {
		l := colorspace.RGBToOKLCh(shade).L
		if l > prevL+1e-6 {
			t.Fatalf("shade %d not darker than previous step: %f > %f", i, l, prevL)
		}
		prevL = l
	}
}

func TestHarmoniesPreserveLightnessAndChroma(t *testing.T) {
	base := colorspace.RGB{R: 60, G: 120, B: 200}
	baseOKLCh := colorspace.RGBToOKLCh(base)
	h := BuildHarmonies(base)

	for name, c := range map[string]colorspace.RGB{
		"complementary": h.Complementary,
		"triadic+":      h.TriadicPlus,
		"splitComp-":    h.SplitComplementaryMinus,
	} {
		oklch := colorspace.RGBToOKLCh(c)
		if absF(oklch.L-baseOKLCh.L) > 1e-6 {
			t.Errorf("%s: lightness drifted: %f vs %f", name, oklch.L, baseOKLCh.L)
		}
		if absF(oklch.C-baseOKLCh.C) > 1e-6 {
			t.Errorf("%s: chroma drifted: %f vs %f", name, oklch.C, baseOKLCh.C)
		}
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
