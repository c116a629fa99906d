// Package tones generates tints/shades and hue-rotation harmonies from
// a base color in OKLCh, per §4.5.5-4.5.6.
package tones

import "github.com/paletteforge/engine/internal/colorspace"

const stepCount = 4

// Scale holds four lightness-stepped tints (lighter) and shades
// (darker) of a base color, nearest-to-farthest.
type Scale struct {
	Tints  [stepCount]colorspace.RGB
	Shades [stepCount]colorspace.RGB
}

// TintsAndShades implements §4.5.5's adaptive lightness stepping with
// chroma damping near the extremes.
func TintsAndShades(base colorspace.RGB) Scale {
	tints, shades := GenerateSteps(base, stepCount, stepCount)
	var scale Scale
	copy(scale.Tints[:], tints)
	copy(scale.Shades[:], shades)
	return scale
}

// GenerateSteps produces tintCount lighter and shadeCount darker
// variants of base using the same adaptive lightness/chroma rule as
// TintsAndShades, generalised to an arbitrary step count. The export
// synthesizer's 11-step scale (§4.6) uses this directly with 5+5 steps
// either side of the base; ExtractedColor's own tints/shades fields use
// the fixed 4+4 form above.
func GenerateSteps(base colorspace.RGB, tintCount, shadeCount int) (tints, shades []colorspace.RGB) {
	oklch := colorspace.RGBToOKLCh(base)

	tintStep, tintFadeTo := tintStepAndFade(oklch.L)
	shadeStep, shadeFadeTo := shadeStepAndFade(oklch.L)

	tints = make([]colorspace.RGB, tintCount)
	for i := 1; i <= tintCount; i++ {
		l := clamp01(oklch.L + tintStep*float64(i))
		c := fadeChroma(oklch.C, tintFadeTo, i, tintCount)
		tints[i-1] = colorspace.OKLChToRGB(colorspace.OKLCh{L: l, C: c, H: oklch.H})
	}

	shades = make([]colorspace.RGB, shadeCount)
	for i := 1; i <= shadeCount; i++ {
		l := clamp01(oklch.L - shadeStep*float64(i))
		c := fadeChroma(oklch.C, shadeFadeTo, i, shadeCount)
		shades[i-1] = colorspace.OKLChToRGB(colorspace.OKLCh{L: l, C: c, H: oklch.H})
	}

	return tints, shades
}

func tintStepAndFade(l float64) (step, fadeTo float64) {
	switch {
	case l > 0.85:
		return minF((0.99-l)/4, 0.02), 0.5
	case l > 0.7:
		return minF((0.99-l)/4, 0.05), 0.7
	default:
		return 0.1, 1.0
	}
}

func shadeStepAndFade(l float64) (step, fadeTo float64) {
	switch {
	case l < 0.25:
		return minF(l/4, 0.02), 0.5
	case l < 0.4:
		return minF(l/4, 0.05), 0.7
	default:
		return 0.1, 1.0
	}
}

// fadeChroma linearly interpolates chroma from 100% at i=0 to fadeTo at
// i=total.
func fadeChroma(c, fadeTo float64, i, total int) float64 {
	if fadeTo >= 1.0 {
		return c
	}
	frac := 1 - (1-fadeTo)*float64(i)/float64(total)
	return c * frac
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Harmonies holds the hue-rotated companions of a base color (§4.5.6).
// Each is computed at the base's own OKLCh lightness and chroma and then
// converted to 8-bit sRGB with linear RGB clamped to [0,1], so a rotation
// that falls outside the sRGB gamut comes back with lower chroma and
// shifted lightness, and 8-bit rounding moves both slightly even inside
// the gamut.
type Harmonies struct {
	Complementary           colorspace.RGB
	AnalogousPlus           colorspace.RGB
	AnalogousMinus          colorspace.RGB
	TriadicPlus             colorspace.RGB
	TriadicMinus            colorspace.RGB
	SplitComplementaryPlus  colorspace.RGB
	SplitComplementaryMinus colorspace.RGB
}

// BuildHarmonies implements §4.5.6.
func BuildHarmonies(base colorspace.RGB) Harmonies {
	oklch := colorspace.RGBToOKLCh(base)
	rotate := func(delta float64) colorspace.RGB {
		h := oklch.H + delta
		for h < 0 {
			h += 360
		}
		for h >= 360 {
			h -= 360
		}
		return colorspace.OKLChToRGB(colorspace.OKLCh{L: oklch.L, C: oklch.C, H: h})
	}

	return Harmonies{
		Complementary:           rotate(180),
		AnalogousPlus:           rotate(30),
		AnalogousMinus:          rotate(-30),
		TriadicPlus:             rotate(120),
		TriadicMinus:            rotate(240),
		SplitComplementaryPlus:  rotate(150),
		SplitComplementaryMinus: rotate(210),
	}
}
