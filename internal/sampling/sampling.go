// Package sampling performs deterministic raster sampling of a decoded
// image into foreground/background pixel sets, per the pixel extractor
// contract. It has no knowledge of how a foreground mask was produced —
// it just consumes one if present.
package sampling

import (
	"sort"

	"github.com/paletteforge/engine/internal/imaging"
)

// Pixel is one sampled, brightness-gated pixel.
type Pixel struct {
	R, G, B uint8
}

// Sample is the pixel extractor's output.
type Sample struct {
	FGPixels     []Pixel
	BGPixels     []Pixel
	Width        int
	Height       int
	UsedSalience bool
}

// Tuning holds the configuration constants the extractor needs; see
// DefaultTuning for the values named in the contract.
type Tuning struct {
	MaxSamples    int
	MinBrightness int
	MaxBrightness int
}

// DefaultTuning returns the extractor's default configuration.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSamples:    5000,
		MinBrightness: 15,
		MaxBrightness: 240,
	}
}

// Extract implements the §4.3 pixel extractor. mask, when non-nil, is a
// width*height byte raster (0 or 255) aligned with raw; nil means every
// kept pixel is treated as foreground.
func Extract(raw imaging.RawImage, mask []byte, tuning Tuning) Sample {
	total := raw.Width * raw.Height
	sampleRate := total / tuning.MaxSamples
	if sampleRate < 1 {
		sampleRate = 1
	}

	kept := make([]Pixel, 0, tuning.MaxSamples)
	keptIdx := make([]int, 0, tuning.MaxSamples)
	var fg, bg []Pixel

	for i := 0; i < total; i += sampleRate {
		r := raw.Data[i*raw.Channels]
		g := raw.Data[i*raw.Channels+1]
		b := raw.Data[i*raw.Channels+2]
		brightness := (int(r) + int(g) + int(b)) / 3
		if brightness <= tuning.MinBrightness || brightness >= tuning.MaxBrightness {
			continue
		}

		px := Pixel{R: r, G: g, B: b}
		kept = append(kept, px)
		keptIdx = append(keptIdx, i)

		isForeground := mask == nil || mask[i] > 128
		if isForeground {
			fg = append(fg, px)
		} else {
			bg = append(bg, px)
		}
	}

	sample := Sample{Width: raw.Width, Height: raw.Height}

	needsSalience := len(fg) == 0 || len(bg) == 0 || float64(len(fg)) < 0.05*float64(len(kept))
	if needsSalience && len(kept) > 0 {
		fg, bg = salienceSplit(kept)
		sample.UsedSalience = true
	}

	sample.FGPixels = fg
	sample.BGPixels = bg
	return sample
}

type scoredPixel struct {
	px    Pixel
	score float64
}

// salienceSplit recovers a foreground/background split when masking
// produced a degenerate result, ranking pixels by a blend of saturation
// and distance from mid luminance; the top 30% become foreground.
func salienceSplit(pixels []Pixel) (fg, bg []Pixel) {
	scored := make([]scoredPixel, len(pixels))
	for i, px := range pixels {
		scored[i] = scoredPixel{px: px, score: salienceScore(px)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	cut := int(0.3 * float64(len(scored)))
	fg = make([]Pixel, 0, cut)
	bg = make([]Pixel, 0, len(scored)-cut)
	for i, sp := range scored {
		if i < cut {
			fg = append(fg, sp.px)
		} else {
			bg = append(bg, sp.px)
		}
	}
	return fg, bg
}

func salienceScore(px Pixel) float64 {
	r, g, b := float64(px.R), float64(px.G), float64(px.B)
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}

	var sat float64
	if max > 0 {
		sat = (max - min) / max
	}
	lum := 0.299*r + 0.587*g + 0.114*b

	return 0.7*sat + 0.3*abs(lum-128)/255
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
