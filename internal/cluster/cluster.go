// Package cluster implements the §4.4 clustering stage: adaptive target
// sizing, saturation-biased resampling, seeded k-means++ in OKLab,
// perceptual deduplication, hue-diversity enforcement, and pool
// backfill. Foreground and background pixel sets are clustered
// independently, with independent deterministic seeds.
package cluster

import (
	"math"
	"sort"

	"github.com/sourcegraph/conc"

	"github.com/paletteforge/engine/internal/colorspace"
	"github.com/paletteforge/engine/internal/sampling"
)

// Candidate is a clustered dominant color with its relative weight.
type Candidate struct {
	RGB    colorspace.RGB
	Weight float64
}

// Sides holds the clustering result for both halves of a split image.
type Sides struct {
	Foreground []Candidate
	Background []Candidate
}

// Cluster runs the clustering stage for both pixel sets. When requested
// is nil, target counts are derived adaptively (§4.4.1); fg and bg are
// clustered in parallel since their seeds and inputs are independent.
func Cluster(fg, bg []sampling.Pixel, requested *int, tuning Tuning) Sides {
	return ClusterWithCancel(fg, bg, requested, tuning, nil)
}

// ClusterWithCancel is Cluster with a cancellation poll threaded into
// both sides' Lloyd iterations (spec §5: cancellation is checked inside
// Lloyd iterations, not just between pipeline stages).
func ClusterWithCancel(fg, bg []sampling.Pixel, requested *int, tuning Tuning, cancelled func() bool) Sides {
	fgCount, bgCount := targetCounts(fg, bg, requested)

	var fgResult, bgResult []Candidate
	wg := conc.NewWaitGroup()
	wg.Go(func() { fgResult = clusterSide(fg, fgCount, tuning, cancelled) })
	wg.Go(func() { bgResult = clusterSide(bg, bgCount, tuning, cancelled) })
	wg.Wait()

	return Sides{Foreground: fgResult, Background: bgResult}
}

// targetCounts implements §4.4.1.
func targetCounts(fg, bg []sampling.Pixel, requested *int) (fgCount, bgCount int) {
	total := len(fg) + len(bg)
	if total == 0 {
		return 0, 0
	}

	var target int
	if requested != nil {
		target = *requested
	} else {
		target = adaptiveTarget(fg, bg)
	}

	fgFrac := math.Max(0.3, float64(len(fg))/float64(total))
	fgCount = maxInt(2, roundInt(float64(target)*fgFrac))
	bgCount = maxInt(2, target-fgCount)
	return fgCount, bgCount
}

func adaptiveTarget(fg, bg []sampling.Pixel) int {
	combined := make([]sampling.Pixel, 0, len(fg)+len(bg))
	combined = append(combined, fg...)
	combined = append(combined, bg...)

	const maxSample = 500
	step := len(combined) / maxSample
	if step < 1 {
		step = 1
	}

	var samples []colorspace.OKLab
	for i := 0; i < len(combined); i += step {
		px := combined[i]
		samples = append(samples, colorspace.RGBToOKLab(colorspace.RGB{R: px.R, G: px.G, B: px.B}))
	}
	if len(samples) == 0 {
		return 5
	}

	var mean colorspace.OKLab
	for _, s := range samples {
		mean.L += s.L
		mean.A += s.A
		mean.B += s.B
	}
	n := float64(len(samples))
	mean.L /= n
	mean.A /= n
	mean.B /= n

	var variance float64
	for _, s := range samples {
		variance += plainDistance(s, mean)
	}
	variance /= n

	var target float64
	switch {
	case variance < 0.1:
		target = 5 + variance*30
	case variance < 0.3:
		target = 8 + (variance-0.1)*20
	default:
		bonus := (variance - 0.3) * 10
		if bonus > 3 {
			bonus = 3
		}
		target = 12 + bonus
	}

	if target < 5 {
		target = 5
	}
	if target > 15 {
		target = 15
	}
	return roundInt(target)
}

// clusterSide runs saturation-biased expansion, seeded k-means++,
// dedup, hue diversification, slicing, and backfill for one pixel set.
func clusterSide(pixels []sampling.Pixel, targetCount int, tuning Tuning, cancelled func() bool) []Candidate {
	if len(pixels) == 0 || targetCount <= 0 {
		return nil
	}

	expanded := expandWithSaturationBias(pixels)
	if len(expanded) == 0 {
		return nil
	}

	oklabs := make([]colorspace.OKLab, len(expanded))
	for i, rgb := range expanded {
		oklabs[i] = colorspace.RGBToOKLab(rgb)
	}

	rng := newLCG(contentSeed(expanded))
	initCentroids := kmeansPlusPlusInit(oklabs, targetCount*oversampleFactor, rng)
	result := runLloyd(oklabs, initCentroids, tuning, cancelled)

	total := float64(len(expanded))
	candidates := make([]scoredColor, 0, len(result.Centroids))
	for i, centroid := range result.Centroids {
		if result.ClusterSize[i] == 0 {
			continue
		}
		rgb := colorspace.OKLabToRGB(centroid)
		weight := float64(result.ClusterSize[i]) / total
		candidates = append(candidates, newScoredColor(rgb, weight))
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Weight > candidates[j].Weight })

	deduped := deduplicate(candidates)
	diversified, pruned := diversifyByHue(deduped)
	cleaned := sliceAndCleanup(diversified, targetCount)
	final := poolBackfill(cleaned, pruned, targetCount)

	out := make([]Candidate, len(final))
	for i, sc := range final {
		out[i] = Candidate{RGB: sc.RGB, Weight: sc.Weight}
	}
	return out
}

// expandWithSaturationBias implements §4.4.2: each pixel is replicated
// reps times based on how saturated and mid-toned it is, so vivid
// colors dominate the k-means++ sample without being duplicated by
// hand.
func expandWithSaturationBias(pixels []sampling.Pixel) []colorspace.RGB {
	out := make([]colorspace.RGB, 0, len(pixels)*4)
	for _, px := range pixels {
		rgb := colorspace.RGB{R: px.R, G: px.G, B: px.B}
		hsl := colorspace.RGBToHSL(rgb)
		s := hsl.S * 100
		l := hsl.L * 100

		var boost float64
		switch {
		case s > 75:
			boost = math.Pow(s/100, 1.5) * 12
		case s > 50:
			boost = math.Pow(s/100, 1.6) * 7
		case s > 25:
			boost = math.Pow(s/100, 1.3) * 2.5
		default:
			boost = 0.3
		}
		if l >= 20 && l <= 80 {
			boost *= 1.8
		}

		reps := roundInt(boost)
		if reps < 1 {
			reps = 1
		}
		if reps > 20 {
			reps = 20
		}

		for i := 0; i < reps; i++ {
			out = append(out, rgb)
		}
	}
	return out
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
