package cluster

import (
	"math"
	"sort"

	"github.com/paletteforge/engine/internal/colorspace"
)

const (
	dedupThreshold       = 0.35
	hueDiversityMinDelta = 35.0
	lowSaturationCutoff  = 20.0
	finalCleanupHue      = 12.0
	finalCleanupSat      = 12.0
	finalCleanupLight    = 12.0
	backfillDistance     = 0.4
)

// scoredColor carries a candidate color plus its cached OKLab and
// percent-scale HSL so downstream stages never recompute them.
type scoredColor struct {
	RGB    colorspace.RGB
	Weight float64
	OKLab  colorspace.OKLab
	H      float64 // degrees
	S      float64 // percent [0,100]
	L      float64 // percent [0,100]
}

func newScoredColor(rgb colorspace.RGB, weight float64) scoredColor {
	hsl := colorspace.RGBToHSL(rgb)
	return scoredColor{
		RGB:    rgb,
		Weight: weight,
		OKLab:  colorspace.RGBToOKLab(rgb),
		H:      hsl.H,
		S:      hsl.S * 100,
		L:      hsl.L * 100,
	}
}

// dedupDistance is the weighted OKLab metric for perceptual dedup and
// the final cleanup pass: sqrt(2Δl² + 8Δa² + 8Δb²).
func dedupDistance(a, b colorspace.OKLab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(2*dl*dl + 8*da*da + 8*db*db)
}

// backfillMetric is the OKLab distance used for pool backfill:
// sqrt(Δl² + 6Δa² + 6Δb²).
func backfillMetric(a, b colorspace.OKLab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + 6*da*da + 6*db*db)
}

func hueDeltaWrapped(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// deduplicate implements §4.4.4: merges perceptually-duplicate
// candidates, folding a duplicate's weight into the accepted entry.
func deduplicate(candidates []scoredColor) []scoredColor {
	accepted := make([]scoredColor, 0, len(candidates))

	for _, cand := range candidates {
		matchIdx := -1
		for i, acc := range accepted {
			if isDuplicate(cand, acc) {
				matchIdx = i
				break
			}
		}
		if matchIdx >= 0 {
			accepted[matchIdx].Weight += cand.Weight
			continue
		}
		accepted = append(accepted, cand)
	}

	return accepted
}

func isDuplicate(a, b scoredColor) bool {
	d := dedupDistance(a.OKLab, b.OKLab)

	switch {
	case a.S < 10 || b.S < 10: // very_neutral
		if math.Abs(a.L-b.L) < 22 {
			return true
		}
		return d < 0.7*dedupThreshold
	case a.S < lowSaturationCutoff || b.S < lowSaturationCutoff: // neutral
		if math.Abs(a.L-b.L) < 15 && math.Abs(a.S-b.S) < 20 {
			return true
		}
		return d < 0.85*dedupThreshold
	default:
		if hueDeltaWrapped(a.H, b.H) < 32 && math.Abs(a.S-b.S) < 25 && math.Abs(a.L-b.L) < 20 {
			return true
		}
		return d < dedupThreshold
	}
}

// diversifyByHue implements §4.4.5: walking candidates in weight-desc
// order, accept only those whose hue is not already represented within
// 35° — unless both sides of the comparison are low-saturation, in
// which case hue is moot. Rejected candidates are returned as the pool
// for later backfill.
func diversifyByHue(candidates []scoredColor) (accepted, pruned []scoredColor) {
	sorted := make([]scoredColor, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })

	for _, cand := range sorted {
		conflict := false
		lowSat := cand.S < lowSaturationCutoff
		for _, acc := range accepted {
			if lowSat && acc.S < lowSaturationCutoff {
				continue
			}
			if hueDeltaWrapped(cand.H, acc.H) < hueDiversityMinDelta {
				conflict = true
				break
			}
		}
		if conflict {
			pruned = append(pruned, cand)
			continue
		}
		accepted = append(accepted, cand)
	}

	return accepted, pruned
}

// sliceAndCleanup implements §4.4.6: truncate to the target count, then
// run a stricter dedup pass over the slice.
func sliceAndCleanup(candidates []scoredColor, target int) []scoredColor {
	if target < len(candidates) {
		candidates = candidates[:target]
	}

	cleaned := make([]scoredColor, 0, len(candidates))
	for _, cand := range candidates {
		matchIdx := -1
		for i, acc := range cleaned {
			d := dedupDistance(cand.OKLab, acc.OKLab)
			strict := d < dedupThreshold ||
				(hueDeltaWrapped(cand.H, acc.H) < finalCleanupHue &&
					math.Abs(cand.S-acc.S) < finalCleanupSat &&
					math.Abs(cand.L-acc.L) < finalCleanupLight)
			if strict {
				matchIdx = i
				break
			}
		}
		if matchIdx >= 0 {
			cleaned[matchIdx].Weight += cand.Weight
			continue
		}
		cleaned = append(cleaned, cand)
	}

	return cleaned
}

// poolBackfill implements §4.4.7: if the final set is too small, pull
// in pruned candidates that are sufficiently distinct from every
// accepted entry.
func poolBackfill(accepted, pool []scoredColor, target int) []scoredColor {
	minRequired := target
	if minRequired > 2 {
		minRequired = 2
	}
	if len(accepted) >= minRequired {
		return accepted
	}

	sortedPool := make([]scoredColor, len(pool))
	copy(sortedPool, pool)
	sort.SliceStable(sortedPool, func(i, j int) bool { return sortedPool[i].Weight > sortedPool[j].Weight })

	for _, cand := range sortedPool {
		farEnough := true
		for _, acc := range accepted {
			if backfillMetric(cand.OKLab, acc.OKLab) <= backfillDistance {
				farEnough = false
				break
			}
		}
		if farEnough {
			accepted = append(accepted, cand)
		}
	}

	return accepted
}
