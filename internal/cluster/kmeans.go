package cluster

import (
	"math"

	"github.com/paletteforge/engine/internal/colorspace"
)

// oversampleFactor requests 4x the target centroid count so the
// dedup/diversity/backfill stages downstream have material to prune.
const oversampleFactor = 4

const (
	defaultMaxIterations = 100
	defaultEpsilon       = 1e-4
)

// Tuning holds the clustering stage's configurable constants.
type Tuning struct {
	MaxIterations int
	Epsilon       float64
}

// DefaultTuning returns the clustering stage's default configuration.
func DefaultTuning() Tuning {
	return Tuning{MaxIterations: defaultMaxIterations, Epsilon: defaultEpsilon}
}

// seededDistance is the weighted OKLab metric k-means++ uses to pick
// well-spread initial centroids: sqrt(Δl² + 4Δa² + 4Δb²).
func seededDistance(a, b colorspace.OKLab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + 4*da*da + 4*db*db)
}

// plainDistance is the unweighted Euclidean OKLab metric used for Lloyd
// assignment.
func plainDistance(a, b colorspace.OKLab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// kmeansPlusPlusInit picks k initial centroids from elements using the
// deterministic seeded process in §4.4.3.
func kmeansPlusPlusInit(elements []colorspace.OKLab, k int, rng *lcg) []colorspace.OKLab {
	n := len(elements)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	centroids := make([]colorspace.OKLab, 0, k)
	centroids = append(centroids, elements[n/2])

	for len(centroids) < k {
		weights := make([]float64, n)
		var sum float64
		for i, e := range elements {
			d := minSeededDistance(e, centroids)
			w := d * d * d
			weights[i] = w
			sum += w
		}

		chosen := -1
		if sum > 0 {
			threshold := rng.next() * sum
			var cum float64
			for i, w := range weights {
				cum += w
				if cum >= threshold {
					chosen = i
					break
				}
			}
		}
		if chosen == -1 {
			chosen = rng.nextInt(n)
		}
		centroids = append(centroids, elements[chosen])
	}

	return centroids
}

func minSeededDistance(e colorspace.OKLab, centroids []colorspace.OKLab) float64 {
	best := math.Inf(1)
	for _, c := range centroids {
		if d := seededDistance(e, c); d < best {
			best = d
		}
	}
	return best
}

// lloydResult carries a converged clustering over a fixed element set.
type lloydResult struct {
	Centroids   []colorspace.OKLab
	Assignments []int
	ClusterSize []int
}

// runLloyd iterates nearest-centroid assignment and mean recomputation
// until convergence or MaxIterations, per §4.4.3. cancelled, when
// non-nil, is polled once per iteration so a tripped cancellation token
// halts the loop early with whatever centroids it last converged to.
func runLloyd(elements []colorspace.OKLab, initial []colorspace.OKLab, tuning Tuning, cancelled func() bool) lloydResult {
	k := len(initial)
	centroids := make([]colorspace.OKLab, k)
	copy(centroids, initial)

	assignments := make([]int, len(elements))
	sizes := make([]int, k)

	for iter := 0; iter < tuning.MaxIterations; iter++ {
		if cancelled != nil && cancelled() {
			break
		}
		for i, e := range elements {
			assignments[i] = nearestCentroid(e, centroids)
		}

		sums := make([]colorspace.OKLab, k)
		for i := range sizes {
			sizes[i] = 0
		}
		for i, e := range elements {
			c := assignments[i]
			sums[c].L += e.L
			sums[c].A += e.A
			sums[c].B += e.B
			sizes[c]++
		}

		newCentroids := make([]colorspace.OKLab, k)
		converged := true
		for i := 0; i < k; i++ {
			if sizes[i] == 0 {
				newCentroids[i] = centroids[i]
				continue
			}
			mean := colorspace.OKLab{
				L: sums[i].L / float64(sizes[i]),
				A: sums[i].A / float64(sizes[i]),
				B: sums[i].B / float64(sizes[i]),
			}
			newCentroids[i] = mean
			if math.Abs(mean.L-centroids[i].L) >= tuning.Epsilon ||
				math.Abs(mean.A-centroids[i].A) >= tuning.Epsilon ||
				math.Abs(mean.B-centroids[i].B) >= tuning.Epsilon {
				converged = false
			}
		}

		centroids = newCentroids
		if converged {
			break
		}
	}

	// Final assignment pass against the converged centroids.
	for i, e := range elements {
		assignments[i] = nearestCentroid(e, centroids)
	}
	sizes = make([]int, k)
	for _, c := range assignments {
		sizes[c]++
	}

	return lloydResult{Centroids: centroids, Assignments: assignments, ClusterSize: sizes}
}

func nearestCentroid(e colorspace.OKLab, centroids []colorspace.OKLab) int {
	best := 0
	bestDist := math.Inf(1)
	for i, c := range centroids {
		if d := plainDistance(e, c); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
