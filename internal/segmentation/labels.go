package segmentation

import "strings"

// classification is the internal fg/bg/uncertain verdict for one segment
// before mask compositing.
type classification int

const (
	classBackground classification = iota
	classForeground
	classUncertain
)

// Label sets for the rule ladder in spec §4.2 step 2. These mirror the
// example categories named in the contract; a provider emitting labels
// outside these sets falls through to the default (background) rule.
var (
	backgroundLabels = stringSet(
		"sky", "clouds", "cloud", "ground", "road", "pavement",
		"floor", "ceiling", "sidewalk", "path",
	)

	livingEntityLabels = stringSet(
		"person", "people", "man", "woman", "child",
		"cat", "dog", "bird", "horse", "cow", "sheep", "deer",
		"fox", "bear", "elephant", "giraffe", "zebra", "rabbit",
	)

	vehicleLabels = stringSet(
		"car", "bike", "bicycle", "motorbike", "motorcycle",
		"boat", "aircraft", "airplane", "plane", "train", "bus", "truck",
	)

	portableObjectLabels = stringSet(
		"bag", "backpack", "umbrella", "suitcase", "bottle",
		"book", "phone", "laptop", "camera", "toy", "ball",
	)

	signageLabels = stringSet(
		"sign", "signboard", "poster", "billboard", "banner",
	)

	furnitureLabels = stringSet(
		"chair", "table", "sofa", "couch", "bed", "desk",
		"shelf", "cabinet", "sink", "toilet", "lamp", "bench",
	)

	architecturalLabels = stringSet(
		"window", "door", "column", "pillar", "arch",
		"staircase", "stairs", "railing", "balcony",
	)

	naturalForegroundLabels = stringSet(
		"tree", "rock", "fountain", "statue",
	)

	wallsFencesLabels = stringSet(
		"wall", "fence",
	)

	waterTerrainLabels = stringSet(
		"water", "terrain", "sand", "grass", "mountain", "hill", "sea", "lake", "river",
	)
)

func stringSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func isForegroundCategory(label string) bool {
	_, living := livingEntityLabels[label]
	_, vehicle := vehicleLabels[label]
	_, portable := portableObjectLabels[label]
	_, sign := signageLabels[label]
	return living || vehicle || portable || sign
}

// classifySegments applies the priority-descending rule ladder to every
// segment, using each segment's rank and the batch mean score as context.
func classifySegments(segs []SegmentOut) []classification {
	total := len(segs)
	out := make([]classification, total)
	if total == 0 {
		return out
	}

	var sum float64
	for _, s := range segs {
		sum += s.Score
	}
	mean := sum / float64(total)

	top3 := topNIndices(segs, 3)

	for i, seg := range segs {
		out[i] = classifyOne(seg, mean, total, top3[i])
	}
	return out
}

func topNIndices(segs []SegmentOut, n int) []bool {
	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(segs))
	for i, s := range segs {
		ranked[i] = scored{idx: i, score: s.Score}
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].score > ranked[j-1].score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	isTop := make([]bool, len(segs))
	for i := 0; i < len(ranked) && i < n; i++ {
		isTop[ranked[i].idx] = true
	}
	return isTop
}

func classifyOne(seg SegmentOut, mean float64, total int, isTop3 bool) classification {
	label := strings.ToLower(strings.TrimSpace(seg.Label))

	if _, ok := backgroundLabels[label]; ok {
		return classBackground
	}
	if isForegroundCategory(label) {
		return classForeground
	}
	if _, ok := furnitureLabels[label]; ok && seg.Score > mean*1.2 && total >= 3 {
		return classForeground
	}
	if _, ok := architecturalLabels[label]; ok && seg.Score > 0.9 && total >= 4 {
		return classUncertain
	}
	if _, ok := naturalForegroundLabels[label]; ok && (seg.Score > mean*1.3 || total <= 3) {
		return classForeground
	}
	if label == "fence" {
		if seg.Score < 0.85 {
			return classBackground
		}
	} else if _, ok := wallsFencesLabels[label]; ok {
		return classBackground
	}
	if _, ok := waterTerrainLabels[label]; ok && !(seg.Score > mean*1.5) {
		return classBackground
	}
	if seg.Score > 0.95 && isTop3 && total >= 5 {
		return classUncertain
	}
	return classBackground
}
