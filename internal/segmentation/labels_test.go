package segmentation

import "testing"

func TestClassifySegmentsBackgroundBeforeEverything(t *testing.T) {
	segs := []SegmentOut{{Label: "sky", Score: 0.99}}
	got := classifySegments(segs)
	if got[0] != classBackground {
		t.Fatalf("expected background, got %v", got[0])
	}
}

func TestClassifySegmentsLivingEntityIsForeground(t *testing.T) {
	segs := []SegmentOut{
		{Label: "sky", Score: 0.5},
		{Label: "person", Score: 0.9},
	}
	got := classifySegments(segs)
	if got[1] != classForeground {
		t.Fatalf("expected foreground for person, got %v", got[1])
	}
}

func TestClassifySegmentsFurnitureNeedsScoreAndCount(t *testing.T) {
	segs := []SegmentOut{
		{Label: "chair", Score: 0.95},
		{Label: "sky", Score: 0.5},
		{Label: "road", Score: 0.4},
	}
	got := classifySegments(segs)
	if got[0] != classForeground {
		t.Fatalf("expected chair to be foreground with high relative score, got %v", got[0])
	}
}

func TestClassifySegmentsFenceThreshold(t *testing.T) {
	lowScore := classifyOne(SegmentOut{Label: "fence", Score: 0.5}, 0.5, 3, false)
	if lowScore != classBackground {
		t.Fatalf("expected low-score fence to be background, got %v", lowScore)
	}
}

func TestClassifySegmentsDefaultIsBackground(t *testing.T) {
	got := classifyOne(SegmentOut{Label: "unknown-thing", Score: 0.5}, 0.5, 2, false)
	if got != classBackground {
		t.Fatalf("expected default classification to be background, got %v", got)
	}
}
