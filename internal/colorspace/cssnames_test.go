package colorspace

import "testing"

func TestNearestCSSColorExactMatch(t *testing.T) {
	for _, want := range []string{"tomato", "steelblue", "rebeccapurple"} {
		var rgb RGB
		for _, entry := range cssColorTable {
			if entry.Name == want {
				rgb = entry.RGB
				break
			}
		}
		got := NearestCSSColor(rgb)
		if got != want {
			t.Errorf("NearestCSSColor(%v) = %q, want %q", rgb, got, want)
		}
	}
}

func TestNearestCSSColorPureRedIsRed(t *testing.T) {
	if got := NearestCSSColor(RGB{255, 0, 0}); got != "red" {
		t.Errorf("NearestCSSColor(pure red) = %q, want \"red\"", got)
	}
}
