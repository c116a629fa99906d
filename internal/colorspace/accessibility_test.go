package colorspace

import "testing"

func TestContrastRatioBounds(t *testing.T) {
	tests := []RGB{{0, 0, 0}, {255, 255, 255}, {128, 128, 128}, {200, 20, 20}}
	for _, c := range tests {
		onWhite := ContrastRatio(c, White)
		onBlack := ContrastRatio(c, Black)
		if onWhite < 1.0 || onBlack < 1.0 {
			t.Errorf("contrast ratio below 1.0 for %v: white=%f black=%f", c, onWhite, onBlack)
		}
	}
}

func TestSuggestTextColorMaximizesContrast(t *testing.T) {
	tests := []RGB{{10, 10, 10}, {245, 245, 245}, {60, 120, 200}}
	for _, c := range tests {
		suggested := SuggestTextColor(c)
		whiteRatio := ContrastRatio(White, c)
		blackRatio := ContrastRatio(Black, c)
		want := Black
		if whiteRatio >= blackRatio {
			want = White
		}
		if suggested != want {
			t.Errorf("SuggestTextColor(%v) = %v, want %v", c, suggested, want)
		}
	}
}

func TestPureRedNearestPantoneHasLabel(t *testing.T) {
	label := NearestPantone(RGB{255, 0, 0})
	if label == "" {
		t.Fatal("NearestPantone returned empty label")
	}
}
