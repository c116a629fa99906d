package colorspace

import "testing"

func TestOKLabRoundTrip(t *testing.T) {
	samples := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{128, 64, 200},
		{17, 211, 90},
		{250, 250, 10},
	}

	for _, rgb := range samples {
		oklch := RGBToOKLCh(rgb)
		got := OKLChToRGB(oklch)

		if absInt(int(got.R)-int(rgb.R)) > 1 ||
			absInt(int(got.G)-int(rgb.G)) > 1 ||
			absInt(int(got.B)-int(rgb.B)) > 1 {
			t.Errorf("round trip for %v: got %v, want within +-1", rgb, got)
		}
	}
}

func TestOKLabFinite(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				lab := RGBToOKLab(RGB{uint8(r), uint8(g), uint8(b)})
				if lab.L != lab.L || lab.A != lab.A || lab.B != lab.B {
					t.Fatalf("NaN produced for rgb(%d,%d,%d)", r, g, b)
				}
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
