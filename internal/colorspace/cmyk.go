package colorspace

import "math"

// CMYK holds cyan/magenta/yellow/key as fractions in [0,1].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// RGBToCMYK converts sRGB to CMYK using the standard subtractive formula.
func RGBToCMYK(c RGB) CMYK {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 1}
	}

	return CMYK{
		C: (1 - r - k) / (1 - k),
		M: (1 - g - k) / (1 - k),
		Y: (1 - b - k) / (1 - k),
		K: k,
	}
}

// CMYKToRGB converts CMYK back to sRGB.
func CMYKToRGB(c CMYK) RGB {
	r := 255 * (1 - c.C) * (1 - c.K)
	g := 255 * (1 - c.M) * (1 - c.K)
	b := 255 * (1 - c.Y) * (1 - c.K)
	return RGB{R: clampToByte(math.Round(r)), G: clampToByte(math.Round(g)), B: clampToByte(math.Round(b))}
}

// CSS renders the "cmyk(c%, m%, y%, k%)" display string with integer
// percents, per §4.1.
func (c CMYK) CSS() string {
	pct := func(v float64) int { return int(math.Round(v * 100)) }
	return "cmyk(" + itoa(pct(c.C)) + "%, " + itoa(pct(c.M)) + "%, " + itoa(pct(c.Y)) + "%, " + itoa(pct(c.K)) + "%)"
}
