package colorspace

import "math"

// HSL holds hue in degrees [0,360), saturation and lightness as fractions
// in [0,1]. Display formatting rounds s/l to integer percents, per §4.1.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGBToHSL converts sRGB to HSL. Grounded on the teacher's rgbToHSL
// (internal/colour/utils.go), generalised out of the colour package.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	var h, s float64
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts HSL back to sRGB.
func HSLToRGB(hsl HSL) RGB {
	h, s, l := hsl.H, hsl.S, hsl.L
	if s == 0 {
		v := clampToByte(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+120)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-120)

	return RGB{
		R: clampToByte(math.Round(r * 255)),
		G: clampToByte(math.Round(g * 255)),
		B: clampToByte(math.Round(b * 255)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}
	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// CSS returns the canonical "hsl(h, s%, l%)" string with integer percents.
func (hsl HSL) CSS() string {
	h := int(math.Round(hsl.H))
	s := int(math.Round(hsl.S * 100))
	l := int(math.Round(hsl.L * 100))
	return "hsl(" + itoa(h) + ", " + itoa(s) + "%, " + itoa(l) + "%)"
}

// HSB (a.k.a. HSV) holds hue in degrees, saturation/brightness as
// fractions in [0,1].
type HSB struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	B float64 `json:"b"`
}

// RGBToHSB converts sRGB to HSB/HSV.
func RGBToHSB(c RGB) HSB {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	var h float64
	switch {
	case delta == 0:
		h = 0
	case maxVal == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case maxVal == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if maxVal != 0 {
		s = delta / maxVal
	}

	return HSB{H: h, S: s, B: maxVal}
}

// CSS renders HSB in the same hsl()-style integer-percent convention used
// for display purposes elsewhere in this package.
func (hsb HSB) CSS() string {
	h := int(math.Round(hsb.H))
	s := int(math.Round(hsb.S * 100))
	b := int(math.Round(hsb.B * 100))
	return "hsb(" + itoa(h) + ", " + itoa(s) + "%, " + itoa(b) + "%)"
}

func itoa(v int) string {
	return trimTrailingZeros(float64(v))
}
