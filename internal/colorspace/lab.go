package colorspace

import "math"

// LAB holds a CIE L*a*b* colour under the D65 illuminant. L is in
// [0,100]; A and B are roughly in [-128,127].
type LAB struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// LCh is the cylindrical form of LAB.
type LCh struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// D65 reference white, 2-degree observer.
const (
	refX = 95.047
	refY = 100.000
	refZ = 108.883
)

// RGBToLAB converts sRGB to CIE LAB via linear RGB and XYZ, grounded on
// the standard sRGB->XYZ matrix used across the retrieval pack
// (JaimeStill-omarchy-theme-generator/pkg/color/lab.go).
func RGBToLAB(c RGB) LAB {
	r := srgbToLinear(c.R)
	g := srgbToLinear(c.G)
	b := srgbToLinear(c.B)

	x := (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100
	y := (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100
	z := (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100

	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LABToRGB is the inverse of RGBToLAB.
func LABToRGB(c LAB) RGB {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	x := refX * labFInv(fx)
	y := refY * labFInv(fy)
	z := refZ * labFInv(fz)

	x /= 100
	y /= 100
	z /= 100

	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.9692660 + y*1.8760108 + z*0.0415560
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252

	return RGB{R: linearToSRGB(r), G: linearToSRGB(g), B: linearToSRGB(b)}
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// LABToLCh converts to the cylindrical form.
func LABToLCh(c LAB) LCh {
	chroma := math.Sqrt(c.A*c.A + c.B*c.B)
	hue := math.Atan2(c.B, c.A) * 180.0 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return LCh{L: c.L, C: chroma, H: hue}
}

// LChToLAB converts back from the cylindrical form.
func LChToLAB(c LCh) LAB {
	rad := c.H * math.Pi / 180.0
	return LAB{L: c.L, A: c.C * math.Cos(rad), B: c.C * math.Sin(rad)}
}

// RGBToLCh composes RGBToLAB and LABToLCh.
func RGBToLCh(c RGB) LCh {
	return LABToLCh(RGBToLAB(c))
}

// CSS renders "lab(l a b)" with integer components, per §4.1.
func (c LAB) CSS() string {
	return "lab(" + itoa(int(math.Round(c.L))) + " " + itoa(int(math.Round(c.A))) + " " + itoa(int(math.Round(c.B))) + ")"
}

// CSS renders "lch(l c h)" with integer components.
func (c LCh) CSS() string {
	return "lch(" + itoa(int(math.Round(c.L))) + " " + itoa(int(math.Round(c.C))) + " " + itoa(int(math.Round(c.H))) + ")"
}
