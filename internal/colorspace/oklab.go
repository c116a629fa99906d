package colorspace

import "math"

// OKLab is Björn Ottosson's perceptually uniform colour space.
// L is lightness in [0,1] for displayable sRGB; A and B are opponent axes.
type OKLab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// OKLCh is the cylindrical form of OKLab: C is chroma (>=0), H is hue in
// degrees, wrapped to [0,360).
type OKLCh struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// RGBToOKLab converts sRGB to OKLab via linear RGB and the Ottosson LMS
// matrices. Grounded on the published forward transform (M1 then cube
// root then M2).
func RGBToOKLab(c RGB) OKLab {
	r := srgbToLinear(c.R)
	g := srgbToLinear(c.G)
	b := srgbToLinear(c.B)

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	return OKLab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// OKLabToRGB is the inverse of RGBToOKLab, clamping linear RGB to [0,1]
// before gamma-encoding.
func OKLabToRGB(c OKLab) RGB {
	lp := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	mp := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	sp := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return RGB{R: linearToSRGB(r), G: linearToSRGB(g), B: linearToSRGB(b)}
}

// OKLabToOKLCh converts to the cylindrical representation.
func OKLabToOKLCh(c OKLab) OKLCh {
	chroma := math.Sqrt(c.A*c.A + c.B*c.B)
	hue := math.Atan2(c.B, c.A) * 180.0 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return OKLCh{L: c.L, C: chroma, H: hue}
}

// OKLChToOKLab converts back from the cylindrical representation.
func OKLChToOKLab(c OKLCh) OKLab {
	rad := c.H * math.Pi / 180.0
	return OKLab{
		L: c.L,
		A: c.C * math.Cos(rad),
		B: c.C * math.Sin(rad),
	}
}

// RGBToOKLCh is a convenience composition of RGBToOKLab + OKLabToOKLCh.
func RGBToOKLCh(c RGB) OKLCh {
	return OKLabToOKLCh(RGBToOKLab(c))
}

// OKLChToRGB is a convenience composition of OKLChToOKLab + OKLabToRGB.
func OKLChToRGB(c OKLCh) RGB {
	return OKLabToRGB(OKLChToOKLab(c))
}

// CSS returns the oklch() CSS function string: lightness as a rounded
// percentage, chroma to 4 decimals, hue to 2 decimals.
func (c OKLCh) CSS() string {
	return cssOKLCh(c)
}

func cssOKLCh(c OKLCh) string {
	lPct := round(c.L*100, 2)
	return sprintfOKLCh(lPct, round(c.C, 4), round(c.H, 2))
}

func sprintfOKLCh(lPct, chroma, hue float64) string {
	return "oklch(" + trimFloat(lPct) + "% " + trimFloat(chroma) + " " + trimFloat(hue) + ")"
}

// trimFloat formats a float with no trailing zeros, matching how hand
// written CSS values are usually emitted.
func trimFloat(v float64) string {
	s := trimTrailingZeros(v)
	return s
}
