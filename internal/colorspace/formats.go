package colorspace

// ColorFormats is the eight-format record described in spec §4.1/§6: a
// hex string plus one {css, values} pair per colour space. BuildFormats
// is the sole aggregator that produces it, so every export path and the
// orchestrator see identical rounding.
type ColorFormats struct {
	Hex   string      `json:"hex"`
	RGB   RGBFormat   `json:"rgb"`
	OKLCh OKLChFormat `json:"oklch"`
	HSL   HSLFormat   `json:"hsl"`
	HSB   HSBFormat   `json:"hsb"`
	CMYK  CMYKFormat  `json:"cmyk"`
	LAB   LABFormat   `json:"lab"`
	LCh   LChFormat   `json:"lch"`
}

type RGBFormat struct {
	CSS    string `json:"css"`
	Values RGB    `json:"values"`
}

type OKLChFormat struct {
	CSS    string `json:"css"`
	Values OKLCh  `json:"values"`
}

type HSLFormat struct {
	CSS    string `json:"css"`
	Values HSL    `json:"values"`
}

type HSBFormat struct {
	CSS    string `json:"css"`
	Values HSB    `json:"values"`
}

type CMYKFormat struct {
	CSS    string `json:"css"`
	Values CMYK   `json:"values"`
}

type LABFormat struct {
	CSS    string `json:"css"`
	Values LAB    `json:"values"`
}

type LChFormat struct {
	CSS    string `json:"css"`
	Values LCh    `json:"values"`
}

// BuildFormats deterministically computes every representation of rgb.
func BuildFormats(rgb RGB) ColorFormats {
	oklch := RGBToOKLCh(rgb)
	oklch.L = round(oklch.L, 4)
	oklch.C = round(oklch.C, 4)
	oklch.H = round(oklch.H, 2)

	return ColorFormats{
		Hex: rgb.Hex(),
		RGB: RGBFormat{CSS: rgb.CSS(), Values: rgb},
		OKLCh: OKLChFormat{
			CSS:    oklch.CSS(),
			Values: oklch,
		},
		HSL: HSLFormat{CSS: RGBToHSL(rgb).CSS(), Values: RGBToHSL(rgb)},
		HSB: HSBFormat{CSS: RGBToHSB(rgb).CSS(), Values: RGBToHSB(rgb)},
		CMYK: CMYKFormat{
			CSS:    RGBToCMYK(rgb).CSS(),
			Values: RGBToCMYK(rgb),
		},
		LAB: LABFormat{CSS: RGBToLAB(rgb).CSS(), Values: RGBToLAB(rgb)},
		LCh: LChFormat{CSS: RGBToLCh(rgb).CSS(), Values: RGBToLCh(rgb)},
	}
}
