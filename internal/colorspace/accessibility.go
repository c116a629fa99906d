package colorspace

import "math"

// White and Black are the two candidates suggestTextColor chooses between.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// Luminance computes the relative luminance per WCAG 2.0, grounded on the
// teacher's Luminance (internal/colour/utils.go).
func Luminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG 2.0 contrast ratio between two colours,
// always in [1, 21].
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastInfo reports a contrast ratio alongside the WCAG pass
// thresholds it satisfies.
type ContrastInfo struct {
	Ratio   float64 `json:"ratio"`
	PassAA  bool    `json:"pass_aa"`  // >= 4.5
	PassAAA bool    `json:"pass_aaa"` // >= 7.0
	PassUI  bool    `json:"pass_ui"`  // >= 3.0 (large text / UI components)
}

// Contrast builds a ContrastInfo for colour against background.
func Contrast(colour, background RGB) ContrastInfo {
	ratio := ContrastRatio(colour, background)
	return ContrastInfo{
		Ratio:   ratio,
		PassAA:  ratio >= 4.5,
		PassAAA: ratio >= 7.0,
		PassUI:  ratio >= 3.0,
	}
}

// SimplifiedAPCA is the engine's deliberately-simplified stand-in for the
// full APCA contrast algorithm: round(|Y_text - Y_bg| * 100) of relative
// luminance. Spec §4.1/§9 Open Questions: preserve this definition, do
// not substitute full APCA.
func SimplifiedAPCA(text, background RGB) float64 {
	return math.Round(math.Abs(Luminance(text)-Luminance(background)) * 100)
}

// SuggestTextColor returns whichever of pure white/black yields the
// greater WCAG contrast ratio against bg.
func SuggestTextColor(bg RGB) RGB {
	whiteRatio := ContrastRatio(White, bg)
	blackRatio := ContrastRatio(Black, bg)
	if whiteRatio >= blackRatio {
		return White
	}
	return Black
}

// Accessibility bundles the per-colour accessibility record from §3. A
// single suggested_text_color hex string is exposed, per the spec'd wire
// shape; the candidate RGB value itself is not part of the contract.
type Accessibility struct {
	ContrastOnWhite    ContrastInfo `json:"contrast_on_white"`
	ContrastOnBlack    ContrastInfo `json:"contrast_on_black"`
	APCA               float64      `json:"apca"`
	SuggestedTextColor string       `json:"suggested_text_color"`
}

// BuildAccessibility computes the full accessibility record for c.
func BuildAccessibility(c RGB) Accessibility {
	suggested := SuggestTextColor(c)
	return Accessibility{
		ContrastOnWhite:    Contrast(c, White),
		ContrastOnBlack:    Contrast(c, Black),
		APCA:               SimplifiedAPCA(suggested, c),
		SuggestedTextColor: suggested.Hex(),
	}
}
