// Package naming implements the heuristic color namer (§4.5): palette
// classification, tone bucketing, intensity prefixes with per-extraction
// anti-collision, temperature, css variable slugging, and confidence.
package naming

import (
	"math"
	"strings"

	"github.com/paletteforge/engine/internal/colorspace"
)

const (
	toneDark   = "dark"
	toneMedium = "medium"
	toneLight  = "light"
)

// Temperature classifies a hue as warm, cool, or neutral (§4.5.3).
type Temperature string

const (
	Warm        Temperature = "warm"
	Cool        Temperature = "cool"
	TempNeutral Temperature = "neutral"
)

// Result is everything the namer contributes to one ExtractedColor.
type Result struct {
	Name            string
	CSSVariableName string
	Temperature     Temperature
	Confidence      float64
}

// Name implements format(rgb, weight, segment, index, opts)'s naming
// portion. isForeground selects the confidence formula of §4.5.7.
func (t *Tracker) Name(rgb colorspace.RGB, weight float64, isForeground bool) Result {
	hsl := colorspace.RGBToHSL(rgb)
	h := hsl.H
	s := hsl.S * 100
	l := hsl.L * 100

	tone := toneBucket(s, l)
	base, paletteKey := t.baseName(h, s, l, tone)
	prefix := t.intensityPrefix(paletteKey, tone, s, l, base)

	name := base
	if prefix != "" {
		name = prefix + " " + base
	}

	return Result{
		Name:            name,
		CSSVariableName: cssVariableName(name),
		Temperature:     temperatureFor(h, paletteKey),
		Confidence:      confidenceFor(isForeground, weight),
	}
}

func toneBucket(s, l float64) string {
	darkThreshold := 35.0
	lightThreshold := 70.0
	if s > 60 {
		darkThreshold = 40.0
		lightThreshold = 65.0
	}
	if l <= darkThreshold {
		return toneDark
	}
	if l >= lightThreshold {
		return toneLight
	}
	return toneMedium
}

func (t *Tracker) baseName(h, s, l float64, tone string) (name string, paletteKey string) {
	seed := int(math.Round(17*h + 13*s + 11*l))

	switch {
	case s <= 12 || (s <= 18 && (l <= 25 || l >= 85)):
		paletteKey = "Neutral"
		return t.pickBaseName(paletteKey, neutralNames.bucket(tone), seed), paletteKey
	case s >= 10 && s <= 45 && h >= 20 && h <= 70:
		paletteKey = "Earth"
		return t.pickBaseName(paletteKey, earthNames.bucket(tone), seed), paletteKey
	default:
		p := huePaletteFor(h)
		paletteKey = p.Name
		return t.pickBaseName(paletteKey, p.Names.bucket(tone), seed), paletteKey
	}
}

// conflictPairs lists descriptors that must not co-occur on one name,
// keyed by the candidate prefix being considered.
var conflictPairs = map[string][]string{
	"muted":    {"vivid", "bright", "rich"},
	"vivid":    {"muted", "soft", "dusky"},
	"soft":     {"vivid", "rich", "bright"},
	"deep":     {"bright", "luminous"},
	"bright":   {"deep", "muted", "dusky"},
	"rich":     {"soft", "muted"},
	"luminous": {"deep", "dusky"},
	"dusky":    {"vivid", "bright", "luminous"},
}

func (t *Tracker) intensityPrefix(paletteKey, tone string, s, l float64, baseName string) string {
	var candidate string

	switch {
	case s <= 15:
		switch tone {
		case toneDark:
			candidate = "Deep"
		case toneLight:
			candidate = "Soft"
		default:
			candidate = "Muted"
		}
	case s < 31:
		candidate = ""
	case s >= 75:
		switch {
		case l > 85:
			candidate = "Bright"
		case l < 30:
			candidate = "Deep"
		case l >= 50 && l <= 75:
			candidate = "Vivid"
		}
	case s >= 50:
		switch {
		case tone == toneDark && l < 30:
			candidate = "Rich"
		case tone == toneLight && l > 80:
			candidate = "Luminous"
		}
	case s >= 35:
		if tone == toneDark && l < 25 {
			candidate = "Dusky"
		}
	}

	if candidate == "" {
		return ""
	}

	lowerBase := strings.ToLower(baseName)
	lowerCandidate := strings.ToLower(candidate)
	if strings.Contains(lowerBase, lowerCandidate) {
		return ""
	}
	for _, conflict := range conflictPairs[lowerCandidate] {
		if strings.Contains(lowerBase, conflict) {
			return ""
		}
	}
	if !t.descriptorAllowed(paletteKey, candidate) {
		return ""
	}
	t.recordDescriptor(paletteKey, candidate)
	return candidate
}

// temperatureFor implements §4.5.3's hue-based classification. A color
// classified into the Neutral name palette has no meaningful hue (HSL
// reports h=0 for true greys), so it is always reported as neutral
// rather than inheriting the warm bucket that h=0 falls into.
func temperatureFor(h float64, paletteKey string) Temperature {
	if paletteKey == "Neutral" {
		return TempNeutral
	}
	switch {
	case (h >= 0 && h <= 60) || (h >= 300 && h <= 360):
		return Warm
	case h >= 120 && h <= 240:
		return Cool
	default:
		return TempNeutral
	}
}

func cssVariableName(name string) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return "--color-" + slug
}

func confidenceFor(isForeground bool, weight float64) float64 {
	if isForeground {
		return 0.85 + 0.15*weight
	}
	return 0.75 + 0.15*weight
}
