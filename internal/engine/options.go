package engine

import "github.com/paletteforge/engine/internal/palette"

const (
	defaultMinColors = 3
	defaultMaxColors = 20
)

// Options mirrors the opts record of spec §6: a plain record with
// defaults rather than a dynamic option bag (§9).
type Options struct {
	// NumColors requests a total target color count, which the
	// clustering stage splits between the foreground and background
	// sides (each side gets at least 2). Nil selects the adaptive count
	// of §4.4.1. Clamped to [3,20] when set.
	NumColors *int

	// IncludeBackground controls whether background colors are merged
	// into the returned palette. Defaults to true.
	IncludeBackground bool

	// GenerateHarmonies controls whether hue-rotated harmony companions
	// are computed for each color. Defaults to true.
	GenerateHarmonies bool
}

// DefaultOptions returns the spec's documented defaults.
func DefaultOptions() Options {
	return Options{
		NumColors:         nil,
		IncludeBackground: true,
		GenerateHarmonies: true,
	}
}

func (o Options) normalized() Options {
	if o.NumColors != nil {
		n := *o.NumColors
		if n < defaultMinColors {
			n = defaultMinColors
		}
		if n > defaultMaxColors {
			n = defaultMaxColors
		}
		o.NumColors = &n
	}
	return o
}

// Hooks carries the optional streaming callback of §6/§9: a sum type
// of {none | on_partial(fn)} expressed as a nilable field.
type Hooks struct {
	// OnPartial is invoked once, the first time the accumulated
	// palette reaches partialColorCount entries, or once at the end
	// with the whole palette if that threshold was never reached.
	OnPartial func(palette.Palette)
}

// partialColorCount is PARTIAL_COLOR_COUNT from §4.7 step 6.
const partialColorCount = 5
