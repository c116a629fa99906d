// Package engine sequences the extraction pipeline end to end (§4.7):
// segmentation, pixel sampling, clustering, naming/formatting, export
// synthesis, and metadata aggregation, returning the single
// ColorPaletteResult the core exposes.
package engine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/paletteforge/engine/internal/cluster"
	"github.com/paletteforge/engine/internal/colorspace"
	"github.com/paletteforge/engine/internal/export"
	"github.com/paletteforge/engine/internal/imaging"
	"github.com/paletteforge/engine/internal/naming"
	"github.com/paletteforge/engine/internal/palette"
	"github.com/paletteforge/engine/internal/paletteerr"
	"github.com/paletteforge/engine/internal/sampling"
	"github.com/paletteforge/engine/internal/segmentation"
	"github.com/paletteforge/engine/internal/tones"
)

// Engine holds the capability collaborators extract() is threaded
// through: an ImageDecoder and a SegmentationProvider, plus an optional
// logger. Both capabilities are supplied by the caller (§6); the engine
// never constructs a concrete vision backend itself.
type Engine struct {
	Decoder  imaging.Decoder
	Provider segmentation.Provider
	Logger   hclog.Logger
}

// New constructs an Engine. A nil logger is replaced with a no-op one.
func New(decoder imaging.Decoder, provider segmentation.Provider, logger hclog.Logger) *Engine {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{Decoder: decoder, Provider: provider, Logger: logger}
}

// Extract implements the §4.7 orchestrator. ctx doubles as the
// cancellation token of §5/§6: it is polled between stages and inside
// the clustering stage's Lloyd iterations.
func (e *Engine) Extract(ctx context.Context, imageBytes []byte, filename string, opts Options, hooks Hooks) (palette.ColorPaletteResult, error) {
	start := time.Now()
	opts = opts.normalized()

	if err := ctx.Err(); err != nil {
		return palette.ColorPaletteResult{}, paletteerr.Cancelled()
	}

	raw, err := e.Decoder.DecodeRaw(imageBytes)
	if err != nil {
		return palette.ColorPaletteResult{}, paletteerr.InvalidImage(err)
	}

	adapter := segmentation.NewAdapter(e.Provider, e.Decoder, e.Logger)
	segResult, _ := adapter.Segment(ctx, imageBytes, raw.Width, raw.Height)

	if err := ctx.Err(); err != nil {
		return palette.ColorPaletteResult{}, paletteerr.Cancelled()
	}

	sample := sampling.Extract(raw, segResult.Mask, sampling.DefaultTuning())
	if len(sample.FGPixels) == 0 && len(sample.BGPixels) == 0 {
		return palette.ColorPaletteResult{}, paletteerr.EmptyInput("no pixels survived the brightness gate")
	}

	if err := ctx.Err(); err != nil {
		return palette.ColorPaletteResult{}, paletteerr.Cancelled()
	}

	cancelled := func() bool { return ctx.Err() != nil }
	sides := cluster.ClusterWithCancel(sample.FGPixels, sample.BGPixels, opts.NumColors, cluster.DefaultTuning(), cancelled)

	if err := ctx.Err(); err != nil {
		return palette.ColorPaletteResult{}, paletteerr.Cancelled()
	}

	tracker := naming.NewTracker()
	built := buildPalette(tracker, sides, opts, segResult)

	if hooks.OnPartial != nil {
		emitPartials(built, hooks.OnPartial)
	}

	exportedPalette, exportsOut, err := export.Synthesize(built)
	if err != nil {
		return palette.ColorPaletteResult{}, paletteerr.Wrap(paletteerr.KindInternalInvariant, "export synthesis failed", err, nil)
	}

	metadata := buildMetadata(exportedPalette, segResult, start)
	segments := buildSegments(sample, segResult)

	result := palette.ColorPaletteResult{
		ID: fmt.Sprintf("palette_%d", start.UnixMilli()),
		SourceImage: palette.SourceImage{
			Filename:    filename,
			Width:       raw.Width,
			Height:      raw.Height,
			ProcessedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Segments: segments,
		Palette:  exportedPalette,
		Exports:  exportsOut,
		Metadata: metadata,
	}
	return result, nil
}

// buildPalette merges fg/bg candidates (dropping background when
// IncludeBackground is false), sorts by descending weight, and formats
// each into an ExtractedColor numbered from 1 (§4.7 steps 3-5).
func buildPalette(tracker *naming.Tracker, sides cluster.Sides, opts Options, seg segmentation.Result) palette.Palette {
	type tagged struct {
		cluster.Candidate
		segment palette.Segment
	}

	all := make([]tagged, 0, len(sides.Foreground)+len(sides.Background))
	for _, c := range sides.Foreground {
		all = append(all, tagged{Candidate: c, segment: palette.SegmentForeground})
	}
	if opts.IncludeBackground {
		for _, c := range sides.Background {
			all = append(all, tagged{Candidate: c, segment: palette.SegmentBackground})
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Weight > all[j].Weight })

	out := make(palette.Palette, 0, len(all))
	for i, t := range all {
		out = append(out, formatColor(tracker, i+1, t.Candidate, t.segment, opts, seg))
	}
	return out
}

// formatColor implements format(rgb, weight, segment, index, opts):
// color-format building, accessibility, naming, tints/shades, harmony,
// and metadata for one candidate.
func formatColor(tracker *naming.Tracker, index int, c cluster.Candidate, segment palette.Segment, opts Options, seg segmentation.Result) palette.ExtractedColor {
	isForeground := segment == palette.SegmentForeground
	named := tracker.Name(c.RGB, c.Weight, isForeground)

	scale := tones.TintsAndShades(c.RGB)
	var tints, shades [4]colorspace.ColorFormats
	for i, t := range scale.Tints {
		tints[i] = colorspace.BuildFormats(t)
	}
	for i, sh := range scale.Shades {
		shades[i] = colorspace.BuildFormats(sh)
	}

	harmony := palette.HarmonyColors{}
	if opts.GenerateHarmonies {
		h := tones.BuildHarmonies(c.RGB)
		harmony = palette.HarmonyColors{
			Complementary: colorspace.BuildFormats(h.Complementary),
			Analogous:     [2]colorspace.ColorFormats{colorspace.BuildFormats(h.AnalogousPlus), colorspace.BuildFormats(h.AnalogousMinus)},
			Triadic:       [2]colorspace.ColorFormats{colorspace.BuildFormats(h.TriadicPlus), colorspace.BuildFormats(h.TriadicMinus)},
			SplitComplementary: [2]colorspace.ColorFormats{
				colorspace.BuildFormats(h.SplitComplementaryPlus),
				colorspace.BuildFormats(h.SplitComplementaryMinus),
			},
		}
	}

	var category string
	if len(seg.Categories) > 0 {
		category = seg.Categories[0]
	}

	return palette.ExtractedColor{
		ID:   fmt.Sprintf("color_%03d", index),
		Name: named.Name,
		Source: palette.Source{
			Segment:       segment,
			Category:      category,
			PixelCoverage: c.Weight,
			Confidence:    named.Confidence,
		},
		Formats:       colorspace.BuildFormats(c.RGB),
		Accessibility: colorspace.BuildAccessibility(c.RGB),
		Tints:         tints,
		Shades:        shades,
		Harmony:       harmony,
		Metadata: palette.ColorMetadata{
			Temperature:          string(named.Temperature),
			NearestCSSColor:      colorspace.NearestCSSColor(c.RGB),
			PantoneApproximation: colorspace.NearestPantone(c.RGB),
			CSSVariableName:      named.CSSVariableName,
		},
		Weight: c.Weight,
	}
}

// emitPartials invokes onPartial once, the first time p reaches
// partialColorCount entries, or once with the full palette if that
// threshold is never reached (§4.7 step 6).
func emitPartials(p palette.Palette, onPartial func(palette.Palette)) {
	if len(p) >= partialColorCount {
		onPartial(p[:partialColorCount])
		return
	}
	onPartial(p)
}

func buildSegments(sample sampling.Sample, seg segmentation.Result) palette.Segments {
	var fgPct, bgPct float64
	if seg.Mask != nil {
		total := len(seg.Mask)
		fgCount := 0
		for _, v := range seg.Mask {
			if v == 255 {
				fgCount++
			}
		}
		if total > 0 {
			fgPct = 100 * float64(fgCount) / float64(total)
			bgPct = 100 - fgPct
		}
	} else {
		total := len(sample.FGPixels) + len(sample.BGPixels)
		if total > 0 {
			fgPct = 100 * float64(len(sample.FGPixels)) / float64(total)
			bgPct = 100 - fgPct
		}
	}

	return palette.Segments{
		ForegroundPercentage: fgPct,
		BackgroundPercentage: bgPct,
		Categories:           seg.Categories,
		Method:               string(seg.Method),
		Quality:              string(seg.Quality),
	}
}

func buildMetadata(p palette.Palette, seg segmentation.Result, start time.Time) palette.ExtractionMetadata {
	diversity := colorDiversity(p)
	separation := colorSeparation(p)
	avgSat := averageSaturation(p)
	dominantTemp := dominantTemperature(p)
	namingQuality := namingQualityOf(p)

	confBucket := "low"
	switch seg.Quality {
	case segmentation.QualityHigh:
		confBucket = "high"
	case segmentation.QualityMedium:
		confBucket = "medium"
	}

	overall := round2((seg.Confidence + separation + namingQuality) / 3)

	return palette.ExtractionMetadata{
		ProcessingTimeMs:    time.Since(start).Milliseconds(),
		ColorDiversity:      diversity,
		ColorSeparation:     separation,
		AverageSaturation:   avgSat,
		DominantTemperature: dominantTemp,
		NamingQuality:       namingQuality,
		SegmentationQuality: palette.SegmentationQuality{
			Method:             string(seg.Method),
			ConfidenceBucket:   confBucket,
			ForegroundDetected: seg.Mask != nil,
			UsedFallback:       seg.UsedFallback,
		},
		ExtractionConfidence: palette.ExtractionConfidence{Overall: overall},
	}
}

// colorDiversity computes the normalized Shannon entropy of palette
// weights, in [0,1].
func colorDiversity(p palette.Palette) float64 {
	if len(p) <= 1 {
		return 0
	}
	var sum float64
	for _, c := range p {
		sum += c.Weight
	}
	if sum <= 0 {
		return 0
	}

	var entropy float64
	for _, c := range p {
		w := c.Weight / sum
		if w <= 0 {
			continue
		}
		entropy -= w * math.Log2(w)
	}
	maxEntropy := math.Log2(float64(len(p)))
	if maxEntropy == 0 {
		return 0
	}
	return entropy / maxEntropy
}

// colorSeparation computes the mean pairwise OKLCh distance, clipped to
// [0,1] via /2 (§4.7 step 8).
func colorSeparation(p palette.Palette) float64 {
	if len(p) < 2 {
		return 0
	}

	oklchs := make([]colorspace.OKLCh, len(p))
	for i, c := range p {
		rgb, err := colorspace.ParseHex(c.Formats.Hex)
		if err != nil {
			continue
		}
		oklchs[i] = colorspace.RGBToOKLCh(rgb)
	}

	var total float64
	var pairs int
	for i := 0; i < len(oklchs); i++ {
		for j := i + 1; j < len(oklchs); j++ {
			dl := oklchs[i].L - oklchs[j].L
			dc := oklchs[i].C - oklchs[j].C
			dh := hueDelta(oklchs[i].H, oklchs[j].H) / 360
			total += math.Sqrt(dl*dl + dc*dc + dh*dh)
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	mean := total / float64(pairs)
	clipped := mean / 2
	if clipped > 1 {
		clipped = 1
	}
	return clipped
}

func hueDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func averageSaturation(p palette.Palette) float64 {
	if len(p) == 0 {
		return 0
	}
	var sum float64
	for _, c := range p {
		rgb, err := colorspace.ParseHex(c.Formats.Hex)
		if err != nil {
			continue
		}
		sum += colorspace.RGBToHSL(rgb).S * 100
	}
	return sum / float64(len(p))
}

func dominantTemperature(p palette.Palette) string {
	counts := make(map[string]int)
	for _, c := range p {
		counts[c.Metadata.Temperature]++
	}
	best := "neutral"
	bestCount := -1
	for _, t := range []string{"warm", "cool", "neutral"} {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}

func namingQualityOf(p palette.Palette) float64 {
	if len(p) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(p))
	for _, c := range p {
		seen[c.Name] = true
	}
	return float64(len(seen)) / float64(len(p))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
