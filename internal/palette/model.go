// Package palette defines the externally visible data model (§3): the
// ExtractedColor record, the ordered Palette it builds, and the
// top-level ColorPaletteResult an extraction returns.
package palette

import (
	"github.com/paletteforge/engine/internal/colorspace"
)

// Segment identifies which side of the fg/bg split a color came from.
type Segment string

const (
	SegmentForeground Segment = "fg"
	SegmentBackground Segment = "bg"
)

// Source records where a color was sampled from and how confident the
// extraction is in it.
type Source struct {
	Segment       Segment `json:"segment"`
	Category      string  `json:"category,omitempty"`
	PixelCoverage float64 `json:"pixel_coverage"`
	Confidence    float64 `json:"confidence"`
}

// HarmonyColors holds the hue-rotated companions of an ExtractedColor.
type HarmonyColors struct {
	Complementary     colorspace.ColorFormats   `json:"complementary"`
	Analogous         [2]colorspace.ColorFormats `json:"analogous"`
	Triadic           [2]colorspace.ColorFormats `json:"triadic"`
	SplitComplementary [2]colorspace.ColorFormats `json:"split_complementary"`
}

// ColorMetadata carries the misc per-color descriptors named in §3.
type ColorMetadata struct {
	Temperature          string `json:"temperature"`
	NearestCSSColor      string `json:"nearest_css_color"`
	PantoneApproximation string `json:"pantone_approximation"`
	CSSVariableName      string `json:"css_variable_name"`
}

// ExtractedColor is the externally visible per-color record.
type ExtractedColor struct {
	ID            string                      `json:"id"`
	Name          string                      `json:"name"`
	Source        Source                      `json:"source"`
	Formats       colorspace.ColorFormats     `json:"formats"`
	Accessibility colorspace.Accessibility    `json:"accessibility"`
	Tints         [4]colorspace.ColorFormats  `json:"tints"`
	Shades        [4]colorspace.ColorFormats  `json:"shades"`
	Harmony       HarmonyColors               `json:"harmony"`
	Metadata      ColorMetadata               `json:"metadata"`
	Weight        float64                     `json:"-"`
}

// Palette is an ordered sequence of colors, sorted by descending
// weight; IDs are assigned by that order.
type Palette []ExtractedColor

// Segments summarizes the segmentation stage for the wire result.
type Segments struct {
	ForegroundPercentage float64  `json:"foreground_percentage"`
	BackgroundPercentage float64  `json:"background_percentage"`
	Categories           []string `json:"categories"`
	Method               string   `json:"method"`
	Quality              string   `json:"quality"`
}

// SegmentationQuality summarizes segmentation reliability for metadata.
type SegmentationQuality struct {
	Method             string `json:"method"`
	ConfidenceBucket   string `json:"confidence_bucket"`
	ForegroundDetected bool   `json:"foreground_detected"`
	UsedFallback       bool   `json:"used_fallback"`
}

// ExtractionConfidence is the aggregated top-level confidence score.
type ExtractionConfidence struct {
	Overall float64 `json:"overall"`
}

// ExtractionMetadata aggregates the whole-extraction statistics of §4.7.
type ExtractionMetadata struct {
	ProcessingTimeMs     int64                `json:"processing_time_ms"`
	ColorDiversity       float64              `json:"color_diversity"`
	ColorSeparation      float64              `json:"color_separation"`
	AverageSaturation    float64              `json:"average_saturation"`
	DominantTemperature  string               `json:"dominant_temperature"`
	NamingQuality        float64              `json:"naming_quality"`
	SegmentationQuality  SegmentationQuality  `json:"segmentation_quality"`
	ExtractionConfidence ExtractionConfidence `json:"extraction_confidence"`
}

// SourceImage records the input image's identity and dimensions.
type SourceImage struct {
	Filename    string `json:"filename"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ProcessedAt string `json:"processed_at"`
}

// Exports holds the rendered text artifacts from the export synthesizer.
type Exports struct {
	CSSVariables string `json:"css_variables"`
	SCSS         string `json:"scss"`
	Tailwind     string `json:"tailwind"`
	FigmaTokens  string `json:"figma_tokens"`
	Swift        string `json:"swift"`
	Kotlin       string `json:"kotlin"`
	JSON         string `json:"json"`
}

// ColorPaletteResult is extract()'s top-level return value.
type ColorPaletteResult struct {
	ID          string              `json:"id"`
	SourceImage SourceImage         `json:"source_image"`
	Segments    Segments            `json:"segments"`
	Palette     Palette             `json:"palette"`
	Exports     Exports             `json:"exports"`
	Metadata    ExtractionMetadata  `json:"metadata"`
}
