package export

import (
	"strings"
	"testing"

	"github.com/paletteforge/engine/internal/colorspace"
	"github.com/paletteforge/engine/internal/palette"
)

func sampleColor(id, name, hex string) palette.ExtractedColor {
	rgb, _ := colorspace.ParseHex(hex)
	return palette.ExtractedColor{
		ID:   id,
		Name: name,
		Formats: colorspace.BuildFormats(rgb),
		Metadata: palette.ColorMetadata{
			CSSVariableName: "--color-" + strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		},
	}
}

func TestSynthesizeDeduplicatesNames(t *testing.T) {
	p := palette.Palette{
		sampleColor("color_001", "Crimson", "#D52C34"),
		sampleColor("color_002", "Crimson", "#D12E36"),
	}

	deduped, exports, err := Synthesize(p)
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}
	if deduped[0].Name != "Crimson" {
		t.Fatalf("expected first name unchanged, got %q", deduped[0].Name)
	}
	if deduped[1].Name != "Crimson 2" {
		t.Fatalf("expected second name to get a numeric suffix, got %q", deduped[1].Name)
	}
	if deduped[1].Metadata.CSSVariableName != "--color-crimson-2" {
		t.Fatalf("expected updated css variable name, got %q", deduped[1].Metadata.CSSVariableName)
	}
	if !strings.Contains(exports.CSSVariables, "--color-crimson-500") {
		t.Fatalf("expected css export to contain base variable, got:\n%s", exports.CSSVariables)
	}
}

func TestSynthesizeProducesAllFormats(t *testing.T) {
	p := palette.Palette{sampleColor("color_001", "Azure", "#275E99")}
	_, exports, err := Synthesize(p)
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}

	checks := map[string]string{
		"css":      exports.CSSVariables,
		"scss":     exports.SCSS,
		"tailwind": exports.Tailwind,
		"figma":    exports.FigmaTokens,
		"swift":    exports.Swift,
		"kotlin":   exports.Kotlin,
		"json":     exports.JSON,
	}
	for name, content := range checks {
		if strings.TrimSpace(content) == "" {
			t.Errorf("expected non-empty %s export", name)
		}
	}
	if !strings.Contains(exports.Swift, "AzureColor") && !strings.Contains(exports.Swift, "Azure") {
		t.Errorf("expected swift export to reference color name, got:\n%s", exports.Swift)
	}
}
