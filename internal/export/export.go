// Package export synthesizes the textual export artifacts of §4.6: CSS
// variables, SCSS, Tailwind config, Figma tokens, Swift, Kotlin, and a
// JSON mirror of the palette with scales attached. Templates follow the
// teacher's embed.FS + text/template output-plugin pattern, generalised
// from a single named plugin to every format at once.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/paletteforge/engine/internal/colorspace"
	"github.com/paletteforge/engine/internal/palette"
	"github.com/paletteforge/engine/internal/tones"
)

//go:embed templates/*.tmpl
var templates embed.FS

const (
	tintScaleSteps  = 5
	shadeScaleSteps = 5
)

var scaleStepNames = [11]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// step is one entry of an 11-step color scale, pre-rendered for every
// template's needs so templates themselves stay free of logic.
type step struct {
	Step         string
	Hex          string
	VarName      string
	ScssName     string
	TailwindStep string
}

// scale is one color's full export-ready view.
type scale struct {
	Name             string
	CSSVariableName  string
	ScssBaseName     string
	TailwindKey      string
	SwiftIdentifier  string
	Base             string
	BaseFloat        floatRGB
	ARGBHex          string
	Steps            []step
}

type floatRGB struct {
	R, G, B float64
}

// templateData is the root object every template renders from.
type templateData struct {
	Scales []scale
}

// Synthesize deduplicates palette names (§4.6 first step), builds an
// 11-step scale for every color, and renders all seven export formats.
// It returns the (possibly renamed) palette alongside the rendered
// artifacts.
func Synthesize(p palette.Palette) (palette.Palette, palette.Exports, error) {
	deduped := deduplicateNames(p)

	scales := make([]scale, len(deduped))
	for i, c := range deduped {
		rgb, err := colorspace.ParseHex(c.Formats.Hex)
		if err != nil {
			return deduped, palette.Exports{}, fmt.Errorf("export: invalid hex on %s: %w", c.ID, err)
		}
		scales[i] = buildScale(c.Name, c.Metadata.CSSVariableName, rgb)
	}

	data := templateData{Scales: scales}

	css, err := renderTemplate("variables.css.tmpl", data)
	if err != nil {
		return deduped, palette.Exports{}, err
	}
	scss, err := renderTemplate("variables.scss.tmpl", data)
	if err != nil {
		return deduped, palette.Exports{}, err
	}
	tailwind, err := renderTemplate("tailwind.config.js.tmpl", data)
	if err != nil {
		return deduped, palette.Exports{}, err
	}
	figma, err := renderTemplate("figma-tokens.json.tmpl", data)
	if err != nil {
		return deduped, palette.Exports{}, err
	}
	swift, err := renderTemplate("Palette.swift.tmpl", data)
	if err != nil {
		return deduped, palette.Exports{}, err
	}
	kotlin, err := renderTemplate("Palette.kt.tmpl", data)
	if err != nil {
		return deduped, palette.Exports{}, err
	}
	jsonOut, err := buildJSON(deduped, scales)
	if err != nil {
		return deduped, palette.Exports{}, err
	}

	return deduped, palette.Exports{
		CSSVariables: css,
		SCSS:         scss,
		Tailwind:     tailwind,
		FigmaTokens:  figma,
		Swift:        swift,
		Kotlin:       kotlin,
		JSON:         jsonOut,
	}, nil
}

// deduplicateNames appends " 2", " 3", ... to repeated display names and
// regenerates css_variable_name to match, per §4.6.
func deduplicateNames(p palette.Palette) palette.Palette {
	out := make(palette.Palette, len(p))
	copy(out, p)

	seen := make(map[string]int)
	for i, c := range out {
		seen[c.Name]++
		if seen[c.Name] > 1 {
			newName := fmt.Sprintf("%s %d", c.Name, seen[c.Name])
			out[i].Name = newName
			out[i].Metadata.CSSVariableName = cssVariableName(newName)
		}
	}
	return out
}

func cssVariableName(name string) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return "--color-" + slug
}

func buildScale(name, cssVar string, base colorspace.RGB) scale {
	tints, shades := tones.GenerateSteps(base, tintScaleSteps, shadeScaleSteps)

	hexes := make([]string, 11)
	// Lightest-first: 50..400 come from tints in reverse (farthest tint
	// is lightest), 500 is the base, 600..950 come from shades in order.
	for i := 0; i < tintScaleSteps; i++ {
		hexes[i] = tints[tintScaleSteps-1-i].Hex()
	}
	hexes[5] = base.Hex()
	for i := 0; i < shadeScaleSteps; i++ {
		hexes[6+i] = shades[i].Hex()
	}

	slug := strings.TrimPrefix(cssVar, "--color-")
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	}

	steps := make([]step, 11)
	for i, stepName := range scaleStepNames {
		steps[i] = step{
			Step:         stepName,
			Hex:          hexes[i],
			VarName:      fmt.Sprintf("%s-%s", cssVar, stepName),
			ScssName:     fmt.Sprintf("%s-%s", slug, stepName),
			TailwindStep: stepName,
		}
	}

	return scale{
		Name:            name,
		CSSVariableName: cssVar,
		ScssBaseName:    slug,
		TailwindKey:     camelSlug(slug),
		SwiftIdentifier: pascalIdentifier(name),
		Base:            base.Hex(),
		BaseFloat:       floatRGB{R: round4(float64(base.R) / 255), G: round4(float64(base.G) / 255), B: round4(float64(base.B) / 255)},
		ARGBHex:         "0xFF" + strings.TrimPrefix(base.Hex(), "#"),
		Steps:           steps,
	}
}

func round4(v float64) float64 {
	return float64(int64(v*10000+0.5)) / 10000
}

func camelSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) > 0 {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func pascalIdentifier(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		if len(word) == 0 {
			continue
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

func renderTemplate(name string, data templateData) (string, error) {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("export: missing template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("export: parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("export: render template %s: %w", name, err)
	}
	return buf.String(), nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"last": func(i int, scales []scale) bool {
			return i == len(scales)-1
		},
	}
}

// jsonColor mirrors ExtractedColor with its scale attached, for the
// standalone JSON export.
type jsonColor struct {
	palette.ExtractedColor
	Scale map[string]string `json:"scale"`
}

func buildJSON(p palette.Palette, scales []scale) (string, error) {
	out := make([]jsonColor, len(p))
	for i, c := range p {
		m := make(map[string]string, len(scales[i].Steps))
		for _, s := range scales[i].Steps {
			m[s.Step] = s.Hex
		}
		out[i] = jsonColor{ExtractedColor: c, Scale: m}
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: marshal json: %w", err)
	}
	return string(b), nil
}
