// Command paletteforge-extract is a thin cobra-based front end over the
// engine package: it decodes an image, runs the extraction pipeline, and
// prints the resulting palette as JSON or as a terminal preview table.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/paletteforge/engine/internal/engine"
	"github.com/paletteforge/engine/internal/imaging"
	"github.com/paletteforge/engine/internal/palette"
	"github.com/paletteforge/engine/internal/segmentation"
	"github.com/paletteforge/engine/internal/swatch"
	"github.com/paletteforge/engine/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var (
	numColors     int
	includeBG     bool
	withHarmonies bool
	asJSON        bool
	verbose       bool
	exportTargets []string
)

var validExportTargets = map[string]func(palette.Exports) string{
	"css":      func(e palette.Exports) string { return e.CSSVariables },
	"scss":     func(e palette.Exports) string { return e.SCSS },
	"tailwind": func(e palette.Exports) string { return e.Tailwind },
	"figma":    func(e palette.Exports) string { return e.FigmaTokens },
	"swift":    func(e palette.Exports) string { return e.Swift },
	"kotlin":   func(e palette.Exports) string { return e.Kotlin },
	"json":     func(e palette.Exports) string { return e.JSON },
}

// noSegmentationProvider is the default stub wired into the CLI: it
// never returns segments, so every extraction falls back to the
// luminance-based foreground heuristic. A real deployment supplies a
// Provider backed by an actual panoptic/semantic segmentation backend.
type noSegmentationProvider struct{}

func (noSegmentationProvider) Panoptic(ctx context.Context, data []byte) ([]segmentation.SegmentOut, error) {
	return nil, nil
}

func (noSegmentationProvider) Semantic(ctx context.Context, data []byte) ([]segmentation.SegmentOut, error) {
	return nil, nil
}

var rootCmd = &cobra.Command{
	Use:     "paletteforge-extract [image]",
	Short:   "Extract a perceptual color palette from an image",
	Version: version.Short(),
	Args:    cobra.ExactArgs(1),
	RunE:    runExtract,
}

func init() {
	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.Flags().IntVarP(&numColors, "colors", "c", 0, "number of colors to extract (0 lets the engine decide, 3-20)")
	rootCmd.Flags().BoolVar(&includeBG, "include-background", true, "include background-segment colors in the result")
	rootCmd.Flags().BoolVar(&withHarmonies, "harmonies", false, "compute complementary/analogous/triadic/split-complementary companions")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the full ColorPaletteResult as JSON instead of a preview table")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().VarP(pflag.NewStringSliceValue(nil, &exportTargets), "export", "e", "also print these export artifacts (css, scss, tailwind, figma, swift, kotlin, json)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{Name: "paletteforge-extract", Level: level})

	eng := engine.New(imaging.NewStdDecoder(), noSegmentationProvider{}, logger)

	opts := engine.DefaultOptions()
	if numColors > 0 {
		n := numColors
		opts.NumColors = &n
	}
	opts.IncludeBackground = includeBG
	opts.GenerateHarmonies = withHarmonies

	result, err := eng.Extract(cmd.Context(), data, args[0], opts, engine.Hooks{})
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printPreview(result)

	for _, target := range exportTargets {
		render, ok := validExportTargets[target]
		if !ok {
			return fmt.Errorf("unknown export target %q (want one of css, scss, tailwind, figma, swift, kotlin, json)", target)
		}
		fmt.Printf("\n--- %s ---\n%s\n", target, render(result.Exports))
	}

	return nil
}

func printPreview(result palette.ColorPaletteResult) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	fmt.Printf("%s  (%dx%d, %d colors)\n\n", result.SourceImage.Filename, result.SourceImage.Width, result.SourceImage.Height, len(result.Palette))

	for _, c := range result.Palette {
		line := fmt.Sprintf("%-22s %-9s %-7s weight=%.3f  %s", c.Name, c.Formats.Hex, c.Metadata.Temperature, c.Weight, c.Source.Segment)
		if isTTY {
			line = swatch.Block(c.Formats.RGB.Values, 3) + " " + line
		}
		fmt.Println(line)
	}

	fmt.Printf("\ndominant temperature: %s   diversity: %.2f   separation: %.2f   confidence: %.2f\n",
		result.Metadata.DominantTemperature, result.Metadata.ColorDiversity, result.Metadata.ColorSeparation, result.Metadata.ExtractionConfidence.Overall)
}
