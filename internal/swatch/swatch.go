// Package swatch renders terminal colour previews, grounded on the
// teacher's ANSI background-block technique (internal/colour/ansi.go)
// but built on colorspace.RGB instead of the teacher's colour package.
package swatch

import (
	"fmt"
	"strings"

	"github.com/paletteforge/engine/internal/colorspace"
)

const (
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	ansiReset    = "\033[0m"
	defaultWidth = 4
)

// Block returns a solid ANSI background-colour swatch, width characters
// wide. width<=0 uses a sensible default.
func Block(c colorspace.RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}
