package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Out-of-gamut channels are clamped.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	c = c.Clamped()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour block with a label drawn in black or
// white, whichever reads better on it.
func ColourPreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if len(text) < width {
		text += strings.Repeat(" ", width-len(text))
	}

	fg := 255
	if c.RelativeLuminance() > 127.5 {
		fg = 0
	}
	rgb := c.RGB().Clamped()
	return fmt.Sprintf("%s%d;%d;%d%s%s%d;%d;%d%s%s%s",
		ansiBgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix,
		ansiFgPrefix, fg, fg, fg, ansiSuffix,
		text, ansiReset)
}

// DisableColourOutput turns SupportsANSIColours off for every file.
var DisableColourOutput = false

// SupportsANSIColours reports whether f is a terminal that should receive
// colour escapes. NO_COLOR and TERM=dumb disable them.
func SupportsANSIColours(f *os.File) bool {
	if DisableColourOutput || f == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
