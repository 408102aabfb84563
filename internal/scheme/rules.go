package scheme

import (
	"math"

	"github.com/jmylchreest/hueseed/internal/colour"
)

const (
	// NeighbourStep is the hue rotation between a colour and its neighbour.
	NeighbourStep = 30.0

	// Hues inside [mutedLow, mutedMid] drop to mutedLow and hues inside
	// (mutedMid, mutedHigh) jump to mutedHigh.
	mutedLow  = 100.0
	mutedMid  = 130.0
	mutedHigh = 160.0
)

// Complementary returns c rotated half way round the hue wheel, with the hue
// reduced into [0, 360).
func Complementary(c colour.Colour) colour.Colour {
	return c.WithHue(colour.NormaliseHue(c.Hue() + 180))
}

// Neighbour returns c rotated by NeighbourStep, with the hue reduced into
// [0, 360).
func Neighbour(c colour.Colour) colour.Colour {
	return c.WithHue(colour.NormaliseHue(c.Hue() + NeighbourStep))
}

// AvoidMuddyGreen moves hues in the olive band [100, 160) to its edges.
// Everything else is returned unchanged.
func AvoidMuddyGreen(c colour.Colour) colour.Colour {
	h := c.Hue()
	switch {
	case h >= mutedLow && h <= mutedMid:
		return c.WithHue(mutedLow)
	case h > mutedMid && h < mutedHigh:
		return c.WithHue(mutedHigh)
	}
	return c
}

// Distance is the Euclidean distance between the raw lightness, chroma and
// hue coordinates of a and b. Hue is not treated as circular.
func Distance(a, b colour.Colour) float64 {
	dl := a.Lightness() - b.Lightness()
	dc := a.Chroma() - b.Chroma()
	dh := a.Hue() - b.Hue()
	return math.Sqrt(dl*dl + dc*dc + dh*dh)
}

// TooClose reports whether a and b are nearer than minDistance.
func TooClose(a, b colour.Colour, minDistance float64) bool {
	return Distance(a, b) < minDistance
}
