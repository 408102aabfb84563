package scheme

import "github.com/jmylchreest/hueseed/internal/colour"

const (
	// DarkLightness is the lightness every colour is set to in dark mode.
	DarkLightness = 65.0
	// LightLightness is the lightness every colour is set to in light mode.
	LightLightness = 35.0

	saturationPivot = 40.0
	mixupRange      = 15
)

// The passes below never modify their input. Each returns a fresh slice of
// Colours rebuilt from the adjusted coordinates, so derived RGB and hex
// values always match.

// EqualiseChroma sets every colour's chroma to chroma.
func EqualiseChroma(colours []colour.Colour, chroma float64) []colour.Colour {
	return mapColours(colours, func(c colour.Colour) colour.Colour {
		return c.WithChroma(chroma)
	})
}

// ManageSaturation halves the chroma of light colours (lightness above 40)
// and boosts dark ones by half again.
func ManageSaturation(colours []colour.Colour) []colour.Colour {
	return mapColours(colours, func(c colour.Colour) colour.Colour {
		if c.Lightness() > saturationPivot {
			return c.WithChroma(c.Chroma() * 0.5)
		}
		return c.WithChroma(c.Chroma() * 1.5)
	})
}

// ManageLightness pins every colour to DarkLightness or LightLightness.
func ManageLightness(colours []colour.Colour, darkMode bool) []colour.Colour {
	l := LightLightness
	if darkMode {
		l = DarkLightness
	}
	return mapColours(colours, func(c colour.Colour) colour.Colour {
		return c.WithLightness(l)
	})
}

// MixupLightness jitters each lightness by a random integer in [-15, 15].
func MixupLightness(colours []colour.Colour, r Rand) []colour.Colour {
	return mapColours(colours, func(c colour.Colour) colour.Colour {
		return c.WithLightness(c.Lightness() + float64(r.IntN(2*mixupRange+1)-mixupRange))
	})
}

func mapColours(colours []colour.Colour, fn func(colour.Colour) colour.Colour) []colour.Colour {
	out := make([]colour.Colour, len(colours))
	for i, c := range colours {
		out[i] = fn(c)
	}
	return out
}
