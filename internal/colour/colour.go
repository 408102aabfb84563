package colour

// Colour is a point in LCH space together with its derived representations.
//
// Derived fields are computed once by the constructors and never change, so a
// Colour is immutable: every transform returns a new value built from an
// adjusted lightness, chroma or hue.
type Colour struct {
	lch LCH
	lab Lab
	xyz XYZ
	rgb RGB
	hex string
}

// IntNer is the subset of math/rand/v2.Rand needed to draw random colours.
type IntNer interface {
	IntN(n int) int
}

// New creates a Colour from lightness, chroma and hue (degrees). Values are
// not clamped and hue is stored as given.
func New(lightness, chroma, hue float64) Colour {
	return FromLCH(LCH{L: lightness, C: chroma, H: hue})
}

// FromLCH creates a Colour from an LCH triple.
func FromLCH(lch LCH) Colour {
	lab := LCHToLab(lch)
	xyz := LabToXYZ(lab)
	rgb := XYZToRGB(xyz)
	return Colour{
		lch: lch,
		lab: lab,
		xyz: xyz,
		rgb: rgb,
		hex: RGBToHex(rgb),
	}
}

// FromRGB creates a Colour from sRGB channels.
func FromRGB(rgb RGB) Colour {
	return FromLCH(RGBToLCH(rgb))
}

// FromHex creates a Colour from a hex string such as "#1a2b3c".
func FromHex(s string) (Colour, error) {
	rgb, err := HexToRGB(s)
	if err != nil {
		return Colour{}, err
	}
	return FromRGB(rgb), nil
}

// Random returns a colour with integer lightness and chroma in [0, 100] and
// hue in [0, 360].
func Random(r IntNer) Colour {
	return New(float64(r.IntN(101)), float64(r.IntN(101)), float64(r.IntN(361)))
}

func (c Colour) Lightness() float64 { return c.lch.L }
func (c Colour) Chroma() float64    { return c.lch.C }
func (c Colour) Hue() float64       { return c.lch.H }
func (c Colour) LCH() LCH           { return c.lch }
func (c Colour) Lab() Lab           { return c.lab }
func (c Colour) XYZ() XYZ           { return c.xyz }
func (c Colour) RGB() RGB           { return c.rgb }
func (c Colour) Hex() string        { return c.hex }
func (c Colour) String() string     { return c.hex }

// Saturation is chroma expressed as a fraction of 100.
func (c Colour) Saturation() float64 {
	return c.lch.C / 100
}

// RelativeLuminance is the luma-weighted sum of the gamma-encoded 0-255
// channels. It is a cheap contrast proxy, not the linear-light WCAG value.
func (c Colour) RelativeLuminance() float64 {
	return 0.2126*float64(c.rgb.R) + 0.7152*float64(c.rgb.G) + 0.0722*float64(c.rgb.B)
}

// Desaturate scales chroma by (1 - amount); 0.2 removes 20%.
func (c Colour) Desaturate(amount float64) Colour {
	return c.WithChroma(c.lch.C * (1 - amount))
}

// Saturate scales chroma by (1 + amount).
func (c Colour) Saturate(amount float64) Colour {
	return c.WithChroma(c.lch.C * (1 + amount))
}

// Lighten scales lightness by (1 + amount).
func (c Colour) Lighten(amount float64) Colour {
	return c.WithLightness(c.lch.L * (1 + amount))
}

// Darken scales lightness by (1 - amount).
func (c Colour) Darken(amount float64) Colour {
	return c.WithLightness(c.lch.L * (1 - amount))
}

// HueShift adds degrees to the hue without wrapping.
func (c Colour) HueShift(degrees float64) Colour {
	return c.WithHue(c.lch.H + degrees)
}

func (c Colour) WithLightness(l float64) Colour {
	return New(l, c.lch.C, c.lch.H)
}

func (c Colour) WithChroma(chroma float64) Colour {
	return New(c.lch.L, chroma, c.lch.H)
}

func (c Colour) WithHue(h float64) Colour {
	return New(c.lch.L, c.lch.C, h)
}
