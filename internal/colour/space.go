// Package colour provides colour-space conversions and the Colour value type.
package colour

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
)

// Space identifies a colour representation.
type Space string

const (
	SpaceHex Space = "hex"
	SpaceRGB Space = "rgb"
	SpaceXYZ Space = "xyz"
	SpaceLab Space = "lab"
	SpaceLCH Space = "lch"
)

// chain is the conversion order; Convert walks it one step at a time.
var chain = []Space{SpaceHex, SpaceRGB, SpaceXYZ, SpaceLab, SpaceLCH}

// ValidSpaces returns all supported spaces in conversion order.
func ValidSpaces() []Space {
	return slices.Clone(chain)
}

// ParseSpace converts a string to a Space.
func ParseSpace(s string) (Space, error) {
	space := Space(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(chain, space) {
		return space, nil
	}
	return "", fmt.Errorf("%w: unknown colour space %q (valid: hex, rgb, xyz, lab, lch)", ErrInvalidFormat, s)
}

func (s Space) index() int {
	return slices.Index(chain, s)
}

// String implements pflag.Value.
func (s *Space) String() string {
	return string(*s)
}

// Set implements pflag.Value.
func (s *Space) Set(v string) error {
	space, err := ParseSpace(v)
	if err != nil {
		return err
	}
	*s = space
	return nil
}

// Type implements pflag.Value.
func (s *Space) Type() string {
	return "space"
}

// Value is a colour expressed in one Space.
type Value interface {
	Space() Space
	String() string
}

// Hex is a "#rrggbb" colour string.
type Hex string

func (h Hex) Space() Space   { return SpaceHex }
func (h Hex) String() string { return string(h) }

// RGB holds 8-bit sRGB channels. Channels are ints and are not clamped, so
// colours outside the sRGB gamut keep their overflowing values.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (rgb RGB) Space() Space { return SpaceRGB }

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as a hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return RGBToHex(rgb)
}

// InGamut reports whether every channel lies in 0-255.
func (rgb RGB) InGamut() bool {
	return inByte(rgb.R) && inByte(rgb.G) && inByte(rgb.B)
}

// Clamped returns the colour with each channel clamped to 0-255.
func (rgb RGB) Clamped() RGB {
	return RGB{R: clampByte(rgb.R), G: clampByte(rgb.G), B: clampByte(rgb.B)}
}

// Color converts to an opaque color.RGBA, clamping out-of-gamut channels.
func (rgb RGB) Color() color.Color {
	c := rgb.Clamped()
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255} // #nosec G115 -- clamped to 0-255
}

// XYZ holds CIE 1931 tristimulus values scaled so that Y of white is 100.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (xyz XYZ) Space() Space { return SpaceXYZ }

func (xyz XYZ) String() string {
	return fmt.Sprintf("xyz(%.4f, %.4f, %.4f)", xyz.X, xyz.Y, xyz.Z)
}

// Lab holds CIE L*a*b* coordinates relative to D65.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

func (lab Lab) Space() Space { return SpaceLab }

func (lab Lab) String() string {
	return fmt.Sprintf("lab(%.4f, %.4f, %.4f)", lab.L, lab.A, lab.B)
}

// LCH is the cylindrical form of Lab: lightness, chroma and hue in degrees.
type LCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

func (lch LCH) Space() Space { return SpaceLCH }

func (lch LCH) String() string {
	return fmt.Sprintf("lch(%.4f, %.4f, %.4f)", lch.L, lch.C, lch.H)
}

func inByte(v int) bool {
	return v >= 0 && v <= 255
}

func clampByte(v int) int {
	return min(max(v, 0), 255)
}
