package colour

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// CIE L*a*b* piecewise constants.
const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// HexToRGB parses a 6-digit hex colour, with or without a leading '#'.
func HexToRGB(s string) (RGB, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: hex colour %q must have 6 hex digits", ErrInvalidFormat, s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: hex colour %q: %v", ErrInvalidFormat, s, err)
	}
	return RGB{R: int(b[0]), G: int(b[1]), B: int(b[2])}, nil
}

// RGBToHex formats a colour as "#rrggbb". Hex cannot express values outside
// 0-255, so out-of-gamut channels are clamped here and only here.
func RGBToHex(rgb RGB) string {
	c := rgb.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBToXYZ converts sRGB to XYZ (Y of white = 100).
func RGBToXYZ(rgb RGB) XYZ {
	r := srgbToLinear(float64(rgb.R)/255) * 100
	g := srgbToLinear(float64(rgb.G)/255) * 100
	b := srgbToLinear(float64(rgb.B)/255) * 100

	return XYZ{
		X: r*0.4124 + g*0.3576 + b*0.1805,
		Y: r*0.2126 + g*0.7152 + b*0.0722,
		Z: r*0.0193 + g*0.1192 + b*0.9505,
	}
}

// XYZToRGB converts XYZ to sRGB. The result is rounded but not clamped.
func XYZToRGB(xyz XYZ) RGB {
	x := xyz.X / 100
	y := xyz.Y / 100
	z := xyz.Z / 100

	r := x*3.2406 + y*-1.5372 + z*-0.4986
	g := x*-0.9689 + y*1.8758 + z*0.0415
	b := x*0.0557 + y*-0.2040 + z*1.0570

	return RGB{
		R: toChannel(linearToSRGB(r)),
		G: toChannel(linearToSRGB(g)),
		B: toChannel(linearToSRGB(b)),
	}
}

// XYZToLab converts XYZ to CIE L*a*b* relative to D65.
func XYZToLab(xyz XYZ) Lab {
	fx := labF(xyz.X / 100 / whiteX)
	fy := labF(xyz.Y / 100 / whiteY)
	fz := labF(xyz.Z / 100 / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ converts CIE L*a*b* (D65) to XYZ.
func LabToXYZ(lab Lab) XYZ {
	fy := (lab.L + 16) / 116
	fx := lab.A/500 + fy
	fz := fy - lab.B/200

	return XYZ{
		X: whiteX * labFInverse(fx) * 100,
		Y: whiteY * labFInverse(fy) * 100,
		Z: whiteZ * labFInverse(fz) * 100,
	}
}

// LabToLCH converts Lab to polar form. Hue is in degrees in [0, 360).
func LabToLCH(lab Lab) LCH {
	return LCH{
		L: lab.L,
		C: math.Hypot(lab.A, lab.B),
		H: NormaliseHue(math.Atan2(lab.B, lab.A) * 180 / math.Pi),
	}
}

// LCHToLab converts polar LCH to Lab. Any real hue is accepted.
func LCHToLab(lch LCH) Lab {
	rad := lch.H * math.Pi / 180
	return Lab{
		L: lch.L,
		A: math.Cos(rad) * lch.C,
		B: math.Sin(rad) * lch.C,
	}
}

func HexToLCH(s string) (LCH, error) {
	rgb, err := HexToRGB(s)
	if err != nil {
		return LCH{}, err
	}
	return RGBToLCH(rgb), nil
}

func LCHToHex(lch LCH) string { return RGBToHex(LCHToRGB(lch)) }
func LCHToRGB(lch LCH) RGB    { return LabToRGB(LCHToLab(lch)) }
func RGBToLCH(rgb RGB) LCH    { return LabToLCH(RGBToLab(rgb)) }
func LabToRGB(lab Lab) RGB    { return XYZToRGB(LabToXYZ(lab)) }
func RGBToLab(rgb RGB) Lab    { return XYZToLab(RGBToXYZ(rgb)) }

// NormaliseHue maps any angle in degrees into [0, 360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// Convert converts v into the requested space, walking the chain
// hex <-> rgb <-> xyz <-> lab <-> lch one step at a time.
func Convert(v Value, to Space) (Value, error) {
	target := to.index()
	if target < 0 {
		return nil, fmt.Errorf("%w: unknown colour space %q", ErrInvalidFormat, to)
	}

	for {
		current := v.Space().index()
		switch {
		case current < 0:
			return nil, fmt.Errorf("%w: unknown colour space %q", ErrInvalidFormat, v.Space())
		case current == target:
			return v, nil
		case current < target:
			next, err := stepUp(v)
			if err != nil {
				return nil, err
			}
			v = next
		default:
			next, err := stepDown(v)
			if err != nil {
				return nil, err
			}
			v = next
		}
	}
}

func stepUp(v Value) (Value, error) {
	switch c := v.(type) {
	case Hex:
		return HexToRGB(string(c))
	case RGB:
		return RGBToXYZ(c), nil
	case XYZ:
		return XYZToLab(c), nil
	case Lab:
		return LabToLCH(c), nil
	}
	return nil, fmt.Errorf("%w: cannot convert %T towards lch", ErrInvalidFormat, v)
}

func stepDown(v Value) (Value, error) {
	switch c := v.(type) {
	case LCH:
		return LCHToLab(c), nil
	case Lab:
		return LabToXYZ(c), nil
	case XYZ:
		return XYZToRGB(c), nil
	case RGB:
		return Hex(RGBToHex(c)), nil
	}
	return nil, fmt.Errorf("%w: cannot convert %T towards hex", ErrInvalidFormat, v)
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

func labFInverse(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (f - labOffset) / labKappa
}

func toChannel(v float64) int {
	return int(math.Round(v * 255))
}
