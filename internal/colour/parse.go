package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseValue parses s as a colour in the given space.
//
// Hex accepts "#1a2b3c" or "1a2b3c". The other spaces accept three numbers
// separated by commas or spaces, optionally wrapped in the space name:
// "rgb(26, 43, 60)", "26,43,60", "lch(50 80 200)".
func ParseValue(s string, space Space) (Value, error) {
	if space == SpaceHex {
		rgb, err := HexToRGB(s)
		if err != nil {
			return nil, err
		}
		return Hex(RGBToHex(rgb)), nil
	}

	nums, err := parseTriple(s, space)
	if err != nil {
		return nil, err
	}

	switch space {
	case SpaceRGB:
		var ch [3]int
		for i, n := range nums {
			if n != float64(int(n)) {
				return nil, fmt.Errorf("%w: rgb channel %v is not an integer", ErrInvalidFormat, n)
			}
			ch[i] = int(n)
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	case SpaceXYZ:
		return XYZ{X: nums[0], Y: nums[1], Z: nums[2]}, nil
	case SpaceLab:
		return Lab{L: nums[0], A: nums[1], B: nums[2]}, nil
	case SpaceLCH:
		return LCH{L: nums[0], C: nums[1], H: nums[2]}, nil
	}
	return nil, fmt.Errorf("%w: unknown colour space %q", ErrInvalidFormat, space)
}

// DetectSpace guesses the space of a colour literal from its "name(" prefix,
// falling back to hex.
func DetectSpace(s string) Space {
	s = strings.ToLower(strings.TrimSpace(s))
	if open := strings.IndexByte(s, '('); open > 0 {
		if space, err := ParseSpace(s[:open]); err == nil {
			return space
		}
	}
	return SpaceHex
}

// Parse builds a Colour from a literal in any supported space.
func Parse(s string) (Colour, error) {
	v, err := ParseValue(s, DetectSpace(s))
	if err != nil {
		return Colour{}, err
	}
	lch, err := Convert(v, SpaceLCH)
	if err != nil {
		return Colour{}, err
	}
	return FromLCH(lch.(LCH)), nil
}

func parseTriple(s string, space Space) ([3]float64, error) {
	var out [3]float64

	body := strings.ToLower(strings.TrimSpace(s))
	if open := strings.IndexByte(body, '('); open >= 0 {
		if !strings.HasSuffix(body, ")") {
			return out, fmt.Errorf("%w: %q is missing a closing parenthesis", ErrInvalidFormat, s)
		}
		if name := strings.TrimSpace(body[:open]); name != "" && name != string(space) {
			return out, fmt.Errorf("%w: %q is not a %s value", ErrInvalidFormat, s, space)
		}
		body = body[open+1 : len(body)-1]
	}

	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return out, fmt.Errorf("%w: %s value %q needs 3 components, got %d", ErrInvalidFormat, space, s, len(fields))
	}

	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return out, fmt.Errorf("%w: %s component %q is not a number", ErrInvalidFormat, space, f)
		}
		out[i] = n
	}
	return out, nil
}
