// Package scheme grows a colour scheme from a single base colour.
//
// The generator pairs every colour with its complement, walks the hue wheel
// in NeighbourStep increments, steers away from muddy greens and nudges
// colours that land too close to their predecessor. The finished scheme is
// normalised to a common lightness for the chosen theme.
package scheme

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hueseed/internal/colour"
)

const (
	// DefaultMinDistance is the smallest LCH distance allowed between a new
	// colour and the one before it.
	DefaultMinDistance = 20.0

	// DefaultMaxNudges bounds the random nudges tried before a colour is
	// forced apart from its predecessor.
	DefaultMaxNudges = 64
)

// Rand is the source of randomness used by the generator. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Options control scheme generation.
type Options struct {
	// DarkMode selects the dark theme lightness.
	DarkMode bool

	// Rand drives nudges and the lightness mixup. Nil gets a randomly
	// seeded source.
	Rand Rand

	// Logger receives generation traces. Nil discards them.
	Logger hclog.Logger

	MinDistance float64
	MaxNudges   int

	// EqualiseChroma sets every colour to the base chroma before the
	// saturation pass.
	EqualiseChroma bool
}

// DefaultOptions returns light mode options with the default limits.
func DefaultOptions() Options {
	return Options{
		MinDistance: DefaultMinDistance,
		MaxNudges:   DefaultMaxNudges,
	}
}

// Scheme owns a base colour and the palette generated from it.
type Scheme struct {
	base    colour.Colour
	opts    Options
	logger  hclog.Logger
	colours []colour.Colour
}

// New creates a Scheme for base. Zero-valued options take their defaults.
func New(base colour.Colour, opts Options) *Scheme {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) // #nosec G404 -- palette variety, not cryptography
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.MinDistance <= 0 {
		opts.MinDistance = DefaultMinDistance
	}
	if opts.MaxNudges <= 0 {
		opts.MaxNudges = DefaultMaxNudges
	}
	return &Scheme{
		base:    base,
		opts:    opts,
		logger:  opts.Logger.Named("scheme"),
		colours: []colour.Colour{base},
	}
}

// Base returns the colour the scheme was seeded with.
func (s *Scheme) Base() colour.Colour { return s.base }

// DarkMode reports whether the scheme targets a dark theme.
func (s *Scheme) DarkMode() bool { return s.opts.DarkMode }

// Colours returns a copy of the current palette.
func (s *Scheme) Colours() []colour.Colour {
	return slices.Clone(s.colours)
}

// Generate rebuilds the palette from the base colour until it holds at least
// count colours, then normalises it. Colours are added in pairs, so the
// result may hold count+1 entries and never fewer than two.
func (s *Scheme) Generate(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: colour count must be at least 1, got %d", colour.ErrInvalidArgument, count)
	}

	colours := s.grow(count)

	if s.opts.EqualiseChroma {
		colours = EqualiseChroma(colours, s.base.Chroma())
	}
	colours = ManageSaturation(colours)
	colours = ManageLightness(colours, s.opts.DarkMode)
	colours = MixupLightness(colours, s.opts.Rand)

	s.colours = colours
	s.logger.Debug("generated scheme", "count", len(colours), "dark", s.opts.DarkMode)
	return nil
}

// grow builds the unnormalised palette.
func (s *Scheme) grow(count int) []colour.Colour {
	colours := make([]colour.Colour, 0, count+1)
	colours = s.appendPair(colours, s.base)

	for len(colours) < count {
		last := colours[len(colours)-1]
		next := s.separate(AvoidMuddyGreen(Neighbour(last)), last)
		colours = s.appendPair(colours, next)
	}
	return colours
}

func (s *Scheme) appendPair(colours []colour.Colour, c colour.Colour) []colour.Colour {
	complement := Complementary(c)
	s.logger.Trace("added colour", "index", len(colours), "hex", c.Hex(), "lch", c.LCH().String())
	s.logger.Trace("added complement", "index", len(colours)+1, "hex", complement.Hex(), "lch", complement.LCH().String())
	return append(colours, c, complement)
}

// separate nudges next until it is at least MinDistance from last. After
// MaxNudges failed attempts the hue is forced MinDistance past last's.
func (s *Scheme) separate(next, last colour.Colour) colour.Colour {
	r := s.opts.Rand
	for attempt := 0; TooClose(next, last, s.opts.MinDistance); attempt++ {
		if attempt == s.opts.MaxNudges {
			forced := next.WithHue(last.Hue() + s.opts.MinDistance)
			s.logger.Debug("forcing hue separation", "attempts", attempt, "from", next.LCH().String(), "to", forced.LCH().String())
			return forced
		}
		next = next.HueShift(float64(r.IntN(16))).
			Lighten(float64(r.IntN(21)-10) / 100).
			Desaturate(float64(r.IntN(21)-10) / 100)
		s.logger.Trace("nudged colour", "attempt", attempt+1, "lch", next.LCH().String(), "distance", Distance(next, last))
	}
	return next
}

// Generate is a convenience wrapper that builds a scheme of at least count
// colours from base.
func Generate(base colour.Colour, count int, darkMode bool, rng Rand) ([]colour.Colour, error) {
	opts := DefaultOptions()
	opts.DarkMode = darkMode
	opts.Rand = rng

	s := New(base, opts)
	if err := s.Generate(count); err != nil {
		return nil, err
	}
	return s.Colours(), nil
}
