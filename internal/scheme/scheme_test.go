package scheme

import (
	"bytes"
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hueseed/internal/colour"
)

type stubRand func(n int) int

func (f stubRand) IntN(n int) int { return f(n) }

// countingRand records how often it is asked for a number.
type countingRand struct {
	calls int
	next  func(n int) int
}

func (c *countingRand) IntN(n int) int {
	c.calls++
	return c.next(n)
}

// noopNudge makes every nudge leave the colour unchanged.
func noopNudge(n int) int {
	if n == 21 {
		return 10
	}
	return 0
}

func TestGenerateCountValidation(t *testing.T) {
	for _, count := range []int{0, -3} {
		s := New(colour.New(50, 40, 0), DefaultOptions())
		if err := s.Generate(count); !errors.Is(err, colour.ErrInvalidArgument) {
			t.Errorf("Generate(%d) error = %v, want ErrInvalidArgument", count, err)
		}
	}
}

func TestGenerateLength(t *testing.T) {
	tests := []struct {
		count, want int
	}{
		{1, 2},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 6},
		{11, 12},
	}
	for _, tt := range tests {
		got, err := Generate(colour.New(50, 40, 30), tt.count, false, rand.New(rand.NewPCG(1, 1)))
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", tt.count, err)
		}
		if len(got) != tt.want {
			t.Errorf("Generate(%d) returned %d colours, want %d", tt.count, len(got), tt.want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	base := colour.New(50, 40, 270)

	a, err := Generate(base, 10, true, rand.New(rand.NewPCG(42, 42)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(base, 10, true, rand.New(rand.NewPCG(42, 42)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(lchs(a), lchs(b)); diff != "" {
		t.Errorf("equal seeds gave different schemes (-a +b):\n%s", diff)
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	base := colour.New(50, 80, 200)
	got, err := Generate(base, 4, false, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d colours, want 4", len(got))
	}

	// 200 -> complement 20 -> neighbour 50 -> complement 230; no nudges.
	wantHues := []float64{200, 20, 50, 230}
	for i, c := range got {
		if c.Hue() != wantHues[i] {
			t.Errorf("colour %d hue = %v, want %v", i, c.Hue(), wantHues[i])
		}
		// Lightness 50 is above the pivot so chroma halves.
		if c.Chroma() != 40 {
			t.Errorf("colour %d chroma = %v, want 40", i, c.Chroma())
		}
		if l := c.Lightness(); l < LightLightness-15 || l > LightLightness+15 || l != math.Trunc(l) {
			t.Errorf("colour %d lightness = %v, want an integer in [20, 50]", i, l)
		}
		if c.Hex() != colour.LCHToHex(c.LCH()) {
			t.Errorf("colour %d hex %s is stale for %v", i, c.Hex(), c.LCH())
		}
	}
}

func TestGrowNudgesUntilSeparated(t *testing.T) {
	// 270 -> complement 90 -> neighbour 120 -> muddy green 100, only 10 away.
	s := New(colour.New(50, 40, 270), Options{Rand: stubRand(func(int) int { return 0 })})
	got := s.grow(4)

	// Each nudge scales L by 0.9 and C by 1.1; three are needed.
	want := []colour.LCH{
		{L: 50, C: 40, H: 270},
		{L: 50, C: 40, H: 90},
		{L: 50 * 0.9 * 0.9 * 0.9, C: 40 * 1.1 * 1.1 * 1.1, H: 100},
		{L: 50 * 0.9 * 0.9 * 0.9, C: 40 * 1.1 * 1.1 * 1.1, H: 280},
	}
	approx := cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })
	if diff := cmp.Diff(want, lchs(got), approx); diff != "" {
		t.Errorf("grow() mismatch (-want +got):\n%s", diff)
	}
	if d := Distance(got[2], got[1]); d < DefaultMinDistance {
		t.Errorf("distance after nudging = %v, want >= %v", d, DefaultMinDistance)
	}
}

func TestGrowForcesSeparationAfterMaxNudges(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Name: "test", Output: &buf, Level: hclog.Trace})
	r := &countingRand{next: noopNudge}

	s := New(colour.New(50, 40, 270), Options{Rand: r, MaxNudges: 5, Logger: logger})
	got := s.grow(4)

	if r.calls != 5*3 {
		t.Errorf("rand called %d times, want %d", r.calls, 5*3)
	}
	if got[2].Hue() != 110 {
		t.Errorf("forced hue = %v, want 110", got[2].Hue())
	}
	if got[3].Hue() != 290 {
		t.Errorf("complement of forced colour = %v, want 290", got[3].Hue())
	}
	if d := Distance(got[2], got[1]); d < DefaultMinDistance {
		t.Errorf("forced distance = %v, want >= %v", d, DefaultMinDistance)
	}

	logs := buf.String()
	for _, msg := range []string{"nudged colour", "forcing hue separation", "added complement"} {
		if !strings.Contains(logs, msg) {
			t.Errorf("log output missing %q:\n%s", msg, logs)
		}
	}
}

func TestGrowKeepsNeighboursApart(t *testing.T) {
	for seed := range uint64(50) {
		rng := rand.New(rand.NewPCG(seed, seed*31+1))
		base := colour.Random(rng)
		s := New(base, Options{Rand: rng})
		got := s.grow(12)

		// Pairs are (colour, complement); every new colour is checked
		// against the complement before it.
		for i := 2; i < len(got); i += 2 {
			if d := Distance(got[i], got[i-1]); d < DefaultMinDistance-1e-9 {
				t.Fatalf("seed %d: colours %d and %d are %v apart", seed, i-1, i, d)
			}
		}
	}
}

func TestGenerateRestartsFromBase(t *testing.T) {
	s := New(colour.New(60, 30, 10), Options{Rand: rand.New(rand.NewPCG(3, 3))})
	if err := s.Generate(8); err != nil {
		t.Fatal(err)
	}
	if err := s.Generate(2); err != nil {
		t.Fatal(err)
	}
	if got := len(s.Colours()); got != 2 {
		t.Errorf("second Generate left %d colours, want 2", got)
	}
}

func TestColoursReturnsCopy(t *testing.T) {
	s := New(colour.New(60, 30, 10), Options{DarkMode: true, Rand: rand.New(rand.NewPCG(3, 3))})
	if err := s.Generate(4); err != nil {
		t.Fatal(err)
	}

	got := s.Colours()
	got[0] = colour.New(0, 0, 0)
	if s.Colours()[0].LCH() == got[0].LCH() {
		t.Error("Colours() exposed the internal slice")
	}
	if !s.DarkMode() || s.Base().Hue() != 10 {
		t.Errorf("DarkMode() = %v, Base() = %v", s.DarkMode(), s.Base().LCH())
	}
}

func TestGenerateEqualiseChroma(t *testing.T) {
	// The nudged pair drifts away from the base chroma before equalising.
	opts := Options{Rand: stubRand(func(int) int { return 0 }), EqualiseChroma: true}
	s := New(colour.New(50, 40, 270), opts)
	if err := s.Generate(4); err != nil {
		t.Fatal(err)
	}

	got := s.Colours()
	// Base stays light (chroma halves); the nudged pair went dark (chroma x1.5).
	wantChroma := []float64{20, 20, 60, 60}
	for i, c := range got {
		if math.Abs(c.Chroma()-wantChroma[i]) > 1e-9 {
			t.Errorf("colour %d chroma = %v, want %v", i, c.Chroma(), wantChroma[i])
		}
	}
}
