package random

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueseed/internal/plugin/input"
)

// TestNew tests creating a new plugin with defaults.
func TestNew(t *testing.T) {
	plugin := New()
	if plugin.Name() != "random" {
		t.Errorf("Expected name 'random', got '%s'", plugin.Name())
	}
	if plugin.seed.set {
		t.Error("Expected seed to be unset by default")
	}
	if err := plugin.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

// TestSeedFlag tests the optional seed flag.
func TestSeedFlag(t *testing.T) {
	plugin := New()
	cmd := &cobra.Command{Use: "test"}
	plugin.RegisterFlags(cmd)

	if err := cmd.Flags().Set("random.seed", "not-a-number"); err == nil {
		t.Error("Expected error for non-numeric seed")
	}
	if err := cmd.Flags().Set("random.seed", "-42"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}
	if !plugin.seed.set || plugin.seed.value != -42 {
		t.Errorf("Expected seed -42, got %+v", plugin.seed)
	}
	if got := cmd.Flags().Lookup("random.seed").Value.String(); got != "-42" {
		t.Errorf("Expected flag value '-42', got '%s'", got)
	}
}

// TestSeedReproducible tests that a fixed seed gives a fixed colour.
func TestSeedReproducible(t *testing.T) {
	a, b := New(), New()
	a.SetSeed(7)
	b.SetSeed(7)

	ca, err := a.Seed(context.Background(), input.SeedOptions{})
	if err != nil {
		t.Fatal(err)
	}
	cb, err := b.Seed(context.Background(), input.SeedOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if ca.LCH() != cb.LCH() {
		t.Errorf("Expected identical colours, got %v and %v", ca.LCH(), cb.LCH())
	}

	lch := ca.LCH()
	if lch.L < 0 || lch.L > 100 || lch.C < 0 || lch.C > 100 || lch.H < 0 || lch.H > 360 {
		t.Errorf("Random colour out of range: %v", lch)
	}
}

// TestSeedUnseeded tests drawing without a fixed seed.
func TestSeedUnseeded(t *testing.T) {
	if _, err := New().Seed(context.Background(), input.SeedOptions{}); err != nil {
		t.Errorf("Seed() error = %v", err)
	}
}
