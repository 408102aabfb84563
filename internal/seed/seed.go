// Package seed provides utilities for deterministic seed generation for scheme
// generation and k-means clustering.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Mode determines how the random seed for scheme generation is chosen.
type Mode string

const (
	// ModeColour derives the seed from the seed colour's hex (default, deterministic by colour).
	ModeColour Mode = "colour"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeRandom uses non-deterministic random seed (varies each run).
	ModeRandom Mode = "random"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// hex: the seed colour (required for ModeColour)
// config: seed configuration
func Calculate(hex string, config Config) (int64, error) {
	switch config.Mode {
	case ModeColour, "":
		if hex == "" {
			return 0, fmt.Errorf("seed colour is required for colour-based seed mode")
		}
		return CalculateColourSeed(hex), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom:
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateColourSeed hashes a hex colour into a seed, so one seed colour
// always gives the same scheme. Case and the leading '#' are ignored.
func CalculateColourSeed(hex string) int64 {
	hex = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(hex)), "#")
	return hashSeed([]byte(hex))
}

// CalculateContentSeed generates a deterministic seed from image content.
// This hashes the pixel data to create a seed that's consistent for the same image content,
// regardless of filename or location.
func CalculateContentSeed(img image.Image) (int64, error) {
	if img == nil {
		return 0, fmt.Errorf("image cannot be nil")
	}

	bounds := img.Bounds()
	hasher := sha256.New()

	dimBytes := make([]byte, 8)
	binary.LittleEndian.PutUint32(dimBytes[0:4], uint32(bounds.Dx())) // #nosec G115 -- image dimensions are safe to convert
	binary.LittleEndian.PutUint32(dimBytes[4:8], uint32(bounds.Dy())) // #nosec G115 -- image dimensions are safe to convert
	hasher.Write(dimBytes)

	// Sample pixels in a grid pattern; enough to identify the image.
	step := max(bounds.Dx()/100, bounds.Dy()/100, 1)
	pixelBytes := make([]byte, 4)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			pixelBytes[0] = byte(r >> 8)
			pixelBytes[1] = byte(g >> 8)
			pixelBytes[2] = byte(b >> 8)
			pixelBytes[3] = byte(a >> 8)
			hasher.Write(pixelBytes)
		}
	}

	hash := hasher.Sum(nil)
	return int64(binary.LittleEndian.Uint64(hash[:8])), nil // #nosec G115 -- hash conversion is safe
}

// CalculateFilepathSeed generates a deterministic seed from the absolute file path.
func CalculateFilepathSeed(path string) int64 {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// If we can't resolve absolute path, use the path as-is
		absPath = path
	}
	return hashSeed([]byte(absPath))
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + rand.Int64N(1000000)
}

// NewRand returns a ChaCha8-backed generator for seed.
func NewRand(seed int64) *rand.Rand {
	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], uint64(seed)) // #nosec G115 -- bit pattern reuse
	return rand.New(rand.NewChaCha8(seedArray))
}

func hashSeed(data []byte) int64 {
	hash := sha256.Sum256(data)
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeColour, ModeManual, ModeRandom}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(s))
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: colour, manual, random)", s)
}
