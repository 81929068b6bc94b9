package entity

import (
	"fmt"
	"image"
	"math"
)

// SourceCandidate is one network location to try for a host's icon.
// Candidates are tried in ascending Priority order.
type SourceCandidate struct {
	Name     string
	URL      string
	Priority int
}

// CachedImage is a normalized icon held by the memory tier.
type CachedImage struct {
	Key   string
	Image image.Image
	// Data is the canonical PNG encoding of Image.
	Data []byte
	// Size approximates the memory held by the entry (pixels + encoded bytes).
	Size int64
}

// Color is an RGB triple with each channel in the unit interval.
type Color struct {
	R float64
	G float64
	B float64
}

// NeutralColor is returned when no pixel of an icon qualifies for color extraction.
var NeutralColor = Color{R: 0.5, G: 0.5, B: 0.5}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
}

// RGB8 returns the color channels scaled to 0-255.
func (c Color) RGB8() (r, g, b uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}

func channel8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
