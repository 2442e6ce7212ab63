package transition

import "math"

// IndexPair is the pair of adjacent slides a position falls between.
// Next is always (Current+1) mod N and Blend is in [0, 1).
type IndexPair struct {
	Current int
	Next    int
	Blend   float64
}

// Resolve maps a continuous position onto a slide pair for n slides, wrapping
// in both directions. n must be positive.
func Resolve(position float64, n int) IndexPair {
	base := int(math.Floor(math.Mod(position, float64(n))))
	if base < 0 {
		base = (n + base) % n
	}

	blend := math.Mod(position, 1)
	if blend < 0 {
		blend++
	}
	// A tiny negative remainder can round up to exactly 1.
	if blend >= 1 {
		blend = 0
		base = (base + 1) % n
	}

	return IndexPair{
		Current: base,
		Next:    (base + 1) % n,
		Blend:   blend,
	}
}

// roundHalfUp rounds to the nearest integer, ties toward positive infinity,
// so snapping agrees with the floor-based index math in Resolve.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
