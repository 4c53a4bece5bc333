package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// RandomSource yields uniform values in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Range is an inclusive integer interval for one velocity axis.
type Range struct {
	Min int
	Max int
}

// Validate rejects inverted ranges.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("physics: range min %d greater than max %d", r.Min, r.Max)
	}
	return nil
}

// Draw returns floor(u*(max-min+1)+min): an integer uniform over [min, max].
func (r Range) Draw(src RandomSource) float64 {
	u := src.Float64()
	v := math.Floor(u*float64(r.Max-r.Min+1) + float64(r.Min))
	// u is strictly below 1, but guard against a sloppy source.
	if v > float64(r.Max) {
		v = float64(r.Max)
	}
	return v
}

// RandomVelocity draws each axis independently, x first.
func RandomVelocity(src RandomSource, rx, ry Range) cp.Vector {
	x := rx.Draw(src)
	y := ry.Draw(src)
	return cp.Vector{X: x, Y: y}
}

// VelocitySpec is either a fixed vector or a pair of per-axis ranges.
type VelocitySpec struct {
	Fixed *cp.Vector
	X, Y  Range
}

// Resolve returns the fixed vector if set, otherwise a random draw.
func (s VelocitySpec) Resolve(src RandomSource) cp.Vector {
	if s.Fixed != nil {
		return *s.Fixed
	}
	return RandomVelocity(src, s.X, s.Y)
}
