package anchor

import (
	"errors"
	"math"
	"slices"
)

// Errors returned by anchor validation and preset lookup.
var (
	ErrEmpty          = errors.New("anchor: empty anchor set")
	ErrNonFinite      = errors.New("anchor: non-finite coordinate")
	ErrTooFewDistinct = errors.New("anchor: too few distinct x values")
	ErrUnknownPreset  = errors.New("anchor: unknown preset")
)

// Point is one (lock time, multiplier) sample.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Set is an ordered list of anchor points.
type Set []Point

// XS returns the x coordinates in order.
func (s Set) XS() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.X
	}

	return out
}

// YS returns the y coordinates in order.
func (s Set) YS() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Y
	}

	return out
}

// Bounds returns the smallest and largest x. Both are zero for an empty set.
func (s Set) Bounds() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}

	lo, hi = s[0].X, s[0].X
	for _, p := range s[1:] {
		lo = math.Min(lo, p.X)
		hi = math.Max(hi, p.X)
	}

	return lo, hi
}

// DistinctX counts the distinct x values.
func (s Set) DistinctX() int {
	xs := s.XS()
	slices.Sort(xs)

	return len(slices.Compact(xs))
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	return slices.Clone(s)
}

// Validate checks that every coordinate is finite and that at least
// minDistinct distinct x values are present.
func (s Set) Validate(minDistinct int) error {
	if len(s) == 0 {
		return ErrEmpty
	}

	for _, p := range s {
		if !finite(p.X) || !finite(p.Y) {
			return ErrNonFinite
		}
	}

	if s.DistinctX() < minDistinct {
		return ErrTooFewDistinct
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
