package resample

import (
	"errors"
	"slices"

	"github.com/cwbudde/algo-lockboost/poly"
)

var (
	// ErrInvalidCount indicates a non-positive number of grid points.
	ErrInvalidCount = errors.New("resample: count must be positive")
	// ErrInvalidStep indicates a non-positive decimation step.
	ErrInvalidStep = errors.New("resample: step must be positive")
	// ErrInvalidRange indicates lo > hi or a single-point grid over a range.
	ErrInvalidRange = errors.New("resample: invalid range")
)

// DefaultCheckpoints are the lock lengths reported as a sanity check:
// 3 months and 1, 1.5, 2, 2.5 and 3 years, in days.
var DefaultCheckpoints = []float64{90, 365, 548, 730, 913, 1095}

// Series is an ordered sequence of (x, y) pairs. X and Y have equal length.
type Series struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.X)
}

// At returns the i-th point.
func (s Series) At(i int) (x, y float64) {
	return s.X[i], s.Y[i]
}

// Linspace returns n evenly spaced values from lo to hi inclusive. The first
// element is exactly lo and the last exactly hi. n == 1 requires lo == hi.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}

	if lo > hi || (n == 1 && lo != hi) {
		return nil, ErrInvalidRange
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out, nil
	}

	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	out[n-1] = hi

	return out, nil
}

// IntRange returns count consecutive integers starting at start.
func IntRange(start, count int) ([]float64, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = float64(start + i)
	}

	return out, nil
}

// Evaluate applies p to every x. The x slice is copied into the result.
func Evaluate(p poly.Polynomial, xs []float64) Series {
	return Series{
		X: slices.Clone(xs),
		Y: p.EvalAll(xs),
	}
}

// Decimate keeps the points at indices 0, step, 2*step, ... The result has
// ceil(n/step) points.
func Decimate(s Series, step int) (Series, error) {
	if step <= 0 {
		return Series{}, ErrInvalidStep
	}

	n := (s.Len() + step - 1) / step
	out := Series{
		X: make([]float64, 0, n),
		Y: make([]float64, 0, n),
	}

	for i := 0; i < s.Len(); i += step {
		out.X = append(out.X, s.X[i])
		out.Y = append(out.Y, s.Y[i])
	}

	return out, nil
}
