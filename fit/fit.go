// Package fit computes least-squares polynomial fits of sample points.
//
// The abscissae are centred and scaled onto [-1, 1] before the normal
// equations are formed, which keeps day-valued inputs (x^6 ~ 1e18) well
// conditioned. The solution is expanded back into the raw x basis so the
// returned polynomial evaluates directly on the original axis.
package fit

import (
	"errors"
	"math"
	"slices"

	"github.com/openacid/slimarray/polyfit"

	"github.com/cwbudde/algo-lockboost/anchor"
	"github.com/cwbudde/algo-lockboost/poly"
)

// Errors returned by Polyfit.
var (
	ErrLengthMismatch  = errors.New("fit: x and y lengths differ")
	ErrInvalidDegree   = errors.New("fit: degree must be >= 0")
	ErrUnderdetermined = errors.New("fit: fewer distinct x values than degree+1")
	ErrNonFinite       = errors.New("fit: non-finite input or solution")
)

// Polyfit returns the degree-n polynomial minimising the sum of squared
// residuals over the points (xs[i], ys[i]). With exactly degree+1 distinct
// x values the result interpolates the points.
func Polyfit(xs, ys []float64, degree int) (poly.Polynomial, error) {
	if len(xs) != len(ys) {
		return poly.Polynomial{}, ErrLengthMismatch
	}

	if degree < 0 {
		return poly.Polynomial{}, ErrInvalidDegree
	}

	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return poly.Polynomial{}, ErrNonFinite
		}
	}

	if distinct(xs) < degree+1 {
		return poly.Polynomial{}, ErrUnderdetermined
	}

	lo, hi := slices.Min(xs), slices.Max(xs)
	mid := 0.5 * (lo + hi)

	half := 0.5 * (hi - lo)
	if half == 0 {
		half = 1
	}

	us := make([]float64, len(xs))
	for i, x := range xs {
		us[i] = (x - mid) / half
	}

	q := polyfit.NewFit(us, ys, degree).Solve()
	if len(q) != degree+1 {
		return poly.Polynomial{}, ErrUnderdetermined
	}

	raw := unscale(q, mid, half)
	for _, c := range raw {
		if !finite(c) {
			return poly.Polynomial{}, ErrNonFinite
		}
	}

	slices.Reverse(raw)

	return poly.New(raw...), nil
}

// FitAnchors fits a polynomial of the given degree through an anchor set.
func FitAnchors(s anchor.Set, degree int) (poly.Polynomial, error) {
	return Polyfit(s.XS(), s.YS(), degree)
}

// Residuals returns p(xs[i]) - ys[i].
func Residuals(p poly.Polynomial, xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	out := p.EvalAll(xs)
	for i := range out {
		out[i] -= ys[i]
	}

	return out, nil
}

// MaxResidual returns the largest absolute residual of p over the points.
func MaxResidual(p poly.Polynomial, xs, ys []float64) (float64, error) {
	res, err := Residuals(p, xs, ys)
	if err != nil {
		return 0, err
	}

	m := 0.0
	for _, r := range res {
		m = math.Max(m, math.Abs(r))
	}

	return m, nil
}

// unscale expands q(u), u = (x-mid)/half, with ascending coefficients q into
// ascending coefficients of the same polynomial in x:
//
//	a_j = sum_{k>=j} q_k * half^-k * C(k, j) * (-mid)^(k-j)
func unscale(q []float64, mid, half float64) []float64 {
	a := make([]float64, len(q))

	for k, qk := range q {
		s := qk / math.Pow(half, float64(k))
		binom := 1.0

		for j := k; j >= 0; j-- {
			a[j] += s * binom * math.Pow(-mid, float64(k-j))
			// C(k, j-1) = C(k, j) * j / (k-j+1)
			binom = binom * float64(j) / float64(k-j+1)
		}
	}

	return a
}

func distinct(xs []float64) int {
	s := slices.Clone(xs)
	slices.Sort(s)

	return len(slices.Compact(s))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
