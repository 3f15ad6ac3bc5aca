// Package polyroot finds real roots of real-coefficient polynomials. It backs
// the critical-point search used by the monotonicity checks in package poly.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"slices"
)

// ErrDegeneratePolynomial is returned when the root iteration does not
// converge or the polynomial has no non-zero coefficient.
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ImagTol is the relative tolerance below which a complex root is treated as
// real.
const ImagTol = 1e-7

// RealRoots returns the real roots of the polynomial with coefficients in
// descending power order, sorted ascending. Leading zero coefficients are
// ignored. Degrees one and two use closed forms; higher degrees run
// Durand-Kerner and keep the roots whose imaginary part vanishes within
// ImagTol. A constant polynomial has no roots.
func RealRoots(coeff []float64) ([]float64, error) {
	lead := 0
	for lead < len(coeff) && coeff[lead] == 0 {
		lead++
	}

	c := coeff[lead:]
	if len(c) == 0 {
		return nil, ErrDegeneratePolynomial
	}

	switch len(c) - 1 {
	case 0:
		return nil, nil
	case 1:
		return []float64{-c[1] / c[0]}, nil
	case 2:
		return quadraticRoots(c[0], c[1], c[2]), nil
	}

	cc := make([]complex128, len(c))
	for i, v := range c {
		cc[i] = complex(v, 0)
	}

	roots, err := DurandKerner(cc)
	if err != nil {
		return nil, err
	}

	var out []float64

	for _, r := range roots {
		if math.Abs(imag(r)) <= ImagTol*math.Max(1, math.Abs(real(r))) {
			out = append(out, real(r))
		}
	}

	slices.Sort(out)

	return out, nil
}

// quadraticRoots solves a*x^2 + b*x + c = 0 for a != 0 without the
// cancellation of the textbook formula. A double root is reported twice.
func quadraticRoots(a, b, c float64) []float64 {
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	if q == 0 {
		return []float64{0, 0}
	}

	r1, r2 := q/a, c/q
	if r1 > r2 {
		r1, r2 = r2, r1
	}

	return []float64{r1, r2}
}

// DurandKerner finds all complex roots of a polynomial using the
// Durand-Kerner (Weierstrass) simultaneous iteration. Coefficients are in
// descending power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 || coeff[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	monic := make([]complex128, len(coeff))
	for i := range coeff {
		monic[i] = coeff[i] / coeff[0]
	}

	// Cauchy-style bound on the root magnitudes seeds the starting circle.
	radius := 1.0
	for _, c := range monic[1:] {
		radius = math.Max(radius, cmplx.Abs(c))
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = cmplx.Rect(r, angle)
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}

			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(monic, roots[i]) / den
			roots[i] -= delta

			maxDelta = math.Max(maxDelta, cmplx.Abs(delta)/math.Max(1, cmplx.Abs(roots[i])))
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	for _, r := range roots {
		if cmplx.Abs(PolyEval(monic, r)) > 1e-6*math.Max(1, math.Pow(cmplx.Abs(r), float64(n))) {
			return nil, ErrDegeneratePolynomial
		}
	}

	return roots, nil
}

// PolyEval evaluates a complex polynomial at x using Horner's method.
// Coefficients are in descending power order.
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for _, c := range coeff[1:] {
		v = v*x + c
	}

	return v
}
