package poly

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lockboost/internal/polyroot"
)

// Polynomial is a real polynomial with coefficients in descending power
// order. The zero value is the zero polynomial.
type Polynomial struct {
	c []float64
}

// New returns the polynomial with the given coefficients, highest degree
// first. The slice is copied.
func New(coeffs ...float64) Polynomial {
	return Polynomial{c: slices.Clone(coeffs)}
}

// Coeffs returns a copy of the coefficients, highest degree first.
func (p Polynomial) Coeffs() []float64 {
	if len(p.c) == 0 {
		return []float64{0}
	}

	return slices.Clone(p.c)
}

// Degree returns the nominal degree, len(coefficients)-1.
func (p Polynomial) Degree() int {
	if len(p.c) == 0 {
		return 0
	}

	return len(p.c) - 1
}

// Eval evaluates p at x using Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	v := 0.0
	for _, c := range p.c {
		v = v*x + c
	}

	return v
}

// EvalInto writes p(xs[i]) to dst[i]. dst must be at least as long as xs.
func (p Polynomial) EvalInto(dst, xs []float64) {
	if len(dst) < len(xs) {
		panic("poly: destination shorter than input")
	}

	dst = dst[:len(xs)]

	if len(p.c) == 0 {
		clear(dst)
		return
	}

	for i := range dst {
		dst[i] = p.c[0]
	}

	for _, c := range p.c[1:] {
		vecmath.MulBlockInPlace(dst, xs)

		for i := range dst {
			dst[i] += c
		}
	}
}

// EvalAll evaluates p at every x and returns a new slice.
func (p Polynomial) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	p.EvalInto(out, xs)

	return out
}

// Derivative returns p'.
func (p Polynomial) Derivative() Polynomial {
	n := p.Degree()
	if n == 0 {
		return New(0)
	}

	d := make([]float64, n)
	for i := range d {
		d[i] = p.c[i] * float64(n-i)
	}

	return Polynomial{c: d}
}

// RealRoots returns the real roots of p in ascending order.
func (p Polynomial) RealRoots() ([]float64, error) {
	return polyroot.RealRoots(p.Coeffs())
}

// NondecreasingOn reports whether p is non-decreasing on [lo, hi]. The
// derivative keeps its sign between consecutive critical points, so it is
// sampled once inside every such sub-interval.
func (p Polynomial) NondecreasingOn(lo, hi float64) (bool, error) {
	if lo > hi {
		lo, hi = hi, lo
	}

	d := p.Derivative()
	if d.isConstant() {
		return d.Eval(0) >= 0, nil
	}

	cuts := []float64{lo}

	roots, err := d.RealRoots()
	if err != nil {
		return false, err
	}

	for _, r := range roots {
		if r > lo && r < hi {
			cuts = append(cuts, r)
		}
	}

	cuts = append(cuts, hi)

	for i := 1; i < len(cuts); i++ {
		if d.Eval(0.5*(cuts[i-1]+cuts[i])) < 0 {
			return false, nil
		}
	}

	return true, nil
}

// isConstant reports whether every coefficient above degree zero vanishes.
func (p Polynomial) isConstant() bool {
	for _, c := range p.c[:max(len(p.c)-1, 0)] {
		if c != 0 {
			return false
		}
	}

	return true
}

// String renders p on one line with four significant digits, for example
// "1.541e-09 x^3 - 7.486e-07 x^2 + 0.001163 x + 0.9003".
func (p Polynomial) String() string {
	n := p.Degree()

	var b strings.Builder

	for i, c := range p.c {
		if c == 0 {
			continue
		}

		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}

		b.WriteString(strconv.FormatFloat(math.Abs(c), 'g', 4, 64))

		switch pow := n - i; pow {
		case 0:
		case 1:
			b.WriteString(" x")
		default:
			b.WriteString(" x^" + strconv.Itoa(pow))
		}
	}

	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
