package testutil

// Horner evaluates coefficients in descending power order at x. It is kept
// independent of package poly so tests can cross-check it.
func Horner(coeff []float64, x float64) float64 {
	v := 0.0
	for _, c := range coeff {
		v = v*x + c
	}

	return v
}

// Sample evaluates coefficients (descending power order) at every x.
func Sample(coeff, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Horner(coeff, x)
	}

	return out
}

// Ramp returns count consecutive values starting at start with unit step.
func Ramp(start float64, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = start + float64(i)
	}

	return out
}

// BoostAnchorsX and BoostAnchorsY are the production anchors in lock days.
var (
	BoostAnchorsX = []float64{90, 365, 730, 1095}
	BoostAnchorsY = []float64{1, 1.3, 1.95, 3.3}
)

// BoostCubic holds the exact interpolating cubic through the production
// anchors (descending power order), computed in rational arithmetic.
var BoostCubic = []float64{
	1.5414385619795052e-09,
	-7.486159039158258e-07,
	0.0011630492656580114,
	0.9002656462008141,
}
