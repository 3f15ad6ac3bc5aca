// Package poly provides an immutable real polynomial model with scalar and
// block evaluation, differentiation, real root search and a monotonicity
// check over an interval.
//
// Coefficients are stored highest degree first, so a cubic is
//
//	f(x) = c0*x^3 + c1*x^2 + c2*x + c3
//
// Block evaluation runs Horner's rule over whole slices using algo-vecmath
// kernels, which is how the dense daily grid is produced.
package poly
