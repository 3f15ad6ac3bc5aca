// Package resample builds evaluation grids for a fitted boost curve and
// derives coarser series from dense ones.
//
// Common workflows:
//   - Linspace(lo, hi, n) for a smooth plotting grid
//   - IntRange(start, count) for one point per lock day
//   - Evaluate(p, xs) to apply a polynomial to a grid
//   - Decimate(s, 7) to keep one point per week
package resample
