// Package anchor holds the small ordered sets of (lock time, multiplier) sample
// points that a boost curve is fitted through.
//
// X is the elapsed lock time and Y the dimensionless boost multiplier. Order is
// preserved for plotting continuity; fitting does not depend on it.
//
// Three named presets are available:
//
//	days      (90, 1) (365, 1.3) (730, 1.95) (1095, 3.3)
//	months    (3, 1)  (12, 1.3)  (24, 1.95)  (36, 3.3)
//	quarters  (1, 1)  (4, 1.3)   (8, 1.95)   (12, 3.3)
//
// The days preset is the production configuration; the other two express the
// same curve in coarser units.
package anchor
