// Package pipeline runs the lock-boost curve end to end:
//
//  1. take the configured anchor points
//  2. fit a least-squares polynomial (cubic by default)
//  3. evaluate it on a smooth plotting grid, the checkpoint days and every
//     whole day of the lock range, then keep every seventh day as the weekly
//     series
//  4. hand the chart to the configured renderer and write the daily and
//     weekly multipliers to flat text files
//
// Every intermediate value is returned in a Result. The run is synchronous
// and deterministic: the same Config always produces byte-identical files.
package pipeline
