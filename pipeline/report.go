package pipeline

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport prints the run in the legacy console layout:
// the coefficient vector, the polynomial, the checkpoint multipliers and,
// when verbose, the complete daily x and y sequences.
func WriteReport(w io.Writer, r *Result, verbose bool) error {
	var b strings.Builder

	fmt.Fprintln(&b, "z")
	fmt.Fprintln(&b, r.Model.Coeffs())
	fmt.Fprintln(&b, "f")
	fmt.Fprintln(&b, r.Model)
	fmt.Fprintln(&b, "sampling for reasons..")
	fmt.Fprintln(&b, "points for che")
	fmt.Fprintln(&b, r.Checkpoints.Y)

	if verbose {
		fmt.Fprintln(&b, r.Daily.X)
		fmt.Fprintln(&b, r.Daily.Y)
	}

	_, err := io.WriteString(w, b.String())

	return err
}
