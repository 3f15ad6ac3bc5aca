// Package export writes multiplier series as flat text: one fixed-point
// value per line, no header and no x column. Line N corresponds to the N-th
// point of the series.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Default output names and precision.
const (
	DailyFile       = "veMult_90-1095.txt"
	WeeklyFile      = "veMult_weekly.txt"
	DefaultDecimals = 3
)

// ErrInvalidPrecision indicates a negative number of decimals.
var ErrInvalidPrecision = errors.New("export: decimals must be >= 0")

// WriteValues writes each value on its own line with the given number of
// decimals, rounding the way printf's %.Nf does.
func WriteValues(w io.Writer, ys []float64, decimals int) error {
	if decimals < 0 {
		return ErrInvalidPrecision
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	for _, y := range ys {
		buf = strconv.AppendFloat(buf[:0], y, 'f', decimals, 64)
		buf = append(buf, '\n')

		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates or truncates path and writes ys to it. The file is
// always closed; a close error is reported when the write itself succeeded.
func WriteFile(path string, ys []float64, decimals int) (err error) {
	if decimals < 0 {
		return ErrInvalidPrecision
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()

	if err := WriteValues(f, ys, decimals); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	return nil
}
