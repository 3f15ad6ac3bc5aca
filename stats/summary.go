// Package stats summarises a resampled multiplier series: extremes, mean and
// variance, and the smallest and largest step between neighbours.
package stats

import "math"

// Summary holds statistics of a value series.
type Summary struct {
	Length   int     `json:"length"`
	Min      float64 `json:"min"`
	MinPos   int     `json:"min_pos"`
	Max      float64 `json:"max"`
	MaxPos   int     `json:"max_pos"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"` // population variance
	Range    float64 `json:"range"`    // max - min
	MinStep  float64 `json:"min_step"` // smallest values[i] - values[i-1]
	MaxStep  float64 `json:"max_step"`
	// Nondecreasing is true when no value is below its predecessor.
	Nondecreasing bool `json:"nondecreasing"`
}

// Calculate computes the summary in a single pass using Welford's update for
// the mean and variance. Step fields are zero for fewer than two values.
func Calculate(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{Nondecreasing: true}
	}

	var mean, m2 float64

	s := Summary{
		Length:        n,
		Min:           values[0],
		Max:           values[0],
		MinStep:       math.Inf(1),
		MaxStep:       math.Inf(-1),
		Nondecreasing: true,
	}

	for i, x := range values {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		if x > s.Max {
			s.Max = x
			s.MaxPos = i
		}

		if x < s.Min {
			s.Min = x
			s.MinPos = i
		}

		if i == 0 {
			continue
		}

		step := x - values[i-1]
		s.MinStep = math.Min(s.MinStep, step)
		s.MaxStep = math.Max(s.MaxStep, step)

		if step < 0 {
			s.Nondecreasing = false
		}
	}

	if n < 2 {
		s.MinStep, s.MaxStep = 0, 0
	}

	s.Mean = mean
	s.Variance = m2 / float64(n)
	s.Range = s.Max - s.Min

	return s
}
