package pipeline

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-lockboost/anchor"
	"github.com/cwbudde/algo-lockboost/export"
	"github.com/cwbudde/algo-lockboost/resample"
)

// Errors returned by Config.Validate.
var (
	ErrInvalidDegree       = errors.New("pipeline: degree must be >= 0")
	ErrInvalidSmoothPoints = errors.New("pipeline: smooth_points must be positive")
	ErrInvalidDailyCount   = errors.New("pipeline: daily_count must be >= 0")
	ErrInvalidWeeklyStep   = errors.New("pipeline: weekly_step must be positive")
	ErrInvalidDecimals     = errors.New("pipeline: decimals must be >= 0")
	ErrMissingOutput       = errors.New("pipeline: output path required")
)

// Config holds every parameter of a run.
type Config struct {
	Anchors      anchor.Set `yaml:"anchors"`
	Degree       int        `yaml:"degree"`
	SmoothPoints int        `yaml:"smooth_points"`
	Checkpoints  []float64  `yaml:"checkpoints"`
	// DailyStart is the first exported day; nil starts at the smallest
	// anchor x rounded up.
	DailyStart *int `yaml:"daily_start,omitempty"`
	// DailyCount is the number of exported days; zero runs through the
	// largest anchor x.
	DailyCount int    `yaml:"daily_count"`
	WeeklyStep int    `yaml:"weekly_step"`
	Decimals   int    `yaml:"decimals"`
	DailyPath  string `yaml:"daily_path"`
	WeeklyPath string `yaml:"weekly_path"`
	// ChartPath, when set, saves the chart as a static image.
	ChartPath string `yaml:"chart_path"`
	SkipFiles bool   `yaml:"skip_files"`
}

// DefaultConfig reproduces the production run: the day-based anchors, a
// cubic fit, 50 plotting points, 1006 daily values from day 90 and a
// seven-day weekly stride, written with three decimals.
func DefaultConfig() Config {
	return Config{
		Anchors:      anchor.Days(),
		Degree:       3,
		SmoothPoints: 50,
		Checkpoints:  slices.Clone(resample.DefaultCheckpoints),
		DailyCount:   1006,
		WeeklyStep:   7,
		Decimals:     export.DefaultDecimals,
		DailyPath:    export.DailyFile,
		WeeklyPath:   export.WeeklyFile,
	}
}

// Validate checks c for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Degree < 0 {
		return ErrInvalidDegree
	}

	if err := c.Anchors.Validate(c.Degree + 1); err != nil {
		return fmt.Errorf("pipeline: anchors: %w", err)
	}

	if c.SmoothPoints <= 0 {
		return ErrInvalidSmoothPoints
	}

	if c.DailyCount < 0 {
		return ErrInvalidDailyCount
	}

	if c.WeeklyStep <= 0 {
		return ErrInvalidWeeklyStep
	}

	if c.Decimals < 0 {
		return ErrInvalidDecimals
	}

	if !c.SkipFiles && (c.DailyPath == "" || c.WeeklyPath == "") {
		return ErrMissingOutput
	}

	return nil
}

// dailyRange resolves the first day and day count of the daily grid.
func (c *Config) dailyRange() (start, count int) {
	lo, hi := c.Anchors.Bounds()

	start = int(math.Ceil(lo))
	if c.DailyStart != nil {
		start = *c.DailyStart
	}

	count = c.DailyCount
	if count == 0 {
		count = max(int(math.Floor(hi))-start+1, 1)
	}

	return start, count
}
