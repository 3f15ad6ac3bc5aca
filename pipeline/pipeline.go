package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cwbudde/algo-lockboost/anchor"
	"github.com/cwbudde/algo-lockboost/export"
	"github.com/cwbudde/algo-lockboost/fit"
	"github.com/cwbudde/algo-lockboost/poly"
	"github.com/cwbudde/algo-lockboost/render"
	"github.com/cwbudde/algo-lockboost/resample"
	"github.com/cwbudde/algo-lockboost/stats"
)

// Result holds every value computed by a run.
type Result struct {
	Anchors     anchor.Set
	Model       poly.Polynomial
	Smooth      resample.Series
	Checkpoints resample.Series
	Daily       resample.Series
	Weekly      resample.Series
	DailyStats  stats.Summary
	// Monotonic reports whether the model never decreases between the
	// outermost anchors.
	Monotonic bool
	Decimals  int
	// Files lists the paths written, daily first.
	Files []string
}

type options struct {
	logger   *log.Logger
	renderer render.Renderer
}

// Option configures a run.
type Option func(*options)

// WithLogger sends progress lines to l. Runs are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRenderer overrides the chart renderer. Without it a PlotRenderer is
// used when Config.ChartPath is set and charts are discarded otherwise.
func WithRenderer(r render.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// Run executes the pipeline for cfg. A failing renderer does not stop the
// file export; render and export errors are joined. The Result is returned
// whenever the fit itself succeeded, even if an error is also returned.
func Run(cfg Config, opts ...Option) (*Result, error) {
	o := options{logger: log.New(io.Discard, "", 0)}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.renderer == nil {
		o.renderer = render.Nop{}
		if cfg.ChartPath != "" {
			o.renderer = render.PlotRenderer{Path: cfg.ChartPath}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lg := o.logger
	lo, hi := cfg.Anchors.Bounds()
	lg.Printf("[INFO] anchors: %d points, x in [%g, %g]", len(cfg.Anchors), lo, hi)

	model, err := fit.FitAnchors(cfg.Anchors, cfg.Degree)
	if err != nil {
		return nil, fmt.Errorf("pipeline: fit: %w", err)
	}

	lg.Printf("[INFO] coefficients: %v", model.Coeffs())
	lg.Printf("[INFO] model: %s", model)

	res := &Result{
		Anchors:  cfg.Anchors.Clone(),
		Model:    model,
		Decimals: cfg.Decimals,
	}

	if err := res.evaluate(&cfg, lo, hi); err != nil {
		return nil, err
	}

	for i := range res.Checkpoints.Len() {
		x, y := res.Checkpoints.At(i)
		lg.Printf("[INFO] checkpoint day %g: %.6f", x, y)
	}

	if !res.Monotonic {
		lg.Printf("[WARN] fitted curve decreases somewhere in [%g, %g]", lo, hi)
	}

	var renderErr error
	if err := o.renderer.Render(render.NewChart(res.Anchors, res.Smooth)); err != nil {
		renderErr = fmt.Errorf("pipeline: render: %w", err)
		lg.Printf("[WARN] %v", renderErr)
	}

	var exportErr error
	if !cfg.SkipFiles {
		exportErr = res.export(&cfg, lg)
	}

	return res, errors.Join(renderErr, exportErr)
}

func (r *Result) evaluate(cfg *Config, lo, hi float64) error {
	xs, err := resample.Linspace(lo, hi, cfg.SmoothPoints)
	if err != nil {
		return fmt.Errorf("pipeline: smooth grid: %w", err)
	}

	r.Smooth = resample.Evaluate(r.Model, xs)
	r.Checkpoints = resample.Evaluate(r.Model, cfg.Checkpoints)

	start, count := cfg.dailyRange()

	days, err := resample.IntRange(start, count)
	if err != nil {
		return fmt.Errorf("pipeline: daily grid: %w", err)
	}

	r.Daily = resample.Evaluate(r.Model, days)

	r.Weekly, err = resample.Decimate(r.Daily, cfg.WeeklyStep)
	if err != nil {
		return fmt.Errorf("pipeline: weekly series: %w", err)
	}

	r.DailyStats = stats.Calculate(r.Daily.Y)

	r.Monotonic, err = r.Model.NondecreasingOn(lo, hi)
	if err != nil {
		return fmt.Errorf("pipeline: monotonicity: %w", err)
	}

	return nil
}

func (r *Result) export(cfg *Config, lg *log.Logger) error {
	outputs := []struct {
		path   string
		series resample.Series
	}{
		{cfg.DailyPath, r.Daily},
		{cfg.WeeklyPath, r.Weekly},
	}

	for _, out := range outputs {
		if err := export.WriteFile(out.path, out.series.Y, cfg.Decimals); err != nil {
			return err
		}

		r.Files = append(r.Files, out.path)
		lg.Printf("[INFO] wrote %d values to %s", out.series.Len(), out.path)
	}

	return nil
}
