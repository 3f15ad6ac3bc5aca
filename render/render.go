// Package render draws the fitted boost curve: the anchor points as markers
// and the smooth evaluation as a connected line.
//
// The pipeline only depends on the Renderer interface, so headless runs use
// Nop and nothing requires a display. PlotRenderer writes a static image with
// gonum/plot.
package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-lockboost/anchor"
	"github.com/cwbudde/algo-lockboost/resample"
)

// Chart defaults.
const (
	DefaultTitle  = "veNEWO LFG!!!"
	DefaultXLabel = "lock time (days)"
	DefaultYLabel = "boost (multiplier for boomers)"
)

// Default image size.
var (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// Errors returned by renderers.
var (
	ErrEmptyChart    = errors.New("render: chart has no data")
	ErrUnknownFormat = errors.New("render: unsupported image format")
)

// Chart describes everything drawn for one fit.
type Chart struct {
	Title   string
	XLabel  string
	YLabel  string
	Anchors anchor.Set
	Smooth  resample.Series
	XMin    float64
	XMax    float64
}

// NewChart returns a chart with the default labels and an x axis spanning
// one unit beyond the outermost anchors.
func NewChart(anchors anchor.Set, smooth resample.Series) Chart {
	lo, hi := anchors.Bounds()

	return Chart{
		Title:   DefaultTitle,
		XLabel:  DefaultXLabel,
		YLabel:  DefaultYLabel,
		Anchors: anchors,
		Smooth:  smooth,
		XMin:    lo - 1,
		XMax:    hi + 1,
	}
}

// Renderer displays or stores a chart.
type Renderer interface {
	Render(c Chart) error
}

// Func adapts a function to the Renderer interface.
type Func func(c Chart) error

// Render calls f(c).
func (f Func) Render(c Chart) error { return f(c) }

// Nop discards every chart.
type Nop struct{}

// Render does nothing.
func (Nop) Render(Chart) error { return nil }

// PlotRenderer saves charts to Path. The image format follows the file
// extension (png, svg, pdf, ...). Zero sizes fall back to the defaults.
type PlotRenderer struct {
	Path   string
	Width  vg.Length
	Height vg.Length
}

// Render draws c and writes it to r.Path.
func (r PlotRenderer) Render(c Chart) error {
	p, err := build(c)
	if err != nil {
		return err
	}

	w, h := size(r.Width, r.Height)
	if err := p.Save(w, h, r.Path); err != nil {
		return fmt.Errorf("render: save %s: %w", r.Path, err)
	}

	return nil
}

// WriteTo draws c and streams it to w in the given format ("png", "svg",
// "pdf", ...). Zero sizes fall back to the defaults.
func WriteTo(w io.Writer, c Chart, format string, width, height vg.Length) error {
	p, err := build(c)
	if err != nil {
		return err
	}

	width, height = size(width, height)

	wt, err := p.WriterTo(width, height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	_, err = wt.WriteTo(w)

	return err
}

// FormatOf returns the image format implied by a file name.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func build(c Chart) (*plot.Plot, error) {
	if c.Smooth.Len() == 0 && len(c.Anchors) == 0 {
		return nil, ErrEmptyChart
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())

	if len(c.Anchors) > 0 {
		pts := make(plotter.XYs, len(c.Anchors))
		for i, a := range c.Anchors {
			pts[i].X, pts[i].Y = a.X, a.Y
		}

		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("render: anchors: %w", err)
		}

		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Color = plotutil.Color(0)
		p.Add(sc)
		p.Legend.Add("anchors", sc)
	}

	if c.Smooth.Len() > 0 {
		pts := make(plotter.XYs, c.Smooth.Len())
		for i := range pts {
			pts[i].X, pts[i].Y = c.Smooth.At(i)
		}

		ln, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("render: curve: %w", err)
		}

		ln.LineStyle.Width = vg.Points(1.5)
		ln.LineStyle.Color = plotutil.Color(1)
		p.Add(ln)
		p.Legend.Add("fit", ln)
	}

	if c.XMin < c.XMax {
		p.X.Min, p.X.Max = c.XMin, c.XMax
	}

	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

func size(w, h vg.Length) (vg.Length, vg.Length) {
	if w <= 0 {
		w = DefaultWidth
	}

	if h <= 0 {
		h = DefaultHeight
	}

	return w, h
}
