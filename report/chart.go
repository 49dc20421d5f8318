// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/queuesort/sortbench/benchmath"
)

// ErrTooFewPoints is returned when a run has fewer than
// benchmath.MinTrendPoints data points whose timings are large enough
// to chart.
var ErrTooFewPoints = errors.New("too few measurable data points to chart")

// ChartFormats are the supported chart formats, in publishing order.
var ChartFormats = []string{"png", "pdf", "svg"}

// ChartOptions configures chart output. Zero fields take the
// defaults of DefaultChartOptions.
type ChartOptions struct {
	Width, Height vg.Length

	// DPI is the resolution of raster formats.
	DPI int
}

// DefaultChartOptions is a 16x10 inch figure at 300 dpi.
var DefaultChartOptions = ChartOptions{
	Width:  16 * vg.Inch,
	Height: 10 * vg.Inch,
	DPI:    300,
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width == 0 {
		o.Width = DefaultChartOptions.Width
	}
	if o.Height == 0 {
		o.Height = DefaultChartOptions.Height
	}
	if o.DPI == 0 {
		o.DPI = DefaultChartOptions.DPI
	}
	return o
}

var (
	selectionColor = color.RGBA{0xE7, 0x4C, 0x3C, 0xFF}
	quickColor     = color.RGBA{0x34, 0x98, 0xDB, 0xFF}
	smallColor     = color.RGBA{0x2E, 0xCC, 0x71, 0xB3}
	largeColor     = color.RGBA{0xF3, 0x9C, 0x12, 0xB3}
	refColor       = color.Gray{0x80}
)

// series holds the chartable data points of a report.
type series struct {
	sizes, sel, quick, ratios []float64
}

func chartSeries(r *Report) (series, error) {
	d := r.Dataset
	idx := benchmath.Displayable(d)
	if len(idx) < benchmath.MinTrendPoints {
		return series{}, ErrTooFewPoints
	}
	var s series
	for _, i := range idx {
		s.sizes = append(s.sizes, float64(d.Sizes[i]))
		s.sel = append(s.sel, d.SelectionTimes[i])
		s.quick = append(s.quick, d.QuickTimes[i])
		s.ratios = append(s.ratios, d.Ratios[i])
	}
	return s, nil
}

func xys(xs, ys []float64, f func(x, y float64) float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		y := ys[i]
		if f != nil {
			y = f(xs[i], y)
		}
		pts[i] = plotter.XY{X: xs[i], Y: y}
	}
	return pts
}

// addSeries adds a line-and-marker series to p.
func addSeries(p *plot.Plot, name string, pts plotter.XYs, clr color.Color, shape draw.GlyphDrawer) error {
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	l.Color = clr
	l.Width = vg.Points(2)
	s.Color = clr
	s.Shape = shape
	s.Radius = vg.Points(3)
	p.Add(l, s)
	p.Legend.Add(name, l, s)
	return nil
}

// addCurve adds a dashed reference curve f sampled across [lo, hi].
func addCurve(p *plot.Plot, name string, lo, hi float64, f func(float64) float64, clr color.Color) error {
	const samples = 100
	pts := make(plotter.XYs, samples)
	for i := range pts {
		x := lo + (hi-lo)*float64(i)/(samples-1)
		pts[i] = plotter.XY{X: x, Y: f(x)}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = clr
	l.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(l)
	p.Legend.Add(name, l)
	return nil
}

// Plots returns the four chart panels of r, laid out in two rows:
// running time on linear axes, running time on log-log axes with
// fitted complexity curves, the time ratio per size, and the time per
// element on a log scale.
//
// Only data points whose timings exceed benchmath.DisplayThreshold
// are drawn. If fewer than benchmath.MinTrendPoints remain, Plots
// returns ErrTooFewPoints.
func Plots(r *Report) ([][]*plot.Plot, error) {
	s, err := chartSeries(r)
	if err != nil {
		return nil, err
	}
	const xLabel = "Queue size (elements)"

	linear := plot.New()
	linear.Title.Text = "Sort time by data size"
	linear.X.Label.Text = xLabel
	linear.Y.Label.Text = "Time (seconds)"
	linear.Add(plotter.NewGrid())
	linear.Legend.Top, linear.Legend.Left = true, true
	if err := addSeries(linear, "Selection sort", xys(s.sizes, s.sel, nil), selectionColor, draw.CircleGlyph{}); err != nil {
		return nil, err
	}
	if err := addSeries(linear, "Quick sort", xys(s.sizes, s.quick, nil), quickColor, draw.SquareGlyph{}); err != nil {
		return nil, err
	}

	loglog := plot.New()
	loglog.Title.Text = "Log-log scale"
	loglog.X.Label.Text = xLabel
	loglog.Y.Label.Text = "Time (seconds)"
	loglog.X.Scale, loglog.Y.Scale = plot.LogScale{}, plot.LogScale{}
	loglog.X.Tick.Marker, loglog.Y.Tick.Marker = plot.LogTicks{}, plot.LogTicks{}
	loglog.Add(plotter.NewGrid())
	loglog.Legend.Top, loglog.Legend.Left = true, true
	if err := addSeries(loglog, "Selection sort", xys(s.sizes, s.sel, nil), selectionColor, draw.CircleGlyph{}); err != nil {
		return nil, err
	}
	if err := addSeries(loglog, "Quick sort", xys(s.sizes, s.quick, nil), quickColor, draw.SquareGlyph{}); err != nil {
		return nil, err
	}
	if t := r.Trend; t.Valid() {
		lo, hi := s.sizes[0], s.sizes[len(s.sizes)-1]
		if err := addCurve(loglog, "O(n²) trend", lo, hi, t.Quadratic, selectionColor); err != nil {
			return nil, err
		}
		if err := addCurve(loglog, "O(n log n) trend", lo, hi, t.Linearithmic, quickColor); err != nil {
			return nil, err
		}
	}

	ratios, err := ratioPlot(s)
	if err != nil {
		return nil, err
	}

	perElem := plot.New()
	perElem.Title.Text = "Algorithm efficiency"
	perElem.X.Label.Text = xLabel
	perElem.Y.Label.Text = "Time per element (seconds)"
	perElem.Y.Scale = plot.LogScale{}
	perElem.Y.Tick.Marker = plot.LogTicks{}
	perElem.Add(plotter.NewGrid())
	perElem.Legend.Top = true
	perN := func(n, t float64) float64 { return t / n }
	if err := addSeries(perElem, "Selection (per element)", xys(s.sizes, s.sel, perN), selectionColor, draw.CircleGlyph{}); err != nil {
		return nil, err
	}
	if err := addSeries(perElem, "Quick (per element)", xys(s.sizes, s.quick, perN), quickColor, draw.SquareGlyph{}); err != nil {
		return nil, err
	}

	return [][]*plot.Plot{{linear, loglog}, {ratios, perElem}}, nil
}

// ratioPlot draws one bar per size. Ratios below 10 and from 10 up
// are colored differently.
func ratioPlot(s series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Sort speed ratio"
	p.X.Label.Text = "Data size"
	p.Y.Label.Text = "Time ratio (selection / quick)"
	p.Add(plotter.NewGrid())

	small := make(plotter.Values, len(s.ratios))
	large := make(plotter.Values, len(s.ratios))
	var labels plotter.XYLabels
	var names []string
	for i, r := range s.ratios {
		if r < 10 {
			small[i] = r
		} else {
			large[i] = r
		}
		names = append(names, commas(int(s.sizes[i])))
		if r > 0 {
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: r})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%.1fx", r))
		}
	}
	w := vg.Points(14)
	for _, b := range []struct {
		vs  plotter.Values
		clr color.Color
	}{{small, smallColor}, {large, largeColor}} {
		bars, err := plotter.NewBarChart(b.vs, w)
		if err != nil {
			return nil, err
		}
		bars.Color = b.clr
		bars.LineStyle.Width = 0
		p.Add(bars)
	}

	parity := plotter.NewFunction(func(float64) float64 { return 1 })
	parity.Color = refColor
	parity.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(parity)

	if len(labels.XYs) > 0 {
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}
	p.NominalX(names...)
	return p, nil
}

// newCanvas returns a canvas for the given format.
func newCanvas(format string, opts ChartOptions) (vg.CanvasWriterTo, error) {
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(opts.Width, opts.Height),
			vgimg.UseDPI(opts.DPI),
			vgimg.UseBackgroundColor(color.White))}, nil
	case "svg":
		return vgsvg.New(opts.Width, opts.Height), nil
	case "pdf":
		return vgpdf.New(opts.Width, opts.Height), nil
	}
	return nil, fmt.Errorf("unsupported chart format %q", format)
}

// WriteChart draws the chart panels of r as a single figure in the
// given format ("png", "pdf" or "svg") and writes it to w.
func WriteChart(w io.Writer, r *Report, format string, opts ChartOptions) error {
	opts = opts.withDefaults()
	plots, err := Plots(r)
	if err != nil {
		return err
	}
	c, err := newCanvas(format, opts)
	if err != nil {
		return err
	}

	dc := draw.New(c)
	pad := vg.Points(20)
	tiles := draw.Tiles{
		Rows: len(plots), Cols: len(plots[0]),
		PadX: pad, PadY: pad,
		PadTop: 3 * pad, PadBottom: pad,
		PadLeft: pad, PadRight: pad,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	d := r.Dataset
	title := fmt.Sprintf("%s, tested %s", d.Title, d.FormatTimestamp())
	sty := plots[0][0].Title.TextStyle
	sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop
	dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - pad}, title)

	_, err = c.WriteTo(w)
	return err
}
