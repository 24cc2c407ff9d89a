// Package render draws contour sets with gonum.org/v1/plot.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/supertrianguloid/komet/contour"
)

// ErrNoContours is returned when there is nothing to draw.
var ErrNoContours = errors.New("render: no contours")

// Options controls the figure. Zero fields take the defaults below.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultWidth and DefaultHeight size a figure whose Options leave Width or
// Height unset.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

func (o Options) size() (w, h vg.Length) {
	w, h = o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// levelColors spreads n hues from red to magenta.
func levelColors(n int) palette.Palette {
	// Rainbow divides by n-1.
	return palette.Rainbow(max(n, 2), palette.Red, palette.Magenta, 0.8, 0.8, 1)
}

// Plot builds a figure with one colour and one legend entry per level.
// Levels without lines are left out of the legend.
func Plot(contours []contour.Contour, opts Options) (*plot.Plot, error) {
	if len(contours) == 0 {
		return nil, ErrNoContours
	}
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	colors := levelColors(len(contours)).Colors()
	for i, c := range contours {
		label := strconv.FormatFloat(c.Level, 'g', 6, 64)
		for j, l := range c.Lines {
			pts := make(plotter.XYs, len(l))
			for k, v := range l {
				pts[k] = plotter.XY{X: v.X, Y: v.Y}
			}
			line, err := plotter.NewLine(pts)
			if err != nil {
				return nil, fmt.Errorf("Plot: level %s: %w", label, err)
			}
			line.Color = colors[i]
			line.Width = vg.Points(1)
			p.Add(line)
			if j == 0 {
				p.Legend.Add(label, line)
			}
		}
	}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// Save writes the figure to path; the extension picks the format (png,
// svg, pdf, ...).
func Save(path string, contours []contour.Contour, opts Options) error {
	p, err := Plot(contours, opts)
	if err != nil {
		return err
	}
	w, h := opts.size()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// Write renders the figure in the named format (png, svg, pdf, ...) to w.
func Write(w io.Writer, format string, contours []contour.Contour, opts Options) error {
	p, err := Plot(contours, opts)
	if err != nil {
		return err
	}
	width, height := opts.size()
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
