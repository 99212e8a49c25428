/*
 * forces.go, part of forceplot
 *
 * Copyright 2021 The forceplot authors.
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

//Package chemplot draws the forces of an ionic step as a bar chart, using gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"

	"github.com/vaspviz/forceplot"
	"github.com/vaspviz/forceplot/config"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// YLabel is the label of the force axis.
	YLabel = "Force / (eV/Å)"
	// Typeface and Variant give Liberation Sans, metrically compatible with Arial.
	Typeface = "Liberation"
	Variant  = "Sans"
)

// Style sets how the chart for a step looks. The Y range is fixed, so
// consecutive steps can be compared.
type Style struct {
	Cutoff      float64
	YMin, YMax  float64
	Width       vg.Length
	Height      vg.Length
	FontSize    vg.Length
	DPI         int
	BarColor    color.Color
	CutoffColor color.Color
}

// DPI is the resolution charts are drawn at, before being fitted to
// the terminal.
const DPI = 96

// StyleFor translates a configuration into a chart style.
func StyleFor(cfg *config.Config) (Style, error) {
	bar, err := config.ParseColor(cfg.Figure.BarColor)
	if err != nil {
		return Style{}, err
	}
	line, err := config.ParseColor(cfg.Figure.CutoffColor)
	if err != nil {
		return Style{}, err
	}
	return Style{
		Cutoff:      cfg.Cutoff,
		YMin:        cfg.YRange[0],
		YMax:        cfg.YRange[1],
		Width:       vg.Length(cfg.Figure.Width) * vg.Inch,
		Height:      vg.Length(cfg.Figure.Height) * vg.Inch,
		FontSize:    vg.Points(cfg.Figure.FontSize),
		DPI:         DPI,
		BarColor:    bar,
		CutoffColor: line,
	}, nil
}

// DefaultStyle returns the style of the default configuration: a
// 0.05 eV/Å cutoff, a [-0.1, 0.1] range, and a 13.33x6.5 in figure.
func DefaultStyle() Style {
	s, err := StyleFor(config.Default())
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Title returns the title of the chart for the given (1-based) step number.
func Title(number int) string {
	return fmt.Sprintf("Ionic-step number %d", number)
}

func setFont(f *font.Font, size vg.Length) {
	f.Typeface = Typeface
	f.Variant = Variant
	f.Size = size
}

/*ForcePlot returns a plot with one bar for each force component in step, and two dashed
  lines at +/- the cutoff. The X ticks are hidden, as the bars are just the components
  in the order they were read. number is the (1-based) step number, used in the title.
  Returns the plot and an error or nil*/
func ForcePlot(step forceplot.Step, number int, s Style) (*plot.Plot, error) {
	if s.YMin >= s.YMax {
		return nil, fmt.Errorf("ForcePlot: invalid Y range [%g, %g]", s.YMin, s.YMax)
	}
	p := plot.New()
	p.Title.Text = Title(number)
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = YLabel
	setFont(&p.Title.TextStyle.Font, s.FontSize)
	setFont(&p.Y.Label.TextStyle.Font, s.FontSize)
	setFont(&p.Y.Tick.Label.Font, s.FontSize*0.85)
	p.X.Tick.Marker = plot.ConstantTicks(nil)
	n := step.Len()
	if n > 0 {
		bars, err := plotter.NewBarChart(step, barWidth(n, s.Width))
		if err != nil {
			return nil, err
		}
		bars.Color = s.BarColor
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	//The cutoff lines go a bit beyond the last bar.
	for _, y := range []float64{s.Cutoff, -s.Cutoff} {
		l, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: float64(n + 1), Y: y}})
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = s.CutoffColor
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(l)
	}
	//Constant axes. Set after adding the plotters, as Add widens the
	//axes to fit the data.
	p.Y.Min = s.YMin
	p.Y.Max = s.YMax
	return p, nil
}

// barWidth leaves a small gap between neighbouring bars. The data
// area is somewhat narrower than the figure, the axis and its labels
// take the rest.
func barWidth(n int, figWidth vg.Length) vg.Length {
	w := figWidth * 0.85 / vg.Length(n+1) * 0.8
	if w < vg.Points(0.5) {
		w = vg.Points(0.5)
	}
	return w
}
