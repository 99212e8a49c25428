/*
 * text.go, part of forceplot.
 *
 * Copyright 2021 The forceplot authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package display

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vaspviz/forceplot"
	"github.com/vaspviz/forceplot/chemplot"
)

const (
	barCell    = "█"
	cutoffCell = "╌"
	labelWidth = 8
	minRows    = 8
	maxRows    = 40
)

// TextSurface draws the chart of each frame with characters. When the
// output is a terminal each frame is drawn over the previous one,
// otherwise the frames are written one after the other.
type TextSurface struct {
	w        io.Writer
	r        *lipgloss.Renderer
	style    chemplot.Style
	cols     int
	rows     int
	inPlace  bool
	lastRows int //lines written for the previous frame

	title  lipgloss.Style
	cutoff lipgloss.Style
	axis   lipgloss.Style
}

// NewTextSurface returns a text surface writing to w, with at most
// cols x rows cells. The chart itself takes all rows but three, the
// rest go to the title and the label.
func NewTextSurface(w io.Writer, style chemplot.Style, cols, rows int, inPlace bool, opts ...termenv.OutputOption) *TextSurface {
	r := lipgloss.NewRenderer(w, opts...)
	return &TextSurface{
		w:       w,
		r:       r,
		style:   style,
		cols:    max(cols, labelWidth+3),
		rows:    min(max(rows-3, minRows), maxRows),
		inPlace: inPlace,
		title:   r.NewStyle().Bold(true),
		cutoff:  r.NewStyle().Foreground(lipgloss.Color(hexColor(style.CutoffColor))),
		axis:    r.NewStyle().Faint(true),
	}
}

// Show draws f.
func (S *TextSurface) Show(f Frame) error {
	chart := S.Render(f)
	if S.inPlace && S.lastRows > 0 {
		S.r.Output().CursorPrevLine(S.lastRows)
	} else if S.lastRows > 0 {
		chart = "\n" + chart
	}
	S.lastRows = strings.Count(chart, "\n")
	_, err := io.WriteString(S.w, chart)
	return err
}

// Close does nothing, the last frame stays where it is.
func (S *TextSurface) Close() error {
	return nil
}

// Render returns the text for a frame, ending in a newline.
func (S *TextSurface) Render(f Frame) string {
	width := S.cols - labelWidth - 2
	columns := downsample(f.Forces, width)
	spaced := len(columns)*2 <= width
	ymin, ymax := S.style.YMin, S.style.YMax
	dy := (ymax - ymin) / float64(S.rows)
	upper := rowOf(S.style.Cutoff, ymax, dy, S.rows)
	lower := rowOf(-S.style.Cutoff, ymax, dy, S.rows)

	lines := make([]string, 0, S.rows+3)
	lines = append(lines, S.title.Render(strings.Repeat(" ", labelWidth+2)+chemplot.Title(f.Number)))
	for r := 0; r < S.rows; r++ {
		center := ymax - (float64(r)+0.5)*dy
		label := strings.Repeat(" ", labelWidth)
		switch r {
		case upper:
			label = fmt.Sprintf("%*.3f", labelWidth, S.style.Cutoff)
		case lower:
			label = fmt.Sprintf("%*.3f", labelWidth, -S.style.Cutoff)
		case 0:
			label = fmt.Sprintf("%*.3f", labelWidth, ymax)
		case S.rows - 1:
			label = fmt.Sprintf("%*.3f", labelWidth, ymin)
		}
		var sb strings.Builder
		sb.WriteString(S.axis.Render(label + " │"))
		empty := " "
		if r == upper || r == lower {
			empty = S.cutoff.Render(cutoffCell)
		}
		for _, v := range columns {
			cell := empty
			if covers(v, center) {
				cell = barCell
			}
			sb.WriteString(cell)
			if spaced {
				sb.WriteString(empty)
			}
		}
		lines = append(lines, sb.String())
	}
	lines = append(lines, S.axis.Render(strings.Repeat(" ", labelWidth)+" └"+strings.Repeat("─", min(width, max(len(columns), 1)*2))))
	lines = append(lines, S.axis.Render(strings.Repeat(" ", labelWidth+2)+chemplot.YLabel))
	return strings.Join(lines, "\n") + "\n"
}

// covers returns true if a bar of height v fills the cell centered at y.
func covers(v, y float64) bool {
	if v > 0 {
		return y > 0 && y <= v
	}
	return y < 0 && y >= v
}

// rowOf returns the row whose interval contains y, or -1 if y is off the chart.
func rowOf(y, ymax, dy float64, rows int) int {
	r := int(math.Floor((ymax - y) / dy))
	if r < 0 || r >= rows {
		return -1
	}
	return r
}

// downsample returns step unchanged if it fits in width columns. Otherwise
// the components are split in width groups, and each group is represented
// by its largest component in absolute value, so large forces are never hidden.
func downsample(step forceplot.Step, width int) []float64 {
	if width < 1 {
		width = 1
	}
	if step.Len() <= width {
		return step
	}
	per := (step.Len() + width - 1) / width
	ret := make([]float64, 0, width)
	for i := 0; i < step.Len(); i += per {
		end := min(i+per, step.Len())
		big := step[i]
		for _, v := range step[i+1 : end] {
			if math.Abs(v) > math.Abs(big) {
				big = v
			}
		}
		ret = append(ret, big)
	}
	return ret
}
