/*
 * image.go, part of forceplot.
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
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/vaspviz/forceplot/chemplot"
)

// upperHalf is drawn with the top pixel as foreground and the bottom one
// as background, so each cell shows two (roughly square) pixels.
const upperHalf = "▀"

// ImageSurface draws the chemplot chart of each frame on a true color
// terminal. The frame is redrawn in place, from the top left corner.
type ImageSurface struct {
	out     *termenv.Output
	style   chemplot.Style
	cols    int
	rows    int
	started bool
	colors  map[color.RGBA]termenv.Color
}

// NewImageSurface returns a surface writing to w, using at most cols x rows cells.
func NewImageSurface(w io.Writer, style chemplot.Style, cols, rows int, opts ...termenv.OutputOption) *ImageSurface {
	return &ImageSurface{
		out:    termenv.NewOutput(w, opts...),
		style:  style,
		cols:   max(cols, 1),
		rows:   max(rows, 1),
		colors: make(map[color.RGBA]termenv.Color),
	}
}

// PixelSize returns the size, in pixels, of the image drawn in the
// available cells, keeping the aspect ratio of the figure.
func (S *ImageSurface) PixelSize() (w, h int) {
	aspect := float64(S.style.Width / S.style.Height)
	w, h = S.cols, 2*S.rows
	if float64(w) > float64(h)*aspect {
		w = int(float64(h) * aspect)
	} else {
		h = int(float64(w) / aspect)
	}
	return max(w, 1), max(h, 1)
}

// Show draws f over the previous frame.
func (S *ImageSurface) Show(f Frame) error {
	img, err := chemplot.Frame(f.Forces, f.Number, S.style)
	if err != nil {
		return fmt.Errorf("display: step %d: %w", f.Number, err)
	}
	w, h := S.PixelSize()
	small := chemplot.Scale(img, w, h)
	if !S.started {
		S.out.HideCursor()
		S.out.ClearScreen()
		S.started = true
	}
	S.out.MoveCursor(1, 1)
	_, err = io.WriteString(S.out, S.render(small))
	return err
}

// Close shows the cursor again, below the last frame.
func (S *ImageSurface) Close() error {
	if !S.started {
		return nil
	}
	S.out.ShowCursor()
	S.started = false
	return nil
}

func (S *ImageSurface) color(c color.RGBA) termenv.Color {
	if tc, ok := S.colors[c]; ok {
		return tc
	}
	tc := S.out.Color(hexColor(c))
	S.colors[c] = tc
	return tc
}

func (S *ImageSurface) render(img *image.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			sb.WriteString(S.out.String(upperHalf).Foreground(S.color(top)).Background(S.color(bottom)).String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// hexColor gives c as "#rrggbb".
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
