/*
 * raster.go, part of forceplot.
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

package chemplot

import (
	"fmt"
	"image"

	"github.com/vaspviz/forceplot"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Rasterize draws p in memory, with the size and resolution given in s,
//on a white background. Nothing is written to disk.
func Rasterize(p *plot.Plot, s Style) (image.Image, error) {
	if p == nil {
		return nil, fmt.Errorf("Rasterize: given nil plot")
	}
	if s.Width <= 0 || s.Height <= 0 || s.DPI <= 0 {
		return nil, fmt.Errorf("Rasterize: invalid canvas %vx%v at %d DPI", s.Width, s.Height, s.DPI)
	}
	c := vgimg.NewWith(vgimg.UseWH(s.Width, s.Height), vgimg.UseDPI(s.DPI))
	p.Draw(draw.New(c))
	return c.Image(), nil
}

//Scale resamples src to w x h pixels. Used to fit a chart into a
//terminal, which is much coarser than the figure.
func Scale(src image.Image, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Frame builds the chart for a step and rasterizes it, in one go.
func Frame(step forceplot.Step, number int, s Style) (image.Image, error) {
	p, err := ForcePlot(step, number, s)
	if err != nil {
		return nil, err
	}
	return Rasterize(p, s)
}
