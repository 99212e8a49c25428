/*
 * surface.go, part of forceplot.
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

//Package display shows the force charts of a run, one after the
//other, on a terminal.
package display

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/vaspviz/forceplot"
	"github.com/vaspviz/forceplot/chemplot"
	"github.com/vaspviz/forceplot/config"
	"golang.org/x/term"
)

// Terminal size used when the real one can't be obtained.
const (
	FallbackCols = 100
	FallbackRows = 30
)

// Surface kinds, as accepted by New.
const (
	Auto  = config.SurfaceAuto
	Image = config.SurfaceImage
	Text  = config.SurfaceText
)

// Frame is what a surface draws: the forces of one step and its
// (1-based) number.
type Frame struct {
	Number int
	Forces forceplot.Step
}

// Surface is a place where frames are drawn. Each Show replaces the
// previous frame. Close releases the surface but leaves the last frame visible.
type Surface interface {
	Show(Frame) error
	Close() error
}

// IsTerminal returns true if f is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TermSize returns the size of the terminal f in cells, or the
// fallback size if f is not a terminal.
func TermSize(f *os.File) (cols, rows int) {
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return FallbackCols, FallbackRows
	}
	return cols, rows
}

// Resolve turns Auto into Image or Text: Image for terminals that
// support colors, Text otherwise. Other kinds are returned unchanged.
func Resolve(kind string, f *os.File) string {
	if kind != Auto {
		return kind
	}
	if IsTerminal(f) && termenv.NewOutput(f).ColorProfile() != termenv.Ascii {
		return Image
	}
	return Text
}

// New returns a surface of the given kind drawing on f, sized to fit the terminal.
func New(kind string, f *os.File, style chemplot.Style) (Surface, error) {
	cols, rows := TermSize(f)
	//keep the last line free for the cursor
	rows--
	switch Resolve(kind, f) {
	case Image:
		return NewImageSurface(f, style, cols, rows), nil
	case Text:
		return NewTextSurface(f, style, cols, rows, IsTerminal(f)), nil
	default:
		return nil, fmt.Errorf("display: unknown surface %q", kind)
	}
}
