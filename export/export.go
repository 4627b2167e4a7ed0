// seehuhn.de/go/cells - rasterize parametric shapes onto an integer grid
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package export writes sets of grid cells as SVG, PNG, BMP, PBM and PDF
// files.
//
// All writers take the cells in any order and with repetitions; each
// distinct cell is drawn once, as a filled unit square.  The output is
// cropped to the bounding box of the cells.  Cell (x, y) is drawn with x
// increasing to the right and y increasing downwards.
package export

import (
	"errors"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cells"
)

// DefaultCellSize is the number of pixels (or PDF points) per cell used
// when [Options.CellSize] is zero.
const DefaultCellSize = 10

// MaxPixels limits the size of exported images.  For raster images this
// is the number of pixels.  SVG, PBM and PDF output is limited to
// MaxPixels cells in the bounding box.
const MaxPixels = 1 << 26

// ErrTooLarge is returned when an image would exceed [MaxPixels].
var ErrTooLarge = errors.New("export: image too large")

// ErrNoCells is returned when asked to export an empty cell set.
var ErrNoCells = errors.New("export: no cells")

// Options control the appearance of exported images.
// A nil *Options is valid and selects the defaults.
type Options struct {
	// CellSize is the edge length of one cell, in pixels for raster
	// images and in points for PDF.  PBM output ignores this and always
	// uses one pixel per cell.
	CellSize int

	// Fill is the colour of cells without an entry in Colors.
	// If this is nil, cells are black.
	Fill color.Color

	// Background is painted behind the cells.  If this is nil, the
	// background is transparent where the format allows this, and white
	// otherwise.
	Background color.Color

	// Colors optionally assigns individual colours to cells.
	Colors map[cells.Cell]color.Color

	// HideGrid disables the grid lines drawn between cells in SVG and PDF
	// output.
	HideGrid bool
}

func (o *Options) cellSize() int {
	if o == nil || o.CellSize <= 0 {
		return DefaultCellSize
	}
	return o.CellSize
}

func (o *Options) colorOf(c cells.Cell) color.Color {
	if o != nil {
		if col, ok := o.Colors[c]; ok && col != nil {
			return col
		}
		if o.Fill != nil {
			return o.Fill
		}
	}
	return color.Black
}

func (o *Options) background() color.Color {
	if o == nil {
		return nil
	}
	return o.Background
}

func (o *Options) showGrid() bool {
	return o == nil || !o.HideGrid
}

// layout is the common preprocessing of all writers.
type layout struct {
	cells      []cells.Cell // distinct, sorted
	minX, minY int
	w, h       int // in cells
}

func newLayout(cc []cells.Cell) (*layout, error) {
	uniq := cells.Unique(cc)
	box, ok := cells.Bounds(uniq)
	if !ok {
		return nil, ErrNoCells
	}
	return &layout{
		cells: uniq,
		minX:  int(box.LLx),
		minY:  int(box.LLy),
		w:     int(box.URx - box.LLx),
		h:     int(box.URy - box.LLy),
	}, nil
}

// checkSize returns [ErrTooLarge] if the bounding box, at size×size
// units per cell, covers more than [MaxPixels] units.
func (l *layout) checkSize(size int) error {
	if float64(l.w)*float64(l.h)*float64(size)*float64(size) > MaxPixels {
		return ErrTooLarge
	}
	return nil
}

// group is a set of cells sharing one colour.
type group struct {
	color color.Color
	cells []cells.Cell
}

// groups partitions the cells by colour.  Groups are ordered by the first
// cell of each colour.
func (l *layout) groups(opt *Options) []group {
	idx := make(map[color.RGBA64]int)
	var res []group
	for _, c := range l.cells {
		col := opt.colorOf(c)
		key := color.RGBA64Model.Convert(col).(color.RGBA64)
		i, ok := idx[key]
		if !ok {
			i = len(res)
			idx[key] = i
			res = append(res, group{color: col})
		}
		res[i].cells = append(res[i].cells, c)
	}
	return res
}

// Outline returns the boundary of the distinct cells in cc as a path in
// cell coordinates, one closed unit square per cell.
func Outline(cc []cells.Cell) path.Path {
	uniq := cells.Unique(cc)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, c := range uniq {
			x, y := float64(c.X), float64(c.Y)
			corners := [...]vec.Vec2{{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x, Y: y + 1}}
			for i, p := range corners {
				cmd := path.CmdLineTo
				if i == 0 {
					cmd = path.CmdMoveTo
				}
				buf[0] = p
				if !yield(cmd, buf[:]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}
