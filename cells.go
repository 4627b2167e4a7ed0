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

// Package cells converts continuous geometry into sets of integer grid
// cells, for planning block-based builds in a "pixel art" style.
//
// The rasterizers in this package are pure functions.  Each comes in two
// forms: a convenience form returning a fresh slice, and an Append form
// which appends to a caller-supplied slice so that buffers can be reused
// across calls.  No function in this package panics or returns an error;
// degenerate input produces empty (or single-cell) output.
package cells

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
)

// Cell identifies one unit square of the grid.
// Cells are comparable and can be used directly as map keys.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Compare orders cells by row (Y) first, then by column (X).
func Compare(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// Unique returns the distinct cells of cc, sorted by [Compare].
// Rasterizers may emit the same cell more than once; Unique gives the
// set view used by renderers and exporters.  The input is not modified.
func Unique(cc []Cell) []Cell {
	res := slices.Clone(cc)
	slices.SortFunc(res, Compare)
	return slices.Compact(res)
}

// Bounds returns the bounding box of cc in cell units.  The box covers
// the unit squares of all cells, so it spans minX..maxX+1 horizontally
// and minY..maxY+1 vertically.  The second return value is false if cc
// is empty.
func Bounds(cc []Cell) (rect.Rect, bool) {
	if len(cc) == 0 {
		return rect.Rect{}, false
	}
	xMin, xMax := cc[0].X, cc[0].X
	yMin, yMax := cc[0].Y, cc[0].Y
	for _, c := range cc[1:] {
		xMin = min(xMin, c.X)
		xMax = max(xMax, c.X)
		yMin = min(yMin, c.Y)
		yMax = max(yMax, c.Y)
	}
	return rect.Rect{
		LLx: float64(xMin),
		LLy: float64(yMin),
		URx: float64(xMax + 1),
		URy: float64(yMax + 1),
	}, true
}

// round maps a real coordinate to the nearest grid position.
// Halves are rounded towards +∞, so that consecutive samples -0.5 and
// 0.5 land in adjacent cells.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// finite reports whether none of the arguments is NaN or infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
