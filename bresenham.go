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

package cells

import (
	"math"
	"math/bits"
	"slices"
)

// The functions in this file serve the interactive drawing tools, whose
// endpoints are always cell coordinates.  The shape generators use
// [AppendLine] instead; the two give different cells for some slopes.

// BresenhamLine returns the Bresenham path between two cells.
// See [AppendBresenhamLine].
func BresenhamLine(x0, y0, x1, y1 int) []Cell {
	return AppendBresenhamLine(nil, x0, y0, x1, y1)
}

// AppendBresenhamLine appends the 8-connected Bresenham path from
// (x0, y0) to (x1, y1), both endpoints included.  The path has exactly
// max(|dx|, |dy|)+1 cells and no duplicates.
func AppendBresenhamLine(dst []Cell, x0, y0, x1, y1 int) []Cell {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	dst = slices.Grow(dst, max(dx, dy)+1)

	err := dx - dy
	x, y := x0, y0
	for {
		dst = append(dst, Cell{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return dst
}

// FilledRect returns all cells of the rectangle spanned by two corners.
// See [AppendFilledRect].
func FilledRect(x0, y0, x1, y1 int) []Cell {
	return AppendFilledRect(nil, x0, y0, x1, y1)
}

// AppendFilledRect appends every cell in minX..maxX × minY..maxY, where
// the bounds are taken from the two (inclusive) corners in any order.
// Cells are emitted column by column.
func AppendFilledRect(dst []Cell, x0, y0, x1, y1 int) []Cell {
	xMin, xMax := min(x0, x1), max(x0, x1)
	yMin, yMax := min(y0, y1), max(y0, y1)

	if n, ok := rectCells(xMin, xMax, yMin, yMax); ok {
		dst = slices.Grow(dst, n)
	}
	for x := xMin; ; x++ {
		for y := yMin; ; y++ {
			dst = append(dst, Cell{x, y})
			if y == yMax {
				break
			}
		}
		if x == xMax {
			break
		}
	}
	return dst
}

// rectCells returns the number of cells in xMin..xMax × yMin..yMax.
// The second return value is false if the count does not fit in an int.
func rectCells(xMin, xMax, yMin, yMax int) (int, bool) {
	w := uint64(xMax) - uint64(xMin) + 1
	h := uint64(yMax) - uint64(yMin) + 1
	if w == 0 || h == 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(w, h)
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
