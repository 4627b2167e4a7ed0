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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Line rasterizes the segment from (x1, y1) to (x2, y2) by parametric
// stepping.  See [AppendLine].
func Line(x1, y1, x2, y2 float64) []Cell {
	return AppendLine(nil, x1, y1, x2, y2)
}

// LineBetween is like [Line], but takes the endpoints as vectors.
func LineBetween(p, q vec.Vec2) []Cell {
	return AppendLine(nil, p.X, p.Y, q.X, q.Y)
}

// AppendLine appends the cells of the segment from (x1, y1) to (x2, y2)
// to dst and returns the extended slice.
//
// The segment is divided into steps = max(|dx|, |dy|) equal increments
// and each sample is rounded to the nearest cell, giving floor(steps)+1
// cells in order from the first endpoint towards the second.  The
// endpoints need not be integers.  Consecutive samples may round to the
// same cell; such duplicates are kept.  A zero-length segment gives the
// single cell containing the endpoint.
func AppendLine(dst []Cell, x1, y1, x2, y2 float64) []Cell {
	if !finite(x1, y1, x2, y2) {
		return dst
	}

	dx := x2 - x1
	dy := y2 - y1
	steps := max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		return append(dst, Cell{round(x1), round(y1)})
	}

	sx := dx / steps
	sy := dy / steps
	n := int(math.Floor(steps)) + 1
	dst = slices.Grow(dst, n)
	for i := range n {
		t := float64(i)
		dst = append(dst, Cell{round(x1 + sx*t), round(y1 + sy*t)})
	}
	return dst
}

// AppendPolyline appends the cells of the line segments joining
// consecutive vertices.  If closed is true, the last vertex is joined
// back to the first.  Shared vertices appear once per segment.
func AppendPolyline(dst []Cell, verts []vec.Vec2, closed bool) []Cell {
	n := len(verts)
	if n == 0 {
		return dst
	}
	if n == 1 {
		return AppendLine(dst, verts[0].X, verts[0].Y, verts[0].X, verts[0].Y)
	}

	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		p := verts[i]
		q := verts[(i+1)%n]
		dst = AppendLine(dst, p.X, p.Y, q.X, q.Y)
	}
	return dst
}
