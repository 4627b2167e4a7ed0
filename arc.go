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

import "math"

// Arc rasterizes a circular arc.  See [AppendArc].
func Arc(cx, cy, radius, startAngle, endAngle float64) []Cell {
	return AppendArc(nil, cx, cy, radius, startAngle, endAngle)
}

// AppendArc appends the cells of the circular arc with centre (cx, cy)
// and the given radius, for angles in [startAngle, endAngle) (radians).
//
// The angle advances by 1/radius per sample, so that consecutive samples
// are about one cell apart whatever the radius.  Repeated cells are not
// removed.  Nothing is emitted if radius <= 0 or endAngle <= startAngle.
func AppendArc(dst []Cell, cx, cy, radius, startAngle, endAngle float64) []Cell {
	if !finite(cx, cy, radius, startAngle, endAngle) || radius <= 0 {
		return dst
	}

	step := 1 / radius
	n := int(math.Ceil((endAngle - startAngle) / step))
	if n <= 0 {
		return dst
	}
	for i := range n {
		theta := startAngle + float64(i)*step
		if theta >= endAngle {
			break
		}
		dst = append(dst, Cell{
			X: round(cx + radius*math.Cos(theta)),
			Y: round(cy + radius*math.Sin(theta)),
		})
	}
	return dst
}
