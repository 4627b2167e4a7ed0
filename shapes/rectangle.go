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

package shapes

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cells"
)

// Rectangle is the outline of a rectangle centred on the origin,
// rotated about its centre.
type Rectangle struct {
	Width    float64 `toml:"width"`    // [4, 500]
	Height   float64 `toml:"height"`   // [4, 500]
	Rotation float64 `toml:"rotation"` // [0, 360], degrees
}

// DefaultRectangle returns a 15×25 rectangle rotated by 30°.
func DefaultRectangle() *Rectangle {
	return &Rectangle{Width: 15, Height: 25, Rotation: 30}
}

// Kind implements the [Shape] interface.
func (Rectangle) Kind() Kind { return KindRectangle }

// Clamp brings all parameters into their valid ranges.
func (r *Rectangle) Clamp() {
	r.Width = clampFloat(r.Width, 4, 500)
	r.Height = clampFloat(r.Height, 4, 500)
	r.Rotation = clampFloat(r.Rotation, 0, 360)
}

// Corners returns the four rotated corners, starting with the one at
// (-w/2, -h/2) before rotation.
func (r Rectangle) Corners() []vec.Vec2 {
	a := r.Width / 2
	b := r.Height / 2
	m := matrix.RotateDeg(r.Rotation)
	return []vec.Vec2{
		apply(m, vec.Vec2{X: -a, Y: -b}),
		apply(m, vec.Vec2{X: a, Y: -b}),
		apply(m, vec.Vec2{X: a, Y: b}),
		apply(m, vec.Vec2{X: -a, Y: b}),
	}
}

// Cells implements the [Shape] interface.
func (r Rectangle) Cells() []cells.Cell {
	return cells.AppendPolyline(nil, r.Corners(), true)
}

// apply maps v through the affine transformation m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
