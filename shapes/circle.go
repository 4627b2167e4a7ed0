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

import "seehuhn.de/go/cells"

// Circle is a discrete circle, optionally several cells thick.
type Circle struct {
	Diameter  int `toml:"diameter"`  // [1, 500]
	Thickness int `toml:"thickness"` // [1, 10]

	// RadiusOffset is added to the radius on top of
	// [cells.DefaultCircleCorrection].  Values far from zero can change
	// the apparent diameter.
	RadiusOffset float64 `toml:"radius_offset"` // [-0.5, 0.5]
}

// DefaultCircle returns a circle with default parameters.
func DefaultCircle() *Circle {
	return &Circle{Diameter: 11, Thickness: 1}
}

// Kind implements the [Shape] interface.
func (Circle) Kind() Kind { return KindCircle }

// Clamp brings all parameters into their valid ranges.
func (c *Circle) Clamp() {
	c.Diameter = clampInt(c.Diameter, 1, 500)
	c.Thickness = clampInt(c.Thickness, 1, 10)
	c.RadiusOffset = clampFloat(c.RadiusOffset, -0.5, 0.5)
}

// Cells implements the [Shape] interface.
func (c Circle) Cells() []cells.Cell {
	opt := cells.CircleOptions{
		Thickness:    c.Thickness,
		Correction:   cells.DefaultCircleCorrection + c.RadiusOffset,
		ParityOffset: true,
	}
	return cells.Circle(0, 0, c.Diameter, &opt)
}
