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
	"math"

	"seehuhn.de/go/cells"
)

// ArchimedeanSpiral is the spiral r = a·θ, with a chosen so that the
// outermost point lies on a circle of the given diameter.
type ArchimedeanSpiral struct {
	Loops    float64 `toml:"loops"`    // [0.5, 10]
	Diameter float64 `toml:"diameter"` // [4, 200]
	Rotation float64 `toml:"rotation"` // [0, 360], degrees
}

// DefaultArchimedeanSpiral returns a three-loop spiral of diameter 25.
func DefaultArchimedeanSpiral() *ArchimedeanSpiral {
	return &ArchimedeanSpiral{Loops: 3, Diameter: 25}
}

// Kind implements the [Shape] interface.
func (ArchimedeanSpiral) Kind() Kind { return KindArchimedeanSpiral }

// Clamp brings all parameters into their valid ranges.
func (s *ArchimedeanSpiral) Clamp() {
	s.Loops = clampFloat(s.Loops, 0.5, 10)
	s.Diameter = clampFloat(s.Diameter, 4, 200)
	s.Rotation = clampFloat(s.Rotation, 0, 360)
}

// Cells implements the [Shape] interface.
//
// The spiral is traced inwards, from θ = 2π·loops down to 0.  At radius r
// the angle decreases by 1/r, which keeps consecutive samples about one
// cell apart.  A sample which rounds to the same cell as its predecessor
// is dropped.
func (s ArchimedeanSpiral) Cells() []cells.Cell {
	a := s.Diameter / (4 * s.Loops * math.Pi)
	if !(a > 0) || math.IsInf(a, 0) {
		return nil
	}
	rot := radians(s.Rotation)

	var res []cells.Cell
	last := cells.Cell{X: math.MinInt, Y: math.MinInt}
	for theta := s.Loops * 2 * math.Pi; theta > 0; {
		radius := a * theta
		c := cells.Cell{
			X: round(radius * math.Cos(theta+rot)),
			Y: round(radius * math.Sin(theta+rot)),
		}
		theta -= 1 / radius
		if c == last {
			continue
		}
		res = append(res, c)
		last = c
	}
	return res
}
