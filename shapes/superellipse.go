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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cells"
)

// Superellipse is the Lamé curve |x/a|^n + |y/b|^n = 1, with a and b half
// the width and height.  Exponent 2 gives an ellipse; larger exponents
// approach a rectangle, smaller ones a four-pointed star.
type Superellipse struct {
	Width    int     `toml:"width"`    // [4, 500]
	Height   int     `toml:"height"`   // [4, 500]
	Exponent float64 `toml:"exponent"` // [0.1, 10]
}

// DefaultSuperellipse returns a 31×31 "squircle".
func DefaultSuperellipse() *Superellipse {
	return &Superellipse{Width: 31, Height: 31, Exponent: 4}
}

// Kind implements the [Shape] interface.
func (Superellipse) Kind() Kind { return KindSuperellipse }

// Clamp brings all parameters into their valid ranges.
func (s *Superellipse) Clamp() {
	s.Width = clampInt(s.Width, 4, 500)
	s.Height = clampInt(s.Height, 4, 500)
	s.Exponent = clampFloat(s.Exponent, 0.1, 10)
}

// Cells implements the [Shape] interface.
//
// One quadrant is computed in two passes: the first steps along x and
// solves for y, the second steps along y and solves for x, so that both
// the flat and the steep part of the curve are closed.  The points where
// the curve meets the axes are added explicitly.  Each quadrant point is
// then mirrored into the other three quadrants.  Even widths and heights
// centre the curve between two cells.
func (s Superellipse) Cells() []cells.Cell {
	n := s.Exponent
	if s.Width <= 0 || s.Height <= 0 || !(n > 0) {
		return nil
	}

	a := float64(s.Width) / 2
	b := float64(s.Height) / 2
	var cx, cy float64
	if s.Width%2 == 0 {
		cx = 0.5
	}
	if s.Height%2 == 0 {
		cy = 0.5
	}
	right := math.Trunc(cx + a)
	bottom := math.Trunc(cy + b)

	var quadrant []vec.Vec2
	for x := cx + 1; x < right; x++ {
		y := math.Round(lame(b, x/a, n)) - cy
		quadrant = append(quadrant, vec.Vec2{X: x, Y: max(cy, min(y, bottom))})
	}
	quadrant = append(quadrant, vec.Vec2{X: cx, Y: bottom - cy})
	for y := cy + 1; y < bottom; y++ {
		x := math.Round(lame(a, y/b, n)) - cx
		quadrant = append(quadrant, vec.Vec2{X: max(cx, min(x, right)), Y: y})
	}
	quadrant = append(quadrant, vec.Vec2{X: right - cx, Y: cy})

	res := make([]cells.Cell, 0, 4*len(quadrant))
	for _, p := range quadrant {
		res = append(res,
			cell(cx+p.X, cy+p.Y),
			cell(cx-p.X, cy+p.Y),
			cell(cx+p.X, cy-p.Y),
			cell(cx-p.X, cy-p.Y),
		)
	}
	return res
}

// lame solves the superellipse equation for the second coordinate:
// it returns r·(1 - |t|^n)^(1/n).
func lame(r, t, n float64) float64 {
	base := max(1-math.Pow(math.Abs(t), n), 0)
	return r * math.Pow(base, 1/n)
}

// cell converts a point with integer coordinates to a Cell.
func cell(x, y float64) cells.Cell {
	return cells.Cell{X: int(math.Round(x)), Y: int(math.Round(y))}
}
