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

// RegularPolygon is a regular polygon inscribed in a circle.
type RegularPolygon struct {
	Sides    int     `toml:"sides"`    // [3, 16]
	Diameter float64 `toml:"diameter"` // [10, 500], of the circumcircle
	Rotation float64 `toml:"rotation"` // [0, 360], degrees
}

// DefaultRegularPolygon returns a pentagon of diameter 25.
func DefaultRegularPolygon() *RegularPolygon {
	return &RegularPolygon{Sides: 5, Diameter: 25}
}

// Kind implements the [Shape] interface.
func (RegularPolygon) Kind() Kind { return KindRegularPolygon }

// Clamp brings all parameters into their valid ranges.
func (p *RegularPolygon) Clamp() {
	p.Sides = clampInt(p.Sides, 3, 16)
	p.Diameter = clampFloat(p.Diameter, 10, 500)
	p.Rotation = clampFloat(p.Rotation, 0, 360)
}

// Vertices returns the corners of the polygon.  Vertex i lies at angle
// 2πi/sides plus the rotation.
func (p RegularPolygon) Vertices() []vec.Vec2 {
	if p.Sides <= 0 {
		return nil
	}
	radius := p.Diameter / 2
	rot := radians(p.Rotation)
	verts := make([]vec.Vec2, p.Sides)
	for i := range verts {
		verts[i] = polar(radius, float64(i)*2*math.Pi/float64(p.Sides)+rot)
	}
	return verts
}

// Cells implements the [Shape] interface.
func (p RegularPolygon) Cells() []cells.Cell {
	return cells.AppendPolyline(nil, p.Vertices(), true)
}

// Star is a star polygon whose vertices alternate between two radii.
type Star struct {
	Vertices  int     `toml:"vertices"`  // [3, 16], number of points
	Diameter1 float64 `toml:"diameter1"` // [0, 200], even vertices
	Diameter2 float64 `toml:"diameter2"` // [0, 200], odd vertices
	Rotation  float64 `toml:"rotation"`  // [0, 360], degrees
}

// DefaultStar returns a five-pointed star.
func DefaultStar() *Star {
	return &Star{Vertices: 5, Diameter1: 20, Diameter2: 40, Rotation: 72}
}

// Kind implements the [Shape] interface.
func (Star) Kind() Kind { return KindStar }

// Clamp brings all parameters into their valid ranges.
func (s *Star) Clamp() {
	s.Vertices = clampInt(s.Vertices, 3, 16)
	s.Diameter1 = clampFloat(s.Diameter1, 0, 200)
	s.Diameter2 = clampFloat(s.Diameter2, 0, 200)
	s.Rotation = clampFloat(s.Rotation, 0, 360)
}

// Corners returns the 2·Vertices corners of the star outline.
func (s Star) Corners() []vec.Vec2 {
	if s.Vertices <= 0 {
		return nil
	}
	n := 2 * s.Vertices
	rot := radians(s.Rotation)
	verts := make([]vec.Vec2, n)
	for i := range verts {
		radius := s.Diameter2 / 2
		if i%2 == 0 {
			radius = s.Diameter1 / 2
		}
		verts[i] = polar(radius, float64(i)*2*math.Pi/float64(s.Vertices)/2+rot)
	}
	return verts
}

// Cells implements the [Shape] interface.
func (s Star) Cells() []cells.Cell {
	return cells.AppendPolyline(nil, s.Corners(), true)
}

// Spirangle is a polygonal spiral: a regular polygon whose vertex radius
// grows linearly from the centre outwards.
type Spirangle struct {
	Sides    int     `toml:"sides"`    // [3, 10]
	Diameter float64 `toml:"diameter"` // [10, 500]
	Loops    int     `toml:"loops"`    // [2, 10]
	Rotation float64 `toml:"rotation"` // [0, 360], degrees
	Invert   bool    `toml:"invert"`   // mirror horizontally
}

// DefaultSpirangle returns a square spirangle with four loops.
func DefaultSpirangle() *Spirangle {
	return &Spirangle{Sides: 4, Diameter: 50, Loops: 4, Rotation: 30}
}

// Kind implements the [Shape] interface.
func (Spirangle) Kind() Kind { return KindSpirangle }

// Clamp brings all parameters into their valid ranges.
func (s *Spirangle) Clamp() {
	s.Sides = clampInt(s.Sides, 3, 10)
	s.Diameter = clampFloat(s.Diameter, 10, 500)
	s.Loops = clampInt(s.Loops, 2, 10)
	s.Rotation = clampFloat(s.Rotation, 0, 360)
}

// Vertices returns the sides·loops vertices of the spiral, starting at
// the centre.  Vertex k has radius k·(diameter/2)/(sides·loops).
func (s Spirangle) Vertices() []vec.Vec2 {
	if s.Sides <= 0 || s.Loops <= 0 {
		return nil
	}
	n := s.Sides * s.Loops
	step := s.Diameter / 2 / float64(n)
	rot := radians(s.Rotation)
	verts := make([]vec.Vec2, 0, n)
	for k := range n {
		j := k % s.Sides
		v := polar(step*float64(k), float64(j)*2*math.Pi/float64(s.Sides)+rot)
		if s.Invert {
			v.X = -v.X
		}
		verts = append(verts, v)
	}
	return verts
}

// Cells implements the [Shape] interface.
func (s Spirangle) Cells() []cells.Cell {
	return cells.AppendPolyline(nil, s.Vertices(), false)
}
