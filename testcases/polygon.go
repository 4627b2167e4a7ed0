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

package testcases

import "seehuhn.de/go/cells/shapes"

var polygonCases = []TestCase{
	{Name: "triangle", Shape: &shapes.RegularPolygon{Sides: 3, Diameter: 30}},
	{Name: "square", Shape: &shapes.RegularPolygon{Sides: 4, Diameter: 20}},
	{Name: "square_rotated", Shape: &shapes.RegularPolygon{Sides: 4, Diameter: 20, Rotation: 45}},
	{Name: "pentagon", Shape: shapes.DefaultRegularPolygon()},
	{Name: "hexadecagon", Shape: &shapes.RegularPolygon{Sides: 16, Diameter: 60, Rotation: 11.25}},

	{Name: "star5", Shape: shapes.DefaultStar()},
	{Name: "star8_spiky", Shape: &shapes.Star{Vertices: 8, Diameter1: 10, Diameter2: 80}},
	{Name: "star3_inverted", Shape: &shapes.Star{Vertices: 3, Diameter1: 60, Diameter2: 20, Rotation: 90}},

	{Name: "rectangle", Shape: shapes.DefaultRectangle()},
	{Name: "rectangle_axis", Shape: &shapes.Rectangle{Width: 12, Height: 7}},
	{Name: "rectangle_odd", Shape: &shapes.Rectangle{Width: 15, Height: 25}},
	{Name: "rectangle_thin", Shape: &shapes.Rectangle{Width: 4, Height: 60, Rotation: 80}},
}
