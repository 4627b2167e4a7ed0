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

// curveCases contain shapes built from curved pieces.
var curveCases = []TestCase{
	{Name: "reuleaux_triangle", Shape: shapes.DefaultReuleauxPolygon()},
	{Name: "reuleaux_pentagon", Shape: &shapes.ReuleauxPolygon{Sides: 5, Diameter: 50, Rotation: 18}},
	{Name: "reuleaux_11", Shape: &shapes.ReuleauxPolygon{Sides: 11, Diameter: 120}},

	{Name: "squircle", Shape: shapes.DefaultSuperellipse()},
	{Name: "ellipse", Shape: &shapes.Superellipse{Width: 41, Height: 21, Exponent: 2}},
	{Name: "ellipse_even", Shape: &shapes.Superellipse{Width: 40, Height: 20, Exponent: 2}},
	{Name: "astroid", Shape: &shapes.Superellipse{Width: 31, Height: 31, Exponent: 0.5}},
	{Name: "almost_square", Shape: &shapes.Superellipse{Width: 24, Height: 24, Exponent: 10}},
}
