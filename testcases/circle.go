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

// circleCases cover both diameter parities, the smallest diameters and
// thick rings.
var circleCases = []TestCase{
	{Name: "d1", Shape: &shapes.Circle{Diameter: 1, Thickness: 1}},
	{Name: "d2", Shape: &shapes.Circle{Diameter: 2, Thickness: 1}},
	{Name: "d3", Shape: &shapes.Circle{Diameter: 3, Thickness: 1}},
	{Name: "d4", Shape: &shapes.Circle{Diameter: 4, Thickness: 1}},
	{Name: "d11", Shape: shapes.DefaultCircle()},
	{Name: "d12", Shape: &shapes.Circle{Diameter: 12, Thickness: 1}},
	{Name: "d25_thick3", Shape: &shapes.Circle{Diameter: 25, Thickness: 3}},
	{Name: "d40_thick10", Shape: &shapes.Circle{Diameter: 40, Thickness: 10}},

	// The radius offset moves the circle between neighbouring raster
	// patterns of the same diameter.
	{Name: "d21_offset_neg", Shape: &shapes.Circle{Diameter: 21, Thickness: 1, RadiusOffset: -0.4}},
	{Name: "d21_offset_pos", Shape: &shapes.Circle{Diameter: 21, Thickness: 1, RadiusOffset: 0.4}},
}
