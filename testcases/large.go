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

// largeCases use parameters at the upper end of the valid ranges.
var largeCases = []TestCase{
	{Name: "circle", Shape: &shapes.Circle{Diameter: 500, Thickness: 1}},
	{Name: "circle_thick", Shape: &shapes.Circle{Diameter: 499, Thickness: 10}},
	{Name: "polygon", Shape: &shapes.RegularPolygon{Sides: 16, Diameter: 500}},
	{Name: "reuleaux", Shape: &shapes.ReuleauxPolygon{Sides: 7, Diameter: 500}},
	{Name: "superellipse", Shape: &shapes.Superellipse{Width: 500, Height: 300, Exponent: 3}},
	{Name: "spirangle", Shape: &shapes.Spirangle{Sides: 10, Diameter: 500, Loops: 10}},
	{Name: "rectangle", Shape: &shapes.Rectangle{Width: 500, Height: 500, Rotation: 30}},
}
