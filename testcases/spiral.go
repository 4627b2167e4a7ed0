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

var spiralCases = []TestCase{
	{Name: "archimedean", Shape: shapes.DefaultArchimedeanSpiral()},
	{Name: "archimedean_half_loop", Shape: &shapes.ArchimedeanSpiral{Loops: 0.5, Diameter: 40}},
	{Name: "archimedean_tight", Shape: &shapes.ArchimedeanSpiral{Loops: 10, Diameter: 200, Rotation: 90}},

	{Name: "spirangle", Shape: shapes.DefaultSpirangle()},
	{Name: "spirangle_triangle", Shape: &shapes.Spirangle{Sides: 3, Diameter: 80, Loops: 5}},
	{Name: "spirangle_inverted", Shape: &shapes.Spirangle{Sides: 6, Diameter: 100, Loops: 3, Rotation: 15, Invert: true}},
}
