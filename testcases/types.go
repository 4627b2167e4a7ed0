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

// Package testcases holds a catalog of named shape configurations.  The
// catalog is used by the package tests and benchmarks, and by the
// commands which generate reference files.
package testcases

import (
	"seehuhn.de/go/cells"
	"seehuhn.de/go/cells/shapes"
)

// TestCase is a single shape configuration.
type TestCase struct {
	Name  string       // lowercase a-z, 0-9 and _ only
	Shape shapes.Shape // the shape to rasterize
}

// Cells rasterizes the shape.
func (tc TestCase) Cells() []cells.Cell {
	return tc.Shape.Cells()
}
