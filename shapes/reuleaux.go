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

// ReuleauxPolygon is a curve of constant width built from circular arcs.
// Each arc is centred on a vertex of the underlying regular polygon and
// passes through the opposite vertices.
type ReuleauxPolygon struct {
	Sides    int     `toml:"sides"`    // odd, [3, 11]
	Diameter float64 `toml:"diameter"` // [10, 500], of the circumcircle
	Rotation float64 `toml:"rotation"` // [0, 360], degrees
}

// ArcSpec describes one circular arc.  Angles are in radians.
type ArcSpec struct {
	Center     vec.Vec2
	Radius     float64
	Start, End float64
}

// DefaultReuleauxPolygon returns a Reuleaux triangle.
func DefaultReuleauxPolygon() *ReuleauxPolygon {
	return &ReuleauxPolygon{Sides: 3, Diameter: 30}
}

// Kind implements the [Shape] interface.
func (ReuleauxPolygon) Kind() Kind { return KindReuleauxPolygon }

// Clamp brings all parameters into their valid ranges.
// Even side counts are rounded up to the next odd number.
func (p *ReuleauxPolygon) Clamp() {
	p.Sides = clampInt(p.Sides, 3, 11)
	if p.Sides%2 == 0 {
		p.Sides++
	}
	p.Diameter = clampFloat(p.Diameter, 10, 500)
	p.Rotation = clampFloat(p.Rotation, 0, 360)
}

// Arcs returns one arc per side.
//
// With θ = 2π/sides and r = diameter/2, arc i is centred on the vertex at
// angle iθ + rotation, has radius sqrt(2r²(1 - cos(θ·⌊sides/2⌋))), which
// is the distance to the opposite vertices, and spans θ/2 around the
// direction pointing back through the centre.
func (p ReuleauxPolygon) Arcs() []ArcSpec {
	if p.Sides <= 0 {
		return nil
	}
	theta := 2 * math.Pi / float64(p.Sides)
	r := p.Diameter / 2
	arcRadius := math.Sqrt(2 * r * r * (1 - math.Cos(theta*float64(p.Sides/2))))
	rot := radians(p.Rotation)

	arcs := make([]ArcSpec, p.Sides)
	for i := range arcs {
		angle := float64(i)*theta + rot
		base := angle + math.Pi
		arcs[i] = ArcSpec{
			Center: polar(r, angle),
			Radius: arcRadius,
			Start:  base - theta/4,
			End:    base + theta/4,
		}
	}
	return arcs
}

// Cells implements the [Shape] interface.
func (p ReuleauxPolygon) Cells() []cells.Cell {
	var res []cells.Cell
	for _, a := range p.Arcs() {
		res = cells.AppendArc(res, a.Center.X, a.Center.Y, a.Radius, a.Start, a.End)
	}
	return res
}
