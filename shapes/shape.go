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

// Package shapes implements parametric shape generators on top of the
// rasterizers in [seehuhn.de/go/cells].
//
// Every shape is a plain struct holding its parameters.  The caller owns
// the struct; [Shape.Cells] is a pure function of the parameter values
// and returns the same cells, in the same order, every time.  Parameter
// ranges are not checked by Cells.  Use the Clamp methods (or [Decode],
// which calls them) to bring values into the ranges the generators were
// designed for.
package shapes

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/cells"
)

// Shape is a parametric shape which can be rasterized.
type Shape interface {
	// Kind identifies the shape variant.
	Kind() Kind

	// Cells returns the rasterized shape, centred on the origin.
	// The result may contain repeated cells.
	Cells() []cells.Cell
}

// Kind names a shape variant.  The values are used in configuration files
// and on the command line.
type Kind string

// These are the supported shape variants.
const (
	KindCircle            Kind = "circle"
	KindRegularPolygon    Kind = "regular-polygon"
	KindReuleauxPolygon   Kind = "reuleaux-polygon"
	KindSuperellipse      Kind = "superellipse"
	KindArchimedeanSpiral Kind = "archimedean-spiral"
	KindStar              Kind = "star"
	KindSpirangle         Kind = "spirangle"
	KindRectangle         Kind = "rectangle"
)

// ErrUnknownKind is returned when a shape kind is not recognised.
var ErrUnknownKind = errors.New("shapes: unknown shape kind")

var defaults = map[Kind]func() Shape{
	KindCircle:            func() Shape { return DefaultCircle() },
	KindRegularPolygon:    func() Shape { return DefaultRegularPolygon() },
	KindReuleauxPolygon:   func() Shape { return DefaultReuleauxPolygon() },
	KindSuperellipse:      func() Shape { return DefaultSuperellipse() },
	KindArchimedeanSpiral: func() Shape { return DefaultArchimedeanSpiral() },
	KindStar:              func() Shape { return DefaultStar() },
	KindSpirangle:         func() Shape { return DefaultSpirangle() },
	KindRectangle:         func() Shape { return DefaultRectangle() },
}

// Kinds returns all shape kinds in alphabetical order.
func Kinds() []Kind {
	res := make([]Kind, 0, len(defaults))
	for k := range defaults {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// New returns a pointer to a shape of the given kind, initialised with
// default parameters.
func New(kind Kind) (Shape, error) {
	mk, ok := defaults[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return mk(), nil
}

// clamper is implemented by the pointer types of all shapes.
type clamper interface {
	Clamp()
}

// polar returns the point at distance r from the origin in direction
// angle (radians).
func polar(r, angle float64) vec.Vec2 {
	return vec.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}

// round is the rounding of [cells.Line]: halves go towards +∞.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return max(lo, min(v, hi))
}
