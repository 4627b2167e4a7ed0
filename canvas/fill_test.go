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

package canvas

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/cells"
)

// borderedSquare returns a canvas with a stone border around the 3×3
// empty square (0,0)-(2,2).
func borderedSquare() *Canvas {
	c := New()
	for i := -1; i <= 3; i++ {
		for _, cell := range []cells.Cell{{X: i, Y: -1}, {X: i, Y: 3}, {X: -1, Y: i}, {X: 3, Y: i}} {
			c.Set(cell.X, cell.Y, stone, Structures)
		}
	}
	return c
}

func TestFillBordered(t *testing.T) {
	c := borderedSquare()
	border := c.Snapshot().Len()

	res := c.FloodFill(1, 1, grass, Terrain, 0)
	if res.Filled != 9 || res.Truncated {
		t.Fatalf("got %+v, want 9 filled cells", res)
	}
	s := c.Snapshot()
	for x := range 3 {
		for y := range 3 {
			p, ok := s.Get(x, y)
			if !ok || p.BlockID != "grass" || p.Layer != Terrain {
				t.Errorf("(%d,%d): got %+v", x, y, p)
			}
		}
	}
	if n := len(s.ByLayer(Structures)); n != border {
		t.Errorf("border has %d pixels, want %d", n, border)
	}
	if s.Has(-2, 1) || s.Has(4, 1) {
		t.Error("fill leaked outside the border")
	}
}

func TestFillReplacesColour(t *testing.T) {
	c := borderedSquare()
	res := c.FloodFill(-1, -1, water, Markers, 0)
	if res.Filled != 16 {
		t.Errorf("got %+v, want the 16 border cells", res)
	}
	for _, p := range c.Snapshot().Pixels() {
		if p.BlockID != "water" || p.Layer != Markers {
			t.Errorf("pixel %+v was not refilled", p)
		}
	}
}

func TestFillSameColourIsNoop(t *testing.T) {
	c := borderedSquare()
	before := c.Snapshot()
	res := c.FloodFill(-1, 0, stone, Terrain, 0)
	if res != (FillResult{}) {
		t.Errorf("got %+v, want zero result", res)
	}
	if c.Snapshot() != before {
		t.Error("no-op fill published a new snapshot")
	}
}

func TestFillComparesColourNotBlock(t *testing.T) {
	c := New()
	// same colour, different block
	c.Set(0, 0, Block{ID: "spruce_planks", Color: "#6B5034"}, Terrain)
	c.Set(1, 0, Block{ID: "oak_log", Color: "#6B5034"}, Terrain)
	c.Set(2, 0, stone, Terrain)

	res := c.FloodFill(0, 0, grass, Terrain, 0)
	if res.Filled != 2 {
		t.Errorf("got %+v, want 2 filled cells", res)
	}
	if p, _ := c.Snapshot().Get(2, 0); p.BlockID != "stone" {
		t.Errorf("fill crossed into a different colour: %+v", p)
	}
}

func TestFillIterationLimit(t *testing.T) {
	var buf bytes.Buffer
	cells.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { cells.SetLogger(nil) })

	for _, limit := range []int{1, 10, 57, 500} {
		c := New()
		res := c.FloodFill(0, 0, grass, Terrain, limit)
		if res.Visited != limit || res.Filled != limit || !res.Truncated {
			t.Errorf("limit %d: got %+v", limit, res)
		}
		if n := c.Snapshot().Len(); n != limit {
			t.Errorf("limit %d: canvas has %d pixels", limit, n)
		}
	}
	if !strings.Contains(buf.String(), "flood fill truncated") {
		t.Errorf("no warning logged: %q", buf.String())
	}
}

func TestFillDefaultLimit(t *testing.T) {
	c := New()
	res := c.FloodFill(0, 0, grass, Terrain, -1)
	if res.Filled != DefaultMaxIterations || !res.Truncated {
		t.Errorf("got %+v", res)
	}
}

func TestFillExactLimitNotTruncated(t *testing.T) {
	// The 3×3 region plus its 12 border neighbours are 21 distinct cells.
	c := borderedSquare()
	res := c.FloodFill(1, 1, grass, Terrain, 21)
	if res.Filled != 9 || res.Visited != 21 || res.Truncated {
		t.Errorf("got %+v", res)
	}
}

func TestFillLimitReachedOnBoundary(t *testing.T) {
	var buf bytes.Buffer
	cells.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { cells.SetLogger(nil) })

	// Breadth first from the centre, the whole 3×3 region is found
	// within 13 cells.  Only border cells are still queued then.
	c := borderedSquare()
	res := c.FloodFill(1, 1, grass, Terrain, 13)
	if res.Filled != 9 || res.Visited != 13 || res.Truncated {
		t.Errorf("got %+v", res)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}

	c = borderedSquare()
	res = c.FloodFill(1, 1, grass, Terrain, 10)
	if res.Filled != 8 || !res.Truncated {
		t.Errorf("limit 10: got %+v", res)
	}
}

func TestFillIdempotent(t *testing.T) {
	c := borderedSquare()
	c.FloodFill(0, 0, grass, Terrain, 0)
	after := c.Snapshot()
	c.FloodFill(0, 0, grass, Terrain, 0)
	if c.Snapshot() != after {
		t.Error("second fill modified the canvas")
	}
}
