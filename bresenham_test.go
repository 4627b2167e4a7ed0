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

package cells

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBresenhamLine(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []Cell
	}{
		{"point", 3, 3, 3, 3, []Cell{{3, 3}}},
		{"shallow", 0, 0, 5, 2, []Cell{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}},
		{"vertical_up", 1, 2, 1, -1, []Cell{{1, 2}, {1, 1}, {1, 0}, {1, -1}}},
		{"diagonal_back", 0, 0, -3, -3, []Cell{{0, 0}, {-1, -1}, {-2, -2}, {-3, -3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BresenhamLine(tc.x0, tc.y0, tc.x1, tc.y1)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestBresenhamProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 2000 {
		x0, y0 := rng.IntN(121)-60, rng.IntN(121)-60
		x1, y1 := rng.IntN(121)-60, rng.IntN(121)-60

		got := BresenhamLine(x0, y0, x1, y1)

		want := max(abs(x1-x0), abs(y1-y0)) + 1
		if len(got) != want {
			t.Fatalf("(%d,%d)-(%d,%d): %d cells, want %d", x0, y0, x1, y1, len(got), want)
		}
		if got[0] != (Cell{x0, y0}) || got[len(got)-1] != (Cell{x1, y1}) {
			t.Fatalf("(%d,%d)-(%d,%d): endpoints %v, %v", x0, y0, x1, y1, got[0], got[len(got)-1])
		}
		seen := make(map[Cell]bool, len(got))
		for i, c := range got {
			if seen[c] {
				t.Fatalf("(%d,%d)-(%d,%d): duplicate cell %v", x0, y0, x1, y1, c)
			}
			seen[c] = true
			if i > 0 {
				p := got[i-1]
				if abs(c.X-p.X) > 1 || abs(c.Y-p.Y) > 1 || c == p {
					t.Fatalf("(%d,%d)-(%d,%d): %v does not follow %v", x0, y0, x1, y1, c, p)
				}
			}
		}
	}
}

func TestFilledRect(t *testing.T) {
	got := FilledRect(2, 3, 0, 1)
	want := []Cell{
		{0, 1}, {0, 2}, {0, 3},
		{1, 1}, {1, 2}, {1, 3},
		{2, 1}, {2, 2}, {2, 3},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}

	if got := FilledRect(5, 5, 5, 5); len(got) != 1 {
		t.Errorf("single cell rectangle: %v", got)
	}
	if got := FilledRect(-2, 0, 2, 9); len(got) != 5*10 {
		t.Errorf("5×10 rectangle: %d cells", len(got))
	}

	// corners at the end of the int range
	got = FilledRect(math.MaxInt, math.MinInt, math.MaxInt-1, math.MinInt+2)
	want = []Cell{
		{math.MaxInt - 1, math.MinInt}, {math.MaxInt - 1, math.MinInt + 1}, {math.MaxInt - 1, math.MinInt + 2},
		{math.MaxInt, math.MinInt}, {math.MaxInt, math.MinInt + 1}, {math.MaxInt, math.MinInt + 2},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("extreme corners (-want +got):\n%s", d)
	}
}

func TestRectCells(t *testing.T) {
	cases := []struct {
		xMin, xMax, yMin, yMax int
		n                      int
		ok                     bool
	}{
		{0, 0, 0, 0, 1, true},
		{-1, 1, -2, 2, 15, true},
		{math.MaxInt - 1, math.MaxInt, 0, 0, 2, true},
		{math.MinInt, math.MaxInt, 0, 0, 0, false},
		{0, 1 << 32, 0, 1 << 32, 0, false},
		{0, math.MaxInt / 2, 0, 1, 0, false},
		{0, math.MaxInt/2 - 1, 0, 1, math.MaxInt/2*2, true},
	}
	for _, tc := range cases {
		n, ok := rectCells(tc.xMin, tc.xMax, tc.yMin, tc.yMax)
		if ok != tc.ok || (ok && n != tc.n) {
			t.Errorf("rectCells(%d, %d, %d, %d) = %d, %t", tc.xMin, tc.xMax, tc.yMin, tc.yMax, n, ok)
		}
	}
}
