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
	"seehuhn.de/go/geom/vec"
)

func TestLine(t *testing.T) {
	cases := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           []Cell
	}{
		{
			name: "horizontal",
			x1:   0, y1: 0, x2: 5, y2: 0,
			want: []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}},
		},
		{
			name: "diagonal",
			x1:   0, y1: 0, x2: 3, y2: -3,
			want: []Cell{{0, 0}, {1, -1}, {2, -2}, {3, -3}},
		},
		{
			name: "reversed",
			x1:   2, y1: 4, x2: 2, y2: 1,
			want: []Cell{{2, 4}, {2, 3}, {2, 2}, {2, 1}},
		},
		{
			name: "half_coordinates",
			x1:   0.5, y1: 0, x2: 2.5, y2: 1,
			want: []Cell{{1, 0}, {2, 1}, {3, 1}},
		},
		{
			name: "crosses_zero_on_halves",
			x1:   -2.5, y1: 0, x2: 2.5, y2: 0,
			want: []Cell{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name: "zero_length",
			x1:   2.4, y1: -3.6, x2: 2.4, y2: -3.6,
			want: []Cell{{2, -4}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Line(tc.x1, tc.y1, tc.x2, tc.y2)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("Line(%g, %g, %g, %g) mismatch (-want +got):\n%s",
					tc.x1, tc.y1, tc.x2, tc.y2, d)
			}
		})
	}
}

// TestLineProperties checks cell count, endpoints and continuity for
// segments between integer points.
func TestLineProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		x1 := float64(rng.IntN(201) - 100)
		y1 := float64(rng.IntN(201) - 100)
		x2 := float64(rng.IntN(201) - 100)
		y2 := float64(rng.IntN(201) - 100)

		got := Line(x1, y1, x2, y2)

		steps := int(max(math.Abs(x2-x1), math.Abs(y2-y1)))
		if len(got) != steps+1 {
			t.Fatalf("Line(%g, %g, %g, %g): %d cells, want %d",
				x1, y1, x2, y2, len(got), steps+1)
		}
		if first := (Cell{int(x1), int(y1)}); got[0] != first {
			t.Errorf("Line(%g, %g, %g, %g): starts at %v, want %v",
				x1, y1, x2, y2, got[0], first)
		}
		if last := (Cell{int(x2), int(y2)}); got[len(got)-1] != last {
			t.Errorf("Line(%g, %g, %g, %g): ends at %v, want %v",
				x1, y1, x2, y2, got[len(got)-1], last)
		}
		for i := 1; i < len(got); i++ {
			if abs(got[i].X-got[i-1].X) > 1 || abs(got[i].Y-got[i-1].Y) > 1 {
				t.Fatalf("Line(%g, %g, %g, %g): gap between %v and %v",
					x1, y1, x2, y2, got[i-1], got[i])
			}
		}
	}
}

// TestLineRealEndpoints checks continuity for segments between
// half-integer and arbitrary real points.
func TestLineRealEndpoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	coord := []func() float64{
		func() float64 { return float64(rng.IntN(201)-100) + 0.5 },
		func() float64 { return rng.Float64()*200 - 100 },
	}
	for _, next := range coord {
		for range 1000 {
			x1, y1, x2, y2 := next(), next(), next(), next()

			got := Line(x1, y1, x2, y2)

			steps := max(math.Abs(x2-x1), math.Abs(y2-y1))
			if want := int(math.Floor(steps)) + 1; len(got) != want {
				t.Fatalf("Line(%g, %g, %g, %g): %d cells, want %d",
					x1, y1, x2, y2, len(got), want)
			}
			if first := (Cell{round(x1), round(y1)}); got[0] != first {
				t.Errorf("Line(%g, %g, %g, %g): starts at %v, want %v",
					x1, y1, x2, y2, got[0], first)
			}
			for i := 1; i < len(got); i++ {
				if abs(got[i].X-got[i-1].X) > 1 || abs(got[i].Y-got[i-1].Y) > 1 {
					t.Fatalf("Line(%g, %g, %g, %g): gap between %v and %v",
						x1, y1, x2, y2, got[i-1], got[i])
				}
			}
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{-1.5, -1}, {-0.5, 0}, {0.5, 1}, {1.5, 2},
		{-0.6, -1}, {0.4, 0}, {2.49, 2}, {-7.5, -7},
	}
	for _, tc := range cases {
		if got := round(tc.in); got != tc.want {
			t.Errorf("round(%g) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLineNonFinite(t *testing.T) {
	inputs := [][4]float64{
		{math.NaN(), 0, 1, 1},
		{0, 0, math.Inf(1), 1},
		{0, math.Inf(-1), 0, 0},
	}
	for _, in := range inputs {
		if got := Line(in[0], in[1], in[2], in[3]); len(got) != 0 {
			t.Errorf("Line(%v) = %v, want no cells", in, got)
		}
	}
}

func TestAppendLineKeepsPrefix(t *testing.T) {
	buf := []Cell{{7, 7}}
	buf = AppendLine(buf, 0, 0, 1, 0)
	want := []Cell{{7, 7}, {0, 0}, {1, 0}}
	if d := cmp.Diff(want, buf); d != "" {
		t.Errorf("AppendLine mismatch (-want +got):\n%s", d)
	}
}

func TestAppendPolyline(t *testing.T) {
	square := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}

	open := AppendPolyline(nil, square, false)
	if len(open) != 9 {
		t.Errorf("open polyline: %d cells, want 9", len(open))
	}

	closed := AppendPolyline(nil, square, true)
	if len(closed) != 12 {
		t.Errorf("closed polyline: %d cells, want 12", len(closed))
	}
	if n := len(Unique(closed)); n != 8 {
		t.Errorf("closed polyline: %d distinct cells, want 8", n)
	}

	single := AppendPolyline(nil, square[:1], true)
	if d := cmp.Diff([]Cell{{0, 0}}, single); d != "" {
		t.Errorf("single vertex mismatch (-want +got):\n%s", d)
	}

	if got := AppendPolyline(nil, nil, true); len(got) != 0 {
		t.Errorf("empty polyline: got %v", got)
	}
}
