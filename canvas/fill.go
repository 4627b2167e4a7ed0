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

import "seehuhn.de/go/cells"

// DefaultMaxIterations bounds the work of [Canvas.FloodFill] when no
// explicit limit is given.
const DefaultMaxIterations = 10000

// FillResult describes the outcome of a flood fill.
type FillResult struct {
	Filled    int  // number of pixels written
	Visited   int  // number of distinct cells examined
	Truncated bool // the iteration limit left part of the region unfilled
}

// FloodFill paints the 4-connected region containing (x, y) with block b
// on layer l.
//
// The region consists of all cells reachable from (x, y) through cells
// with the same colour as the seed, where an empty cell counts as a
// colour of its own.  Colours are compared by their string value.  If the
// seed already has the colour of b, nothing happens.
//
// The search is breadth first and examines at most maxIterations
// distinct cells; a value <= 0 selects [DefaultMaxIterations].  The limit
// keeps fills of unbounded empty regions finite.  If it is reached
// before the whole region is found, the cells found so far are still
// filled, the result is marked as truncated, and a warning is logged.
// Reaching the limit while only cells outside the region remain
// unexamined is not a truncation.  All cells are written in a single
// modification.
func (c *Canvas) FloodFill(x, y int, b Block, l Layer, maxIterations int) FillResult {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	cur := c.Snapshot()

	seed := cells.Cell{X: x, Y: y}
	target, targetSet := cur.pixels[seed]
	if targetSet && target.Color == b.Color {
		return FillResult{}
	}
	matches := func(cell cells.Cell) bool {
		p, ok := cur.pixels[cell]
		if !ok || !targetSet {
			return ok == targetSet
		}
		return p.Color == target.Color
	}

	visited := make(map[cells.Cell]bool)
	queue := []cells.Cell{seed}
	var toFill []cells.Cell
	for len(queue) > 0 && len(visited) < maxIterations {
		cell := queue[0]
		queue = queue[1:]
		if visited[cell] {
			continue
		}
		visited[cell] = true
		if !matches(cell) {
			continue
		}
		toFill = append(toFill, cell)
		for _, n := range [...]cells.Cell{
			{X: cell.X + 1, Y: cell.Y},
			{X: cell.X - 1, Y: cell.Y},
			{X: cell.X, Y: cell.Y + 1},
			{X: cell.X, Y: cell.Y - 1},
		} {
			if !visited[n] {
				queue = append(queue, n)
			}
		}
	}

	res := FillResult{Filled: len(toFill), Visited: len(visited)}
	for _, cell := range queue {
		if !visited[cell] && matches(cell) {
			res.Truncated = true
			break
		}
	}
	if res.Truncated {
		cells.Logger().Warn("flood fill truncated",
			"x", x, "y", y,
			"limit", maxIterations,
			"filled", res.Filled)
	}

	if len(toFill) > 0 {
		m := cur.clone()
		for _, cell := range toFill {
			m[cell] = newPixel(cell, b, l)
		}
		c.cur.Store(&Snapshot{pixels: m})
	}
	return res
}
