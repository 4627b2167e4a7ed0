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

// Package canvas implements a freehand pixel map on the integer grid:
// a sparse mapping from cells to coloured pixels, with drawing tools,
// flood fill and project files.
//
// A [Canvas] publishes its contents as immutable [Snapshot] values.
// Every modification builds a new snapshot and swaps it in atomically,
// so readers never observe a partially applied change.  A Canvas may be
// used from several goroutines.
package canvas

import (
	"cmp"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"seehuhn.de/go/cells"
)

// Canvas is a mutable pixel map.  The zero value is an empty canvas
// ready for use.
type Canvas struct {
	mu  sync.Mutex // serialises writers
	cur atomic.Pointer[Snapshot]
}

// New returns an empty canvas.
func New() *Canvas {
	return &Canvas{}
}

var emptySnapshot = &Snapshot{}

// Snapshot returns the current contents of the canvas.
func (c *Canvas) Snapshot() *Snapshot {
	if s := c.cur.Load(); s != nil {
		return s
	}
	return emptySnapshot
}

// edit calls fn with a private copy of the current pixel map and
// publishes the result.
func (c *Canvas) edit(fn func(m map[cells.Cell]Pixel)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.Snapshot().clone()
	fn(m)
	c.cur.Store(&Snapshot{pixels: m})
}

// Set places block b on layer l at (x, y), replacing any existing pixel.
func (c *Canvas) Set(x, y int, b Block, l Layer) {
	c.SetCells([]cells.Cell{{X: x, Y: y}}, b, l)
}

// SetCells places block b on layer l at all given cells, as a single
// modification.
func (c *Canvas) SetCells(cc []cells.Cell, b Block, l Layer) {
	c.edit(func(m map[cells.Cell]Pixel) {
		for _, cell := range cc {
			m[cell] = newPixel(cell, b, l)
		}
	})
}

// Remove deletes the pixel at (x, y), if any.
func (c *Canvas) Remove(x, y int) {
	c.RemoveCells([]cells.Cell{{X: x, Y: y}})
}

// RemoveCells deletes the pixels at all given cells, as a single
// modification.
func (c *Canvas) RemoveCells(cc []cells.Cell) {
	c.edit(func(m map[cells.Cell]Pixel) {
		for _, cell := range cc {
			delete(m, cell)
		}
	})
}

// Clear removes all pixels.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur.Store(emptySnapshot)
}

// ClearLayer removes all pixels belonging to layer l.
func (c *Canvas) ClearLayer(l Layer) {
	c.edit(func(m map[cells.Cell]Pixel) {
		maps.DeleteFunc(m, func(_ cells.Cell, p Pixel) bool {
			return p.Layer == l
		})
	})
}

// Replace discards the current contents and installs the given pixels.
// If several pixels share a cell, the last one wins.
func (c *Canvas) Replace(pixels []Pixel) {
	m := make(map[cells.Cell]Pixel, len(pixels))
	for _, p := range pixels {
		m[p.Cell()] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur.Store(&Snapshot{pixels: m})
}

// Snapshot is an immutable view of a canvas.
type Snapshot struct {
	pixels map[cells.Cell]Pixel
}

func (s *Snapshot) clone() map[cells.Cell]Pixel {
	m := make(map[cells.Cell]Pixel, len(s.pixels))
	maps.Copy(m, s.pixels)
	return m
}

// Get returns the pixel at (x, y).
func (s *Snapshot) Get(x, y int) (Pixel, bool) {
	p, ok := s.pixels[cells.Cell{X: x, Y: y}]
	return p, ok
}

// Has reports whether (x, y) is occupied.
func (s *Snapshot) Has(x, y int) bool {
	_, ok := s.pixels[cells.Cell{X: x, Y: y}]
	return ok
}

// Len returns the number of pixels.
func (s *Snapshot) Len() int {
	return len(s.pixels)
}

// Pixels returns all pixels, ordered by row and then by column.
func (s *Snapshot) Pixels() []Pixel {
	return s.Visible(nil)
}

// ByLayer returns the pixels on layer l, ordered by row and then by
// column.
func (s *Snapshot) ByLayer(l Layer) []Pixel {
	return s.Visible(func(x Layer) bool { return x == l })
}

// Visible returns the pixels on layers for which visible returns true,
// ordered by row and then by column.  A nil function selects all layers.
func (s *Snapshot) Visible(visible func(Layer) bool) []Pixel {
	res := make([]Pixel, 0, len(s.pixels))
	for _, p := range s.pixels {
		if visible == nil || visible(p.Layer) {
			res = append(res, p)
		}
	}
	slices.SortFunc(res, func(a, b Pixel) int {
		return cells.Compare(a.Cell(), b.Cell())
	})
	return res
}

// Cells returns the occupied cells, ordered by row and then by column.
func (s *Snapshot) Cells() []cells.Cell {
	res := make([]cells.Cell, 0, len(s.pixels))
	for c := range s.pixels {
		res = append(res, c)
	}
	slices.SortFunc(res, cells.Compare)
	return res
}

// Material counts the use of one block on the canvas.
type Material struct {
	BlockID   string
	BlockName string
	Color     string
	Count     int
}

// Materials lists the blocks used on the canvas, most used first.
// Blocks with equal counts are ordered by ID.  Name and colour are taken
// from the first pixel of each block in row order.
func (s *Snapshot) Materials() []Material {
	idx := make(map[string]int)
	var res []Material
	for _, p := range s.Pixels() {
		if i, ok := idx[p.BlockID]; ok {
			res[i].Count++
			continue
		}
		idx[p.BlockID] = len(res)
		res = append(res, Material{
			BlockID:   p.BlockID,
			BlockName: p.BlockName,
			Color:     p.Color,
			Count:     1,
		})
	}
	slices.SortFunc(res, func(a, b Material) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.BlockID, b.BlockID)
	})
	return res
}
