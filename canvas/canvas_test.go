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
	"encoding/json"
	"errors"
	"image/color"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/cells"
)

var (
	stone = Block{ID: "stone", Name: "Stone", Color: "#6D6D6D", Category: "stone"}
	grass = Block{ID: "grass", Name: "Grass", Color: "#5D8C3E", Category: "terrain"}
	water = Block{ID: "water", Name: "Water", Color: "#3F76E4", Category: "water"}
)

func TestZeroCanvas(t *testing.T) {
	var c Canvas
	s := c.Snapshot()
	if s.Len() != 0 || s.Has(0, 0) {
		t.Fatal("zero canvas is not empty")
	}
	c.Set(1, 2, stone, Paths)
	p, ok := c.Snapshot().Get(1, 2)
	if !ok {
		t.Fatal("pixel missing")
	}
	want := Pixel{X: 1, Y: 2, Color: "#6D6D6D", BlockID: "stone", BlockName: "Stone", Layer: Paths}
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	c := New()
	c.SetCells([]cells.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}, stone, Terrain)
	before := c.Snapshot()

	c.Set(0, 0, grass, Terrain)
	c.Remove(1, 0)
	c.Set(5, 5, water, Markers)

	if before.Len() != 2 {
		t.Errorf("old snapshot has %d pixels, want 2", before.Len())
	}
	if p, _ := before.Get(0, 0); p.BlockID != "stone" {
		t.Errorf("old snapshot sees later write: %+v", p)
	}
	after := c.Snapshot()
	if d := cmp.Diff([]cells.Cell{{X: 0, Y: 0}, {X: 5, Y: 5}}, after.Cells()); d != "" {
		t.Errorf("unexpected cells (-want +got):\n%s", d)
	}
}

func TestLayers(t *testing.T) {
	c := New()
	c.SetCells(cells.FilledRect(0, 0, 2, 0), grass, Terrain)
	c.SetCells(cells.FilledRect(0, 1, 1, 1), stone, Structures)
	c.Set(9, 9, water, Markers)

	s := c.Snapshot()
	if n := len(s.ByLayer(Terrain)); n != 3 {
		t.Errorf("terrain has %d pixels, want 3", n)
	}
	vis := s.Visible(func(l Layer) bool { return l != Terrain })
	if len(vis) != 3 {
		t.Errorf("got %d visible pixels, want 3", len(vis))
	}

	c.ClearLayer(Structures)
	s = c.Snapshot()
	if s.Len() != 4 || len(s.ByLayer(Structures)) != 0 {
		t.Errorf("ClearLayer left %d pixels", s.Len())
	}

	c.Clear()
	if c.Snapshot().Len() != 0 {
		t.Error("Clear left pixels behind")
	}
}

func TestPixelsOrder(t *testing.T) {
	c := New()
	for _, cell := range []cells.Cell{{X: 3, Y: 1}, {X: -1, Y: 2}, {X: 0, Y: 1}, {X: 7, Y: -4}} {
		c.Set(cell.X, cell.Y, stone, Terrain)
	}
	var got []cells.Cell
	for _, p := range c.Snapshot().Pixels() {
		got = append(got, p.Cell())
	}
	want := []cells.Cell{{X: 7, Y: -4}, {X: 0, Y: 1}, {X: 3, Y: 1}, {X: -1, Y: 2}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected order (-want +got):\n%s", d)
	}
}

func TestMaterials(t *testing.T) {
	c := New()
	c.SetCells(cells.FilledRect(0, 0, 2, 0), grass, Terrain)
	c.SetCells(cells.FilledRect(0, 1, 2, 1), stone, Structures)
	c.Set(0, 2, water, Paths)
	c.Set(1, 2, stone, Paths)

	want := []Material{
		{BlockID: "stone", BlockName: "Stone", Color: "#6D6D6D", Count: 4},
		{BlockID: "grass", BlockName: "Grass", Color: "#5D8C3E", Count: 3},
		{BlockID: "water", BlockName: "Water", Color: "#3F76E4", Count: 1},
	}
	if d := cmp.Diff(want, c.Snapshot().Materials()); d != "" {
		t.Errorf("unexpected materials (-want +got):\n%s", d)
	}
}

func TestConcurrentWriters(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				c.Set(i, j, stone, Terrain)
				_ = c.Snapshot().Len()
			}
		}()
	}
	wg.Wait()
	if n := c.Snapshot().Len(); n != 8*50 {
		t.Errorf("got %d pixels, want %d", n, 8*50)
	}
}

func TestLayerText(t *testing.T) {
	for _, l := range Layers() {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Layer
		if err := back.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if back != l {
			t.Errorf("%s: round trip gave %s", l, back)
		}
	}

	if _, err := ParseLayer("sky"); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("ParseLayer(sky): got %v", err)
	}
	if _, err := Layer(17).MarshalText(); err == nil {
		t.Error("invalid layer marshalled without error")
	}

	data, err := json.Marshal(Pixel{X: 1, Y: -2, Color: "#FFF", BlockID: "x", BlockName: "X", Layer: Markers})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"x":1,"y":-2,"color":"#FFF","blockId":"x","blockName":"X","layer":"markers"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestColors(t *testing.T) {
	got, err := grass.RGBA()
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.RGBA{R: 0x5D, G: 0x8C, B: 0x3E, A: 0xff}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := (Pixel{Color: "green"}).RGBA(); err == nil {
		t.Error("invalid colour accepted")
	}
}

func TestPalette(t *testing.T) {
	palette := DefaultPalette()
	seen := make(map[string]bool)
	for _, b := range palette {
		if seen[b.ID] {
			t.Errorf("duplicate block ID %q", b.ID)
		}
		seen[b.ID] = true
		if _, err := b.RGBA(); err != nil {
			t.Errorf("%s: %v", b.ID, err)
		}
	}

	total := 0
	for _, cat := range Categories() {
		blocks := BlocksByCategory(cat.ID)
		if len(blocks) == 0 {
			t.Errorf("category %q is empty", cat.ID)
		}
		total += len(blocks)
	}
	if total != len(palette) {
		t.Errorf("categories cover %d of %d blocks", total, len(palette))
	}

	b, ok := BlockByID("torch")
	if !ok || b.Name != "Torch/Light" {
		t.Errorf("BlockByID(torch) = %+v, %t", b, ok)
	}
	if _, ok := BlockByID("bedrock"); ok {
		t.Error("found a block which is not in the palette")
	}

	palette[0].Color = "#000000"
	if DefaultPalette()[0].Color == "#000000" {
		t.Error("DefaultPalette returned shared storage")
	}
}
