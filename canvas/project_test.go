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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/cells"
)

func TestExportImport(t *testing.T) {
	c := New()
	c.SetCells(cells.Circle(0, 0, 9, nil), stone, Structures)
	c.SetCells(cells.FilledRect(-2, -2, 2, 2), grass, Terrain)
	c.Set(100, -7, water, Markers)
	orig := c.Snapshot()

	data, err := orig.Export()
	if err != nil {
		t.Fatal(err)
	}

	other := New()
	other.Set(55, 55, stone, Paths)
	if !other.Import(data) {
		t.Fatal("import failed")
	}
	if d := cmp.Diff(orig.Pixels(), other.Snapshot().Pixels()); d != "" {
		t.Errorf("round trip changed the pixels (-want +got):\n%s", d)
	}
}

func TestExportFormat(t *testing.T) {
	c := New()
	c.Set(3, 4, grass, Terrain)
	data, err := c.Snapshot().exportAt(time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "version": 1,
  "pixels": [
    {
      "x": 3,
      "y": 4,
      "color": "#5D8C3E",
      "blockId": "grass",
      "blockName": "Grass",
      "layer": "terrain"
    }
  ],
  "timestamp": "2025-03-01T12:30:00.000Z"
}`
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Errorf("unexpected project file (-want +got):\n%s", d)
	}

	empty, err := New().Snapshot().Export()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(empty), `"pixels": []`) {
		t.Errorf("empty canvas exported as %s", empty)
	}
}

func TestImportRejects(t *testing.T) {
	for name, data := range map[string]string{
		"syntax":  `{"version": 1, "pixels": [`,
		"version": `{"version": 2, "pixels": []}`,
		"missing": `{"pixels": []}`,
		"layer":   `{"version": 1, "pixels": [{"x": 0, "y": 0, "layer": "sky"}]}`,
		"empty":   ``,
	} {
		t.Run(name, func(t *testing.T) {
			c := New()
			c.Set(1, 1, stone, Terrain)
			before := c.Snapshot()
			if c.Import([]byte(data)) {
				t.Fatal("invalid project accepted")
			}
			if c.Snapshot() != before {
				t.Error("failed import modified the canvas")
			}
		})
	}

	_, err := DecodeProject([]byte(`{"version": 7}`))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("got %v, want ErrUnsupportedVersion", err)
	}
}

func TestImportDuplicateCells(t *testing.T) {
	data := `{"version": 1, "pixels": [
		{"x": 0, "y": 0, "color": "#111", "blockId": "a", "blockName": "A", "layer": "paths"},
		{"x": 0, "y": 0, "color": "#222", "blockId": "b", "blockName": "B", "layer": "markers"}
	], "timestamp": ""}`
	c := New()
	if !c.Import([]byte(data)) {
		t.Fatal("import failed")
	}
	s := c.Snapshot()
	if p, _ := s.Get(0, 0); s.Len() != 1 || p.BlockID != "b" {
		t.Errorf("got %d pixels, (0,0) = %+v", s.Len(), p)
	}
}
