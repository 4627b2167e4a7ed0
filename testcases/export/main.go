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

// Command export writes all test cases to testdata/testcases.json, for
// comparing the rasterizers against other implementations.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/cells"
	"seehuhn.de/go/cells/shapes"
	"seehuhn.de/go/cells/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Kind   shapes.Kind `json:"kind"`
	Config string      `json:"config"` // TOML, as read by shapes.Decode
	Cells  [][2]int    `json:"cells"`  // in emission order, with repetitions
	Unique int         `json:"unique"` // number of distinct cells
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	config, err := shapes.Encode(tc.Shape)
	if err != nil {
		return jsonTestCase{}, err
	}
	cc := tc.Cells()
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Kind:   tc.Shape.Kind(),
		Config: string(config),
		Cells:  make([][2]int, len(cc)),
		Unique: len(cells.Unique(cc)),
	}
	for i, c := range cc {
		jtc.Cells[i] = [2]int{c.X, c.Y}
	}
	return jtc, nil
}
