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

import "slices"

// Category is a group of related blocks in the palette.
type Category struct {
	ID   string
	Name string
}

var categories = []Category{
	{"terrain", "Terrain"},
	{"stone", "Stone"},
	{"wood", "Wood"},
	{"path", "Paths"},
	{"water", "Water"},
	{"vegetation", "Plants"},
	{"decoration", "Decoration"},
	{"utility", "Markers"},
}

// Colours are approximations of the in-game block textures.
var defaultBlocks = []Block{
	{"grass", "Grass", "#5D8C3E", "terrain"},
	{"dirt", "Dirt", "#8B5A2B", "terrain"},
	{"sand", "Sand", "#E5D9A8", "terrain"},
	{"gravel", "Gravel", "#7F7F7F", "terrain"},
	{"clay", "Clay", "#9FA4B0", "terrain"},

	{"stone", "Stone", "#6D6D6D", "stone"},
	{"cobblestone", "Cobblestone", "#5A5A5A", "stone"},
	{"stone_brick", "Stone Brick", "#7A7A7A", "stone"},
	{"deepslate", "Deepslate", "#4A4A4A", "stone"},
	{"andesite", "Andesite", "#8A8A8A", "stone"},
	{"granite", "Granite", "#9A6A5A", "stone"},
	{"diorite", "Diorite", "#BFBFBF", "stone"},
	{"blackstone", "Blackstone", "#2D2D36", "stone"},

	{"oak_planks", "Oak Planks", "#B8945F", "wood"},
	{"spruce_planks", "Spruce Planks", "#6B5034", "wood"},
	{"birch_planks", "Birch Planks", "#D5C98C", "wood"},
	{"dark_oak_planks", "Dark Oak Planks", "#3E2912", "wood"},
	{"acacia_planks", "Acacia Planks", "#C06A3B", "wood"},
	{"jungle_planks", "Jungle Planks", "#AB8556", "wood"},
	{"oak_log", "Oak Log", "#6B5034", "wood"},

	{"path", "Path", "#C9A86C", "path"},
	{"gravel_path", "Gravel Path", "#9E9E9E", "path"},
	{"cobblestone_path", "Cobble Path", "#696969", "path"},
	{"stone_path", "Stone Path", "#808080", "path"},

	{"water", "Water", "#3F76E4", "water"},
	{"water_deep", "Deep Water", "#2356C4", "water"},
	{"lava", "Lava", "#CF5A00", "water"},

	{"leaves", "Leaves", "#4A7A32", "vegetation"},
	{"flower_red", "Red Flower", "#D44", "vegetation"},
	{"flower_yellow", "Yellow Flower", "#ED2", "vegetation"},
	{"crops", "Crops/Farm", "#A2C052", "vegetation"},

	{"wool_white", "White Wool", "#E9E9E9", "decoration"},
	{"wool_red", "Red Wool", "#A12722", "decoration"},
	{"wool_blue", "Blue Wool", "#2E388D", "decoration"},
	{"wool_green", "Green Wool", "#546D1B", "decoration"},
	{"wool_yellow", "Yellow Wool", "#F9C627", "decoration"},
	{"wool_black", "Black Wool", "#1D1D21", "decoration"},
	{"terracotta", "Terracotta", "#985F45", "decoration"},
	{"brick", "Brick", "#96614A", "decoration"},

	{"marker_red", "Marker (Red)", "#FF0000", "utility"},
	{"marker_blue", "Marker (Blue)", "#0066FF", "utility"},
	{"marker_green", "Marker (Green)", "#00CC00", "utility"},
	{"marker_yellow", "Marker (Yellow)", "#FFFF00", "utility"},
	{"door", "Door/Entrance", "#8B4513", "utility"},
	{"fence", "Fence", "#C49A6C", "utility"},
	{"torch", "Torch/Light", "#FFCC00", "utility"},
}

// DefaultPalette returns the built-in block list, grouped by category.
func DefaultPalette() []Block {
	return slices.Clone(defaultBlocks)
}

// Categories returns the block categories in palette order.
func Categories() []Category {
	return slices.Clone(categories)
}

// BlockByID looks up a block of the default palette.
func BlockByID(id string) (Block, bool) {
	i := slices.IndexFunc(defaultBlocks, func(b Block) bool { return b.ID == id })
	if i < 0 {
		return Block{}, false
	}
	return defaultBlocks[i], true
}

// BlocksByCategory returns the blocks of the default palette in the given
// category.
func BlocksByCategory(category string) []Block {
	var res []Block
	for _, b := range defaultBlocks {
		if b.Category == category {
			res = append(res, b)
		}
	}
	return res
}
