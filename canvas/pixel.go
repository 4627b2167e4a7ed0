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
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/cells"
)

// Layer groups pixels by purpose.  Layers do not stack: every cell holds
// at most one pixel, and the pixel records which layer it belongs to.
type Layer uint8

// These are the available layers.
const (
	Terrain Layer = iota
	Structures
	Paths
	Markers
)

var layerNames = [...]string{
	Terrain:    "terrain",
	Structures: "structures",
	Paths:      "paths",
	Markers:    "markers",
}

// ErrUnknownLayer is returned when parsing an unrecognised layer name.
var ErrUnknownLayer = errors.New("canvas: unknown layer")

// Layers returns all layers in drawing order.
func Layers() []Layer {
	return []Layer{Terrain, Structures, Paths, Markers}
}

// ParseLayer converts a layer name, as returned by [Layer.String], back
// to a Layer.
func ParseLayer(s string) (Layer, error) {
	for i, name := range layerNames {
		if s == name {
			return Layer(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownLayer, s)
}

func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return fmt.Sprintf("Layer(%d)", l)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (l Layer) MarshalText() ([]byte, error) {
	if int(l) >= len(layerNames) {
		return nil, fmt.Errorf("canvas: invalid layer %d", l)
	}
	return []byte(layerNames[l]), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (l *Layer) UnmarshalText(text []byte) error {
	v, err := ParseLayer(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Block is a building material which can be placed on the canvas.
type Block struct {
	ID       string
	Name     string
	Color    string // "#RRGGBB" or "#RGB"
	Category string
}

// RGBA returns the display colour of the block.
func (b Block) RGBA() (color.RGBA, error) {
	return parseHex(b.Color)
}

// Pixel is one occupied cell of the canvas.
//
// Pixels store a copy of the block's colour, so that the colour of a
// pixel is known even for blocks not in the current palette.  The colour
// string, not the block ID, is the identity used by [Canvas.FloodFill].
type Pixel struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Color     string `json:"color"`
	BlockID   string `json:"blockId"`
	BlockName string `json:"blockName"`
	Layer     Layer  `json:"layer"`
}

// Cell returns the grid position of the pixel.
func (p Pixel) Cell() cells.Cell {
	return cells.Cell{X: p.X, Y: p.Y}
}

// RGBA returns the display colour of the pixel.
func (p Pixel) RGBA() (color.RGBA, error) {
	return parseHex(p.Color)
}

func newPixel(c cells.Cell, b Block, l Layer) Pixel {
	return Pixel{
		X:         c.X,
		Y:         c.Y,
		Color:     b.Color,
		BlockID:   b.ID,
		BlockName: b.Name,
		Layer:     l,
	}
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("canvas: invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
