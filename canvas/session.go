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
	"slices"

	"seehuhn.de/go/cells"
)

// Tool selects how pointer input modifies the canvas.
type Tool uint8

// These are the available drawing tools.
const (
	Select    Tool = iota // no drawing; the pointer pans the view
	Pencil                // paint single cells
	Eraser                // remove single cells
	Line                  // drag a straight line
	Rectangle             // drag a filled rectangle
	Fill                  // flood fill
)

var toolNames = [...]string{
	Select:    "select",
	Pencil:    "pencil",
	Eraser:    "eraser",
	Line:      "line",
	Rectangle: "rectangle",
	Fill:      "fill",
}

// ErrUnknownTool is returned when parsing an unrecognised tool name.
var ErrUnknownTool = errors.New("canvas: unknown tool")

// ParseTool converts a tool name, as returned by [Tool.String], back to a
// Tool.
func ParseTool(s string) (Tool, error) {
	for i, name := range toolNames {
		if s == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownTool, s)
}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", t)
}

// Session translates pointer events in cell coordinates into canvas
// modifications, using the current tool, block and layer.
//
// Pencil and eraser act immediately on [Session.Begin] and
// [Session.Move].  Fill acts on Begin.  Line and rectangle start a drag
// on Begin, update the preview on Move and write the previewed cells on
// [Session.End].  A Session must not be used concurrently.
type Session struct {
	Canvas *Canvas
	Tool   Tool
	Block  Block
	Layer  Layer

	// MaxFillIterations is passed to [Canvas.FloodFill].
	MaxFillIterations int

	drawing bool
	start   cells.Cell
	preview []cells.Cell
}

// NewSession returns a session drawing on c with the pencil, using the
// first block of the default palette on the structures layer.
func NewSession(c *Canvas) *Session {
	return &Session{
		Canvas: c,
		Tool:   Pencil,
		Block:  defaultBlocks[0],
		Layer:  Structures,
	}
}

// Begin handles a pointer press at (x, y).
func (s *Session) Begin(x, y int) {
	switch s.Tool {
	case Pencil:
		s.Canvas.Set(x, y, s.Block, s.Layer)
	case Eraser:
		s.Canvas.Remove(x, y)
	case Fill:
		s.Canvas.FloodFill(x, y, s.Block, s.Layer, s.MaxFillIterations)
	case Line, Rectangle:
		s.drawing = true
		s.start = cells.Cell{X: x, Y: y}
		s.preview = append(s.preview[:0], s.start)
	}
}

// Move handles pointer movement to (x, y) while the pointer is pressed.
func (s *Session) Move(x, y int) {
	if !s.drawing {
		switch s.Tool {
		case Pencil:
			s.Canvas.Set(x, y, s.Block, s.Layer)
		case Eraser:
			s.Canvas.Remove(x, y)
		}
		return
	}
	s.preview = s.dragCells(s.preview[:0], x, y)
}

// End handles a pointer release at (x, y).  For the line and rectangle
// tools this writes the dragged shape to the canvas.
func (s *Session) End(x, y int) {
	if !s.drawing {
		return
	}
	cc := s.dragCells(s.preview[:0], x, y)
	if s.Tool == Line || s.Tool == Rectangle {
		s.Canvas.SetCells(cc, s.Block, s.Layer)
	}
	s.Cancel()
}

// Cancel aborts a drag in progress without modifying the canvas.
func (s *Session) Cancel() {
	s.drawing = false
	s.start = cells.Cell{}
	s.preview = s.preview[:0]
}

// Drawing reports whether a line or rectangle drag is in progress.
func (s *Session) Drawing() bool {
	return s.drawing
}

// Preview returns the cells the current drag would write.
func (s *Session) Preview() []cells.Cell {
	return slices.Clone(s.preview)
}

func (s *Session) dragCells(dst []cells.Cell, x, y int) []cells.Cell {
	switch s.Tool {
	case Line:
		return cells.AppendBresenhamLine(dst, s.start.X, s.start.Y, x, y)
	case Rectangle:
		return cells.AppendFilledRect(dst, s.start.X, s.start.Y, x, y)
	}
	return dst
}
