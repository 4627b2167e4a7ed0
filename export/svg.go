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

package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/cells"
)

// WriteSVG writes the cells as an SVG image.
//
// The view box covers the bounding box of the cells in cell units, and the
// image is scaled so that every cell is CellSize pixels wide.  Every cell
// is a 1×1 rect.  Unless the grid is hidden, a black line of width 0.05 is
// drawn along every integer grid line inside the view box.
func WriteSVG(w io.Writer, cc []cells.Cell, opt *Options) error {
	l, err := newLayout(cc)
	if err != nil {
		return err
	}
	if err := l.checkSize(1); err != nil {
		return err
	}
	size := opt.cellSize()

	out := &svgWriter{w: bufio.NewWriter(w)}
	out.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%d %d %d %d">`+"\n",
		l.w*size, l.h*size, l.minX, l.minY, l.w, l.h)
	if bg := opt.background(); bg != nil {
		out.printf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			l.minX, l.minY, l.w, l.h, svgColor(bg))
	}
	for _, g := range l.groups(opt) {
		out.printf(`<g class="cells" fill="%s">`+"\n", svgColor(g.color))
		for _, c := range g.cells {
			out.printf(`<rect x="%d" y="%d" width="1" height="1"/>`+"\n", c.X, c.Y)
		}
		out.printf("</g>\n")
	}
	if opt.showGrid() {
		maxX := l.minX + l.w
		maxY := l.minY + l.h
		out.printf(`<g class="grid-line" stroke="black" stroke-width="0.05">` + "\n")
		for x := l.minX; x <= maxX; x++ {
			out.line(x, l.minY, x, maxY)
		}
		for y := l.minY; y <= maxY; y++ {
			out.line(l.minX, y, maxX, y)
		}
		out.printf("</g>\n")
	}
	out.printf("</svg>\n")
	return out.w.Flush()
}

type svgWriter struct {
	w *bufio.Writer
}

// printf writes formatted output.  Errors are kept by the bufio.Writer
// and reported by Flush.
func (s *svgWriter) printf(format string, a ...any) {
	fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) line(x1, y1, x2, y2 int) {
	s.printf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`+"\n", x1, y1, x2, y2)
}

// svgColor formats a colour as "#rrggbb", or "none" if it is fully
// transparent.
func svgColor(col color.Color) string {
	c, ok := colorful.MakeColor(col)
	if !ok {
		return "none"
	}
	return c.Hex()
}
