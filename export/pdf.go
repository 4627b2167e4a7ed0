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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/cells"
)

// gridGray is the grey level of PDF grid lines.
const gridGray = 0.6

// WritePDF writes the cells as a single-page PDF file, intended for
// printing as a build plan.  Each cell is CellSize points wide.  Colours
// are converted to shades of grey.
func WritePDF(fname string, cc []cells.Cell, opt *Options) error {
	l, err := newLayout(cc)
	if err != nil {
		return err
	}
	if err := l.checkSize(1); err != nil {
		return err
	}
	size := float64(opt.cellSize())
	width := float64(l.w) * size
	height := float64(l.h) * size

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	if bg := opt.background(); bg != nil {
		page.SetFillColor(pdfcolor.DeviceGray(luminance(bg)))
		page.Rectangle(0, 0, width, height)
		page.Fill()
	}

	// PDF origin is bottom-left; cell rows run downwards.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.Transform(matrix.Matrix{size, 0, 0, size, -float64(l.minX) * size, -float64(l.minY) * size})

	for _, g := range l.groups(opt) {
		page.SetFillColor(pdfcolor.DeviceGray(luminance(g.color)))
		for cmd, pts := range Outline(g.cells) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	if opt.showGrid() {
		x0, y0 := float64(l.minX), float64(l.minY)
		x1, y1 := x0+float64(l.w), y0+float64(l.h)
		page.SetStrokeColor(pdfcolor.DeviceGray(gridGray))
		page.SetLineWidth(0.05)
		for x := x0; x <= x1; x++ {
			page.MoveTo(x, y0)
			page.LineTo(x, y1)
		}
		for y := y0; y <= y1; y++ {
			page.MoveTo(x0, y)
			page.LineTo(x1, y)
		}
		page.Stroke()
	}

	return page.Close()
}

// luminance returns the grey level of col, between 0 (black) and
// 1 (white).
func luminance(col color.Color) float64 {
	g := color.Gray16Model.Convert(col).(color.Gray16)
	return float64(g.Y) / 0xffff
}
