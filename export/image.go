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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/cells"
)

// Image renders the cells into a new RGBA image.  The image covers the
// bounding box of the cells, with the top-left cell at the origin.
func Image(cc []cells.Cell, opt *Options) (*image.RGBA, error) {
	l, err := newLayout(cc)
	if err != nil {
		return nil, err
	}
	size := opt.cellSize()
	if err := l.checkSize(size); err != nil {
		return nil, err
	}
	width, height := l.w*size, l.h*size

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if bg := opt.background(); bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	r := vector.NewRasterizer(width, height)
	for _, g := range l.groups(opt) {
		r.Reset(width, height)
		for cmd, pts := range Outline(g.cells) {
			switch cmd {
			case path.CmdMoveTo:
				x, y := l.toPixel(pts[0].X, pts[0].Y, size)
				r.MoveTo(x, y)
			case path.CmdLineTo:
				x, y := l.toPixel(pts[0].X, pts[0].Y, size)
				r.LineTo(x, y)
			case path.CmdClose:
				r.ClosePath()
			}
		}
		r.Draw(img, img.Bounds(), image.NewUniform(g.color), image.Point{})
	}
	return img, nil
}

// toPixel maps cell coordinates to image coordinates.
func (l *layout) toPixel(x, y float64, size int) (float32, float32) {
	s := float64(size)
	return float32((x - float64(l.minX)) * s), float32((y - float64(l.minY)) * s)
}

// WritePNG writes the cells as a PNG image.  See [Image].
func WritePNG(w io.Writer, cc []cells.Cell, opt *Options) error {
	img, err := Image(cc, opt)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// WriteBMP writes the cells as a BMP image.  BMP has no transparency, so
// a missing background is painted white.  See [Image].
func WriteBMP(w io.Writer, cc []cells.Cell, opt *Options) error {
	if opt.background() == nil {
		o := Options{}
		if opt != nil {
			o = *opt
		}
		o.Background = color.White
		opt = &o
	}
	img, err := Image(cc, opt)
	if err != nil {
		return err
	}
	return bmp.Encode(w, img)
}
