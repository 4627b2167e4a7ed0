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
	"io"

	"seehuhn.de/go/cells"
)

// pbmLineLength is the maximum line length allowed in plain PBM files.
const pbmLineLength = 70

// WritePBM writes the cells as a plain ("P1") portable bitmap, with one
// pixel per cell.  Occupied cells are 1 (black), all other pixels are 0.
// The plain format is human readable, so that the file can serve directly
// as a build plan.  The comment line records the grid position of the
// top-left pixel.
func WritePBM(w io.Writer, cc []cells.Cell, _ *Options) error {
	l, err := newLayout(cc)
	if err != nil {
		return err
	}
	if err := l.checkSize(1); err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "P1\n# origin %d %d\n%d %d\n", l.minX, l.minY, l.w, l.h)

	row := make([]byte, l.w)
	next := l.cells
	for y := l.minY; y < l.minY+l.h; y++ {
		for i := range row {
			row[i] = '0'
		}
		for len(next) > 0 && next[0].Y == y {
			row[next[0].X-l.minX] = '1'
			next = next[1:]
		}
		for rest := row; len(rest) > 0; {
			n := min(len(rest), pbmLineLength)
			out.Write(rest[:n])
			out.WriteByte('\n')
			rest = rest[n:]
		}
	}
	return out.Flush()
}
