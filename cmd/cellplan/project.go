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

package main

import (
	"fmt"
	"image/color"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seehuhn.de/go/cells"
	"seehuhn.de/go/cells/canvas"
	"seehuhn.de/go/cells/export"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Work with saved canvas projects",
	}
	cmd.AddCommand(newProjectRenderCmd(), newProjectMaterialsCmd())
	return cmd
}

func newProjectRenderCmd() *cobra.Command {
	var input, output, format, background string
	var layers []string
	var cellSize int
	var hideGrid bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the pixels of a project file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadProject(input)
			if err != nil {
				return err
			}
			visible, err := layerFilter(layers)
			if err != nil {
				return err
			}
			bg, err := parseColor(background)
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}
			cc, colors, err := pixelCells(snap.Visible(visible))
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			opt := &export.Options{
				CellSize:   cellSize,
				Background: bg,
				Colors:     colors,
				HideGrid:   hideGrid,
			}
			return writeCells(output, format, cc, opt)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "project file (JSON)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (svg, png, bmp, pbm, pdf)")
	cmd.Flags().StringSliceVarP(&layers, "layer", "l", nil, "only draw these layers")
	cmd.Flags().IntVar(&cellSize, "cell-size", export.DefaultCellSize, "size of one cell")
	cmd.Flags().StringVar(&background, "background", "", "background colour")
	cmd.Flags().BoolVar(&hideGrid, "hide-grid", false, "omit grid lines")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newProjectMaterialsCmd() *cobra.Command {
	var input string
	var layers []string
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List the blocks needed to build a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadProject(input)
			if err != nil {
				return err
			}
			visible, err := layerFilter(layers)
			if err != nil {
				return err
			}
			if visible != nil {
				c := canvas.New()
				c.Replace(snap.Visible(visible))
				snap = c.Snapshot()
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "COUNT\tBLOCK\tNAME\tCOLOR")
			total := 0
			for _, m := range snap.Materials() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", m.Count, m.BlockID, m.BlockName, m.Color)
				total += m.Count
			}
			fmt.Fprintf(tw, "%d\ttotal\t\t\n", total)
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "project file (JSON)")
	cmd.Flags().StringSliceVarP(&layers, "layer", "l", nil, "only count these layers")
	cmd.MarkFlagRequired("input")
	return cmd
}

func loadProject(fname string) (*canvas.Snapshot, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	p, err := canvas.DecodeProject(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	c := canvas.New()
	c.Replace(p.Pixels)
	snap := c.Snapshot()
	cells.Logger().Debug("loaded project", "file", fname, "pixels", snap.Len())
	return snap, nil
}

// layerFilter converts layer names into a filter for
// [canvas.Snapshot.Visible].  No names selects all layers.
func layerFilter(names []string) (func(canvas.Layer) bool, error) {
	if len(names) == 0 {
		return nil, nil
	}
	show := make(map[canvas.Layer]bool, len(names))
	for _, name := range names {
		l, err := canvas.ParseLayer(name)
		if err != nil {
			return nil, err
		}
		show[l] = true
	}
	return func(l canvas.Layer) bool { return show[l] }, nil
}

// pixelCells splits pixels into cell positions and their colours.
func pixelCells(pixels []canvas.Pixel) ([]cells.Cell, map[cells.Cell]color.Color, error) {
	cc := make([]cells.Cell, len(pixels))
	colors := make(map[cells.Cell]color.Color, len(pixels))
	for i, p := range pixels {
		col, err := p.RGBA()
		if err != nil {
			return nil, nil, fmt.Errorf("pixel %s: %w", p.Cell(), err)
		}
		cc[i] = p.Cell()
		colors[cc[i]] = col
	}
	return cc, colors, nil
}
