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
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"seehuhn.de/go/cells"
	"seehuhn.de/go/cells/export"
	"seehuhn.de/go/cells/shapes"
)

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes [KIND]",
		Short: "List shape kinds, or show the default configuration of one kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, k := range shapes.Kinds() {
					fmt.Fprintln(out, k)
				}
				return nil
			}
			s, err := shapes.New(shapes.Kind(args[0]))
			if err != nil {
				return err
			}
			data, err := shapes.Encode(s)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newShapeCmd() *cobra.Command {
	var config, output, format string
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Rasterize a shape described by a TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(config)
			if err != nil {
				return err
			}
			s, opt, err := loadShape(data)
			if err != nil {
				return fmt.Errorf("%s: %w", config, err)
			}
			cc := s.Cells()
			cells.Logger().Debug("rasterized shape",
				"kind", s.Kind(), "cells", len(cc))
			return writeCells(output, format, cc, opt)
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "shape configuration (TOML)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (svg, png, bmp, pbm, pdf)")
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagRequired("output")
	return cmd
}

// loadShape reads a shape and the optional [export] table from a
// configuration file.
func loadShape(data []byte) (shapes.Shape, *export.Options, error) {
	s, err := shapes.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	var file struct {
		Export exportConfig `toml:"export"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, nil, err
	}
	opt, err := file.Export.options()
	if err != nil {
		return nil, nil, fmt.Errorf("export: %w", err)
	}
	return s, opt, nil
}
