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
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/cells"
	"seehuhn.de/go/cells/export"
)

var errUnknownFormat = errors.New("unknown output format")

var writers = map[string]func(io.Writer, []cells.Cell, *export.Options) error{
	"svg": export.WriteSVG,
	"png": export.WritePNG,
	"bmp": export.WriteBMP,
	"pbm": export.WritePBM,
}

// outputFormat returns the format to use for fname.  An explicit format
// takes precedence over the file name extension.
func outputFormat(fname, format string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(fname), ".")
	}
	format = strings.ToLower(format)
	if _, ok := writers[format]; ok || format == "pdf" {
		return format, nil
	}
	return "", fmt.Errorf("%w %q", errUnknownFormat, format)
}

// writeCells writes cc to the file fname.
func writeCells(fname, format string, cc []cells.Cell, opt *export.Options) error {
	format, err := outputFormat(fname, format)
	if err != nil {
		return err
	}
	if format == "pdf" {
		err = export.WritePDF(fname, cc, opt)
	} else {
		err = writeFile(fname, func(w io.Writer) error {
			return writers[format](w, cc, opt)
		})
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	cells.Logger().Info("wrote build plan",
		"file", fname, "format", format, "cells", len(cells.Unique(cc)))
	return nil
}

func writeFile(fname string, write func(io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(fname)
	}
	return err
}

// exportConfig is the [export] table of a shape configuration file.
type exportConfig struct {
	CellSize   int    `toml:"cell_size"`
	Fill       string `toml:"fill"`
	Background string `toml:"background"`
	HideGrid   bool   `toml:"hide_grid"`
}

func (ec *exportConfig) options() (*export.Options, error) {
	opt := &export.Options{
		CellSize: ec.CellSize,
		HideGrid: ec.HideGrid,
	}
	var err error
	if opt.Fill, err = parseColor(ec.Fill); err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	if opt.Background, err = parseColor(ec.Background); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return opt, nil
}

// parseColor parses a "#rrggbb" or "#rgb" colour.  The empty string gives
// a nil colour.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
