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

// Command cellplan turns shape descriptions and saved projects into
// block-by-block build plans.
//
// Usage:
//
//	cellplan shapes [KIND]
//	cellplan shape --config FILE --output FILE [--format FORMAT]
//	cellplan project render --input FILE --output FILE [--layer NAME]...
//	cellplan project materials --input FILE [--layer NAME]...
//
// The output format is taken from the file name extension unless
// --format is given.  Supported formats are svg, png, bmp, pbm and pdf.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/cells"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "cellplan",
		Short:        "Rasterize shapes onto a grid of blocks",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			cells.SetLogger(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	root.AddCommand(newShapesCmd(), newShapeCmd(), newProjectCmd())
	return root
}
