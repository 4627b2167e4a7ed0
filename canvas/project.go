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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"seehuhn.de/go/cells"
)

// ProjectVersion is the project file format written by [Snapshot.Export].
const ProjectVersion = 1

// ErrUnsupportedVersion is returned by [DecodeProject] for project files
// in an unknown format.
var ErrUnsupportedVersion = errors.New("canvas: unsupported project version")

// timestampFormat matches JavaScript's Date.toISOString.
const timestampFormat = "2006-01-02T15:04:05.000Z"

// Project is the on-disk form of a canvas.
type Project struct {
	Version   int     `json:"version"`
	Pixels    []Pixel `json:"pixels"`
	Timestamp string  `json:"timestamp"`
}

// Export encodes the snapshot as an indented JSON project file.
func (s *Snapshot) Export() ([]byte, error) {
	return s.exportAt(time.Now())
}

func (s *Snapshot) exportAt(now time.Time) ([]byte, error) {
	p := &Project{
		Version:   ProjectVersion,
		Pixels:    s.Pixels(),
		Timestamp: now.UTC().Format(timestampFormat),
	}
	return json.MarshalIndent(p, "", "  ")
}

// DecodeProject parses a project file.
func DecodeProject(data []byte) (*Project, error) {
	p := &Project{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("canvas: invalid project: %w", err)
	}
	if p.Version != ProjectVersion {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedVersion, p.Version)
	}
	return p, nil
}

// Import replaces the contents of the canvas with the pixels of a project
// file.  If the data cannot be decoded, the canvas is left unchanged, the
// reason is logged, and Import returns false.
func (c *Canvas) Import(data []byte) bool {
	p, err := DecodeProject(data)
	if err != nil {
		cells.Logger().Warn("project import failed", "error", err)
		return false
	}
	c.Replace(p.Pixels)
	cells.Logger().Debug("project imported", "pixels", c.Snapshot().Len())
	return true
}
