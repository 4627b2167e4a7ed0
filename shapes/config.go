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

package shapes

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ErrMissingKind is returned by [Decode] when the configuration has no
// "kind" key.
var ErrMissingKind = errors.New("shapes: missing shape kind")

type header struct {
	Kind Kind `toml:"kind"`
}

// Decode reads a shape from TOML.  The "kind" key selects the shape
// variant, all other top-level keys set its parameters.  Parameters which
// are not given keep their default values, unknown keys and tables are
// ignored.  The result is clamped to the valid parameter ranges.
//
// Example:
//
//	kind = "star"
//	vertices = 7
//	diameter2 = 60
func Decode(data []byte) (Shape, error) {
	var hdr header
	if err := toml.Unmarshal(data, &hdr); err != nil {
		return nil, fmt.Errorf("shapes: %w", err)
	}
	if hdr.Kind == "" {
		return nil, ErrMissingKind
	}
	s, err := New(hdr.Kind)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("shapes: %s: %w", hdr.Kind, err)
	}
	s.(clamper).Clamp()
	return s, nil
}

// Encode writes a shape in the format read by [Decode].
func Encode(s Shape) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := toml.NewEncoder(buf)
	if err := enc.Encode(header{Kind: s.Kind()}); err != nil {
		return nil, err
	}
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("shapes: %s: %w", s.Kind(), err)
	}
	return buf.Bytes(), nil
}
