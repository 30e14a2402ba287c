// seehuhn.de/go/canvas - convenience helpers for PDF content streams
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

import "fmt"

// Anchor selects the reference point used to position drawn content
// relative to given coordinates:
//
//	nw   n   ne
//	w    c    e
//	sw   s   se
//
// The zero value is [AnchorCenter].
type Anchor int

// The nine anchor points.
const (
	AnchorCenter Anchor = iota
	AnchorNorth
	AnchorNorthEast
	AnchorEast
	AnchorSouthEast
	AnchorSouth
	AnchorSouthWest
	AnchorWest
	AnchorNorthWest
)

var anchorNames = map[Anchor]string{
	AnchorCenter:    "c",
	AnchorNorth:     "n",
	AnchorNorthEast: "ne",
	AnchorEast:      "e",
	AnchorSouthEast: "se",
	AnchorSouth:     "s",
	AnchorSouthWest: "sw",
	AnchorWest:      "w",
	AnchorNorthWest: "nw",
}

// ParseAnchor converts a compass code ("c", "n", "ne", "e", "se", "s",
// "sw", "w", "nw") into an [Anchor].
func ParseAnchor(s string) (Anchor, error) {
	for a, name := range anchorNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("invalid anchor %q", s)
}

// String returns the compass code for the anchor.
func (a Anchor) String() string {
	if name, ok := anchorNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// offsets returns the position of the anchor point within a
// width×height box, measured from the lower-left corner.  The second
// return value is false if the anchor is not one of the nine valid
// values.
func (a Anchor) offsets(width, height float64) (dx, dy float64, ok bool) {
	var fx, fy float64

	switch a {
	case AnchorWest, AnchorNorthWest, AnchorSouthWest:
		fx = 0
	case AnchorEast, AnchorNorthEast, AnchorSouthEast:
		fx = 1
	case AnchorCenter, AnchorNorth, AnchorSouth:
		fx = 0.5
	default:
		return 0, 0, false
	}

	switch a {
	case AnchorSouth, AnchorSouthWest, AnchorSouthEast:
		fy = 0
	case AnchorNorth, AnchorNorthWest, AnchorNorthEast:
		fy = 1
	default:
		fy = 0.5
	}

	return fx * width, fy * height, true
}
