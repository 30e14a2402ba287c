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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// LinePolar strokes a line segment from (x, y) to the point at
// distance length and angle angle, and returns that endpoint.
//
// The angle is measured in radians, counter-clockwise from the
// positive x-axis.  A negative length draws the segment in the
// opposite direction.
func (c *Canvas) LinePolar(x, y, length, angle float64) vec.Vec2 {
	end := polar(x, y, length, angle)
	c.Line(x, y, end.X, end.Y)
	return end
}

// polar converts a polar offset from (x, y) into the endpoint in
// Cartesian coordinates.
func polar(x, y, length, angle float64) vec.Vec2 {
	return vec.Vec2{
		X: x + length*math.Cos(angle),
		Y: y + length*math.Sin(angle),
	}
}
