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

// RectFromCorners appends the rectangle with opposite corners
// (x1, y1) and (x2, y2) to the current path as a closed subpath.
// The corners may be given in any order.
//
// Like [graphics.Writer.Rectangle], this only constructs the path;
// follow with Stroke, Fill or FillAndStroke to paint it.
func (c *Canvas) RectFromCorners(x1, y1, x2, y2 float64) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	c.Rectangle(x1, y1, x2-x1, y2-y1)
}
