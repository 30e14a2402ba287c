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

// Package canvas extends the content stream writer of
// [seehuhn.de/go/pdf/graphics] with convenience methods for common
// drawing tasks:
//
//   - arrows ([Canvas.Arrow], [Canvas.ArrowPolar])
//   - lines given in polar coordinates ([Canvas.LinePolar])
//   - rectangles given by two opposite corners ([Canvas.RectFromCorners])
//   - anchored placement of images and text
//     ([Canvas.DrawAnchoredImage], [Canvas.DrawAnchoredText])
//
// A [Canvas] embeds a [graphics.Writer], so all of the writer's
// methods remain available:
//
//	c := canvas.NewWriter(stream, rm)
//	c.SetFont(F, 12)
//	c.Arrow(72, 72, 144, 144, 0)
//	c.DrawAnchoredText(108, 160, "peak", canvas.AnchorSouth)
//
// Errors follow the writer's sticky error model: once c.Err is
// non-nil, all drawing methods are no-ops.
package canvas
