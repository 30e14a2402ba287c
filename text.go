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
	"errors"
	"fmt"

	"seehuhn.de/go/pdf/font"
)

// DrawAnchoredText draws the string s in the current font so that the
// anchor point of the text sits at (x, y).
//
// Horizontal alignment uses the advance width of the string, vertical
// alignment the height of the string's ink bounding box.  With a
// south anchor the baseline is left at y, so anchors in the south row
// behave like ReportLab's drawString, drawCentredString and
// drawRightString.
//
// The font must have been set with [Canvas.SetFont] before calling
// this method.  Drawing an empty string does nothing.
func (c *Canvas) DrawAnchoredText(x, y float64, s string, anchor Anchor) {
	if c.Err != nil {
		return
	}
	if c.font == nil {
		c.Err = errors.New("DrawAnchoredText: no font set")
		return
	}
	if s == "" {
		return
	}

	gg := c.font.Layout(nil, c.fontSize, s)
	width := textWidth(gg)
	bbox := c.font.GetGeometry().BoundingBox(c.fontSize, gg)
	height := bbox.URy - bbox.LLy

	dx, dy, ok := anchor.offsets(width, height)
	if !ok {
		c.Err = fmt.Errorf("DrawAnchoredText: invalid anchor %s", anchor)
		return
	}

	c.TextBegin()
	c.TextFirstLine(x-dx, y-dy)
	c.TextShowGlyphs(gg)
	c.TextEnd()
}

// textWidth returns the total advance width of a glyph sequence.
func textWidth(gg *font.GlyphSeq) float64 {
	w := gg.Skip
	for _, g := range gg.Seq {
		w += g.Advance
	}
	return w
}
