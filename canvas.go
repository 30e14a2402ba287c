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
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas wraps a [graphics.Writer] and adds convenience methods for
// drawing arrows, polar-coordinate lines, corner-defined rectangles,
// and anchored images and text.
//
// All methods of the embedded writer remain available.  Errors are
// reported through the writer's Err field: once Err is non-nil, all
// drawing methods are no-ops.
type Canvas struct {
	*graphics.Writer

	// The current font and size, as set by [Canvas.SetFont].
	// [Canvas.DrawAnchoredText] uses these to measure strings.
	font     font.Layouter
	fontSize float64
}

// New wraps an existing graphics writer.
func New(w *graphics.Writer) *Canvas {
	return &Canvas{Writer: w}
}

// NewWriter allocates a new graphics writer for the given content
// stream and wraps it.
func NewWriter(content io.Writer, rm *pdf.ResourceManager) *Canvas {
	return New(graphics.NewWriter(content, rm))
}

// SetFont sets the current font and font size.
//
// In addition to emitting the font selection into the content stream,
// the font is recorded on the canvas so that [Canvas.DrawAnchoredText]
// can measure strings.
func (c *Canvas) SetFont(F font.Layouter, size float64) {
	if c.Err != nil {
		return
	}
	if F == nil {
		c.Err = errors.New("SetFont: nil font")
		return
	}
	if size <= 0 {
		c.Err = fmt.Errorf("SetFont: invalid font size %f", size)
		return
	}

	c.TextSetFont(F, size)
	if c.Err != nil {
		return
	}
	c.font = F
	c.fontSize = size
}

// SetFontSize changes the size of the current font.
func (c *Canvas) SetFontSize(size float64) {
	if c.Err != nil {
		return
	}
	if c.font == nil {
		c.Err = errors.New("SetFontSize: no font set")
		return
	}
	c.SetFont(c.font, size)
}

// FontSize returns the font size set by the last call to
// [Canvas.SetFont] or [Canvas.SetFontSize], or 0 if no font has been
// set.
func (c *Canvas) FontSize() float64 {
	return c.fontSize
}

// Line strokes a straight line segment from (x1, y1) to (x2, y2).
func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
	c.Stroke()
}
