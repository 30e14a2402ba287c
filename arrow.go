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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// The two barbs of an arrowhead point back from the tip at this angle
// relative to the shaft.
const barbAngle = 150 * math.Pi / 180

// Arrow strokes an arrow from (x1, y1) to (x2, y2), with the
// arrowhead at (x2, y2).
//
// headLength is the length of the two arrowhead barbs; if it is 0,
// 1/12 of the shaft length is used.  The line cap is forced to round
// while the arrow is drawn, since butt caps leave visible gaps at the
// tip; the previous graphics state is restored afterwards.
func (c *Canvas) Arrow(x1, y1, x2, y2, headLength float64) {
	if c.Err != nil {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.Err = fmt.Errorf("Arrow: zero-length arrow at (%g, %g)", x1, y1)
		return
	}
	headLength, err := checkHeadLength(headLength, length)
	if err != nil {
		c.Err = err
		return
	}

	c.PushGraphicsState()
	c.SetLineCap(graphics.LineCapRound)

	c.Line(x1, y1, x2, y2)
	c.drawHead(x2, y2, headLength, math.Atan2(dy, dx))

	c.PopGraphicsState()
}

// ArrowPolar strokes an arrow from (x, y) to the point at distance
// length and angle angle (radians), with the arrowhead at that point,
// and returns the tip coordinates.
//
// headLength is interpreted as for [Canvas.Arrow].
func (c *Canvas) ArrowPolar(x, y, length, angle, headLength float64) vec.Vec2 {
	tip := polar(x, y, length, angle)
	if c.Err != nil {
		return tip
	}
	if length == 0 {
		c.Err = fmt.Errorf("ArrowPolar: zero-length arrow at (%g, %g)", x, y)
		return tip
	}
	headLength, err := checkHeadLength(headLength, math.Abs(length))
	if err != nil {
		c.Err = err
		return tip
	}

	// For negative lengths the tip lies on the opposite side, so the
	// barbs have to point back along the actual shaft direction.
	if length < 0 {
		angle += math.Pi
	}

	c.PushGraphicsState()
	c.SetLineCap(graphics.LineCapRound)

	c.Line(x, y, tip.X, tip.Y)
	c.drawHead(tip.X, tip.Y, headLength, angle)

	c.PopGraphicsState()

	return tip
}

// drawHead strokes the two arrowhead barbs at the tip of a shaft
// pointing in direction angle.
func (c *Canvas) drawHead(x, y, headLength, angle float64) {
	c.LinePolar(x, y, headLength, angle+barbAngle)
	c.LinePolar(x, y, headLength, angle-barbAngle)
}

func checkHeadLength(headLength, shaftLength float64) (float64, error) {
	switch {
	case headLength < 0:
		return 0, fmt.Errorf("invalid arrowhead length %f", headLength)
	case headLength == 0:
		return shaftLength / 12, nil
	default:
		return headLength, nil
	}
}
