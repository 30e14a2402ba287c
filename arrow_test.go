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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArrow(t *testing.T) {
	c, buf := newTestCanvas(t)

	c.Arrow(0, 0, 100, 0, 0)
	if c.Err != nil {
		t.Fatal(c.Err)
	}

	lines := contentLines(buf)

	// The graphics state is saved and restored around the arrow, and
	// the line cap is set to round.
	if lines[0] != "q" || lines[len(lines)-1] != "Q" {
		t.Errorf("arrow not wrapped in q ... Q: %v", lines)
	}
	if !slices.Contains(lines, "1 J") {
		t.Errorf("line cap not set to round: %v", lines)
	}

	ss := segments(t, buf)
	if len(ss) != 3 {
		t.Fatalf("got %d segments, want shaft plus two barbs", len(ss))
	}

	// shaft
	if d := cmp.Diff([4]float64{0, 0, 100, 0}, ss[0]); d != "" {
		t.Errorf("shaft mismatch (-want +got):\n%s", d)
	}

	// The default arrowhead is 1/12 of the shaft length, with the
	// barbs pointing back from the tip at 150 degrees on either side
	// of the shaft.
	const head = 100.0 / 12
	for i, sign := range []float64{1, -1} {
		barb := ss[1+i]
		if barb[0] != 100 || barb[1] != 0 {
			t.Errorf("barb %d does not start at the tip: %v", i, barb)
		}
		wantX := 100 + head*math.Cos(sign*barbAngle)
		wantY := head * math.Sin(sign*barbAngle)
		if math.Abs(barb[2]-wantX) > 1e-6 || math.Abs(barb[3]-wantY) > 1e-6 {
			t.Errorf("barb %d: got (%g, %g), want (%g, %g)",
				i, barb[2], barb[3], wantX, wantY)
		}
	}
}

func TestArrowHeadLength(t *testing.T) {
	c, buf := newTestCanvas(t)

	c.Arrow(10, 10, 10, 90, 20)
	if c.Err != nil {
		t.Fatal(c.Err)
	}

	ss := segments(t, buf)
	for _, barb := range ss[1:] {
		length := math.Hypot(barb[2]-barb[0], barb[3]-barb[1])
		if math.Abs(length-20) > 1e-6 {
			t.Errorf("barb length %g, want 20", length)
		}
	}
}

func TestArrowDegenerate(t *testing.T) {
	c, buf := newTestCanvas(t)
	c.Arrow(5, 5, 5, 5, 0)
	if c.Err == nil {
		t.Error("expected error for zero-length arrow")
	}
	if buf.Len() != 0 {
		t.Errorf("content written for degenerate arrow: %q", buf.String())
	}

	c, _ = newTestCanvas(t)
	c.ArrowPolar(5, 5, 0, 1, 0)
	if c.Err == nil {
		t.Error("expected error for zero-length polar arrow")
	}

	c, _ = newTestCanvas(t)
	c.Arrow(0, 0, 10, 0, -1)
	if c.Err == nil {
		t.Error("expected error for negative arrowhead length")
	}
}

func TestArrowPolar(t *testing.T) {
	// ArrowPolar draws the same arrow as Arrow with the endpoint
	// computed from the polar coordinates.
	cases := []struct {
		x, y, length, angle float64
	}{
		{0, 0, 100, 0},
		{20, 30, 72, math.Pi / 3},
		{50, 50, 40, -2.5},
		{0, 0, -50, 0}, // negative length points the other way
	}
	for _, tc := range cases {
		c1, buf1 := newTestCanvas(t)
		tip := c1.ArrowPolar(tc.x, tc.y, tc.length, tc.angle, 0)
		if c1.Err != nil {
			t.Fatal(c1.Err)
		}

		wantX := tc.x + tc.length*math.Cos(tc.angle)
		wantY := tc.y + tc.length*math.Sin(tc.angle)
		if math.Abs(tip.X-wantX) > 1e-9 || math.Abs(tip.Y-wantY) > 1e-9 {
			t.Errorf("tip: got (%g, %g), want (%g, %g)",
				tip.X, tip.Y, wantX, wantY)
		}

		c2, buf2 := newTestCanvas(t)
		c2.Arrow(tc.x, tc.y, wantX, wantY, 0)
		if c2.Err != nil {
			t.Fatal(c2.Err)
		}

		s1 := segments(t, buf1)
		s2 := segments(t, buf2)
		if len(s1) != len(s2) {
			t.Fatalf("segment count: %d vs %d", len(s1), len(s2))
		}
		for i := range s1 {
			for j := range s1[i] {
				if math.Abs(s1[i][j]-s2[i][j]) > 1e-6 {
					t.Errorf("segment %d differs: %v vs %v", i, s1[i], s2[i])
					break
				}
			}
		}
	}
}
