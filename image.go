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
	"image"
	"math"
	"os"

	"seehuhn.de/go/geom/matrix"

	// extra decoders for LoadImage
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// DrawAnchoredImage draws the image so that its anchor point sits at
// (x, y).
//
// The size of the drawn image is determined as follows:
//   - If width and height are both zero, the image is drawn at its
//     natural size, one PDF point per pixel.
//   - If exactly one of width and height is given, the other is
//     derived from the image's aspect ratio.
//   - If both are given, the image is stretched to width × height.
//
// Negative values are replaced by their absolute value.
//
// The return values are the width and height of the underlying image
// in pixels.  This is often useful for layout computations and saves
// a separate call to Bounds.
//
// To draw an image with a transparent background, use an
// [pdfimage.Dict] with the MaskColors field set.
func (c *Canvas) DrawAnchoredImage(img pdfimage.Image, x, y, width, height float64, anchor Anchor) (float64, float64) {
	if c.Err != nil {
		return 0, 0
	}
	if img == nil {
		c.Err = errors.New("DrawAnchoredImage: nil image")
		return 0, 0
	}

	b := img.Bounds()
	pixWidth := float64(b.XMax - b.XMin)
	pixHeight := float64(b.YMax - b.YMin)
	if pixWidth <= 0 || pixHeight <= 0 {
		c.Err = fmt.Errorf("DrawAnchoredImage: empty image (%g x %g pixels)",
			pixWidth, pixHeight)
		return 0, 0
	}

	width = math.Abs(width)
	height = math.Abs(height)
	switch {
	case width == 0 && height == 0:
		width = pixWidth
		height = pixHeight
	case width == 0:
		width = height * pixWidth / pixHeight
	case height == 0:
		height = width * pixHeight / pixWidth
	}

	dx, dy, ok := anchor.offsets(width, height)
	if !ok {
		c.Err = fmt.Errorf("DrawAnchoredImage: invalid anchor %s", anchor)
		return 0, 0
	}

	// The Do operator paints the image into the unit square, so the
	// image is positioned by moving and scaling the coordinate system.
	c.PushGraphicsState()
	c.Transform(matrix.Translate(x-dx, y-dy))
	c.Transform(matrix.Scale(width, height))
	c.DrawXObject(img)
	c.PopGraphicsState()

	return pixWidth, pixHeight
}

// LoadImage reads an image file for use with
// [Canvas.DrawAnchoredImage].  PNG, JPEG, GIF, TIFF, BMP and WebP
// files are supported.  The image data is embedded losslessly.
func LoadImage(fname string) (pdfimage.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	return &pdfimage.PNG{Data: img}, nil
}
