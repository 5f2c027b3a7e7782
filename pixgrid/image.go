// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package pixgrid

import (
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder

	"github.com/Lexer747/runpix/colour"
	"github.com/Lexer747/runpix/utils/errors"
)

// FromImage copies [img] into a new grid, alpha is discarded. The grid's (0, 0) is the image's
// [image.Rectangle.Min].
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := New(bounds.Dx(), bounds.Dy())
	for y := range g.height {
		for x := range g.width {
			g.pixels[g.linear(x, y)] = colour.FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return g
}

// Image is an opaque copy of the grid.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for i, c := range g.pixels {
		o := i * 4
		img.Pix[o+0] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 0xff
	}
	return img
}

// ReadImage decodes any of png, jpeg, gif, bmp, tiff or webp, returning the format name alongside the grid.
func ReadImage(r io.Reader) (*Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "while decoding image")
	}
	return FromImage(img), format, nil
}

func WritePNG(w io.Writer, g *Grid) error {
	return errors.Wrap(png.Encode(w, g.Image()), "while encoding png")
}
