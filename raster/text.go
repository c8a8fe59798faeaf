// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Face is a sized font face with its vertical metrics. It is created once
// and reused for every label drawn by a renderer. A Face is not safe for
// concurrent use.
type Face struct {
	face    font.Face
	ascent  fixed.Int26_6
	descent fixed.Int26_6
}

// NewFace parses ttf and returns a face of size points at dpi. A nil ttf
// selects the Go Regular font.
func NewFace(ttf []byte, size, dpi float64) (*Face, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	m := face.Metrics()
	return &Face{face: face, ascent: m.Ascent, descent: m.Descent}, nil
}

// Origin returns the dot position of txt centered in r: horizontally by
// its advance, vertically by placing the baseline halfway between ascent
// and descent around the middle of r.
func (f *Face) Origin(r image.Rectangle, txt string) fixed.Point26_6 {
	adv := font.MeasureString(f.face, txt)
	x := fixed.I(r.Min.X) + (fixed.I(r.Dx())-adv)/2
	y := fixed.I(r.Min.Y) + fixed.I(r.Dy())/2 + (f.ascent-f.descent)/2
	return fixed.Point26_6{X: x, Y: y}
}

// DrawCentered draws txt in col centered within r on dst.
func (f *Face) DrawCentered(dst draw.Image, r image.Rectangle, txt string, col color.Color) {
	if txt == "" || r.Empty() {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  f.Origin(r, txt),
	}
	d.DrawString(txt)
}

// Close releases the underlying face.
func (f *Face) Close() error {
	return f.face.Close()
}
