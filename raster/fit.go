// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Fit scales a state image to the button size.
type Fit uint8

const (
	// Fill stretches the image to cover the button exactly, ignoring its
	// aspect ratio.
	Fill Fit = iota
	// Unscaled keeps the image at its pixel size, anchored at the top-left
	// corner. Parts outside the button are cropped and uncovered parts stay
	// transparent.
	Unscaled
)

func (f Fit) String() string {
	switch f {
	case Fill:
		return "fill"
	case Unscaled:
		return "unscaled"
	default:
		return "invalid"
	}
}

// FitImage renders src into a new image of the given size according to
// fit. Uniform images are expanded without scaling.
func FitImage(src image.Image, size image.Point, fit Fit) *image.RGBA {
	if src == nil || size.X <= 0 || size.Y <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	sb := src.Bounds()
	if _, ok := src.(*image.Uniform); ok || fit == Unscaled || sb.Size() == size {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
		return dst
	}
	if sb.Empty() {
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}
