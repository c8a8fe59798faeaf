// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements the CPU side of the progress button: rounded
rectangle masks, source-in compositing of the state images and the label
text.

All functions operate on images whose bounds start at the origin; callers
translate when drawing onto a larger surface.
*/
package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// Radius returns the corner radius used for a widget of the given height.
// A configured radius of zero, or one larger than half the height, is
// replaced by half the height. Negative radii count as zero.
func Radius(configured float32, height int) float32 {
	half := float32(height) / 2
	if configured <= 0 || configured > half {
		return half
	}
	return configured
}

// FillWidth returns the width in pixels of a progress fill covering
// percent of width, rounded to the nearest pixel. Percent is clamped to
// [0, 100].
func FillWidth(width, percent int) int {
	if width <= 0 || percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return width
	}
	return (width*percent + 50) / 100
}

// RoundRect rasterizes an anti-aliased rounded rectangle covering size into
// an alpha mask. It returns nil for empty sizes.
func RoundRect(size image.Point, radius float32) *image.Alpha {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	w, h := float32(size.X), float32(size.Y)
	r := radius
	if r < 0 {
		r = 0
	}
	if lim := min(w, h) / 2; r > lim {
		r = lim
	}
	z := vector.NewRasterizer(size.X, size.Y)
	c := r * kappa
	z.MoveTo(r, 0)
	z.LineTo(w-r, 0)
	z.CubeTo(w-r+c, 0, w, r-c, w, r)
	z.LineTo(w, h-r)
	z.CubeTo(w, h-r+c, w-r+c, h, w-r, h)
	z.LineTo(r, h)
	z.CubeTo(r-c, h, 0, h-r+c, 0, h-r)
	z.LineTo(0, r)
	z.CubeTo(0, r-c, r-c, 0, r, 0)
	z.ClosePath()
	mask := image.NewAlpha(image.Rectangle{Max: size})
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Composite produces the button background: bg kept only where mask is
// opaque (source-in), then fg over the left fillWidth pixels through the
// same mask. Both images are sampled at the mask coordinates; use Fit to
// bring them to size first. A nil fg or a zero fillWidth skips the fill.
func Composite(mask *image.Alpha, bg, fg image.Image, fillWidth int) *image.RGBA {
	if mask == nil {
		return nil
	}
	r := mask.Bounds()
	out := image.NewRGBA(r)
	if bg != nil {
		draw.DrawMask(out, r, bg, r.Min, mask, r.Min, draw.Src)
	}
	if fg == nil || fillWidth <= 0 {
		return out
	}
	fr := r
	fr.Max.X = fr.Min.X + fillWidth
	fr = fr.Intersect(r)
	draw.DrawMask(out, fr, fg, fr.Min, mask, fr.Min, draw.Src)
	return out
}
