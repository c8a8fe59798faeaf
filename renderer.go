// SPDX-License-Identifier: Unlicense OR MIT

package progressbutton

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/trendit/progressbutton/raster"
)

// Frame is the input of a single render. Frames are values; nothing a
// renderer draws depends on earlier frames.
type Frame struct {
	State    State
	Disabled bool
	// Text is the label drawn centered over the background.
	Text string
	// Color is the label color. Nil means opaque black.
	Color color.Color
	// Radius overrides the style's corner radius, in pixels, when positive.
	Radius float32
}

// Renderer draws buttons on the CPU. It owns the font face and caches the
// fitted images and the last composited background, so drawing the same
// frame twice is cheap and pixel identical. A Renderer is not safe for
// concurrent use.
type Renderer struct {
	style Style
	face  *raster.Face

	fitted map[fitKey]*image.RGBA
	last   struct {
		key bgKey
		img *image.RGBA
	}
}

type fitKey struct {
	slot slot
	size image.Point
}

type bgKey struct {
	state    State
	disabled bool
	size     image.Point
	radius   float32
}

// NewRenderer returns a renderer for s. Unset fields of s take their
// defaults. It fails only if s.Font cannot be parsed.
func NewRenderer(s Style) (*Renderer, error) {
	s = s.withDefaults()
	face, err := raster.NewFace(s.Font, s.TextSize, s.DPI)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		style:  s,
		face:   face,
		fitted: make(map[fitKey]*image.RGBA),
	}, nil
}

// Style returns the configuration the renderer was created with, with
// defaults applied.
func (r *Renderer) Style() Style {
	return r.style
}

// Background returns the composited button background for f at size: the
// state image clipped to the rounded rectangle, with the progress fill on
// top when f is in progress. It returns nil when size is empty. The
// returned image is shared with the cache and must not be modified.
func (r *Renderer) Background(f Frame, size image.Point) *image.RGBA {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	radius := r.style.Radius
	if f.Radius > 0 {
		radius = f.Radius
	}
	key := bgKey{state: f.State, disabled: f.Disabled, size: size, radius: radius}
	if r.last.img != nil && r.last.key == key {
		return r.last.img
	}
	bg := r.fit(backgroundSlot(f.State, f.Disabled), size)
	var fg image.Image
	fill := 0
	if s := foregroundSlot(f.State, f.Disabled); s != slotNone {
		fg = r.fit(s, size)
		fill = raster.FillWidth(size.X, f.State.Percent())
	}
	mask := raster.RoundRect(size, raster.Radius(radius, size.Y))
	img := raster.Composite(mask, bg, fg, fill)
	r.last.key = key
	r.last.img = img
	return img
}

// Render draws f onto dst within dst's bounds: the composited background
// followed by the centered label. Empty bounds draw nothing.
func (r *Renderer) Render(dst draw.Image, f Frame) {
	b := dst.Bounds()
	img := r.Background(f, b.Size())
	if img == nil {
		return
	}
	draw.Draw(dst, b, img, image.Point{}, draw.Over)
	col := f.Color
	if col == nil {
		col = color.Black
	}
	r.face.DrawCentered(dst, b, f.Text, col)
}

// Close releases the font face.
func (r *Renderer) Close() error {
	return r.face.Close()
}

func (r *Renderer) fit(s slot, size image.Point) *image.RGBA {
	k := fitKey{slot: s, size: size}
	if img, ok := r.fitted[k]; ok {
		return img
	}
	img := raster.FitImage(r.style.Images.at(s), size, r.style.Fit)
	// Only the current size is kept.
	for old := range r.fitted {
		if old.size != size {
			delete(r.fitted, old)
		}
	}
	r.fitted[k] = img
	return img
}
