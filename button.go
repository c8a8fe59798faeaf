// SPDX-License-Identifier: Unlicense OR MIT

package progressbutton

import (
	"image"
	"image/color"
	"image/draw"

	"gioui.org/op/paint"
	"gioui.org/widget"
)

// Button holds the mutable state of a progress button. Hosts mutate it
// through the setters, each of which requests a redraw, and render it
// with Render or with a ButtonStyle.
type Button struct {
	// Clickable tracks clicks when the button is laid out with Gio.
	Clickable widget.Clickable
	// Invalidate is called after every mutation to request a redraw,
	// typically app.Window.Invalidate. It may be nil.
	Invalidate func()

	state    State
	disabled bool
	renderer *Renderer

	// imgOp wraps the last composited background uploaded to Gio.
	imgOp struct {
		src *image.RGBA
		op  paint.ImageOp
	}
}

// NewButton returns a button in the Init state, drawn with style s.
func NewButton(s Style) (*Button, error) {
	r, err := NewRenderer(s)
	if err != nil {
		return nil, err
	}
	return &Button{renderer: r}, nil
}

// State returns the current state.
func (b *Button) State() State {
	return b.state
}

// Disabled reports whether the button draws its disabled image.
func (b *Button) Disabled() bool {
	return b.disabled
}

// Renderer returns the renderer owned by b.
func (b *Button) Renderer() *Renderer {
	return b.renderer
}

// SetProgress switches to the in-progress state. Percentages outside
// [0, 100] are clamped.
func (b *Button) SetProgress(percent int) {
	b.setState(ProgressState(percent))
}

// SetSuccess switches to the success state.
func (b *Button) SetSuccess() {
	b.setState(SuccessState())
}

// SetFail switches to the failure state.
func (b *Button) SetFail() {
	b.setState(FailState())
}

// Reset switches back to the Init state.
func (b *Button) Reset() {
	b.setState(InitState())
}

// SetDisabled selects the disabled image regardless of state.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	b.invalidate()
}

// Frame returns the frame describing the button with the given label.
func (b *Button) Frame(txt string, col color.Color) Frame {
	return Frame{State: b.state, Disabled: b.disabled, Text: txt, Color: col}
}

// Render draws the button with the given label onto dst.
func (b *Button) Render(dst draw.Image, txt string, col color.Color) {
	b.renderer.Render(dst, b.Frame(txt, col))
}

func (b *Button) setState(s State) {
	b.state = s
	b.invalidate()
}

func (b *Button) invalidate() {
	if b.Invalidate != nil {
		b.Invalidate()
	}
}

// imageOp returns an image operation for img, reusing the previous one
// while img is unchanged so Gio does not upload it again.
func (b *Button) imageOp(img *image.RGBA) paint.ImageOp {
	if b.imgOp.src != img {
		b.imgOp.src = img
		b.imgOp.op = paint.NewImageOp(img)
	}
	return b.imgOp.op
}
