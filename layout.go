// SPDX-License-Identifier: Unlicense OR MIT

package progressbutton

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// ButtonStyle lays out a Button with Gio.
type ButtonStyle struct {
	Text string
	// Color is the text color.
	Color    color.NRGBA
	TextSize unit.Sp
	// Height is used when the constraints leave the height open.
	Height unit.Dp
	// CornerRadius is the corner radius. Zero selects a pill shape.
	CornerRadius unit.Dp
	Button       *Button

	theme *material.Theme
}

// ProgressButton returns a style drawing b with txt in the colors and text
// size of th. The corner radius of b's style is taken in Dp.
func ProgressButton(th *material.Theme, b *Button, txt string) ButtonStyle {
	return ButtonStyle{
		Text:         txt,
		Color:        th.Palette.ContrastFg,
		TextSize:     th.TextSize * 14.0 / 16.0,
		Height:       48,
		CornerRadius: unit.Dp(b.renderer.Style().Radius),
		Button:       b,
		theme:        th,
	}
}

func (s ButtonStyle) Layout(gtx layout.Context) layout.Dimensions {
	return s.Button.Clickable.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		size := s.size(gtx)
		if size.X <= 0 || size.Y <= 0 {
			return layout.Dimensions{}
		}
		gtx.Constraints = layout.Exact(size)
		f := s.Button.Frame(s.Text, s.Color)
		f.Disabled = f.Disabled || gtx.Queue == nil
		if s.CornerRadius > 0 {
			f.Radius = float32(gtx.Dp(s.CornerRadius))
		}
		if img := s.Button.renderer.Background(f, size); img != nil {
			defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
			s.Button.imageOp(img).Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
		}
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = image.Point{}
			l := material.Label(s.theme, s.TextSize, s.Text)
			l.Color = s.Color
			l.Alignment = text.Middle
			l.MaxLines = 1
			return l.Layout(gtx)
		})
	})
}

// size returns the button size: the minimum constraints, widened to the
// maximum width and Height when they are zero.
func (s ButtonStyle) size(gtx layout.Context) image.Point {
	size := gtx.Constraints.Min
	if size.X == 0 {
		size.X = gtx.Constraints.Max.X
	}
	if size.Y == 0 {
		size.Y = gtx.Dp(s.Height)
	}
	return gtx.Constraints.Constrain(size)
}
