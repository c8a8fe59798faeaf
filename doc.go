// SPDX-License-Identifier: Unlicense OR MIT

/*
Package progressbutton implements a button that shows one of four states:
idle, in progress with a partial fill, success and failure.

Each state is drawn by compositing an image into a rounded rectangle. In
progress, a second image covers the left part of the button in proportion
to the percentage. The label is centered on top.

A Button holds the current State and requests a redraw on every change:

	b, err := progressbutton.NewButton(progressbutton.DefaultStyle())
	...
	b.Invalidate = w.Invalidate
	b.SetProgress(40)

Draw it with Gio through ProgressButton(th, b, "Upload").Layout(gtx), or
onto any draw.Image with Button.Render. A Renderer can also be used
directly with Frame values, without a Button.
*/
package progressbutton
