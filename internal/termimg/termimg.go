// SPDX-License-Identifier: Unlicense OR MIT

// Package termimg draws images in a terminal using upper half block
// characters, two pixel rows per text row.
package termimg

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

const upperHalf = "▀"

// alphaCutoff is the alpha below which a pixel is left to the terminal
// background.
const alphaCutoff = 0x80

// Render returns img scaled to cols columns as lines of styled half
// blocks. Rows are chosen to keep the aspect ratio, assuming terminal cells
// twice as tall as wide.
func Render(img image.Image, cols int) string {
	b := img.Bounds()
	if cols <= 0 || b.Empty() {
		return ""
	}
	rows := (b.Dy()*cols + b.Dx() - 1) / b.Dx()
	if rows%2 == 1 {
		rows++
	}
	if rows == 0 {
		rows = 2
	}
	small := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)

	var sb strings.Builder
	for y := 0; y < rows; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			sb.WriteString(cell(small.NRGBAAt(x, y), small.NRGBAAt(x, y+1)))
		}
	}
	return sb.String()
}

func cell(top, bottom color.NRGBA) string {
	st := lipgloss.NewStyle()
	switch {
	case top.A < alphaCutoff && bottom.A < alphaCutoff:
		return " "
	case top.A < alphaCutoff:
		return st.Foreground(Hex(bottom)).Render("▄")
	case bottom.A < alphaCutoff:
		return st.Foreground(Hex(top)).Render(upperHalf)
	}
	return st.Foreground(Hex(top)).Background(Hex(bottom)).Render(upperHalf)
}

// Hex returns c as a lipgloss color, ignoring alpha.
func Hex(c color.Color) lipgloss.Color {
	cf, _ := colorful.MakeColor(opaque(c))
	return lipgloss.Color(cf.Hex())
}

func opaque(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}
