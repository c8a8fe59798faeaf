// SPDX-License-Identifier: Unlicense OR MIT

package termimg

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderShape(t *testing.T) {
	img := image.NewUniform(color.NRGBA{R: 0xff, A: 0xff})
	bounded := image.NewNRGBA(image.Rect(0, 0, 40, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 40; x++ {
			bounded.Set(x, y, img.C)
		}
	}
	out := Render(bounded, 20)
	lines := strings.Split(out, "\n")
	// 20 columns of a 4:1 image are 5 pixel rows, rounded up to 3 cells.
	assert.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 20, lipgloss.Width(l))
		assert.Contains(t, l, upperHalf)
	}
}

func TestRenderTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 2))
	out := Render(img, 8)
	assert.Equal(t, strings.Repeat(" ", 8), out)
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, Render(image.NewNRGBA(image.Rect(0, 0, 8, 4)), 0))
	assert.Empty(t, Render(image.NewNRGBA(image.Rectangle{}), 10))
}

func TestHex(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ff0000"), Hex(color.NRGBA{R: 0xff, A: 0xff}))
	assert.Equal(t, lipgloss.Color("#00ff00"), Hex(color.NRGBA{G: 0xff, A: 0x10}))
}
