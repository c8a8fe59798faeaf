// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestRadius(t *testing.T) {
	tests := []struct {
		configured float32
		height     int
		want       float32
	}{
		{0, 80, 40},
		{8, 80, 8},
		{40, 80, 40},
		{41, 80, 40},
		{100, 80, 40},
		{-3, 80, 40},
		{5, 7, 3.5},
	}
	for _, tc := range tests {
		if got := Radius(tc.configured, tc.height); got != tc.want {
			t.Errorf("Radius(%v, %d) = %v, want %v", tc.configured, tc.height, got, tc.want)
		}
	}
}

func TestFillWidth(t *testing.T) {
	tests := []struct {
		width, percent, want int
	}{
		{200, 0, 0},
		{200, 50, 100},
		{200, 100, 200},
		{200, 150, 200},
		{200, -5, 0},
		{3, 50, 2},
		{3, 33, 1},
		{7, 10, 1},
		{0, 50, 0},
	}
	for _, tc := range tests {
		if got := FillWidth(tc.width, tc.percent); got != tc.want {
			t.Errorf("FillWidth(%d, %d) = %d, want %d", tc.width, tc.percent, got, tc.want)
		}
	}
}

func TestRoundRectMask(t *testing.T) {
	size := image.Pt(200, 80)
	m := RoundRect(size, 20)
	if m.Bounds() != (image.Rectangle{Max: size}) {
		t.Fatalf("mask bounds = %v", m.Bounds())
	}
	if a := m.AlphaAt(100, 40).A; a != 0xff {
		t.Errorf("center alpha = %#x, want opaque", a)
	}
	if a := m.AlphaAt(100, 0).A; a != 0xff {
		t.Errorf("top edge alpha = %#x, want opaque", a)
	}
	for _, p := range []image.Point{{0, 0}, {199, 0}, {0, 79}, {199, 79}} {
		if a := m.AlphaAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %#x, want transparent", p, a)
		}
	}
	// Just inside the straight part of the left edge.
	if a := m.AlphaAt(0, 40).A; a != 0xff {
		t.Errorf("left edge alpha = %#x, want opaque", a)
	}
}

func TestRoundRectSquare(t *testing.T) {
	m := RoundRect(image.Pt(10, 10), 0)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if a := m.AlphaAt(x, y).A; a != 0xff {
				t.Fatalf("alpha at (%d,%d) = %#x, want opaque", x, y, a)
			}
		}
	}
}

func TestRoundRectEmpty(t *testing.T) {
	for _, sz := range []image.Point{{0, 0}, {10, 0}, {0, 10}, {-1, 5}} {
		if m := RoundRect(sz, 4); m != nil {
			t.Errorf("RoundRect(%v) = %v, want nil", sz, m.Bounds())
		}
	}
	if img := Composite(nil, image.Black, nil, 0); img != nil {
		t.Errorf("Composite of nil mask = %v, want nil", img.Bounds())
	}
}

func TestCompositeSourceIn(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	mask := RoundRect(image.Pt(200, 80), 40)
	out := Composite(mask, image.NewUniform(red), image.NewUniform(blue), 100)

	if got := out.RGBAAt(150, 40); got != red {
		t.Errorf("background pixel = %v, want %v", got, red)
	}
	if got := out.RGBAAt(50, 40); got != blue {
		t.Errorf("fill pixel = %v, want %v", got, blue)
	}
	if got := out.RGBAAt(99, 40); got != blue {
		t.Errorf("last fill column = %v, want %v", got, blue)
	}
	if got := out.RGBAAt(100, 40); got != red {
		t.Errorf("first background column = %v, want %v", got, red)
	}
	// The fill is clipped by the same rounded mask.
	if got := out.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("fill corner = %v, want transparent", got)
	}
	if got := out.RGBAAt(199, 79); got != (color.RGBA{}) {
		t.Errorf("background corner = %v, want transparent", got)
	}
}

func TestCompositeNoFill(t *testing.T) {
	green := color.RGBA{G: 0xff, A: 0xff}
	mask := RoundRect(image.Pt(40, 20), 4)
	for _, fill := range []int{0, -1} {
		out := Composite(mask, image.NewUniform(green), image.Black, fill)
		if got := out.RGBAAt(2, 10); got != green {
			t.Errorf("fill %d: pixel = %v, want %v", fill, got, green)
		}
	}
	out := Composite(mask, image.NewUniform(green), nil, 40)
	if got := out.RGBAAt(20, 10); got != green {
		t.Errorf("nil foreground: pixel = %v, want %v", got, green)
	}
}

func TestCompositeFullFill(t *testing.T) {
	blue := color.RGBA{B: 0xff, A: 0xff}
	mask := RoundRect(image.Pt(40, 20), 4)
	out := Composite(mask, image.White, image.NewUniform(blue), 40)
	for x := 0; x < 40; x++ {
		if got := out.RGBAAt(x, 10); got != blue {
			t.Fatalf("column %d = %v, want %v", x, got, blue)
		}
	}
}
