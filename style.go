// SPDX-License-Identifier: Unlicense OR MIT

package progressbutton

import (
	"image"
	"image/color"

	"github.com/trendit/progressbutton/raster"
)

const (
	// DefaultRadius is the corner radius in pixels used when a Style
	// leaves Radius unset.
	DefaultRadius = 8
	// DefaultTextSize is the label size in points.
	DefaultTextSize = 14
	// DefaultDPI is the resolution used to size the label face.
	DefaultDPI = 72
)

// Images holds the image shown for each visual state. Nil entries are
// replaced by the bundled defaults.
type Images struct {
	Init    image.Image
	Fail    image.Image
	Success image.Image
	Disable image.Image
	// ProgressBg is the background while in progress.
	ProgressBg image.Image
	// ProgressFg is the fill drawn over the completed part.
	ProgressFg image.Image
}

// DefaultImages returns the bundled solid color images.
func DefaultImages() Images {
	return Images{
		Init:       image.NewUniform(rgb(0x2196f3)),
		Fail:       image.NewUniform(rgb(0xf44336)),
		Success:    image.NewUniform(rgb(0x4caf50)),
		Disable:    image.NewUniform(rgb(0x9e9e9e)),
		ProgressBg: image.NewUniform(rgb(0xbbdefb)),
		ProgressFg: image.NewUniform(rgb(0x1976d2)),
	}
}

// Background returns the image drawn under the whole button.
func (im Images) Background(s State, disabled bool) image.Image {
	return im.at(backgroundSlot(s, disabled))
}

// Foreground returns the progress fill image, or nil when s has no fill.
func (im Images) Foreground(s State, disabled bool) image.Image {
	return im.at(foregroundSlot(s, disabled))
}

// slot names an entry of Images.
type slot uint8

const (
	slotInit slot = iota
	slotFail
	slotSuccess
	slotDisable
	slotProgressBg
	slotProgressFg
	slotNone
)

func backgroundSlot(s State, disabled bool) slot {
	if disabled {
		return slotDisable
	}
	switch s.Kind() {
	case Fail:
		return slotFail
	case InProgress:
		return slotProgressBg
	case Success:
		return slotSuccess
	default:
		return slotInit
	}
}

func foregroundSlot(s State, disabled bool) slot {
	if disabled || s.Kind() != InProgress {
		return slotNone
	}
	return slotProgressFg
}

func (im Images) at(s slot) image.Image {
	switch s {
	case slotInit:
		return im.Init
	case slotFail:
		return im.Fail
	case slotSuccess:
		return im.Success
	case slotDisable:
		return im.Disable
	case slotProgressBg:
		return im.ProgressBg
	case slotProgressFg:
		return im.ProgressFg
	}
	return nil
}

func (im Images) withDefaults() Images {
	def := DefaultImages()
	fill := func(dst *image.Image, src image.Image) {
		if *dst == nil {
			*dst = src
		}
	}
	fill(&im.Init, def.Init)
	fill(&im.Fail, def.Fail)
	fill(&im.Success, def.Success)
	fill(&im.Disable, def.Disable)
	fill(&im.ProgressBg, def.ProgressBg)
	fill(&im.ProgressFg, def.ProgressFg)
	return im
}

// Style is the construction time configuration of a button. It is copied
// by NewRenderer and cannot be changed afterwards.
type Style struct {
	// Radius is the corner radius in pixels. Zero selects a pill shape
	// with radius half the height.
	Radius float32
	Images Images
	// Fit controls how images are brought to the button size.
	Fit raster.Fit
	// TextSize is the label size in points for CPU rendering.
	TextSize float64
	// DPI is the resolution for CPU rendering of the label.
	DPI float64
	// Font is a TrueType font for CPU rendering. Nil selects Go Regular.
	Font []byte
}

// DefaultStyle returns the style used by buttons without configuration.
func DefaultStyle() Style {
	return Style{
		Radius:   DefaultRadius,
		Images:   DefaultImages(),
		TextSize: DefaultTextSize,
		DPI:      DefaultDPI,
	}
}

func (s Style) withDefaults() Style {
	s.Images = s.Images.withDefaults()
	if s.Radius < 0 {
		s.Radius = 0
	}
	if s.TextSize <= 0 {
		s.TextSize = DefaultTextSize
	}
	if s.DPI <= 0 {
		s.DPI = DefaultDPI
	}
	return s
}

func rgb(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}
