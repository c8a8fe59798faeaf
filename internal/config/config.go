// SPDX-License-Identifier: Unlicense OR MIT

// Package config resolves a button style from a config file, PROGRESSBUTTON_*
// environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"eliasnaur.com/font/roboto/robotoregular"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/webp"

	"github.com/trendit/progressbutton"
	"github.com/trendit/progressbutton/raster"
)

// Keys understood in config files and as PROGRESSBUTTON_* variables.
const (
	KeyRadius     = "radius"
	KeyFit        = "fit"
	KeyTextSize   = "text_size"
	KeyDPI        = "dpi"
	KeyFont       = "font"
	KeyTextColor  = "text_color"
	KeyInit       = "images.init"
	KeyFail       = "images.fail"
	KeySuccess    = "images.success"
	KeyDisable    = "images.disable"
	KeyProgressBg = "images.progress_bg"
	KeyProgressFg = "images.progress_fg"
)

// Config is the resolved configuration.
type Config struct {
	Style     progressbutton.Style
	TextColor color.NRGBA
}

// New returns a viper instance with defaults and environment binding in
// place. A non-empty file is read as the config file.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyRadius, progressbutton.DefaultRadius)
	v.SetDefault(KeyFit, raster.Fill.String())
	v.SetDefault(KeyTextSize, progressbutton.DefaultTextSize)
	v.SetDefault(KeyDPI, progressbutton.DefaultDPI)
	v.SetDefault(KeyTextColor, "#ffffff")

	v.SetEnvPrefix("PROGRESSBUTTON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, k := range []string{KeyFont, KeyInit, KeyFail, KeySuccess, KeyDisable, KeyProgressBg, KeyProgressFg} {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	if file == "" {
		return v, nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", file, err)
	}
	return v, nil
}

// BindFlags binds the style flags of fs to v. Flags not present in fs are
// skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range map[string]string{
		"radius":     KeyRadius,
		"fit":        KeyFit,
		"text-size":  KeyTextSize,
		"dpi":        KeyDPI,
		"font":       KeyFont,
		"text-color": KeyTextColor,
	} {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Load resolves the configuration held by v, reading any image and font
// files it names.
func Load(v *viper.Viper) (*Config, error) {
	fit, err := ParseFit(v.GetString(KeyFit))
	if err != nil {
		return nil, err
	}
	col, err := ParseColor(v.GetString(KeyTextColor))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyTextColor, err)
	}
	s := progressbutton.Style{
		Radius:   float32(v.GetFloat64(KeyRadius)),
		Fit:      fit,
		TextSize: v.GetFloat64(KeyTextSize),
		DPI:      v.GetFloat64(KeyDPI),
	}
	if name := v.GetString(KeyFont); name != "" {
		ttf, err := LoadFont(name)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", KeyFont, err)
		}
		s.Font = ttf
	}
	images := []struct {
		key string
		dst *image.Image
	}{
		{KeyInit, &s.Images.Init},
		{KeyFail, &s.Images.Fail},
		{KeySuccess, &s.Images.Success},
		{KeyDisable, &s.Images.Disable},
		{KeyProgressBg, &s.Images.ProgressBg},
		{KeyProgressFg, &s.Images.ProgressFg},
	}
	for _, im := range images {
		path := v.GetString(im.key)
		if path == "" {
			continue
		}
		img, err := LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", im.key, err)
		}
		*im.dst = img
	}
	return &Config{Style: s, TextColor: col}, nil
}

// builtinFonts are the fonts selectable by name instead of a file path.
var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"roboto":    robotoregular.TTF,
}

// LoadFont returns the TrueType data of the built-in font called name, or
// reads the font file at name.
func LoadFont(name string) ([]byte, error) {
	if ttf, ok := builtinFonts[name]; ok {
		return ttf, nil
	}
	return os.ReadFile(name)
}

// LoadImage decodes the image file at path. PNG, JPEG, GIF, BMP and WebP
// are supported.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// ParseFit parses "fill" or "unscaled".
func ParseFit(s string) (raster.Fit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fill":
		return raster.Fill, nil
	case "unscaled", "crop":
		return raster.Unscaled, nil
	}
	return raster.Fill, fmt.Errorf("config: unknown fit %q", s)
}

// ParseColor parses a #rrggbb or #rgb hex color into an opaque color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, errors.New("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
