// Package assets describes the placeholder art used when no image files are
// shipped: every asset key maps to a flat fill colour and a size.
package assets

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// Screen dimensions of the single fixed window.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// Swatch is a solid-colour placeholder for one asset key.
type Swatch struct {
	Color  color.RGBA
	Width  int
	Height int
}

// Palette maps asset keys (backgrounds and item images) to swatches.
type Palette map[string]Swatch

// Default returns the built-in palette for the stock world.
func Default() Palette {
	return Palette{
		"title_bg":   {Color: rgb(100, 100, 100), Width: ScreenWidth, Height: ScreenHeight},
		"kitchen_bg": {Color: rgb(150, 200, 255), Width: ScreenWidth, Height: ScreenHeight},
		"hallway_bg": {Color: rgb(150, 255, 150), Width: ScreenWidth, Height: ScreenHeight},
		"knife":      {Color: rgb(255, 0, 0), Width: 32, Height: 32},
		"rope":       {Color: rgb(139, 69, 19), Width: 32, Height: 32},
		"key":        {Color: rgb(255, 255, 0), Width: 32, Height: 32},
		"door":       {Color: rgb(100, 50, 0), Width: 32, Height: 64},
	}
}

// Has reports whether key is defined.
func (p Palette) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns the defined asset keys in sorted order.
func (p Palette) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a copy of p with every entry of overrides applied on top.
func (p Palette) Merge(overrides Palette) Palette {
	out := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// SwatchSpec is the config-file form of a swatch.
type SwatchSpec struct {
	Color  string `json:"color" yaml:"color" validate:"required"`
	Width  int    `json:"w,omitempty" yaml:"w,omitempty" validate:"gte=0"`
	Height int    `json:"h,omitempty" yaml:"h,omitempty" validate:"gte=0"`
}

// Swatch converts the spec, defaulting the size to 32×32.
func (s SwatchSpec) Swatch() (Swatch, error) {
	c, err := ParseHex(s.Color)
	if err != nil {
		return Swatch{}, err
	}
	w, h := s.Width, s.Height
	if w == 0 {
		w = 32
	}
	if h == 0 {
		h = 32
	}
	return Swatch{Color: c, Width: w, Height: h}, nil
}

// FromSpecs converts a set of config swatches into a palette.
func FromSpecs(specs map[string]SwatchSpec) (Palette, error) {
	out := make(Palette, len(specs))
	for key, spec := range specs {
		sw, err := spec.Swatch()
		if err != nil {
			return nil, fmt.Errorf("asset %q: %w", key, err)
		}
		out[key] = sw
	}
	return out, nil
}

// ParseHex parses "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		return rgb(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
