package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var namedColors = map[string]color.RGBA{
	"green":   rl.Green,
	"red":     rl.Red,
	"blue":    rl.Blue,
	"magenta": rl.Magenta,
	"yellow":  rl.Yellow,
	"orange":  rl.Orange,
	"purple":  rl.Purple,
	"white":   rl.White,
	"gray":    rl.Gray,
}

// ParseColor accepts a color name (green, red, ...) or a #rrggbb hex value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// Colors parses every palette entry. Call Validate first; unknown names are skipped.
func (b Bodies) Colors() []color.RGBA {
	out := make([]color.RGBA, 0, len(b.Palette))
	for _, name := range b.Palette {
		if c, err := ParseColor(name); err == nil {
			out = append(out, c)
		}
	}
	return out
}
