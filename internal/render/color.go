package render

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownColor = errors.New("render: unknown color")

var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#008000",
	"lime":      "#00ff00",
	"blue":      "#0000ff",
	"yellow":    "#ffff00",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"pink":      "#ffc0cb",
	"gray":      "#808080",
	"grey":      "#808080",
	"steelblue": "#4682b4",
	"gold":      "#ffd700",
	"coral":     "#ff7f50",
}

// ParseColor resolves a colour name or hex string.
func ParseColor(s string) (colorful.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[key]; ok {
		key = hex
	}
	if !strings.HasPrefix(key, "#") {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}

// Hex normalises s to #rrggbb, falling back to red for anything unparseable.
func Hex(s string) string {
	c, err := ParseColor(s)
	if err != nil {
		return namedColors["red"]
	}
	return c.Hex()
}

func RGBA(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{R: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
