package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a color specification: a SVG color name
// ("white", "darkorange"...), or a hexadecimal #RGB, #RRGGBB or #RRGGBBAA value.
// The empty string and "none" resolve to a nil color, which disables
// the corresponding paint operation.
func ParseColor(spec string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(spec))
	switch v {
	case "", "none", "transparent":
		return nil, nil
	}
	if !strings.HasPrefix(v, "#") {
		col, ok := colornames.Map[v]
		if !ok {
			return nil, Errorf(KindInvalidStyle, ComponentPrimitive, spec, "unknown color name")
		}
		return col, nil
	}

	hex := v[1:]
	switch len(hex) {
	case 3: // #RGB is a shorthand for #RRGGBB
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		hex += "ff"
	case 8:
	default:
		return nil, Errorf(KindInvalidStyle, ComponentPrimitive, spec, "hex color must have 3, 6 or 8 digits")
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, Wrap(KindInvalidStyle, ComponentPrimitive, spec, err)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// MustParseColor is like ParseColor but panics on invalid input.
// It is meant for package level palettes.
func MustParseColor(spec string) color.Color {
	c, err := ParseColor(spec)
	if err != nil {
		panic(fmt.Sprintf("scene: %s", err))
	}
	return c
}

// Opaque returns c composited over white, with full opacity.
// A nil color resolves to white.
func Opaque(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	r, g, b, a := c.RGBA() // alpha-premultiplied, 16 bits
	inv := 0xffff - a
	return color.RGBA{
		R: uint8((r + inv) >> 8),
		G: uint8((g + inv) >> 8),
		B: uint8((b + inv) >> 8),
		A: 0xff,
	}
}
