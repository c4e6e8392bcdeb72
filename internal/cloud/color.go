package cloud

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors maps the background names accepted on the command line.
var namedColors = map[string]color.Color{
	"white": color.White,
	"black": color.Black,
}

// defaultPalette colors the rendered words. Muted blues and grays read
// well on the default white background.
var defaultPalette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
}

// ParseColor interprets a color name ("white", "black") or a hex value
// ("#rrggbb").
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") && len(name) == 7 {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err == nil {
			return color.RGBA{
				R: uint8(v >> 16),
				G: uint8(v >> 8),
				B: uint8(v),
				A: 0xff,
			}, nil
		}
	}

	return nil, fmt.Errorf("unknown color %q: use white, black, or #rrggbb", s)
}
