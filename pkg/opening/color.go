package opening

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit packed RGB value (0xRRGGBB).
type Color uint32

// RGB packs three 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels unpacks the color.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.Channels()
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// ParseColor accepts "#rrggbb", "#rgb" or "0xrrggbb".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err := strconv.ParseUint(rest, 16, 32)
		if err != nil || v > 0xffffff {
			return 0, fmt.Errorf("invalid packed color %q", s)
		}
		return Color(v), nil
	}

	cf, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}
