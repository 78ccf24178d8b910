package render

import (
	"strings"

	"ball-sandbox/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BodyColor converts a body's display tag to an opaque raylib colour.
func BodyColor(c physics.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// ParseHexColor parses #RGB or #RRGGBB into rl.Color (alpha 255). Returns rl.White and false on parse error.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.White, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexDigit(hex[i]); !ok {
			return rl.White, false
		}
	}
	d := func(i int) uint8 {
		v, _ := hexDigit(hex[i])
		return v
	}
	switch len(hex) {
	case 3:
		return rl.NewColor(d(0)*17, d(1)*17, d(2)*17, 255), true
	case 6:
		return rl.NewColor(d(0)<<4|d(1), d(2)<<4|d(3), d(4)<<4|d(5), 255), true
	}
	return rl.White, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
