package hostconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a palette value in "#RRGGBB" or "#AARRGGBB" form and
// returns the color with its alpha in [0, 1].
func ParseHex(s string) (colorful.Color, float64, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil || s[0] != '#' {
			return colorful.Color{}, 0, fmt.Errorf("invalid color %q", s)
		}
		alpha = float64(a) / 255
		s = "#" + s[3:]
	default:
		return colorful.Color{}, 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, alpha, nil
}
