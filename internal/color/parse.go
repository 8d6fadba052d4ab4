package color

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse interprets a color value. Accepted forms:
//
//	#rrggbb, #rgb, #rrggbbaa, #rgba   (alpha is ignored)
//	rgb(r, g, b), rgba(r, g, b, a)
//	hsl(h, s%, l%), hsla(h, s%, l%, a)
//	r,g,b                             (the comma-joined triple form)
//
// Anything else fails with *InvalidColorError.
func Parse(value string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return Color{}, invalid(value, "empty value")
	}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(value, s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseChannels(value, s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseChannels(value, s[len("rgb("):len(s)-1], 3)
	case strings.HasPrefix(s, "hsla(") && strings.HasSuffix(s, ")"):
		return parseHSL(value, s[len("hsla("):len(s)-1], 4)
	case strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")"):
		return parseHSL(value, s[len("hsl("):len(s)-1], 3)
	case strings.Contains(s, ","):
		return parseChannels(value, s, 3)
	}

	return Color{}, invalid(value, "unrecognized format")
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(value string) Color {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(value, s string) (Color, error) {
	digits := s[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return Color{}, invalid(value, "non-hex digit")
		}
	}

	// Drop the alpha digits, colorful only understands #rgb and #rrggbb
	switch len(digits) {
	case 3, 6:
	case 4:
		digits = digits[:3]
	case 8:
		digits = digits[:6]
	default:
		return Color{}, invalid(value, "hex colors need 3, 4, 6 or 8 digits")
	}

	cf, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, invalid(value, err.Error())
	}
	return fromColorful(cf), nil
}

func parseChannels(value, body string, want int) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, invalid(value, "wrong number of channels")
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return Color{}, invalid(value, "channel is not a number")
		}
		if math.IsNaN(n) || n < 0 || n > 255 {
			return Color{}, invalid(value, "channel out of range 0-255")
		}
		rgb[i] = uint8(math.Round(n))
	}

	if want == 4 {
		if err := checkAlpha(value, parts[3]); err != nil {
			return Color{}, err
		}
	}

	return FromRGB(rgb[0], rgb[1], rgb[2]), nil
}

// parseHSL reads "h, s%, l%" with the hue in degrees
func parseHSL(value, body string, want int) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, invalid(value, "wrong number of channels")
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[0]), "deg"), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return Color{}, invalid(value, "hue is not a number")
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	var sl [2]float64
	for i, part := range parts[1:3] {
		pct, ok := strings.CutSuffix(strings.TrimSpace(part), "%")
		if !ok {
			return Color{}, invalid(value, "saturation and lightness must be percentages")
		}
		n, err := strconv.ParseFloat(pct, 64)
		if err != nil || math.IsNaN(n) || n < 0 || n > 100 {
			return Color{}, invalid(value, "percentage out of range 0-100")
		}
		sl[i] = n / 100
	}

	if want == 4 {
		if err := checkAlpha(value, parts[3]); err != nil {
			return Color{}, err
		}
	}

	return fromColorful(colorful.Hsl(h, sl[0], sl[1])), nil
}

func checkAlpha(value, part string) error {
	a, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
	if err != nil || math.IsNaN(a) || a < 0 || a > 1 {
		return invalid(value, "alpha must be between 0 and 1")
	}
	return nil
}
