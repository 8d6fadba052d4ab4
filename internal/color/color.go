// Package color implements the color value type used to derive theme
// variables: parsing of the common exchange encodings, RGB/HSL conversion and
// the darken, lighten and contrast transforms.
//
// Lightness transforms operate on the HSL lightness channel:
//
//	Darken(r):  l' = l - l*r        (moves toward black)
//	Lighten(r): l' = l + (1-l)*r    (moves toward white)
//
// Ratios are clamped to [0,1] and a ratio of 0 returns the color unchanged.
// Every result is quantized back to 8-bit RGB so derived values are exact and
// reproducible.
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultContrastRatio is the ratio Contrast uses for per-role contrast colors
const DefaultContrastRatio = 0.8

// darkThreshold is the YIQ brightness below which a color counts as dark
const darkThreshold = 128

// Color is an immutable 8-bit sRGB color
type Color struct {
	r, g, b uint8
}

// FromRGB builds a color from an already-structured triple
func FromRGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b}
}

// RGB returns the red, green and blue channels
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// String renders the color as a lowercase #rrggbb hex string
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// RGBString renders the channels comma-joined, e.g. "56,128,255"
func (c Color) RGBString() string {
	return fmt.Sprintf("%d,%d,%d", c.r, c.g, c.b)
}

// Brightness returns the YIQ perceived brightness in [0,255]
func (c Color) Brightness() float64 {
	return (float64(c.r)*299 + float64(c.g)*587 + float64(c.b)*114) / 1000
}

// IsDark reports whether the perceived brightness is below the midpoint
func (c Color) IsDark() bool {
	return c.Brightness() < darkThreshold
}

// Lightness returns the HSL lightness in [0,1]
func (c Color) Lightness() float64 {
	_, _, l := c.toColorful().Hsl()
	return l
}

// Darken scales the HSL lightness down by ratio
func (c Color) Darken(ratio float64) Color {
	ratio = clampRatio(ratio)
	if ratio == 0 {
		return c
	}
	h, s, l := c.toColorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, l-l*ratio))
}

// Lighten moves the HSL lightness toward white by ratio of the remaining distance
func (c Color) Lighten(ratio float64) Color {
	ratio = clampRatio(ratio)
	if ratio == 0 {
		return c
	}
	h, s, l := c.toColorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, l+(1-l)*ratio))
}

// Contrast pushes the color toward the opposite end of the lightness range:
// dark colors are lightened, everything else is darkened.
func (c Color) Contrast(ratio float64) Color {
	if c.IsDark() {
		return c.Lighten(ratio)
	}
	return c.Darken(ratio)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}
}

func fromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{r: r, g: g, b: b}
}

func clampRatio(ratio float64) float64 {
	if math.IsNaN(ratio) || ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
