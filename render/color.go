package render

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hex parses "#rrggbb" or "#rgb". Malformed input yields opaque magenta so a
// typo is visible on screen instead of failing a frame.
func Hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{0xff, 0x00, 0xff, 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// WithAlpha returns c with alpha a in [0, 1], as a non-premultiplied color.
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	n.A = uint8(a*255 + 0.5)
	return n
}

// Blend mixes a towards b by t in RGB space.
func Blend(a, b color.Color, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{r, g, bl, 0xff}
}

func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}
