package components

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL 把 CSS 风格的 hsl(h, s%, l%) 转成 RGBA
// h 为角度（任意值，按 360 取模），s、l 取 0-1
func HSL(h, s, l float64) color.RGBA {
	r, g, b := colorful.Hsl(normalizeHue(h), s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// WithAlpha 返回带透明度的颜色（非预乘），alpha 超出 [0, 1] 时截断
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

func normalizeHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
