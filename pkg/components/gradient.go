package components

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RadialGradient 以爆炸点为圆心的径向渐变
//
// 距圆心 0 处为 Inner，距离 >= Radius 处为 Outer，中间在 RGB 空间线性插值。
type RadialGradient struct {
	CX, CY float64
	Radius float64
	Inner  color.RGBA
	Outer  color.RGBA
}

// ColorAt 采样 (x, y) 处的颜色
func (g RadialGradient) ColorAt(x, y float64) color.RGBA {
	if g.Radius <= 0 {
		return g.Outer
	}
	t := math.Hypot(x-g.CX, y-g.CY) / g.Radius
	if t >= 1 {
		return g.Outer
	}
	if t <= 0 {
		return g.Inner
	}

	inner, _ := colorful.MakeColor(opaque(g.Inner))
	outer, _ := colorful.MakeColor(opaque(g.Outer))
	r, gr, b := inner.BlendRgb(outer, t).Clamped().RGB255()
	return color.RGBA{R: r, G: gr, B: b, A: 0xff}
}

// opaque 渐变只使用 RGB，透明度由绘制时的全局 alpha 决定
func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}
