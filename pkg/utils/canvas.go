package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas 在 ebiten.Image 上实现 systems.Canvas
// 所有图形开启抗锯齿
type EbitenCanvas struct {
	target *ebiten.Image
}

// NewEbitenCanvas 创建绘制到 target 的画布
func NewEbitenCanvas(target *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{target: target}
}

// SetTarget 更换绘制目标（窗口尺寸变化后重建离屏图像时使用）
func (c *EbitenCanvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

// Target 返回当前绘制目标
func (c *EbitenCanvas) Target() *ebiten.Image {
	return c.target
}

// Size 返回画布尺寸
func (c *EbitenCanvas) Size() (float64, float64) {
	if c.target == nil {
		return 0, 0
	}
	b := c.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect 填充矩形
func (c *EbitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	if c.target == nil {
		return
	}
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), clr, true)
}

// FillCircle 填充圆
func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if c.target == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.target, float32(cx), float32(cy), float32(r), clr, true)
}
