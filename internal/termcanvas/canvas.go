// Package termcanvas 在终端上实现 systems.Canvas
//
// 每个字符单元格用上半块字符 '▀' 表示上下两个像素（前景色为上像素，背景色为下像素），
// 每个像素再对应 Scale×Scale 个逻辑单位。逻辑坐标系与 Ebitengine 版一致，
// 因此同一份烟花配置在终端里也有合理的尺寸。
package termcanvas

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultScale 默认每个像素对应的逻辑单位
const DefaultScale = 8.0

// upperHalfBlock 上半块字符
const upperHalfBlock = '▀'

// Screen 绘制目标（tcell.Screen 的子集）
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Canvas 终端像素画布
type Canvas struct {
	cols, rows int
	// 像素尺寸：宽 = cols，高 = rows*2
	pw, ph int
	scale  float64
	pixels []colorful.Color
}

// New 创建画布
//
// 参数:
//   - cols, rows: 终端字符列数和行数
//   - scale: 每个像素对应的逻辑单位（<= 0 时使用 DefaultScale）
func New(cols, rows int, scale float64) *Canvas {
	if scale <= 0 {
		scale = DefaultScale
	}
	c := &Canvas{scale: scale}
	c.Resize(cols, rows)
	return c
}

// Resize 调整尺寸并清空为黑色，尺寸未变化时不做任何事
func (c *Canvas) Resize(cols, rows int) bool {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == c.cols && rows == c.rows && c.pixels != nil {
		return false
	}
	c.cols, c.rows = cols, rows
	c.pw, c.ph = cols, rows*2
	c.pixels = make([]colorful.Color, c.pw*c.ph)
	return true
}

// Cells 返回字符列数和行数
func (c *Canvas) Cells() (int, int) {
	return c.cols, c.rows
}

// Scale 返回每像素逻辑单位
func (c *Canvas) Scale() float64 {
	return c.scale
}

// Size 返回逻辑尺寸
func (c *Canvas) Size() (float64, float64) {
	return float64(c.pw) * c.scale, float64(c.ph) * c.scale
}

// CellToLogical 把单元格坐标转换为单元格中心的逻辑坐标（鼠标点击使用）
func (c *Canvas) CellToLogical(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.scale, (float64(row) + 0.5) * 2 * c.scale
}

// Pixel 返回像素颜色（越界返回黑色）
func (c *Canvas) Pixel(px, py int) colorful.Color {
	if px < 0 || py < 0 || px >= c.pw || py >= c.ph {
		return colorful.Color{}
	}
	return c.pixels[py*c.pw+px]
}

// blend 以 coverage 为覆盖比例把 clr 叠加到像素上（source-over）
func (c *Canvas) blend(px, py int, clr color.Color, coverage float64) {
	if px < 0 || py < 0 || px >= c.pw || py >= c.ph || coverage <= 0 {
		return
	}
	r, g, b, a := clr.RGBA()
	if a == 0 {
		return
	}
	alpha := float64(a) / 0xffff
	if coverage > 1 {
		coverage = 1
	}
	// RGBA() 返回预乘值
	k := coverage
	inv := 1 - alpha*coverage

	dst := &c.pixels[py*c.pw+px]
	dst.R = float64(r)/0xffff*k + dst.R*inv
	dst.G = float64(g)/0xffff*k + dst.G*inv
	dst.B = float64(b)/0xffff*k + dst.B*inv
}

// FillRect 填充矩形，部分覆盖的像素按覆盖面积混合
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s := c.scale
	x0, y0 := x/s, y/s
	x1, y1 := (x+w)/s, (y+h)/s

	for py := int(math.Floor(y0)); py < int(math.Ceil(y1)); py++ {
		oy := overlap(float64(py), float64(py+1), y0, y1)
		for px := int(math.Floor(x0)); px < int(math.Ceil(x1)); px++ {
			ox := overlap(float64(px), float64(px+1), x0, x1)
			c.blend(px, py, clr, ox*oy)
		}
	}
}

// FillCircle 填充圆
// 半径不足一个像素时只点亮圆心所在像素，覆盖比例按直径计算
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	s := c.scale
	pcx, pcy, pr := cx/s, cy/s, r/s

	if pr < 0.5 {
		c.blend(int(math.Floor(pcx)), int(math.Floor(pcy)), clr, 2*pr)
		return
	}

	for py := int(math.Floor(pcy - pr)); py <= int(math.Floor(pcy+pr)); py++ {
		for px := int(math.Floor(pcx - pr)); px <= int(math.Floor(pcx+pr)); px++ {
			dx := float64(px) + 0.5 - pcx
			dy := float64(py) + 0.5 - pcy
			if dx*dx+dy*dy <= pr*pr {
				c.blend(px, py, clr, 1)
			}
		}
	}
}

// overlap 区间 [a0, a1) 与 [b0, b1) 的重叠长度
func overlap(a0, a1, b0, b1 float64) float64 {
	return math.Max(0, math.Min(a1, b1)-math.Max(a0, b0))
}

// Flush 把像素写到终端
func (c *Canvas) Flush(screen Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pixels[(row*2)*c.pw+col]
			bottom := c.pixels[(row*2+1)*c.pw+col]
			style := tcell.StyleDefault.
				Foreground(toTcell(top)).
				Background(toTcell(bottom))
			screen.SetContent(col, row, upperHalfBlock, nil, style)
		}
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// DrawString 在单元格 (x, y) 处写一行文字
func DrawString(screen Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
