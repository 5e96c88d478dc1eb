package systems

import "image/color"

// DrawOpKind 记录的绘制操作类型
type DrawOpKind int

const (
	DrawRect DrawOpKind = iota
	DrawCircle
)

// DrawOp 一次绘制操作
type DrawOp struct {
	Kind DrawOpKind
	X, Y float64
	// W, H 仅矩形使用
	W, H float64
	// R 仅圆形使用
	R     float64
	Color color.NRGBA
}

// RecordingCanvas 记录所有绘制操作的 Canvas，用于测试
type RecordingCanvas struct {
	Width, Height float64
	Ops           []DrawOp
}

// NewRecordingCanvas 创建指定尺寸的记录画布
func NewRecordingCanvas(w, h float64) *RecordingCanvas {
	return &RecordingCanvas{Width: w, Height: h}
}

func (c *RecordingCanvas) Size() (float64, float64) {
	return c.Width, c.Height
}

func (c *RecordingCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: DrawRect, X: x, Y: y, W: w, H: h, Color: toNRGBA(clr)})
}

func (c *RecordingCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: DrawCircle, X: cx, Y: cy, R: r, Color: toNRGBA(clr)})
}

// Circles 返回所有圆形绘制操作
func (c *RecordingCanvas) Circles() []DrawOp {
	return c.filter(DrawCircle)
}

// Rects 返回所有矩形绘制操作
func (c *RecordingCanvas) Rects() []DrawOp {
	return c.filter(DrawRect)
}

// Reset 清空记录
func (c *RecordingCanvas) Reset() {
	c.Ops = c.Ops[:0]
}

func (c *RecordingCanvas) filter(kind DrawOpKind) []DrawOp {
	var ops []DrawOp
	for _, op := range c.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

func toNRGBA(clr color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

// RecordingSoundPlayer 记录播放请求的 SoundPlayer
type RecordingSoundPlayer struct {
	Played []string
	// Fail 为 true 时所有播放都返回失败
	Fail bool
}

func (p *RecordingSoundPlayer) PlaySound(soundID string) bool {
	if p.Fail {
		return false
	}
	p.Played = append(p.Played, soundID)
	return true
}
