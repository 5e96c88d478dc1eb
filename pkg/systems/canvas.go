package systems

import "image/color"

// Canvas 二维绘制表面
//
// 颜色自带透明度（全局 alpha 已折算进颜色），实现方负责按 alpha 混合。
// 实现: utils.EbitenCanvas（窗口/移动端）、termcanvas.Canvas（终端）。
type Canvas interface {
	// Size 返回当前表面尺寸（像素），每帧读取以跟随窗口大小变化
	Size() (w, h float64)
	// FillRect 填充矩形
	FillRect(x, y, w, h float64, clr color.Color)
	// FillCircle 填充圆形
	FillCircle(cx, cy, r float64, clr color.Color)
}

// SoundPlayer 播放短音效
// 播放失败由实现方记录日志并返回 false，调用方忽略失败
type SoundPlayer interface {
	PlaySound(soundID string) bool
}
