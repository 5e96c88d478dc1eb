package utils

import (
	"image/color"
	"math"
)

// 缓动函数：输入进度 t ∈ [0, 1]，输出缓动后的进度
// 参考：https://easings.net/

// Progress 把已用时间换算成 [0, 1] 的进度，duration <= 0 时直接完成
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, elapsed/duration))
}

// EaseOutCubic 三次方缓出，f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 在 a 和 b 之间线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FadeNRGBA 按比例缩放颜色的透明度
func FadeNRGBA(c color.NRGBA, factor float64) color.NRGBA {
	factor = math.Max(0, math.Min(1, factor))
	c.A = uint8(math.Round(float64(c.A) * factor))
	return c
}
