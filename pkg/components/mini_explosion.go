package components

import "image/color"

// MiniExplosion 二次小爆炸的一个光点
type MiniExplosion struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64
	Alpha   float64
	// Size 圆点半径
	Size  float64
	Color color.RGBA
}
