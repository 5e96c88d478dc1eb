// Package utils 提供 Ebitengine 相关的通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPress 一次指针按下（鼠标左键或一次触摸）
type PointerPress struct {
	X, Y    int
	IsTouch bool
}

// AppendJustPressedPointers 追加本帧所有刚按下的指针
// 同一帧的多点触摸各算一次按下，鼠标左键排在触摸之后
func AppendJustPressedPointers(dst []PointerPress) []PointerPress {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	mousePressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()
	return collectPresses(dst, touchIDs, ebiten.TouchPosition, mousePressed, mx, my)
}

// collectPresses 把触摸和鼠标状态合并成按下列表
func collectPresses(dst []PointerPress, touchIDs []ebiten.TouchID, touchPos func(ebiten.TouchID) (int, int), mousePressed bool, mx, my int) []PointerPress {
	for _, id := range touchIDs {
		x, y := touchPos(id)
		dst = append(dst, PointerPress{X: x, Y: y, IsTouch: true})
	}
	if mousePressed {
		dst = append(dst, PointerPress{X: mx, Y: my})
	}
	return dst
}

// IsAnyKeyJustPressed 检查给定按键中是否有任意一个刚刚按下
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
