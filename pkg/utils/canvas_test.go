package utils

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestEbitenCanvasSize(t *testing.T) {
	c := NewEbitenCanvas(ebiten.NewImage(320, 240))
	w, h := c.Size()
	if w != 320 || h != 240 {
		t.Errorf("Size = (%v, %v), want (320, 240)", w, h)
	}

	c.SetTarget(ebiten.NewImage(10, 20))
	w, h = c.Size()
	if w != 10 || h != 20 {
		t.Errorf("Size after SetTarget = (%v, %v), want (10, 20)", w, h)
	}
}

// TestEbitenCanvasNilTarget 没有目标时绘制不应 panic
func TestEbitenCanvasNilTarget(t *testing.T) {
	c := NewEbitenCanvas(nil)
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Errorf("Size = (%v, %v), want (0, 0)", w, h)
	}
	c.FillRect(0, 0, 10, 10, color.White)
	c.FillCircle(5, 5, 3, color.White)
}
