package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/gonewx/fireworks/pkg/components"
	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/ecs"
	"github.com/gonewx/fireworks/pkg/entities"
)

// TestDrawAfterglow 空场景只绘制覆盖全表面的半透明黑色矩形
func TestDrawAfterglow(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewFireworkRenderSystem(em, config.DefaultFireworksConfig())
	canvas := NewRecordingCanvas(800, 600)

	rs.Draw(canvas)

	if len(canvas.Ops) != 1 {
		t.Fatalf("Expected 1 draw op, got %d", len(canvas.Ops))
	}
	op := canvas.Ops[0]
	if op.Kind != DrawRect || op.X != 0 || op.Y != 0 || op.W != 800 || op.H != 600 {
		t.Errorf("Expected full-surface rect, got %+v", op)
	}
	want := color.NRGBA{A: 51}
	if op.Color != want {
		t.Errorf("Expected %v, got %v", want, op.Color)
	}
}

// TestDrawAscending 弹头半径 3，尾迹半径从最老的点开始 3, 2.8, 2.6...
func TestDrawAscending(t *testing.T) {
	em, s := newTestFireworkSystem(nil, 0)
	rs := NewFireworkRenderSystem(em, config.DefaultFireworksConfig())
	s.OnPointerDown(100, 0, testSurfaceHeight)
	for i := 0; i < 3; i++ {
		s.Update(testDeltaTime)
	}

	canvas := NewRecordingCanvas(800, testSurfaceHeight)
	rs.DrawLaunches(canvas)

	circles := canvas.Circles()
	if len(circles) != 4 {
		t.Fatalf("Expected head + 3 trail dots, got %d", len(circles))
	}

	head := circles[0]
	if head.X != 100 || head.Y != testSurfaceHeight-24 || head.R != 3 {
		t.Errorf("Unexpected head %+v", head)
	}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	wantR := []float64{3, 2.8, 2.6}
	wantY := []float64{testSurfaceHeight, testSurfaceHeight - 8, testSurfaceHeight - 16}
	for i, c := range circles[1:] {
		if math.Abs(c.R-wantR[i]) > 1e-9 || c.Y != wantY[i] {
			t.Errorf("trail %d: expected r=%.1f y=%.0f, got r=%.2f y=%.0f", i, wantR[i], wantY[i], c.R, c.Y)
		}
		if c.Color != white {
			t.Errorf("trail %d: expected white, got %v", i, c.Color)
		}
	}
}

// TestDrawFullTrailRadiusPositive 满尾迹时所有半径仍为正
func TestDrawFullTrailRadiusPositive(t *testing.T) {
	em, s := newTestFireworkSystem(nil, 0)
	rs := NewFireworkRenderSystem(em, config.DefaultFireworksConfig())
	s.OnPointerDown(100, 0, testSurfaceHeight)
	for i := 0; i < 30; i++ {
		s.Update(testDeltaTime)
	}

	canvas := NewRecordingCanvas(800, testSurfaceHeight)
	rs.DrawLaunches(canvas)

	circles := canvas.Circles()
	if len(circles) != 11 {
		t.Fatalf("Expected head + 10 trail dots, got %d", len(circles))
	}
	for i, c := range circles {
		if c.R <= 0 {
			t.Errorf("circle %d has non-positive radius %.2f", i, c.R)
		}
	}
	if last := circles[len(circles)-1]; math.Abs(last.R-1.2) > 1e-9 {
		t.Errorf("Expected newest trail dot radius 1.2, got %.2f", last.R)
	}
}

// TestDrawExploded 爆炸后绘制所有粒子，颜色取自渐变、透明度取自粒子
func TestDrawExploded(t *testing.T) {
	em, s := newTestFireworkSystem(nil, 0)
	rs := NewFireworkRenderSystem(em, config.DefaultFireworksConfig())
	id := explodeImmediately(t, em, s)
	s.Update(testDeltaTime)

	canvas := NewRecordingCanvas(800, testSurfaceHeight)
	rs.DrawLaunches(canvas)

	circles := canvas.Circles()
	if len(circles) != 30 {
		t.Fatalf("Expected 30 particles drawn, got %d", len(circles))
	}

	_, launch := getLaunch(t, em, id)
	for i, c := range circles {
		p := launch.Particles[i]
		if c.R != 2 || c.X != p.X || c.Y != p.Y {
			t.Errorf("particle %d: unexpected op %+v", i, c)
		}
		// alpha 0.98 → 250
		if c.Color.A != 250 {
			t.Errorf("particle %d: expected alpha 250, got %d", i, c.Color.A)
		}
		rgb := p.Gradient.ColorAt(p.X, p.Y)
		if c.Color.R != rgb.R || c.Color.G != rgb.G || c.Color.B != rgb.B {
			t.Errorf("particle %d: color should come from the gradient", i)
		}
	}
}

// TestDrawMinisAfterParticleFaded 粒子透明后仍绘制它的小爆炸
func TestDrawMinisAfterParticleFaded(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewFireworkRenderSystem(em, config.DefaultFireworksConfig())

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 0, Y: 0})
	em.AddComponent(id, &components.LaunchComponent{
		State: components.LaunchExploded,
		Particles: []components.BurstParticle{
			{
				X: 5, Y: 5, Alpha: 0,
				MiniExplosions: []components.MiniExplosion{
					{X: 1, Y: 2, Size: 1.5, Alpha: 0.5, Color: entities.MiniColorCoolBlue},
					{X: 3, Y: 4, Size: 1, Alpha: 0, Color: entities.MiniColorWarmRed},
				},
			},
		},
	})

	canvas := NewRecordingCanvas(100, 100)
	rs.DrawLaunches(canvas)

	circles := canvas.Circles()
	if len(circles) != 1 {
		t.Fatalf("Expected only the visible mini explosion, got %d ops", len(circles))
	}
	c := circles[0]
	blue := entities.MiniColorCoolBlue
	if c.X != 1 || c.Y != 2 || c.R != 1.5 {
		t.Errorf("Unexpected mini op %+v", c)
	}
	if c.Color.R != blue.R || c.Color.G != blue.G || c.Color.B != blue.B || c.Color.A != 128 {
		t.Errorf("Expected cool blue at alpha 128, got %v", c.Color)
	}
}

// TestRadialGradientColorAt 渐变在圆心为内色，半径外为外色
func TestRadialGradientColorAt(t *testing.T) {
	g := components.RadialGradient{
		CX: 0, CY: 0, Radius: 50,
		Inner: color.RGBA{R: 200, A: 255},
		Outer: color.RGBA{B: 200, A: 255},
	}

	tests := []struct {
		name string
		x, y float64
		want color.RGBA
	}{
		{"圆心", 0, 0, color.RGBA{R: 200, A: 255}},
		{"半径处", 50, 0, color.RGBA{B: 200, A: 255}},
		{"半径外", 30, 40.5, color.RGBA{B: 200, A: 255}},
		{"中点", 0, 25, color.RGBA{R: 100, B: 100, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAt(tt.x, tt.y); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
