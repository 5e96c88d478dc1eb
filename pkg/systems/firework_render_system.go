package systems

import (
	"image/color"

	"github.com/gonewx/fireworks/pkg/components"
	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/ecs"
)

var (
	afterglowBase = color.RGBA{A: 0xff}
	headColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// FireworkRenderSystem 把发射体绘制到 Canvas
//
// 绘制表面每帧不清空，先覆盖一层半透明黑色形成余晖拖影，再绘制当前帧。
type FireworkRenderSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.FireworksConfig
}

// NewFireworkRenderSystem 创建渲染系统
func NewFireworkRenderSystem(em *ecs.EntityManager, cfg *config.FireworksConfig) *FireworkRenderSystem {
	if cfg == nil {
		cfg = config.DefaultFireworksConfig()
	}
	return &FireworkRenderSystem{
		entityManager: em,
		cfg:           cfg,
	}
}

// Draw 完整的一帧：余晖层 + 所有发射体
func (s *FireworkRenderSystem) Draw(canvas Canvas) {
	s.DrawAfterglow(canvas)
	s.DrawLaunches(canvas)
}

// DrawAfterglow 用 scene.fadeAlpha 的黑色覆盖整个表面
func (s *FireworkRenderSystem) DrawAfterglow(canvas Canvas) {
	w, h := canvas.Size()
	canvas.FillRect(0, 0, w, h, components.WithAlpha(afterglowBase, s.cfg.Scene.FadeAlpha))
}

// DrawLaunches 按创建顺序绘制所有发射体
func (s *FireworkRenderSystem) DrawLaunches(canvas Canvas) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.LaunchComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		launch, _ := ecs.GetComponent[*components.LaunchComponent](s.entityManager, id)
		if pos == nil || launch == nil {
			continue
		}

		if launch.State == components.LaunchAscending {
			s.drawAscending(canvas, pos, launch)
			continue
		}
		for i := range launch.Particles {
			s.drawParticle(canvas, &launch.Particles[i])
		}
	}
}

// drawAscending 弹头 + 尾迹，尾迹第 i 个点（最老的为 0）半径为 TrailRadius - i*TrailRadiusStep
func (s *FireworkRenderSystem) drawAscending(canvas Canvas, pos *components.PositionComponent, launch *components.LaunchComponent) {
	lc := s.cfg.Launch
	canvas.FillCircle(pos.X, pos.Y, lc.HeadRadius, headColor)

	for i, pt := range launch.Trail {
		r := lc.TrailRadius - float64(i)*lc.TrailRadiusStep
		if r <= 0 {
			continue
		}
		canvas.FillCircle(pt.X, pt.Y, r, headColor)
	}
}

// drawParticle 粒子本身透明后不再绘制，但它的小爆炸照常绘制
func (s *FireworkRenderSystem) drawParticle(canvas Canvas, p *components.BurstParticle) {
	if p.Alpha > 0 {
		c := p.Gradient.ColorAt(p.X, p.Y)
		canvas.FillCircle(p.X, p.Y, s.cfg.Burst.Radius, components.WithAlpha(c, p.Alpha))
	}

	for _, m := range p.MiniExplosions {
		if m.Alpha <= 0 {
			continue
		}
		canvas.FillCircle(m.X, m.Y, m.Size, components.WithAlpha(m.Color, m.Alpha))
	}
}
