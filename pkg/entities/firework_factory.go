package entities

import (
	"image/color"
	"math"

	"github.com/gonewx/fireworks/pkg/components"
	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/ecs"
)

// 二次小爆炸的四种颜色：暖色系 {黄, 红}，冷色系 {蓝, 金}
var (
	MiniColorWarmYellow = components.HSL(50, 1.0, 0.30)
	MiniColorWarmRed    = components.HSL(10, 1.0, 0.30)
	MiniColorCoolBlue   = components.HSL(200, 0.70, 0.35)
	MiniColorCoolGold   = components.HSL(45, 1.0, 0.30)
)

// 金色渐变（爆炸粒子非随机配色时使用）
var (
	GoldGradientInner = components.HSL(45, 1.0, 0.60)
	GoldGradientOuter = components.HSL(10, 1.0, 0.50)
)

// FireworkFactory 创建发射体、爆炸粒子和小爆炸
//
// 所有随机采样都集中在这里，采样顺序固定：
//   - 发射体: 目标偏移, 色相
//   - 爆炸粒子（逐个）: 速度, 渐变（配色开关, [内色相, 外色相]）, 小爆炸延迟
//   - 小爆炸（逐个）: 角度, 速度, 大小, 色系, 色调
type FireworkFactory struct {
	cfg *config.FireworksConfig
	rng RandomSource
}

// NewFireworkFactory 创建工厂，rng 为 nil 时使用全局随机数
func NewFireworkFactory(cfg *config.FireworksConfig, rng RandomSource) *FireworkFactory {
	if cfg == nil {
		cfg = config.DefaultFireworksConfig()
	}
	if rng == nil {
		rng = NewRandomSource()
	}
	return &FireworkFactory{cfg: cfg, rng: rng}
}

// Config 返回工厂使用的配置
func (f *FireworkFactory) Config() *config.FireworksConfig {
	return f.cfg
}

// between 返回 [min, max) 内的均匀随机数
func (f *FireworkFactory) between(min, max float64) float64 {
	return min + f.rng.Float64()*(max-min)
}

// coin 50% 概率返回 true（与网页版 Math.random() > 0.5 一致）
func (f *FireworkFactory) coin() bool {
	return f.rng.Float64() > 0.5
}

// NewLaunch 在 (x, originY) 创建一枚上升的发射体
//
// 参数:
//   - em: EntityManager
//   - x: 发射点横坐标（即点击位置横坐标）
//   - originY: 发射点纵坐标（通常为绘制表面高度，即底边）
//   - clickY: 点击位置纵坐标，目标高度 = clickY - U[targetOffsetMin, targetOffsetMax)
//
// 返回: 发射体实体ID
func (f *FireworkFactory) NewLaunch(em *ecs.EntityManager, x, originY, clickY float64) ecs.EntityID {
	lc := f.cfg.Launch
	targetY := clickY - f.between(lc.TargetOffsetMin, lc.TargetOffsetMax)
	hue := f.rng.Float64() * 360

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: originY})
	ecs.AddComponent(em, id, &components.LaunchComponent{
		TargetY: targetY,
		SpeedY:  lc.SpeedY,
		Color:   components.HSL(hue, 1.0, 0.5),
		State:   components.LaunchAscending,
		Trail:   make([]components.TrailPoint, 0, lc.TrailLength+1),
	})
	return id
}

// NewBurstParticles 在爆炸点生成一整圈爆炸粒子
// 第 i 个粒子的方向为 2π·i/count，速度各自独立采样
func (f *FireworkFactory) NewBurstParticles(x, y float64) []components.BurstParticle {
	bc := f.cfg.Burst
	count := f.cfg.Launch.ParticleCount
	particles := make([]components.BurstParticle, 0, count)

	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := f.between(bc.SpeedMin, bc.SpeedMax)
		gradient := f.NewGradient(x, y)
		delay := f.between(bc.MicroDelayMin, bc.MicroDelayMax)

		particles = append(particles, components.BurstParticle{
			X:          x,
			Y:          y,
			VX:         math.Cos(angle) * speed,
			VY:         math.Sin(angle) * speed,
			Gravity:    bc.Gravity,
			Alpha:      1,
			Gradient:   gradient,
			MicroDelay: delay,
		})
	}
	return particles
}

// NewGradient 创建以 (x, y) 为圆心的径向渐变
// 一半概率使用随机色相对，否则使用金色渐变
func (f *FireworkFactory) NewGradient(x, y float64) components.RadialGradient {
	g := components.RadialGradient{
		CX:     x,
		CY:     y,
		Radius: f.cfg.Burst.GradientRadius,
		Inner:  GoldGradientInner,
		Outer:  GoldGradientOuter,
	}
	if f.coin() {
		g.Inner = components.HSL(f.rng.Float64()*360, 0.80, 0.70)
		g.Outer = components.HSL(f.rng.Float64()*360, 0.60, 0.40)
	}
	return g
}

// NewMiniExplosions 在 (x, y) 生成一批待加入的小爆炸
//
// 参数:
//   - x, y: 父粒子当前位置
//   - releaseBase: 第一颗的加入时间（父粒子 Age，秒），之后每颗间隔 staggerSeconds
func (f *FireworkFactory) NewMiniExplosions(x, y, releaseBase float64) []components.PendingMiniExplosion {
	mc := f.cfg.Micro
	pending := make([]components.PendingMiniExplosion, 0, mc.Count)

	for i := 0; i < mc.Count; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := f.between(mc.SpeedMin, mc.SpeedMax)
		size := f.between(mc.SizeMin, mc.SizeMax)

		pending = append(pending, components.PendingMiniExplosion{
			ReleaseAt: releaseBase + float64(i)*mc.StaggerSeconds,
			Explosion: components.MiniExplosion{
				X:       x,
				Y:       y,
				VX:      math.Cos(angle) * speed,
				VY:      math.Sin(angle) * speed,
				Gravity: mc.Gravity,
				Alpha:   1,
				Size:    size,
				Color:   f.NewMiniColor(),
			},
		})
	}
	return pending
}

// NewMiniColor 两次抛硬币选出四种颜色之一：先选色系，再选色调
func (f *FireworkFactory) NewMiniColor() color.RGBA {
	warm := f.coin()
	first := f.coin()
	switch {
	case warm && first:
		return MiniColorWarmYellow
	case warm:
		return MiniColorWarmRed
	case first:
		return MiniColorCoolBlue
	default:
		return MiniColorCoolGold
	}
}

// NewStarfield 在 width x height 范围内随机撒下星星
//
// 返回: 创建的星星实体ID（按创建顺序）
func (f *FireworkFactory) NewStarfield(em *ecs.EntityManager, width, height float64) []ecs.EntityID {
	sc := f.cfg.Starfield
	ids := make([]ecs.EntityID, 0, sc.Count)

	for i := 0; i < sc.Count; i++ {
		x := f.rng.Float64() * width
		y := f.rng.Float64() * height
		size := f.between(sc.SizeMin, sc.SizeMax)
		period := f.between(sc.TwinkleMin, sc.TwinkleMax)

		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, id, &components.StarComponent{
			Size:        size,
			Period:      period,
			Phase:       f.rng.Float64(),
			NoiseOffset: float64(i) * 7.31,
			Brightness:  1,
		})
		ids = append(ids, id)
	}
	return ids
}

// NewGreetingCard 创建贺卡单例实体
func NewGreetingCard(em *ecs.EntityManager, maxNameLength int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.GreetingCardComponent{
		State:         components.GreetingIdle,
		MaxNameLength: maxNameLength,
	})
	return id
}
