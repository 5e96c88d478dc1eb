package systems

import (
	"log"

	"github.com/gonewx/fireworks/pkg/components"
	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/ecs"
	"github.com/gonewx/fireworks/pkg/entities"
)

// FireworkSystem 推进所有发射体及其爆炸粒子、小爆炸
//
// 职责:
//   - 响应点击，创建发射体并产生发射音效
//   - 每帧按创建顺序的逆序推进发射体，完成的发射体立即销毁
//   - 爆炸时产生爆炸音效
//
// 物理量按固定帧步长推进（每帧一次）；只有小爆炸的触发延迟使用累计的 deltaTime。
type FireworkSystem struct {
	entityManager *ecs.EntityManager
	factory       *entities.FireworkFactory
	cfg           *config.FireworksConfig
	effects       *EffectQueue
}

// NewFireworkSystem 创建烟花系统
//
// 参数:
//   - em: EntityManager
//   - factory: 烟花工厂（同时提供配置）
//   - effects: 音效队列，nil 时内部新建
func NewFireworkSystem(em *ecs.EntityManager, factory *entities.FireworkFactory, effects *EffectQueue) *FireworkSystem {
	if effects == nil {
		effects = NewEffectQueue()
	}
	return &FireworkSystem{
		entityManager: em,
		factory:       factory,
		cfg:           factory.Config(),
		effects:       effects,
	}
}

// Effects 返回系统写入的音效队列
func (s *FireworkSystem) Effects() *EffectQueue {
	return s.effects
}

// OnPointerDown 在点击位置下方的表面底边发射一枚烟花
//
// 参数:
//   - x, y: 点击位置（超出表面范围的坐标照常处理）
//   - surfaceHeight: 当前表面高度，发射体从这里开始上升
//
// 返回:
//   - ecs.EntityID: 新发射体ID
//   - bool: 达到 scene.maxLaunches 上限时返回 false（不创建、不播放音效）
func (s *FireworkSystem) OnPointerDown(x, y, surfaceHeight float64) (ecs.EntityID, bool) {
	if max := s.cfg.Scene.MaxLaunches; max > 0 && s.LaunchCount() >= max {
		log.Printf("[FireworkSystem] 发射体数量已达上限 %d，忽略点击 (%.0f, %.0f)", max, x, y)
		return 0, false
	}

	s.effects.PushSound(s.cfg.Audio.LaunchSound)
	return s.factory.NewLaunch(s.entityManager, x, surfaceHeight, y), true
}

// LaunchCount 返回当前存活的发射体数量
func (s *FireworkSystem) LaunchCount() int {
	return len(ecs.GetEntitiesWith1[*components.LaunchComponent](s.entityManager))
}

// Clear 销毁所有发射体（星星等其他实体不受影响）
func (s *FireworkSystem) Clear() {
	ids := ecs.GetEntitiesWith1[*components.LaunchComponent](s.entityManager)
	for _, id := range ids {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
	if len(ids) > 0 {
		log.Printf("[FireworkSystem] 清除了 %d 枚烟花", len(ids))
	}
}

// Update 推进一帧
// 逆序遍历，完成的发射体标记删除后统一清理，其余发射体保持原有相对顺序
func (s *FireworkSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.LaunchComponent](s.entityManager)

	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		launch, ok := ecs.GetComponent[*components.LaunchComponent](s.entityManager, id)
		if !ok {
			continue
		}

		s.advanceLaunch(pos, launch, deltaTime)

		if launch.IsFinished() {
			s.entityManager.DestroyEntity(id)
		}
	}

	s.entityManager.RemoveMarkedEntities()
}

func (s *FireworkSystem) advanceLaunch(pos *components.PositionComponent, launch *components.LaunchComponent, deltaTime float64) {
	switch launch.State {
	case components.LaunchAscending:
		launch.Trail = append(launch.Trail, components.TrailPoint{X: pos.X, Y: pos.Y})
		if over := len(launch.Trail) - s.cfg.Launch.TrailLength; over > 0 {
			launch.Trail = append(launch.Trail[:0], launch.Trail[over:]...)
		}

		pos.Y += launch.SpeedY

		if pos.Y <= launch.TargetY {
			s.explode(pos, launch)
		}

	case components.LaunchExploded:
		for i := range launch.Particles {
			s.advanceParticle(&launch.Particles[i], deltaTime)
		}
		launch.Particles = removeFadedParticles(launch.Particles)
	}
}

// explode 上升 -> 爆炸，只会发生一次
func (s *FireworkSystem) explode(pos *components.PositionComponent, launch *components.LaunchComponent) {
	launch.State = components.LaunchExploded
	launch.Trail = launch.Trail[:0]
	launch.Particles = s.factory.NewBurstParticles(pos.X, pos.Y)
	s.effects.PushSound(s.cfg.Audio.ExplosionSound)
}

func (s *FireworkSystem) advanceParticle(p *components.BurstParticle, deltaTime float64) {
	p.X += p.VX
	p.Y += p.VY
	p.VY += p.Gravity
	p.Alpha -= s.cfg.Burst.Fade
	p.Age += deltaTime

	if !p.MicroTriggered && p.Age >= p.MicroDelay {
		p.MicroTriggered = true
		p.Pending = append(p.Pending, s.factory.NewMiniExplosions(p.X, p.Y, p.MicroDelay)...)
	}

	for i := range p.MiniExplosions {
		s.advanceMini(&p.MiniExplosions[i])
	}
	p.MiniExplosions = removeFadedMinis(p.MiniExplosions)

	// 新加入的小爆炸本帧停留在生成点，下一帧开始运动
	released := 0
	for released < len(p.Pending) && p.Pending[released].ReleaseAt <= p.Age {
		p.MiniExplosions = append(p.MiniExplosions, p.Pending[released].Explosion)
		released++
	}
	if released > 0 {
		p.Pending = append(p.Pending[:0], p.Pending[released:]...)
	}
}

func (s *FireworkSystem) advanceMini(m *components.MiniExplosion) {
	m.X += m.VX
	m.Y += m.VY
	m.VY += m.Gravity
	m.Alpha -= s.cfg.Micro.Fade
}

// removeFadedParticles 原地过滤 Alpha <= 0 的粒子，保持顺序
func removeFadedParticles(particles []components.BurstParticle) []components.BurstParticle {
	kept := particles[:0]
	for _, p := range particles {
		if p.Alpha > 0 {
			kept = append(kept, p)
		}
	}
	return kept
}

func removeFadedMinis(minis []components.MiniExplosion) []components.MiniExplosion {
	kept := minis[:0]
	for _, m := range minis {
		if m.Alpha > 0 {
			kept = append(kept, m)
		}
	}
	return kept
}
