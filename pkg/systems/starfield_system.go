package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/gonewx/fireworks/pkg/components"
	"github.com/gonewx/fireworks/pkg/ecs"
	"github.com/gonewx/fireworks/pkg/entities"
)

const (
	// 柏林噪声参数（alpha, beta, 倍频数）
	starNoiseAlpha   = 2.0
	starNoiseBeta    = 2.0
	starNoiseOctaves = 3
	// starNoiseSpeed 噪声随时间推进的速度
	starNoiseSpeed = 0.6
	// starNoiseAmount 噪声对亮度的影响幅度
	starNoiseAmount = 0.35
	// 亮度范围
	starMinBrightness = 0.15
	starMaxBrightness = 1.0
)

var starColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// StarfieldSystem 管理星空背景
//
// 每颗星按自己的周期做正弦闪烁，再叠加一维柏林噪声让闪烁不那么规律。
// 表面尺寸变化时重新撒星。
type StarfieldSystem struct {
	entityManager *ecs.EntityManager
	factory       *entities.FireworkFactory
	noise         *perlin.Perlin

	elapsed float64
	visible bool
	// 上次撒星时的表面尺寸
	width, height float64
}

// NewStarfieldSystem 创建星空系统
//
// 参数:
//   - em: EntityManager
//   - factory: 用于生成星星的工厂
//   - seed: 噪声种子
func NewStarfieldSystem(em *ecs.EntityManager, factory *entities.FireworkFactory, seed int64) *StarfieldSystem {
	return &StarfieldSystem{
		entityManager: em,
		factory:       factory,
		noise:         perlin.NewPerlin(starNoiseAlpha, starNoiseBeta, starNoiseOctaves, seed),
		visible:       true,
	}
}

// SetVisible 显示/隐藏星空
func (s *StarfieldSystem) SetVisible(visible bool) {
	s.visible = visible
}

// IsVisible 星空是否可见
func (s *StarfieldSystem) IsVisible() bool {
	return s.visible
}

// EnsureSize 表面尺寸与上次撒星时不同时重新撒星
func (s *StarfieldSystem) EnsureSize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.width && height == s.height {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	ids := s.factory.NewStarfield(s.entityManager, width, height)
	s.width, s.height = width, height
	log.Printf("[StarfieldSystem] 生成 %d 颗星星 (%.0fx%.0f)", len(ids), width, height)
}

// StarCount 当前星星数量
func (s *StarfieldSystem) StarCount() int {
	return len(ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager))
}

// Update 推进闪烁
func (s *StarfieldSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime

	for _, id := range ecs.GetEntitiesWith1[*components.StarComponent](s.entityManager) {
		star, ok := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		if !ok {
			continue
		}
		star.Brightness = s.brightness(star)
	}
}

// brightness 正弦闪烁 [0.2, 1] 叠加噪声后截断到 [starMinBrightness, starMaxBrightness]
func (s *StarfieldSystem) brightness(star *components.StarComponent) float64 {
	period := star.Period
	if period <= 0 {
		period = 1
	}
	wave := 0.6 + 0.4*math.Sin(2*math.Pi*(s.elapsed/period+star.Phase))
	n := s.noise.Noise1D(s.elapsed*starNoiseSpeed + star.NoiseOffset)
	return math.Max(starMinBrightness, math.Min(starMaxBrightness, wave+n*starNoiseAmount))
}

// Draw 绘制所有星星（隐藏时不绘制）
func (s *StarfieldSystem) Draw(canvas Canvas) {
	if !s.visible {
		return
	}

	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.StarComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		star, _ := ecs.GetComponent[*components.StarComponent](s.entityManager, id)
		if pos == nil || star == nil {
			continue
		}
		canvas.FillRect(pos.X, pos.Y, star.Size, star.Size, components.WithAlpha(starColor, star.Brightness))
	}
}
