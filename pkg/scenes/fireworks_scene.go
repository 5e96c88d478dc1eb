package scenes

import (
	"log"

	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/ecs"
	"github.com/gonewx/fireworks/pkg/entities"
	"github.com/gonewx/fireworks/pkg/game"
	"github.com/gonewx/fireworks/pkg/systems"
	"github.com/gonewx/fireworks/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 贺卡名字最多字符数
const maxGreetingNameLength = 24

// FireworksSceneOptions 场景依赖
type FireworksSceneOptions struct {
	Config *config.FireworksConfig
	// Settings 用户设置，可为 nil（不持久化，星空默认显示）
	Settings *game.SettingsManager
	// Audio 音频管理器，可为 nil（无声）
	Audio *game.AudioManager
	// SoundPlayer 覆盖 Audio 作为音效出口（测试使用）
	SoundPlayer systems.SoundPlayer
	// Random 随机源，nil 时使用全局随机源
	Random entities.RandomSource
	// NoiseSeed 星空闪烁噪声种子
	NoiseSeed int64
	// ShowFPS 左下角显示 TPS/FPS（--verbose）
	ShowFPS bool
}

// FireworksScene 烟花场景
//
// 每帧顺序：输入 -> FireworkSystem.Update -> StarfieldSystem.Update -> 派发音效；
// Draw 时先在离屏图层上绘制余晖、星空和烟花，再把图层贴到屏幕并叠加 HUD 和贺卡。
// 余晖只作用于离屏图层，HUD 文字不会拖影。
type FireworksScene struct {
	cfg           *config.FireworksConfig
	entityManager *ecs.EntityManager

	fireworkSystem  *systems.FireworkSystem
	renderSystem    *systems.FireworkRenderSystem
	starfieldSystem *systems.StarfieldSystem
	greetingSystem  *systems.GreetingSystem

	settings *game.SettingsManager
	audio    *game.AudioManager
	sound    systems.SoundPlayer

	layer  *ebiten.Image
	canvas *utils.EbitenCanvas
	// 最近一次 Draw 时的屏幕尺寸，Update 用它作为发射起点高度
	width, height float64

	presses []utils.PointerPress
	runes   []rune
	showFPS bool
}

// NewFireworksScene 创建烟花场景
func NewFireworksScene(opts FireworksSceneOptions) *FireworksScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultFireworksConfig()
	}
	rng := opts.Random
	if rng == nil {
		rng = entities.NewRandomSource()
	}

	em := ecs.NewEntityManager()
	factory := entities.NewFireworkFactory(cfg, rng)
	effects := systems.NewEffectQueue()

	s := &FireworksScene{
		cfg:             cfg,
		entityManager:   em,
		fireworkSystem:  systems.NewFireworkSystem(em, factory, effects),
		renderSystem:    systems.NewFireworkRenderSystem(em, cfg),
		starfieldSystem: systems.NewStarfieldSystem(em, factory, opts.NoiseSeed),
		greetingSystem:  systems.NewGreetingSystem(em, &cfg.Greeting, rng, maxGreetingNameLength),
		settings:        opts.Settings,
		audio:           opts.Audio,
		canvas:          utils.NewEbitenCanvas(nil),
		width:           config.GameWindowWidth,
		height:          config.GameWindowHeight,
		showFPS:         opts.ShowFPS,
	}

	switch {
	case opts.SoundPlayer != nil:
		s.sound = opts.SoundPlayer
	case opts.Audio != nil:
		s.sound = opts.Audio
	}

	if s.settings != nil {
		s.starfieldSystem.SetVisible(s.settings.GetSettings().ShowStars)
	}

	log.Printf("[FireworksScene] 场景创建完成 (maxLaunches=%d)", cfg.Scene.MaxLaunches)
	return s
}

// Update 处理输入并推进动画
func (s *FireworksScene) Update(deltaTime float64) {
	s.handleKeyboard()
	s.handlePointers()
	s.step(deltaTime)
}

// step 推进一帧并派发本帧产生的音效
func (s *FireworksScene) step(deltaTime float64) {
	s.fireworkSystem.Update(deltaTime)
	s.starfieldSystem.Update(deltaTime)
	s.greetingSystem.Update(deltaTime)
	s.fireworkSystem.Effects().DispatchTo(s.sound)
}

// Draw 绘制场景
func (s *FireworksScene) Draw(screen *ebiten.Image) {
	s.ensureLayer(screen.Bounds().Dx(), screen.Bounds().Dy())

	s.renderSystem.DrawAfterglow(s.canvas)
	s.starfieldSystem.Draw(s.canvas)
	s.renderSystem.DrawLaunches(s.canvas)

	screen.DrawImage(s.layer, nil)

	s.drawHUD(screen)
	s.drawGreeting(screen)
}

// ensureLayer 屏幕尺寸变化时重建离屏图层并重新撒星
func (s *FireworksScene) ensureLayer(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if s.layer != nil {
		b := s.layer.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		s.layer.Deallocate()
	}

	s.layer = ebiten.NewImage(w, h)
	s.canvas.SetTarget(s.layer)
	s.width, s.height = float64(w), float64(h)
	s.starfieldSystem.EnsureSize(s.width, s.height)
	log.Printf("[FireworksScene] 画布尺寸 %dx%d", w, h)
}

// LaunchCount 当前发射体数量
func (s *FireworksScene) LaunchCount() int {
	return s.fireworkSystem.LaunchCount()
}

// SaveOnExit 实现 game.Saveable，退出时保存用户设置
func (s *FireworksScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[FireworksScene] Warning: 保存设置失败: %v", err)
		return false
	}
	return true
}
