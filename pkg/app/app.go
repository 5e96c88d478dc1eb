// Package app 提供烟花应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	fwaudio "github.com/gonewx/fireworks/internal/audio"
	"github.com/gonewx/fireworks/pkg/config"
	"github.com/gonewx/fireworks/pkg/embedded"
	"github.com/gonewx/fireworks/pkg/entities"
	"github.com/gonewx/fireworks/pkg/game"
	"github.com/gonewx/fireworks/pkg/scenes"
	"github.com/gonewx/fireworks/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// SampleRate 音频采样率
const SampleRate = 48000

// gdataAppName 用户设置的存储目录名
const gdataAppName = "gonewx_fireworks"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部烟花配置文件，为空时使用嵌入的 data/fireworks.yaml
	ConfigPath string
	// MaxLaunches 覆盖 scene.maxLaunches（< 0 表示不覆盖）
	MaxLaunches int
	// Mute 启动时静音（不修改已保存的设置）
	Mute bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	audioManager             *game.AudioManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fireworksConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.MaxLaunches >= 0 {
		fireworksConfig.Scene.MaxLaunches = cfg.MaxLaunches
	}

	settingsManager := newSettingsManager()

	// 初始化音频上下文
	audioContext := audio.NewContext(SampleRate)

	resourceManager := game.NewResourceManager(SampleRate)
	if err := resourceManager.LoadResourceConfig(game.DefaultResourceConfigPath); err != nil {
		// 没有资源配置时全部使用合成音效
		log.Printf("[App] Warning: %v", err)
	}
	synthesized := resourceManager.LoadSounds(map[string]fwaudio.Clip{
		fireworksConfig.Audio.LaunchSound:    fwaudio.ClipLaunch,
		fireworksConfig.Audio.ExplosionSound: fwaudio.ClipExplosion,
	})
	log.Printf("[App] 音效就绪 (%d 个使用合成音效)", synthesized)

	audioManager := game.NewAudioManager(audioContext, resourceManager, settingsManager, fireworksConfig.Audio.Volume)
	audioManager.SetSessionMute(cfg.Mute)
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewFireworksScene(scenes.FireworksSceneOptions{
		Config:    fireworksConfig,
		Settings:  settingsManager,
		Audio:     audioManager,
		Random:    entities.NewRandomSource(),
		NoiseSeed: time.Now().UnixNano(),
		ShowFPS:   cfg.Verbose,
	}))

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadConfig 加载烟花配置
// path 为空时读取嵌入的 data/fireworks.yaml；嵌入资源不可用时使用默认配置
func LoadConfig(path string) (*config.FireworksConfig, error) {
	if path != "" {
		cfg, err := config.LoadFireworksConfig(path)
		if err != nil {
			return nil, fmt.Errorf("烟花配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置文件: %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() || !embedded.Exists(config.DefaultFireworksConfigPath) {
		log.Printf("[Config] 未找到嵌入配置，使用默认配置")
		return config.DefaultFireworksConfig(), nil
	}

	data, err := embedded.ReadFile(config.DefaultFireworksConfigPath)
	if err != nil {
		return nil, fmt.Errorf("烟花配置读取失败: %w", err)
	}
	cfg, err := config.ParseFireworksConfig(data)
	if err != nil {
		return nil, fmt.Errorf("烟花配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载嵌入配置: %s", config.DefaultFireworksConfigPath)
	return cfg, nil
}

// newSettingsManager 打开 gdata 存储，失败时降级为内存设置
func newSettingsManager() *game.SettingsManager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: gdataAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata 不可用，设置不会保存: %v", err)
		gdataManager = nil
	}

	sm, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v (using defaults)", err)
	}
	return sm
}

// Update 更新逻辑，每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(config.FrameDeltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	wasFullscreen := ebiten.IsFullscreen()
	if wasFullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(!wasFullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 画面外区域填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸跟随窗口，烟花始终从窗口底部发射
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.GameWindowWidth, config.GameWindowHeight
	}
	return outsideWidth, outsideHeight
}

// Shutdown 退出前停止音效并保存设置
func (a *App) Shutdown() {
	a.audioManager.StopAll()
	a.sceneManager.SaveOnExit()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
