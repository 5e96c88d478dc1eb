package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FireworksConfig 烟花动画的全部可调参数
//
// 配置文件位置: data/fireworks.yaml
//
// 所有速度、重力、衰减量都以"每帧"为单位（动画按固定帧步长推进），
// 只有延迟类参数以秒为单位。
type FireworksConfig struct {
	Launch    LaunchConfig    `yaml:"launch"`
	Burst     BurstConfig     `yaml:"burst"`
	Micro     MicroConfig     `yaml:"micro"`
	Scene     SceneConfig     `yaml:"scene"`
	Audio     AudioConfig     `yaml:"audio"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Greeting  GreetingConfig  `yaml:"greeting"`
}

// LaunchConfig 上升阶段的发射体参数
type LaunchConfig struct {
	// SpeedY 每帧纵向位移（负值向上）
	SpeedY float64 `yaml:"speedY"`
	// TargetOffsetMin/Max 目标高度相对点击位置的向上偏移范围 [min, max)
	TargetOffsetMin float64 `yaml:"targetOffsetMin"`
	TargetOffsetMax float64 `yaml:"targetOffsetMax"`
	// TrailLength 尾迹最多保留的位置数
	TrailLength int `yaml:"trailLength"`
	// HeadRadius 弹头圆点半径
	HeadRadius float64 `yaml:"headRadius"`
	// TrailRadius 尾迹第 0 个点的半径，之后每个点减少 TrailRadiusStep
	TrailRadius     float64 `yaml:"trailRadius"`
	TrailRadiusStep float64 `yaml:"trailRadiusStep"`
	// ParticleCount 爆炸时生成的粒子数
	ParticleCount int `yaml:"particleCount"`
}

// BurstConfig 爆炸粒子参数
type BurstConfig struct {
	SpeedMin       float64 `yaml:"speedMin"`
	SpeedMax       float64 `yaml:"speedMax"`
	Gravity        float64 `yaml:"gravity"`
	Fade           float64 `yaml:"fade"`
	Radius         float64 `yaml:"radius"`
	GradientRadius float64 `yaml:"gradientRadius"`
	// MicroDelayMin/Max 粒子生成后触发二次小爆炸的延迟范围（秒）
	MicroDelayMin float64 `yaml:"microDelayMin"`
	MicroDelayMax float64 `yaml:"microDelayMax"`
}

// MicroConfig 二次小爆炸参数
type MicroConfig struct {
	Count int `yaml:"count"`
	// StaggerSeconds 同一批小爆炸依次加入的间隔（秒）
	StaggerSeconds float64 `yaml:"staggerSeconds"`
	SpeedMin       float64 `yaml:"speedMin"`
	SpeedMax       float64 `yaml:"speedMax"`
	Gravity        float64 `yaml:"gravity"`
	Fade           float64 `yaml:"fade"`
	SizeMin        float64 `yaml:"sizeMin"`
	SizeMax        float64 `yaml:"sizeMax"`
}

// SceneConfig 场景级参数
type SceneConfig struct {
	// MaxLaunches 同时存在的发射体上限，0 表示不限
	MaxLaunches int `yaml:"maxLaunches"`
	// FadeAlpha 每帧覆盖的黑色矩形透明度（余晖效果）
	FadeAlpha float64 `yaml:"fadeAlpha"`
}

// AudioConfig 音效参数
type AudioConfig struct {
	LaunchSound    string  `yaml:"launchSound"`
	ExplosionSound string  `yaml:"explosionSound"`
	Volume         float64 `yaml:"volume"`
}

// StarfieldConfig 星空背景参数
type StarfieldConfig struct {
	Count int `yaml:"count"`
	// SizeMin/Max 星星边长范围（像素）
	SizeMin float64 `yaml:"sizeMin"`
	SizeMax float64 `yaml:"sizeMax"`
	// TwinkleMin/Max 闪烁周期范围（秒）
	TwinkleMin float64 `yaml:"twinkleMin"`
	TwinkleMax float64 `yaml:"twinkleMax"`
}

// GreetingConfig 贺卡文案
type GreetingConfig struct {
	Year int `yaml:"year"`
	// Messages 祝福语模板，支持 {name} 和 {year} 占位符
	Messages []string `yaml:"messages"`
	// EmptyNamePrompt 未输入名字时的提示
	EmptyNamePrompt string `yaml:"emptyNamePrompt"`
	// DefaultName 没有键盘时（移动端）贺卡使用的称呼
	DefaultName string `yaml:"defaultName"`
}

// 音效资源ID
const (
	SoundLaunch    = "SOUND_LAUNCH"
	SoundExplosion = "SOUND_EXPLOSION"
)

// DefaultFireworksConfigPath 默认配置文件路径
const DefaultFireworksConfigPath = "data/fireworks.yaml"

// DefaultFireworksConfig 返回默认配置
// 二次小爆炸同样逐帧衰减（MicroConfig.Fade），保证所有粒子最终消失
func DefaultFireworksConfig() *FireworksConfig {
	return &FireworksConfig{
		Launch: LaunchConfig{
			SpeedY:          -8,
			TargetOffsetMin: 150,
			TargetOffsetMax: 350,
			TrailLength:     10,
			HeadRadius:      3,
			TrailRadius:     3,
			TrailRadiusStep: 0.2,
			ParticleCount:   30,
		},
		Burst: BurstConfig{
			SpeedMin:       2,
			SpeedMax:       5,
			Gravity:        0.05,
			Fade:           0.02,
			Radius:         2,
			GradientRadius: 50,
			MicroDelayMin:  0.5,
			MicroDelayMax:  1.3,
		},
		Micro: MicroConfig{
			Count:          3,
			StaggerSeconds: 0.05,
			SpeedMin:       0.8,
			SpeedMax:       2.0,
			Gravity:        0.05,
			Fade:           0.02,
			SizeMin:        0.5,
			SizeMax:        2.0,
		},
		Scene: SceneConfig{
			MaxLaunches: 0,
			FadeAlpha:   0.2,
		},
		Audio: AudioConfig{
			LaunchSound:    SoundLaunch,
			ExplosionSound: SoundExplosion,
			Volume:         0.5,
		},
		Starfield: StarfieldConfig{
			Count:      120,
			SizeMin:    1,
			SizeMax:    3,
			TwinkleMin: 2,
			TwinkleMax: 7,
		},
		Greeting: GreetingConfig{
			Year:            2025,
			Messages:        defaultGreetingMessages(),
			EmptyNamePrompt: "Please enter your name!",
			DefaultName:     "friend",
		},
	}
}

func defaultGreetingMessages() []string {
	return []string{
		"Happy New Year, {name}! May {year} be filled with joy, growth, and endless opportunities to achieve your dreams.",
		"Cheers to a fresh start, {name}! May this year bring you happiness, love, and the courage to pursue everything you've always wanted.",
		"Happy {year}, {name}! I hope this year brings new adventures, unforgettable memories, and the strength to face any challenges that come your way.",
		"Welcome to {year}, {name}! May this year open doors to new experiences and bring you closer to your dreams.",
		"Here's to {year}, {name}! May this year be full of new achievements, joyful moments, and the pursuit of all your passions.",
	}
}

// LoadFireworksConfig 从文件加载烟花配置
//
// 参数:
//   - path: 配置文件路径（如 "data/fireworks.yaml"）
//
// 返回:
//   - *FireworksConfig: 加载成功后的配置（未填写的字段使用默认值）
//   - error: 读取、解析或验证失败时返回错误
func LoadFireworksConfig(path string) (*FireworksConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fireworks config: %w", err)
	}
	return ParseFireworksConfig(data)
}

// ParseFireworksConfig 解析 YAML 格式的烟花配置
//
// 解析前先填充默认值，YAML 中出现的字段覆盖默认值。
func ParseFireworksConfig(data []byte) (*FireworksConfig, error) {
	cfg := DefaultFireworksConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fireworks config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fireworks config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 所有 [min, max) 范围满足 min <= max
//   - 数量类参数为正（MaxLaunches 允许为 0）
//   - 衰减量为正，保证所有粒子最终都会消失
//   - 尾迹半径在最新的尾迹点（半径最小）处仍为正
func (c *FireworksConfig) Validate() error {
	if c.Launch.SpeedY >= 0 {
		return fmt.Errorf("launch.speedY must be negative (upwards), got %.2f", c.Launch.SpeedY)
	}
	if err := validateRange("launch.targetOffset", c.Launch.TargetOffsetMin, c.Launch.TargetOffsetMax); err != nil {
		return err
	}
	if c.Launch.TrailLength < 1 {
		return fmt.Errorf("launch.trailLength must be >= 1, got %d", c.Launch.TrailLength)
	}
	if c.Launch.ParticleCount < 1 {
		return fmt.Errorf("launch.particleCount must be >= 1, got %d", c.Launch.ParticleCount)
	}
	// 尾迹第 0 个点最老、半径最大，第 TrailLength-1 个点最新、半径最小
	newest := c.Launch.TrailRadius - float64(c.Launch.TrailLength-1)*c.Launch.TrailRadiusStep
	if newest <= 0 {
		return fmt.Errorf("launch trail radius for the newest (smallest) point must stay positive, got %.2f", newest)
	}

	if err := validateRange("burst.speed", c.Burst.SpeedMin, c.Burst.SpeedMax); err != nil {
		return err
	}
	if err := validateRange("burst.microDelay", c.Burst.MicroDelayMin, c.Burst.MicroDelayMax); err != nil {
		return err
	}
	if c.Burst.Fade <= 0 {
		return fmt.Errorf("burst.fade must be > 0, got %.3f", c.Burst.Fade)
	}
	if c.Burst.GradientRadius <= 0 {
		return fmt.Errorf("burst.gradientRadius must be > 0, got %.2f", c.Burst.GradientRadius)
	}

	if c.Micro.Count < 0 {
		return fmt.Errorf("micro.count must be >= 0, got %d", c.Micro.Count)
	}
	if err := validateRange("micro.speed", c.Micro.SpeedMin, c.Micro.SpeedMax); err != nil {
		return err
	}
	if err := validateRange("micro.size", c.Micro.SizeMin, c.Micro.SizeMax); err != nil {
		return err
	}
	if c.Micro.Fade <= 0 {
		return fmt.Errorf("micro.fade must be > 0, got %.3f", c.Micro.Fade)
	}
	if c.Micro.StaggerSeconds < 0 {
		return fmt.Errorf("micro.staggerSeconds must be >= 0, got %.3f", c.Micro.StaggerSeconds)
	}

	if c.Scene.MaxLaunches < 0 {
		return fmt.Errorf("scene.maxLaunches must be >= 0, got %d", c.Scene.MaxLaunches)
	}
	if c.Scene.FadeAlpha <= 0 || c.Scene.FadeAlpha > 1 {
		return fmt.Errorf("scene.fadeAlpha must be in (0, 1], got %.2f", c.Scene.FadeAlpha)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1], got %.2f", c.Audio.Volume)
	}

	if c.Starfield.Count < 0 {
		return fmt.Errorf("starfield.count must be >= 0, got %d", c.Starfield.Count)
	}
	if err := validateRange("starfield.size", c.Starfield.SizeMin, c.Starfield.SizeMax); err != nil {
		return err
	}
	if err := validateRange("starfield.twinkle", c.Starfield.TwinkleMin, c.Starfield.TwinkleMax); err != nil {
		return err
	}

	if len(c.Greeting.Messages) == 0 {
		return fmt.Errorf("greeting.messages must not be empty")
	}
	if strings.TrimSpace(c.Greeting.DefaultName) == "" {
		return fmt.Errorf("greeting.defaultName must not be empty")
	}

	return nil
}

func validateRange(name string, min, max float64) error {
	if min > max {
		return fmt.Errorf("%s range invalid: min(%.2f) > max(%.2f)", name, min, max)
	}
	return nil
}
