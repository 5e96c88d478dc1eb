package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// UserSettings 运行时由按键修改并持久化的偏好
// 动画参数在 data/fireworks.yaml 中，不在这里
type UserSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0，与 audio.volume 相乘
	SoundEnabled bool    `yaml:"soundEnabled"` // M
	ShowStars    bool    `yaml:"showStars"`    // S
	Fullscreen   bool    `yaml:"fullscreen"`   // F11
}

// DefaultSettings 首次启动时的设置
func DefaultSettings() *UserSettings {
	return &UserSettings{
		SoundVolume:  1.0,
		SoundEnabled: true,
		ShowStars:    true,
	}
}

// gdata 中的存储位置
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 持有当前设置，并通过 gdata 读写
// store 为 nil 时只在内存中生效（存储目录不可用时的降级模式）
type SettingsManager struct {
	store    *gdata.Manager
	settings *UserSettings
}

// NewSettingsManager 创建设置管理器并读取已保存的设置
// 读取失败时返回的管理器使用默认设置，同时返回该错误
func NewSettingsManager(store *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	return sm, sm.Load()
}

// Load 重新读取设置；无存储或无存档时回到默认值
// 存档中缺少的字段保持默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded")
	return nil
}

// Save 写入当前设置，降级模式下什么也不做
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings 当前设置（可直接修改，之后调用 Save 持久化）
func (sm *SettingsManager) GetSettings() *UserSettings {
	return sm.settings
}

// ToggleAndSave 翻转一个布尔设置并立即保存，返回新值
// 保存失败只记录日志，内存中的值仍然生效
func (sm *SettingsManager) ToggleAndSave(field *bool) bool {
	*field = !*field
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
	return *field
}

// SetSoundVolume 设置音量（限制在 0.0 ~ 1.0），只改内存
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) { sm.settings.SoundEnabled = enabled }

func (sm *SettingsManager) SetShowStars(show bool) { sm.settings.ShowStars = show }

func (sm *SettingsManager) SetFullscreen(enabled bool) { sm.settings.Fullscreen = enabled }

func clampVolume(volume float64) float64 {
	return math.Max(0, math.Min(1, volume))
}
