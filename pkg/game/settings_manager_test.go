package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.SoundVolume != 1.0 {
		t.Errorf("SoundVolume: got %v, want 1.0", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if !settings.ShowStars {
		t.Error("ShowStars: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if settings.SoundVolume != 1.0 {
		t.Errorf("Degraded mode SoundVolume: got %v, want 1.0", settings.SoundVolume)
	}

	// 降级模式下保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_fireworks_settings")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetShowStars(false)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if settings.ShowStars {
		t.Error("Loaded ShowStars: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestLoadPartialSettings 旧版本文件缺少的字段使用默认值
func TestLoadPartialSettings(t *testing.T) {
	gdataManager := openTestGdata(t, "test_fireworks_partial")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: 0.3\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, _ := NewSettingsManager(gdataManager)
	settings := sm.GetSettings()
	if settings.SoundVolume != 0.3 {
		t.Errorf("SoundVolume: got %v, want 0.3", settings.SoundVolume)
	}
	if !settings.ShowStars || !settings.SoundEnabled {
		t.Error("missing fields should keep their defaults")
	}
}

// TestLoadCorruptedSettings 文件损坏时返回错误并回到默认设置
func TestLoadCorruptedSettings(t *testing.T) {
	gdataManager := openTestGdata(t, "test_fireworks_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err == nil {
		t.Error("NewSettingsManager() should report the corrupted file")
	}
	if sm == nil {
		t.Fatal("NewSettingsManager() must still return a usable manager")
	}
	if sm.GetSettings().SoundVolume != 1.0 {
		t.Errorf("Expected defaults after corrupted load, got %v", sm.GetSettings().SoundVolume)
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should keep reporting the corrupted file")
	}
}

// TestToggleAndSave 测试切换并保存
func TestToggleAndSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_fireworks_toggle")
	sm, _ := NewSettingsManager(gdataManager)

	if got := sm.ToggleAndSave(&sm.GetSettings().SoundEnabled); got {
		t.Error("Expected SoundEnabled false after toggle")
	}

	reloaded, _ := NewSettingsManager(gdataManager)
	if reloaded.GetSettings().SoundEnabled {
		t.Error("toggle should be persisted")
	}

	if got := sm.ToggleAndSave(&sm.GetSettings().SoundEnabled); !got {
		t.Error("Expected SoundEnabled true after second toggle")
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume() 的范围限制
func TestSetSoundVolumeClamp(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"正常值", 0.5, 0.5},
		{"最小值", 0.0, 0.0},
		{"最大值", 1.0, 1.0},
		{"小于最小值", -0.5, 0.0},
		{"大于最大值", 1.5, 1.0},
	}

	sm, _ := NewSettingsManager(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetSoundVolume(tt.input)
			if got := sm.GetSettings().SoundVolume; got != tt.expected {
				t.Errorf("SetSoundVolume(%v): got %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
