package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

// TestSpeakerPlayerGracefulDegradation 未初始化时所有操作都不应 panic
func TestSpeakerPlayerGracefulDegradation(t *testing.T) {
	p := NewSpeakerPlayer(beep.SampleRate(8000), 0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("SpeakerPlayer panicked without initialization: %v", r)
		}
	}()

	p.RegisterClip("SOUND_LAUNCH", ClipLaunch)
	if !p.HasClip("SOUND_LAUNCH") {
		t.Error("clip should be registered")
	}
	if p.PlaySound("SOUND_LAUNCH") {
		t.Error("PlaySound should return false before Initialize")
	}
	p.Close()
}

func TestSpeakerPlayerVolumeAndMute(t *testing.T) {
	p := NewSpeakerPlayer(DefaultSampleRate, 0.5)

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"正常", 0.3, 0.3},
		{"负数截断", -1, 0},
		{"超过 1 截断", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.SetVolume(tt.in)
			if got := p.Volume(); got != tt.want {
				t.Errorf("Volume = %f, want %f", got, tt.want)
			}
		})
	}

	p.SetMuted(true)
	if !p.IsMuted() {
		t.Error("expected muted")
	}
}

// TestSpeakerPlayerInitialization 无音频设备的测试环境中初始化可能失败，这不算测试失败
func TestSpeakerPlayerInitialization(t *testing.T) {
	p := NewSpeakerPlayer(DefaultSampleRate, 0.5)
	if err := p.Initialize(); err != nil {
		t.Logf("Speaker initialization failed (expected in test environment): %v", err)
		return
	}
	defer p.Close()

	if err := p.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}

	if p.PlaySound("MISSING") {
		t.Error("PlaySound of unregistered clip should return false")
	}

	p.RegisterClip("SOUND_EXPLOSION", ClipExplosion)
	if !p.PlaySound("SOUND_EXPLOSION") {
		t.Error("PlaySound should succeed after Initialize")
	}

	p.SetMuted(true)
	if p.PlaySound("SOUND_EXPLOSION") {
		t.Error("PlaySound should return false while muted")
	}
}
