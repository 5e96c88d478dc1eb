package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理烟花音效的播放（实现 systems.SoundPlayer）
//   - 音量 = 配置音量 × 用户设置音量
//   - 音效开关从 SettingsManager 读取
//
// 每次播放都基于缓存的 PCM 创建新的 audio.Player，
// 因此连续点击时多个发射/爆炸音效可以重叠。
type AudioManager struct {
	audioContext    *audio.Context
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil
	effectVolume    float64          // 配置中的基础音量
	active          []*audio.Player  // 正在播放的播放器
	// sessionMuted 仅本次运行静音（--mute），不写入设置
	sessionMuted bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 全局 audio.Context（可为 nil，此时所有播放调用返回 false）
//   - rm: ResourceManager 实例（提供 PCM 数据）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - effectVolume: 配置中的基础音量 0.0 ~ 1.0
func NewAudioManager(ctx *audio.Context, rm *ResourceManager, sm *SettingsManager, effectVolume float64) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		resourceManager: rm,
		settingsManager: sm,
		effectVolume:    clampVolume(effectVolume),
	}
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_LAUNCH"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.IsSoundEnabled() {
		return false
	}
	if am.audioContext == nil || am.resourceManager == nil {
		return false
	}

	pcm, ok := am.resourceManager.GetSoundPCM(soundID)
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	volume := am.Volume()
	if volume <= 0 {
		return false
	}

	player := am.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(volume)
	player.Play()

	am.pruneFinished()
	am.active = append(am.active, player)
	return true
}

// pruneFinished 释放已播放完毕的播放器
func (am *AudioManager) pruneFinished() {
	kept := am.active[:0]
	for _, p := range am.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player: %v", err)
		}
	}
	am.active = kept
}

// StopAll 停止全部音效
func (am *AudioManager) StopAll() {
	for _, p := range am.active {
		p.Pause()
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player: %v", err)
		}
	}
	am.active = am.active[:0]
}

// SetSessionMute 本次运行静音，已保存的音效开关保持不变
func (am *AudioManager) SetSessionMute(muted bool) {
	am.sessionMuted = muted
	if muted {
		am.StopAll()
	}
}

// IsSoundEnabled 音效是否开启（没有设置管理器时默认开启）
func (am *AudioManager) IsSoundEnabled() bool {
	if am.sessionMuted {
		return false
	}
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// ToggleMute 切换静音并保存设置
// 处于本次运行静音时，先解除它；已保存的开关本来就是开启的话不再改动设置
//
// 返回：
//   - bool: 切换后音效是否开启
func (am *AudioManager) ToggleMute() bool {
	if am.sessionMuted {
		am.sessionMuted = false
		if am.IsSoundEnabled() {
			log.Printf("[AudioManager] 解除启动静音")
			return true
		}
	}
	if am.settingsManager == nil {
		return true
	}
	enabled := am.settingsManager.ToggleAndSave(&am.settingsManager.GetSettings().SoundEnabled)
	if !enabled {
		am.StopAll()
	}
	log.Printf("[AudioManager] 音效开关: %v", enabled)
	return enabled
}

// SetEffectVolume 设置配置基础音量
func (am *AudioManager) SetEffectVolume(volume float64) {
	am.effectVolume = clampVolume(volume)
}

// SetSoundVolume 设置用户音量并立即作用到正在播放的音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	v := am.Volume()
	for _, p := range am.active {
		p.SetVolume(v)
	}
}

// Volume 返回最终播放音量（配置音量 × 用户音量）
func (am *AudioManager) Volume() float64 {
	user := 1.0
	if am.settingsManager != nil {
		user = am.settingsManager.GetSettings().SoundVolume
	}
	return am.effectVolume * user
}
