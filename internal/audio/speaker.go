package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate 终端版使用的采样率（与 Ebitengine 版的 audio.Context 一致）
const DefaultSampleRate = beep.SampleRate(48000)

// SpeakerPlayer 通过 beep/speaker 播放音效（终端版使用）
//
// 所有音效预先合成到 beep.Buffer，每次播放从缓冲区取一个新的 Streamer
// 加入同一个 Mixer，因此多个音效可以重叠播放。
// 未初始化（没有音频设备）时 PlaySound 返回 false，不会 panic。
type SpeakerPlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	clips       map[string]*beep.Buffer
	volume      float64
	muted       bool
	initialized bool
}

// NewSpeakerPlayer 创建播放器
//
// 参数:
//   - rate: 采样率
//   - volume: 线性音量 0.0 ~ 1.0
func NewSpeakerPlayer(rate beep.SampleRate, volume float64) *SpeakerPlayer {
	return &SpeakerPlayer{
		rate:   rate,
		mixer:  &beep.Mixer{},
		clips:  make(map[string]*beep.Buffer),
		volume: volume,
	}
}

// Initialize 打开音频设备
// 重复调用是安全的
func (p *SpeakerPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close 停止所有音效
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// RegisterClip 合成音效并以 soundID 注册
func (p *SpeakerPlayer) RegisterClip(soundID string, clip Clip) {
	format := beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2}
	buffer := beep.NewBuffer(format)
	buffer.Append(NewClip(clip, p.rate, 1.0))

	p.mu.Lock()
	p.clips[soundID] = buffer
	p.mu.Unlock()

	log.Printf("[SpeakerPlayer] 注册音效 %s (%s, %d samples)", soundID, clip, buffer.Len())
}

// HasClip 检查音效是否已注册
func (p *SpeakerPlayer) HasClip(soundID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.clips[soundID]
	return ok
}

// SetVolume 设置线性音量（截断到 0.0 ~ 1.0）
func (p *SpeakerPlayer) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	p.mu.Lock()
	p.volume = volume
	p.mu.Unlock()
}

// Volume 返回当前音量
func (p *SpeakerPlayer) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetMuted 设置静音
func (p *SpeakerPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// IsMuted 返回是否静音
func (p *SpeakerPlayer) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// PlaySound 播放已注册的音效
//
// 返回:
//   - bool: 音效确实开始播放时返回 true；未初始化、静音、音量为 0 或未注册时返回 false
func (p *SpeakerPlayer) PlaySound(soundID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || p.volume <= 0 {
		return false
	}

	buffer, ok := p.clips[soundID]
	if !ok {
		log.Printf("[SpeakerPlayer] 未注册的音效: %s", soundID)
		return false
	}

	streamer := newVolume(buffer.Streamer(0, buffer.Len()), p.volume)

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	return true
}
