// Package audio 合成烟花音效
//
// 没有音频文件时使用合成音效：发射是上扬的哨音加嘶嘶声，爆炸是低频轰鸣加噪声。
// 合成结果是有限长度的 beep.Streamer，可以渲染成 PCM 交给 Ebitengine，
// 也可以直接交给 beep/speaker 播放（终端版）。
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Clip 合成音效种类
type Clip int

const (
	ClipLaunch Clip = iota
	ClipExplosion
)

// String 返回音效名，用于日志
func (c Clip) String() string {
	switch c {
	case ClipLaunch:
		return "launch"
	case ClipExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// 音效时长
const (
	LaunchDuration    = 450 * time.Millisecond
	ExplosionDuration = 900 * time.Millisecond
)

// oscillator 生成原始波形，频率在持续时间内从 freq 线性滑到 endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator 创建固定频率振荡器
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep 创建扫频振荡器
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 起音/释音包络
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope 创建包络（简化的 ADSR，只有起音和释音）
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			// 指数衰减比线性衰减更像真实的爆炸尾音
			remaining := float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			vol = remaining * remaining
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性音量转成 effects.Volume
// math.Log2(0) 为 -Inf，音量 <= 0 时直接静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewClip 合成指定音效，返回有限长度的 Streamer
//
// 参数:
//   - clip: 音效种类
//   - rate: 采样率
//   - volume: 线性音量 0.0 ~ 1.0
func NewClip(clip Clip, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch clip {
	case ClipExplosion:
		s = newExplosion(rate)
	default:
		s = newLaunch(rate)
	}
	return newVolume(s, volume)
}

// newLaunch 上扬哨音 + 嘶嘶声
func newLaunch(rate beep.SampleRate) beep.Streamer {
	whistle := NewEnvelope(
		NewSweep(500, 1400, LaunchDuration, WaveSine, rate),
		LaunchDuration, 30*time.Millisecond, 200*time.Millisecond, rate,
	)
	hiss := NewEnvelope(
		NewOscillator(0, LaunchDuration, WaveNoise, rate),
		LaunchDuration, 10*time.Millisecond, 380*time.Millisecond, rate,
	)
	return beep.Mix(
		newVolume(whistle, 0.35),
		newVolume(hiss, 0.25),
	)
}

// newExplosion 短促的爆裂声接低频轰鸣
func newExplosion(rate beep.SampleRate) beep.Streamer {
	crack := NewEnvelope(
		NewOscillator(0, 120*time.Millisecond, WaveNoise, rate),
		120*time.Millisecond, 2*time.Millisecond, 100*time.Millisecond, rate,
	)
	rumbleDuration := ExplosionDuration - 120*time.Millisecond
	rumble := beep.Mix(
		newVolume(NewSweep(90, 40, rumbleDuration, WaveSine, rate), 0.6),
		newVolume(NewOscillator(0, rumbleDuration, WaveNoise, rate), 0.3),
	)
	shapedRumble := NewEnvelope(rumble, rumbleDuration, 5*time.Millisecond, rumbleDuration*3/4, rate)

	return beep.Seq(
		newVolume(crack, 0.8),
		shapedRumble,
	)
}
