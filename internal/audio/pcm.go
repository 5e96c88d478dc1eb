package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// 渲染格式：16 位有符号小端、双声道（Ebitengine audio.Context 的默认格式）
const (
	bytesPerSample = 2
	channels       = 2
	bytesPerFrame  = bytesPerSample * channels
)

// RenderPCM 把有限长度的 Streamer 渲染成 16 位小端双声道 PCM
//
// 参数:
//   - s: 音源（必须有限，否则读到 maxDuration 为止）
//   - rate: 采样率，用于计算上限
//   - maxFrames: 最多渲染的帧数，<= 0 表示 10 秒
func RenderPCM(s beep.Streamer, rate beep.SampleRate, maxFrames int) []byte {
	if maxFrames <= 0 {
		maxFrames = rate.N(10e9)
	}

	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4096)
	total := 0

	for total < maxFrames {
		want := len(buf)
		if remain := maxFrames - total; remain < want {
			want = remain
		}
		n, ok := s.Stream(buf[:want])
		for i := 0; i < n; i++ {
			out = appendSample(out, buf[i][0])
			out = appendSample(out, buf[i][1])
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func appendSample(out []byte, v float64) []byte {
	v = math.Max(-1, math.Min(1, v))
	s := int16(v * math.MaxInt16)
	return append(out, byte(s), byte(s>>8))
}

// SynthesizePCM 合成音效并渲染成 PCM
func SynthesizePCM(clip Clip, sampleRate int, volume float64) []byte {
	rate := beep.SampleRate(sampleRate)
	return RenderPCM(NewClip(clip, rate, volume), rate, 0)
}
