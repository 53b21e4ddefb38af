package tui

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound 终端前端的音效，基于 beep speaker
// 初始化失败或静音时所有播放都是空操作
type Sound struct {
	enabled bool
}

// NewSound 初始化扬声器，mute 为 true 时不打开音频设备
func NewSound(mute bool) *Sound {
	if mute {
		return &Sound{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Sound] 音频初始化失败: %v", err)
		return &Sound{}
	}
	return &Sound{enabled: true}
}

// Enabled 是否会实际出声
func (s *Sound) Enabled() bool {
	return s != nil && s.enabled
}

// PlayShutter 快门声：一段衰减的短噪声
func (s *Sound) PlayShutter() {
	if !s.Enabled() {
		return
	}
	speaker.Play(ShutterStreamer(sampleRate))
}

// PlayWhistle 结束哨声
func (s *Sound) PlayWhistle() {
	if !s.Enabled() {
		return
	}
	if st, err := WhistleStreamer(sampleRate); err == nil {
		speaker.Play(st)
	}
}

// Close 关闭音频设备
func (s *Sound) Close() {
	if s.Enabled() {
		speaker.Close()
		s.enabled = false
	}
}

// ShutterStreamer 生成 120ms 的快门噪声
func ShutterStreamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(120 * time.Millisecond)
	rng := rand.New(rand.NewSource(7))
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			decay := math.Exp(-float64(pos) / float64(total) * 6)
			v := (rng.Float64()*2 - 1) * decay * 0.6
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// WhistleStreamer 三段下降音高的哨声
func WhistleStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	var parts []beep.Streamer
	for _, freq := range []float64{1800, 1300, 900} {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(200*time.Millisecond), tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -2,
	}, nil
}
