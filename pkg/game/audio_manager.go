package game

import (
	"encoding/binary"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频采样率
const SampleRate = 48000

// 音效ID
const (
	SoundShutter = "shutter" // 拍到鸟时的快门声
	SoundWhistle = "whistle" // 倒计时结束的哨声
)

// AudioManager 音频管理器
//
// 所有音效都在启动时按程序合成为 16 位小端立体声 PCM，
// 不依赖任何音频文件。audio context 为 nil 时进入静音模式，所有调用都是空操作。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager         // 用于读取音量和开关，可为 nil
	clips           map[string][]byte        // 音效ID -> PCM 数据
	players         map[string]*audio.Player // 音效ID -> 播放器缓存
}

// NewAudioManager 创建新的音频管理器
//
// ctx 可为 nil（静音模式），sm 可为 nil（使用默认音量）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		clips: map[string][]byte{
			SoundShutter: GenerateShutterPCM(SampleRate),
			SoundWhistle: GenerateWhistlePCM(SampleRate),
		},
		players: make(map[string]*audio.Player),
	}
}

// PlaySound 从头播放音效，返回是否实际开始播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am == nil || am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getPlayer(soundID)
	if player == nil {
		return false
	}

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: rewind %s failed: %v", soundID, err)
		return false
	}
	player.SetVolume(am.GetSoundVolume())
	player.Play()
	return true
}

// GetSoundVolume 返回当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	if am == nil || am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// SetSoundVolume 修改音效音量并立即作用于已缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am == nil || am.settingsManager == nil {
		return
	}
	am.settingsManager.SetSoundVolume(volume)
	for _, p := range am.players {
		p.SetVolume(am.settingsManager.GetSettings().SoundVolume)
	}
}

func (am *AudioManager) getPlayer(soundID string) *audio.Player {
	if p, ok := am.players[soundID]; ok {
		return p
	}
	clip, ok := am.clips[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: unknown sound %q", soundID)
		return nil
	}
	p := am.context.NewPlayerFromBytes(clip)
	am.players[soundID] = p
	return p
}

// GenerateShutterPCM 合成快门声：两段快速衰减的噪声咔哒
func GenerateShutterPCM(sampleRate int) []byte {
	rng := rand.New(rand.NewSource(7))
	const duration = 0.18
	return synthesizeStereo(sampleRate, duration, func(t float64) float64 {
		var env float64
		switch {
		case t < 0.06:
			env = math.Exp(-t * 90)
		case t >= 0.09:
			env = 0.7 * math.Exp(-(t-0.09)*70)
		}
		return (rng.Float64()*2 - 1) * env
	})
}

// GenerateWhistlePCM 合成结束哨声：由高到低的正弦滑音
func GenerateWhistlePCM(sampleRate int) []byte {
	const duration = 0.6
	phase := 0.0
	return synthesizeStereo(sampleRate, duration, func(t float64) float64 {
		freq := 1800 - 900*(t/duration)
		phase += 2 * math.Pi * freq / float64(sampleRate)
		env := math.Min(1, t*40) * math.Exp(-2.5*t/duration)
		return math.Sin(phase) * env * 0.6
	})
}

// synthesizeStereo 把单声道采样函数渲染成 16 位小端立体声 PCM
// sample 返回值会被限制在 [-1, 1]
func synthesizeStereo(sampleRate int, duration float64, sample func(t float64) float64) []byte {
	n := int(float64(sampleRate) * duration)
	data := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := sample(float64(i) / float64(sampleRate))
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(data[i*4:], s)
		binary.LittleEndian.PutUint16(data[i*4+2:], s)
	}
	return data
}
