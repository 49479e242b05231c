package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理战斗音效与语音的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//
// 设计原则：
//   - 可选协作者：任何持有 *AudioManager 的系统都必须容忍 nil，
//     音频缺失时所有调用静默跳过，绝不报错
//   - 音效数据由外部注册（RegisterSound），本管理器不关心来源
type AudioManager struct {
	audioContext    *audio.Context   // ebiten 音频上下文，可为 nil（无声模式）
	settingsManager *SettingsManager // 设置管理器（用于读取音量设置），可为 nil
	soundData       map[string][]byte
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（无声模式）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundData:       make(map[string][]byte),
	}
}

// RegisterSound 注册一段解码后的 PCM 音效数据
func (am *AudioManager) RegisterSound(soundID string, data []byte) {
	if am == nil {
		return
	}
	am.soundData[soundID] = data
}

// PlaySound 在 (x, y) 播放音效
// 管理器为 nil、上下文缺失或音效未注册时静默跳过
// 坐标目前仅用于日志，为立体声定位预留
func (am *AudioManager) PlaySound(soundID string, x, y float64) bool {
	if am == nil || am.audioContext == nil {
		return false
	}

	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	data, ok := am.soundData[soundID]
	if !ok {
		return false
	}

	player := am.audioContext.NewPlayerFromBytes(data)
	volume := 1.0
	if am.settingsManager != nil {
		volume = am.settingsManager.GetSettings().SoundVolume
	}
	player.SetVolume(volume)
	player.Play()
	return true
}

// Speak 播放一句语音台词
// 语音资源以 "voice:{voiceID}" 注册；缺失时只记录日志，不报错
func (am *AudioManager) Speak(line string, voiceID string) {
	if am == nil {
		return
	}
	log.Printf("[Audio] speak voice=%s line=%q", voiceID, line)
	am.PlaySound("voice:"+voiceID, 0, 0)
}
