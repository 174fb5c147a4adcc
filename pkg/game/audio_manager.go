package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 播放循环的程序化雨声
//   - 倒计时结束时播放一次提示音
//   - 从 SettingsManager 读取音量与静音设置
//
// context 为 nil 时所有方法都是空操作（无声卡环境、测试）。
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	seed            uint64

	ambience    *audio.Player
	chimeData   []byte
	chimePlayer *audio.Player
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - seed: 雨声噪声种子
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, seed uint64) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		seed:            seed,
	}
}

// StartAmbience 开始播放雨声
// 已在播放或处于静音时不做处理
//
// 返回：
//   - bool: 雨声是否处于播放状态
func (am *AudioManager) StartAmbience() bool {
	if am.context == nil {
		return false
	}
	if am.IsMuted() {
		return false
	}

	if am.ambience == nil {
		player, err := am.context.NewPlayer(NewRainNoise(am.seed))
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to create ambience player: %v", err)
			return false
		}
		am.ambience = player
	}

	am.ambience.SetVolume(am.getAmbienceVolume())
	if !am.ambience.IsPlaying() {
		am.ambience.Play()
		log.Printf("[AudioManager] Ambience started (volume: %.2f)", am.getAmbienceVolume())
	}
	return true
}

// StopAmbience 暂停雨声
func (am *AudioManager) StopAmbience() {
	if am.ambience != nil {
		am.ambience.Pause()
	}
}

// IsMuted 雨声是否静音
func (am *AudioManager) IsMuted() bool {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().Muted
	}
	return false
}

// ToggleMute 切换雨声静音，返回切换后的静音状态
func (am *AudioManager) ToggleMute() bool {
	muted := !am.IsMuted()
	am.SetMuted(muted)
	return muted
}

// SetMuted 设置雨声静音并立即生效
func (am *AudioManager) SetMuted(muted bool) {
	if am.settingsManager != nil {
		am.settingsManager.SetMuted(muted)
	}
	if muted {
		am.StopAmbience()
	} else {
		am.StartAmbience()
	}
	log.Printf("[AudioManager] Ambience muted: %v", muted)
}

// SetAmbienceVolume 设置雨声音量，立即应用到播放中的雨声
func (am *AudioManager) SetAmbienceVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetAmbienceVolume(volume)
	}
	if am.ambience != nil {
		am.ambience.SetVolume(am.getAmbienceVolume())
	}
}

// PlayChime 播放倒计时结束提示音
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayChime() bool {
	if am.context == nil {
		return false
	}
	if am.settingsManager != nil && !am.settingsManager.GetSettings().ChimeEnabled {
		return false
	}

	if am.chimePlayer == nil {
		if am.chimeData == nil {
			am.chimeData = GenerateChime(am.context.SampleRate(), ChimeDuration)
		}
		am.chimePlayer = am.context.NewPlayerFromBytes(am.chimeData)
	}

	am.chimePlayer.SetVolume(am.getChimeVolume())
	if err := am.chimePlayer.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind chime: %v", err)
	}
	am.chimePlayer.Play()
	log.Printf("[AudioManager] Chime played")
	return true
}

// Close 停止并释放所有播放器
func (am *AudioManager) Close() {
	if am.ambience != nil {
		am.ambience.Pause()
		if err := am.ambience.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close ambience player: %v", err)
		}
		am.ambience = nil
	}
	if am.chimePlayer != nil {
		am.chimePlayer.Pause()
		am.chimePlayer = nil
	}
}

// getAmbienceVolume 获取雨声音量设置
func (am *AudioManager) getAmbienceVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().AmbienceVolume
	}
	return 0.6 // 默认值
}

// getChimeVolume 获取提示音音量设置
func (am *AudioManager) getChimeVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().ChimeVolume
	}
	return 0.8 // 默认值
}
