package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings 全局设置
// 注意：倒计时剩余时间不属于设置，每次启动都从初始值开始
type Settings struct {
	// 音频设置
	AmbienceVolume float64 `yaml:"ambienceVolume"` // 雨声音量 0.0 ~ 1.0
	ChimeVolume    float64 `yaml:"chimeVolume"`    // 结束提示音音量 0.0 ~ 1.0
	Muted          bool    `yaml:"muted"`          // 雨声静音
	ChimeEnabled   bool    `yaml:"chimeEnabled"`   // 倒计时结束时是否播放提示音

	// 显示设置
	Fullscreen    bool    `yaml:"fullscreen"`    // 启动时是否全屏
	CameraAzimuth float64 `yaml:"cameraAzimuth"` // 上次退出时的相机方位角（弧度）
	CameraZoom    float64 `yaml:"cameraZoom"`    // 上次退出时的相机缩放（0 表示使用场景默认值）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		AmbienceVolume: 0.6,
		ChimeVolume:    0.8,
		Muted:          false,
		ChimeEnabled:   true,
		Fullscreen:     false,
		CameraAzimuth:  math.Pi / 4,
		CameraZoom:     0,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *Settings      // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留的错误返回，加载失败只记录警告
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置。
// 已保存文件中缺失的字段保留默认值。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 手动编辑过的文件可能超出范围
	loaded.AmbienceVolume = clampVolume(loaded.AmbienceVolume)
	loaded.ChimeVolume = clampVolume(loaded.ChimeVolume)
	loaded.CameraAzimuth = clampAzimuth(loaded.CameraAzimuth)
	if loaded.CameraZoom < 0 {
		loaded.CameraZoom = 0
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetAmbienceVolume 设置雨声音量
//
// 音量值会被限制在 0.0 ~ 1.0 范围内
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetAmbienceVolume(volume float64) {
	sm.settings.AmbienceVolume = clampVolume(volume)
}

// SetChimeVolume 设置提示音音量，范围同上
func (sm *SettingsManager) SetChimeVolume(volume float64) {
	sm.settings.ChimeVolume = clampVolume(volume)
}

// SetMuted 设置雨声静音
func (sm *SettingsManager) SetMuted(muted bool) {
	sm.settings.Muted = muted
}

// SetChimeEnabled 设置提示音开关
func (sm *SettingsManager) SetChimeEnabled(enabled bool) {
	sm.settings.ChimeEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetCamera 记录相机方位角与缩放
//
// 方位角被限制在 [-π, π]，负缩放视为 0（使用场景默认值）
func (sm *SettingsManager) SetCamera(azimuth, zoom float64) {
	sm.settings.CameraAzimuth = clampAzimuth(azimuth)
	if zoom < 0 {
		zoom = 0
	}
	sm.settings.CameraZoom = zoom
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}

// clampAzimuth 将方位角限制在 [-π, π]
func clampAzimuth(azimuth float64) float64 {
	return math.Max(-math.Pi, math.Min(math.Pi, azimuth))
}
