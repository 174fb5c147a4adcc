package modules

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/gonewx/cozyroom/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

// 面板布局
const (
	settingsPanelWidth    = 420.0
	settingsPanelRowH     = 40.0
	settingsPanelPadding  = 24.0
	settingsPanelFontSize = 20.0
	// settingsVolumeStep 左右键每次调整的音量
	settingsVolumeStep = 0.1
	// settingsSliderCells 音量条格数
	settingsSliderCells = 10
)

// SettingsItem 面板条目
type SettingsItem int

const (
	ItemAmbienceVolume SettingsItem = iota
	ItemChimeVolume
	ItemMuted
	ItemChimeEnabled
	settingsItemCount
)

// PanelInput 一帧内与设置面板相关的按键
type PanelInput struct {
	Toggle  bool // Esc：打开/关闭面板
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Confirm bool // Enter/Space：切换开关类条目
}

// ReadPanelInput 读取当前帧的面板按键（只在按下的那一帧触发）
func ReadPanelInput() PanelInput {
	return PanelInput{
		Toggle:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Up:      inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Down:    inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Left:    inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		Right:   inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}

// SettingsPanelCallbacks 设置面板回调函数集合
type SettingsPanelCallbacks struct {
	// OnAmbienceVolumeApply 雨声音量实际应用回调（可选）
	OnAmbienceVolumeApply func(volume float64)
	// OnMuteApply 静音实际应用回调（可选）
	OnMuteApply func(muted bool)
}

// SettingsPanelModule 房间内的设置面板
//
// 职责：
//   - 键盘操作：上下选择条目，左右调整音量，Enter 切换开关
//   - 修改写入 SettingsManager，关闭面板时保存
//   - 音量与静音通过回调立即应用到音频系统
//
// 面板打开期间方向键被面板占用，场景不应再用它们旋转相机。
type SettingsPanelModule struct {
	settingsManager *game.SettingsManager
	callbacks       SettingsPanelCallbacks

	active   bool
	selected SettingsItem

	labelFont *text.GoTextFace

	// 屏幕尺寸
	windowWidth  int
	windowHeight int
}

// NewSettingsPanelModule 创建设置面板模块
//
// 参数:
//   - settingsManager: 设置管理器（必需）
//   - windowWidth, windowHeight: 逻辑屏幕尺寸
//   - callbacks: 回调函数集合（可选）
//
// 返回:
//   - *SettingsPanelModule: 初始为关闭状态
//   - error: settingsManager 为 nil 或字体加载失败
func NewSettingsPanelModule(settingsManager *game.SettingsManager, windowWidth, windowHeight int, callbacks SettingsPanelCallbacks) (*SettingsPanelModule, error) {
	if settingsManager == nil {
		return nil, fmt.Errorf("settings manager cannot be nil")
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings panel font: %w", err)
	}

	return &SettingsPanelModule{
		settingsManager: settingsManager,
		callbacks:       callbacks,
		labelFont:       &text.GoTextFace{Source: source, Size: settingsPanelFontSize},
		windowWidth:     windowWidth,
		windowHeight:    windowHeight,
	}, nil
}

// Update 处理一帧的面板输入
//
// 返回本帧输入是否被面板消费（面板打开或刚被切换）
func (m *SettingsPanelModule) Update(in PanelInput) bool {
	if in.Toggle {
		m.Toggle()
		return true
	}
	if !m.active {
		return false
	}

	switch {
	case in.Up:
		m.selected = (m.selected + settingsItemCount - 1) % settingsItemCount
	case in.Down:
		m.selected = (m.selected + 1) % settingsItemCount
	case in.Left:
		m.adjust(-1)
	case in.Right:
		m.adjust(1)
	case in.Confirm:
		m.toggleSelected()
	}
	return true
}

// adjust 调整当前条目，开关类条目左右键与 Enter 等价
func (m *SettingsPanelModule) adjust(direction float64) {
	settings := m.settingsManager.GetSettings()
	switch m.selected {
	case ItemAmbienceVolume:
		m.settingsManager.SetAmbienceVolume(settings.AmbienceVolume + direction*settingsVolumeStep)
		if m.callbacks.OnAmbienceVolumeApply != nil {
			m.callbacks.OnAmbienceVolumeApply(settings.AmbienceVolume)
		}
	case ItemChimeVolume:
		m.settingsManager.SetChimeVolume(settings.ChimeVolume + direction*settingsVolumeStep)
	default:
		m.toggleSelected()
	}
}

// toggleSelected 切换开关类条目
func (m *SettingsPanelModule) toggleSelected() {
	settings := m.settingsManager.GetSettings()
	switch m.selected {
	case ItemMuted:
		m.settingsManager.SetMuted(!settings.Muted)
		if m.callbacks.OnMuteApply != nil {
			m.callbacks.OnMuteApply(settings.Muted)
		}
		log.Printf("[SettingsPanel] Muted: %v", settings.Muted)
	case ItemChimeEnabled:
		m.settingsManager.SetChimeEnabled(!settings.ChimeEnabled)
		log.Printf("[SettingsPanel] Chime enabled: %v", settings.ChimeEnabled)
	}
}

// Draw 渲染设置面板到屏幕（关闭时不绘制）
func (m *SettingsPanelModule) Draw(screen *ebiten.Image) {
	if !m.active {
		return
	}

	// 半透明遮罩
	vector.DrawFilledRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight), color.RGBA{A: 120}, false)

	height := settingsPanelRowH*float64(settingsItemCount) + 2*settingsPanelPadding
	x := (float64(m.windowWidth) - settingsPanelWidth) / 2
	y := (float64(m.windowHeight) - height) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), settingsPanelWidth, float32(height), color.RGBA{R: 0x2b, G: 0x2a, B: 0x33, A: 0xee}, true)

	for i, line := range m.Lines() {
		rowY := y + settingsPanelPadding + float64(i)*settingsPanelRowH
		clr := color.Color(color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff})
		if SettingsItem(i) == m.selected {
			vector.DrawFilledRect(screen, float32(x+8), float32(rowY-6), settingsPanelWidth-16, settingsPanelRowH-4, color.RGBA{R: 0x4a, G: 0x90, B: 0xe2, A: 0x66}, true)
			clr = color.White
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+settingsPanelPadding, rowY)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, m.labelFont, op)
	}
}

// Lines 返回各条目的显示文本
func (m *SettingsPanelModule) Lines() []string {
	settings := m.settingsManager.GetSettings()
	return []string{
		fmt.Sprintf("Rain   %s", volumeBar(settings.AmbienceVolume)),
		fmt.Sprintf("Chime  %s", volumeBar(settings.ChimeVolume)),
		fmt.Sprintf("Mute   %s", onOff(settings.Muted)),
		fmt.Sprintf("Bell   %s", onOff(settings.ChimeEnabled)),
	}
}

// volumeBar 把 0-1 的音量画成 [#####-----] 样式
func volumeBar(volume float64) string {
	filled := int(volume*settingsSliderCells + 0.5)
	filled = max(0, min(settingsSliderCells, filled))
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat("-", settingsSliderCells-filled), int(volume*100+0.5))
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// Show 打开面板
func (m *SettingsPanelModule) Show() {
	if m.active {
		return
	}
	m.active = true
	log.Printf("[SettingsPanel] Shown")
}

// Hide 关闭面板并保存设置
func (m *SettingsPanelModule) Hide() {
	if !m.active {
		return
	}
	m.active = false
	if err := m.settingsManager.Save(); err != nil {
		log.Printf("[SettingsPanel] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[SettingsPanel] Hidden")
}

// Toggle 切换面板显示状态
func (m *SettingsPanelModule) Toggle() {
	if m.active {
		m.Hide()
	} else {
		m.Show()
	}
}

// IsActive 面板是否打开
func (m *SettingsPanelModule) IsActive() bool {
	return m.active
}

// Selected 当前选中的条目
func (m *SettingsPanelModule) Selected() SettingsItem {
	return m.selected
}
