package scenes

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/entities"
	"github.com/gonewx/cozyroom/pkg/game"
	"github.com/gonewx/cozyroom/pkg/modules"
	"github.com/gonewx/cozyroom/pkg/systems"
	"github.com/gonewx/cozyroom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// roomBackground 画面底色（窗外夜色）
var roomBackground = color.RGBA{R: 0x1b, G: 0x1f, B: 0x2e, A: 0xff}

// InputSource 每帧读取一次输入，测试中可替换
type InputSource func() utils.CameraInput

// PanelInputSource 每帧读取一次设置面板输入
type PanelInputSource func() modules.PanelInput

// RoomScene 卧室场景
//
// 每帧顺序：读取输入 → 相机 → 雨滴 → 火焰 → 眨眼 → 尾巴 → 屏幕微光 → 检查倒计时。
// 倒计时在 Mount 时启动、Unmount 时停止；走到 0 后的第一帧播放一次提示音。
// 设置面板打开时相机与静音键输入被忽略，房间效果与倒计时照常推进。
type RoomScene struct {
	entityManager *ecs.EntityManager
	config        *config.SceneConfig
	room          *entities.RoomEntities

	cameraSystem  *systems.CameraSystem
	rainSystem    *systems.RainSystem
	fireSystem    *systems.FireSystem
	blinkSystem   *systems.BlinkSystem
	tailSystem    *systems.TailSwaySystem
	shimmerSystem *systems.ShimmerSystem
	renderSystem  *systems.RenderSystem
	timerOverlay  *systems.TimerOverlayRenderSystem

	countdown       *game.Countdown
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	input           InputSource

	settingsPanel *modules.SettingsPanelModule // settingsManager 为 nil 时没有面板
	panelInput    PanelInputSource

	chimePlayed bool
}

// NewRoomScene 创建卧室场景
//
// 参数：
//   - cfg: 场景参数（已校验）
//   - rng: 场景随机源（雨滴、火焰、眨眼）
//   - audioManager: 音频管理器，可为 nil
//   - settingsManager: 设置管理器，可为 nil；存在时恢复保存的相机视角
//
// 返回：
//   - *RoomScene: 尚未挂载的场景
//   - error: 场景构造失败（参数非法、出生区域被室内完全覆盖、字体加载失败）
func NewRoomScene(cfg *config.SceneConfig, rng *rand.Rand, audioManager *game.AudioManager, settingsManager *game.SettingsManager) (*RoomScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("scene config cannot be nil")
	}

	em := ecs.NewEntityManager()
	room, err := entities.BuildRoom(em, cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build room: %w", err)
	}

	overlay, err := systems.NewTimerOverlayRenderSystem()
	if err != nil {
		return nil, err
	}

	countdown, err := game.NewCountdown(cfg.Timer.InitialSeconds)
	if err != nil {
		return nil, err
	}

	s := &RoomScene{
		entityManager:   em,
		config:          cfg,
		room:            room,
		cameraSystem:    systems.NewCameraSystem(em, cfg.Camera),
		rainSystem:      systems.NewRainSystem(em, rng),
		fireSystem:      systems.NewFireSystem(em),
		blinkSystem:     systems.NewBlinkSystem(em, rng),
		tailSystem:      systems.NewTailSwaySystem(em),
		shimmerSystem:   systems.NewShimmerSystem(em),
		renderSystem:    systems.NewRenderSystem(em),
		timerOverlay:    overlay,
		countdown:       countdown,
		audioManager:    audioManager,
		settingsManager: settingsManager,
		input:           utils.GetCameraInput,
		panelInput:      modules.ReadPanelInput,
	}

	if settingsManager != nil {
		settings := settingsManager.GetSettings()
		s.cameraSystem.SetView(settings.CameraAzimuth, settings.CameraZoom)

		panel, err := modules.NewSettingsPanelModule(settingsManager, config.ScreenWidth, config.ScreenHeight, modules.SettingsPanelCallbacks{
			OnAmbienceVolumeApply: func(volume float64) {
				if audioManager != nil {
					audioManager.SetAmbienceVolume(volume)
				}
			},
			OnMuteApply: func(muted bool) {
				if audioManager != nil {
					audioManager.SetMuted(muted)
				}
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create settings panel: %w", err)
		}
		s.settingsPanel = panel
	}

	log.Printf("[RoomScene] Created (timer=%s, entities=%d)", countdown.String(), em.Count())
	return s, nil
}

// SetInputSource 替换输入来源
func (s *RoomScene) SetInputSource(input InputSource) {
	if input != nil {
		s.input = input
	}
}

// SetPanelInputSource 替换设置面板输入来源
func (s *RoomScene) SetPanelInputSource(input PanelInputSource) {
	if input != nil {
		s.panelInput = input
	}
}

// Mount 启动倒计时与雨声
func (s *RoomScene) Mount() {
	s.countdown.Start(context.Background())
	if s.audioManager != nil {
		s.audioManager.StartAmbience()
	}
}

// Unmount 停止倒计时与雨声，保存相机视角
func (s *RoomScene) Unmount() {
	s.countdown.Stop()
	if s.audioManager != nil {
		s.audioManager.StopAmbience()
	}

	if s.settingsManager != nil {
		if cam := s.cameraSystem.Camera(); cam != nil {
			s.settingsManager.SetCamera(cam.TargetAzimuth, cam.TargetZoom)
		}
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[RoomScene] Warning: Failed to save settings: %v", err)
		}
	}
}

// Update 推进所有效果
//
// 参数：
//   - elapsed: 场景运行总时长（秒），驱动火焰与屏幕微光
//   - deltaTime: 本帧时长（秒），驱动雨滴、眨眼、尾巴与相机
func (s *RoomScene) Update(elapsed, deltaTime float64) {
	input := s.input()
	if s.settingsPanel != nil && s.settingsPanel.Update(s.panelInput()) {
		input = utils.CameraInput{}
	}

	s.cameraSystem.Update(deltaTime, input)
	if input.ToggleMute && s.audioManager != nil {
		muted := s.audioManager.ToggleMute()
		log.Printf("[RoomScene] Mute toggled: %v", muted)
	}

	s.rainSystem.Update(deltaTime)
	s.fireSystem.Update(elapsed)
	s.blinkSystem.Update(deltaTime)
	s.tailSystem.Update(deltaTime)
	s.shimmerSystem.Update(elapsed)

	if !s.chimePlayed && s.countdown.Finished() {
		s.chimePlayed = true
		log.Printf("[RoomScene] Countdown finished")
		if s.audioManager != nil {
			s.audioManager.PlayChime()
		}
	}
}

// Draw 绘制房间与倒计时
func (s *RoomScene) Draw(screen *ebiten.Image) {
	screen.Fill(roomBackground)
	s.renderSystem.Draw(screen, s.cameraSystem.Camera())
	s.timerOverlay.Draw(screen, s.countdown.String())
	if s.settingsPanel != nil {
		s.settingsPanel.Draw(screen)
	}
}

// SettingsPanel 返回设置面板，没有设置管理器时为 nil
func (s *RoomScene) SettingsPanel() *modules.SettingsPanelModule {
	return s.settingsPanel
}

// Countdown 返回场景倒计时
func (s *RoomScene) Countdown() *game.Countdown {
	return s.countdown
}

// ChimePlayed 倒计时结束提示是否已经触发
func (s *RoomScene) ChimePlayed() bool {
	return s.chimePlayed
}

// Camera 返回相机组件
func (s *RoomScene) Camera() *components.CameraComponent {
	return s.cameraSystem.Camera()
}

// Room 返回场景中的关键实体
func (s *RoomScene) Room() *entities.RoomEntities {
	return s.room
}

// EntityManager 返回场景实体管理器
func (s *RoomScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
