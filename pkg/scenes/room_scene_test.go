package scenes

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/game"
	"github.com/gonewx/cozyroom/pkg/modules"
	"github.com/gonewx/cozyroom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestScene(t *testing.T, cfg *config.SceneConfig, sm *game.SettingsManager) *RoomScene {
	t.Helper()
	scene, err := NewRoomScene(cfg, rand.New(rand.NewPCG(42, 42)), game.NewAudioManager(nil, sm, 1), sm)
	if err != nil {
		t.Fatalf("NewRoomScene() error = %v", err)
	}
	scene.SetInputSource(func() utils.CameraInput { return utils.CameraInput{} })
	scene.SetPanelInputSource(func() modules.PanelInput { return modules.PanelInput{} })
	return scene
}

func TestNewRoomSceneRejectsBadConfig(t *testing.T) {
	if _, err := NewRoomScene(nil, rand.New(rand.NewPCG(1, 1)), nil, nil); err == nil {
		t.Error("nil config should fail")
	}

	cfg := config.DefaultSceneConfig()
	cfg.Rain.Spawn = cfg.Rain.Interior
	if _, err := NewRoomScene(cfg, rand.New(rand.NewPCG(1, 1)), nil, nil); err == nil {
		t.Error("spawn covered by interior should fail")
	}
}

func TestRoomSceneMountStartsCountdown(t *testing.T) {
	scene := newTestScene(t, config.DefaultSceneConfig(), nil)

	if got := scene.Countdown().String(); got != "25:00" {
		t.Errorf("initial timer = %q, want 25:00", got)
	}

	scene.Mount()
	if !scene.Countdown().Running() {
		t.Error("countdown should run after Mount")
	}
	scene.Unmount()
	if scene.Countdown().Running() {
		t.Error("countdown should stop after Unmount")
	}
}

func TestRoomSceneChimesOnceWhenFinished(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Timer.InitialSeconds = 2
	scene := newTestScene(t, cfg, nil)

	scene.Update(0, 1.0/60)
	if scene.ChimePlayed() {
		t.Fatal("chime should not play before the countdown finishes")
	}

	scene.Countdown().Tick()
	scene.Countdown().Tick()
	scene.Update(1.0/60, 1.0/60)
	if !scene.ChimePlayed() {
		t.Fatal("chime should play on the first frame at 0")
	}

	scene.Countdown().Tick()
	scene.Update(2.0/60, 1.0/60)
	if scene.Countdown().Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", scene.Countdown().Remaining())
	}
}

func TestRoomSceneUpdateAdvancesEffects(t *testing.T) {
	scene := newTestScene(t, config.DefaultSceneConfig(), nil)
	em := scene.EntityManager()
	rain, _ := ecs.GetComponent[*components.RainComponent](em, scene.Room().Rain)

	var elapsed float64
	for i := 0; i < 300; i++ {
		scene.Update(elapsed, 1.0/60)
		elapsed += 1.0 / 60
	}

	if rain.Elapsed <= 0 {
		t.Error("rain should advance")
	}
	if len(rain.Particles) != config.DefaultSceneConfig().Rain.Count {
		t.Error("rain pool size must stay constant")
	}
	blink, _ := ecs.GetComponent[*components.BlinkComponent](em, scene.Room().Cat)
	if blink.Cycles == 0 && blink.State == components.BlinkOpen && blink.Accumulated == 0 {
		t.Error("blink state machine should advance")
	}
}

func TestRoomSceneToggleMute(t *testing.T) {
	sm, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager() error = %v", err)
	}
	scene := newTestScene(t, config.DefaultSceneConfig(), sm)

	pressed := true
	scene.SetInputSource(func() utils.CameraInput {
		in := utils.CameraInput{ToggleMute: pressed}
		pressed = false
		return in
	})

	scene.Update(0, 1.0/60)
	if !sm.GetSettings().Muted {
		t.Error("M should mute")
	}
	scene.Update(1.0/60, 1.0/60)
	if !sm.GetSettings().Muted {
		t.Error("mute should only toggle on the pressed frame")
	}
}

func TestRoomSceneRestoresAndSavesCamera(t *testing.T) {
	sm, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager() error = %v", err)
	}
	sm.SetCamera(-1, 120)

	scene := newTestScene(t, config.DefaultSceneConfig(), sm)
	cam := scene.Camera()
	if cam.Azimuth != -1 || cam.Zoom != 120 {
		t.Errorf("camera = (%v, %v), want restored (-1, 120)", cam.Azimuth, cam.Zoom)
	}

	scene.SetInputSource(func() utils.CameraInput { return utils.CameraInput{Rotate: 1} })
	scene.Mount()
	for i := 0; i < 60; i++ {
		scene.Update(float64(i)/60, 1.0/60)
	}
	scene.Unmount()

	if got := sm.GetSettings().CameraAzimuth; math.Abs(got-cam.TargetAzimuth) > 1e-12 || got <= -1 {
		t.Errorf("saved azimuth = %v, want %v", got, cam.TargetAzimuth)
	}
}

func TestRoomSceneSettingsPanelBlocksCamera(t *testing.T) {
	if scene := newTestScene(t, config.DefaultSceneConfig(), nil); scene.SettingsPanel() != nil {
		t.Error("no settings manager should mean no panel")
	}

	sm, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager() error = %v", err)
	}
	scene := newTestScene(t, config.DefaultSceneConfig(), sm)

	toggle := true
	scene.SetPanelInputSource(func() modules.PanelInput {
		in := modules.PanelInput{Toggle: toggle}
		toggle = false
		return in
	})
	scene.SetInputSource(func() utils.CameraInput { return utils.CameraInput{Rotate: 1, ToggleMute: true} })

	start := scene.Camera().TargetAzimuth
	for i := 0; i < 30; i++ {
		scene.Update(float64(i)/60, 1.0/60)
	}

	if !scene.SettingsPanel().IsActive() {
		t.Fatal("Esc should open the settings panel")
	}
	if scene.Camera().TargetAzimuth != start {
		t.Errorf("azimuth target moved to %v while the panel was open", scene.Camera().TargetAzimuth)
	}
	if sm.GetSettings().Muted {
		t.Error("mute key should be ignored while the panel is open")
	}

	screen := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	scene.Draw(screen)
}

func TestRoomSceneDraw(t *testing.T) {
	scene := newTestScene(t, config.DefaultSceneConfig(), nil)
	screen := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	scene.Update(0, 1.0/60)
	scene.Draw(screen)
}
