// Package app 提供场景应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/embedded"
	"github.com/gonewx/cozyroom/pkg/game"
	"github.com/gonewx/cozyroom/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	// AppName 设置存储目录名
	AppName = "cozyroom"
	// MaxFrameDelta 单帧时长上限（秒），窗口被拖动或休眠恢复后避免雨滴整体跳变
	MaxFrameDelta = 0.25
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 场景参数文件路径，为空则使用内置的 data/scene.yaml
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// Duration 覆盖倒计时时长，0 表示使用场景参数
	Duration time.Duration
	// Mute 启动时静音
	Mute bool
}

// App 是场景应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	verbose         bool

	now        func() time.Time
	lastUpdate time.Time
	elapsed    float64

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 桌面端调用此函数前应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化且未指定 ConfigPath 时使用内置默认参数。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig, err := LoadSceneConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Duration > 0 {
		sceneConfig.Timer.InitialSeconds = int(cfg.Duration / time.Second)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))

	// 设置存储，失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open settings storage: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}
	if cfg.Mute {
		settingsManager.SetMuted(true)
	}
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(game.SampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager, seed)
	log.Printf("[App] AudioManager initialized")

	roomScene, err := scenes.NewRoomScene(sceneConfig, rng, audioManager, settingsManager)
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(roomScene)

	return &App{
		sceneManager:    sceneManager,
		audioManager:    audioManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
		now:             time.Now,
	}, nil
}

// LoadSceneConfig 加载场景参数
//
// 优先级：path 指定的文件 > 内置 data/scene.yaml > 代码默认值
func LoadSceneConfig(path string) (*config.SceneConfig, error) {
	if path != "" {
		cfg, err := config.LoadSceneConfig(path)
		if err != nil {
			return nil, fmt.Errorf("场景参数加载失败: %w", err)
		}
		log.Printf("[Config] Loaded scene config from %s", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data unavailable, using default scene config")
		return config.DefaultSceneConfig(), nil
	}

	data, err := embedded.ReadFile(embedded.SceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置场景参数读取失败: %w", err)
	}
	cfg, err := config.ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内置场景参数无效: %w", err)
	}
	return cfg, nil
}

// FrameDelta 计算两次 Update 之间的时长（秒），钳制到 [0, MaxFrameDelta]
// prev 为零值（第一帧）时返回 0
func FrameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// Update 更新场景逻辑
// 每个 tick 调用一次（通常每秒 60 次），按真实经过的时间推进
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	now := a.now()
	deltaTime := FrameDelta(a.lastUpdate, now)
	a.lastUpdate = now
	a.elapsed += deltaTime

	a.sceneManager.Update(a.elapsed, deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记录到设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close 卸载场景、释放音频并保存设置
// 窗口关闭后调用
func (a *App) Close() {
	a.sceneManager.Close()
	a.audioManager.Close()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
