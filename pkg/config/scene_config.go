package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// 配置错误（构造阶段发现，不会在运行时出现）
var (
	ErrInvalidPoolSize        = errors.New("particle pool size must be positive")
	ErrInvalidSpeed           = errors.New("speed must be positive")
	ErrInvalidBox             = errors.New("box min must not exceed max")
	ErrSpawnCoveredByInterior = errors.New("spawn volume is fully covered by the interior volume")
	ErrInvalidDuration        = errors.New("duration must be positive")
	ErrInvalidTimer           = errors.New("initial timer seconds must not be negative")
)

// SceneConfig 场景动画参数
// 对应 data/scene.yaml，缺省字段使用 DefaultSceneConfig 中的值
type SceneConfig struct {
	Rain   RainConfig   `yaml:"rain"`
	Fire   FireConfig   `yaml:"fire"`
	Cat    CatConfig    `yaml:"cat"`
	Camera CameraConfig `yaml:"camera"`
	Timer  TimerConfig  `yaml:"timer"`
}

// RainConfig 窗外雨滴粒子池参数
type RainConfig struct {
	Count            int     `yaml:"count"`            // 粒子池大小（进程生命周期内固定）
	FallSpeed        float64 `yaml:"fallSpeed"`        // 基础下落速度（单位/秒），乘以粒子自身 speed
	Drift            Vec3    `yaml:"drift"`            // 横向漂移速度（单位/秒），Y 分量忽略
	FloorY           float64 `yaml:"floorY"`           // 低于该高度的粒子被回收
	MaxSpawnAttempts int     `yaml:"maxSpawnAttempts"` // 拒绝采样最大次数，超过后使用闭式采样
	Spawn            Box3    `yaml:"spawn"`            // 出生区域 D
	Interior         Box3    `yaml:"interior"`         // 室内区域 E（雨滴在其中时隐藏）
	StreakLength     float64 `yaml:"streakLength"`     // 雨丝长度（单位）
	Opacity          float64 `yaml:"opacity"`          // 基础透明度
	OpacityAmplitude float64 `yaml:"opacityAmplitude"` // 透明度摆动幅度
	SpeedMin         float64 `yaml:"speedMin"`         // 粒子 speed 下限
	SpeedMax         float64 `yaml:"speedMax"`         // 粒子 speed 上限
}

// FireConfig 壁炉火焰参数
type FireConfig struct {
	Size       float64 `yaml:"size"`       // 壁炉整体缩放
	FlameCount int     `yaml:"flameCount"` // 火焰粒子数
	SparkCount int     `yaml:"sparkCount"` // 火星粒子数
}

// CatConfig 猫咪眨眼与尾巴摆动参数
type CatConfig struct {
	BlinkInterval   float64 `yaml:"blinkInterval"`   // 睁眼最短持续时间（秒）
	BlinkJitter     float64 `yaml:"blinkJitter"`     // 睁眼随机附加时间上限（秒）
	BlinkDuration   float64 `yaml:"blinkDuration"`   // 闭眼持续时间（秒）
	SwayPeriod      float64 `yaml:"swayPeriod"`      // 尾巴单次摆动时长（秒）
	SwayAmplitude   float64 `yaml:"swayAmplitude"`   // 尾巴最大摆角（弧度）
	SwaySmoothing   float64 `yaml:"swaySmoothing"`   // 每个 60Hz 帧的平滑系数
	SwaysBeforeRest int     `yaml:"swaysBeforeRest"` // 连续摆动多少次后回正休息（0 表示不休息）
	RestDuration    float64 `yaml:"restDuration"`    // 回正休息时长（秒）
}

// CameraConfig 等距相机参数
type CameraConfig struct {
	Zoom        float64 `yaml:"zoom"`        // 每场景单位对应的像素数
	MinZoom     float64 `yaml:"minZoom"`     // 缩放下限
	MaxZoom     float64 `yaml:"maxZoom"`     // 缩放上限
	Azimuth     float64 `yaml:"azimuth"`     // 初始方位角（弧度，绕 Y 轴，0 指向 +Z）
	RotateSpeed float64 `yaml:"rotateSpeed"` // 方向键旋转速度（弧度/秒）
}

// TimerConfig 倒计时参数
type TimerConfig struct {
	InitialSeconds int `yaml:"initialSeconds"` // 初始秒数，默认 25 分钟
}

// DefaultSceneConfig 返回默认场景参数
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Rain: RainConfig{
			Count:            240,
			FallSpeed:        3.2,
			Drift:            Vec3{X: 0.15, Z: 0.12},
			FloorY:           0,
			MaxSpawnAttempts: 16,
			Spawn: Box3{
				Min: Vec3{X: -1.0, Y: 0, Z: -2.9},
				Max: Vec3{X: 1.0, Y: 3.8, Z: -1.7},
			},
			Interior: Box3{
				Min: Vec3{X: -RoomHalf - WallThickness, Y: -FloorThickness, Z: -RoomHalf - WallThickness},
				Max: Vec3{X: RoomHalf, Y: RoomSize, Z: RoomHalf},
			},
			StreakLength:     0.12,
			Opacity:          0.55,
			OpacityAmplitude: 0.2,
			SpeedMin:         0.8,
			SpeedMax:         1.2,
		},
		Fire: FireConfig{
			Size:       1,
			FlameCount: 8,
			SparkCount: 12,
		},
		Cat: CatConfig{
			BlinkInterval:   3.0,
			BlinkJitter:     1.5,
			BlinkDuration:   0.18,
			SwayPeriod:      1.2,
			SwayAmplitude:   0.45,
			SwaySmoothing:   0.08,
			SwaysBeforeRest: 6,
			RestDuration:    2.5,
		},
		Camera: CameraConfig{
			Zoom:        90,
			MinZoom:     40,
			MaxZoom:     180,
			Azimuth:     math.Pi / 4,
			RotateSpeed: 1.2,
		},
		Timer: TimerConfig{
			InitialSeconds: DefaultTimerSeconds,
		},
	}
}

// LoadSceneConfig 从 YAML 文件加载场景参数
// 参数：
//
//	path - 配置文件路径
//
// 返回：
//
//	*SceneConfig - 合并默认值并通过校验的配置
//	error - 文件读取、解析或校验失败
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", path, err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid scene config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneConfig 解析 YAML 数据，未出现的字段保留默认值
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验场景参数
func (c *SceneConfig) Validate() error {
	if err := c.Rain.Validate(); err != nil {
		return fmt.Errorf("rain: %w", err)
	}
	if err := c.Fire.Validate(); err != nil {
		return fmt.Errorf("fire: %w", err)
	}
	if err := c.Cat.Validate(); err != nil {
		return fmt.Errorf("cat: %w", err)
	}
	if c.Camera.Zoom <= 0 || c.Camera.MinZoom <= 0 || c.Camera.MinZoom > c.Camera.MaxZoom {
		return fmt.Errorf("camera: zoom range [%v, %v] with zoom %v is invalid", c.Camera.MinZoom, c.Camera.MaxZoom, c.Camera.Zoom)
	}
	if c.Timer.InitialSeconds < 0 {
		return fmt.Errorf("timer: %w, got %d", ErrInvalidTimer, c.Timer.InitialSeconds)
	}
	return nil
}

// Validate 校验雨滴参数
func (r RainConfig) Validate() error {
	if r.Count <= 0 {
		return fmt.Errorf("count %d: %w", r.Count, ErrInvalidPoolSize)
	}
	if r.FallSpeed <= 0 {
		return fmt.Errorf("fallSpeed %v: %w", r.FallSpeed, ErrInvalidSpeed)
	}
	if r.SpeedMin <= 0 || r.SpeedMax < r.SpeedMin {
		return fmt.Errorf("speed range [%v, %v]: %w", r.SpeedMin, r.SpeedMax, ErrInvalidSpeed)
	}
	if !r.Spawn.Valid() {
		return fmt.Errorf("spawn: %w", ErrInvalidBox)
	}
	if !r.Interior.Valid() {
		return fmt.Errorf("interior: %w", ErrInvalidBox)
	}
	if r.Spawn.Min.Y < r.FloorY {
		return fmt.Errorf("spawn min y %v below floorY %v: %w", r.Spawn.Min.Y, r.FloorY, ErrInvalidBox)
	}
	if r.Spawn.CoveredBy(r.Interior) {
		return ErrSpawnCoveredByInterior
	}
	if r.MaxSpawnAttempts < 0 {
		return fmt.Errorf("maxSpawnAttempts must not be negative, got %d", r.MaxSpawnAttempts)
	}
	return nil
}

// Validate 校验火焰参数
func (f FireConfig) Validate() error {
	if f.Size <= 0 {
		return fmt.Errorf("size must be positive, got %v", f.Size)
	}
	if f.FlameCount <= 0 || f.SparkCount <= 0 {
		return fmt.Errorf("flameCount %d / sparkCount %d: %w", f.FlameCount, f.SparkCount, ErrInvalidPoolSize)
	}
	return nil
}

// Validate 校验猫咪动画参数
func (c CatConfig) Validate() error {
	if c.BlinkInterval <= 0 || c.BlinkDuration <= 0 || c.SwayPeriod <= 0 {
		return fmt.Errorf("blinkInterval/blinkDuration/swayPeriod: %w", ErrInvalidDuration)
	}
	if c.BlinkJitter < 0 {
		return fmt.Errorf("blinkJitter must not be negative, got %v", c.BlinkJitter)
	}
	if c.SwaysBeforeRest > 0 && c.RestDuration <= 0 {
		return fmt.Errorf("restDuration: %w", ErrInvalidDuration)
	}
	return nil
}
