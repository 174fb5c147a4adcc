package config

// 房间布局常量
// 坐标系：Y 轴向上，房间中心在原点，地板顶面 y≈0.05。
// 后墙位于 z = -RoomHalf，侧墙位于 x = -RoomHalf。

const (
	// RoomSize 房间边长（4x4x4）
	RoomSize = 4.0
	// RoomHalf 房间半边长
	RoomHalf = RoomSize / 2
	// WallThickness 墙体厚度
	WallThickness = 0.1
	// FloorThickness 地板厚度
	FloorThickness = 0.1

	// DefaultTimerSeconds 默认倒计时 25 分钟
	DefaultTimerSeconds = 25 * 60

	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 1024
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 768
)

// 窗户开口（后墙上）
const (
	WindowMinX = -0.6
	WindowMaxX = 0.6
	WindowMinY = 1.4
	WindowMaxY = 2.8
)

// 场景光照：环境光 0.3，方向光位于 (8,12,8)，强度 1
const (
	AmbientIntensity     = 0.3
	DirectionalIntensity = 1.0
	DirectionalX         = 8.0
	DirectionalY         = 12.0
	DirectionalZ         = 8.0
)

// Palette 房间配色
var Palette = map[string]string{
	"wall":      "#e1b8a7",
	"floor":     "#a37d63",
	"wood":      "#6b4636",
	"bedsheet":  "#f3bcbc",
	"pillow":    "#fff6f1",
	"blanket":   "#e49b9b",
	"desk":      "#8b7a6a",
	"lampShade": "#ffe285",
	"plantPot":  "#91745e",
	"plantLeaf": "#71a96b",
	"mug":       "#ffffff",
	"shelf":     "#d5afa7",
	"chair":     "#f5f5f5",
	"chairBase": "#3a3a3a",
	"cat":       "#5d5d5d",
	"catEye":    "#ff9d00",
	"glass":     "#b3e6ff",
	"frame":     "#2f2f2f",
	"rain":      "#a9c7e8",
	"sky":       "#2b3a55",
}

// Color 按名称取配色，未知名称返回空字符串（渲染时回退为洋红色）
func Color(name string) string {
	return Palette[name]
}
