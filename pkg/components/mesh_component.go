package components

import "github.com/gonewx/cozyroom/internal/mesh"

// 绘制层（先画小层号，同层内按深度从远到近）
const (
	// LayerBackdrop 窗外天空
	LayerBackdrop = -2
	// LayerOutside 窗外雨滴（相机位于后墙前方时）
	LayerOutside = -1
	// LayerShell 房间外壳（地板、墙）
	LayerShell = 0
	// LayerProps 家具与室内物体
	LayerProps = 1
	// LayerFront 相机绕到后墙背面时，窗外雨滴改画在最上层
	LayerFront = 2
)

// MeshComponent 静态网格的几何与材质参数
type MeshComponent struct {
	Shape mesh.Shape
	// Color 材质基础色（"#rrggbb"）
	Color string
	// Emissive 自发光颜色，空字符串表示无自发光
	Emissive string
	// EmissiveIntensity 自发光强度（0 表示关闭）
	EmissiveIntensity float64
	// Opacity 不透明度（0-1），零值视为完全不透明
	Opacity float64
	// Layer 绘制层
	Layer int
	// Hidden 为 true 时不渲染
	Hidden bool
	// Unlit 为 true 时忽略光照，直接使用基础色（天空背景等）
	Unlit bool
}

// Alpha 返回用于绘制的不透明度
func (m *MeshComponent) Alpha() float64 {
	if m.Opacity <= 0 || m.Opacity > 1 {
		return 1
	}
	return m.Opacity
}
