package components

// CameraComponent 等距正交相机状态
//
// 极角固定，方位角和缩放由输入驱动，并平滑趋近目标值。
type CameraComponent struct {
	// Azimuth 当前方位角（弧度，绕 Y 轴，0 指向 +Z）
	Azimuth float64
	// TargetAzimuth 目标方位角，限制在 [-π, π]
	TargetAzimuth float64
	// Polar 极角（与 +Y 轴夹角），固定为 π/3
	Polar float64

	// Zoom 当前缩放（像素/场景单位）
	Zoom float64
	// TargetZoom 目标缩放
	TargetZoom float64
	// MinZoom / MaxZoom 缩放范围
	MinZoom float64
	MaxZoom float64

	// RotateSpeed 方向键旋转速度（弧度/秒）
	RotateSpeed float64
}
