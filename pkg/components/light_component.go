package components

// PointLightComponent 点光源
// 光源位置取自同实体的 TransformComponent（世界坐标）
type PointLightComponent struct {
	Color     string  // 光色
	Intensity float64 // 强度，每帧可能由效果系统改写
	Distance  float64 // 衰减距离，超过后贡献为 0（0 表示无限远）
	Decay     float64 // 衰减指数
}
