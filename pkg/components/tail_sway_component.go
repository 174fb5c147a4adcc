package components

// TailSwayComponent 猫尾巴摆动
// 与 TransformComponent 挂在同一尾巴实体上，系统每帧改写其 Rotation.Y
type TailSwayComponent struct {
	Angle       float64 // 当前摆角（弧度）
	Direction   float64 // 摆动方向符号：+1 / -1
	Accumulated float64 // 当前阶段已持续时间

	Period    float64 // 单次摆动时长
	Amplitude float64 // 最大摆角
	Smoothing float64 // 每个 60Hz 帧的平滑系数

	SwaysBeforeRest int     // 连续摆动多少次后回正（0 不回正）
	RestDuration    float64 // 回正持续时间
	Sways           int     // 本轮已摆动次数
	Resting         bool    // 是否处于回正阶段
}
