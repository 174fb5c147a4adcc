package components

import "github.com/gonewx/cozyroom/pkg/ecs"

// BlinkState 眨眼状态
type BlinkState int

const (
	// BlinkOpen 睁眼（初始状态）
	BlinkOpen BlinkState = iota
	// BlinkClosed 闭眼
	BlinkClosed
)

// String 返回状态名
func (s BlinkState) String() string {
	if s == BlinkClosed {
		return "CLOSED"
	}
	return "OPEN"
}

// BlinkComponent 猫咪眨眼状态机
//
//	OPEN → CLOSED：累计时间 > Interval + 本轮随机抖动
//	CLOSED → OPEN：累计时间 > Duration
type BlinkComponent struct {
	State       BlinkState
	Accumulated float64 // 当前状态已持续时间（秒）
	Threshold   float64 // 本轮睁眼的阈值（Interval + jitter）

	Interval float64 // 睁眼最短时长
	Jitter   float64 // 随机抖动上限
	Duration float64 // 闭眼时长

	// Eyes 眼睛网格实体，闭眼时 Y 轴压扁
	Eyes []ecs.EntityID
	// OpenScaleY 睁眼时的 Y 缩放
	OpenScaleY float64
	// ClosedScaleY 闭眼时的 Y 缩放
	ClosedScaleY float64

	// Cycles 已完成的 OPEN→CLOSED→OPEN 次数
	Cycles int
}
