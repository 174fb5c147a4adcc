package components

import "github.com/gonewx/cozyroom/pkg/ecs"

// ShimmerComponent 笔记本屏幕微光
type ShimmerComponent struct {
	Light   ecs.EntityID // 屏幕点光源
	Display ecs.EntityID // 屏幕网格（改写自发光强度）

	Value float64 // 当前微光值 [0, 0.5]
}
