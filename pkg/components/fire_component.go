package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cozyroom/pkg/ecs"
)

// FireParticle 火焰或火星粒子
//
// 火焰粒子不按位置回收：每帧位置 = Spawn + 振荡偏移。
type FireParticle struct {
	Spawn  mgl64.Vec3 // 出生偏移（相对火焰组）
	Phase  float64    // [0, 2π)
	Speed  float64    // 振荡速度
	Entity ecs.EntityID
}

// FireComponent 壁炉火焰效果状态
type FireComponent struct {
	Size   float64
	Flames []FireParticle
	Sparks []FireParticle

	// Light 壁炉主光源实体，强度每帧改写
	Light ecs.EntityID
}
