package systems

import (
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/utils"
)

// FireSystem 壁炉火焰动画
//
// 火焰和火星不按位置回收，每帧直接由经过时间重新计算：位置 = 出生偏移 + 振荡偏移。
// 壁炉主光源强度由两个不同频率的正弦叠加得到。
type FireSystem struct {
	entityManager *ecs.EntityManager
}

// NewFireSystem 创建火焰系统
func NewFireSystem(em *ecs.EntityManager) *FireSystem {
	return &FireSystem{entityManager: em}
}

// Update 按经过时间改写火焰/火星变换与光源强度
func (s *FireSystem) Update(elapsed float64) {
	entities := ecs.GetEntitiesWith1[*components.FireComponent](s.entityManager)
	for _, id := range entities {
		fire, ok := ecs.GetComponent[*components.FireComponent](s.entityManager, id)
		if !ok {
			continue
		}

		for _, f := range fire.Flames {
			t, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, f.Entity)
			if !ok {
				continue
			}
			dx, dy, dz, scale := utils.FlameOffset(elapsed, f.Phase, f.Speed)
			t.Position[0] = f.Spawn.X() + dx
			t.Position[1] = f.Spawn.Y() + dy
			t.Position[2] = f.Spawn.Z() + dz
			t.SetUniformScale(scale)
		}

		for _, sp := range fire.Sparks {
			t, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, sp.Entity)
			if !ok {
				continue
			}
			dx, dy, dz := utils.SparkOffset(elapsed, sp.Phase, sp.Speed)
			t.Position[0] = sp.Spawn.X() + dx
			t.Position[1] = sp.Spawn.Y() + dy
			t.Position[2] = sp.Spawn.Z() + dz
		}

		if light, ok := ecs.GetComponent[*components.PointLightComponent](s.entityManager, fire.Light); ok {
			light.Intensity = utils.FireLightIntensity(elapsed, fire.Size)
		}
	}
}
