package systems

import (
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/utils"
)

// 笔记本屏幕自发光范围：0.4 + 0.4·shimmer
const (
	screenEmissiveBase  = 0.4
	screenEmissiveRange = 0.4
)

// ShimmerSystem 笔记本屏幕微光
type ShimmerSystem struct {
	entityManager *ecs.EntityManager
}

// NewShimmerSystem 创建屏幕微光系统
func NewShimmerSystem(em *ecs.EntityManager) *ShimmerSystem {
	return &ShimmerSystem{entityManager: em}
}

// Update 按经过时间改写屏幕光源强度与屏幕自发光强度
func (s *ShimmerSystem) Update(elapsed float64) {
	value := utils.ScreenShimmer(elapsed)

	entities := ecs.GetEntitiesWith1[*components.ShimmerComponent](s.entityManager)
	for _, id := range entities {
		shimmer, ok := ecs.GetComponent[*components.ShimmerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		shimmer.Value = value

		if light, ok := ecs.GetComponent[*components.PointLightComponent](s.entityManager, shimmer.Light); ok {
			light.Intensity = value
		}
		if display, ok := ecs.GetComponent[*components.MeshComponent](s.entityManager, shimmer.Display); ok {
			display.EmissiveIntensity = screenEmissiveBase + screenEmissiveRange*value
		}
	}
}
