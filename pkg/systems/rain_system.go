package systems

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/utils"
)

// RainSystem 推进窗外雨滴粒子池
//
// 每帧：按 (drift.x, -fallSpeed·speed, drift.z)·dt 移动每个雨滴；
// 低于 FloorY 的雨滴回收到出生区域并重新抽取 phase/speed；
// 位于室内区域内的雨滴标记为隐藏（不删除）。
type RainSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewRainSystem 创建雨滴系统
//
// 参数：
//   - em: 实体管理器
//   - rng: 回收时抽取 phase/speed 的随机源
func NewRainSystem(em *ecs.EntityManager, rng *rand.Rand) *RainSystem {
	return &RainSystem{
		entityManager: em,
		rng:           rng,
	}
}

// Update 推进所有雨滴池
func (s *RainSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.RainComponent](s.entityManager)
	for _, id := range entities {
		rain, ok := ecs.GetComponent[*components.RainComponent](s.entityManager, id)
		if !ok || rain.Sampler == nil {
			continue
		}
		s.advance(rain, deltaTime)
	}
}

// advance 推进单个雨滴池，池大小保持不变
func (s *RainSystem) advance(rain *components.RainComponent, deltaTime float64) {
	cfg := rain.Config
	rain.Elapsed += deltaTime

	for i := range rain.Particles {
		p := &rain.Particles[i]
		velocity := mgl64.Vec3{cfg.Drift.X, -cfg.FallSpeed * p.Speed, cfg.Drift.Z}
		p.Position = p.Position.Add(velocity.Mul(deltaTime))

		if p.Position.Y() < cfg.FloorY {
			if p.Reset(rain.Sampler, cfg, s.rng) {
				rain.Fallbacks++
			}
			rain.Recycled++
		}

		p.Hidden = cfg.Interior.Contains(config.Vec3{X: p.Position.X(), Y: p.Position.Y(), Z: p.Position.Z()})
	}
}

// RainOpacity 雨滴透明度：base + amp·sin(2t + phase)，钳制到 [0, 1]
func RainOpacity(cfg config.RainConfig, t, phase float64) float64 {
	return utils.Clamp(cfg.Opacity+utils.PhaseSine(t, 2, phase, cfg.OpacityAmplitude), 0, 1)
}
