package entities

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/utils"
)

// NewRainComponent 创建固定大小的雨滴池，所有雨滴初始位于出生区域且不在室内
//
// 返回：
//   - *components.RainComponent: 已填满的粒子池
//   - error: 参数非法，或出生区域被室内区域完全覆盖
func NewRainComponent(cfg config.RainConfig, rng *rand.Rand) (*components.RainComponent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rain config: %w", err)
	}

	sampler, err := utils.NewSpawnSampler(cfg.Spawn, cfg.Interior, cfg.MaxSpawnAttempts, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build rain spawn sampler: %w", err)
	}

	rain := &components.RainComponent{
		Particles: make([]components.RainParticle, cfg.Count),
		Config:    cfg,
		Sampler:   sampler,
	}
	for i := range rain.Particles {
		if rain.Particles[i].Reset(sampler, cfg, rng) {
			rain.Fallbacks++
		}
	}

	log.Printf("[RainFactory] Created rain pool (count=%d, slabs=%d, fallbacks=%d)", cfg.Count, sampler.Slabs(), rain.Fallbacks)
	return rain, nil
}

// NewRainEntity 创建挂有雨滴池的实体
func NewRainEntity(em *ecs.EntityManager, cfg config.RainConfig, rng *rand.Rand) (ecs.EntityID, error) {
	rain, err := NewRainComponent(cfg, rng)
	if err != nil {
		return 0, err
	}

	id := em.CreateEntity()
	em.AddComponent(id, rain)
	em.AddComponent(id, &components.LabelComponent{Name: "rain"})
	return id, nil
}
