package systems

import (
	"log"
	"math/rand/v2"

	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

// BlinkSystem 猫咪眨眼状态机
//
//	OPEN   → CLOSED：累计时间 > Interval + jitter（每次进入 OPEN 时重新抽取 jitter ∈ [0, Jitter)）
//	CLOSED → OPEN  ：累计时间 > Duration
//
// 每次状态切换都会清零累计时间。
type BlinkSystem struct {
	entityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewBlinkSystem 创建眨眼系统
func NewBlinkSystem(em *ecs.EntityManager, rng *rand.Rand) *BlinkSystem {
	return &BlinkSystem{
		entityManager: em,
		rng:           rng,
	}
}

// Update 推进所有眨眼状态机
func (s *BlinkSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.BlinkComponent](s.entityManager)
	for _, id := range entities {
		blink, ok := ecs.GetComponent[*components.BlinkComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if s.step(blink, deltaTime) {
			s.applyEyes(blink)
		}
	}
}

// step 推进一次，返回状态是否发生切换
func (s *BlinkSystem) step(b *components.BlinkComponent, deltaTime float64) bool {
	b.Accumulated += deltaTime

	switch b.State {
	case components.BlinkOpen:
		if b.Accumulated > b.Threshold {
			b.State = components.BlinkClosed
			b.Accumulated = 0
			return true
		}
	case components.BlinkClosed:
		if b.Accumulated > b.Duration {
			b.State = components.BlinkOpen
			b.Accumulated = 0
			b.Threshold = NextBlinkThreshold(b.Interval, b.Jitter, s.rng)
			b.Cycles++
			log.Printf("[BlinkSystem] Blink cycle %d complete, next in %.2fs", b.Cycles, b.Threshold)
			return true
		}
	}
	return false
}

// applyEyes 按状态压扁或恢复眼睛网格
func (s *BlinkSystem) applyEyes(b *components.BlinkComponent) {
	scaleY := b.OpenScaleY
	if b.State == components.BlinkClosed {
		scaleY = b.ClosedScaleY
	}
	for _, eye := range b.Eyes {
		if t, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, eye); ok {
			t.Scale[1] = scaleY
		}
	}
}

// NextBlinkThreshold 抽取下一次睁眼持续时间：interval + U[0, jitter)
func NextBlinkThreshold(interval, jitter float64, rng *rand.Rand) float64 {
	if jitter <= 0 {
		return interval
	}
	return interval + rng.Float64()*jitter
}
