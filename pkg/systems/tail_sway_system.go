package systems

import (
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/ecs"
	"github.com/gonewx/cozyroom/pkg/utils"
)

// TailSwaySystem 猫尾巴左右摆动
//
// 累计时间超过 Period 时翻转方向并清零；连续摆动 SwaysBeforeRest 次后回正休息 RestDuration 秒。
// 摆角以帧率无关的指数平滑趋近目标角度，结果写入尾巴变换的 Rotation.Y。
type TailSwaySystem struct {
	entityManager *ecs.EntityManager
}

// NewTailSwaySystem 创建尾巴摆动系统
func NewTailSwaySystem(em *ecs.EntityManager) *TailSwaySystem {
	return &TailSwaySystem{entityManager: em}
}

// Update 推进所有尾巴
func (s *TailSwaySystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.TailSwayComponent,
		*components.TransformComponent,
	](s.entityManager)

	for _, id := range entities {
		tail, _ := ecs.GetComponent[*components.TailSwayComponent](s.entityManager, id)
		t, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if tail == nil || t == nil {
			continue
		}
		StepTailSway(tail, deltaTime)
		t.Rotation[1] = tail.Angle
	}
}

// StepTailSway 推进一次尾巴状态并返回新的摆角
func StepTailSway(tail *components.TailSwayComponent, deltaTime float64) float64 {
	if tail.Direction == 0 {
		tail.Direction = 1
	}
	tail.Accumulated += deltaTime

	if tail.Resting {
		if tail.Accumulated > tail.RestDuration {
			tail.Resting = false
			tail.Accumulated = 0
			tail.Sways = 0
		}
	} else if tail.Accumulated > tail.Period {
		tail.Direction = -tail.Direction
		tail.Accumulated = 0
		tail.Sways++
		if tail.SwaysBeforeRest > 0 && tail.Sways >= tail.SwaysBeforeRest {
			tail.Resting = true
		}
	}

	target := tail.Direction * tail.Amplitude
	if tail.Resting {
		target = 0
	}
	tail.Angle = utils.SmoothTowards(tail.Angle, target, tail.Smoothing, deltaTime)
	return tail.Angle
}
