package entities

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/gonewx/cozyroom/internal/mesh"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

// 眼睛缩放
const (
	CatEyeOpenScaleY   = 1.0
	CatEyeClosedScaleY = 0.1
)

// catTailPitch 尾巴上翘角度
const catTailPitch = math.Pi / 3

// NewCat 创建猫咪
//
// 猫咪根实体挂 BlinkComponent，尾巴实体挂 TailSwayComponent。
// 首轮睁眼阈值 = BlinkInterval + U[0, BlinkJitter)。
func NewCat(em *ecs.EntityManager, parent ecs.EntityID, cfg config.CatConfig, rng *rand.Rand, x, y, z, rotationY float64) (ecs.EntityID, error) {
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("failed to create cat: %w", err)
	}

	fur := config.Color("cat")
	eye := config.Color("catEye")

	cat := newGroup(em, parent, "cat", x, y, z)
	rotateGroup(em, cat, 0, rotationY, 0)

	newMesh(em, cat, "cat_body", mesh.Box(0.25, 0.18, 0.4), fur, 0, 0.12, 0)
	newMesh(em, cat, "cat_head", mesh.Box(0.18, 0.15, 0.15), fur, 0, 0.26, 0.16)
	newMesh(em, cat, "cat_ear_left", mesh.Box(0.06, 0.08, 0.03), fur, -0.06, 0.34, 0.16, rotated(0, 0, math.Pi/4))
	newMesh(em, cat, "cat_ear_right", mesh.Box(0.06, 0.08, 0.03), fur, 0.06, 0.34, 0.16, rotated(0, 0, -math.Pi/4))

	tail := newMesh(em, cat, "cat_tail", mesh.Box(0.05, 0.05, 0.2), fur, 0, 0.15, -0.25, rotated(catTailPitch, 0, 0))
	em.AddComponent(tail, &components.TailSwayComponent{
		Direction:       1,
		Period:          cfg.SwayPeriod,
		Amplitude:       cfg.SwayAmplitude,
		Smoothing:       cfg.SwaySmoothing,
		SwaysBeforeRest: cfg.SwaysBeforeRest,
		RestDuration:    cfg.RestDuration,
	})

	leftEye := newMesh(em, cat, "cat_eye_left", mesh.Sphere(0.02, 8), eye, -0.05, 0.28, 0.24, glowing(0.3))
	rightEye := newMesh(em, cat, "cat_eye_right", mesh.Sphere(0.02, 8), eye, 0.05, 0.28, 0.24, glowing(0.3))

	threshold := cfg.BlinkInterval
	if cfg.BlinkJitter > 0 {
		threshold += rng.Float64() * cfg.BlinkJitter
	}
	em.AddComponent(cat, &components.BlinkComponent{
		State:        components.BlinkOpen,
		Threshold:    threshold,
		Interval:     cfg.BlinkInterval,
		Jitter:       cfg.BlinkJitter,
		Duration:     cfg.BlinkDuration,
		Eyes:         []ecs.EntityID{leftEye, rightEye},
		OpenScaleY:   CatEyeOpenScaleY,
		ClosedScaleY: CatEyeClosedScaleY,
	})

	log.Printf("[CatFactory] Created cat (first blink in %.2fs)", threshold)
	return cat, nil
}
