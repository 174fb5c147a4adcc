package entities

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cozyroom/internal/mesh"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

// 壁炉配色
const (
	fireplaceBase   = "#8B7355"
	fireplaceBrick  = "#A0522D"
	fireplaceStone  = "#8B4513"
	fireplaceDark   = "#654321"
	fireplaceMetal  = "#2F2F2F"
	fireplaceGlass  = "#b3e6ff"
	flameColorA     = "#FF4500"
	flameColorB     = "#FF6B35"
	sparkColor      = "#FFD700"
	fireGlowColor   = "#FF8C42"
	fireLightColor  = "#FF6B35"
	flameMeshAlpha  = 0.9
	sparkMeshAlpha  = 0.8
	fireDoorOpacity = 0.3
)

// NewFireplace 创建壁炉及其火焰效果
//
// 火焰与火星的出生偏移在创建时一次性抽取，之后由 FireSystem 每帧叠加振荡偏移：
//   - 火焰：x, z ∈ ±0.15·size，y ∈ [0, 0.2·size)，speed ∈ [0.5, 1)
//   - 火星：x, z ∈ ±0.1·size，y ∈ [0, 0.4·size)，speed ∈ [0.3, 1)
//
// 参数：
//   - cfg: 火焰参数（整体缩放与粒子数）
//   - rng: 抽取出生偏移与相位
//   - x, y, z, rotationY: 壁炉在父节点中的位置与朝向
//
// 返回：
//   - 挂有 FireComponent 的壁炉根实体
func NewFireplace(em *ecs.EntityManager, parent ecs.EntityID, cfg config.FireConfig, rng *rand.Rand, x, y, z, rotationY float64) (ecs.EntityID, error) {
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("failed to create fireplace: %w", err)
	}

	s := cfg.Size
	fireplace := newGroup(em, parent, "fireplace", x, y, z)
	rotateGroup(em, fireplace, 0, rotationY, 0)

	// 炉体
	newMesh(em, fireplace, "fireplace_base", mesh.Box(1.0*s, 0.04*s, 0.8*s), fireplaceBase, 0, 0.02*s, 0)
	newMesh(em, fireplace, "fireplace_hearth", mesh.Box(0.9*s, 0.04*s, 0.7*s), fireplaceBrick, 0, 0.06*s, 0)
	newMesh(em, fireplace, "fireplace_back", mesh.Box(0.8*s, 0.8*s, 0.1*s), fireplaceStone, 0, 0.45*s, -0.3*s)
	newMesh(em, fireplace, "fireplace_side_left", mesh.Box(0.1*s, 0.8*s, 0.6*s), fireplaceStone, -0.35*s, 0.45*s, 0)
	newMesh(em, fireplace, "fireplace_side_right", mesh.Box(0.1*s, 0.8*s, 0.6*s), fireplaceStone, 0.35*s, 0.45*s, 0)
	newMesh(em, fireplace, "fireplace_top", mesh.Box(0.8*s, 0.1*s, 0.6*s), fireplaceStone, 0, 0.85*s, 0)
	newMesh(em, fireplace, "fireplace_mantel", mesh.Box(1.1*s, 0.12*s, 0.5*s), fireplaceBrick, 0, 0.92*s, -0.05*s)
	newMesh(em, fireplace, "fireplace_support_left", mesh.Box(0.08*s, 0.3*s, 0.08*s), fireplaceBrick, -0.4*s, 0.75*s, 0.2*s)
	newMesh(em, fireplace, "fireplace_support_right", mesh.Box(0.08*s, 0.3*s, 0.08*s), fireplaceBrick, 0.4*s, 0.75*s, 0.2*s)

	// 烟囱
	newMesh(em, fireplace, "chimney", mesh.Cylinder(0.15*s, 0.18*s, 0.6*s, 8), fireplaceDark, 0, 1.3*s, -0.15*s)
	newMesh(em, fireplace, "chimney_cap", mesh.Cylinder(0.22*s, 0.2*s, 0.08*s, 8), fireplaceMetal, 0, 1.65*s, -0.15*s)

	// 木柴
	logs := newGroup(em, fireplace, "logs", 0, 0.1*s, 0.1*s)
	newMesh(em, logs, "log_1", mesh.Cylinder(0.03*s, 0.04*s, 0.4*s, 8), fireplaceStone, -0.1*s, 0, 0, rotated(0, 0, math.Pi/8))
	newMesh(em, logs, "log_2", mesh.Cylinder(0.025*s, 0.035*s, 0.35*s, 8), fireplaceDark, 0.1*s, 0.03*s, -0.05*s, rotated(0, 0, -math.Pi/6))
	newMesh(em, logs, "log_3", mesh.Cylinder(0.02*s, 0.03*s, 0.3*s, 8), fireplaceStone, 0, 0.06*s, 0, rotated(0, math.Pi/4, 0))

	fire := &components.FireComponent{Size: s}

	flames := newGroup(em, fireplace, "flames", 0, 0.2*s, 0.1*s)
	for i := 0; i < cfg.FlameCount; i++ {
		color := flameColorA
		if i%2 == 1 {
			color = flameColorB
		}
		p := components.FireParticle{
			Spawn: mgl64.Vec3{
				(rng.Float64() - 0.5) * 0.3 * s,
				rng.Float64() * 0.2 * s,
				(rng.Float64() - 0.5) * 0.3 * s,
			},
			Phase: rng.Float64() * 2 * math.Pi,
			Speed: 0.5 + rng.Float64()*0.5,
		}
		p.Entity = newMesh(em, flames, fmt.Sprintf("flame_%d", i), mesh.Cone(0.05*s, 0.15*s, 6), color,
			p.Spawn.X(), p.Spawn.Y(), p.Spawn.Z(), glowing(0.8), translucent(flameMeshAlpha))
		fire.Flames = append(fire.Flames, p)
	}

	sparks := newGroup(em, fireplace, "sparks", 0, 0.25*s, 0.1*s)
	for i := 0; i < cfg.SparkCount; i++ {
		p := components.FireParticle{
			Spawn: mgl64.Vec3{
				(rng.Float64() - 0.5) * 0.2 * s,
				rng.Float64() * 0.4 * s,
				(rng.Float64() - 0.5) * 0.2 * s,
			},
			Phase: rng.Float64() * 2 * math.Pi,
			Speed: 0.3 + rng.Float64()*0.7,
		}
		p.Entity = newMesh(em, sparks, fmt.Sprintf("spark_%d", i), mesh.Sphere(0.01*s, 4), sparkColor,
			p.Spawn.X(), p.Spawn.Y(), p.Spawn.Z(), glowing(1), translucent(sparkMeshAlpha))
		fire.Sparks = append(fire.Sparks, p)
	}

	fire.Light = newPointLight(em, fireplace, "fire_light", fireLightColor, 2*s, 3*s, 2, 0, 0.3*s, 0.2*s)
	newPointLight(em, fireplace, "fire_glow", fireGlowColor, 0.5*s, 2*s, 1.5, 0, 0.2*s, 0.15*s)

	// 玻璃门在火焰前方
	newMesh(em, fireplace, "fireplace_door", mesh.Box(0.7*s, 0.7*s, 0.02*s), fireplaceGlass, 0, 0.45*s, 0.35*s,
		translucent(fireDoorOpacity))
	frame := newGroup(em, fireplace, "fireplace_door_frame", 0, 0.45*s, 0.36*s)
	newMesh(em, frame, "door_frame_top", mesh.Box(0.72*s, 0.02*s, 0.02*s), fireplaceMetal, 0, 0.36*s, 0)
	newMesh(em, frame, "door_frame_bottom", mesh.Box(0.72*s, 0.02*s, 0.02*s), fireplaceMetal, 0, -0.36*s, 0)
	newMesh(em, frame, "door_frame_left", mesh.Box(0.02*s, 0.72*s, 0.02*s), fireplaceMetal, -0.36*s, 0, 0)
	newMesh(em, frame, "door_frame_right", mesh.Box(0.02*s, 0.72*s, 0.02*s), fireplaceMetal, 0.36*s, 0, 0)
	newMesh(em, frame, "door_frame_cross_h", mesh.Box(0.72*s, 0.015*s, 0.02*s), fireplaceMetal, 0, 0, 0)
	newMesh(em, frame, "door_frame_cross_v", mesh.Box(0.015*s, 0.72*s, 0.02*s), fireplaceMetal, 0, 0, 0)

	em.AddComponent(fireplace, fire)
	log.Printf("[FireplaceFactory] Created fireplace (size=%.2f, flames=%d, sparks=%d)", s, len(fire.Flames), len(fire.Sparks))
	return fireplace, nil
}
