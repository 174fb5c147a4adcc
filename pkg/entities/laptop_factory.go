package entities

import (
	"github.com/gonewx/cozyroom/internal/mesh"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

// 笔记本配色
const (
	laptopBody     = "#2c2c2c"
	laptopKeyboard = "#1a1a1a"
	laptopTrackpad = "#333333"
	laptopScreen   = "#4a90e2"
	laptopGlow     = "#6bb6ff"
)

// NewLaptop 创建笔记本电脑
//
// 屏幕网格和屏幕点光源由 ShimmerComponent 引用，每帧改写自发光与光强。
//
// 参数：
//   - parent: 父节点（通常是书桌）
//   - x, y, z: 底座中心位置（相对父节点）
//   - rotationY: 绕 Y 轴旋转
func NewLaptop(em *ecs.EntityManager, parent ecs.EntityID, x, y, z, rotationY float64) ecs.EntityID {
	laptop := newGroup(em, parent, "laptop", x, y, z)
	rotateGroup(em, laptop, 0, rotationY, 0)

	newMesh(em, laptop, "laptop_base", mesh.Box(0.4, 0.025, 0.3), laptopBody, 0, 0, 0)
	newMesh(em, laptop, "laptop_keyboard", mesh.Box(0.35, 0.002, 0.25), laptopKeyboard, 0, 0.013, 0.02)
	newMesh(em, laptop, "laptop_trackpad", mesh.Box(0.08, 0.001, 0.06), laptopTrackpad, 0, 0.015, 0.08)
	newMesh(em, laptop, "laptop_screen_back", mesh.Box(0.38, 0.24, 0.015), laptopKeyboard, -0.01, 0.11, -0.15,
		rotated(-0.3927, 0, 0))
	display := newMesh(em, laptop, "laptop_display", mesh.Box(0.32, 0.18, 0.001), laptopScreen, -0.01, 0.12, -0.14,
		rotated(-0.3927, 0, 0), glowing(0.6), translucent(0.9))

	screenLight := newPointLight(em, laptop, "laptop_screen_light", laptopScreen, 1, 2, 1.5, 0, 0.12, -0.13)
	newPointLight(em, laptop, "laptop_glow", laptopGlow, 0.3, 1, 2, 0, 0.08, -0.1)

	em.AddComponent(laptop, &components.ShimmerComponent{
		Light:   screenLight,
		Display: display,
	})
	return laptop
}
