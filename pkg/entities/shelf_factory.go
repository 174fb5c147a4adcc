package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/cozyroom/internal/mesh"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

// shelfBulbColors 灯串颜色，按序循环
var shelfBulbColors = []string{"#FFD700", "#FF6B6B", "#4ECDC4"}

// ShelfBulbCount 灯串灯泡数量
const ShelfBulbCount = 8

// NewShelf 创建墙上的置物架：书、相框、多肉和灯串
//
// 参数：
//   - x, y, z: 架板中心位置
//   - s: 整体缩放
func NewShelf(em *ecs.EntityManager, parent ecs.EntityID, x, y, z, s float64) ecs.EntityID {
	shelf := newGroup(em, parent, "shelf", x, y, z)
	board := "#d5afa7"
	wire := "#333333"

	newMesh(em, shelf, "shelf_board", mesh.Box(1.0*s, 0.05*s, 0.25*s), board, 0, 0, 0)
	newMesh(em, shelf, "shelf_bracket_left", mesh.Box(0.08*s, 0.15*s, 0.2*s), board, -0.35*s, -0.08*s, 0)
	newMesh(em, shelf, "shelf_bracket_right", mesh.Box(0.08*s, 0.15*s, 0.2*s), board, 0.35*s, -0.08*s, 0)

	// 书
	newMesh(em, shelf, "book_1", mesh.Box(0.08*s, 0.12*s, 0.03*s), "#8B4513", -0.25*s, 0.07*s, -0.05*s)
	newMesh(em, shelf, "book_2", mesh.Box(0.08*s, 0.15*s, 0.03*s), "#2F4F4F", -0.15*s, 0.07*s, -0.05*s)
	newMesh(em, shelf, "book_3", mesh.Box(0.08*s, 0.13*s, 0.03*s), "#800080", -0.05*s, 0.07*s, -0.05*s)
	newMesh(em, shelf, "book_4", mesh.Box(0.08*s, 0.12*s, 0.03*s), "#FF6347", 0.1*s, 0.045*s, 0, rotated(0, 0, math.Pi/2))
	newMesh(em, shelf, "book_5", mesh.Box(0.06*s, 0.1*s, 0.025*s), "#4B0082", 0.1*s, 0.07*s, 0, rotated(0, 0, math.Pi/2))

	// 相框与照片
	newMesh(em, shelf, "picture_frame", mesh.Box(0.08*s, 0.1*s, 0.01*s), "#FFD700", 0.25*s, 0.06*s, -0.05*s)
	newMesh(em, shelf, "picture", mesh.Box(0.06*s, 0.08*s, 0.005*s), "#87CEEB", 0.25*s, 0.06*s, -0.055*s)

	// 多肉
	newMesh(em, shelf, "succulent_pot", mesh.Cylinder(0.025*s, 0.025*s, 0.04*s, 8), "#CD853F", 0.35*s, -0.07*s, 0)
	newMesh(em, shelf, "succulent", mesh.Sphere(0.03*s, 8), "#228B22", 0.35*s, -0.03*s, 0)

	// 灯串：略下垂的弧线
	for i := 0; i < ShelfBulbCount; i++ {
		bx := -0.35*s + float64(i)*0.1*s
		by := -0.05*s - math.Sin(float64(i)*0.8)*0.03*s
		bz := -0.05 * s
		color := shelfBulbColors[i%len(shelfBulbColors)]

		bulb := newGroup(em, shelf, fmt.Sprintf("bulb_%d", i), bx, by, bz)
		newMesh(em, bulb, fmt.Sprintf("bulb_%d_glass", i), mesh.Sphere(0.015*s, 8), color, 0, 0, 0,
			glowing(0.6), translucent(0.9))
		newPointLight(em, bulb, fmt.Sprintf("bulb_%d_light", i), color, 0.2*s, 0.5*s, 2, 0, 0, 0)

		if i < ShelfBulbCount-1 {
			newMesh(em, bulb, fmt.Sprintf("bulb_%d_wire", i), mesh.Cylinder(0.002*s, 0.002*s, 0.1*s, 4), wire,
				0.05*s, 0.01*s, 0, rotated(0, 0, math.Atan2(-0.02*s, 0.1*s)))
		}
	}

	newMesh(em, shelf, "light_chain_wire", mesh.Cylinder(0.003*s, 0.003*s, 0.8*s, 6), wire, 0, -0.02*s, -0.05*s,
		rotated(0, math.Pi/2, 0))
	newMesh(em, shelf, "light_chain_hook_left", mesh.Cylinder(0.002*s, 0.002*s, 0.05*s, 4), wire, -0.4*s, -0.02*s, -0.05*s)
	newMesh(em, shelf, "light_chain_hook_right", mesh.Cylinder(0.002*s, 0.002*s, 0.05*s, 4), wire, 0.4*s, -0.02*s, -0.05*s)

	return shelf
}
