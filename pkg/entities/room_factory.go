package entities

import (
	"fmt"

	"github.com/gonewx/cozyroom/internal/mesh"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

const (
	half = config.RoomHalf
	size = config.RoomSize
)

// NewRoomShell 创建房间外壳：地板、带窗洞的后墙、侧墙、窗框、玻璃与窗外天空
//
// 后墙由窗洞上下左右四块墙体拼成，雨滴透过窗洞可见。
//
// 返回：
//   - ecs.EntityID: 房间根节点
//   - error: em 为 nil 时返回错误
func NewRoomShell(em *ecs.EntityManager) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	root := newGroup(em, 0, "room", 0, 0, 0)
	wall := config.Color("wall")
	shell := onLayer(components.LayerShell)

	// 地板
	newMesh(em, root, "floor", mesh.Box(size, config.FloorThickness, size), config.Color("floor"), 0, 0, 0, shell)

	// 后墙（z = -half），窗洞 [WindowMinX, WindowMaxX] × [WindowMinY, WindowMaxY]
	wx0, wx1 := config.WindowMinX, config.WindowMaxX
	wy0, wy1 := config.WindowMinY, config.WindowMaxY
	t := config.WallThickness
	newMesh(em, root, "back_wall_lower", mesh.Box(size, wy0, t), wall, 0, wy0/2, -half, shell)
	newMesh(em, root, "back_wall_upper", mesh.Box(size, size-wy1, t), wall, 0, (wy1+size)/2, -half, shell)
	sideW := wx0 + half
	newMesh(em, root, "back_wall_left", mesh.Box(sideW, wy1-wy0, t), wall, -half+sideW/2, (wy0+wy1)/2, -half, shell)
	sideW = half - wx1
	newMesh(em, root, "back_wall_right", mesh.Box(sideW, wy1-wy0, t), wall, half-sideW/2, (wy0+wy1)/2, -half, shell)

	// 侧墙（x = -half）
	newMesh(em, root, "side_wall", mesh.Box(t, size, size), wall, -half, half, 0, shell)

	newWindow(em, root)
	return root, nil
}

// newWindow 窗框、玻璃和窗外夜空
func newWindow(em *ecs.EntityManager, root ecs.EntityID) {
	wx0, wx1 := config.WindowMinX, config.WindowMaxX
	wy0, wy1 := config.WindowMinY, config.WindowMaxY
	cx, cy := (wx0+wx1)/2, (wy0+wy1)/2
	w, h := wx1-wx0, wy1-wy0
	frame := config.Color("frame")
	bar := 0.04

	window := newGroup(em, root, "window", cx, cy, -half)
	newMesh(em, window, "window_glass", mesh.Box(w, h, 0.02), config.Color("glass"), 0, 0, 0, translucent(0.2))
	newMesh(em, window, "window_frame_top", mesh.Box(w+bar, bar, 0.12), frame, 0, h/2, 0)
	newMesh(em, window, "window_frame_bottom", mesh.Box(w+bar, bar, 0.16), frame, 0, -h/2, 0.02)
	newMesh(em, window, "window_frame_left", mesh.Box(bar, h, 0.12), frame, -w/2, 0, 0)
	newMesh(em, window, "window_frame_right", mesh.Box(bar, h, 0.12), frame, w/2, 0, 0)
	newMesh(em, window, "window_mullion", mesh.Box(bar/2, h, 0.06), frame, 0, 0, 0)
	newMesh(em, window, "window_transom", mesh.Box(w, bar/2, 0.06), frame, 0, 0, 0)

	// 窗外夜空，位于雨滴出生区域之后
	newMesh(em, root, "sky", mesh.Box(w*2, h*1.6, 0.02), config.Color("sky"), cx, cy, -half-1.1,
		onLayer(components.LayerBackdrop), unlit())
}

// NewBed 床：床垫、枕头、被子、床头板（后墙左侧）
func NewBed(em *ecs.EntityManager, parent ecs.EntityID) ecs.EntityID {
	bed := newGroup(em, parent, "bed", -half+0.75, 0, -half+1.1)
	newMesh(em, bed, "mattress", mesh.Box(1.5, 0.4, 1), config.Color("bedsheet"), 0, 0.25, 0)
	newMesh(em, bed, "pillow", mesh.Box(0.6, 0.15, 0.35), config.Color("pillow"), 0.35, 0.45, 0.35)
	newMesh(em, bed, "blanket", mesh.Box(1.5, 0.1, 0.6), config.Color("blanket"), 0, 0.36, 0)
	newMesh(em, bed, "headboard", mesh.Box(1.5, 0.35, 0.12), config.Color("wood"), 0, 0.6, 0.5)
	return bed
}

// NewDesk 书桌：桌面、桌腿、台灯（带暖色点光源）、马克杯（后墙右侧）
//
// 返回桌子根节点与桌面顶面高度（相对根节点），用于摆放笔记本。
func NewDesk(em *ecs.EntityManager, parent ecs.EntityID) (ecs.EntityID, float64) {
	deskColor := config.Color("desk")
	desk := newGroup(em, parent, "desk", half-0.8, 0, -half+1.2)
	newMesh(em, desk, "desk_top", mesh.Box(1.2, 0.13, 0.45), deskColor, 0, 0.45, 0)
	for i, x := range []float64{0.45, -0.45} {
		newMesh(em, desk, fmt.Sprintf("desk_leg_%d", i), mesh.Box(0.08, 0.4, 0.08), deskColor, x, 0.18, 0.15)
	}

	lampShade := config.Color("lampShade")
	newMesh(em, desk, "lamp", mesh.Sphere(0.09, 16), lampShade, 0.4, 0.60, 0.25, glowing(0.3))
	newPointLight(em, desk, "lamp_light", lampShade, 0.4, 1.5, 2, 0.4, 0.62, 0.25)

	newMesh(em, desk, "mug", mesh.Cylinder(0.06, 0.06, 0.10, 18), config.Color("mug"), -0.3, 0.56, 0.28)
	return desk, 0.45 + 0.13/2
}

// NewPlant 房间中央的盆栽
func NewPlant(em *ecs.EntityManager, parent ecs.EntityID) ecs.EntityID {
	plant := newGroup(em, parent, "plant", 0, 0, 0)
	newMesh(em, plant, "plant_pot", mesh.Cylinder(0.08, 0.08, 0.13, 14), config.Color("plantPot"), 0, 0.11, 0)
	newMesh(em, plant, "plant_leaves", mesh.Sphere(0.13, 12), config.Color("plantLeaf"), 0, 0.20, 0)
	return plant
}

// NewChair 办公椅：座垫、靠背、气压杆、底座
func NewChair(em *ecs.EntityManager, parent ecs.EntityID, x, y, z, rotationY float64) ecs.EntityID {
	seat := config.Color("chair")
	chair := newGroup(em, parent, "chair", x, y, z)
	rotateGroup(em, chair, 0, rotationY, 0)
	newMesh(em, chair, "chair_seat", mesh.Cylinder(0.22, 0.2, 0.08, 32), seat, 0, 0.45, 0)
	newMesh(em, chair, "chair_back", mesh.Box(0.35, 0.4, 0.06), seat, 0, 0.7, -0.15)
	newMesh(em, chair, "chair_cylinder", mesh.Cylinder(0.03, 0.02, 0.5, 16), seat, 0, 0.2, 0)
	newMesh(em, chair, "chair_base", mesh.Cylinder(0.2, 0.2, 0.03, 32), config.Color("chairBase"), 0, 0.08, 0)
	return chair
}
