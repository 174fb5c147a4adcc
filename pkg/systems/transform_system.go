package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

// maxHierarchyDepth 场景图最大层级，防止错误的父子关系形成环
const maxHierarchyDepth = 32

// LocalMatrix 计算变换组件的局部矩阵
//
//	M = T(Position) × Rx × Ry × Rz × S(Scale)
//
// Scale 为零向量（未设置）时按单位缩放处理。
func LocalMatrix(t *components.TransformComponent) mgl64.Mat4 {
	s := t.Scale
	if s == (mgl64.Vec3{}) {
		s = mgl64.Vec3{1, 1, 1}
	}

	m := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	if t.Rotation != (mgl64.Vec3{}) {
		m = m.Mul4(mgl64.HomogRotate3DX(t.Rotation.X()))
		m = m.Mul4(mgl64.HomogRotate3DY(t.Rotation.Y()))
		m = m.Mul4(mgl64.HomogRotate3DZ(t.Rotation.Z()))
	}
	return m.Mul4(mgl64.Scale3D(s.X(), s.Y(), s.Z()))
}

// WorldMatrix 沿 Parent 链组合出实体的世界矩阵
//
// 没有 TransformComponent 的实体返回单位矩阵；父实体不存在时视为场景根节点。
func WorldMatrix(em *ecs.EntityManager, id ecs.EntityID) mgl64.Mat4 {
	world := mgl64.Ident4()
	for depth := 0; id != 0 && depth < maxHierarchyDepth; depth++ {
		t, ok := ecs.GetComponent[*components.TransformComponent](em, id)
		if !ok {
			break
		}
		world = LocalMatrix(t).Mul4(world)
		id = t.Parent
	}
	return world
}

// WorldPosition 返回实体原点的世界坐标
func WorldPosition(em *ecs.EntityManager, id ecs.EntityID) mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, WorldMatrix(em, id))
}
