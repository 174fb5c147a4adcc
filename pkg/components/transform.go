package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/cozyroom/pkg/ecs"
)

// TransformComponent 场景图节点的局部变换
//
// 世界矩阵 = 父节点世界矩阵 × T(Position) × Rx × Ry × Rz × S(Scale)
// 旋转顺序为 Euler XYZ。Parent 为 0 表示挂在场景根节点下。
type TransformComponent struct {
	Position mgl64.Vec3 // 相对父节点的位置
	Rotation mgl64.Vec3 // Euler 角（弧度）
	Scale    mgl64.Vec3 // 各轴缩放，零值在渲染前会被视为 1
	Parent   ecs.EntityID
}

// NewTransform 创建单位缩放的变换
func NewTransform(x, y, z float64) *TransformComponent {
	return &TransformComponent{
		Position: mgl64.Vec3{x, y, z},
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// SetUniformScale 设置统一缩放
func (t *TransformComponent) SetUniformScale(s float64) {
	t.Scale = mgl64.Vec3{s, s, s}
}
