package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

func TestWorldPositionFollowsParents(t *testing.T) {
	em := ecs.NewEntityManager()

	parent := em.CreateEntity()
	pt := components.NewTransform(1, 0, 0)
	pt.Rotation = mgl64.Vec3{0, math.Pi / 2, 0}
	em.AddComponent(parent, pt)

	child := em.CreateEntity()
	ct := components.NewTransform(0, 0, 1)
	ct.Parent = parent
	em.AddComponent(child, ct)

	// 绕 Y 旋转 90°：局部 +Z 变为世界 +X
	got := WorldPosition(em, child)
	want := mgl64.Vec3{2, 0, 0}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("WorldPosition() = %v, want %v", got, want)
	}
}

func TestLocalMatrixZeroScale(t *testing.T) {
	tr := &components.TransformComponent{Position: mgl64.Vec3{0, 1, 0}}
	got := mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, LocalMatrix(tr))
	if !got.ApproxEqualThreshold(mgl64.Vec3{1, 1, 0}, 1e-9) {
		t.Errorf("zero scale should act as identity, got %v", got)
	}
}

func TestWorldMatrixStopsOnCycle(t *testing.T) {
	em := ecs.NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()
	ta := components.NewTransform(0, 1, 0)
	tb := components.NewTransform(0, 1, 0)
	ta.Parent = b
	tb.Parent = a
	em.AddComponent(a, ta)
	em.AddComponent(b, tb)

	got := WorldPosition(em, a)
	if got.Y() != maxHierarchyDepth {
		t.Errorf("cyclic hierarchy y = %v, want %d", got.Y(), maxHierarchyDepth)
	}
}

func TestWorldPositionWithoutTransform(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	if got := WorldPosition(em, id); got != (mgl64.Vec3{}) {
		t.Errorf("WorldPosition() = %v, want origin", got)
	}
}
