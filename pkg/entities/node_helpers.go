package entities

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cozyroom/internal/mesh"
	"github.com/gonewx/cozyroom/pkg/components"
	"github.com/gonewx/cozyroom/pkg/ecs"
)

// meshOption 网格实体的可选参数
type meshOption func(t *components.TransformComponent, m *components.MeshComponent)

// rotated 设置 Euler XYZ 旋转
func rotated(x, y, z float64) meshOption {
	return func(t *components.TransformComponent, _ *components.MeshComponent) {
		t.Rotation = mgl64.Vec3{x, y, z}
	}
}

// emissive 设置自发光
func emissive(hex string, intensity float64) meshOption {
	return func(_ *components.TransformComponent, m *components.MeshComponent) {
		m.Emissive = hex
		m.EmissiveIntensity = intensity
	}
}

// glowing 自发光颜色与基础色相同
func glowing(intensity float64) meshOption {
	return func(_ *components.TransformComponent, m *components.MeshComponent) {
		m.Emissive = m.Color
		m.EmissiveIntensity = intensity
	}
}

// translucent 设置不透明度
func translucent(opacity float64) meshOption {
	return func(_ *components.TransformComponent, m *components.MeshComponent) {
		m.Opacity = opacity
	}
}

// onLayer 设置绘制层
func onLayer(layer int) meshOption {
	return func(_ *components.TransformComponent, m *components.MeshComponent) {
		m.Layer = layer
	}
}

// unlit 忽略光照
func unlit() meshOption {
	return func(_ *components.TransformComponent, m *components.MeshComponent) {
		m.Unlit = true
	}
}

// newGroup 创建只有变换的分组节点
func newGroup(em *ecs.EntityManager, parent ecs.EntityID, name string, x, y, z float64) ecs.EntityID {
	id := em.CreateEntity()
	t := components.NewTransform(x, y, z)
	t.Parent = parent
	em.AddComponent(id, t)
	em.AddComponent(id, &components.LabelComponent{Name: name})
	return id
}

// newMesh 创建网格节点，默认位于道具层，完全不透明
func newMesh(em *ecs.EntityManager, parent ecs.EntityID, name string, shape mesh.Shape, color string, x, y, z float64, opts ...meshOption) ecs.EntityID {
	id := em.CreateEntity()
	t := components.NewTransform(x, y, z)
	t.Parent = parent
	m := &components.MeshComponent{
		Shape:   shape,
		Color:   color,
		Opacity: 1,
		Layer:   components.LayerProps,
	}
	for _, opt := range opts {
		opt(t, m)
	}
	em.AddComponent(id, t)
	em.AddComponent(id, m)
	em.AddComponent(id, &components.LabelComponent{Name: name})
	return id
}

// newPointLight 创建点光源节点
func newPointLight(em *ecs.EntityManager, parent ecs.EntityID, name, color string, intensity, distance, decay, x, y, z float64) ecs.EntityID {
	id := newGroup(em, parent, name, x, y, z)
	em.AddComponent(id, &components.PointLightComponent{
		Color:     color,
		Intensity: intensity,
		Distance:  distance,
		Decay:     decay,
	})
	return id
}

// rotateGroup 设置分组节点的旋转
func rotateGroup(em *ecs.EntityManager, id ecs.EntityID, x, y, z float64) {
	if t, ok := ecs.GetComponent[*components.TransformComponent](em, id); ok {
		t.Rotation = mgl64.Vec3{x, y, z}
	}
}
