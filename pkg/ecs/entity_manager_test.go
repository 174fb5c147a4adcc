package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTransformComponent struct {
	X, Y, Z float64
}

type testMeshComponent struct {
	Color string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTransformComponent{X: 1, Y: 2, Z: 3})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransformComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testTransformComponent)
	if retrieved.X != 1 || retrieved.Y != 2 || retrieved.Z != 3 {
		t.Errorf("Component data mismatch, got %+v", retrieved)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testMeshComponent{Color: "#fff"})

	mesh, ok := GetComponent[*testMeshComponent](em, id)
	if !ok {
		t.Fatal("GetComponent[*testMeshComponent] should find component")
	}
	if mesh.Color != "#fff" {
		t.Errorf("Color = %q, want #fff", mesh.Color)
	}

	if _, ok := GetComponent[*testTransformComponent](em, id); ok {
		t.Error("GetComponent should not find a component that was never added")
	}

	if !HasComponent[*testMeshComponent](em, id) {
		t.Error("HasComponent should report added component")
	}

	RemoveComponent[*testMeshComponent](em, id)
	if HasComponent[*testMeshComponent](em, id) {
		t.Error("component should be gone after RemoveComponent")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransformComponent{})

	em.DestroyEntity(id)

	// 标记后、清理前实体仍然存在
	if !em.Exists(id) {
		t.Error("entity should still exist before RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("entity should be removed after RemoveMarkedEntities")
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	var withBoth []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testTransformComponent{})
		if i%3 == 0 {
			em.AddComponent(id, &testMeshComponent{})
			withBoth = append(withBoth, id)
		}
	}

	got := GetEntitiesWith2[*testTransformComponent, *testMeshComponent](em)
	if len(got) != len(withBoth) {
		t.Fatalf("got %d entities, want %d", len(got), len(withBoth))
	}
	for i := range got {
		if got[i] != withBoth[i] {
			t.Errorf("result[%d] = %d, want %d (results must be in ascending ID order)", i, got[i], withBoth[i])
		}
	}

	if n := len(GetEntitiesWith1[*testTransformComponent](em)); n != 50 {
		t.Errorf("GetEntitiesWith1 returned %d, want 50", n)
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.CreateEntity()
	em.Clear()

	if em.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", em.Count())
	}
}
