package ecs

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/decker502/scrollpath/pkg/components"
)

var (
	avatarType = reflect.TypeOf(&components.AvatarPose{})
	cameraType = reflect.TypeOf(&components.CameraPose{})
)

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID从1开始,0保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pose := &components.AvatarPose{Position: r3.Vec{X: 1, Y: 50, Z: 0}, State: components.LocomotionSpawning}
	em.AddComponent(id, pose)

	comp, found := em.GetComponent(id, avatarType)
	if !found {
		t.Fatal("Component should be found")
	}
	if comp.(*components.AvatarPose) != pose {
		t.Error("GetComponent should return the stored pointer")
	}
}

// TestGenericComponentAccess 泛型接口与反射接口共用同一份存储
func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	avatar := em.CreateEntity()
	camera := em.CreateEntity()

	AddComponent(em, avatar, &components.AvatarPose{Position: r3.Vec{Z: -10}})
	em.AddComponent(camera, &components.CameraPose{Position: r3.Vec{Y: 6, Z: 15}})

	pose, ok := GetComponent[*components.AvatarPose](em, avatar)
	if !ok {
		t.Fatal("avatar pose should be found")
	}
	// 通过指针原地修改，再次读取能看到修改
	pose.Position.Z = -20
	again, _ := GetComponent[*components.AvatarPose](em, avatar)
	if again.Position.Z != -20 {
		t.Errorf("Position.Z = %v, want -20", again.Position.Z)
	}

	cam, ok := GetComponent[*components.CameraPose](em, camera)
	if !ok {
		t.Fatal("camera pose added via reflection API should be visible to generic API")
	}
	if diff := cmp.Diff(r3.Vec{Y: 6, Z: 15}, cam.Position); diff != "" {
		t.Errorf("camera position mismatch (-want +got):\n%s", diff)
	}

	if _, ok := GetComponent[*components.CameraPose](em, avatar); ok {
		t.Error("avatar entity should not have a camera pose")
	}
	// 值类型与指针类型是不同的组件类型
	if _, ok := GetComponent[components.AvatarPose](em, avatar); ok {
		t.Error("value type lookup should not match pointer component")
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if em.HasComponent(id, avatarType) || HasComponent[*components.AvatarPose](em, id) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &components.AvatarPose{})

	if !em.HasComponent(id, avatarType) || !HasComponent[*components.AvatarPose](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*components.AvatarPose](em, id)
	if em.HasComponent(id, avatarType) {
		t.Error("Should not have component after removing")
	}
}

// TestAddComponentUnknownEntity 向不存在的实体添加组件被忽略
func TestAddComponentUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	AddComponent(em, EntityID(42), &components.CameraPose{})

	if HasComponent[*components.CameraPose](em, 42) {
		t.Error("unknown entity should not receive components")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, want 0", em.EntityCount())
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.AvatarPose{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, avatarType) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.HasComponent(id, avatarType) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &components.AvatarPose{})
	em.AddComponent(id1, &components.CameraPose{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &components.AvatarPose{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &components.CameraPose{})

	both := em.GetEntitiesWith(avatarType, cameraType)
	if diff := cmp.Diff([]EntityID{id1}, both); diff != "" {
		t.Errorf("GetEntitiesWith(avatar, camera) mismatch (-want +got):\n%s", diff)
	}

	avatars := GetEntitiesWith1[*components.AvatarPose](em)
	if diff := cmp.Diff([]EntityID{id1, id2}, avatars); diff != "" {
		t.Errorf("GetEntitiesWith1 mismatch (-want +got):\n%s", diff)
	}

	if got := GetEntitiesWith2[*components.AvatarPose, *components.CameraPose](em); len(got) != 1 || got[0] != id1 {
		t.Errorf("GetEntitiesWith2 = %v, want [%d]", got, id1)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	for _, id := range []EntityID{id1, id2, id3} {
		em.AddComponent(id, &components.CameraPose{})
	}

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.HasComponent(id1, cameraType) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, cameraType) {
		t.Error("id2 should still exist")
	}
	if em.HasComponent(id3, cameraType) {
		t.Error("id3 should be removed")
	}
	if em.EntityCount() != 1 {
		t.Errorf("EntityCount() = %d, want 1", em.EntityCount())
	}
}
