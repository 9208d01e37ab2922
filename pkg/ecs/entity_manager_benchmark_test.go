package ecs

import (
	"reflect"
	"testing"

	"github.com/decker502/scrollpath/pkg/components"
)

// setupBenchmarkEntities 创建 count 个实体，偶数实体额外带镜头位姿
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &components.AvatarPose{})
		if i%2 == 0 {
			AddComponent(em, id, &components.CameraPose{})
		}
	}
	return em
}

func BenchmarkGetComponent_Reflection(b *testing.B) {
	em := setupBenchmarkEntities(100)
	typ := reflect.TypeOf(&components.AvatarPose{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		comp, ok := em.GetComponent(1, typ)
		if ok {
			_ = comp.(*components.AvatarPose)
		}
	}
}

func BenchmarkGetComponent_Generic(b *testing.B) {
	em := setupBenchmarkEntities(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GetComponent[*components.AvatarPose](em, 1)
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*components.AvatarPose, *components.CameraPose](em)
	}
}
