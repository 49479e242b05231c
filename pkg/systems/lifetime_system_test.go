package systems

import (
	"testing"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/ecs"
)

func TestLifetimeExpiry(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em, 960, 640)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 100, Y: 100})
	em.AddComponent(id, &components.LifetimeComponent{MaxFrames: 3})

	for frame := 1; frame <= 2; frame++ {
		system.Update()
		if em.IsMarkedForRemoval(id) {
			t.Fatalf("Entity expired early at frame %d", frame)
		}
	}

	system.Update()
	if !em.IsMarkedForRemoval(id) {
		t.Error("Entity should expire at MaxFrames")
	}
}

// TestLifetimeOutOfBounds 出界实体立即过期，不等帧数耗尽
func TestLifetimeOutOfBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em, 960, 640)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: -200, Y: 100})
	em.AddComponent(id, &components.LifetimeComponent{MaxFrames: 1000})

	system.Update()
	if !em.IsMarkedForRemoval(id) {
		t.Error("Out-of-bounds entity should be marked for removal")
	}
}

func TestMovementIntegration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewMovementSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 10, Y: 20})
	em.AddComponent(id, &components.VelocityComponent{VX: 2, VY: -3})

	system.Update()
	system.Update()

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 14 || pos.Y != 14 {
		t.Errorf("Expected (14, 14), got (%f, %f)", pos.X, pos.Y)
	}
}

// TestFlashEffectLifecycle 闪烁帧数耗尽后组件被移除
func TestFlashEffectLifecycle(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFlashEffectSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.FlashEffectComponent{Frames: 2, MaxFrames: 2, IsActive: true})

	system.Update()
	if !ecs.HasComponent[*components.FlashEffectComponent](em, id) {
		t.Fatal("Flash should persist while frames remain")
	}

	system.Update()
	if ecs.HasComponent[*components.FlashEffectComponent](em, id) {
		t.Error("Flash component should be removed when frames run out")
	}
}
