package systems

import (
	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// FlashEffectSystem 受击闪烁效果系统
// 管理实体的受击闪烁生命周期，闪烁结束后移除组件
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪烁效果系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{entityManager: em}
}

// Update 推进一帧
func (s *FlashEffectSystem) Update() {
	entities := ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager)

	for _, id := range entities {
		flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)
		if !ok || !flash.IsActive {
			continue
		}

		flash.Frames--
		if flash.Frames <= 0 {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, id)
		}
	}
}
