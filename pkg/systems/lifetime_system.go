package systems

import (
	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 自动清理存活帧数超过上限或飞出场外的实体（主要是子弹）
type LifetimeSystem struct {
	entityManager *ecs.EntityManager

	// 场地边界（含外扩余量），出界实体直接标记删除
	minX, minY float64
	maxX, maxY float64
}

// NewLifetimeSystem 创建生命周期系统
// 边界为场地矩形外扩一段余量后的范围
func NewLifetimeSystem(em *ecs.EntityManager, width, height float64) *LifetimeSystem {
	const margin = 64
	return &LifetimeSystem{
		entityManager: em,
		minX:          -margin,
		minY:          -margin,
		maxX:          width + margin,
		maxY:          height + margin,
	}
}

// Update 推进一帧
func (s *LifetimeSystem) Update() {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.Frames++
		if lifetime.Frames >= lifetime.MaxFrames {
			lifetime.IsExpired = true
		}

		// 出界的实体同样视为过期
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			if pos.X < s.minX || pos.X > s.maxX || pos.Y < s.minY || pos.Y > s.maxY {
				lifetime.IsExpired = true
			}
		}

		if lifetime.IsExpired {
			s.entityManager.DestroyEntity(id)
		}
	}
}
