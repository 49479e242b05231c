package entities

import (
	"fmt"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// playerDefaults 玩家实体的基础数值
const (
	playerHealth = 100
	playerRadius = 12.0
)

// NewPlayer 创建玩家实体
// 整个世界中最多存在一个玩家，重复创建由调用方避免
func NewPlayer(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PlayerComponent{})
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.CollisionComponent{Radius: playerRadius})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: playerHealth,
		MaxHealth:     playerHealth,
	})

	return id, nil
}
