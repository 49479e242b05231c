package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// NewBullet 创建一颗子弹
//
// 参数:
//   - em: 实体管理器
//   - stats: 子弹数值（伤害/半径/速度/寿命）
//   - faction: 发射方阵营
//   - source: 发射者实体ID（仇恨结算用，可为 0）
//   - x, y: 发射位置
//   - angle: 飞行方向（弧度）
//   - method: 武器类别（决定击杀效果）
func NewBullet(em *ecs.EntityManager, stats config.BulletStats, faction components.Faction,
	source ecs.EntityID, x, y, angle float64, method components.KillMethod) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{
		VX: math.Cos(angle) * stats.Speed,
		VY: math.Sin(angle) * stats.Speed,
	})
	em.AddComponent(id, &components.CollisionComponent{Radius: stats.Radius})
	em.AddComponent(id, &components.BulletComponent{
		Damage:  stats.Damage,
		Faction: faction,
		Source:  source,
		Angle:   angle,
		Method:  method,
	})
	em.AddComponent(id, &components.LifetimeComponent{MaxFrames: stats.LifetimeFrames})

	return id, nil
}
