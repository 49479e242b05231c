// Package entities 提供战斗实体的工厂函数
// 工厂只负责组装组件，数值一律来自配置
package entities

import (
	"fmt"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// NewEnemy 创建一个敌机实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 战斗配置（敌机数值来源）
//   - enemyType: 敌机类型
//   - x, y: 初始位置（世界坐标）
//   - facingAngle: 初始朝向（弧度）
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID，失败时为 0
//   - error: 配置缺失等错误
func NewEnemy(em *ecs.EntityManager, cfg *config.CombatConfig, enemyType components.EnemyType,
	x, y, facingAngle float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("combat config cannot be nil")
	}

	stats, ok := cfg.Enemies[enemyType.String()]
	if !ok {
		return 0, fmt.Errorf("no stats configured for enemy type %q", enemyType)
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Radius: stats.Radius})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})
	em.AddComponent(id, &components.EnemyComponent{
		Type:          enemyType,
		FacingAngle:   facingAngle,
		ContactDamage: stats.ContactDamage,
	})

	// 重装敌机额外携带方向护甲与仇恨状态
	if enemyType == components.EnemyTank {
		armor := &components.ArmorComponent{}
		for i := range armor.Plates {
			armor.Plates[i] = components.ArmorPlate{
				HP:    cfg.Armor.PlateHP,
				MaxHP: cfg.Armor.PlateHP,
			}
		}
		em.AddComponent(id, armor)
		em.AddComponent(id, components.NewAngerComponent(cfg.Armor.AngerThreshold))
	}

	return id, nil
}
