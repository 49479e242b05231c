package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/ecs"
)

// ContactEvent 玩家与敌机身体重叠的上报事件
// 接触伤害的限频由调用方负责，本系统每帧都会如实上报重叠
type ContactEvent struct {
	EnemyID ecs.EntityID // 重叠的敌机
	Damage  int          // 该敌机的接触伤害
}

// ProbeResult 探针检测结果
// 供外部诊断调用方验证碰撞子系统健康状态，永不抛出
type ProbeResult struct {
	OK       bool   // 检测逻辑是否正常完成
	Error    string // OK 为 false 时的原因描述
	Bullets  int    // 快照中的子弹数量
	Targets  int    // 快照中的目标数量
	Overlaps int    // 干跑检测到的重叠对数
}

// ProbeOptions 探针调用选项
type ProbeOptions struct {
	DryRun bool // true 时只做检测不做任何状态修改（当前唯一支持的模式）
}

// CollisionSystem 每帧碰撞编排器
//
// 职责：检测子弹↔敌机、子弹↔玩家、子弹↔敌机（误伤）与身体接触重叠，
// 把产生的伤害交给 DamageSystem 结算。
//
// 约定：
// - 每颗子弹每帧最多结算一次命中：子弹在外层循环，首个重叠目标获胜
// - 删除一律延迟：命中只做标记，帧末由 EntityManager 统一清理，
//   保证遍历中不会跳过相邻对，重复调用也不会二次结算
// - 实体集合每帧重新查询，绝不跨帧持有
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	damageSystem  *DamageSystem
	friendlyFire  bool
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, ds *DamageSystem, friendlyFire bool) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		damageSystem:  ds,
		friendlyFire:  friendlyFire,
	}
}

// CheckBulletCollisions 执行本帧全部子弹碰撞检测
// 依次处理玩家子弹对敌机、敌方子弹对玩家、（若开启误伤）敌方子弹对敌机
func (cs *CollisionSystem) CheckBulletCollisions() {
	cs.CheckPlayerBulletsVsEnemies()
	cs.CheckEnemyBulletsVsPlayer()
	if cs.friendlyFire {
		cs.CheckEnemyBulletsVsEnemies()
	}
}

// CheckPlayerBulletsVsEnemies 玩家子弹对敌机的碰撞检测
func (cs *CollisionSystem) CheckPlayerBulletsVsEnemies() {
	bullets := cs.bulletsOfFaction(components.FactionPlayer)
	targets := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](cs.entityManager)

	cs.resolveBulletsAgainst(bullets, targets)
}

// CheckEnemyBulletsVsPlayer 敌方子弹对玩家的碰撞检测
func (cs *CollisionSystem) CheckEnemyBulletsVsPlayer() {
	bullets := cs.bulletsOfFaction(components.FactionEnemy)
	targets := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](cs.entityManager)

	cs.resolveBulletsAgainst(bullets, targets)
}

// CheckEnemyBulletsVsEnemies 敌方子弹对敌机的误伤检测
// 子弹不会命中发射者自己
func (cs *CollisionSystem) CheckEnemyBulletsVsEnemies() {
	bullets := cs.bulletsOfFaction(components.FactionEnemy)
	targets := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](cs.entityManager)

	cs.resolveBulletsAgainst(bullets, targets)
}

// CheckContactCollisions 玩家与敌机的身体重叠检测
// 对每个重叠的敌机向玩家结算一次接触伤害并上报事件；
// 限频（如无敌帧）由调用方负责，本方法不做节流
func (cs *CollisionSystem) CheckContactCollisions() []ContactEvent {
	players := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](cs.entityManager)
	if len(players) == 0 {
		return nil
	}
	playerID := players[0]

	playerPos, ok1 := ecs.GetComponent[*components.PositionComponent](cs.entityManager, playerID)
	playerCol, ok2 := ecs.GetComponent[*components.CollisionComponent](cs.entityManager, playerID)
	if !ok1 || !ok2 {
		return nil
	}

	enemies := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](cs.entityManager)

	var events []ContactEvent
	for _, enemyID := range enemies {
		if cs.entityManager.IsMarkedForRemoval(enemyID) {
			continue
		}
		pos, col, ok := cs.geometry(enemyID)
		if !ok {
			continue
		}
		if !circlesOverlap(playerPos.X, playerPos.Y, playerCol.Radius, pos.X, pos.Y, col.Radius) {
			continue
		}

		enemy, ok := ecs.GetComponent[*components.EnemyComponent](cs.entityManager, enemyID)
		if !ok {
			continue
		}

		cs.damageSystem.ApplyDamage(playerID, enemy.ContactDamage, components.KillByBullet)
		events = append(events, ContactEvent{EnemyID: enemyID, Damage: enemy.ContactDamage})
	}

	return events
}

// ProbeCheck 对当前实体快照执行干跑检测
// 只读不写：用与实时检测相同的几何逻辑统计重叠对数，
// 结果以结构化形式返回，任何异常都转为 {OK:false}，永不 panic 向上传播
func (cs *CollisionSystem) ProbeCheck(opts ProbeOptions) (result ProbeResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ProbeResult{OK: false, Error: fmt.Sprintf("probe panicked: %v", r)}
		}
	}()

	if !opts.DryRun {
		return ProbeResult{OK: false, Error: "only dry-run probes are supported"}
	}

	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](cs.entityManager)
	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](cs.entityManager)
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](cs.entityManager)

	targets := make([]ecs.EntityID, 0, len(enemies)+len(players))
	targets = append(targets, enemies...)
	targets = append(targets, players...)

	overlaps := 0
	for _, bulletID := range bullets {
		bulletPos, bulletCol, ok := cs.geometry(bulletID)
		if !ok {
			// 畸形实体在实时路径中会被跳过，探针同样跳过但如实上报
			return ProbeResult{
				OK:      false,
				Error:   fmt.Sprintf("bullet %d is missing geometry", bulletID),
				Bullets: len(bullets),
				Targets: len(targets),
			}
		}
		for _, targetID := range targets {
			pos, col, ok := cs.geometry(targetID)
			if !ok {
				return ProbeResult{
					OK:      false,
					Error:   fmt.Sprintf("target %d is missing geometry", targetID),
					Bullets: len(bullets),
					Targets: len(targets),
				}
			}
			if circlesOverlap(bulletPos.X, bulletPos.Y, bulletCol.Radius, pos.X, pos.Y, col.Radius) {
				overlaps++
			}
		}
	}

	return ProbeResult{
		OK:       true,
		Bullets:  len(bullets),
		Targets:  len(targets),
		Overlaps: overlaps,
	}
}

// resolveBulletsAgainst 子弹在外层、目标在内层的命中结算
// 首个重叠目标获胜；子弹与（死亡的）目标都只做延迟删除标记
func (cs *CollisionSystem) resolveBulletsAgainst(bullets, targets []ecs.EntityID) {
	for _, bulletID := range bullets {
		// 本帧已命中过的子弹不再参与结算（防止重复调用二次结算）
		if cs.entityManager.IsMarkedForRemoval(bulletID) {
			continue
		}

		bullet, ok := ecs.GetComponent[*components.BulletComponent](cs.entityManager, bulletID)
		if !ok {
			continue
		}
		bulletPos, bulletCol, ok := cs.geometry(bulletID)
		if !ok {
			log.Printf("[CollisionSystem] bullet %d is missing geometry, skipped", bulletID)
			continue
		}

		for _, targetID := range targets {
			if cs.entityManager.IsMarkedForRemoval(targetID) {
				continue
			}
			// 子弹不命中发射者自己（误伤检测时）
			if bullet.Source == targetID {
				continue
			}
			pos, col, ok := cs.geometry(targetID)
			if !ok {
				log.Printf("[CollisionSystem] target %d is missing geometry, skipped", targetID)
				continue
			}
			if !circlesOverlap(bulletPos.X, bulletPos.Y, bulletCol.Radius, pos.X, pos.Y, col.Radius) {
				continue
			}

			cs.damageSystem.ApplyBulletHit(bullet, targetID)
			cs.entityManager.DestroyEntity(bulletID)
			break // 每颗子弹每帧最多一次命中
		}
	}
}

// bulletsOfFaction 查询指定阵营的所有子弹
func (cs *CollisionSystem) bulletsOfFaction(faction components.Faction) []ecs.EntityID {
	all := ecs.GetEntitiesWith3[
		*components.BulletComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](cs.entityManager)

	result := all[:0]
	for _, id := range all {
		bullet, ok := ecs.GetComponent[*components.BulletComponent](cs.entityManager, id)
		if ok && bullet.Faction == faction {
			result = append(result, id)
		}
	}
	return result
}

// geometry 获取实体的位置与碰撞组件
func (cs *CollisionSystem) geometry(id ecs.EntityID) (*components.PositionComponent, *components.CollisionComponent, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](cs.entityManager, id)
	if !ok {
		return nil, nil, false
	}
	return pos, col, true
}

// circlesOverlap 圆形重叠判定：中心距离小于半径之和
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return math.Hypot(x1-x2, y1-y2) < r1+r2
}
