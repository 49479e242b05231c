package systems

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/effects"
	"github.com/gonewx/starblitz/pkg/game"
)

// hitFlashFrames 受击闪烁的持续帧数
const hitFlashFrames = 8

// DamageSystem 统一的伤害结算通道
//
// 子弹命中、接触伤害和危害区跳动全部经由本系统结算，保证：
// - 护甲敌机的伤害先经过护甲状态机，本体只承受溢出部分
// - 误伤命中进入仇恨统计
// - 死亡只在这里判定一次：标记延迟删除并请求击杀效果
type DamageSystem struct {
	entityManager *ecs.EntityManager
	effectManager *effects.Manager
	armorSystem   *ArmorSystem

	// 可选协作者，任何一个都可为 nil
	audio  *game.AudioManager
	camera *game.Camera
	text   *game.FloatingTextManager
}

// NewDamageSystem 创建伤害系统
func NewDamageSystem(em *ecs.EntityManager, fx *effects.Manager, armor *ArmorSystem,
	audio *game.AudioManager, camera *game.Camera, text *game.FloatingTextManager) *DamageSystem {
	return &DamageSystem{
		entityManager: em,
		effectManager: fx,
		armorSystem:   armor,
		audio:         audio,
		camera:        camera,
		text:          text,
	}
}

// ApplyBulletHit 结算一次子弹命中
// 护甲敌机先走护甲状态机；敌方来源的命中计入仇恨统计
func (ds *DamageSystem) ApplyBulletHit(bullet *components.BulletComponent, targetID ecs.EntityID) {
	amount := bullet.Damage

	if ecs.HasComponent[*components.ArmorComponent](ds.entityManager, targetID) {
		result := ds.armorSystem.ProcessArmorHit(targetID, amount, bullet.Angle, bullet.Source)
		if result != nil {
			if result.Absorbed {
				amount = 0
			} else {
				amount = result.Overflow
			}
		}
		// result 为 nil 表示本体命中，amount 保持原值
	}

	// 只有误伤参与仇恨统计；玩家来源在 HandleAngerForDamage 内部被忽略
	if bullet.Faction == components.FactionEnemy {
		ds.armorSystem.HandleAngerForDamage(targetID, bullet.Source)
	}

	ds.addHitFlash(targetID)

	if amount > 0 {
		ds.ApplyDamage(targetID, amount, bullet.Method)
	}
}

// ApplyDamage 对实体生命值结算伤害并在必要时判定死亡
// 生命值钳位到 0；死亡实体被标记延迟删除，帧末统一清理
func (ds *DamageSystem) ApplyDamage(targetID ecs.EntityID, amount int, method components.KillMethod) {
	health, ok := ecs.GetComponent[*components.HealthComponent](ds.entityManager, targetID)
	if !ok {
		return
	}
	// 已死亡的实体不再重复结算（同帧内的第二次命中）
	if ds.entityManager.IsMarkedForRemoval(targetID) {
		return
	}

	health.CurrentHealth -= amount
	if health.CurrentHealth < 0 {
		health.CurrentHealth = 0
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](ds.entityManager, targetID); ok {
		ds.text.AddText(pos.X, pos.Y-12, fmt.Sprintf("-%d", amount), color.RGBA{R: 255, G: 96, B: 96, A: 255}, 12)
	}

	if health.CurrentHealth > 0 {
		return
	}

	if ecs.HasComponent[*components.PlayerComponent](ds.entityManager, targetID) {
		// 玩家死亡由上层处理（结算画面等），本核心只保留实体并上报
		log.Printf("[DamageSystem] player %d is down", targetID)
		ds.camera.AddShake(10, 30)
		return
	}

	ds.killEnemy(targetID, method)
}

// ApplyHazardTicks 把危害区的伤害跳动结算到半径内的实体
// 判定为严格小于：目标中心距离恰好等于判定半径时不命中
func (ds *DamageSystem) ApplyHazardTicks(ticks []effects.DamageTick) {
	if len(ticks) == 0 {
		return
	}

	targets := ecs.GetEntitiesWith2[*components.HealthComponent, *components.PositionComponent](ds.entityManager)

	for _, tick := range ticks {
		for _, targetID := range targets {
			pos, ok := ecs.GetComponent[*components.PositionComponent](ds.entityManager, targetID)
			if !ok {
				continue
			}
			if math.Hypot(pos.X-tick.X, pos.Y-tick.Y) >= tick.Radius {
				continue
			}
			ds.addHitFlash(targetID)
			ds.ApplyDamage(targetID, tick.Damage, components.KillByPlasma)
		}
	}
}

// killEnemy 敌机死亡处理：标记删除、请求击杀效果与后续危害区
func (ds *DamageSystem) killEnemy(enemyID ecs.EntityID, method components.KillMethod) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](ds.entityManager, enemyID)
	if !ok {
		ds.entityManager.DestroyEntity(enemyID)
		return
	}
	pos, hasPos := ecs.GetComponent[*components.PositionComponent](ds.entityManager, enemyID)

	ds.entityManager.DestroyEntity(enemyID)

	if !hasPos || ds.effectManager == nil {
		return
	}

	ds.effectManager.AddKillEffect(pos.X, pos.Y, enemy.Type, method)
	ds.audio.PlaySound(fmt.Sprintf("kill-%s", enemy.Type), pos.X, pos.Y)

	if enemy.Type == components.EnemyTank {
		ds.camera.AddShake(8, 24)
		// 重装敌机的等离子死亡留下持续伤害的等离子云
		if method == components.KillByPlasma {
			ds.effectManager.SpawnHazard(effects.HazardPlasmaCloud, pos.X, pos.Y)
		}
	}
}

// addHitFlash 为受击实体附加闪烁效果
func (ds *DamageSystem) addHitFlash(targetID ecs.EntityID) {
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](ds.entityManager, targetID); ok {
		flash.Frames = hitFlashFrames
		flash.MaxFrames = hitFlashFrames
		flash.IsActive = true
		return
	}
	ds.entityManager.AddComponent(targetID, &components.FlashEffectComponent{
		Frames:    hitFlashFrames,
		MaxFrames: hitFlashFrames,
		IsActive:  true,
	})
}
