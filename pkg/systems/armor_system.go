package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/effects"
	"github.com/gonewx/starblitz/pkg/game"
)

// ArmorHitResult 护甲受击结算结果
// 返回 nil 表示本体命中（背面弧区或无可用护甲板），伤害由调用方直接结算
type ArmorHitResult struct {
	Absorbed bool               // 护甲板完全吸收了本次伤害
	Overflow int                // 护甲板击碎后的溢出伤害（Absorbed 为 false 时有效）
	Plate    components.PlateID // 被命中的护甲板
}

// ArmorSystem 方向护甲与仇恨状态机
//
// 受击扇区规则（以敌机朝向为基准）:
//   - 正面护甲板覆盖 ±45°
//   - 左/右护甲板各覆盖相邻的90°扇区
//   - 剩余的背面弧区不经过护甲，伤害直达本体
//
// 已击碎的护甲板不再参与扇区匹配，命中其扇区的伤害同样直达本体
type ArmorSystem struct {
	entityManager *ecs.EntityManager
	effectManager *effects.Manager
	armorConfig   config.ArmorConfig

	// 可选协作者，任何一个都可为 nil
	audio  *game.AudioManager
	camera *game.Camera
	text   *game.FloatingTextManager
}

// NewArmorSystem 创建护甲系统
// audio/camera/text 为可选协作者，传 nil 时对应的反馈静默跳过
func NewArmorSystem(em *ecs.EntityManager, fx *effects.Manager, cfg config.ArmorConfig,
	audio *game.AudioManager, camera *game.Camera, text *game.FloatingTextManager) *ArmorSystem {
	return &ArmorSystem{
		entityManager: em,
		effectManager: fx,
		armorConfig:   cfg,
		audio:         audio,
		camera:        camera,
		text:          text,
	}
}

// ProcessArmorHit 结算一次打在护甲敌机上的伤害
//
// 参数：
//   - enemyID: 被命中的敌机
//   - amount: 原始伤害
//   - bulletAngle: 来弹飞行方向（弧度）
//   - source: 伤害来源实体，仅用于日志；仇恨统计走 HandleAngerForDamage
//
// 返回：
//   - *ArmorHitResult: 护甲结算结果；nil 表示本体命中，由调用方直接扣血
func (s *ArmorSystem) ProcessArmorHit(enemyID ecs.EntityID, amount int, bulletAngle float64, source ecs.EntityID) *ArmorHitResult {
	armor, ok := ecs.GetComponent[*components.ArmorComponent](s.entityManager, enemyID)
	if !ok {
		return nil
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemyID)
	if !ok {
		log.Printf("[ArmorSystem] entity %d has armor but no enemy component, treating as body hit", enemyID)
		return nil
	}

	// 来弹方向取反后相对朝向归一化，得到受击方位角
	impactAngle := normalizeAngle(bulletAngle - enemy.FacingAngle + math.Pi)

	plateID, ok := selectPlate(armor, impactAngle)
	if !ok {
		// 背面弧区或对应护甲板已击碎：本体命中
		return nil
	}

	plate := &armor.Plates[plateID]
	plate.HP -= amount
	if plate.HP > 0 {
		return &ArmorHitResult{Absorbed: true, Plate: plateID}
	}

	// 护甲板击碎：溢出伤害传给下一层，护甲值钳位到 0 且永不恢复
	overflow := -plate.HP
	plate.HP = 0
	plate.Destroyed = true

	log.Printf("[ArmorSystem] enemy %d %s plate destroyed by %d (overflow %d)", enemyID, plateID, source, overflow)
	s.emitBreakFeedback(enemyID, enemy)

	return &ArmorHitResult{Absorbed: false, Overflow: overflow, Plate: plateID}
}

// HandleAngerForDamage 仇恨结算：统计非玩家来源的伤害命中
//
// 只有误伤（敌方阵营来源）参与统计；source 为 0 或玩家实体时直接忽略。
// 某来源的累计命中首次达到阈值且尚未激怒时，触发一次激怒转换：
// 锁定报复目标、启动冷却并请求语音台词。该转换每次激怒周期只发生一次。
func (s *ArmorSystem) HandleAngerForDamage(enemyID ecs.EntityID, source ecs.EntityID) {
	if source == 0 {
		return
	}
	if ecs.HasComponent[*components.PlayerComponent](s.entityManager, source) {
		return
	}

	anger, ok := ecs.GetComponent[*components.AngerComponent](s.entityManager, enemyID)
	if !ok {
		return
	}

	// 计数单调递增，未激怒时从不清零
	anger.DamageTracker[source]++

	if anger.IsAngry {
		return
	}
	if anger.DamageTracker[source] < anger.AngerThreshold {
		return
	}

	anger.IsAngry = true
	anger.AngerTarget = source
	anger.AngerCooldown = s.armorConfig.AngerCooldownFrames

	log.Printf("[ArmorSystem] enemy %d is now angry at %d", enemyID, source)
	s.audio.Speak("You dare shoot ME?!", "tank-anger")
}

// emitBreakFeedback 护甲板击碎时请求外部反馈（效果/震屏/浮动文字/音效）
// 所有协作者都是可选的，缺失时静默跳过
func (s *ArmorSystem) emitBreakFeedback(enemyID ecs.EntityID, enemy *components.EnemyComponent) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
	if !ok {
		return
	}

	if s.effectManager != nil {
		s.effectManager.AddFragmentEffect(pos.X, pos.Y, enemy.Type)
	}
	s.camera.AddShake(5, 18)
	s.text.AddText(pos.X, pos.Y-20, "ARMOR BREAK", color.RGBA{R: 255, G: 220, B: 120, A: 255}, 14)
	s.audio.PlaySound("armor-break", pos.X, pos.Y)
}

// selectPlate 按受击方位角选择护甲板，正面优先于侧面
// 对应扇区的护甲板已击碎时不再匹配（伤害将直达本体）
func selectPlate(armor *components.ArmorComponent, impactAngle float64) (components.PlateID, bool) {
	abs := math.Abs(impactAngle)

	if abs <= math.Pi/4 && !armor.Plates[components.PlateFront].Destroyed {
		return components.PlateFront, true
	}
	if impactAngle > math.Pi/4 && impactAngle <= 3*math.Pi/4 && !armor.Plates[components.PlateLeft].Destroyed {
		return components.PlateLeft, true
	}
	if impactAngle < -math.Pi/4 && impactAngle >= -3*math.Pi/4 && !armor.Plates[components.PlateRight].Destroyed {
		return components.PlateRight, true
	}
	return 0, false
}

// normalizeAngle 将角度归一化到 (-π, π]
func normalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
