// Package app 提供游戏应用的核心包装器
//
// 该包把战斗核心的初始化和帧循环编排从 main 包提取出来。
// 每帧严格按固定顺序推进：
// 输入/移动 → 碰撞检测 → 伤害结算 → 效果推进与危害区跳动 → 帧末清理 → 渲染
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
	"github.com/gonewx/starblitz/pkg/effects"
	"github.com/gonewx/starblitz/pkg/entities"
	"github.com/gonewx/starblitz/pkg/game"
	"github.com/gonewx/starblitz/pkg/systems"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 960
	ScreenHeight = 640
)

// 玩家操作参数
const (
	playerSpeed        = 3.5
	fireCooldownFrames = 8
	// 接触伤害限频：本核心每帧如实上报重叠，节流在这里完成
	contactInvulnFrames = 30
	enemySpawnInterval  = 150
	enemyFireInterval   = 90
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager
	combatConfig  *config.CombatConfig

	effectManager *effects.Manager
	camera        *game.Camera
	floatingText  *game.FloatingTextManager
	audioManager  *game.AudioManager

	movementSystem  *systems.MovementSystem
	collisionSystem *systems.CollisionSystem
	damageSystem    *systems.DamageSystem
	lifetimeSystem  *systems.LifetimeSystem
	flashSystem     *systems.FlashEffectSystem
	renderSystem    *systems.RenderSystem

	playerID ecs.EntityID
	rng      *rand.Rand

	frame           int
	fireCooldown    int
	contactCooldown int
	plasmaMode      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config, settings *game.SettingsManager) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	combatConfig, err := config.LoadCombatConfig("data/combat.yaml")
	if err != nil {
		return nil, fmt.Errorf("战斗配置加载失败: %w", err)
	}
	effectConfig, err := config.LoadEffectConfig("data/effects.yaml")
	if err != nil {
		return nil, fmt.Errorf("效果配置加载失败: %w", err)
	}

	// 设置中的误伤开关覆盖配置文件
	friendlyFire := combatConfig.FriendlyFire
	if settings != nil {
		friendlyFire = settings.GetSettings().FriendlyFire
	}

	a := &App{
		entityManager: ecs.NewEntityManager(),
		combatConfig:  combatConfig,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	audioContext := audio.NewContext(48000)
	a.audioManager = game.NewAudioManager(audioContext, settings)
	a.camera = game.NewCamera(a.rng)
	a.floatingText = game.NewFloatingTextManager()

	a.effectManager = effects.NewManager(effectConfig, combatConfig.Hazards, a.rng)

	armorSystem := systems.NewArmorSystem(a.entityManager, a.effectManager, combatConfig.Armor,
		a.audioManager, a.camera, a.floatingText)
	a.damageSystem = systems.NewDamageSystem(a.entityManager, a.effectManager, armorSystem,
		a.audioManager, a.camera, a.floatingText)
	a.collisionSystem = systems.NewCollisionSystem(a.entityManager, a.damageSystem, friendlyFire)

	a.movementSystem = systems.NewMovementSystem(a.entityManager)
	a.lifetimeSystem = systems.NewLifetimeSystem(a.entityManager, ScreenWidth, ScreenHeight)
	a.flashSystem = systems.NewFlashEffectSystem(a.entityManager)
	a.renderSystem = systems.NewRenderSystem(a.entityManager)

	playerID, err := entities.NewPlayer(a.entityManager, ScreenWidth/2, ScreenHeight-80)
	if err != nil {
		return nil, fmt.Errorf("玩家创建失败: %w", err)
	}
	a.playerID = playerID

	log.Printf("[App] combat core initialized (friendlyFire=%v)", friendlyFire)
	return a, nil
}

// Update 推进一帧游戏逻辑
func (a *App) Update() error {
	a.frame++

	// 1. 输入与移动
	a.handleInput()
	a.movementSystem.Update()
	a.spawnEnemies()
	a.enemyFire()

	// 2. 碰撞检测
	a.collisionSystem.CheckBulletCollisions()
	if a.contactCooldown > 0 {
		a.contactCooldown--
	} else if events := a.collisionSystem.CheckContactCollisions(); len(events) > 0 {
		a.contactCooldown = contactInvulnFrames
	}

	// 3. 效果推进与危害区跳动结算
	ticks := a.effectManager.Update()
	a.damageSystem.ApplyHazardTicks(ticks)

	// 4. 附属状态推进
	a.lifetimeSystem.Update()
	a.flashSystem.Update()
	a.camera.Update()
	a.floatingText.Update()

	// 5. 帧末清理：所有延迟删除在这里统一执行
	a.entityManager.RemoveMarkedEntities()

	return nil
}

// Draw 渲染一帧
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 24, A: 255})

	ox, oy := a.camera.Offset()
	a.effectManager.Draw(screen)
	a.renderSystem.Draw(screen, ox, oy)
	a.floatingText.Draw(screen)

	a.drawHUD(screen)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// handleInput 处理玩家移动与开火
func (a *App) handleInput() {
	vel, ok := ecs.GetComponent[*components.VelocityComponent](a.entityManager, a.playerID)
	if !ok {
		return
	}

	vel.VX, vel.VY = 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		vel.VX = -playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		vel.VX = playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		vel.VY = -playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		vel.VY = playerSpeed
	}

	// Tab 切换普通子弹/等离子
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.plasmaMode = !a.plasmaMode
	}

	if a.fireCooldown > 0 {
		a.fireCooldown--
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) && a.fireCooldown == 0 {
		a.firePlayerBullet()
		a.fireCooldown = fireCooldownFrames
	}
}

// firePlayerBullet 从玩家位置向上发射一颗子弹
func (a *App) firePlayerBullet() {
	pos, ok := ecs.GetComponent[*components.PositionComponent](a.entityManager, a.playerID)
	if !ok {
		return
	}

	method := components.KillByBullet
	if a.plasmaMode {
		method = components.KillByPlasma
	}

	if _, err := entities.NewBullet(a.entityManager, a.combatConfig.Bullets.Player,
		components.FactionPlayer, a.playerID, pos.X, pos.Y-16, -math.Pi/2, method); err != nil {
		log.Printf("[App] failed to fire bullet: %v", err)
		return
	}
	a.audioManager.PlaySound("shoot", pos.X, pos.Y)
}

// spawnEnemies 周期性生成一波敌机（演示用的简单节奏）
func (a *App) spawnEnemies() {
	if a.frame%enemySpawnInterval != 1 {
		return
	}

	roll := a.rng.Intn(10)
	enemyType := components.EnemyGrunt
	switch {
	case roll >= 8:
		enemyType = components.EnemyTank
	case roll >= 6:
		enemyType = components.EnemyStabber
	case roll >= 4:
		enemyType = components.EnemyRusher
	}

	x := 80 + a.rng.Float64()*(ScreenWidth-160)
	// 敌机朝下半场（朝玩家方向）
	if id, err := entities.NewEnemy(a.entityManager, a.combatConfig, enemyType, x, 80, math.Pi/2); err != nil {
		log.Printf("[App] failed to spawn enemy: %v", err)
	} else {
		ecs.AddComponent(a.entityManager, id, &components.VelocityComponent{VY: 0.4})
	}
}

// enemyFire 敌机周期性朝玩家方向开火；偶尔的流弹会打中其他敌机，
// 这正是仇恨机制的触发来源
func (a *App) enemyFire() {
	if a.frame%enemyFireInterval != 0 {
		return
	}

	playerPos, ok := ecs.GetComponent[*components.PositionComponent](a.entityManager, a.playerID)
	if !ok {
		return
	}

	enemyIDs := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](a.entityManager)
	for _, id := range enemyIDs {
		if a.rng.Intn(3) != 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](a.entityManager, id)
		angle := math.Atan2(playerPos.Y-pos.Y, playerPos.X-pos.X)
		// 散布让一部分子弹成为误伤流弹
		angle += (a.rng.Float64()*2 - 1) * 0.35

		if _, err := entities.NewBullet(a.entityManager, a.combatConfig.Bullets.Enemy,
			components.FactionEnemy, id, pos.X, pos.Y, angle, components.KillByBullet); err != nil {
			log.Printf("[App] enemy %d failed to fire: %v", id, err)
		}
	}
}

// drawHUD 绘制调试信息
func (a *App) drawHUD(screen *ebiten.Image) {
	health := 0
	if hp, ok := ecs.GetComponent[*components.HealthComponent](a.entityManager, a.playerID); ok {
		health = hp.CurrentHealth
	}
	weapon := "bullet"
	if a.plasmaMode {
		weapon = "plasma"
	}
	msg := fmt.Sprintf("HP %d  weapon %s (Tab)  effects %d  hazards %d",
		health, weapon, a.effectManager.ActiveEffectCount(), a.effectManager.ActiveHazardCount())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
