package entities

import (
	"math"
	"testing"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
	"github.com/gonewx/starblitz/pkg/ecs"
)

func TestNewEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultCombatConfig()

	id, err := NewEnemy(em, cfg, components.EnemyGrunt, 100, 50, math.Pi/2)
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		t.Fatal("Enemy should have a health component")
	}
	if health.CurrentHealth != 30 {
		t.Errorf("Grunt health should be 30, got %d", health.CurrentHealth)
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	if enemy.Type != components.EnemyGrunt {
		t.Errorf("Enemy type mismatch: %s", enemy.Type)
	}
	if enemy.FacingAngle != math.Pi/2 {
		t.Errorf("Facing angle mismatch: %f", enemy.FacingAngle)
	}
	if enemy.ContactDamage != 10 {
		t.Errorf("Grunt contact damage should be 10, got %d", enemy.ContactDamage)
	}

	// 普通敌机没有护甲与仇恨组件
	if ecs.HasComponent[*components.ArmorComponent](em, id) {
		t.Error("Grunt should not have armor")
	}
	if ecs.HasComponent[*components.AngerComponent](em, id) {
		t.Error("Grunt should not have an anger component")
	}
}

// TestNewEnemyTank 重装敌机携带满血方向护甲与仇恨状态
func TestNewEnemyTank(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultCombatConfig()

	id, err := NewEnemy(em, cfg, components.EnemyTank, 0, 0, 0)
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}

	armor, ok := ecs.GetComponent[*components.ArmorComponent](em, id)
	if !ok {
		t.Fatal("Tank should have armor")
	}
	if armor.LivePlates() != int(components.PlateCount) {
		t.Errorf("All plates should start intact, got %d", armor.LivePlates())
	}
	for i := range armor.Plates {
		if armor.Plates[i].HP != cfg.Armor.PlateHP {
			t.Errorf("Plate %d should start at %d HP, got %d", i, cfg.Armor.PlateHP, armor.Plates[i].HP)
		}
	}

	anger, ok := ecs.GetComponent[*components.AngerComponent](em, id)
	if !ok {
		t.Fatal("Tank should have an anger component")
	}
	if anger.AngerThreshold != cfg.Armor.AngerThreshold {
		t.Errorf("Anger threshold should be %d, got %d", cfg.Armor.AngerThreshold, anger.AngerThreshold)
	}
	if anger.IsAngry {
		t.Error("Tank should not start angry")
	}
}

func TestNewEnemyRejectsNilArgs(t *testing.T) {
	if _, err := NewEnemy(nil, config.DefaultCombatConfig(), components.EnemyGrunt, 0, 0, 0); err == nil {
		t.Error("Nil entity manager should be rejected")
	}
	if _, err := NewEnemy(ecs.NewEntityManager(), nil, components.EnemyGrunt, 0, 0, 0); err == nil {
		t.Error("Nil config should be rejected")
	}
}

func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewPlayer(em, 480, 560)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}

	if !ecs.HasComponent[*components.PlayerComponent](em, id) {
		t.Error("Player marker component missing")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 480 || pos.Y != 560 {
		t.Errorf("Player position mismatch: (%f, %f)", pos.X, pos.Y)
	}
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	if health.CurrentHealth != health.MaxHealth {
		t.Error("Player should start at full health")
	}
}

func TestNewBullet(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultCombatConfig()

	shooterID := em.CreateEntity()
	id, err := NewBullet(em, cfg.Bullets.Player, components.FactionPlayer, shooterID,
		100, 200, -math.Pi/2, components.KillByBullet)
	if err != nil {
		t.Fatalf("NewBullet failed: %v", err)
	}

	bullet, ok := ecs.GetComponent[*components.BulletComponent](em, id)
	if !ok {
		t.Fatal("Bullet component missing")
	}
	if bullet.Damage != 15 {
		t.Errorf("Player bullet damage should be 15, got %d", bullet.Damage)
	}
	if bullet.Source != shooterID {
		t.Errorf("Bullet source mismatch: %d", bullet.Source)
	}

	// 速度沿发射角度分解（竖直向上）
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if math.Abs(vel.VX) > 1e-9 {
		t.Errorf("Vertical shot should have no horizontal velocity, got %f", vel.VX)
	}
	if math.Abs(vel.VY+cfg.Bullets.Player.Speed) > 1e-9 {
		t.Errorf("Expected VY %f, got %f", -cfg.Bullets.Player.Speed, vel.VY)
	}

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok {
		t.Fatal("Bullet should carry a lifetime component")
	}
	if lifetime.MaxFrames != cfg.Bullets.Player.LifetimeFrames {
		t.Errorf("Lifetime mismatch: %d", lifetime.MaxFrames)
	}
}
