package effects

import (
	"math/rand"
	"testing"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
)

// newTestManager 构造一个带固定随机种子的管理器，保证测试确定性
func newTestManager() *Manager {
	return NewManager(
		config.DefaultEffectConfig(),
		config.DefaultCombatConfig().Hazards,
		rand.New(rand.NewSource(1)),
	)
}

func TestAddKillEffectUsesProfile(t *testing.T) {
	m := newTestManager()

	m.AddKillEffect(100, 100, components.EnemyGrunt, components.KillByBullet)

	if m.ActiveEffectCount() != 1 {
		t.Fatalf("Expected 1 active effect, got %d", m.ActiveEffectCount())
	}

	e := m.Explosions()[0]
	if e.Kind != "grunt-bullet" {
		t.Errorf("Effect kind should be grunt-bullet, got %s", e.Kind)
	}
	// grunt-bullet 条目：3 个粒子，计时上限 20 帧
	if len(e.Particles) != 3 {
		t.Errorf("grunt-bullet should spawn 3 particles, got %d", len(e.Particles))
	}
	if e.MaxTimer != 20 {
		t.Errorf("grunt-bullet maxTimer should be 20, got %d", e.MaxTimer)
	}
}

func TestAddKillEffectFallback(t *testing.T) {
	m := newTestManager()

	// rusher-plasma 没有专属条目，应该回退到通用条目
	m.AddKillEffect(50, 50, components.EnemyRusher, components.KillByPlasma)

	if m.ActiveEffectCount() != 1 {
		t.Fatalf("Expected 1 active effect, got %d", m.ActiveEffectCount())
	}
	if kind := m.Explosions()[0].Kind; kind != config.FallbackProfileKey {
		t.Errorf("Unknown combo should fall back to %q, got %s", config.FallbackProfileKey, kind)
	}
}

func TestAddKillEffectHeavyExtras(t *testing.T) {
	m := newTestManager()

	m.AddKillEffect(0, 0, components.EnemyTank, components.KillByPlasma)

	e := m.Explosions()[0]
	if e.Shockwave == nil {
		t.Fatal("tank-plasma effect should carry a shockwave")
	}
	if len(e.Sparkles) == 0 {
		t.Error("tank-plasma effect should carry energy sparkles")
	}
}

func TestAddFragmentEffect(t *testing.T) {
	m := newTestManager()

	m.AddFragmentEffect(10, 20, components.EnemyTank)

	if m.ActiveEffectCount() != 1 {
		t.Fatalf("Expected 1 active effect, got %d", m.ActiveEffectCount())
	}
	e := m.Explosions()[0]
	if e.Kind != "tank-armor-break" {
		t.Errorf("Fragment effect kind mismatch: %s", e.Kind)
	}
	for i := range e.Particles {
		if !e.Particles[i].IsArmor {
			t.Errorf("Particle %d should be an armor fragment", i)
		}
	}
}

// TestManagerRemovesFinishedEffects 效果在终止当帧即被移除
func TestManagerRemovesFinishedEffects(t *testing.T) {
	m := newTestManager()
	m.AddKillEffect(100, 100, components.EnemyGrunt, components.KillByBullet)

	// grunt-bullet 粒子寿命上限 24 帧，上界之内必然清空
	for frame := 0; frame < 64; frame++ {
		m.Update()
		if m.ActiveEffectCount() == 0 {
			return
		}
	}
	t.Fatal("Effect was never removed")
}

func TestSpawnHazard(t *testing.T) {
	m := newTestManager()

	m.SpawnHazard(HazardPlasmaCloud, 200, 200)

	if m.ActiveHazardCount() != 1 {
		t.Fatalf("Expected 1 hazard, got %d", m.ActiveHazardCount())
	}

	h := m.Hazards()[0]
	if h.Kind != HazardPlasmaCloud {
		t.Errorf("Hazard kind mismatch: %s", h.Kind)
	}
	// 参数来自配置
	if h.DamageRadius != 80 || h.VisualRadius != 110 {
		t.Errorf("Hazard radii mismatch: damage %f visual %f", h.DamageRadius, h.VisualRadius)
	}
	if h.DamageRadius >= h.VisualRadius {
		t.Error("DamageRadius must be strictly less than VisualRadius")
	}
}

// TestManagerCollectsHazardTicks 危害区跳动由 Update 统一上报
func TestManagerCollectsHazardTicks(t *testing.T) {
	m := newTestManager()
	m.SpawnHazard(HazardPlasmaCloud, 0, 0) // 间隔 30 帧

	total := 0
	for frame := 1; frame <= 60; frame++ {
		ticks := m.Update()
		total += len(ticks)
		if frame%30 == 0 && len(ticks) != 1 {
			t.Errorf("Expected 1 tick at frame %d, got %d", frame, len(ticks))
		}
	}
	if total != 2 {
		t.Errorf("Expected 2 ticks over 60 frames, got %d", total)
	}
}

// TestManagerRemovesExpiredHazards 过期危害区当帧移除
func TestManagerRemovesExpiredHazards(t *testing.T) {
	m := newTestManager()
	m.SpawnHazard(HazardRadioactiveDebris, 0, 0)

	maxTimer := m.Hazards()[0].MaxTimer
	for frame := 1; frame <= maxTimer; frame++ {
		m.Update()
	}
	if m.ActiveHazardCount() != 0 {
		t.Errorf("Hazard should be removed after %d frames", maxTimer)
	}
}
