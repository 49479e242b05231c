package effects

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/starblitz/pkg/components"
	"github.com/gonewx/starblitz/pkg/config"
)

// Manager 活动效果的工厂与注册表
//
// 所有权说明:
// - Manager 独占其创建的全部 Explosion 与 HazardZone，外部不持有可变引用
// - Update 每帧推进所有效果并在当帧移除 Active 为 false 的条目
// - 危害区的伤害跳动以 DamageTick 切片形式返回，由调用方结算
type Manager struct {
	effectConfig *config.EffectConfig
	hazardConfig config.HazardConfig

	explosions []*Explosion
	hazards    []*HazardZone

	rng *rand.Rand

	drawOpts ebiten.DrawImageOptions // 绘制复用，避免每帧分配
}

// NewManager 创建效果管理器
// 参数：
//
//	effectConfig - 击杀效果配置，nil 时使用内置默认值
//	hazardConfig - 危害区配置
//	rng - 随机数源，nil 时按当前时间播种；测试注入固定种子以获得确定性
func NewManager(effectConfig *config.EffectConfig, hazardConfig config.HazardConfig, rng *rand.Rand) *Manager {
	if effectConfig == nil {
		effectConfig = config.DefaultEffectConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Manager{
		effectConfig: effectConfig,
		hazardConfig: hazardConfig,
		explosions:   make([]*Explosion, 0, 16),
		hazards:      make([]*HazardZone, 0, 4),
		rng:          rng,
	}
}

// AddKillEffect 在 (x, y) 生成一个击杀爆炸
// 按 "{敌机类型}-{击杀方式}" 查找效果表，未命中时回退到通用条目
func (m *Manager) AddKillEffect(x, y float64, enemyType components.EnemyType, method components.KillMethod) {
	key := fmt.Sprintf("%s-%s", enemyType, method)
	profile, ok := m.effectConfig.Profiles[key]
	if !ok {
		profile = m.effectConfig.Profiles[config.FallbackProfileKey]
		key = config.FallbackProfileKey
	}

	explosion := &Explosion{
		Kind:           key,
		X:              x,
		Y:              y,
		MaxTimer:       profile.MaxTimer,
		Active:         true,
		FlashIntensity: profile.FlashIntensity,
		Color:          profile.Color,
		Particles:      make([]Particle, 0, profile.ParticleCount+profile.ArmorFragments),
	}

	for i := 0; i < profile.ParticleCount; i++ {
		explosion.Particles = append(explosion.Particles, m.newBurstParticle(x, y, &profile, false))
	}

	// 重型击杀的附加元素：护甲碎片、冲击波、能量环闪光
	for i := 0; i < profile.ArmorFragments; i++ {
		explosion.Particles = append(explosion.Particles, m.newFragmentParticle(x, y, &profile))
	}

	if profile.Shockwave != nil {
		explosion.Shockwave = &Shockwave{
			MaxRadius:   profile.Shockwave.MaxRadius,
			ExpandSpeed: profile.Shockwave.ExpandSpeed,
		}
	}

	if profile.EnergySparkles > 0 {
		explosion.Sparkles = make([]EnergySparkle, 0, profile.EnergySparkles)
		for i := 0; i < profile.EnergySparkles; i++ {
			angle := 2 * math.Pi * float64(i) / float64(profile.EnergySparkles)
			life := m.randInt(20, 36)
			explosion.Sparkles = append(explosion.Sparkles, EnergySparkle{
				Angle:       angle,
				MaxRadius:   profile.MaxRadiusForSparkles(),
				ExpandSpeed: m.randFloat(1.5, 3.0),
				Size:        m.randFloat(1.5, 3.0),
				Life:        life,
				MaxLife:     life,
			})
		}
	}

	m.explosions = append(m.explosions, explosion)
}

// AddFragmentEffect 在 (x, y) 生成护甲板击碎的碎片效果
// 由护甲系统在护甲板破碎时请求，比击杀爆炸小得多
func (m *Manager) AddFragmentEffect(x, y float64, enemyType components.EnemyType) {
	profile := config.EffectProfile{
		MaxTimer: 24,
		SpeedMin: 0.8, SpeedMax: 3.0,
		SizeMin: 1.5, SizeMax: 3.0,
		LifeMin: 14, LifeMax: 24,
	}

	explosion := &Explosion{
		Kind:      fmt.Sprintf("%s-armor-break", enemyType),
		X:         x,
		Y:         y,
		MaxTimer:  profile.MaxTimer,
		Active:    true,
		Color:     [3]uint8{200, 200, 210},
		Particles: make([]Particle, 0, 5),
	}

	for i := 0; i < 5; i++ {
		explosion.Particles = append(explosion.Particles, m.newFragmentParticle(x, y, &profile))
	}

	m.explosions = append(m.explosions, explosion)
}

// SpawnHazard 在 (x, y) 生成一个危害区
func (m *Manager) SpawnHazard(kind HazardKind, x, y float64) {
	var stats config.HazardStats
	switch kind {
	case HazardRadioactiveDebris:
		stats = m.hazardConfig.RadioactiveDebris
	default:
		stats = m.hazardConfig.PlasmaCloud
	}

	m.hazards = append(m.hazards, &HazardZone{
		Kind:           kind,
		X:              x,
		Y:              y,
		DamageRadius:   stats.DamageRadius,
		VisualRadius:   stats.VisualRadius,
		MaxTimer:       stats.MaxTimer,
		DamageInterval: stats.DamageInterval,
		DamagePerTick:  stats.DamagePerTick,
		Active:         true,
	})
	log.Printf("[Effects] spawn hazard %s at (%.0f, %.0f)", kind, x, y)
}

// Update 推进所有效果一帧并移除已终止的条目
// 返回本帧所有危害区产生的伤害跳动，由调用方结算到半径内的实体
func (m *Manager) Update() []DamageTick {
	aliveExplosions := m.explosions[:0]
	for _, e := range m.explosions {
		e.Update()
		if e.Active {
			aliveExplosions = append(aliveExplosions, e)
		}
	}
	// 置空尾部引用，避免已终止的效果被切片底层数组滞留
	for i := len(aliveExplosions); i < len(m.explosions); i++ {
		m.explosions[i] = nil
	}
	m.explosions = aliveExplosions

	var ticks []DamageTick
	aliveHazards := m.hazards[:0]
	for _, h := range m.hazards {
		if tick := h.Update(); tick != nil {
			ticks = append(ticks, *tick)
		}
		if h.Active {
			aliveHazards = append(aliveHazards, h)
		}
	}
	for i := len(aliveHazards); i < len(m.hazards); i++ {
		m.hazards[i] = nil
	}
	m.hazards = aliveHazards

	return ticks
}

// Draw 绘制所有活动效果，危害区在爆炸之下
// 纯渲染，无任何游戏逻辑副作用
func (m *Manager) Draw(screen *ebiten.Image) {
	for _, h := range m.hazards {
		h.Draw(screen, &m.drawOpts)
	}
	for _, e := range m.explosions {
		e.Draw(screen, &m.drawOpts)
	}
}

// ActiveEffectCount 返回活动爆炸效果数量（探针与测试用）
func (m *Manager) ActiveEffectCount() int {
	return len(m.explosions)
}

// ActiveHazardCount 返回活动危害区数量（探针与测试用）
func (m *Manager) ActiveHazardCount() int {
	return len(m.hazards)
}

// Hazards 返回当前活动危害区的只读视图（测试用）
func (m *Manager) Hazards() []*HazardZone {
	return m.hazards
}

// Explosions 返回当前活动爆炸效果的只读视图（测试用）
func (m *Manager) Explosions() []*Explosion {
	return m.explosions
}

// newBurstParticle 生成一个按配置区间随机化的爆炸粒子
func (m *Manager) newBurstParticle(x, y float64, profile *config.EffectProfile, sparkle bool) Particle {
	angle := m.randFloat(0, 2*math.Pi)
	speed := m.randFloat(profile.SpeedMin, profile.SpeedMax)
	life := m.randInt(profile.LifeMin, profile.LifeMax)

	return Particle{
		X:             x,
		Y:             y,
		VX:            math.Cos(angle) * speed,
		VY:            math.Sin(angle) * speed,
		Size:          m.randFloat(profile.SizeMin, profile.SizeMax),
		Life:          life,
		MaxLife:       life,
		RotationSpeed: m.randFloat(-0.2, 0.2),
		Gravity:       particleGravity,
		Friction:      particleFriction,
		Color:         profile.Color,
		Sparkle:       sparkle,
	}
}

// newFragmentParticle 生成一个护甲碎片粒子（更重，旋转更快）
func (m *Manager) newFragmentParticle(x, y float64, profile *config.EffectProfile) Particle {
	angle := m.randFloat(0, 2*math.Pi)
	speed := m.randFloat(profile.SpeedMin, profile.SpeedMax) * 1.2
	life := m.randInt(profile.LifeMin, profile.LifeMax)

	return Particle{
		X:             x,
		Y:             y,
		VX:            math.Cos(angle) * speed,
		VY:            math.Sin(angle)*speed - 1.0, // 碎片略微上抛
		Size:          m.randFloat(2.0, 4.0),
		Life:          life,
		MaxLife:       life,
		Rotation:      m.randFloat(0, 2*math.Pi),
		RotationSpeed: m.randFloat(-0.4, 0.4),
		Gravity:       fragmentGravity,
		Friction:      fragmentFriction,
		Color:         [3]uint8{200, 200, 210},
		IsArmor:       true,
	}
}

// randFloat 返回 [min, max) 内的均匀随机浮点数
func (m *Manager) randFloat(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + m.rng.Float64()*(max-min)
}

// randInt 返回 [min, max] 内的均匀随机整数
func (m *Manager) randInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + m.rng.Intn(max-min+1)
}
