package config

import (
	"fmt"

	"github.com/gonewx/starblitz/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌机类型的属性配置
type EnemyStats struct {
	Health        int     `yaml:"health"`        // 本体血量
	Radius        float64 `yaml:"radius"`        // 碰撞半径（像素）
	ContactDamage int     `yaml:"contactDamage"` // 接触伤害
}

// BulletStats 子弹属性配置
type BulletStats struct {
	Damage         int     `yaml:"damage"`         // 命中伤害
	Radius         float64 `yaml:"radius"`         // 碰撞半径（像素）
	Speed          float64 `yaml:"speed"`          // 飞行速度（像素/帧）
	LifetimeFrames int     `yaml:"lifetimeFrames"` // 最大存活帧数
}

// ArmorConfig 方向护甲与仇恨机制配置
type ArmorConfig struct {
	PlateHP             int `yaml:"plateHP"`             // 每块护甲板的护甲值
	AngerThreshold      int `yaml:"angerThreshold"`      // 触发激怒所需的误伤命中次数
	AngerCooldownFrames int `yaml:"angerCooldownFrames"` // 激怒冷却（帧）
}

// HazardStats 单个危害区类型的参数
//
// 不变式: DamageRadius 必须严格小于 VisualRadius，
// 渲染范围只允许夸大判定范围，不允许缩小
type HazardStats struct {
	MaxTimer       int     `yaml:"maxTimer"`       // 存活帧数
	DamageInterval int     `yaml:"damageInterval"` // 伤害跳动间隔（帧）
	DamagePerTick  int     `yaml:"damagePerTick"`  // 每跳伤害
	DamageRadius   float64 `yaml:"damageRadius"`   // 判定半径（像素）
	VisualRadius   float64 `yaml:"visualRadius"`   // 渲染半径（像素）
}

// BulletConfig 双方子弹配置
type BulletConfig struct {
	Player BulletStats `yaml:"player"` // 玩家子弹
	Enemy  BulletStats `yaml:"enemy"`  // 敌方子弹
}

// HazardConfig 危害区配置
type HazardConfig struct {
	PlasmaCloud       HazardStats `yaml:"plasmaCloud"`       // 等离子云
	RadioactiveDebris HazardStats `yaml:"radioactiveDebris"` // 放射性残骸
}

// CombatConfig 战斗核心配置文件结构
type CombatConfig struct {
	Enemies      map[string]EnemyStats `yaml:"enemies"`      // 敌机类型到属性的映射
	Armor        ArmorConfig           `yaml:"armor"`        // 护甲与仇恨配置
	Bullets      BulletConfig          `yaml:"bullets"`      // 子弹配置
	FriendlyFire bool                  `yaml:"friendlyFire"` // 敌方子弹是否误伤敌机
	Hazards      HazardConfig          `yaml:"hazards"`      // 危害区配置
}

// requiredEnemyTypes 配置文件必须覆盖的敌机类型
var requiredEnemyTypes = []string{"grunt", "rusher", "stabber", "tank"}

// LoadCombatConfig 从嵌入的 YAML 文件加载战斗配置
// 参数：
//
//	filepath - 配置文件路径（如 "data/combat.yaml"）
//
// 返回：
//
//	*CombatConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadCombatConfig(filepath string) (*CombatConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read combat config %s: %w", filepath, err)
	}

	var config CombatConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse combat config YAML from %s: %w", filepath, err)
	}

	if err := validateCombatConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid combat config in %s: %w", filepath, err)
	}

	return &config, nil
}

// DefaultCombatConfig 返回内置默认战斗配置
// 嵌入资源不可用时（如单元测试）的降级路径，数值与 data/combat.yaml 保持一致
func DefaultCombatConfig() *CombatConfig {
	return &CombatConfig{
		Enemies: map[string]EnemyStats{
			"grunt":   {Health: 30, Radius: 14, ContactDamage: 10},
			"rusher":  {Health: 20, Radius: 12, ContactDamage: 15},
			"stabber": {Health: 25, Radius: 12, ContactDamage: 20},
			"tank":    {Health: 200, Radius: 26, ContactDamage: 25},
		},
		Armor: ArmorConfig{
			PlateHP:             120,
			AngerThreshold:      3,
			AngerCooldownFrames: 600,
		},
		Bullets: BulletConfig{
			Player: BulletStats{Damage: 15, Radius: 4, Speed: 8.0, LifetimeFrames: 120},
			Enemy:  BulletStats{Damage: 10, Radius: 4, Speed: 5.0, LifetimeFrames: 180},
		},
		FriendlyFire: true,
		Hazards: HazardConfig{
			PlasmaCloud:       HazardStats{MaxTimer: 300, DamageInterval: 30, DamagePerTick: 15, DamageRadius: 80, VisualRadius: 110},
			RadioactiveDebris: HazardStats{MaxTimer: 900, DamageInterval: 45, DamagePerTick: 8, DamageRadius: 60, VisualRadius: 85},
		},
	}
}

// validateCombatConfig 验证战斗配置的完整性和合法性
func validateCombatConfig(config *CombatConfig) error {
	for _, enemyType := range requiredEnemyTypes {
		stats, ok := config.Enemies[enemyType]
		if !ok {
			return fmt.Errorf("missing enemy type %q", enemyType)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %d", enemyType, stats.Health)
		}
		if stats.Radius <= 0 {
			return fmt.Errorf("enemy %s: radius must be positive, got %f", enemyType, stats.Radius)
		}
		if stats.ContactDamage < 0 {
			return fmt.Errorf("enemy %s: contactDamage cannot be negative, got %d", enemyType, stats.ContactDamage)
		}
	}

	if config.Armor.PlateHP <= 0 {
		return fmt.Errorf("armor: plateHP must be positive, got %d", config.Armor.PlateHP)
	}
	if config.Armor.AngerThreshold < 1 {
		return fmt.Errorf("armor: angerThreshold must be at least 1, got %d", config.Armor.AngerThreshold)
	}

	for name, bullet := range map[string]BulletStats{"player": config.Bullets.Player, "enemy": config.Bullets.Enemy} {
		if bullet.Damage <= 0 {
			return fmt.Errorf("bullet %s: damage must be positive, got %d", name, bullet.Damage)
		}
		if bullet.Radius <= 0 {
			return fmt.Errorf("bullet %s: radius must be positive, got %f", name, bullet.Radius)
		}
		if bullet.LifetimeFrames <= 0 {
			return fmt.Errorf("bullet %s: lifetimeFrames must be positive, got %d", name, bullet.LifetimeFrames)
		}
	}

	for name, hazard := range map[string]HazardStats{"plasmaCloud": config.Hazards.PlasmaCloud, "radioactiveDebris": config.Hazards.RadioactiveDebris} {
		if hazard.MaxTimer <= 0 {
			return fmt.Errorf("hazard %s: maxTimer must be positive, got %d", name, hazard.MaxTimer)
		}
		if hazard.DamageInterval <= 0 {
			return fmt.Errorf("hazard %s: damageInterval must be positive, got %d", name, hazard.DamageInterval)
		}
		if hazard.DamagePerTick <= 0 {
			return fmt.Errorf("hazard %s: damagePerTick must be positive, got %d", name, hazard.DamagePerTick)
		}
		if hazard.DamageRadius <= 0 {
			return fmt.Errorf("hazard %s: damageRadius must be positive, got %f", name, hazard.DamageRadius)
		}
		// 判定半径必须严格小于渲染半径，防止"看不见的判定"
		if hazard.DamageRadius >= hazard.VisualRadius {
			return fmt.Errorf("hazard %s: damageRadius (%f) must be strictly less than visualRadius (%f)",
				name, hazard.DamageRadius, hazard.VisualRadius)
		}
	}

	return nil
}
