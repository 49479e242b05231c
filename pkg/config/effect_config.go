package config

import (
	"fmt"

	"github.com/gonewx/starblitz/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// FallbackProfileKey 通用回退条目的键名
// 任何未配置的 "{敌机类型}-{击杀方式}" 组合都回退到该条目
const FallbackProfileKey = "enemy"

// ShockwaveConfig 冲击波环配置
type ShockwaveConfig struct {
	MaxRadius   float64 `yaml:"maxRadius"`   // 最大半径（像素）
	ExpandSpeed float64 `yaml:"expandSpeed"` // 每帧扩张速度（像素/帧）
}

// EffectProfile 单个击杀效果的粒子参数
// 速度/大小/寿命均为区间，生成粒子时在区间内均匀随机取值
type EffectProfile struct {
	ParticleCount  int              `yaml:"particleCount"`  // 粒子数量
	MaxTimer       int              `yaml:"maxTimer"`       // 效果计时上限（帧）
	SpeedMin       float64          `yaml:"speedMin"`       // 粒子初速下限（像素/帧）
	SpeedMax       float64          `yaml:"speedMax"`       // 粒子初速上限（像素/帧）
	SizeMin        float64          `yaml:"sizeMin"`        // 粒子大小下限（像素）
	SizeMax        float64          `yaml:"sizeMax"`        // 粒子大小上限（像素）
	LifeMin        int              `yaml:"lifeMin"`        // 粒子寿命下限（帧）
	LifeMax        int              `yaml:"lifeMax"`        // 粒子寿命上限（帧）
	FlashIntensity float64          `yaml:"flashIntensity"` // 闪光强度 0.0 ~ 1.0
	Color          [3]uint8         `yaml:"color"`          // 粒子基色 RGB
	Shockwave      *ShockwaveConfig `yaml:"shockwave"`      // 冲击波环（可选，仅重型击杀）
	ArmorFragments int              `yaml:"armorFragments"` // 护甲碎片粒子数（可选）
	EnergySparkles int              `yaml:"energySparkles"` // 能量环闪光数（可选）
}

// MaxRadiusForSparkles 返回能量环闪光的最大扩散半径
// 有冲击波时取其最大半径的七成，否则使用固定值
func (p *EffectProfile) MaxRadiusForSparkles() float64 {
	if p.Shockwave != nil {
		return p.Shockwave.MaxRadius * 0.7
	}
	return 60
}

// EffectConfig 击杀效果配置文件结构
type EffectConfig struct {
	Profiles map[string]EffectProfile `yaml:"profiles"` // 效果键到参数的映射
}

// LoadEffectConfig 从嵌入的 YAML 文件加载击杀效果配置
func LoadEffectConfig(filepath string) (*EffectConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect config %s: %w", filepath, err)
	}

	var config EffectConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse effect config YAML from %s: %w", filepath, err)
	}

	if err := validateEffectConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid effect config in %s: %w", filepath, err)
	}

	return &config, nil
}

// DefaultEffectConfig 返回内置默认效果配置
// 嵌入资源不可用时（如单元测试）的降级路径，关键条目与 data/effects.yaml 一致
func DefaultEffectConfig() *EffectConfig {
	return &EffectConfig{
		Profiles: map[string]EffectProfile{
			"grunt-bullet": {
				ParticleCount: 3, MaxTimer: 20,
				SpeedMin: 0.5, SpeedMax: 2.5,
				SizeMin: 1.5, SizeMax: 3.5,
				LifeMin: 14, LifeMax: 24,
				FlashIntensity: 0.4,
				Color:          [3]uint8{255, 168, 64},
			},
			"tank-bullet": {
				ParticleCount: 12, MaxTimer: 40,
				SpeedMin: 1.0, SpeedMax: 4.0,
				SizeMin: 2.0, SizeMax: 5.0,
				LifeMin: 20, LifeMax: 40,
				FlashIntensity: 0.8,
				Color:          [3]uint8{255, 200, 96},
				Shockwave:      &ShockwaveConfig{MaxRadius: 90, ExpandSpeed: 4.5},
				ArmorFragments: 6,
			},
			"tank-plasma": {
				ParticleCount: 16, MaxTimer: 48,
				SpeedMin: 1.2, SpeedMax: 4.5,
				SizeMin: 2.5, SizeMax: 5.5,
				LifeMin: 24, LifeMax: 44,
				FlashIntensity: 1.0,
				Color:          [3]uint8{96, 255, 208},
				Shockwave:      &ShockwaveConfig{MaxRadius: 110, ExpandSpeed: 5.0},
				EnergySparkles: 8,
			},
			FallbackProfileKey: {
				ParticleCount: 4, MaxTimer: 24,
				SpeedMin: 0.5, SpeedMax: 2.5,
				SizeMin: 1.5, SizeMax: 3.5,
				LifeMin: 14, LifeMax: 26,
				FlashIntensity: 0.4,
				Color:          [3]uint8{255, 255, 160},
			},
		},
	}
}

// validateEffectConfig 验证击杀效果配置的完整性和合法性
func validateEffectConfig(config *EffectConfig) error {
	if len(config.Profiles) == 0 {
		return fmt.Errorf("at least one effect profile is required")
	}

	// 回退条目必须存在，否则未知组合没有安全出口
	if _, ok := config.Profiles[FallbackProfileKey]; !ok {
		return fmt.Errorf("missing fallback profile %q", FallbackProfileKey)
	}

	for key, profile := range config.Profiles {
		if profile.ParticleCount <= 0 {
			return fmt.Errorf("profile %s: particleCount must be positive, got %d", key, profile.ParticleCount)
		}
		if profile.MaxTimer <= 0 {
			return fmt.Errorf("profile %s: maxTimer must be positive, got %d", key, profile.MaxTimer)
		}
		if profile.SpeedMin > profile.SpeedMax {
			return fmt.Errorf("profile %s: speedMin (%f) exceeds speedMax (%f)", key, profile.SpeedMin, profile.SpeedMax)
		}
		if profile.SizeMin > profile.SizeMax {
			return fmt.Errorf("profile %s: sizeMin (%f) exceeds sizeMax (%f)", key, profile.SizeMin, profile.SizeMax)
		}
		if profile.LifeMin <= 0 || profile.LifeMin > profile.LifeMax {
			return fmt.Errorf("profile %s: life range [%d, %d] is invalid", key, profile.LifeMin, profile.LifeMax)
		}
		if profile.Shockwave != nil {
			if profile.Shockwave.MaxRadius <= 0 || profile.Shockwave.ExpandSpeed <= 0 {
				return fmt.Errorf("profile %s: shockwave parameters must be positive", key)
			}
		}
	}

	return nil
}
