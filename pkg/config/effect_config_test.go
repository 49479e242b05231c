package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultEffectConfig(t *testing.T) {
	config := DefaultEffectConfig()

	if err := validateEffectConfig(config); err != nil {
		t.Fatalf("DefaultEffectConfig should be valid: %v", err)
	}

	// 轻型击杀条目：小爆发
	grunt, ok := config.Profiles["grunt-bullet"]
	if !ok {
		t.Fatal("grunt-bullet profile should exist")
	}
	if grunt.ParticleCount != 3 {
		t.Errorf("grunt-bullet particleCount should be 3, got %d", grunt.ParticleCount)
	}
	if grunt.MaxTimer != 20 {
		t.Errorf("grunt-bullet maxTimer should be 20, got %d", grunt.MaxTimer)
	}
	if grunt.Shockwave != nil {
		t.Error("grunt-bullet should not have a shockwave")
	}

	// 重型击杀条目：带冲击波
	tank, ok := config.Profiles["tank-plasma"]
	if !ok {
		t.Fatal("tank-plasma profile should exist")
	}
	if tank.Shockwave == nil {
		t.Fatal("tank-plasma should have a shockwave")
	}
	if tank.EnergySparkles == 0 {
		t.Error("tank-plasma should have energy sparkles")
	}

	// 回退条目必须存在
	if _, ok := config.Profiles[FallbackProfileKey]; !ok {
		t.Errorf("fallback profile %q should exist", FallbackProfileKey)
	}
}

func TestEffectProfileParsing(t *testing.T) {
	configContent := `
profiles:
  enemy:
    particleCount: 4
    maxTimer: 24
    speedMin: 0.5
    speedMax: 2.5
    sizeMin: 1.5
    sizeMax: 3.5
    lifeMin: 14
    lifeMax: 26
    flashIntensity: 0.4
    color: [255, 255, 160]
  tank-bullet:
    particleCount: 12
    maxTimer: 40
    speedMin: 1.0
    speedMax: 4.0
    sizeMin: 2.0
    sizeMax: 5.0
    lifeMin: 20
    lifeMax: 40
    flashIntensity: 0.8
    color: [255, 200, 96]
    shockwave:
      maxRadius: 90
      expandSpeed: 4.5
    armorFragments: 6
`

	var config EffectConfig
	if err := yaml.Unmarshal([]byte(configContent), &config); err != nil {
		t.Fatalf("Failed to parse effect config: %v", err)
	}
	if err := validateEffectConfig(&config); err != nil {
		t.Fatalf("Config should be valid: %v", err)
	}

	tank := config.Profiles["tank-bullet"]
	if tank.Shockwave == nil || tank.Shockwave.MaxRadius != 90 {
		t.Error("tank-bullet shockwave should parse with maxRadius 90")
	}
	if tank.ArmorFragments != 6 {
		t.Errorf("tank-bullet armorFragments should be 6, got %d", tank.ArmorFragments)
	}
	if tank.Color != [3]uint8{255, 200, 96} {
		t.Errorf("tank-bullet color mismatch: %v", tank.Color)
	}
}

func TestValidateEffectConfig(t *testing.T) {
	t.Run("缺少回退条目", func(t *testing.T) {
		config := DefaultEffectConfig()
		delete(config.Profiles, FallbackProfileKey)

		if err := validateEffectConfig(config); err == nil {
			t.Error("Missing fallback profile should fail validation")
		}
	})

	t.Run("粒子数必须为正", func(t *testing.T) {
		config := DefaultEffectConfig()
		profile := config.Profiles["grunt-bullet"]
		profile.ParticleCount = 0
		config.Profiles["grunt-bullet"] = profile

		if err := validateEffectConfig(config); err == nil {
			t.Error("Zero particleCount should fail validation")
		}
	})

	t.Run("速度区间不得倒置", func(t *testing.T) {
		config := DefaultEffectConfig()
		profile := config.Profiles["enemy"]
		profile.SpeedMin = 5.0
		profile.SpeedMax = 1.0
		config.Profiles["enemy"] = profile

		if err := validateEffectConfig(config); err == nil {
			t.Error("Inverted speed range should fail validation")
		}
	})
}

func TestMaxRadiusForSparkles(t *testing.T) {
	// 有冲击波时取其最大半径的七成
	withShockwave := &EffectProfile{Shockwave: &ShockwaveConfig{MaxRadius: 100, ExpandSpeed: 5}}
	if got := withShockwave.MaxRadiusForSparkles(); got != 70 {
		t.Errorf("Expected 70, got %f", got)
	}

	// 无冲击波时使用固定值
	without := &EffectProfile{}
	if got := without.MaxRadiusForSparkles(); got != 60 {
		t.Errorf("Expected 60, got %f", got)
	}
}
