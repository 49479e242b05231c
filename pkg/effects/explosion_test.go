package effects

import "testing"

// newTestExplosion 构造一个带 n 个固定寿命粒子的效果
func newTestExplosion(maxTimer, particleCount, particleLife int) *Explosion {
	e := &Explosion{
		Kind:     "grunt-bullet",
		MaxTimer: maxTimer,
		Active:   true,
	}
	for i := 0; i < particleCount; i++ {
		e.Particles = append(e.Particles, Particle{
			Size:     2,
			Life:     particleLife,
			MaxLife:  particleLife,
			Friction: particleFriction,
			Gravity:  particleGravity,
		})
	}
	return e
}

// TestExplosionSmallBurst 小型击杀效果：3 个粒子、计时上限 20 帧
// 粒子寿命短于计时上限时，效果应该恰好在第 20 帧终止
func TestExplosionSmallBurst(t *testing.T) {
	e := newTestExplosion(20, 3, 10)

	for frame := 1; frame <= 19; frame++ {
		e.Update()
		if !e.Active {
			t.Fatalf("Effect terminated early at frame %d", frame)
		}
	}

	e.Update()
	if e.Active {
		t.Error("Effect should terminate at frame 20")
	}
}

// TestExplosionWaitsForParticles 计时结束但粒子未耗尽时不得终止
func TestExplosionWaitsForParticles(t *testing.T) {
	// 粒子寿命 30 帧 > 计时上限 20 帧
	e := newTestExplosion(20, 3, 30)

	for frame := 1; frame <= 29; frame++ {
		e.Update()
		if !e.Active {
			t.Fatalf("Effect terminated at frame %d while particles remain", frame)
		}
	}

	// 第 30 帧粒子全部耗尽，计时早已结束
	e.Update()
	if e.Active {
		t.Error("Effect should terminate once particles drain")
	}
	if len(e.Particles) != 0 {
		t.Errorf("Expected 0 particles, got %d", len(e.Particles))
	}
}

// TestExplosionShockwaveTermination 带冲击波的效果走第二条终止路径：
// 冲击波扩张完毕 + 粒子耗尽 + 最小存在帧数
func TestExplosionShockwaveTermination(t *testing.T) {
	e := newTestExplosion(48, 2, 5)
	// 扩张极快的冲击波：2 帧就到最大半径
	e.Shockwave = &Shockwave{MaxRadius: 10, ExpandSpeed: 5}

	for frame := 1; frame < shockwaveMinFrames; frame++ {
		e.Update()
		if !e.Active {
			t.Fatalf("Effect terminated at frame %d before minimum shockwave lifetime", frame)
		}
	}

	// 最小帧数一到（冲击波已扩张完、粒子已耗尽）即终止，无需等满 MaxTimer
	e.Update()
	if e.Active {
		t.Errorf("Effect should terminate at frame %d via shockwave path", shockwaveMinFrames)
	}
}

// TestExplosionBoundedLifetime 任何可达状态都必须在有限帧数内终止
func TestExplosionBoundedLifetime(t *testing.T) {
	e := newTestExplosion(40, 8, 44)
	e.Shockwave = &Shockwave{MaxRadius: 90, ExpandSpeed: 4.5}
	e.Sparkles = []EnergySparkle{
		{MaxRadius: 60, ExpandSpeed: 2, Size: 2, Life: 36, MaxLife: 36},
	}

	bound := e.MaxTimer + 44 + 1
	for frame := 1; frame <= bound; frame++ {
		e.Update()
		if !e.Active {
			return
		}
	}
	t.Fatalf("Effect still active after %d frames", bound)
}

// TestShockwaveRadiusClamped 冲击波半径永不超过上限
func TestShockwaveRadiusClamped(t *testing.T) {
	w := &Shockwave{MaxRadius: 10, ExpandSpeed: 4}

	for i := 0; i < 5; i++ {
		w.advance()
		if w.Radius > w.MaxRadius {
			t.Fatalf("Radius %f exceeds max %f", w.Radius, w.MaxRadius)
		}
	}
	if !w.Finished() {
		t.Error("Shockwave should be finished after reaching max radius")
	}
}

// TestInactiveExplosionUpdateIsNoop 已终止的效果再调用 Update 不得复活
func TestInactiveExplosionUpdateIsNoop(t *testing.T) {
	e := newTestExplosion(2, 1, 1)
	e.Update()
	e.Update()
	if e.Active {
		t.Fatal("Effect should have terminated")
	}

	timer := e.Timer
	e.Update()
	if e.Active || e.Timer != timer {
		t.Error("Update on inactive effect should be a no-op")
	}
}
