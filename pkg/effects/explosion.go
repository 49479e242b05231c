package effects

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starblitz/pkg/render"
)

// shockwaveMinFrames 带冲击波的效果在终止前必须至少存在的帧数
// 防止扩张极快的冲击波在视觉尚未成形时就消失
const shockwaveMinFrames = 20

// Shockwave 爆炸冲击波环
// 半径单调扩张到 MaxRadius 后停止，永不超过上限
type Shockwave struct {
	Radius      float64 // 当前半径
	MaxRadius   float64 // 最大半径
	ExpandSpeed float64 // 每帧扩张量
}

// advance 推进一帧扩张，半径钳位在 MaxRadius
func (w *Shockwave) advance() {
	w.Radius += w.ExpandSpeed
	if w.Radius > w.MaxRadius {
		w.Radius = w.MaxRadius
	}
}

// Finished 返回冲击波是否已扩张完毕
func (w *Shockwave) Finished() bool {
	return w.Radius >= w.MaxRadius
}

// EnergySparkle 能量环闪光
// 沿固定角度从爆心向外推进，半径钳位后原地衰减
type EnergySparkle struct {
	Angle       float64 // 相对爆心的角度（弧度）
	Radius      float64 // 当前距爆心距离
	MaxRadius   float64 // 最大距离
	ExpandSpeed float64 // 每帧推进量
	Size        float64 // 渲染半径（像素）
	Life        int     // 剩余寿命（帧）
	MaxLife     int     // 初始寿命（帧）
}

// advance 推进一帧，返回闪光是否仍然存活
func (s *EnergySparkle) advance() bool {
	s.Radius += s.ExpandSpeed
	if s.Radius > s.MaxRadius {
		s.Radius = s.MaxRadius
	}
	s.Life--
	return s.Life > 0
}

// Explosion 击杀/破甲爆炸效果
//
// 生命周期:
// - 由 Manager 在击杀或破甲事件上创建
// - 每帧由自身 Update 推进，粒子耗尽且计时结束后 Active 变为 false
// - Active 为 false 的当帧即被 Manager 从注册表移除
//
// 终止规则（双重条件，二者满足其一即终止）:
//   - 计时达到 MaxTimer 且粒子与闪光均已耗尽
//   - 冲击波（若存在）扩张完毕、粒子与闪光均已耗尽、且至少经过
//     shockwaveMinFrames 帧
//
// 任何可达状态都能在 MaxTimer + 粒子最大寿命帧内到达终止
type Explosion struct {
	Kind string // 效果键，如 "tank-plasma"（日志与测试用）

	X, Y float64 // 爆心（世界坐标）

	Timer    int  // 已经过帧数
	MaxTimer int  // 计时上限（帧）
	Active   bool // 为 false 时等待 Manager 移除

	Particles []Particle      // 本效果独占的粒子集合
	Sparkles  []EnergySparkle // 能量环闪光（可选）
	Shockwave *Shockwave      // 冲击波环（可选）

	FlashIntensity float64  // 爆炸闪光强度 0.0 ~ 1.0
	Color          [3]uint8 // 基色 RGB
}

// Update 推进效果一帧
// 集成粒子物理、推进冲击波与闪光，并按终止规则更新 Active
func (e *Explosion) Update() {
	if !e.Active {
		return
	}

	e.Timer++

	// 就地过滤过期粒子，避免每帧重新分配
	alive := e.Particles[:0]
	for i := range e.Particles {
		if e.Particles[i].advance() {
			alive = append(alive, e.Particles[i])
		}
	}
	e.Particles = alive

	aliveSparkles := e.Sparkles[:0]
	for i := range e.Sparkles {
		if e.Sparkles[i].advance() {
			aliveSparkles = append(aliveSparkles, e.Sparkles[i])
		}
	}
	e.Sparkles = aliveSparkles

	if e.Shockwave != nil {
		e.Shockwave.advance()
	}

	drained := len(e.Particles) == 0 && len(e.Sparkles) == 0

	// 无冲击波：计时结束 + 粒子耗尽即终止
	if e.Timer >= e.MaxTimer && drained {
		e.Active = false
		return
	}

	// 有冲击波：环扩张完毕 + 粒子耗尽 + 最小存在帧数
	if e.Shockwave != nil && e.Shockwave.Finished() && drained && e.Timer >= shockwaveMinFrames {
		e.Active = false
	}
}

// Draw 绘制效果，纯渲染，无任何游戏逻辑副作用
// 发光元素使用加法混合，混合模式经由 BlendScope 保证在所有退出路径上恢复
func (e *Explosion) Draw(screen *ebiten.Image, opts *ebiten.DrawImageOptions) {
	if !e.Active {
		return
	}

	// 普通粒子与护甲碎片走默认混合
	for i := range e.Particles {
		p := &e.Particles[i]
		if p.Sparkle {
			continue
		}
		clr := scaledColor(p.Color, p.alpha())
		if p.IsArmor {
			drawFragment(screen, p, clr)
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), clr, true)
	}

	if e.Shockwave != nil && !e.Shockwave.Finished() {
		ringAlpha := 1.0 - e.Shockwave.Radius/e.Shockwave.MaxRadius
		vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(e.Shockwave.Radius),
			3.0, scaledColor(e.Color, ringAlpha), true)
	}

	// 发光元素：闪光粒子、能量环、爆心闪光
	scope := render.AcquireAdditive(opts)
	defer scope.Release()

	for i := range e.Particles {
		p := &e.Particles[i]
		if !p.Sparkle {
			continue
		}
		render.FillCircleWithOptions(screen, p.X, p.Y, p.Size, scaledColor(p.Color, p.alpha()), opts)
	}

	for i := range e.Sparkles {
		s := &e.Sparkles[i]
		sparkAlpha := 0.0
		if s.MaxLife > 0 {
			sparkAlpha = float64(s.Life) / float64(s.MaxLife)
		}
		x := e.X + math.Cos(s.Angle)*s.Radius
		y := e.Y + math.Sin(s.Angle)*s.Radius
		render.FillCircleWithOptions(screen, x, y, s.Size, scaledColor(e.Color, sparkAlpha), opts)
	}

	// 爆心闪光只在最初几帧可见
	if e.FlashIntensity > 0 && e.Timer < 6 {
		flashAlpha := e.FlashIntensity * (1.0 - float64(e.Timer)/6.0)
		render.FillCircleWithOptions(screen, e.X, e.Y, 18*e.FlashIntensity, scaledColor(e.Color, flashAlpha), opts)
	}
}

// drawFragment 绘制旋转的护甲碎片（矩形近似）
func drawFragment(screen *ebiten.Image, p *Particle, clr color.RGBA) {
	half := float32(p.Size)
	cx, cy := float32(p.X), float32(p.Y)
	cos := float32(math.Cos(p.Rotation))
	sin := float32(math.Sin(p.Rotation))
	// 对角线两端画粗线近似旋转矩形，避免为碎片单独建三角形网格
	vector.StrokeLine(screen, cx-half*cos, cy-half*sin, cx+half*cos, cy+half*sin, half, clr, true)
}

// scaledColor 返回按透明度衰减的颜色（预乘alpha）
func scaledColor(rgb [3]uint8, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(rgb[0]) * alpha),
		G: uint8(float64(rgb[1]) * alpha),
		B: uint8(float64(rgb[2]) * alpha),
		A: uint8(255 * alpha),
	}
}
