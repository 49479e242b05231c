package effects

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/starblitz/pkg/render"
)

// HazardKind 危害区类型（封闭枚举）
type HazardKind int

const (
	// HazardPlasmaCloud 等离子云，重装敌机等离子死亡时生成
	HazardPlasmaCloud HazardKind = iota
	// HazardRadioactiveDebris 放射性残骸，爆弹类爆炸时生成
	HazardRadioactiveDebris
)

// String 返回危害区类型的可读名称
func (k HazardKind) String() string {
	switch k {
	case HazardPlasmaCloud:
		return "plasma-cloud"
	case HazardRadioactiveDebris:
		return "radioactive-debris"
	default:
		return "hazard"
	}
}

// DamageTick 危害区的伤害跳动描述
// 危害区只上报伤害意图，由调用方对半径内的实体结算，
// 本核心因此与实体血量完全解耦
type DamageTick struct {
	X, Y   float64 // 危害区中心
	Radius float64 // 判定半径（等于 DamageRadius）
	Damage int     // 本跳伤害
}

// HazardZone 持续伤害区（等离子云 / 放射性残骸）
//
// 不变式: DamageRadius 严格小于 VisualRadius，渲染永远夸大而非缩小危险范围
type HazardZone struct {
	Kind HazardKind // 危害区类型

	X, Y float64 // 中心（世界坐标）

	DamageRadius float64 // 判定半径（保守值）
	VisualRadius float64 // 渲染半径（始终大于判定半径）

	Timer          int  // 已经过帧数
	MaxTimer       int  // 存活上限（帧）
	DamageInterval int  // 伤害跳动间隔（帧）
	DamagePerTick  int  // 每跳伤害
	Active         bool // 为 false 时等待 Manager 移除

	subTimer int // 距上次跳动的帧数
}

// Update 推进危害区一帧
// 每经过 DamageInterval 帧返回一次伤害跳动描述，其余帧返回 nil；
// 计时到达 MaxTimer 时过期（当帧的跳动仍然有效）
func (h *HazardZone) Update() *DamageTick {
	if !h.Active {
		return nil
	}

	h.Timer++
	h.subTimer++

	var tick *DamageTick
	if h.subTimer >= h.DamageInterval {
		h.subTimer = 0
		tick = &DamageTick{
			X:      h.X,
			Y:      h.Y,
			Radius: h.DamageRadius,
			Damage: h.DamagePerTick,
		}
	}

	if h.Timer >= h.MaxTimer {
		h.Active = false
	}

	return tick
}

// CheckDamage 判断目标中心是否处于判定半径内
// 边界判定为严格小于：距离恰好等于 DamageRadius 时不命中
func (h *HazardZone) CheckDamage(x, y float64) bool {
	dx := x - h.X
	dy := y - h.Y
	return math.Hypot(dx, dy) < h.DamageRadius
}

// Draw 绘制危害区，纯渲染，无游戏逻辑副作用
func (h *HazardZone) Draw(screen *ebiten.Image, opts *ebiten.DrawImageOptions) {
	if !h.Active {
		return
	}

	// 临近过期时整体淡出
	fade := 1.0
	remaining := h.MaxTimer - h.Timer
	if remaining < 60 {
		fade = float64(remaining) / 60.0
	}

	baseColor := h.color()

	// 外圈按渲染半径显示危险范围
	vector.StrokeCircle(screen, float32(h.X), float32(h.Y), float32(h.VisualRadius),
		2.0, scaledColor(baseColor, 0.5*fade), true)

	// 内部辉光使用加法混合；BlendScope 保证混合模式在所有退出路径上恢复
	scope := render.AcquireAdditive(opts)
	defer scope.Release()

	pulse := 0.12 + 0.06*math.Sin(float64(h.Timer)*0.08)
	render.FillCircleWithOptions(screen, h.X, h.Y, h.VisualRadius, scaledColor(baseColor, pulse*fade), opts)
	render.FillCircleWithOptions(screen, h.X, h.Y, h.DamageRadius*0.6, scaledColor(baseColor, 0.2*fade), opts)
}

// color 返回危害区类型对应的基色
func (h *HazardZone) color() [3]uint8 {
	switch h.Kind {
	case HazardRadioactiveDebris:
		return [3]uint8{160, 255, 96}
	default:
		return [3]uint8{96, 224, 255}
	}
}
