package effects

// 粒子物理系数
// 普通粒子轻飘，护甲碎片更重、衰减更快
const (
	particleGravity  = 0.08
	particleFriction = 0.96
	fragmentGravity  = 0.18
	fragmentFriction = 0.92
)

// Particle 单个效果粒子（纯数据，无行为）
//
// 粒子由所属效果独占，Life <= 0 时在该效果的 Update 中被移除
type Particle struct {
	X, Y   float64 // 位置（世界坐标）
	VX, VY float64 // 速度（像素/帧）

	Size float64 // 半径（像素）

	Life    int // 剩余寿命（帧）
	MaxLife int // 初始寿命（帧），透明度按 Life/MaxLife 计算

	Rotation      float64 // 当前旋转角（弧度）
	RotationSpeed float64 // 每帧旋转增量（弧度）

	Gravity  float64 // 每帧竖直加速度
	Friction float64 // 每帧速度衰减系数

	Color [3]uint8 // 基色 RGB

	IsArmor bool // 护甲碎片（更重，渲染为旋转矩形）
	Sparkle bool // 能量闪光（加法混合渲染）
}

// advance 推进一帧物理积分，返回粒子是否仍然存活
func (p *Particle) advance() bool {
	p.VX *= p.Friction
	p.VY *= p.Friction
	p.VY += p.Gravity
	p.X += p.VX
	p.Y += p.VY
	p.Rotation += p.RotationSpeed
	p.Life--
	return p.Life > 0
}

// alpha 返回按剩余寿命衰减的透明度 0.0 ~ 1.0
func (p *Particle) alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := float64(p.Life) / float64(p.MaxLife)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
