package components

// KillMethod 击杀方式（封闭枚举）
// 与敌机类型组合后决定击杀效果的粒子参数
type KillMethod int

const (
	// KillByBullet 被普通子弹击毁
	KillByBullet KillMethod = iota
	// KillByPlasma 被等离子武器击毁
	KillByPlasma
)

// String 返回击杀方式的可读名称（效果表键用）
func (m KillMethod) String() string {
	switch m {
	case KillByPlasma:
		return "plasma"
	default:
		return "bullet"
	}
}
