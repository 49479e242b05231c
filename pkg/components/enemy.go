package components

// EnemyType 敌机类型（封闭枚举，避免字符串标签的拼写错误）
type EnemyType int

const (
	// EnemyGrunt 基础敌机
	EnemyGrunt EnemyType = iota
	// EnemyRusher 冲刺型敌机
	EnemyRusher
	// EnemyStabber 近战突刺型敌机
	EnemyStabber
	// EnemyTank 重装敌机，携带方向护甲与仇恨机制
	EnemyTank
)

// String 返回敌机类型的可读名称（日志与效果表键用）
func (t EnemyType) String() string {
	switch t {
	case EnemyGrunt:
		return "grunt"
	case EnemyRusher:
		return "rusher"
	case EnemyStabber:
		return "stabber"
	case EnemyTank:
		return "tank"
	default:
		return "enemy"
	}
}

// EnemyComponent 标识敌机实体并存储其战斗属性
type EnemyComponent struct {
	Type          EnemyType // 敌机类型
	FacingAngle   float64   // 朝向角（弧度），护甲受击扇区以此为基准
	ContactDamage int       // 接触伤害（由调用方限频，本核心只负责检测与上报）
}
