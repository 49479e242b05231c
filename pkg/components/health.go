package components

// HealthComponent 存储实体的生命值信息
// 用于玩家、敌机等可被攻击的实体
//
// 设计说明:
// - 当实体同时拥有 HealthComponent 和 ArmorComponent 时,伤害优先经过护甲结算
// - CurrentHealth <= 0 时实体死亡，由伤害系统标记待删除并请求击杀效果
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}
