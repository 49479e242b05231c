package components

import "github.com/gonewx/starblitz/pkg/ecs"

// AngerComponent 存储重装敌机的仇恨（激怒）状态
//
// 设计说明:
// - 只统计非玩家来源的伤害（误伤），玩家伤害永远不会触发激怒
// - 每个来源的计数单调递增，未激怒时从不清零
// - IsAngry 的 false→true 转换每次激怒周期只发生一次；
//   冷却清除由外部机制负责，本核心不会主动复位
type AngerComponent struct {
	DamageTracker  map[ecs.EntityID]int // 非玩家来源ID -> 累计命中次数
	AngerThreshold int                  // 触发激怒所需的命中次数
	IsAngry        bool                 // 当前是否处于激怒状态
	AngerTarget    ecs.EntityID         // 激怒后锁定的报复目标
	AngerCooldown  int                  // 激怒冷却（帧），由外部机制递减
}

// NewAngerComponent 创建仇恨组件
func NewAngerComponent(threshold int) *AngerComponent {
	return &AngerComponent{
		DamageTracker:  make(map[ecs.EntityID]int),
		AngerThreshold: threshold,
	}
}
