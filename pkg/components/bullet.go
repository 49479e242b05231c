package components

import "github.com/gonewx/starblitz/pkg/ecs"

// BulletComponent 存储子弹的战斗属性
//
// 设计说明:
// - Faction 记录发射方阵营，碰撞系统据此决定检测目标集合
// - Source 记录发射者实体ID，用于误伤时的仇恨结算；0 表示无来源
// - Angle 为飞行方向（弧度），护甲系统以此计算受击扇区
type BulletComponent struct {
	Damage  int          // 命中伤害
	Faction Faction      // 发射方阵营
	Source  ecs.EntityID // 发射者实体ID（仇恨结算用）
	Angle   float64      // 飞行方向（弧度）
	Method  KillMethod   // 武器类别，决定击杀效果
}
