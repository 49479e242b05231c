// Package effects 实现短命视觉效果（爆炸、碎片）与持续危害区的生命周期管理
//
// 核心约定:
// - Manager 独占所有效果对象，外部不持有可变引用
// - 效果只能由自身的 Update 驱动到自然终止，不存在外部取消
// - 任何效果的存活时间有上界：maxTimer + 粒子最大寿命
// - 危害区只上报伤害意图，从不直接修改实体血量
package effects
