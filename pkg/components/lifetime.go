package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如飞出场外前的子弹)
type LifetimeComponent struct {
	MaxFrames int  // 最大存活帧数
	Frames    int  // 当前已存活帧数
	IsExpired bool // 是否已过期
}
