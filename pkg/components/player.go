package components

// PlayerComponent 标识玩家实体
// 碰撞系统通过该组件定位玩家，整个世界中最多存在一个
type PlayerComponent struct{}
