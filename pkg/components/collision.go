package components

// CollisionComponent 定义实体的圆形碰撞边界
// 用于碰撞系统检测实体之间的重叠（如子弹与敌机）
//
// 设计说明:
// - 采用圆形碰撞盒，重叠判定为两实体中心距离 < 半径之和
// - 碰撞圆心对齐实体位置，无偏移
type CollisionComponent struct {
	Radius float64 // 碰撞半径（像素）
}
