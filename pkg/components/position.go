package components

// PositionComponent 存储实体在世界坐标系中的位置
// 所有碰撞检测和效果生成都以该坐标为准
type PositionComponent struct {
	X float64 // 世界坐标X（像素）
	Y float64 // 世界坐标Y（像素）
}
