package components

// VelocityComponent 存储实体的速度向量
// 由移动系统每帧累加到位置上
type VelocityComponent struct {
	VX float64 // X方向速度（像素/帧）
	VY float64 // Y方向速度（像素/帧）
}
