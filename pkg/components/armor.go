package components

// PlateID 方向护甲板标识
type PlateID int

const (
	// PlateFront 正面护甲板，覆盖朝向±45°扇区
	PlateFront PlateID = iota
	// PlateLeft 左侧护甲板，覆盖正面扇区左侧相邻90°
	PlateLeft
	// PlateRight 右侧护甲板，覆盖正面扇区右侧相邻90°
	PlateRight

	// PlateCount 护甲板数量
	PlateCount
)

// String 返回护甲板的可读名称
func (p PlateID) String() string {
	switch p {
	case PlateFront:
		return "front"
	case PlateLeft:
		return "left"
	case PlateRight:
		return "right"
	default:
		return "unknown"
	}
}

// ArmorPlate 单块方向护甲板
//
// 不变式:
// - HP 永远 >= 0（结算时钳位，不抛异常）
// - Destroyed 为 true 后 HP 恒为 0，永不恢复
type ArmorPlate struct {
	HP        int  // 当前护甲值
	MaxHP     int  // 最大护甲值
	Destroyed bool // 护甲板是否已被击碎
}

// ArmorComponent 存储重装敌机的方向护甲信息
//
// 设计说明:
// - 伤害依据来弹角度相对朝向的扇区选择护甲板，优先正面
// - 选中的护甲板若已击碎，回退到下一个符合扇区的护甲板
// - 所有扇区都不匹配（背面弧区）时伤害直接作用于本体
// - 护甲板击碎后剩余伤害作为溢出值传给下一层（本体生命值）
type ArmorComponent struct {
	Plates [PlateCount]ArmorPlate // 按 PlateID 索引的护甲板
}

// LivePlates 返回尚未击碎的护甲板数量
func (a *ArmorComponent) LivePlates() int {
	count := 0
	for i := range a.Plates {
		if !a.Plates[i].Destroyed {
			count++
		}
	}
	return count
}
