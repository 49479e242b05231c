package components

// Faction 阵营标识
// 碰撞系统依据阵营区分玩家子弹、敌方子弹和误伤
type Faction int

const (
	// FactionPlayer 玩家阵营
	FactionPlayer Faction = iota
	// FactionEnemy 敌方阵营
	FactionEnemy
)

// String 返回阵营的可读名称（日志用）
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "player"
	case FactionEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
