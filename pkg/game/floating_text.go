package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// floatingTextLife 浮动文字的存活帧数
const floatingTextLife = 45

// floatingText 单条浮动战斗文字
type floatingText struct {
	x, y  float64
	text  string
	color color.RGBA
	size  float64
	life  int
}

// FloatingTextManager 浮动战斗文字管理器（伤害数字、"ARMOR BREAK" 等）
//
// 可选协作者：持有方必须容忍 nil，AddText 在 nil 上调用是安全的空操作
type FloatingTextManager struct {
	entries []floatingText
}

// NewFloatingTextManager 创建浮动文字管理器
func NewFloatingTextManager() *FloatingTextManager {
	return &FloatingTextManager{
		entries: make([]floatingText, 0, 16),
	}
}

// AddText 在 (x, y) 添加一条浮动文字
func (ft *FloatingTextManager) AddText(x, y float64, text string, clr color.RGBA, size float64) {
	if ft == nil {
		return
	}
	ft.entries = append(ft.entries, floatingText{
		x:     x,
		y:     y,
		text:  text,
		color: clr,
		size:  size,
		life:  floatingTextLife,
	})
}

// Update 推进一帧：文字上浮并衰减，过期条目就地移除
func (ft *FloatingTextManager) Update() {
	if ft == nil {
		return
	}
	alive := ft.entries[:0]
	for i := range ft.entries {
		e := &ft.entries[i]
		e.y -= 0.8
		e.life--
		if e.life > 0 {
			alive = append(alive, *e)
		}
	}
	ft.entries = alive
}

// Draw 绘制所有浮动文字
// TODO: 接入正式字体资源后改用 text/v2 渲染，应用 color 与 size
func (ft *FloatingTextManager) Draw(screen *ebiten.Image) {
	if ft == nil {
		return
	}
	for i := range ft.entries {
		e := &ft.entries[i]
		ebitenutil.DebugPrintAt(screen, e.text, int(e.x), int(e.y))
	}
}

// Count 返回当前条目数量（测试用）
func (ft *FloatingTextManager) Count() int {
	if ft == nil {
		return 0
	}
	return len(ft.entries)
}
