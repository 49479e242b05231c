// Package render 提供战斗效果的基础绘制原语
//
// 发光/能量类视觉需要加法混合（additive blend）。混合模式作用于共享的
// DrawImageOptions，一旦泄漏到后续绘制会把整个画面"点亮"，
// 因此加法混合只能通过 BlendScope 获取，保证任何退出路径都恢复原模式。
package render

import "github.com/hajimehoshi/ebiten/v2"

// BlendScope 加法混合作用域守卫
//
// 用法:
//
//	scope := render.AcquireAdditive(opts)
//	defer scope.Release()
//
// Release 恢复进入作用域前的混合模式，配合 defer 使用后，
// 无论提前 return 还是正常结束，混合状态都不可能泄漏。
type BlendScope struct {
	opts     *ebiten.DrawImageOptions
	previous ebiten.Blend
	released bool
}

// AcquireAdditive 将 opts 切换为加法混合并返回作用域守卫
func AcquireAdditive(opts *ebiten.DrawImageOptions) *BlendScope {
	scope := &BlendScope{
		opts:     opts,
		previous: opts.Blend,
	}
	opts.Blend = ebiten.BlendLighter
	return scope
}

// Release 恢复进入作用域前的混合模式
// 重复调用是安全的，只有第一次生效
func (s *BlendScope) Release() {
	if s.released {
		return
	}
	s.opts.Blend = s.previous
	s.released = true
}
