package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// circleBaseSize 预渲染白色圆片的直径（像素）
// 绘制时按目标半径缩放，足够大以避免放大时的明显锯齿
const circleBaseSize = 64

var whiteCircle *ebiten.Image

// circleImage 返回惰性创建的白色圆片
// ebiten.NewImage 只能在游戏循环启动后调用，因此不能放在 init()
func circleImage() *ebiten.Image {
	if whiteCircle == nil {
		whiteCircle = ebiten.NewImage(circleBaseSize, circleBaseSize)
		vector.DrawFilledCircle(whiteCircle, circleBaseSize/2, circleBaseSize/2, circleBaseSize/2, color.White, true)
	}
	return whiteCircle
}

// FillCircleWithOptions 以 opts 指定的混合模式绘制实心圆
// 与 vector.DrawFilledCircle 的区别在于它走 DrawImage 路径，
// 因此可以配合 BlendScope 做加法混合
func FillCircleWithOptions(dst *ebiten.Image, x, y, radius float64, clr color.RGBA, opts *ebiten.DrawImageOptions) {
	if radius <= 0 {
		return
	}

	img := circleImage()
	scale := radius * 2 / circleBaseSize

	opts.GeoM.Reset()
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(x-radius, y-radius)

	opts.ColorScale.Reset()
	opts.ColorScale.ScaleWithColor(clr)

	dst.DrawImage(img, opts)
}
