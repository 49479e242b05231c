package components

// FlashEffectComponent 受击闪烁效果
// 实体被命中时附加，渲染层在剩余帧数内以高亮色调绘制
type FlashEffectComponent struct {
	Frames    int  // 剩余闪烁帧数
	MaxFrames int  // 总闪烁帧数
	IsActive  bool // 是否生效
}
