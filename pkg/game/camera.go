package game

import "math/rand"

// Camera 镜头状态，目前只承担震屏
//
// 可选协作者：持有方必须容忍 nil，AddShake 在 nil 上调用是安全的空操作
type Camera struct {
	shakeIntensity float64 // 当前震动强度（像素）
	shakeFrames    int     // 剩余震动帧数

	offsetX float64
	offsetY float64

	rng *rand.Rand
}

// NewCamera 创建镜头
// rng 为 nil 时使用固定偏移序列（退化为无随机抖动）
func NewCamera(rng *rand.Rand) *Camera {
	return &Camera{rng: rng}
}

// AddShake 叠加一次震屏请求
// 取当前与新请求中较强的一方，持续时间同理
func (c *Camera) AddShake(intensity float64, frames int) {
	if c == nil {
		return
	}
	if intensity > c.shakeIntensity {
		c.shakeIntensity = intensity
	}
	if frames > c.shakeFrames {
		c.shakeFrames = frames
	}
}

// Update 推进一帧震动衰减并计算本帧偏移
func (c *Camera) Update() {
	if c == nil {
		return
	}
	if c.shakeFrames <= 0 {
		c.shakeIntensity = 0
		c.offsetX, c.offsetY = 0, 0
		return
	}

	c.shakeFrames--
	if c.rng != nil {
		c.offsetX = (c.rng.Float64()*2 - 1) * c.shakeIntensity
		c.offsetY = (c.rng.Float64()*2 - 1) * c.shakeIntensity
	} else {
		// 无随机源时交替偏移，保持确定性
		if c.shakeFrames%2 == 0 {
			c.offsetX, c.offsetY = c.shakeIntensity, -c.shakeIntensity
		} else {
			c.offsetX, c.offsetY = -c.shakeIntensity, c.shakeIntensity
		}
	}

	// 强度随剩余帧数线性衰减
	c.shakeIntensity *= 0.92
}

// Offset 返回本帧镜头偏移
func (c *Camera) Offset() (float64, float64) {
	if c == nil {
		return 0, 0
	}
	return c.offsetX, c.offsetY
}
