package game

import (
	"image/color"
	"math/rand"
	"testing"
)

var testTextColor = color.RGBA{R: 255, G: 96, B: 96, A: 255}

func TestCameraShakeDecay(t *testing.T) {
	c := NewCamera(rand.New(rand.NewSource(1)))

	c.AddShake(8, 5)
	for frame := 0; frame < 5; frame++ {
		c.Update()
		x, y := c.Offset()
		if x < -8 || x > 8 || y < -8 || y > 8 {
			t.Errorf("Offset (%f, %f) exceeds shake intensity", x, y)
		}
	}

	// 震动结束后偏移归零
	c.Update()
	if x, y := c.Offset(); x != 0 || y != 0 {
		t.Errorf("Offset should reset after shake ends, got (%f, %f)", x, y)
	}
}

// TestCameraShakeMerge 叠加震屏请求时取较强的一方
func TestCameraShakeMerge(t *testing.T) {
	c := NewCamera(nil)

	c.AddShake(3, 10)
	c.AddShake(8, 5)

	if c.shakeIntensity != 8 {
		t.Errorf("Intensity should be 8, got %f", c.shakeIntensity)
	}
	if c.shakeFrames != 10 {
		t.Errorf("Frames should keep the longer duration 10, got %d", c.shakeFrames)
	}
}

// TestCameraNilSafe nil 镜头上的所有操作都是安全的空操作
func TestCameraNilSafe(t *testing.T) {
	var c *Camera

	c.AddShake(5, 10)
	c.Update()
	if x, y := c.Offset(); x != 0 || y != 0 {
		t.Error("Nil camera offset should be zero")
	}
}

func TestFloatingTextLifecycle(t *testing.T) {
	ft := NewFloatingTextManager()

	ft.AddText(100, 100, "-15", testTextColor, 12)
	if ft.Count() != 1 {
		t.Fatalf("Expected 1 entry, got %d", ft.Count())
	}

	// 寿命耗尽后条目被移除
	for i := 0; i < floatingTextLife; i++ {
		ft.Update()
	}
	if ft.Count() != 0 {
		t.Errorf("Entries should expire, got %d", ft.Count())
	}
}

func TestFloatingTextNilSafe(t *testing.T) {
	var ft *FloatingTextManager

	ft.AddText(0, 0, "x", testTextColor, 10)
	ft.Update()
	if ft.Count() != 0 {
		t.Error("Nil manager count should be zero")
	}
}
