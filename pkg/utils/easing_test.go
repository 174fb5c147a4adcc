package utils

import (
	"math"
	"testing"
)

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 0, 10, 0, 0},
		{"终点", 0, 10, 1, 10},
		{"中点", -2, 2, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.expected)
			}
		})
	}
}

// TestEaseInOutCubic 测试三次方缓入缓出端点与中点
func TestEaseInOutCubic(t *testing.T) {
	if got := EaseInOutCubic(0); got != 0 {
		t.Errorf("EaseInOutCubic(0) = %v, 期望 0", got)
	}
	if got := EaseInOutCubic(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("EaseInOutCubic(1) = %v, 期望 1", got)
	}
	if got := EaseInOutCubic(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOutCubic(0.5) = %v, 期望 0.5", got)
	}
}

// TestFrameSmoothingFactor 60Hz 帧的平滑系数应保持原值
func TestFrameSmoothingFactor(t *testing.T) {
	if got := FrameSmoothingFactor(0.1, 1.0/60.0); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("FrameSmoothingFactor(0.1, 1/60) = %v, 期望 0.1", got)
	}
	if got := FrameSmoothingFactor(0.1, 0); got != 0 {
		t.Errorf("dt=0 时系数应为 0, got %v", got)
	}
}

// TestSmoothTowardsFrameRateIndependent 不同帧率下 1 秒后的结果应一致
func TestSmoothTowardsFrameRateIndependent(t *testing.T) {
	run := func(fps int) float64 {
		v := 0.0
		dt := 1.0 / float64(fps)
		for i := 0; i < fps; i++ {
			v = SmoothTowards(v, 1, 0.05, dt)
		}
		return v
	}

	at60 := run(60)
	at30 := run(30)
	at144 := run(144)

	if math.Abs(at60-at30) > 1e-6 || math.Abs(at60-at144) > 1e-6 {
		t.Errorf("平滑结果依赖帧率: 60fps=%v 30fps=%v 144fps=%v", at60, at30, at144)
	}
	if at60 <= 0 || at60 >= 1 {
		t.Errorf("1 秒后应处于 (0,1) 之间, got %v", at60)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp 边界处理错误")
	}
}
