package utils

import "math"

// Easing / smoothing helpers (缓动与平滑函数)
//
// 场景里所有连续变化的量（尾巴回正、相机方位角跟随）都通过这里的函数趋近目标值，
// 统一以秒为单位的 deltaTime 计算，保证不同帧率下视觉速度一致。

// referenceFrameRate 平滑系数标定时使用的参考帧率
const referenceFrameRate = 60.0

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 区间内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// FrameSmoothingFactor 把"每个 60Hz 帧的平滑系数 k"换算为 deltaTime 对应的系数
//
// 公式：k' = 1 - (1-k)^(60·dt)
// dt = 1/60 时 k' == k；帧率越低 k' 越大，每秒收敛的比例保持不变。
func FrameSmoothingFactor(k, deltaTime float64) float64 {
	k = Clamp(k, 0, 1)
	if deltaTime <= 0 {
		return 0
	}
	return 1 - math.Pow(1-k, referenceFrameRate*deltaTime)
}

// SmoothTowards 指数平滑：value += (target - value) * k'
//
// 参数：
//   - value: 当前值
//   - target: 目标值
//   - k: 每个 60Hz 帧的平滑系数（0~1）
//   - deltaTime: 本帧时长（秒）
func SmoothTowards(value, target, k, deltaTime float64) float64 {
	return value + (target-value)*FrameSmoothingFactor(k, deltaTime)
}
