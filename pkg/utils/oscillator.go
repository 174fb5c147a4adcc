package utils

import "math"

// Oscillators (振荡器)
//
// 纯函数：输入经过的时间（秒）与粒子自身的相位/速度，输出位置、缩放或光强偏移量。
// 每帧由效果系统直接调用，不持有任何状态。

// FlameOffset 计算火焰粒子相对于出生点的偏移和缩放
//
//	flicker = 0.1·sin(t·speed + phase)
//	dx = flicker
//	dy = 0.05·sin(0.8t) + 0.15·|sin(2t + phase)|
//	dz = flicker·0.5
//	scale = 0.8 + 0.3·sin(3t + phase)
func FlameOffset(t, phase, speed float64) (dx, dy, dz, scale float64) {
	flicker := math.Sin(t*speed+phase) * 0.1
	rise := math.Sin(t*0.8) * 0.05
	dx = flicker
	dy = rise + math.Abs(math.Sin(t*2+phase))*0.15
	dz = flicker * 0.5
	scale = 0.8 + math.Sin(t*3+phase)*0.3
	return dx, dy, dz, scale
}

// SparkOffset 计算火星粒子相对于出生点的偏移
//
//	dx = 0.05·sin(t + phase)
//	dy = 0.1·sin(t·speed + phase) + 0.2·|cos(1.5t + phase)|
//	dz = 0.05·cos(t + phase)
func SparkOffset(t, phase, speed float64) (dx, dy, dz float64) {
	rise := math.Sin(t*speed+phase) * 0.1
	dx = math.Sin(t+phase) * 0.05
	dy = rise + math.Abs(math.Cos(t*1.5+phase))*0.2
	dz = math.Cos(t+phase) * 0.05
	return dx, dy, dz
}

// FireLightIntensity 计算壁炉点光源强度
//
// 两个不同频率正弦叠加一个正偏置：0.8 + 0.3·sin(4t) + 0.2·sin(7t)，再乘以壁炉尺寸。
// 结果下限钳制为 0。
func FireLightIntensity(t, size float64) float64 {
	flicker := 0.8 + math.Sin(t*4)*0.3 + math.Sin(t*7)*0.2
	return math.Max(0, flicker*size)
}

// ScreenShimmer 笔记本屏幕微光，每 2 秒一个周期，取值 [0, 0.5]
func ScreenShimmer(t float64) float64 {
	return math.Abs(math.Sin((t/2)*math.Pi)) / 2
}

// PhaseSine amp·sin(t·freq + phase)，用于雨滴透明度等小幅摆动
func PhaseSine(t, freq, phase, amp float64) float64 {
	return math.Sin(t*freq+phase) * amp
}
