// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CameraInput 存储当前帧与相机/环境音相关的输入
type CameraInput struct {
	// Rotate 方位角旋转方向：-1 向左，+1 向右，0 不旋转
	Rotate float64
	// Zoom 缩放增量，滚轮向上或 "+" 为正
	Zoom float64
	// ToggleMute 是否刚按下静音键
	ToggleMute bool
}

// GetCameraInput 读取当前帧的键盘和滚轮输入
// 方向键为持续输入（按住持续旋转），静音键只在按下的那一帧触发
func GetCameraInput() CameraInput {
	in := CameraInput{}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Rotate--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Rotate++
	}

	_, wheelY := ebiten.Wheel()
	in.Zoom += wheelY
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		in.Zoom++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		in.Zoom--
	}

	in.ToggleMute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	return in
}
