package systems

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	// TimerFontSize 倒计时字号
	TimerFontSize = 48.0
	// TimerTopMargin 倒计时距屏幕顶部的距离
	TimerTopMargin = 32.0
	// timerPaddingX / timerPaddingY 背景框内边距
	timerPaddingX = 18.0
	timerPaddingY = 8.0
)

// TimerOverlayRenderSystem 在屏幕顶部居中绘制 "MM:SS" 倒计时
type TimerOverlayRenderSystem struct {
	face *text.GoTextFace

	textColor       color.Color
	backgroundColor color.Color
}

// NewTimerOverlayRenderSystem 创建倒计时覆盖层，使用内置的 Go Mono 等宽字体
func NewTimerOverlayRenderSystem() (*TimerOverlayRenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load timer font: %w", err)
	}

	return &TimerOverlayRenderSystem{
		face: &text.GoTextFace{
			Source: source,
			Size:   TimerFontSize,
		},
		textColor:       color.White,
		backgroundColor: color.RGBA{A: 96},
	}, nil
}

// Draw 绘制倒计时文本
//
// 参数：
//   - screen: 绘制目标
//   - label: 已格式化的 "MM:SS" 文本
func (s *TimerOverlayRenderSystem) Draw(screen *ebiten.Image, label string) {
	w, h := text.Measure(label, s.face, 0)
	cx := float64(screen.Bounds().Dx()) / 2

	vector.DrawFilledRect(screen,
		float32(cx-w/2-timerPaddingX), float32(TimerTopMargin-timerPaddingY),
		float32(w+2*timerPaddingX), float32(h+2*timerPaddingY),
		s.backgroundColor, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, TimerTopMargin)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(s.textColor)
	text.Draw(screen, label, s.face, op)
}
