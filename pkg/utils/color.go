package utils

import (
	"image/color"
	"log"

	"github.com/lucasb-eyer/go-colorful"
)

// fallbackColor 无法解析的颜色字符串使用洋红色，方便在画面中一眼发现
var fallbackColor = colorful.Color{R: 1, G: 0, B: 1}

// ParseHexColor 解析 "#rrggbb" 或 "#rgb" 格式的颜色
//
// 解析失败时记录警告并返回洋红色。
func ParseHexColor(hex string) colorful.Color {
	c, err := colorful.Hex(expandShortHex(hex))
	if err != nil {
		log.Printf("[Color] Warning: invalid color %q: %v", hex, err)
		return fallbackColor
	}
	return c
}

// expandShortHex 把 "#fff" 展开为 "#ffffff"
func expandShortHex(hex string) string {
	if len(hex) != 4 || hex[0] != '#' {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}

// ShadeColor 在线性空间中计算光照后的颜色
//
// 参数：
//   - base: 材质基础色
//   - diffuse: 漫反射 + 环境光总强度（可以大于 1）
//   - tint: 点光源与自发光叠加的线性颜色
func ShadeColor(base colorful.Color, diffuse float64, tint colorful.Color) colorful.Color {
	r, g, b := base.LinearRgb()
	out := colorful.LinearRgb(
		Clamp(r*diffuse+tint.R, 0, 1),
		Clamp(g*diffuse+tint.G, 0, 1),
		Clamp(b*diffuse+tint.B, 0, 1),
	)
	return out
}

// ScaleLinear 返回颜色在线性空间中乘以 k 的结果（不钳制，用于累加光照）
func ScaleLinear(c colorful.Color, k float64) colorful.Color {
	r, g, b := c.LinearRgb()
	return colorful.Color{R: r * k, G: g * k, B: b * k}
}

// AddLinear 两个线性空间颜色相加（不钳制）
func AddLinear(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

// ToRGBA 转为带透明度的 color.RGBA（预乘 alpha）
func ToRGBA(c colorful.Color, alpha float64) color.RGBA {
	alpha = Clamp(alpha, 0, 1)
	cc := c.Clamped()
	return color.RGBA{
		R: uint8(cc.R*alpha*255 + 0.5),
		G: uint8(cc.G*alpha*255 + 0.5),
		B: uint8(cc.B*alpha*255 + 0.5),
		A: uint8(alpha*255 + 0.5),
	}
}
