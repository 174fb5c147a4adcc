package utils

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color3
	}{
		{"白色短格式", "#fff", color3{255, 255, 255}},
		{"壁炉火焰橙", "#FF4500", color3{255, 69, 0}},
		{"墙面", "#e1b8a7", color3{225, 184, 167}},
		{"非法值回退为洋红", "not-a-color", color3{255, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ParseHexColor(tt.hex).RGB255()
			if (color3{r, g, b}) != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, 期望 %v", tt.hex, color3{r, g, b}, tt.want)
			}
		})
	}
}

type color3 struct{ R, G, B uint8 }

func TestToRGBAPremultiplied(t *testing.T) {
	c := ToRGBA(colorful.Color{R: 1, G: 1, B: 1}, 0.5)
	if c.A != 128 || c.R != 128 {
		t.Errorf("ToRGBA 应预乘 alpha, got %+v", c)
	}
}

func TestShadeColorClamps(t *testing.T) {
	out := ShadeColor(colorful.Color{R: 1, G: 1, B: 1}, 3, colorful.Color{R: 1})
	if out.R > 1+1e-9 || out.G > 1+1e-9 || out.B > 1+1e-9 {
		t.Errorf("ShadeColor 结果应钳制到 [0,1], got %+v", out)
	}
}
