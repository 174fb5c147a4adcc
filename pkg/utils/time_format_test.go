package utils

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{"零", 0, "00:00"},
		{"一分五秒", 65, "01:05"},
		{"最大两位分钟", 3599, "59:59"},
		{"默认番茄钟", 1500, "25:00"},
		{"不足一分钟", 9, "00:09"},
		{"负数按零处理", -5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.seconds); got != tt.expected {
				t.Errorf("FormatTime(%d) = %q, 期望 %q", tt.seconds, got, tt.expected)
			}
		})
	}
}

// TestFormatTimeIdempotent 同一输入两次调用结果相同
func TestFormatTimeIdempotent(t *testing.T) {
	for s := 0; s < 3600; s += 7 {
		if a, b := FormatTime(s), FormatTime(s); a != b {
			t.Fatalf("FormatTime(%d) 两次结果不同: %q vs %q", s, a, b)
		}
	}
}
