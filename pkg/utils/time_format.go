package utils

import "fmt"

// FormatTime 把剩余秒数格式化为 "MM:SS"
//
// 分钟 = floor(seconds/60)，秒 = seconds%60，均补零到两位。
// 负数按 0 处理。纯函数，相同输入总是得到相同输出。
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
