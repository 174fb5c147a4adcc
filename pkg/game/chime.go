package game

import (
	"encoding/binary"
	"math"
)

// 提示音参数
const (
	// ChimeDuration 提示音时长（秒）
	ChimeDuration = 2.5
	// ChimeFundamental 基频（Hz）
	ChimeFundamental = 880.0
)

// bellPartials 铃声泛音（频率倍数、相对幅度、衰减速度）
var bellPartials = []struct {
	ratio, amp, decay float64
}{
	{1.0, 1.0, 1.6},
	{2.76, 0.45, 2.6},
	{5.40, 0.25, 4.0},
	{8.93, 0.10, 6.0},
}

// GenerateChime 合成一声铃音
//
// 返回 16 位小端立体声 PCM 字节，可直接交给 audio.Context.NewPlayerFromBytes。
// 起音 5ms 线性淡入，之后各泛音指数衰减。
//
// 参数：
//   - sampleRate: 采样率
//   - duration: 时长（秒），非正值返回空切片
func GenerateChime(sampleRate int, duration float64) []byte {
	if sampleRate <= 0 || duration <= 0 {
		return []byte{}
	}

	frames := int(float64(sampleRate) * duration)
	out := make([]byte, frames*4)

	var norm float64
	for _, p := range bellPartials {
		norm += p.amp
	}

	attack := 0.005
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)

		var v float64
		for _, p := range bellPartials {
			v += p.amp * math.Exp(-p.decay*t) * math.Sin(2*math.Pi*ChimeFundamental*p.ratio*t)
		}
		v /= norm

		if t < attack {
			v *= t / attack
		}

		s := uint16(int16(v * 0.8 * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
