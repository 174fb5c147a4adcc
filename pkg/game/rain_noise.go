package game

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// rainNoiseBytesPerFrame 16 位立体声，每帧 4 字节
const rainNoiseBytesPerFrame = 4

// RainNoise 程序化雨声
//
// 白噪声经过两级一阶低通滤波得到柔和的"沙沙"声，再叠加缓慢的幅度起伏。
// 输出为无限长的 16 位小端立体声 PCM 流，可直接交给 audio.Context.NewPlayer。
type RainNoise struct {
	rng *rand.Rand

	lowA, lowB float64 // 两级低通滤波器状态
	alpha      float64 // 低通系数
	gain       float64 // 输出增益
	frame      int64   // 已生成的帧数，用于幅度起伏

	pending []byte // 上次 Read 未能写出的半帧
}

// NewRainNoise 创建雨声流
//
// 参数：
//   - seed: 噪声种子，相同种子产生相同的字节流
func NewRainNoise(seed uint64) *RainNoise {
	// 截止频率约 2.4kHz
	cutoff := 2400.0
	dt := 1.0 / SampleRate
	rc := 1.0 / (2 * math.Pi * cutoff)
	return &RainNoise{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		alpha: dt / (rc + dt),
		gain:  0.35,
	}
}

// Read 实现 io.Reader，永不返回 io.EOF
func (r *RainNoise) Read(p []byte) (int, error) {
	n := copy(p, r.pending)
	r.pending = r.pending[n:]

	var buf [rainNoiseBytesPerFrame]byte
	for n < len(p) {
		r.nextFrame(buf[:])
		c := copy(p[n:], buf[:])
		n += c
		if c < len(buf) {
			r.pending = append(r.pending[:0], buf[c:]...)
		}
	}
	return n, nil
}

// nextFrame 生成一帧立体声样本
func (r *RainNoise) nextFrame(dst []byte) {
	white := r.rng.Float64()*2 - 1
	r.lowA += r.alpha * (white - r.lowA)
	r.lowB += r.alpha * (r.lowA - r.lowB)

	t := float64(r.frame) / SampleRate
	r.frame++

	// 雨势在 0.85 ~ 1.0 之间缓慢起伏
	swell := 0.925 + 0.075*math.Sin(2*math.Pi*t/7)
	v := r.lowB * r.gain * swell * 3
	v = math.Max(-1, math.Min(1, v))

	// 右声道混入一级滤波值，听感略亮，形成轻微的立体声差异
	right := math.Max(-1, math.Min(1, (0.8*r.lowB+0.2*r.lowA)*r.gain*swell*3))

	binary.LittleEndian.PutUint16(dst[0:], uint16(int16(v*math.MaxInt16)))
	binary.LittleEndian.PutUint16(dst[2:], uint16(int16(right*math.MaxInt16)))
}
