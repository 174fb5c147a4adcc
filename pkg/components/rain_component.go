package components

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cozyroom/pkg/config"
	"github.com/gonewx/cozyroom/pkg/utils"
)

// RainParticle 单个雨滴
//
// 雨滴从不销毁：越过地面阈值后回收到出生区域。
type RainParticle struct {
	Position mgl64.Vec3
	Phase    float64 // [0, 2π)
	Speed    float64 // > 0，下落速度倍率
	Hidden   bool    // 位于室内区域时隐藏
}

// Reset 把雨滴放回出生区域，并重新抽取相位与速度
//
// 返回是否使用了闭式采样（拒绝采样次数耗尽）。
func (p *RainParticle) Reset(sampler *utils.SpawnSampler, cfg config.RainConfig, rng *rand.Rand) bool {
	pos, fallback := sampler.Sample()
	p.Position = pos
	p.Phase = rng.Float64() * 2 * math.Pi
	p.Speed = cfg.SpeedMin + rng.Float64()*(cfg.SpeedMax-cfg.SpeedMin)
	p.Hidden = false
	return fallback
}

// RainComponent 窗外雨滴粒子池
// 粒子数组长度在创建后固定
type RainComponent struct {
	Particles []RainParticle
	Config    config.RainConfig
	// Sampler 出生/回收位置采样器，保证不落在室内区域
	Sampler *utils.SpawnSampler
	// Recycled 累计回收次数（调试统计）
	Recycled int
	// Fallbacks 拒绝采样耗尽后使用闭式采样的次数（调试统计）
	Fallbacks int
	// Elapsed 效果运行总时长（秒），驱动透明度摆动
	Elapsed float64
}
