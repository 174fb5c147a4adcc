package utils

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/cozyroom/pkg/config"
)

// slab D \ E 分解出的一个轴对齐块
//
// axis/below 记录这个块位于 E 的哪一侧：below 为 true 时块在 E 的下边界之下，
// 采样该轴时使用左闭右开区间，否则使用左开右闭区间，两种情况都不会落在 E 的闭区间边界上。
type slab struct {
	box   config.Box3
	axis  int
	below bool
}

// SpawnSampler 从出生区域 D 中均匀采样，且保证结果不在排除区域 E 内
//
// 先做有限次拒绝采样；次数耗尽后从 D \ E 的轴对齐分解中按体积加权直接采样。
type SpawnSampler struct {
	spawn       config.Box3
	exclude     config.Box3
	maxAttempts int
	rng         *rand.Rand

	slabs   []slab
	weights []float64 // 累积权重
}

// NewSpawnSampler 创建采样器
//
// 参数：
//   - spawn: 出生区域 D
//   - exclude: 排除区域 E（闭区间）
//   - maxAttempts: 拒绝采样最大次数，0 表示直接使用分解采样
//   - rng: 随机源，测试中传入固定种子
//
// 返回：
//   - error: D 或 E 非法，或 D ⊆ E（无处可放）时返回配置错误
func NewSpawnSampler(spawn, exclude config.Box3, maxAttempts int, rng *rand.Rand) (*SpawnSampler, error) {
	if !spawn.Valid() || !exclude.Valid() {
		return nil, config.ErrInvalidBox
	}
	if spawn.CoveredBy(exclude) {
		return nil, config.ErrSpawnCoveredByInterior
	}
	if maxAttempts < 0 {
		maxAttempts = 0
	}

	s := &SpawnSampler{
		spawn:       spawn,
		exclude:     exclude,
		maxAttempts: maxAttempts,
		rng:         rng,
		slabs:       subtractBox(spawn, exclude),
	}

	total := 0.0
	for _, sl := range s.slabs {
		total += sl.box.Volume()
	}
	s.weights = make([]float64, len(s.slabs))
	acc := 0.0
	for i, sl := range s.slabs {
		// 退化（零体积）区域按块数平均
		if total > 0 {
			acc += sl.box.Volume() / total
		} else {
			acc += 1 / float64(len(s.slabs))
		}
		s.weights[i] = acc
	}
	return s, nil
}

// Sample 返回一个位于 D 内且不在 E 内的点
//
// 返回：
//   - mgl64.Vec3: 采样点
//   - bool: 是否使用了分解采样（拒绝采样耗尽）
func (s *SpawnSampler) Sample() (mgl64.Vec3, bool) {
	for i := 0; i < s.maxAttempts; i++ {
		p := s.uniform(s.spawn)
		if !s.exclude.Contains(toConfigVec(p)) {
			return p, false
		}
	}
	return s.sampleSlabs(), true
}

// Slabs 返回 D \ E 分解出的块数
func (s *SpawnSampler) Slabs() int {
	return len(s.slabs)
}

// uniform 在盒内均匀采样
func (s *SpawnSampler) uniform(b config.Box3) mgl64.Vec3 {
	return mgl64.Vec3{
		b.Min.X + s.rng.Float64()*(b.Max.X-b.Min.X),
		b.Min.Y + s.rng.Float64()*(b.Max.Y-b.Min.Y),
		b.Min.Z + s.rng.Float64()*(b.Max.Z-b.Min.Z),
	}
}

// sampleSlabs 按体积选块，再在块内采样
func (s *SpawnSampler) sampleSlabs() mgl64.Vec3 {
	r := s.rng.Float64()
	idx := len(s.slabs) - 1
	for i, w := range s.weights {
		if r < w {
			idx = i
			break
		}
	}
	sl := s.slabs[idx]

	p := s.uniform(sl.box)
	lo, hi := sl.box.Axis(sl.axis)
	f := s.rng.Float64()
	if sl.below {
		// [lo, hi)，hi 为 E 的下边界
		p[sl.axis] = lo + f*(hi-lo)
	} else {
		// (lo, hi]，lo 为 E 的上边界
		p[sl.axis] = hi - f*(hi-lo)
	}

	// 舍入落在 E 的边界上时退到块远离 E 的一端
	if s.exclude.Contains(toConfigVec(p)) {
		if sl.below {
			p[sl.axis] = lo
		} else {
			p[sl.axis] = hi
		}
	}
	return p
}

// subtractBox 把 D \ E 分解为至多 6 个互不重叠的轴对齐块
//
// 依次处理 X、Y、Z 轴：每个轴上先切出 E 之下和 E 之上的部分，
// 剩余部分收缩到 E 在该轴上的范围后继续处理下一轴。
func subtractBox(d, e config.Box3) []slab {
	if !intersects(d, e) {
		return []slab{{box: d, axis: 0, below: true}}
	}

	var out []slab
	rest := d
	for axis := 0; axis < 3; axis++ {
		dlo, dhi := rest.Axis(axis)
		elo, ehi := e.Axis(axis)
		if dlo < elo {
			out = append(out, slab{box: rest.WithAxis(axis, dlo, elo), axis: axis, below: true})
		}
		if dhi > ehi {
			out = append(out, slab{box: rest.WithAxis(axis, ehi, dhi), axis: axis, below: false})
		}
		rest = rest.WithAxis(axis, max(dlo, elo), min(dhi, ehi))
	}
	return out
}

// intersects 两个闭区间盒子是否相交
func intersects(a, b config.Box3) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func toConfigVec(v mgl64.Vec3) config.Vec3 {
	return config.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
