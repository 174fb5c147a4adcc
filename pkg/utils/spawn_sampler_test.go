package utils

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gonewx/cozyroom/pkg/config"
)

func box(x0, y0, z0, x1, y1, z1 float64) config.Box3 {
	return config.Box3{
		Min: config.Vec3{X: x0, Y: y0, Z: z0},
		Max: config.Vec3{X: x1, Y: y1, Z: z1},
	}
}

func TestNewSpawnSamplerRejectsCoveredSpawn(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	_, err := NewSpawnSampler(box(0, 0, 0, 1, 1, 1), box(-1, -1, -1, 2, 2, 2), 16, rng)
	if !errors.Is(err, config.ErrSpawnCoveredByInterior) {
		t.Errorf("err = %v, want ErrSpawnCoveredByInterior", err)
	}

	_, err = NewSpawnSampler(box(1, 0, 0, 0, 1, 1), box(5, 5, 5, 6, 6, 6), 16, rng)
	if !errors.Is(err, config.ErrInvalidBox) {
		t.Errorf("err = %v, want ErrInvalidBox", err)
	}
}

// TestSpawnSamplerNeverInsideExclude 各种 D / E 组合下，采样点都在 D 内且不在 E 内
func TestSpawnSamplerNeverInsideExclude(t *testing.T) {
	tests := []struct {
		name        string
		spawn       config.Box3
		exclude     config.Box3
		maxAttempts int
		wantSlabs   int
	}{
		{
			name:        "window rain behind back wall",
			spawn:       box(-1, 0, -2.9, 1, 3.8, -1.7),
			exclude:     box(-2.1, -0.1, -2.1, 2, 4, 2),
			maxAttempts: 16,
			wantSlabs:   1,
		},
		{
			name:        "exclude in the middle of spawn",
			spawn:       box(-1, -1, -1, 1, 1, 1),
			exclude:     box(-0.5, -0.5, -0.5, 0.5, 0.5, 0.5),
			maxAttempts: 0,
			wantSlabs:   6,
		},
		{
			name:        "mostly covered spawn forces fallback",
			spawn:       box(0, 0, 0, 1, 1, 1),
			exclude:     box(-1, -1, -1, 0.999, 2, 2),
			maxAttempts: 4,
			wantSlabs:   1,
		},
		{
			name:        "disjoint boxes",
			spawn:       box(0, 0, 0, 1, 1, 1),
			exclude:     box(5, 5, 5, 6, 6, 6),
			maxAttempts: 16,
			wantSlabs:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSpawnSampler(tt.spawn, tt.exclude, tt.maxAttempts, rand.New(rand.NewPCG(7, 11)))
			if err != nil {
				t.Fatalf("NewSpawnSampler() error: %v", err)
			}
			if s.Slabs() != tt.wantSlabs {
				t.Errorf("Slabs() = %d, want %d", s.Slabs(), tt.wantSlabs)
			}

			for i := 0; i < 5000; i++ {
				p, _ := s.Sample()
				cp := toConfigVec(p)
				if tt.exclude.Contains(cp) {
					t.Fatalf("sample %d at %v is inside the excluded volume", i, p)
				}
				if !tt.spawn.Contains(cp) {
					t.Fatalf("sample %d at %v is outside the spawn volume", i, p)
				}
			}
		})
	}
}

// TestSpawnSamplerFallbackUsed 拒绝采样次数为 0 时总是使用分解采样
func TestSpawnSamplerFallbackUsed(t *testing.T) {
	s, err := NewSpawnSampler(box(0, 0, 0, 1, 1, 1), box(0.5, -1, -1, 2, 2, 2), 0, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatalf("NewSpawnSampler() error: %v", err)
	}
	for i := 0; i < 100; i++ {
		p, fallback := s.Sample()
		if !fallback {
			t.Fatal("expected fallback sampling with zero attempts")
		}
		if p.X() >= 0.5 {
			t.Fatalf("fallback sample x = %v, want < 0.5", p.X())
		}
	}
}

// TestSpawnSamplerSlabWeights 分解采样按体积加权
func TestSpawnSamplerSlabWeights(t *testing.T) {
	// E 切掉 x ∈ [0.25, 0.5]，剩下左侧 0.25 与右侧 0.5
	s, err := NewSpawnSampler(box(0, 0, 0, 1, 1, 1), box(0.25, -1, -1, 0.5, 2, 2), 0, rand.New(rand.NewPCG(5, 6)))
	if err != nil {
		t.Fatalf("NewSpawnSampler() error: %v", err)
	}

	left := 0
	const n = 20000
	for i := 0; i < n; i++ {
		p, _ := s.Sample()
		if p.X() < 0.25 {
			left++
		}
	}
	ratio := float64(left) / n
	if ratio < 0.30 || ratio > 0.37 {
		t.Errorf("left share = %.3f, want about 1/3", ratio)
	}
}

// TestSpawnSamplerDeterministic 相同种子产生相同序列
func TestSpawnSamplerDeterministic(t *testing.T) {
	d := box(-1, 0, -2.9, 1, 3.8, -1.7)
	e := box(-2.1, -0.1, -2.1, 2, 4, 2)
	a, _ := NewSpawnSampler(d, e, 16, rand.New(rand.NewPCG(9, 9)))
	b, _ := NewSpawnSampler(d, e, 16, rand.New(rand.NewPCG(9, 9)))
	for i := 0; i < 100; i++ {
		pa, _ := a.Sample()
		pb, _ := b.Sample()
		if pa != pb {
			t.Fatalf("sample %d differs: %v vs %v", i, pa, pb)
		}
	}
}
