package config

import "testing"

func TestBox3Contains(t *testing.T) {
	b := Box3{Min: Vec3{X: -1, Y: 0, Z: -1}, Max: Vec3{X: 1, Y: 2, Z: 1}}

	tests := []struct {
		name string
		p    Vec3
		want bool
	}{
		{"中心", Vec3{Y: 1}, true},
		{"边界算在内", Vec3{X: 1, Y: 2, Z: 1}, true},
		{"X 越界", Vec3{X: 1.01, Y: 1}, false},
		{"Y 越界", Vec3{Y: -0.01}, false},
		{"Z 越界", Vec3{Y: 1, Z: -1.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, 期望 %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBox3CoveredBy(t *testing.T) {
	outer := Box3{Min: Vec3{X: -2, Y: -2, Z: -2}, Max: Vec3{X: 2, Y: 2, Z: 2}}
	inner := Box3{Min: Vec3{X: -1, Y: -1, Z: -1}, Max: Vec3{X: 1, Y: 1, Z: 1}}

	if !inner.CoveredBy(outer) {
		t.Error("inner 应被 outer 覆盖")
	}
	if outer.CoveredBy(inner) {
		t.Error("outer 不应被 inner 覆盖")
	}
}

func TestBox3WithAxis(t *testing.T) {
	b := Box3{Max: Vec3{X: 1, Y: 1, Z: 1}}
	b2 := b.WithAxis(2, -3, -2)
	if lo, hi := b2.Axis(2); lo != -3 || hi != -2 {
		t.Errorf("Axis(2) = [%v, %v], 期望 [-3, -2]", lo, hi)
	}
	if b2.Volume() != 1 {
		t.Errorf("Volume() = %v, 期望 1", b2.Volume())
	}
}
