package config

// Vec3 三维坐标（场景单位，房间边长为 4）
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Add 返回 v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale 返回 v * k
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Box3 轴对齐包围盒，Min/Max 均为闭区间端点
type Box3 struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// Contains 判断点是否在盒内（边界算在盒内）
func (b Box3) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Valid 判断 Min 是否在每个轴上都不大于 Max
func (b Box3) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// CoveredBy 判断 b 是否完全落在 o 内部（b ⊆ o）
func (b Box3) CoveredBy(o Box3) bool {
	return o.Contains(b.Min) && o.Contains(b.Max)
}

// Axis 返回第 i 个轴（0=X,1=Y,2=Z）上的区间
func (b Box3) Axis(i int) (lo, hi float64) {
	switch i {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}

// WithAxis 返回把第 i 个轴区间替换为 [lo, hi] 后的新盒子
func (b Box3) WithAxis(i int, lo, hi float64) Box3 {
	switch i {
	case 0:
		b.Min.X, b.Max.X = lo, hi
	case 1:
		b.Min.Y, b.Max.Y = lo, hi
	default:
		b.Min.Z, b.Max.Z = lo, hi
	}
	return b
}

// Volume 盒子体积（非法盒子返回 0）
func (b Box3) Volume() float64 {
	if !b.Valid() {
		return 0
	}
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y) * (b.Max.Z - b.Min.Z)
}
