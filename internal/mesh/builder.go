package mesh

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	cacheMu sync.Mutex
	cache   = make(map[Shape]*Geometry)
)

// Build returns the geometry of a shape, building it on first use.
// The returned geometry is shared and must not be modified.
func Build(s Shape) *Geometry {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if g, ok := cache[s]; ok {
		return g
	}

	var g *Geometry
	switch s.Kind {
	case KindBox:
		g = buildBox(s.Width, s.Height, s.Depth)
	case KindCylinder:
		g = buildCylinder(s.RadiusTop, s.RadiusBottom, s.Height, segments(s))
	case KindCone:
		g = buildCylinder(0, s.RadiusBottom, s.Height, segments(s))
	case KindSphere:
		g = buildSphere(s.Radius, segments(s))
	default:
		g = &Geometry{}
	}

	cache[s] = g
	return g
}

func segments(s Shape) int {
	if s.Segments < 3 {
		return DefaultSegments
	}
	return s.Segments
}

func buildBox(w, h, d float64) *Geometry {
	x, y, z := w/2, h/2, d/2

	v := func(sx, sy, sz float64) mgl64.Vec3 { return mgl64.Vec3{sx * x, sy * y, sz * z} }

	return &Geometry{Faces: []Face{
		{Normal: mgl64.Vec3{1, 0, 0}, Vertices: []mgl64.Vec3{v(1, -1, -1), v(1, 1, -1), v(1, 1, 1), v(1, -1, 1)}},
		{Normal: mgl64.Vec3{-1, 0, 0}, Vertices: []mgl64.Vec3{v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1), v(-1, -1, -1)}},
		{Normal: mgl64.Vec3{0, 1, 0}, Vertices: []mgl64.Vec3{v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1)}},
		{Normal: mgl64.Vec3{0, -1, 0}, Vertices: []mgl64.Vec3{v(-1, -1, 1), v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1)}},
		{Normal: mgl64.Vec3{0, 0, 1}, Vertices: []mgl64.Vec3{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)}},
		{Normal: mgl64.Vec3{0, 0, -1}, Vertices: []mgl64.Vec3{v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1)}},
	}}
}

// ring returns n points on a horizontal circle of radius r at height y.
func ring(r, y float64, n int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = mgl64.Vec3{r * math.Cos(a), y, r * math.Sin(a)}
	}
	return pts
}

func buildCylinder(rt, rb, h float64, n int) *Geometry {
	top := ring(rt, h/2, n)
	bottom := ring(rb, -h/2, n)
	g := &Geometry{Faces: make([]Face, 0, n+2)}

	// side slope: radius shrinks by (rb-rt) over h
	slope := 0.0
	if h > 0 {
		slope = (rb - rt) / h
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		mid := 2 * math.Pi * (float64(i) + 0.5) / float64(n)
		normal := mgl64.Vec3{math.Cos(mid), slope, math.Sin(mid)}.Normalize()

		verts := []mgl64.Vec3{bottom[i], bottom[j], top[j], top[i]}
		if rt == 0 {
			verts = []mgl64.Vec3{bottom[i], bottom[j], top[i]}
		}
		g.Faces = append(g.Faces, Face{Normal: normal, Vertices: verts})
	}

	if rt > 0 {
		capTop := make([]mgl64.Vec3, n)
		copy(capTop, top)
		g.Faces = append(g.Faces, Face{Normal: mgl64.Vec3{0, 1, 0}, Vertices: capTop})
	}
	if rb > 0 {
		capBottom := make([]mgl64.Vec3, n)
		for i := range bottom {
			capBottom[i] = bottom[n-1-i]
		}
		g.Faces = append(g.Faces, Face{Normal: mgl64.Vec3{0, -1, 0}, Vertices: capBottom})
	}
	return g
}

func buildSphere(r float64, n int) *Geometry {
	rings := n / 2
	if rings < 2 {
		rings = 2
	}

	point := func(lat, lon int) mgl64.Vec3 {
		theta := math.Pi * float64(lat) / float64(rings)
		phi := 2 * math.Pi * float64(lon) / float64(n)
		return mgl64.Vec3{
			r * math.Sin(theta) * math.Cos(phi),
			r * math.Cos(theta),
			r * math.Sin(theta) * math.Sin(phi),
		}
	}

	g := &Geometry{Faces: make([]Face, 0, rings*n)}
	for lat := 0; lat < rings; lat++ {
		for lon := 0; lon < n; lon++ {
			a := point(lat, lon)
			b := point(lat, lon+1)
			c := point(lat+1, lon+1)
			d := point(lat+1, lon)

			var verts []mgl64.Vec3
			switch {
			case lat == 0:
				verts = []mgl64.Vec3{a, c, d}
			case lat == rings-1:
				verts = []mgl64.Vec3{a, b, d}
			default:
				verts = []mgl64.Vec3{a, b, c, d}
			}

			centroid := mgl64.Vec3{}
			for _, v := range verts {
				centroid = centroid.Add(v)
			}
			g.Faces = append(g.Faces, Face{Normal: centroid.Normalize(), Vertices: verts})
		}
	}
	return g
}
