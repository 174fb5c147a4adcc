package mesh

import (
	"math"
	"testing"
)

func TestBuildBox(t *testing.T) {
	g := Build(Box(2, 4, 6))
	if len(g.Faces) != 6 {
		t.Fatalf("box should have 6 faces, got %d", len(g.Faces))
	}

	for i, f := range g.Faces {
		if len(f.Vertices) != 4 {
			t.Errorf("face %d: expected 4 vertices, got %d", i, len(f.Vertices))
		}
		// every vertex of a face lies on the plane the normal points to
		for _, v := range f.Vertices {
			d := v.Dot(f.Normal)
			want := math.Abs(f.Normal[0])*1 + math.Abs(f.Normal[1])*2 + math.Abs(f.Normal[2])*3
			if math.Abs(d-want) > 1e-9 {
				t.Errorf("face %d: vertex %v off plane (dot=%v, want %v)", i, v, d, want)
			}
		}
	}
}

func TestBuildCylinderAndCone(t *testing.T) {
	cyl := Build(Cylinder(0.1, 0.2, 1, 8))
	if len(cyl.Faces) != 8+2 {
		t.Errorf("cylinder with 8 segments should have 10 faces, got %d", len(cyl.Faces))
	}

	cone := Build(Cone(0.05, 0.15, 6))
	if len(cone.Faces) != 6+1 {
		t.Errorf("cone with 6 segments should have 7 faces, got %d", len(cone.Faces))
	}
	for i := 0; i < 6; i++ {
		if n := len(cone.Faces[i].Vertices); n != 3 {
			t.Errorf("cone side %d should be a triangle, got %d vertices", i, n)
		}
	}
}

func TestBuildSphereNormalsPointOutward(t *testing.T) {
	g := Build(Sphere(1, 8))
	if len(g.Faces) != 4*8 {
		t.Fatalf("sphere with 8 segments should have 32 faces, got %d", len(g.Faces))
	}
	for i, f := range g.Faces {
		if f.Normal.Dot(f.Vertices[0]) <= 0 {
			t.Errorf("face %d normal points inward", i)
		}
		if math.Abs(f.Normal.Len()-1) > 1e-9 {
			t.Errorf("face %d normal is not unit length", i)
		}
	}
}

func TestBuildIsCached(t *testing.T) {
	a := Build(Box(1, 1, 1))
	b := Build(Box(1, 1, 1))
	if a != b {
		t.Error("identical shapes should share cached geometry")
	}
}

func TestSegmentsFallback(t *testing.T) {
	g := Build(Cylinder(1, 1, 1, 0))
	if len(g.Faces) != DefaultSegments+2 {
		t.Errorf("segments < 3 should fall back to %d, got %d faces", DefaultSegments, len(g.Faces))
	}
}
