// Package mesh builds faceted, flat-shaded geometry for the handful of
// primitive shapes the room scene is made of.
//
// Geometry is expressed in local space, centred on the origin, with Y up.
// Every face is a planar convex polygon with an outward unit normal, which is
// all the isometric painter needs: faces are transformed, shaded once and
// filled as triangle fans.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// Kind identifies a primitive shape.
type Kind int

const (
	// KindBox is an axis-aligned box of Width x Height x Depth.
	KindBox Kind = iota
	// KindCylinder is a (possibly tapered) cylinder along Y.
	KindCylinder
	// KindCone is a cylinder whose top radius is zero.
	KindCone
	// KindSphere is a UV sphere.
	KindSphere
)

// String returns the shape name used in logs.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	case KindSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Shape describes a primitive. It is comparable and doubles as the
// geometry cache key.
type Shape struct {
	Kind Kind

	// Box dimensions.
	Width, Height, Depth float64

	// Cylinder/cone radii; Height is shared with the box dimensions.
	RadiusTop, RadiusBottom float64

	// Sphere radius.
	Radius float64

	// Segments around the Y axis (cylinder, cone, sphere). Values below 3
	// fall back to DefaultSegments.
	Segments int
}

// DefaultSegments is used when a shape does not specify one.
const DefaultSegments = 8

// Face is a planar convex polygon in local space.
type Face struct {
	Vertices []mgl64.Vec3
	Normal   mgl64.Vec3
}

// Geometry is the list of faces of a shape.
type Geometry struct {
	Faces []Face
}

// Box returns a box shape.
func Box(w, h, d float64) Shape {
	return Shape{Kind: KindBox, Width: w, Height: h, Depth: d}
}

// Cylinder returns a cylinder shape.
func Cylinder(radiusTop, radiusBottom, height float64, segments int) Shape {
	return Shape{Kind: KindCylinder, RadiusTop: radiusTop, RadiusBottom: radiusBottom, Height: height, Segments: segments}
}

// Cone returns a cone shape.
func Cone(radius, height float64, segments int) Shape {
	return Shape{Kind: KindCone, RadiusBottom: radius, Height: height, Segments: segments}
}

// Sphere returns a sphere shape.
func Sphere(radius float64, segments int) Shape {
	return Shape{Kind: KindSphere, Radius: radius, Segments: segments}
}
