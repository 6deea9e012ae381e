package geometry

import (
	"math"

	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// parallelEpsilon is the |d·n| below which a ray counts as parallel to a plane
const parallelEpsilon = 1e-6

// Up is the ground plane normal
var Up = mgl64.Vec3{0, 1, 0}

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  mgl64.Vec3 // A point on the plane
	Normal mgl64.Vec3 // Unit normal
}

// NewPlane creates a new plane
func NewPlane(point, normal mgl64.Vec3) *Plane {
	return &Plane{
		Point:  point,
		Normal: core.NormalizeOr(normal, Up),
	}
}

// NewGroundPlane creates the horizontal plane y = height facing up
func NewGroundPlane(height float64) *Plane {
	return NewPlane(mgl64.Vec3{0, height, 0}, Up)
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < parallelEpsilon {
		return HitRecord{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Sub(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t > tMax {
		return HitRecord{}, false
	}

	return HitRecord{
		T:      t,
		Point:  ray.At(t),
		Normal: p.Normal,
	}, true
}
