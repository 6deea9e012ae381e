package geometry

import (
	"math"

	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center mgl64.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere. The nearest root inside
// (tMin, tMax] wins; a ray starting inside the sphere reports the far root.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Sub(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root > tMax {
			return HitRecord{}, false
		}
	}

	point := ray.At(root)
	return HitRecord{
		T:      root,
		Point:  point,
		Normal: core.NormalizeOr(point.Sub(s.Center), Up),
	}, true
}
