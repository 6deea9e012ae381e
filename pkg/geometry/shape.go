package geometry

import (
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	Point  mgl64.Vec3 // Point of intersection
	Normal mgl64.Vec3 // Outward surface normal at intersection
	T      float64    // Parameter t along the ray
}

// Shape interface for analytic surfaces that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool)
}
