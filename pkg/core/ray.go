package core

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay creates a new ray. The direction is normalized; a zero direction
// becomes Forward.
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: NormalizeOr(direction, Forward)}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps the ray through m: the origin as a point (w=1) and the direction
// as a vector (w=0). The result is renormalized.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	o := m.Mul4x1(r.Origin.Vec4(1)).Vec3()
	d := m.Mul4x1(r.Direction.Vec4(0)).Vec3()
	return NewRay(o, d)
}
