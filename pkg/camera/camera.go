package camera

import (
	"math"

	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// MinAspect keeps the projection finite for zero-height viewports
const MinAspect = 1e-5

// Config contains camera configuration parameters
type Config struct {
	Eye    mgl64.Vec3 // Camera position
	Target mgl64.Vec3 // Point the camera looks at
	Up     mgl64.Vec3 // Up direction
	FOV    float64    // Vertical field of view in degrees
	Aspect float64    // Width / height
	Near   float64    // Near clip plane
	Far    float64    // Far clip plane
}

// DefaultConfig returns the camera used by the pick scene
func DefaultConfig() Config {
	return Config{
		Eye:    mgl64.Vec3{3, 3, 3},
		Target: mgl64.Vec3{0, 0, 0},
		Up:     mgl64.Vec3{0, 1, 0},
		FOV:    60,
		Aspect: 16.0 / 9.0,
		Near:   0.1,
		Far:    100,
	}
}

// Camera is a perspective look-at camera
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FOV    float64 // degrees
	Near   float64
	Far    float64
	aspect float64
}

// New creates a camera from config
func New(config Config) *Camera {
	c := &Camera{
		Eye:    config.Eye,
		Target: config.Target,
		Up:     config.Up,
		FOV:    config.FOV,
		Near:   config.Near,
		Far:    config.Far,
	}
	c.SetAspect(config.Aspect)
	return c
}

// SetAspect sets the aspect ratio, floored at MinAspect
func (c *Camera) SetAspect(aspect float64) {
	if math.IsNaN(aspect) {
		aspect = MinAspect
	}
	c.aspect = max(MinAspect, aspect)
}

// Aspect returns the current aspect ratio
func (c *Camera) Aspect() float64 {
	return c.aspect
}

// View returns the look-at view matrix
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective projection matrix
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.aspect, c.Near, c.Far)
}

// InverseView returns the camera-to-world matrix
func (c *Camera) InverseView() mgl64.Mat4 {
	return c.View().Inv()
}

// Forward returns the unit view direction
func (c *Camera) Forward() mgl64.Vec3 {
	return core.NormalizeOr(c.Target.Sub(c.Eye), core.Forward)
}

// GenerateRay returns the world-space ray through normalized screen coordinates
// (u, v) in [0,1]^2, with v = 0 at the top of the viewport.
func (c *Camera) GenerateRay(u, v float64) (origin, direction mgl64.Vec3) {
	ndcX := 2*u - 1
	ndcY := 1 - 2*v
	halfTan := math.Tan(mgl64.DegToRad(c.FOV) / 2)

	dirCam := core.NormalizeOr(mgl64.Vec3{ndcX * halfTan * c.aspect, ndcY * halfTan, -1}, core.Forward)
	dirWorld := c.InverseView().Mul4x1(dirCam.Vec4(0)).Vec3()

	return c.Eye, core.NormalizeOr(dirWorld, c.Forward())
}

// Ray is GenerateRay packed into a core.Ray
func (c *Camera) Ray(u, v float64) core.Ray {
	origin, direction := c.GenerateRay(u, v)
	return core.Ray{Origin: origin, Direction: direction}
}
