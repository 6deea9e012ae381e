package renderer

import (
	"math"

	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/df07/go-pick-raytracer/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// primaryTMin rejects self-intersections at the camera
const primaryTMin = 1e-4

// Surface identifies which primitive a ray hit
type Surface int

const (
	SurfaceNone Surface = iota
	SurfaceSphere
	SurfacePlane
)

func (s Surface) String() string {
	switch s {
	case SurfaceSphere:
		return "sphere"
	case SurfacePlane:
		return "plane"
	default:
		return "none"
	}
}

// Hit is the nearest primary intersection of a ray
type Hit struct {
	Surface Surface
	Record  geometry.HitRecord
}

// PixelSample is the shaded result of one pixel
type PixelSample struct {
	Color    mgl64.Vec3
	Surface  Surface
	Shadowed bool
}

// PixelRay returns the primary ray through the center of pixel (x, y) of a
// width x height image, with y = 0 at the top row
func PixelRay(u Uniforms, x, y, width, height int) core.Ray {
	px := (float64(x) + 0.5) / float64(max(1, width))
	py := (float64(y) + 0.5) / float64(max(1, height))

	ndcX := 2*px - 1
	ndcY := 1 - 2*py
	halfTan := math.Tan(u.FOV / 2)

	dirCam := mgl64.Vec3{ndcX * halfTan * u.Aspect, ndcY * halfTan, -1}
	dirWorld := u.InvView.Mul4x1(dirCam.Vec4(0)).Vec3()
	return core.NewRay(u.Eye(), dirWorld)
}

func (u Uniforms) sphere() geometry.Sphere {
	return geometry.Sphere{Center: u.SphereCenter, Radius: u.SphereRadius}
}

func (u Uniforms) plane() geometry.Plane {
	return geometry.Plane{Point: mgl64.Vec3{0, u.PlaneY, 0}, Normal: geometry.Up}
}

// Trace finds the nearest of the sphere and the plane along ray
func Trace(u Uniforms, ray core.Ray) Hit {
	sphere, plane := u.sphere(), u.plane()

	best := Hit{Surface: SurfaceNone}
	closest := math.Inf(1)

	if rec, ok := sphere.Hit(ray, primaryTMin, closest); ok {
		best = Hit{Surface: SurfaceSphere, Record: rec}
		closest = rec.T
	}
	if rec, ok := plane.Hit(ray, primaryTMin, closest); ok {
		best = Hit{Surface: SurfacePlane, Record: rec}
	}
	return best
}

// occluded reports whether the primitive other than the one at hit blocks
// the segment from p towards the light
func occluded(u Uniforms, hit Hit, p, toLight mgl64.Vec3, dist float64) bool {
	shadowRay := core.Ray{Origin: p, Direction: toLight}

	var other geometry.Shape
	switch hit.Surface {
	case SurfaceSphere:
		plane := u.plane()
		other = &plane
	case SurfacePlane:
		sphere := u.sphere()
		other = &sphere
	default:
		return false
	}

	rec, ok := other.Hit(shadowRay, 0, math.Inf(1))
	return ok && rec.T < dist
}

// Shade evaluates ambient + Lambert diffuse + Phong specular at hit, with a
// single hard shadow test. A miss returns the background color.
func Shade(u Uniforms, ray core.Ray, hit Hit) PixelSample {
	s := u.Shading
	if hit.Surface == SurfaceNone {
		return PixelSample{Color: s.Background}
	}

	albedo := s.SphereAlbedo
	if hit.Surface == SurfacePlane {
		albedo = s.PlaneAlbedo
	}

	p := hit.Record.Point
	n := hit.Record.Normal

	toLight := u.LightPos.Sub(p)
	dist := toLight.Len()
	l := core.NormalizeOr(toLight, n)

	ambient := albedo.Mul(s.Ambient)

	if occluded(u, hit, p.Add(n.Mul(s.ShadowBias)), l, dist) {
		return PixelSample{Color: core.Clamp01(ambient), Surface: hit.Surface, Shadowed: true}
	}

	diffuse := max(0, n.Dot(l))
	v := ray.Direction.Mul(-1)
	r := core.Reflect(l.Mul(-1), n)
	spec := s.SpecularStrength * math.Pow(max(0, r.Dot(v)), s.SpecularExponent)

	c := ambient.Add(albedo.Mul(diffuse)).Add(mgl64.Vec3{spec, spec, spec})
	return PixelSample{Color: core.Clamp01(c), Surface: hit.Surface}
}

// ShadePixel shades pixel (x, y) of a width x height frame
func ShadePixel(u Uniforms, x, y, width, height int) mgl64.Vec3 {
	return SamplePixel(u, x, y, width, height).Color
}

// SamplePixel is ShadePixel with the hit surface and shadow flag
func SamplePixel(u Uniforms, x, y, width, height int) PixelSample {
	ray := PixelRay(u, x, y, width, height)
	return Shade(u, ray, Trace(u, ray))
}
