package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pick-raytracer/pkg/camera"
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultUniforms(aspect float64, light mgl64.Vec3) Uniforms {
	config := DefaultCameraConfig()
	config.Aspect = aspect
	return NewUniforms(camera.New(config), DefaultSceneConfig(), light)
}

func TestPixelRay_CenterPixelIsForward(t *testing.T) {
	cam := camera.New(DefaultCameraConfig())
	u := NewUniforms(cam, DefaultSceneConfig(), mgl64.Vec3{})

	ray := PixelRay(u, 1, 1, 3, 3)
	assert.True(t, ray.Origin.ApproxEqualThreshold(cam.Eye, 1e-9))
	assert.True(t, ray.Direction.ApproxEqualThreshold(cam.Forward(), 1e-9), "got %v", ray.Direction)
}

func TestPixelRay_MatchesCamera(t *testing.T) {
	cam := camera.New(DefaultCameraConfig())
	cam.SetAspect(2)
	u := NewUniforms(cam, DefaultSceneConfig(), mgl64.Vec3{})

	// Pixel centers map to the same rays as normalized screen coordinates
	ray := PixelRay(u, 3, 1, 8, 4)
	_, want := cam.GenerateRay(3.5/8, 1.5/4)
	assert.True(t, ray.Direction.ApproxEqualThreshold(want, 1e-9))
}

func TestTrace_SphereDistance(t *testing.T) {
	u := defaultUniforms(1, mgl64.Vec3{4, 2.5, 0})
	eye := u.Eye()

	ray := core.NewRay(eye, u.SphereCenter.Sub(eye))
	hit := Trace(u, ray)

	require.Equal(t, SurfaceSphere, hit.Surface)
	want := u.SphereCenter.Sub(eye).Len() - u.SphereRadius
	assert.InDelta(t, want, hit.Record.T, 1e-9)
}

func TestTrace_PlaneAndMiss(t *testing.T) {
	u := defaultUniforms(1, mgl64.Vec3{4, 2.5, 0})

	hit := Trace(u, core.NewRay(mgl64.Vec3{3, 5, 3}, mgl64.Vec3{0, -1, 0}))
	require.Equal(t, SurfacePlane, hit.Surface)
	assert.InDelta(t, 6.0, hit.Record.T, 1e-12)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, hit.Record.Normal)

	// The sphere occludes the plane behind it
	hit = Trace(u, core.NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0}))
	require.Equal(t, SurfaceSphere, hit.Surface)
	assert.InDelta(t, 5-1.25, hit.Record.T, 1e-12)

	miss := Trace(u, core.NewRay(mgl64.Vec3{3, 5, 3}, mgl64.Vec3{0, 1, 0}))
	assert.Equal(t, SurfaceNone, miss.Surface)

	sample := Shade(u, core.NewRay(mgl64.Vec3{3, 5, 3}, mgl64.Vec3{0, 1, 0}), miss)
	assert.Equal(t, u.Shading.Background, sample.Color)
	assert.False(t, sample.Shadowed)
}

func TestShade_HardShadow(t *testing.T) {
	u := defaultUniforms(1, mgl64.Vec3{0, 10, 0})

	// Directly under the sphere the light is blocked
	under := core.NewRay(mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{0, -1, 0})
	hit := Trace(u, under)
	require.Equal(t, SurfacePlane, hit.Surface)

	sample := Shade(u, under, hit)
	assert.True(t, sample.Shadowed)
	ambient := u.Shading.PlaneAlbedo.Mul(u.Shading.Ambient)
	assert.True(t, sample.Color.ApproxEqualThreshold(ambient, 1e-12), "got %v", sample.Color)

	// Out to the side the plane is lit
	side := core.NewRay(mgl64.Vec3{3, 5, 3}, mgl64.Vec3{0, -1, 0})
	lit := Shade(u, side, Trace(u, side))
	assert.False(t, lit.Shadowed)
	assert.Greater(t, lit.Color.X(), ambient.X()+0.5)

	// Same inputs, same answer
	again := Shade(u, under, Trace(u, under))
	assert.Equal(t, sample, again)
}

func TestShade_ShadowFollowsLight(t *testing.T) {
	ray := core.NewRay(mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{0, -1, 0})

	blocked := defaultUniforms(1, mgl64.Vec3{0, 10, 0})
	assert.True(t, Shade(blocked, ray, Trace(blocked, ray)).Shadowed)

	// A light low on the horizon sees under the sphere
	clear := defaultUniforms(1, mgl64.Vec3{50, -0.5, 0})
	assert.False(t, Shade(clear, ray, Trace(clear, ray)).Shadowed)

	// A light between the plane and the sphere is closer than the occluder
	between := defaultUniforms(1, mgl64.Vec3{0, -0.6, 0})
	assert.False(t, Shade(between, ray, Trace(between, ray)).Shadowed)
}

func TestShade_SphereIgnoresSelfShadow(t *testing.T) {
	u := defaultUniforms(1, mgl64.Vec3{0, 10, 0})

	// The underside of the sphere faces away from the light but only the plane can shadow it
	ray := core.NewRay(mgl64.Vec3{0, -0.9, 0}, mgl64.Vec3{0, 1, 0})
	hit := Trace(u, ray)
	require.Equal(t, SurfaceSphere, hit.Surface)

	sample := Shade(u, ray, hit)
	assert.False(t, sample.Shadowed)
}

func TestShade_SpecularHighlight(t *testing.T) {
	u := defaultUniforms(1, mgl64.Vec3{0, 10, 0})

	// Looking straight down at the top of the sphere with the light behind the eye
	ray := core.NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0})
	sample := Shade(u, ray, Trace(u, ray))

	a := u.Shading.SphereAlbedo
	want := core.Clamp01(a.Mul(u.Shading.Ambient + 1).Add(mgl64.Vec3{0.5, 0.5, 0.5}))
	assert.True(t, sample.Color.ApproxEqualThreshold(want, 1e-9), "got %v want %v", sample.Color, want)
}

func TestShadePixel_ColorsInRange(t *testing.T) {
	u := defaultUniforms(4.0/3.0, mgl64.Vec3{0.5, 1.6, 0.5})
	const w, h = 40, 30
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := ShadePixel(u, x, y, w, h)
			for i := 0; i < 3; i++ {
				require.False(t, math.IsNaN(c[i]))
				require.GreaterOrEqual(t, c[i], 0.0)
				require.LessOrEqual(t, c[i], 1.0)
			}
		}
	}
}

func TestSurfaceString(t *testing.T) {
	assert.Equal(t, "sphere", SurfaceSphere.String())
	assert.Equal(t, "plane", SurfacePlane.String())
	assert.Equal(t, "none", SurfaceNone.String())
}
