package renderer

import (
	"github.com/df07/go-pick-raytracer/pkg/camera"
	"github.com/go-gl/mathgl/mgl64"
)

// Shading contains the constants of the Lambert/Phong model
type Shading struct {
	Ambient          float64    // Ambient term, scaled by albedo
	SphereAlbedo     mgl64.Vec3 // Diffuse color of the sphere
	PlaneAlbedo      mgl64.Vec3 // Diffuse color of the ground plane
	SpecularExponent float64    // Phong exponent
	SpecularStrength float64    // Phong highlight scale
	ShadowBias       float64    // Offset along the normal for shadow ray origins
	Background       mgl64.Vec3 // Color of rays that hit nothing
}

// DefaultShading returns the shading constants of the demo scene
func DefaultShading() Shading {
	return Shading{
		Ambient:          0.1,
		SphereAlbedo:     mgl64.Vec3{0.85, 0.3, 0.25},
		PlaneAlbedo:      mgl64.Vec3{0.7, 0.7, 0.7},
		SpecularExponent: 32,
		SpecularStrength: 0.5,
		ShadowBias:       1e-3,
		Background:       mgl64.Vec3{0.08, 0.09, 0.12},
	}
}

// SceneConfig describes the raytraced primitives
type SceneConfig struct {
	SphereCenter mgl64.Vec3
	SphereRadius float64
	PlaneY       float64
	Shading      Shading
}

// DefaultSceneConfig returns the sphere-over-plane scene
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		SphereCenter: mgl64.Vec3{0, 0.5, 0},
		SphereRadius: 0.75,
		PlaneY:       -1,
		Shading:      DefaultShading(),
	}
}

// DefaultCameraConfig returns the camera looking at the raytraced scene
func DefaultCameraConfig() camera.Config {
	config := camera.DefaultConfig()
	config.Eye = mgl64.Vec3{3, 2.5, 3}
	config.Target = mgl64.Vec3{0, 0.5, 0}
	return config
}

// Uniforms is a read-only snapshot of everything needed to shade a frame.
// It is passed by value to every worker.
type Uniforms struct {
	FOV          float64    // Vertical field of view in radians
	Aspect       float64    // Width / height
	InvView      mgl64.Mat4 // Camera-to-world matrix
	SphereCenter mgl64.Vec3
	SphereRadius float64
	PlaneY       float64
	LightPos     mgl64.Vec3
	Shading      Shading
}

// NewUniforms snapshots the camera, scene and light position
func NewUniforms(cam *camera.Camera, scene SceneConfig, lightPos mgl64.Vec3) Uniforms {
	return Uniforms{
		FOV:          mgl64.DegToRad(cam.FOV),
		Aspect:       cam.Aspect(),
		InvView:      cam.InverseView(),
		SphereCenter: scene.SphereCenter,
		SphereRadius: scene.SphereRadius,
		PlaneY:       scene.PlaneY,
		LightPos:     lightPos,
		Shading:      scene.Shading,
	}
}

// Eye returns the camera position
func (u Uniforms) Eye() mgl64.Vec3 {
	return u.InvView.Col(3).Vec3()
}
