package scene

import (
	"github.com/df07/go-pick-raytracer/pkg/camera"
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// CubeSpec places one cube in a pick scene
type CubeSpec struct {
	Name     string
	Position mgl64.Vec3
	Scale    float64
}

// DefaultCubes returns the two cubes of the default pick scene
func DefaultCubes() []CubeSpec {
	return []CubeSpec{
		{Name: "CuboA", Position: mgl64.Vec3{-1.2, 0, 0}, Scale: 0.9},
		{Name: "CuboB", Position: mgl64.Vec3{1.2, 0, 0}, Scale: 0.9},
	}
}

// NewPickScene builds a scene of cubes seen through a camera built from cameraConfig
func NewPickScene(cameraConfig camera.Config, cubes []CubeSpec, logger core.Logger) *Scene {
	s := NewScene(camera.New(cameraConfig), logger)
	for _, spec := range cubes {
		cube := NewCube(spec.Name)
		cube.SetPosition(spec.Position.Elem())
		if spec.Scale != 0 {
			cube.ScaleUniform(spec.Scale)
		}
		s.Add(cube, nil)
	}
	return s
}

// NewDefaultPickScene creates the default two-cube scene for the given aspect ratio
func NewDefaultPickScene(aspect float64, logger core.Logger) *Scene {
	cameraConfig := camera.DefaultConfig()
	cameraConfig.Aspect = aspect
	return NewPickScene(cameraConfig, DefaultCubes(), logger)
}
