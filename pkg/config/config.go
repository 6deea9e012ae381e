package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-pick-raytracer/pkg/camera"
	"github.com/df07/go-pick-raytracer/pkg/lights"
	"github.com/df07/go-pick-raytracer/pkg/renderer"
	"github.com/df07/go-pick-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no path is given
const DefaultPath = "config/demo.yaml"

// Config holds the startup settings of the demo. It is read once and never written back.
type Config struct {
	Window   WindowConfig   `yaml:"window" json:"window"`
	Pick     PickConfig     `yaml:"pick" json:"pick"`
	Raytrace RaytraceConfig `yaml:"raytrace" json:"raytrace"`
	Render   RenderConfig   `yaml:"render" json:"render"`
}

// WindowConfig is the initial viewport
type WindowConfig struct {
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Title  string `yaml:"title" json:"title"`
}

// CameraConfig is a look-at perspective camera
type CameraConfig struct {
	Eye    mgl64.Vec3 `yaml:"eye" json:"eye"`
	Target mgl64.Vec3 `yaml:"target" json:"target"`
	Up     mgl64.Vec3 `yaml:"up" json:"up"`
	FOV    float64    `yaml:"fov" json:"fov"` // degrees
	Near   float64    `yaml:"near" json:"near"`
	Far    float64    `yaml:"far" json:"far"`
}

// CubeConfig places one pickable cube
type CubeConfig struct {
	Name     string     `yaml:"name" json:"name"`
	Position mgl64.Vec3 `yaml:"position" json:"position"`
	Scale    float64    `yaml:"scale" json:"scale"`
}

// PickConfig is the box-picking scene
type PickConfig struct {
	Camera CameraConfig `yaml:"camera" json:"camera"`
	Cubes  []CubeConfig `yaml:"cubes" json:"cubes"`
}

// SphereConfig is the raytraced sphere
type SphereConfig struct {
	Center mgl64.Vec3 `yaml:"center" json:"center"`
	Radius float64    `yaml:"radius" json:"radius"`
}

// LightConfig is the orbiting point light
type LightConfig struct {
	Start      mgl64.Vec3 `yaml:"start" json:"start"`
	Radius     float64    `yaml:"radius" json:"radius"`
	BaseHeight float64    `yaml:"base_height" json:"base_height"`
	Bob        float64    `yaml:"bob" json:"bob"`
	BobRate    float64    `yaml:"bob_rate" json:"bob_rate"`
	Speed      float64    `yaml:"speed" json:"speed"`
}

// ShadingConfig holds the Lambert/Phong constants
type ShadingConfig struct {
	Ambient          float64    `yaml:"ambient" json:"ambient"`
	SphereAlbedo     mgl64.Vec3 `yaml:"sphere_albedo" json:"sphere_albedo"`
	PlaneAlbedo      mgl64.Vec3 `yaml:"plane_albedo" json:"plane_albedo"`
	SpecularExponent float64    `yaml:"specular_exponent" json:"specular_exponent"`
	SpecularStrength float64    `yaml:"specular_strength" json:"specular_strength"`
	Background       mgl64.Vec3 `yaml:"background" json:"background"`
}

// RaytraceConfig is the sphere-and-plane scene
type RaytraceConfig struct {
	Camera  CameraConfig  `yaml:"camera" json:"camera"`
	Sphere  SphereConfig  `yaml:"sphere" json:"sphere"`
	PlaneY  float64       `yaml:"plane_y" json:"plane_y"`
	Light   LightConfig   `yaml:"light" json:"light"`
	Shading ShadingConfig `yaml:"shading" json:"shading"`
}

// RenderConfig controls the parallel frame renderer
type RenderConfig struct {
	TileSize int `yaml:"tile_size" json:"tile_size"`
	Workers  int `yaml:"workers" json:"workers"` // 0 = one per CPU
}

// Default returns the built-in configuration
func Default() Config {
	pickCam := camera.DefaultConfig()
	rtCam := renderer.DefaultCameraConfig()
	sc := renderer.DefaultSceneConfig()
	light := lights.DefaultOrbitConfig()
	rc := renderer.DefaultConfig()

	var cubes []CubeConfig
	for _, c := range scene.DefaultCubes() {
		cubes = append(cubes, CubeConfig{Name: c.Name, Position: c.Position, Scale: c.Scale})
	}

	return Config{
		Window: WindowConfig{Width: 960, Height: 540, Title: "Pick & Raytrace"},
		Pick: PickConfig{
			Camera: fromCamera(pickCam),
			Cubes:  cubes,
		},
		Raytrace: RaytraceConfig{
			Camera: fromCamera(rtCam),
			Sphere: SphereConfig{Center: sc.SphereCenter, Radius: sc.SphereRadius},
			PlaneY: sc.PlaneY,
			Light: LightConfig{
				Start:      light.Start,
				Radius:     light.Radius,
				BaseHeight: light.BaseHeight,
				Bob:        light.Bob,
				BobRate:    light.BobRate,
				Speed:      light.Speed,
			},
			Shading: ShadingConfig{
				Ambient:          sc.Shading.Ambient,
				SphereAlbedo:     sc.Shading.SphereAlbedo,
				PlaneAlbedo:      sc.Shading.PlaneAlbedo,
				SpecularExponent: sc.Shading.SpecularExponent,
				SpecularStrength: sc.Shading.SpecularStrength,
				Background:       sc.Shading.Background,
			},
		},
		Render: RenderConfig{TileSize: rc.TileSize, Workers: rc.NumWorkers},
	}
}

func fromCamera(c camera.Config) CameraConfig {
	return CameraConfig{Eye: c.Eye, Target: c.Target, Up: c.Up, FOV: c.FOV, Near: c.Near, Far: c.Far}
}

// Load reads path over Default(). An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default() and validates the result. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that would make the scenes degenerate
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.Pick.Camera.validate("pick.camera"); err != nil {
		return err
	}
	for i, cube := range c.Pick.Cubes {
		if cube.Name == "" {
			return fmt.Errorf("pick.cubes[%d]: name is required", i)
		}
		if cube.Scale <= 0 {
			return fmt.Errorf("pick.cubes[%d] %s: scale must be positive, got %v", i, cube.Name, cube.Scale)
		}
	}
	if err := c.Raytrace.Camera.validate("raytrace.camera"); err != nil {
		return err
	}
	if c.Raytrace.Sphere.Radius <= 0 {
		return fmt.Errorf("raytrace.sphere: radius must be positive, got %v", c.Raytrace.Sphere.Radius)
	}
	if c.Raytrace.Light.Speed < 0 {
		return fmt.Errorf("raytrace.light: speed must not be negative, got %v", c.Raytrace.Light.Speed)
	}
	if c.Raytrace.Shading.SpecularExponent < 0 {
		return fmt.Errorf("raytrace.shading: specular_exponent must not be negative, got %v", c.Raytrace.Shading.SpecularExponent)
	}
	if c.Render.TileSize <= 0 {
		return fmt.Errorf("render: tile_size must be positive, got %d", c.Render.TileSize)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render: workers must not be negative, got %d", c.Render.Workers)
	}
	return nil
}

func (c CameraConfig) validate(name string) error {
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("%s: fov must be in (0, 180), got %v", name, c.FOV)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("%s: need 0 < near < far, got near=%v far=%v", name, c.Near, c.Far)
	}
	if c.Eye == c.Target {
		return fmt.Errorf("%s: eye and target coincide", name)
	}
	if c.Up.Len() == 0 {
		return fmt.Errorf("%s: up must be non-zero", name)
	}
	return nil
}

// Aspect returns the window aspect ratio
func (c Config) Aspect() float64 {
	return float64(c.Window.Width) / float64(max(1, c.Window.Height))
}

func (c CameraConfig) camera(aspect float64) camera.Config {
	return camera.Config{
		Eye:    c.Eye,
		Target: c.Target,
		Up:     c.Up,
		FOV:    c.FOV,
		Aspect: aspect,
		Near:   c.Near,
		Far:    c.Far,
	}
}

// PickCamera returns the pick scene camera config for aspect
func (c Config) PickCamera(aspect float64) camera.Config {
	return c.Pick.Camera.camera(aspect)
}

// RaytraceCamera returns the raytraced scene camera config for aspect
func (c Config) RaytraceCamera(aspect float64) camera.Config {
	return c.Raytrace.Camera.camera(aspect)
}

// CubeSpecs returns the cubes of the pick scene
func (c Config) CubeSpecs() []scene.CubeSpec {
	specs := make([]scene.CubeSpec, 0, len(c.Pick.Cubes))
	for _, cube := range c.Pick.Cubes {
		specs = append(specs, scene.CubeSpec{Name: cube.Name, Position: cube.Position, Scale: cube.Scale})
	}
	return specs
}

// SceneConfig returns the raytraced primitives and shading
func (c Config) SceneConfig() renderer.SceneConfig {
	sc := renderer.DefaultSceneConfig()
	sc.SphereCenter = c.Raytrace.Sphere.Center
	sc.SphereRadius = c.Raytrace.Sphere.Radius
	sc.PlaneY = c.Raytrace.PlaneY

	s := c.Raytrace.Shading
	sc.Shading.Ambient = s.Ambient
	sc.Shading.SphereAlbedo = s.SphereAlbedo
	sc.Shading.PlaneAlbedo = s.PlaneAlbedo
	sc.Shading.SpecularExponent = s.SpecularExponent
	sc.Shading.SpecularStrength = s.SpecularStrength
	sc.Shading.Background = s.Background
	return sc
}

// OrbitConfig returns the light orbit
func (c Config) OrbitConfig() lights.OrbitConfig {
	l := c.Raytrace.Light
	return lights.OrbitConfig{
		Start:      l.Start,
		Radius:     l.Radius,
		BaseHeight: l.BaseHeight,
		Bob:        l.Bob,
		BobRate:    l.BobRate,
		Speed:      l.Speed,
	}
}

// RendererConfig returns the tile renderer settings
func (c Config) RendererConfig() renderer.Config {
	return renderer.Config{TileSize: c.Render.TileSize, NumWorkers: c.Render.Workers}
}
