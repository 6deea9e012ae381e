package scene

import (
	"math"

	"github.com/df07/go-pick-raytracer/pkg/camera"
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// RotationSpeed is the Y spin applied by Update, in radians per second
	RotationSpeed = 0.6
	// SelectedScale is the extra uniform scale drawn on selected objects
	SelectedScale = 1.05
)

// Pickable is an object that can be hit by a pick ray and toggled
type Pickable interface {
	core.Hitter
	Name() string
	Selected() bool
	SetSelected(selected bool)
	ModelMatrix() mgl64.Mat4
}

// Rotator is implemented by objects that the scene animates
type Rotator interface {
	RotateY(radians float64)
}

// Item pairs a scene object with its opaque render payload
type Item struct {
	Object  Pickable
	Payload any
}

// PickResult describes the outcome of a pick
type PickResult struct {
	Object Pickable
	Name   string
	T      float64
	Hit    bool
}

// DrawCommand is one object's draw data, ready for a rasterization backend
type DrawCommand struct {
	Object  Pickable
	Payload any
	Model   mgl64.Mat4 // includes the selection scale
	MVP     mgl64.Mat4 // P * V * Model
	MVP32   mgl32.Mat4 // column-major float32 copy of MVP
}

// Scene holds the pick camera and the objects in render order
type Scene struct {
	Camera *camera.Camera
	items  []Item
	logger core.Logger
}

// NewScene creates an empty scene. A nil logger discards output.
func NewScene(cam *camera.Camera, logger core.Logger) *Scene {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Scene{Camera: cam, logger: logger}
}

// Add appends an object; insertion order is render order
func (s *Scene) Add(obj Pickable, payload any) {
	s.items = append(s.items, Item{Object: obj, Payload: payload})
}

// Items returns the scene items in insertion order
func (s *Scene) Items() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of items
func (s *Scene) Len() int {
	return len(s.items)
}

// Update advances the idle animation by dt seconds
func (s *Scene) Update(dt float64) {
	for _, item := range s.items {
		if r, ok := item.Object.(Rotator); ok {
			r.RotateY(dt * RotationSpeed)
		}
	}
}

// Resize recomputes the camera aspect for a new viewport
func (s *Scene) Resize(width, height int) {
	s.Camera.SetAspect(float64(width) / float64(max(1, height)))
}

// Pick casts a ray through (u, v) and toggles the nearest object hit.
// Ties keep the object added first. A miss changes nothing.
func (s *Scene) Pick(u, v float64) PickResult {
	origin, direction := s.Camera.GenerateRay(u, v)

	var best Pickable
	bestT := math.Inf(1)
	for _, item := range s.items {
		t, ok := item.Object.CheckHit(origin, direction)
		if ok && t >= 0 && t < bestT {
			bestT = t
			best = item.Object
		}
	}

	if best == nil {
		s.logger.Printf("[HIT] none\n")
		return PickResult{}
	}

	best.SetSelected(!best.Selected())
	s.logger.Printf("[HIT] -> %s  t=%.3f\n", best.Name(), bestT)
	return PickResult{Object: best, Name: best.Name(), T: bestT, Hit: true}
}

// DrawList returns per-object draw data in render order
func (s *Scene) DrawList() []DrawCommand {
	viewProj := s.Camera.Projection().Mul4(s.Camera.View())

	commands := make([]DrawCommand, 0, len(s.items))
	for _, item := range s.items {
		model := RenderMatrix(item.Object)
		mvp := viewProj.Mul4(model)
		commands = append(commands, DrawCommand{
			Object:  item.Object,
			Payload: item.Payload,
			Model:   model,
			MVP:     mvp,
			MVP32:   toMat32(mvp),
		})
	}
	return commands
}

// RenderMatrix returns the model matrix used for drawing, enlarged when selected
func RenderMatrix(obj Pickable) mgl64.Mat4 {
	m := obj.ModelMatrix()
	if obj.Selected() {
		m = m.Mul4(mgl64.Scale3D(SelectedScale, SelectedScale, SelectedScale))
	}
	return m
}

func toMat32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}
