package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// OrbitConfig describes a point light circling the Y axis
type OrbitConfig struct {
	Start      mgl64.Vec3 // Position before the first update
	Radius     float64    // Orbit radius in XZ
	BaseHeight float64    // Mean height of the orbit
	Bob        float64    // Amplitude of the vertical oscillation
	BobRate    float64    // Angular rate of the vertical oscillation relative to the phase
	Speed      float64    // Manual movement speed in units per second
}

// DefaultOrbitConfig returns the light setup of the raytraced scene
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Start:      mgl64.Vec3{4, 2.5, 0},
		Radius:     4,
		BaseHeight: 2.5,
		Bob:        0.8,
		BobRate:    0.9,
		Speed:      6,
	}
}

// OrbitLight is a point light that orbits the scene and can be pushed around by hand.
//
// While animating, each update advances the phase and snaps the light back onto
// the orbit, so manual offsets only persist while the animation is paused.
type OrbitLight struct {
	config    OrbitConfig
	position  mgl64.Vec3
	phase     float64
	animating bool
}

// NewOrbitLight creates an animating light at config.Start
func NewOrbitLight(config OrbitConfig) *OrbitLight {
	return &OrbitLight{
		config:    config,
		position:  config.Start,
		animating: true,
	}
}

// Update advances the orbit by dt seconds and then applies manual movement.
// A non-zero move is normalized, so diagonal input is not faster.
func (l *OrbitLight) Update(dt float64, move mgl64.Vec3) {
	if l.animating {
		l.phase += dt
		l.position = l.OrbitPoint(l.phase)
	}

	if move.Len() > 0 {
		dir := core.NormalizeOr(move, mgl64.Vec3{})
		l.Nudge(dir.Mul(l.config.Speed * dt))
	}
}

// OrbitPoint returns the orbit position at the given phase
func (l *OrbitLight) OrbitPoint(phase float64) mgl64.Vec3 {
	return mgl64.Vec3{
		l.config.Radius * math.Cos(phase),
		l.config.BaseHeight + l.config.Bob*math.Sin(l.config.BobRate*phase),
		l.config.Radius * math.Sin(phase),
	}
}

// SetPhase jumps the orbit to phase and places the light there
func (l *OrbitLight) SetPhase(phase float64) {
	l.phase = phase
	l.position = l.OrbitPoint(phase)
}

// Nudge offsets the light position regardless of animation state
func (l *OrbitLight) Nudge(delta mgl64.Vec3) {
	l.position = l.position.Add(delta)
}

// SetPosition places the light directly
func (l *OrbitLight) SetPosition(p mgl64.Vec3) {
	l.position = p
}

// TogglePause freezes or resumes the orbit; the phase is kept
func (l *OrbitLight) TogglePause() {
	l.animating = !l.animating
}

// Position returns the light position
func (l *OrbitLight) Position() mgl64.Vec3 { return l.position }

// Phase returns the orbit phase in radians
func (l *OrbitLight) Phase() float64 { return l.phase }

// Animating reports whether the orbit is running
func (l *OrbitLight) Animating() bool { return l.animating }

// Speed returns the manual movement speed
func (l *OrbitLight) Speed() float64 { return l.config.Speed }

func (l *OrbitLight) String() string {
	return fmt.Sprintf("Light = (%.2f, %.2f, %.2f)", l.position.X(), l.position.Y(), l.position.Z())
}
