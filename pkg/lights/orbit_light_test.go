package lights

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestOrbitLight_StartsAtOrbitOrigin(t *testing.T) {
	l := NewOrbitLight(DefaultOrbitConfig())
	assert.Equal(t, mgl64.Vec3{4, 2.5, 0}, l.Position())
	assert.True(t, l.Animating())

	// The default start is the phase-zero orbit point
	assert.True(t, l.OrbitPoint(0).ApproxEqualThreshold(l.Position(), 1e-12))
}

func TestOrbitLight_Orbit(t *testing.T) {
	l := NewOrbitLight(DefaultOrbitConfig())
	for i := 0; i < 10; i++ {
		l.Update(0.1, mgl64.Vec3{})
	}

	assert.InDelta(t, 1.0, l.Phase(), 1e-12)
	want := mgl64.Vec3{4 * math.Cos(1), 2.5 + 0.8*math.Sin(0.9), 4 * math.Sin(1)}
	assert.True(t, l.Position().ApproxEqualThreshold(want, 1e-9), "got %v", l.Position())

	// Orbit radius is constant in XZ
	p := l.Position()
	assert.InDelta(t, 4.0, math.Hypot(p.X(), p.Z()), 1e-9)
}

func TestOrbitLight_PauseFreezesPhase(t *testing.T) {
	l := NewOrbitLight(DefaultOrbitConfig())
	l.Update(0.5, mgl64.Vec3{})
	l.TogglePause()
	assert.False(t, l.Animating())

	pos := l.Position()
	l.Update(2, mgl64.Vec3{})
	assert.Equal(t, 0.5, l.Phase())
	assert.Equal(t, pos, l.Position())

	l.TogglePause()
	l.Update(0.25, mgl64.Vec3{})
	assert.Equal(t, 0.75, l.Phase())
}

func TestOrbitLight_ManualMove(t *testing.T) {
	tests := []struct {
		name string
		move mgl64.Vec3
		dt   float64
		want mgl64.Vec3
	}{
		{"forward", mgl64.Vec3{0, 0, -1}, 0.5, mgl64.Vec3{4, 2.5, -3}},
		{"up", mgl64.Vec3{0, 1, 0}, 0.1, mgl64.Vec3{4, 3.1, 0}},
		{"diagonal is normalized", mgl64.Vec3{1, 0, 1}, 1, mgl64.Vec3{4 + 6/math.Sqrt2, 2.5, 6 / math.Sqrt2}},
		{"no movement", mgl64.Vec3{}, 1, mgl64.Vec3{4, 2.5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewOrbitLight(DefaultOrbitConfig())
			l.TogglePause()
			l.Update(tt.dt, tt.move)
			assert.True(t, l.Position().ApproxEqualThreshold(tt.want, 1e-9), "got %v", l.Position())
		})
	}
}

func TestOrbitLight_AnimationOverridesMoves(t *testing.T) {
	l := NewOrbitLight(DefaultOrbitConfig())
	l.Nudge(mgl64.Vec3{10, 0, 0})
	l.Update(0.2, mgl64.Vec3{})

	// The next animated update snaps back onto the orbit
	assert.True(t, l.Position().ApproxEqualThreshold(l.OrbitPoint(0.2), 1e-12))
}

func TestOrbitLight_NudgeWhilePaused(t *testing.T) {
	l := NewOrbitLight(DefaultOrbitConfig())
	l.TogglePause()
	l.Nudge(mgl64.Vec3{0, -1, 2})
	l.Nudge(mgl64.Vec3{0, -1, 2})
	assert.Equal(t, mgl64.Vec3{4, 0.5, 4}, l.Position())
}

func TestOrbitLight_SetPhaseAndString(t *testing.T) {
	l := NewOrbitLight(DefaultOrbitConfig())
	l.SetPhase(math.Pi / 2)
	got := l.Position()
	assert.InDeltaSlice(t, []float64{0, 2.5 + 0.8*math.Sin(0.9*math.Pi/2), 4}, got[:], 1e-9)

	l.SetPosition(mgl64.Vec3{1, -2.346, 0.004})
	assert.Equal(t, "Light = (1.00, -2.35, 0.00)", l.String())
}
