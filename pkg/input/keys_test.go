package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestKeySet(t *testing.T) {
	ks := NewKeySet()
	assert.False(t, ks.Held(KeyW))

	ks.Press(KeyW)
	ks.Press(KeyW)
	assert.True(t, ks.Held(KeyW))

	ks.Release(KeyW)
	assert.False(t, ks.Held(KeyW))

	// Releasing a key that was never pressed is harmless
	ks.Release(KeyD)
	assert.Empty(t, ks)
}

func TestLightMove(t *testing.T) {
	tests := []struct {
		name string
		held []Key
		want mgl64.Vec3
	}{
		{"nothing held", nil, mgl64.Vec3{}},
		{"W", []Key{KeyW}, mgl64.Vec3{0, 0, -1}},
		{"S", []Key{KeyS}, mgl64.Vec3{0, 0, 1}},
		{"A", []Key{KeyA}, mgl64.Vec3{-1, 0, 0}},
		{"D", []Key{KeyD}, mgl64.Vec3{1, 0, 0}},
		{"R", []Key{KeyR}, mgl64.Vec3{0, 1, 0}},
		{"F", []Key{KeyF}, mgl64.Vec3{0, -1, 0}},
		{"W+D", []Key{KeyW, KeyD}, mgl64.Vec3{1, 0, -1}},
		{"opposites cancel", []Key{KeyW, KeyS, KeyR, KeyF}, mgl64.Vec3{}},
		{"non-movement keys ignored", []Key{KeySpace, KeyH, KeyT}, mgl64.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks := NewKeySet()
			for _, k := range tt.held {
				ks.Press(k)
			}
			assert.Equal(t, tt.want, LightMove(ks))
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Space", KeySpace.String())
	assert.Equal(t, "T", KeyT.String())
	assert.Equal(t, "Unknown", Key(99).String())
}
