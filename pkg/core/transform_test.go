package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_TranslateIsWorldSpace(t *testing.T) {
	tr := NewTransform()
	tr.RotateY(math.Pi / 2)
	tr.Translate(1, 0, 0)

	// Translation pre-multiplies, so the rotation must not redirect it
	pos := tr.Position()
	assert.InDeltaSlice(t, []float64{1, 0, 0}, pos[:], 1e-12)
}

func TestTransform_RotateAndScaleInPlace(t *testing.T) {
	tr := NewTransform()
	tr.Translate(2, 0, 0)
	tr.RotateY(math.Pi / 2)
	tr.ScaleUniform(0.5)

	// Post-multiplied rotation/scale leave the position where it was
	assert.True(t, tr.Position().ApproxEqualThreshold(mgl64.Vec3{2, 0, 0}, 1e-12), "got %v", tr.Position())
	assert.True(t, tr.Scale().ApproxEqualThreshold(mgl64.Vec3{0.5, 0.5, 0.5}, 1e-12), "got %v", tr.Scale())

	// Local +X now points along world -Z
	p := tr.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	assert.InDeltaSlice(t, []float64{2, 0, -0.5}, p[:], 1e-12)
}

func TestTransform_OrderMatters(t *testing.T) {
	a := NewTransform()
	a.Translate(1, 0, 0)
	a.ScaleUniform(2)

	b := NewTransform()
	b.ScaleUniform(2)
	b.Translate(1, 0, 0)

	// Both orders keep the translation in world units because translate pre-multiplies
	assert.Equal(t, a.Position(), b.Position())

	// A world-space scale (pre-multiplied) would have doubled it; ours does not
	assert.InDelta(t, 1.0, a.Position().X(), 1e-12)
}

func TestTransform_NonUniformScale(t *testing.T) {
	tr := NewTransform()
	tr.RotateY(0.3)
	tr.Scale3(1, 2, 3)
	got := tr.Scale()
	assert.InDeltaSlice(t, []float64{1, 2, 3}, got[:], 1e-12)

	// Scaling before a rotation shears the columns, so per-axis Scale no longer reads it back
	sheared := NewTransform()
	sheared.Scale3(1, 2, 3)
	sheared.RotateY(0.3)
	got = sheared.Scale()
	assert.InDelta(t, 2.0, got.Y(), 1e-12)
	assert.InDelta(t, math.Sqrt(math.Pow(math.Cos(0.3), 2)+math.Pow(3*math.Sin(0.3), 2)), got.X(), 1e-12)
}

func TestTransform_Inverse(t *testing.T) {
	tr := NewTransform()
	tr.Translate(1, 2, 3)
	tr.RotateY(0.7)
	tr.ScaleUniform(1.5)

	inv, ok := tr.Inverse()
	require.True(t, ok)
	id := tr.Matrix().Mul4(inv)
	ident := mgl64.Ident4()
	assert.InDeltaSlice(t, ident[:], id[:], 1e-9)

	singular := NewTransform()
	singular.ScaleUniform(0)
	_, ok = singular.Inverse()
	assert.False(t, ok)
}

func TestRay_NormalizesAndFallsBack(t *testing.T) {
	r := NewRay(mgl64.Vec3{}, mgl64.Vec3{0, 3, 4})
	assert.InDelta(t, 1.0, r.Direction.Len(), 1e-12)
	assert.InDelta(t, 0.6, r.Direction.Y(), 1e-12)

	r = NewRay(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{})
	assert.Equal(t, Forward, r.Direction)
	assert.Equal(t, mgl64.Vec3{1, 1, 0}, r.At(1))
}

func TestRay_Transform(t *testing.T) {
	m := mgl64.Translate3D(5, 0, 0).Mul4(mgl64.Scale3D(2, 2, 2))
	r := NewRay(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, -1}).Transform(m)

	assert.True(t, r.Origin.ApproxEqualThreshold(mgl64.Vec3{7, 0, 0}, 1e-12))
	// Direction ignores translation and is renormalized after scaling
	assert.True(t, r.Direction.ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-12))
}

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero maps to positive epsilon", 0, DirectionEpsilon},
		{"tiny positive", 1e-12, DirectionEpsilon},
		{"tiny negative", -1e-12, -DirectionEpsilon},
		{"large value untouched", 0.25, 0.25},
		{"negative value untouched", -3, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeDiv(tt.in))
		})
	}

	d := ClampDirection(mgl64.Vec3{0, -0.0, 1})
	assert.True(t, IsFinite(DivVec(mgl64.Vec3{1, 1, 1}, d)))
}

func TestNormalizeOr(t *testing.T) {
	fb := mgl64.Vec3{0, 1, 0}
	assert.Equal(t, fb, NormalizeOr(mgl64.Vec3{}, fb))
	assert.Equal(t, fb, NormalizeOr(mgl64.Vec3{math.NaN(), 0, 0}, fb))
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, NormalizeOr(mgl64.Vec3{4, 0, 0}, fb))
}

func TestReflectAndClamp(t *testing.T) {
	r := Reflect(mgl64.Vec3{1, -1, 0}, mgl64.Vec3{0, 1, 0})
	assert.Equal(t, mgl64.Vec3{1, 1, 0}, r)
	assert.Equal(t, mgl64.Vec3{0, 0.5, 1}, Clamp01(mgl64.Vec3{-1, 0.5, 2}))
}
