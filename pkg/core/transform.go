package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an affine model matrix accumulated from translate, rotate and scale calls.
//
// Translation pre-multiplies the accumulated matrix, so it always moves the object
// along world axes. Rotation and scale post-multiply, so they act in the object's
// own frame and spin or grow it in place.
type Transform struct {
	m mgl64.Mat4
}

// NewTransform returns the identity transform
func NewTransform() Transform {
	return Transform{m: mgl64.Ident4()}
}

// TransformFromMatrix wraps an existing matrix
func TransformFromMatrix(m mgl64.Mat4) Transform {
	return Transform{m: m}
}

// Matrix returns a copy of the model matrix
func (t *Transform) Matrix() mgl64.Mat4 {
	return t.m
}

// Translate applies M = T(x,y,z) * M
func (t *Transform) Translate(x, y, z float64) {
	t.m = mgl64.Translate3D(x, y, z).Mul4(t.m)
}

// RotateY applies M = M * Ry(radians)
func (t *Transform) RotateY(radians float64) {
	t.m = t.m.Mul4(mgl64.HomogRotate3DY(radians))
}

// ScaleUniform applies M = M * S(s,s,s)
func (t *Transform) ScaleUniform(s float64) {
	t.Scale3(s, s, s)
}

// Scale3 applies M = M * S(x,y,z)
func (t *Transform) Scale3(x, y, z float64) {
	t.m = t.m.Mul4(mgl64.Scale3D(x, y, z))
}

// Position returns the translation column
func (t *Transform) Position() mgl64.Vec3 {
	return t.m.Col(3).Vec3()
}

// Scale returns the per-axis scale, the lengths of the first three columns
func (t *Transform) Scale() mgl64.Vec3 {
	return ScaleOf(t.m)
}

// ScaleOf extracts the per-axis scale of an affine matrix
func ScaleOf(m mgl64.Mat4) mgl64.Vec3 {
	return mgl64.Vec3{
		m.Col(0).Vec3().Len(),
		m.Col(1).Vec3().Len(),
		m.Col(2).Vec3().Len(),
	}
}

// Inverse returns the inverse model matrix and false if the matrix is singular
func (t *Transform) Inverse() (mgl64.Mat4, bool) {
	return InvertAffine(t.m)
}

// singularDet is the determinant magnitude below which a model matrix is treated as degenerate
const singularDet = 1e-12

// InvertAffine inverts m, reporting false when it is (near) singular.
// mgl64's Inv silently returns the zero matrix in that case.
func InvertAffine(m mgl64.Mat4) (mgl64.Mat4, bool) {
	det := m.Det()
	if math.Abs(det) < singularDet || math.IsNaN(det) {
		return mgl64.Mat4{}, false
	}
	return m.Inv(), true
}
