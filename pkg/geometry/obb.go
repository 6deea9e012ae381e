package geometry

import (
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// OBBEpsilon inflates the local-space box, smaller than AABBEpsilon because the
// local frame has already absorbed the object's scale
const OBBEpsilon = 3e-4

// ModelFunc returns the live model matrix of the object owning a collision shape
type ModelFunc func() mgl64.Mat4

// OrientedBox is the unit cube [-1,1]^3 placed in the world by its owner's model matrix.
//
// Instead of moving the box into world space, CheckHit moves the ray into the box's
// local frame with the inverse model matrix and runs the axis-aligned slab test there.
// That handles rotation and non-uniform scale without building transformed corners.
type OrientedBox struct {
	model ModelFunc
}

// NewOrientedBox binds a box to its owner's model matrix accessor.
// A nil accessor means the identity transform.
func NewOrientedBox(model ModelFunc) *OrientedBox {
	return &OrientedBox{model: model}
}

// ModelMatrix returns the owner's current model matrix
func (b *OrientedBox) ModelMatrix() mgl64.Mat4 {
	if b.model == nil {
		return mgl64.Ident4()
	}
	return b.model()
}

// Position returns the box center in world space
func (b *OrientedBox) Position() mgl64.Vec3 {
	return b.ModelMatrix().Col(3).Vec3()
}

// Scale returns the per-axis scale of the owner's model matrix
func (b *OrientedBox) Scale() mgl64.Vec3 {
	return core.ScaleOf(b.ModelMatrix())
}

// CheckHit implements core.Hitter. A singular model matrix never hits.
func (b *OrientedBox) CheckHit(origin, direction mgl64.Vec3) (float64, bool) {
	m := b.ModelMatrix()
	inv, ok := core.InvertAffine(m)
	if !ok {
		return 0, false
	}

	local := core.Ray{Origin: origin, Direction: direction}.Transform(inv)

	// The local cube has half-extent 1, so the effective half-extent is the scale itself
	half := core.ScaleOf(m).Add(mgl64.Vec3{OBBEpsilon, OBBEpsilon, OBBEpsilon})
	return slabHit(local.Origin, local.Direction, half.Mul(-1), half)
}
