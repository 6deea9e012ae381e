package geometry

import (
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// AABBEpsilon inflates world-space boxes so rays grazing a face or seam still hit
const AABBEpsilon = 1e-4

// AxisAlignedBox is a world-space box given by its center and half-extents
type AxisAlignedBox struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
}

// NewAxisAlignedBox creates a box from its center and half-extents
func NewAxisAlignedBox(center, halfExtents mgl64.Vec3) *AxisAlignedBox {
	return &AxisAlignedBox{Center: center, HalfExtents: halfExtents}
}

// NewAxisAlignedBoxFromSize creates a box from its center and full edge lengths
func NewAxisAlignedBoxFromSize(center, size mgl64.Vec3) *AxisAlignedBox {
	return NewAxisAlignedBox(center, size.Mul(0.5))
}

// Min returns the minimum corner (without inflation)
func (b *AxisAlignedBox) Min() mgl64.Vec3 {
	return b.Center.Sub(b.HalfExtents)
}

// Max returns the maximum corner (without inflation)
func (b *AxisAlignedBox) Max() mgl64.Vec3 {
	return b.Center.Add(b.HalfExtents)
}

// CheckHit implements core.Hitter
func (b *AxisAlignedBox) CheckHit(origin, direction mgl64.Vec3) (float64, bool) {
	d := core.NormalizeOr(direction, core.Forward)

	half := b.HalfExtents.Add(mgl64.Vec3{AABBEpsilon, AABBEpsilon, AABBEpsilon})
	return slabHit(origin, d, b.Center.Sub(half), b.Center.Add(half))
}
