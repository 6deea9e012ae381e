package geometry

import (
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// slabHit intersects a ray with the box [bmin, bmax] using the slab method.
// Direction components near zero are clamped to ±core.DirectionEpsilon so rays
// parallel to a slab never produce NaN or Inf. The reported distance is
// max(0, tNear): an origin inside the box reports 0.
func slabHit(origin, direction, bmin, bmax mgl64.Vec3) (float64, bool) {
	d := core.ClampDirection(direction)

	t1 := core.DivVec(bmin.Sub(origin), d)
	t2 := core.DivVec(bmax.Sub(origin), d)

	tmin := core.MinVec(t1, t2)
	tmax := core.MaxVec(t1, t2)

	tNear := max(tmin[0], tmin[1], tmin[2])
	tFar := min(tmax[0], tmax[1], tmax[2])

	if tNear <= tFar && tFar >= 0 {
		return max(0, tNear), true
	}
	return 0, false
}
