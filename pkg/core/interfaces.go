package core

import "github.com/go-gl/mathgl/mgl64"

// Logger interface for demo and renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hitter is the hit-test capability shared by every pickable collision shape.
// CheckHit returns the distance along the ray to the nearest hit, or false on a miss.
// A reported distance is never negative.
type Hitter interface {
	CheckHit(origin, direction mgl64.Vec3) (float64, bool)
}
