package scene

import (
	"github.com/df07/go-pick-raytracer/pkg/core"
	"github.com/df07/go-pick-raytracer/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// VertexStride is the number of float32 values per cube vertex: position xyz, color rgb
const VertexStride = 6

// CubeVertices are the 8 corners of the [-1,1]^3 cube, each followed by its color
var CubeVertices = []float32{
	-1, -1, -1, 1, 0, 0,
	1, -1, -1, 0, 1, 0,
	1, 1, -1, 0, 0, 1,
	-1, 1, -1, 1, 1, 0,
	-1, -1, 1, 1, 0, 1,
	1, -1, 1, 0, 1, 1,
	1, 1, 1, 1, 1, 1,
	-1, 1, 1, 0, 0, 0,
}

// CubeIndices are 12 triangles, two per face
var CubeIndices = []uint16{
	0, 1, 2, 2, 3, 0, // back
	4, 5, 6, 6, 7, 4, // front
	0, 4, 7, 7, 3, 0, // left
	1, 5, 6, 6, 2, 1, // right
	3, 2, 6, 6, 7, 3, // top
	0, 1, 5, 5, 4, 0, // bottom
}

// CubeEdges are the 12 edges of the cube as vertex index pairs
var CubeEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Cube is a pickable unit cube with its own model transform.
// Its collision box reads the live model matrix, so picking always sees the
// latest translate/rotate/scale.
type Cube struct {
	name      string
	transform core.Transform
	selected  bool
	collision *geometry.OrientedBox
}

// NewCube creates a cube at the origin with the identity transform
func NewCube(name string) *Cube {
	c := &Cube{
		name:      name,
		transform: core.NewTransform(),
	}
	c.collision = geometry.NewOrientedBox(c.ModelMatrix)
	return c
}

// Name returns the cube's name
func (c *Cube) Name() string { return c.name }

// Selected reports whether the cube is selected
func (c *Cube) Selected() bool { return c.selected }

// SetSelected sets the selection flag
func (c *Cube) SetSelected(selected bool) { c.selected = selected }

// ModelMatrix returns the current model matrix
func (c *Cube) ModelMatrix() mgl64.Mat4 {
	return c.transform.Matrix()
}

// Translate moves the cube along world axes
func (c *Cube) Translate(x, y, z float64) {
	c.transform.Translate(x, y, z)
}

// SetPosition is Translate; repeated calls accumulate
func (c *Cube) SetPosition(x, y, z float64) {
	c.Translate(x, y, z)
}

// RotateY spins the cube about its own Y axis
func (c *Cube) RotateY(radians float64) {
	c.transform.RotateY(radians)
}

// ScaleUniform scales the cube about its own center
func (c *Cube) ScaleUniform(s float64) {
	c.transform.ScaleUniform(s)
}

// Position returns the cube center in world space
func (c *Cube) Position() mgl64.Vec3 {
	return c.transform.Position()
}

// Collision returns the cube's oriented collision box
func (c *Cube) Collision() *geometry.OrientedBox {
	return c.collision
}

// CheckHit implements core.Hitter
func (c *Cube) CheckHit(origin, direction mgl64.Vec3) (float64, bool) {
	return c.collision.CheckHit(origin, direction)
}
