package input

import "github.com/go-gl/mathgl/mgl64"

// Key is a backend-independent key symbol
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR
	KeyF
	KeySpace
	KeyH
	KeyP
	KeyT
	KeyEscape
)

var keyNames = map[Key]string{
	KeyW:      "W",
	KeyA:      "A",
	KeyS:      "S",
	KeyD:      "D",
	KeyR:      "R",
	KeyF:      "F",
	KeySpace:  "Space",
	KeyH:      "H",
	KeyP:      "P",
	KeyT:      "T",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KeySet tracks which keys are currently held
type KeySet map[Key]struct{}

// NewKeySet creates an empty key set
func NewKeySet() KeySet {
	return make(KeySet)
}

// Press marks k as held
func (ks KeySet) Press(k Key) {
	ks[k] = struct{}{}
}

// Release marks k as no longer held
func (ks KeySet) Release(k Key) {
	delete(ks, k)
}

// Held reports whether k is held
func (ks KeySet) Held(k Key) bool {
	_, ok := ks[k]
	return ok
}

var moveDirections = []struct {
	key Key
	dir mgl64.Vec3
}{
	{KeyW, mgl64.Vec3{0, 0, -1}},
	{KeyS, mgl64.Vec3{0, 0, 1}},
	{KeyA, mgl64.Vec3{-1, 0, 0}},
	{KeyD, mgl64.Vec3{1, 0, 0}},
	{KeyR, mgl64.Vec3{0, 1, 0}},
	{KeyF, mgl64.Vec3{0, -1, 0}},
}

// LightMove sums the movement directions of the held W/S/A/D/R/F keys.
// The result is not normalized; opposing keys cancel.
func LightMove(keys KeySet) mgl64.Vec3 {
	var move mgl64.Vec3
	for _, m := range moveDirections {
		if keys.Held(m.key) {
			move = move.Add(m.dir)
		}
	}
	return move
}
