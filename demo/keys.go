package main

import (
	"github.com/df07/go-pick-raytracer/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyW:      input.KeyW,
	ebiten.KeyA:      input.KeyA,
	ebiten.KeyS:      input.KeyS,
	ebiten.KeyD:      input.KeyD,
	ebiten.KeyR:      input.KeyR,
	ebiten.KeyF:      input.KeyF,
	ebiten.KeySpace:  input.KeySpace,
	ebiten.KeyH:      input.KeyH,
	ebiten.KeyP:      input.KeyP,
	ebiten.KeyT:      input.KeyT,
	ebiten.KeyEscape: input.KeyEscape,
}

func translateKey(k ebiten.Key) (input.Key, bool) {
	key, ok := keyMap[k]
	return key, ok
}
