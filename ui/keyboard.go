package ui

import (
	"time"

	"snake-grid/game/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyHandler receives key transitions, typically a *game.Game
type KeyHandler interface {
	KeyDown(k input.Key, now time.Time)
	KeyUp(k input.Key, now time.Time)
}

// keyState is the part of the raylib input API the keyboard polls
type keyState interface {
	IsKeyPressed(key int32) bool
	IsKeyDown(key int32) bool
	IsKeyReleased(key int32) bool
}

type raylibKeys struct{}

func (raylibKeys) IsKeyPressed(key int32) bool  { return rl.IsKeyPressed(key) }
func (raylibKeys) IsKeyDown(key int32) bool     { return rl.IsKeyDown(key) }
func (raylibKeys) IsKeyReleased(key int32) bool { return rl.IsKeyReleased(key) }

var arrows = []struct {
	code int32
	key  input.Key
}{
	{rl.KeyLeft, input.KeyLeft},
	{rl.KeyRight, input.KeyRight},
	{rl.KeyUp, input.KeyUp},
	{rl.KeyDown, input.KeyDown},
}

// Keyboard turns raylib's per-frame key state into key-down and key-up
// events. Like a browser, only the most recently pressed arrow repeats
// while held.
type Keyboard struct {
	keys keyState
	held input.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{keys: raylibKeys{}}
}

// Poll must be called once per frame
func (k *Keyboard) Poll(h KeyHandler, now time.Time) {
	for _, a := range arrows {
		if k.keys.IsKeyReleased(a.code) {
			if k.held == a.key {
				k.held = input.KeyNone
			}
			h.KeyUp(a.key, now)
		}
	}
	pressed := false
	for _, a := range arrows {
		if k.keys.IsKeyPressed(a.code) {
			k.held = a.key
			h.KeyDown(a.key, now)
			pressed = true
		}
	}
	if pressed || k.held == input.KeyNone {
		return
	}
	for _, a := range arrows {
		if a.key == k.held && k.keys.IsKeyDown(a.code) {
			h.KeyDown(a.key, now)
		}
	}
}
