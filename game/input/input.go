package input

import (
	"snake-grid/game/types"
)

// Key is a front-end independent key code. Only the arrows matter to the game.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	}
	return "none"
}

// IsArrow reports whether k is one of the four arrow keys
func (k Key) IsArrow() bool {
	return k >= KeyLeft && k <= KeyDown
}

// Turn returns the direction after pressing k while moving in current.
// Only turns onto the perpendicular axis are honored, which rules out
// reversing into the neck and repeating the current axis.
func Turn(current types.Direction, k Key) types.Direction {
	switch k {
	case KeyLeft:
		if current.X == 0 {
			return types.Left
		}
	case KeyRight:
		if current.X == 0 {
			return types.Right
		}
	case KeyUp:
		if current.Y == 0 {
			return types.Up
		}
	case KeyDown:
		if current.Y == 0 {
			return types.Down
		}
	}
	return current
}
