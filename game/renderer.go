package game

import (
	"snake-grid/game/types"
)

// Outcome is how a finished game ended
type Outcome int

const (
	Loss Outcome = iota
	Win
)

func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "loss"
}

// Message is the text shown to the player when the game ends
func (o Outcome) Message() string {
	if o == Win {
		return "You win!"
	}
	return "You lose!"
}

// State is the game lifecycle. Playing -> Over is the only transition.
type State int

const (
	Playing State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "playing"
}

// Renderer displays the game. The game calls it after every executed step
// and once when the game ends.
type Renderer interface {
	RenderHead(p types.Point)
	// RenderSegment draws the body segment at index (1-based, the head is 0),
	// creating its visual element on first use.
	RenderSegment(index int, p types.Point)
	RenderTarget(p types.Point)
	ShowGameOver(o Outcome)
}
