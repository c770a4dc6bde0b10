package entity

import (
	"snake-grid/game/types"
)

// Snake is the player's body. Body[0] is the head.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body: []types.Point{startPos},
	}
}

// Grow appends a segment on top of the current tail. It spreads out on the next Advance.
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.Tail())
}

// Advance shifts every segment into its predecessor's place and puts the head at newHead.
func (s *Snake) Advance(newHead types.Point) {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = newHead
}

// CollidesWithSelf reports whether p hits any segment behind the head
func (s *Snake) CollidesWithSelf(p types.Point) bool {
	for _, part := range s.Body[1:] {
		if p == part {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

// SetHead places the head without moving the rest of the body
func (s *Snake) SetHead(p types.Point) {
	s.Body[0] = p
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
