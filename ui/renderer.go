package ui

import (
	"snake-grid/game"
	"snake-grid/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	fontSize      = 32
)

var (
	headColor    = rl.Color{R: 0, G: 100, B: 0, A: 255}
	segmentColor = rl.Green
	targetColor  = rl.Red
)

// Renderer keeps the last state the game reported and draws it every frame.
// The game only talks to it through the game.Renderer methods, so the scene
// can be inspected without opening a window.
type Renderer struct {
	grid     types.Grid
	head     types.Point
	segments []types.Point // segments[i-1] holds segment i
	target   types.Point
	gameOver bool
	outcome  game.Outcome
	offsetX  int32
	offsetY  int32
}

var _ game.Renderer = (*Renderer)(nil)

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{
		grid:    grid,
		offsetX: borderPadding,
		offsetY: borderPadding,
	}
}

// WindowSize is the window needed to show the whole board with padding
func (r *Renderer) WindowSize() (int32, int32) {
	return int32(r.grid.Width) + borderPadding*2, int32(r.grid.Height) + borderPadding*2
}

func (r *Renderer) RenderHead(p types.Point) {
	r.head = p
}

// RenderSegment stores segment index, growing the scene when a new segment first shows up
func (r *Renderer) RenderSegment(index int, p types.Point) {
	if index < 1 {
		return
	}
	for len(r.segments) < index {
		r.segments = append(r.segments, p)
	}
	r.segments[index-1] = p
}

func (r *Renderer) RenderTarget(p types.Point) {
	r.target = p
}

func (r *Renderer) ShowGameOver(o game.Outcome) {
	r.gameOver = true
	r.outcome = o
}

// Segments returns the number of body segments drawn behind the head
func (r *Renderer) Segments() int {
	return len(r.segments)
}

func (r *Renderer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	cell := int32(r.grid.CellSize)

	// Draw board background
	rl.DrawRectangle(r.offsetX, r.offsetY, int32(r.grid.Width), int32(r.grid.Height), rl.DarkGray)
	rl.DrawRectangleLines(r.offsetX-1, r.offsetY-1, int32(r.grid.Width)+2, int32(r.grid.Height)+2, rl.Gray)

	// Draw target
	half := cell / 2
	rl.DrawCircle(r.offsetX+int32(r.target.X)+half, r.offsetY+int32(r.target.Y)+half, float32(half), targetColor)

	// Draw snake body, tail first so the head stays on top
	for i := len(r.segments) - 1; i >= 0; i-- {
		p := r.segments[i]
		rl.DrawRectangle(r.offsetX+int32(p.X), r.offsetY+int32(p.Y), cell, cell, segmentColor)
	}
	rl.DrawRectangle(r.offsetX+int32(r.head.X), r.offsetY+int32(r.head.Y), cell, cell, headColor)

	if r.gameOver {
		text := r.outcome.Message()
		width := rl.MeasureText(text, fontSize)
		rl.DrawText(text,
			r.offsetX+(int32(r.grid.Width)-width)/2,
			r.offsetY+(int32(r.grid.Height)-fontSize)/2,
			fontSize, rl.White)
	}

	rl.EndDrawing()
}
