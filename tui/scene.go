package tui

import (
	"fmt"
	"strings"

	"snake-grid/game"
	"snake-grid/game/types"

	"github.com/charmbracelet/lipgloss"
)

const (
	charEmpty  = "  " // two columns per cell keeps cells roughly square
	charHead   = "██"
	charBody   = "▓▓"
	charTarget = "()"
)

var (
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	bodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1)
)

// Scene is the terminal renderer. It keeps what the game last reported and
// turns it into text on View.
type Scene struct {
	grid     types.Grid
	head     types.Point
	segments []types.Point
	target   types.Point
	gameOver bool
	outcome  game.Outcome
}

var _ game.Renderer = (*Scene)(nil)

func NewScene(grid types.Grid) *Scene {
	return &Scene{grid: grid}
}

func (s *Scene) RenderHead(p types.Point) {
	s.head = p
}

func (s *Scene) RenderSegment(index int, p types.Point) {
	if index < 1 {
		return
	}
	for len(s.segments) < index {
		s.segments = append(s.segments, p)
	}
	s.segments[index-1] = p
}

func (s *Scene) RenderTarget(p types.Point) {
	s.target = p
}

func (s *Scene) ShowGameOver(o game.Outcome) {
	s.gameOver = true
	s.outcome = o
}

// cellOf maps a pixel position to the terminal cell that shows it
func (s *Scene) cellOf(p types.Point) (int, int) {
	snapped := s.grid.Snap(p)
	return snapped.X / s.grid.CellSize, snapped.Y / s.grid.CellSize
}

// Board renders the grid without styling, one string per row
func (s *Scene) Board() []string {
	cols, rows := s.grid.Columns(), s.grid.Rows()
	cells := make([][]string, rows)
	for y := range cells {
		cells[y] = make([]string, cols)
		for x := range cells[y] {
			cells[y][x] = charEmpty
		}
	}
	put := func(p types.Point, ch string) {
		x, y := s.cellOf(p)
		if x >= 0 && x < cols && y >= 0 && y < rows {
			cells[y][x] = ch
		}
	}

	put(s.target, charTarget)
	for _, p := range s.segments {
		put(p, charBody)
	}
	put(s.head, charHead)

	lines := make([]string, rows)
	for y, row := range cells {
		lines[y] = strings.Join(row, "")
	}
	return lines
}

// View renders the styled board and the status line
func (s *Scene) View() string {
	lines := s.Board()
	for i, line := range lines {
		line = strings.ReplaceAll(line, charHead, headStyle.Render(charHead))
		line = strings.ReplaceAll(line, charBody, bodyStyle.Render(charBody))
		line = strings.ReplaceAll(line, charTarget, targetStyle.Render(charTarget))
		lines[i] = line
	}

	var b strings.Builder
	b.WriteString(boardStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	if s.gameOver {
		b.WriteString(overStyle.Render(s.outcome.Message()))
		b.WriteString("  ")
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("length %d  ·  arrows to steer, hold to speed up  ·  q to quit", len(s.segments)+1)))
	return b.String()
}
