// Package tui runs the game in a terminal with Bubble Tea.
//
// Terminals report key presses (and auto-repeat) but never releases, so the
// model treats an arrow as released once no repeat has arrived for the
// release timeout.
package tui

import (
	"time"

	"snake-grid/game"
	"snake-grid/game/input"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is how often the model polls the game clock (~60 FPS)
const FrameInterval = 16 * time.Millisecond

// FrameMsg triggers one poll of the game clock
type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

type Model struct {
	game           *game.Game
	scene          *Scene
	releaseTimeout time.Duration
	held           input.Key
	lastRepeat     time.Time
	now            func() time.Time
}

// NewModel wraps a game that renders into scene. The game must not be started yet.
func NewModel(g *game.Game, scene *Scene, releaseTimeout time.Duration) *Model {
	return &Model{
		game:           g,
		scene:          scene,
		releaseTimeout: releaseTimeout,
		now:            time.Now,
	}
}

func (m *Model) Init() tea.Cmd {
	m.game.Start(m.now())
	return frameCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		if k := keyOf(msg); k != input.KeyNone {
			now := m.now()
			m.held = k
			m.lastRepeat = now
			m.game.KeyDown(k, now)
		}
	case FrameMsg:
		now := time.Time(msg)
		m.releaseIfIdle(now)
		m.game.Update(now)
		return m, frameCmd()
	}
	return m, nil
}

// releaseIfIdle synthesizes the key-up the terminal never sends
func (m *Model) releaseIfIdle(now time.Time) {
	if m.held == input.KeyNone || now.Sub(m.lastRepeat) < m.releaseTimeout {
		return
	}
	m.game.KeyUp(m.held, now)
	m.held = input.KeyNone
}

func (m *Model) View() string {
	return m.scene.View()
}

func keyOf(msg tea.KeyMsg) input.Key {
	switch msg.Type {
	case tea.KeyLeft:
		return input.KeyLeft
	case tea.KeyRight:
		return input.KeyRight
	case tea.KeyUp:
		return input.KeyUp
	case tea.KeyDown:
		return input.KeyDown
	}
	return input.KeyNone
}
