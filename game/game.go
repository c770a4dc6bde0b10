package game

import (
	"errors"
	"fmt"
	"time"

	"snake-grid/game/clock"
	"snake-grid/game/entity"
	"snake-grid/game/input"
	"snake-grid/game/manager"
	"snake-grid/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrDegenerateGrid   = errors.New("grid has no room for a single cell")
	ErrStartOutOfBounds = errors.New("start position outside the grid")
	ErrNilRenderer      = errors.New("renderer is nil")
)

// Options configures a new game
type Options struct {
	Grid         types.Grid
	Start        types.Point // snapped onto the cell grid on the first move
	NormalPeriod time.Duration
	FastPeriod   time.Duration
	Seed         uint64
	Logger       *zerolog.Logger
}

// DefaultOptions mirrors the browser version: a 400x400 board, the head
// drawn 10px inside the top-left corner and a 200ms tick.
func DefaultOptions() Options {
	return Options{
		Grid:         types.NewGrid(400, 400),
		Start:        types.Point{X: 10, Y: 10},
		NormalPeriod: clock.NormalPeriod,
		FastPeriod:   clock.FastPeriod,
	}
}

// Game owns the whole simulation state. It is not safe for concurrent use;
// front-ends call it from their single frame or message loop.
type Game struct {
	UUID      string
	Grid      types.Grid
	snake     *entity.Snake
	direction types.Direction
	snapped   bool
	state     State
	outcome   Outcome

	clock        *clock.Clock
	collisionMgr *manager.CollisionManager
	targetMgr    *manager.TargetManager
	stateMgr     *manager.StateManager
	renderer     Renderer
	log          zerolog.Logger
}

func NewGame(opts Options, renderer Renderer) (*Game, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	grid := opts.Grid
	if grid.CellSize <= 0 || grid.Degenerate() {
		return nil, fmt.Errorf("%w: %dx%d with cell %d", ErrDegenerateGrid, grid.Width, grid.Height, grid.CellSize)
	}
	if !grid.Contains(grid.Snap(opts.Start)) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, opts.Start, grid.Width, grid.Height)
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	id := uuid.New().String()

	return &Game{
		UUID:         id,
		Grid:         grid,
		snake:        entity.NewSnake(opts.Start),
		clock:        clock.New(opts.NormalPeriod, opts.FastPeriod),
		collisionMgr: manager.NewCollisionManager(grid),
		targetMgr:    manager.NewTargetManager(grid, opts.Seed),
		renderer:     renderer,
		log:          logger.With().Str("session", id).Logger(),
	}, nil
}

// Start arms the clock and draws the initial head and target
func (g *Game) Start(now time.Time) {
	g.stateMgr = manager.NewStateManager(now)
	g.clock.Start(now)
	g.renderer.RenderHead(g.snake.GetHead())
	g.renderer.RenderTarget(g.targetMgr.GetTarget())
	g.log.Info().
		Int("width", g.Grid.Width).
		Int("height", g.Grid.Height).
		Stringer("start", g.snake.GetHead()).
		Stringer("target", g.targetMgr.GetTarget()).
		Msg("game started")
}

// Update runs one step if the clock is due at now. It reports whether a step ran.
func (g *Game) Update(now time.Time) bool {
	if g.state == Over || !g.clock.Due(now) {
		return false
	}
	g.Step(now)
	return true
}

// Step advances the simulation by one tick
func (g *Game) Step(now time.Time) {
	if g.state == Over || g.direction.IsZero() {
		return
	}
	if !g.snapped {
		g.snake.SetHead(g.Grid.Snap(g.snake.GetHead()))
		g.snapped = true
	}

	newHead := g.snake.GetHead().Add(g.direction, g.Grid.CellSize)
	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.End(Loss, collision, now)
		return
	}

	g.snake.Advance(newHead)

	if g.collisionMgr.IsTargetCollision(newHead, g.targetMgr.GetTarget()) {
		target := g.targetMgr.Relocate()
		g.snake.Grow()
		g.stats().UpdateScore(g.targetMgr.Eaten())
		g.log.Debug().
			Stringer("head", newHead).
			Stringer("target", target).
			Int("length", g.snake.Len()).
			Msg("target eaten")
	}
	g.stats().RecordTick(g.snake.Len())

	// Reaching the length limit ends the game as a loss, not a win.
	if limit := g.collisionMgr.CheckLength(g.snake); limit != manager.NoCollision {
		g.End(Loss, limit, now)
		return
	}

	g.renderer.RenderHead(newHead)
	for i, p := range g.snake.Body[1:] {
		g.renderer.RenderSegment(i+1, p)
	}
	g.renderer.RenderTarget(g.targetMgr.GetTarget())
}

// KeyDown turns the snake and switches the clock to the fast rate
func (g *Game) KeyDown(k input.Key, now time.Time) {
	if g.state == Over || !k.IsArrow() {
		return
	}
	if dir := input.Turn(g.direction, k); dir != g.direction {
		g.direction = dir
		g.log.Debug().Stringer("key", k).Stringer("direction", dir).Msg("turn")
	}
	if g.clock.SetRate(clock.Fast, now) {
		g.log.Debug().Stringer("rate", clock.Fast).Msg("clock rate")
	}
}

// KeyUp returns the clock to the normal rate
func (g *Game) KeyUp(k input.Key, now time.Time) {
	if g.state == Over || !k.IsArrow() {
		return
	}
	if g.clock.SetRate(clock.Normal, now) {
		g.log.Debug().Stringer("rate", clock.Normal).Msg("clock rate")
	}
}

// End moves the game to Over. The clock is stopped for good and later calls are ignored.
func (g *Game) End(outcome Outcome, reason manager.CollisionType, now time.Time) {
	if g.state == Over {
		return
	}
	g.state = Over
	g.outcome = outcome
	g.clock.Stop()

	sm := g.stats()
	sm.Finish(now, reason)
	rec := sm.GetRecord()

	g.renderer.ShowGameOver(outcome)
	g.log.Info().
		Stringer("outcome", outcome).
		Stringer("reason", reason).
		Int("ticks", rec.Ticks).
		Int("score", rec.Score).
		Int("length", g.snake.Len()).
		Dur("duration", rec.Duration(now)).
		Msg("game over")
}

// stats returns the state manager, creating it if Start was never called
func (g *Game) stats() *manager.StateManager {
	if g.stateMgr == nil {
		g.stateMgr = manager.NewStateManager(time.Now())
	}
	return g.stateMgr
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) Rate() clock.Rate {
	return g.clock.Rate()
}

// GetSnake returns a copy of the body, head first
func (g *Game) GetSnake() []types.Point {
	return g.snake.Segments()
}

func (g *Game) GetTarget() types.Point {
	return g.targetMgr.GetTarget()
}

func (g *Game) Record() manager.GameRecord {
	return g.stats().GetRecord()
}
