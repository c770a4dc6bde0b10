package manager

import (
	"snake-grid/game/types"

	"golang.org/x/exp/rand"
)

// TargetManager owns the single consumable on the board
type TargetManager struct {
	grid   types.Grid
	rng    *rand.Rand
	target types.Point
	eaten  int
}

// NewTargetManager places the first target. grid must not be degenerate.
func NewTargetManager(grid types.Grid, seed uint64) *TargetManager {
	tm := &TargetManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
	tm.target = tm.GenerateTarget()
	return tm
}

// GenerateTarget picks a uniformly random cell that lies fully inside the grid
func (tm *TargetManager) GenerateTarget() types.Point {
	return tm.grid.Cell(
		tm.rng.Intn(tm.grid.Columns()),
		tm.rng.Intn(tm.grid.Rows()),
	)
}

// Relocate moves the target to a new random cell and counts the old one as eaten
func (tm *TargetManager) Relocate() types.Point {
	tm.target = tm.GenerateTarget()
	tm.eaten++
	return tm.target
}

func (tm *TargetManager) GetTarget() types.Point {
	return tm.target
}

// SetTarget places the target explicitly
func (tm *TargetManager) SetTarget(p types.Point) {
	tm.target = p
}

func (tm *TargetManager) Eaten() int {
	return tm.eaten
}
