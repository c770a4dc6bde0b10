package manager

import (
	"snake-grid/game/entity"
	"snake-grid/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	LengthLimit
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case LengthLimit:
		return "length_limit"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks a prospective head position against the walls and the body
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if snake.CollidesWithSelf(pos) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsTargetCollision checks if the head cell overlaps the target cell
func (cm *CollisionManager) IsTargetCollision(head, target types.Point) bool {
	return types.CellRect(head, cm.grid.CellSize).Overlaps(types.CellRect(target, cm.grid.CellSize))
}

// CheckLength reports LengthLimit once the snake is LengthLimitRatio grid widths long
func (cm *CollisionManager) CheckLength(snake *entity.Snake) CollisionType {
	if snake.Len()*cm.grid.CellSize >= cm.grid.Width*types.LengthLimitRatio {
		return LengthLimit
	}
	return NoCollision
}
