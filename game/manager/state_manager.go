package manager

import (
	"time"
)

// GameRecord holds the data of one played game.
type GameRecord struct {
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Ticks     int           `json:"ticks"`
	Score     int           `json:"score"`
	MaxLength int           `json:"maxLength"`
	Reason    CollisionType `json:"reason"`
	Finished  bool          `json:"finished"`
}

// Duration returns how long the game lasted, or has lasted so far
func (r GameRecord) Duration(now time.Time) time.Duration {
	if r.Finished {
		return r.EndTime.Sub(r.StartTime)
	}
	return now.Sub(r.StartTime)
}

// StateManager keeps the running record of the current game. Nothing is persisted.
type StateManager struct {
	record GameRecord
}

func NewStateManager(start time.Time) *StateManager {
	return &StateManager{
		record: GameRecord{
			StartTime: start,
			MaxLength: 1,
		},
	}
}

// RecordTick counts one executed step and the snake length after it
func (sm *StateManager) RecordTick(length int) {
	if sm.record.Finished {
		return
	}
	sm.record.Ticks++
	if length > sm.record.MaxLength {
		sm.record.MaxLength = length
	}
}

func (sm *StateManager) UpdateScore(score int) {
	if sm.record.Finished {
		return
	}
	sm.record.Score = score
}

// Finish closes the record. Later calls are ignored.
func (sm *StateManager) Finish(end time.Time, reason CollisionType) {
	if sm.record.Finished {
		return
	}
	sm.record.EndTime = end
	sm.record.Reason = reason
	sm.record.Finished = true
}

func (sm *StateManager) GetRecord() GameRecord {
	return sm.record
}
