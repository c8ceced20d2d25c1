package system

import "github.com/younwookim/barrelrun/internal/domain/entity"

// Event is a discrete signal the simulation emits to UI and audio
type Event interface {
	isEvent()
}

// ScoreChanged is emitted whenever the score changes (including resets)
type ScoreChanged struct {
	Score int
	Delta int
}

func (ScoreChanged) isEvent() {}

// JumpStarted is emitted when the player leaves the ground by jumping
type JumpStarted struct {
	EntityID entity.EntityID
	At       float64
}

func (JumpStarted) isEvent() {}

// Died is emitted once when a barrel kills the player
type Died struct {
	BarrelID entity.EntityID
}

func (Died) isEvent() {}

// WinTrigger names which goal condition ended the level
type WinTrigger int

const (
	WinGoalPoint WinTrigger = iota
	WinGoalEntity
)

// Won is emitted once when the player reaches a goal
type Won struct {
	Trigger WinTrigger
}

func (Won) isEvent() {}

// Paused is emitted when the simulation freezes
type Paused struct{}

func (Paused) isEvent() {}

// Resumed is emitted when the simulation is live again
type Resumed struct{}

func (Resumed) isEvent() {}

// LevelSelected is emitted when a level is (re)started
type LevelSelected struct {
	LevelID int
}

func (LevelSelected) isEvent() {}
