package state

// GameState represents the current mode of the simulation
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateWin
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Live reports whether gameplay ticks run in this state
func (s GameState) Live() bool {
	return s == StatePlaying
}

// Finished reports whether the level has ended
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateWin
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
// Every state may return to the main menu; Playing is re-entered by level
// selection (from any state) or by resuming from Paused.
func (s GameState) CanTransitionTo(next GameState) bool {
	switch next {
	case StateMainMenu:
		return s != StateMainMenu
	case StatePlaying:
		return true
	case StatePaused, StateGameOver, StateWin:
		return s == StatePlaying
	default:
		return false
	}
}
