// Package scene defines the screens the game loop switches between.
//
// The level menu and the arcade run are the two screens. The menu hands
// over to a run when a level is picked, and a run hands back to the menu
// after a pause or a finished level.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/barrelrun/internal/application/system"
)

// Scene is one screen driven by the game loop at the fixed tick rate
type Scene interface {
	// Update advances the screen by dt seconds and returns the screen to
	// switch to, or nil to stay. ebiten.Termination quits the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the last simulated state; it never advances it.
	Draw(screen *ebiten.Image)

	// OnEnter resets per-visit state such as the previous input frame,
	// so keys still held from the last screen are not seen as presses.
	OnEnter()

	// OnExit runs once when the screen is replaced or the window closes.
	// A run flushes its input recording here.
	OnExit()
}

// InputSource supplies one input snapshot per frame.
// *system.InputSystem reads the keyboard; tests and replays feed their own.
type InputSource interface {
	GetInput() system.InputState
}
