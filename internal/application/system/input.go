package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputState is the keyboard snapshot sampled once per frame
type InputState struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Jump   bool
	Camera bool
	Pause  bool

	// Menu keys
	Level1  bool
	Level2  bool
	Confirm bool
	Back    bool
}

// InputFrame pairs the current snapshot with the previous one so edge
// triggers are a pure function of two frames
type InputFrame struct {
	Current  InputState
	Previous InputState
}

// Next returns the frame that follows f when state is sampled
func (f InputFrame) Next(state InputState) InputFrame {
	return InputFrame{Current: state, Previous: f.Current}
}

func pressed(cur, prev bool) bool { return cur && !prev }

// JumpPressed reports an up->down transition of the jump key
func (f InputFrame) JumpPressed() bool { return pressed(f.Current.Jump, f.Previous.Jump) }

// CameraPressed reports an up->down transition of the camera key
func (f InputFrame) CameraPressed() bool { return pressed(f.Current.Camera, f.Previous.Camera) }

// PausePressed reports an up->down transition of the pause key
func (f InputFrame) PausePressed() bool { return pressed(f.Current.Pause, f.Previous.Pause) }

// ConfirmPressed reports an up->down transition of the confirm key
func (f InputFrame) ConfirmPressed() bool { return pressed(f.Current.Confirm, f.Previous.Confirm) }

// BackPressed reports an up->down transition of the back key
func (f InputFrame) BackPressed() bool { return pressed(f.Current.Back, f.Previous.Back) }

// LevelPressed returns the level whose key went down this frame, 0 if none
func (f InputFrame) LevelPressed() int {
	switch {
	case pressed(f.Current.Level1, f.Previous.Level1):
		return 1
	case pressed(f.Current.Level2, f.Previous.Level2):
		return 2
	}
	return 0
}

// CameraMode selects how direction keys map onto the world
type CameraMode int

const (
	// CameraSide looks at the level from the front: Left/Right walk, Up/Down climb
	CameraSide CameraMode = iota
	// CameraFollow sits behind the player: Up/Down walk forward/back, Right/Left climb up/down
	CameraFollow
)

// Toggle returns the other camera mode
func (c CameraMode) Toggle() CameraMode {
	if c == CameraSide {
		return CameraFollow
	}
	return CameraSide
}

// String returns the camera mode name
func (c CameraMode) String() string {
	if c == CameraFollow {
		return "follow"
	}
	return "side"
}

// Axes maps held keys to a walk direction along x and a climb direction (-1, 0, 1)
func Axes(s InputState, cam CameraMode) (walk, climb int) {
	if cam == CameraFollow {
		return axis(s.Down, s.Up), axis(s.Left, s.Right)
	}
	return axis(s.Left, s.Right), axis(s.Down, s.Up)
}

// ClimbPressed returns the climb direction whose key went down this frame
func (f InputFrame) ClimbPressed(cam CameraMode) int {
	_, cur := Axes(f.Current, cam)
	_, prev := Axes(f.Previous, cam)
	if cur != 0 && cur != prev {
		return cur
	}
	return 0
}

func axis(neg, pos bool) int {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

// InputSystem samples the keyboard through ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Jump:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Camera:  ebiten.IsKeyPressed(ebiten.KeyC),
		Pause:   ebiten.IsKeyPressed(ebiten.KeyP) || ebiten.IsKeyPressed(ebiten.KeyEscape),
		Level1:  ebiten.IsKeyPressed(ebiten.Key1),
		Level2:  ebiten.IsKeyPressed(ebiten.Key2),
		Confirm: ebiten.IsKeyPressed(ebiten.KeyEnter),
		Back:    ebiten.IsKeyPressed(ebiten.KeyQ),
	}
}
