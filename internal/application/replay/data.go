package replay

import "github.com/younwookim/barrelrun/internal/application/system"

// Version is the replay file format version
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	J bool `json:"j,omitempty"` // Jump
	C bool `json:"c,omitempty"` // Camera toggle
	P bool `json:"p,omitempty"` // Pause
}

// ReplayData contains all data needed to replay one level run
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrame(n int, in system.InputState) FrameInput {
	return FrameInput{
		F: n,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		J: in.Jump,
		C: in.Camera,
		P: in.Pause,
	}
}

func (fi FrameInput) state() system.InputState {
	return system.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Up:     fi.U,
		Down:   fi.D,
		Jump:   fi.J,
		Camera: fi.C,
		Pause:  fi.P,
	}
}
