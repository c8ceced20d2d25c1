package audio

// Cue identifies a one-shot sound played for a simulation event
type Cue int

const (
	CueJump Cue = iota
	CueScore
	CueDeath
	CueWin
	CuePause
	CueResume
	CueLevel
)

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueScore:
		return "score"
	case CueDeath:
		return "death"
	case CueWin:
		return "win"
	case CuePause:
		return "pause"
	case CueResume:
		return "resume"
	case CueLevel:
		return "level"
	default:
		return "unknown"
	}
}
