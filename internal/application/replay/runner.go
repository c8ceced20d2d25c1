package replay

import (
	"fmt"

	"github.com/younwookim/barrelrun/internal/application/session"
	"github.com/younwookim/barrelrun/internal/application/state"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// Result summarises a headless replay
type Result struct {
	Level  int
	Seed   int64
	Frames int
	Mode   state.GameState
	Score  int
	Player *entity.Player
}

// Observer is called after every replayed frame
type Observer func(frame int, s *session.Session)

// Run replays data against a fresh session without rendering.
// observe may be nil.
func Run(cfg *config.GameConfig, levels map[int]*entity.Level, data ReplayData, observe Observer) (Result, error) {
	s := session.New(cfg, levels, data.Seed)
	player := s.NewPlayer()
	if err := s.SelectLevelSeeded(data.Level, data.Seed); err != nil {
		return Result{}, fmt.Errorf("failed to start replay: %w", err)
	}

	dt := 1.0 / 60.0
	if fps := cfg.Physics.Display.Framerate; fps > 0 {
		dt = 1.0 / float64(fps)
	}

	replayer := NewReplayer(data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		s.Tick(dt, input)
		if observe != nil {
			observe(replayer.CurrentFrame(), s)
		}
	}

	return Result{
		Level:  data.Level,
		Seed:   data.Seed,
		Frames: replayer.CurrentFrame(),
		Mode:   s.Mode(),
		Score:  s.Score(),
		Player: player,
	}, nil
}
