// Package session owns the simulation context of one play session.
//
// A Session holds the player, the active barrels, the score and the mode
// machine. Every mutation happens inside Tick or one of the explicit
// transition methods, all called from the single game loop goroutine.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/barrelrun/internal/application/state"
	"github.com/younwookim/barrelrun/internal/application/system"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// ErrNoLevel is returned when restarting before any level was selected
var ErrNoLevel = errors.New("no level selected")

// Session is the simulation context driven once per frame
type Session struct {
	cfg    *config.GameConfig
	levels map[int]*entity.Level
	master *rand.Rand // draws one seed per level start
	rng    *rand.Rand // barrel decisions of the current level
	seed   int64

	mode    state.GameState
	level   *entity.Level
	player  *entity.Player
	barrels []*entity.Barrel
	score   int
	camera  system.CameraMode
	clock   float64 // simulation seconds, frozen outside Playing
	frame   system.InputFrame
	nextID  entity.EntityID

	surfaces  *system.SurfaceSet
	detector  *system.GroundDetector
	motion    *system.MotionController
	barrelSim *system.BarrelSimulator
	judge     *system.Judge

	spawnTimer  *system.Timer
	resumeTimer *system.Timer

	listeners []func(system.Event)
}

// New creates a session in the main menu.
// seed drives the per-level seeds handed out by SelectLevel.
func New(cfg *config.GameConfig, levels map[int]*entity.Level, seed int64) *Session {
	return &Session{
		cfg:         cfg,
		levels:      levels,
		master:      rand.New(rand.NewSource(seed)),
		mode:        state.StateMainMenu,
		surfaces:    system.NewSurfaceSet(),
		judge:       system.NewJudge(cfg.Physics),
		spawnTimer:  system.NewTimer(cfg.Physics.Barrel.SpawnInterval, true),
		resumeTimer: system.NewTimer(cfg.Physics.Pause.ResumeCountdown, false),
	}
}

// Subscribe registers a listener for simulation events
func (s *Session) Subscribe(fn func(system.Event)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *Session) emit(ev system.Event) {
	for _, fn := range s.listeners {
		fn(ev)
	}
}

func (s *Session) allocID() entity.EntityID {
	s.nextID++
	return s.nextID
}

// NewPlayer creates a player sized from the entity config and attaches it
func (s *Session) NewPlayer() *entity.Player {
	he := s.cfg.Entities.Player.HalfExtents
	p := entity.NewPlayer(s.allocID(), mgl64.Vec3{}, mgl64.Vec3{he[0], he[1], he[2]})
	s.AttachPlayer(p)
	return p
}

// AttachPlayer hands a loaded player to the session.
// The player is moved to the spawn point when a level is active.
func (s *Session) AttachPlayer(p *entity.Player) {
	s.player = p
	if p != nil && s.level != nil {
		p.Reset(s.level.PlayerSpawn)
	}
}

// SelectLevel (re)starts the given level in Playing mode with a fresh seed.
// Barrels and collision surfaces of the previous level are cleared first.
func (s *Session) SelectLevel(id int) error {
	return s.SelectLevelSeeded(id, s.master.Int63())
}

// SelectLevelSeeded starts a level with an explicit seed. Together with the
// per-frame input this fully determines the run.
func (s *Session) SelectLevelSeeded(id int, seed int64) error {
	level, ok := s.levels[id]
	if !ok {
		return fmt.Errorf("failed to select level %d: %w", id, config.ErrUnknownLevel)
	}

	s.clearLevel()

	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	s.frame = system.InputFrame{}
	s.camera = system.CameraSide
	s.level = level
	s.surfaces.AddLevel(level)
	s.detector = system.NewGroundDetector(s.cfg.Physics.Ground, s.surfaces, level)
	s.motion = system.NewMotionController(s.cfg.Physics, level)
	s.barrelSim = system.NewBarrelSimulator(s.cfg, s.detector, level, s.rng)

	if s.player != nil {
		s.player.Reset(level.PlayerSpawn)
	}

	s.clock = 0
	s.mode = state.StatePlaying
	s.spawnTimer.Start()

	s.emit(system.LevelSelected{LevelID: id})
	s.setScore(0)
	return nil
}

// Restart reselects the current level
func (s *Session) Restart() error {
	if s.level == nil {
		return fmt.Errorf("failed to restart: %w", ErrNoLevel)
	}
	return s.SelectLevel(s.level.ID)
}

// ReturnToMenu tears down the level and resets score and flags
func (s *Session) ReturnToMenu() {
	if s.mode == state.StateMainMenu {
		return
	}
	s.clearLevel()
	s.level = nil
	s.detector = nil
	s.motion = nil
	s.barrelSim = nil
	s.clock = 0
	s.mode = state.StateMainMenu
	s.setScore(0)
}

func (s *Session) clearLevel() {
	for i := range s.barrels {
		s.barrels[i] = nil
	}
	s.barrels = s.barrels[:0]
	s.surfaces.Clear()
	s.spawnTimer.Stop()
	s.resumeTimer.Stop()
}

// Pause freezes the simulation. It reports whether the mode changed.
func (s *Session) Pause() bool {
	if !s.mode.CanTransitionTo(state.StatePaused) {
		return false
	}
	for _, b := range s.barrels {
		b.Freeze()
	}
	s.resumeTimer.Stop()
	s.mode = state.StatePaused
	s.emit(system.Paused{})
	return true
}

// Resume leaves Paused, after the resume countdown when one is configured.
// It reports whether a resume (immediate or counted down) was started.
func (s *Session) Resume() bool {
	if s.mode != state.StatePaused || s.resumeTimer.Running() {
		return false
	}
	if s.cfg.Physics.Pause.ResumeCountdown <= 0 {
		s.resumeNow()
		return true
	}
	s.resumeTimer.Start()
	return true
}

// TogglePause pauses while playing; while paused it starts the resume, or
// cancels a countdown already running
func (s *Session) TogglePause() {
	switch s.mode {
	case state.StatePlaying:
		s.Pause()
	case state.StatePaused:
		if s.resumeTimer.Running() {
			s.resumeTimer.Stop()
			return
		}
		s.Resume()
	}
}

func (s *Session) resumeNow() {
	s.resumeTimer.Stop()
	for _, b := range s.barrels {
		b.Thaw()
	}
	s.mode = state.StatePlaying
	s.emit(system.Resumed{})
}

// Tick advances the simulation by dt seconds using the sampled input.
// Outside Playing it only handles the pause key and the resume countdown.
func (s *Session) Tick(dt float64, in system.InputState) {
	s.frame = s.frame.Next(in)

	switch s.mode {
	case state.StatePaused:
		if s.frame.PausePressed() {
			s.TogglePause()
			return
		}
		if s.resumeTimer.Advance(dt) > 0 {
			s.resumeNow()
		}
		return
	case state.StatePlaying:
	default:
		return
	}

	if s.frame.PausePressed() {
		s.Pause()
		return
	}
	if s.frame.CameraPressed() {
		s.camera = s.camera.Toggle()
	}

	s.clock += dt
	for n := s.spawnTimer.Advance(dt); n > 0; n-- {
		s.spawnBarrel()
	}

	if s.player != nil {
		ground := s.detector.DetectPlayer(s.player.Position)
		res := s.motion.Update(s.player, ground, s.frame, s.camera, s.clock)
		if res.Jumped {
			s.emit(system.JumpStarted{EntityID: s.player.ID, At: s.clock})
		}
	}

	s.barrels, _ = s.barrelSim.Update(s.barrels)

	verdict := s.judge.Evaluate(s.player, s.barrels)
	if verdict.Points > 0 {
		s.setScore(s.score + verdict.Points)
	}
	if verdict.Died {
		s.finish(state.StateGameOver)
		s.emit(system.Died{BarrelID: verdict.Killer})
		return
	}

	if trigger, won := s.judge.CheckWin(s.player, s.level.Goal); won {
		s.finish(state.StateWin)
		s.emit(system.Won{Trigger: trigger})
	}
}

func (s *Session) spawnBarrel() {
	s.barrels = append(s.barrels, s.barrelSim.Spawn(s.allocID()))
}

// finish ends the level; rendering continues but nothing moves
func (s *Session) finish(mode state.GameState) {
	s.spawnTimer.Stop()
	s.mode = mode
}

func (s *Session) setScore(score int) {
	if score == s.score {
		return
	}
	delta := score - s.score
	s.score = score
	s.emit(system.ScoreChanged{Score: score, Delta: delta})
}

// Mode returns the current game mode
func (s *Session) Mode() state.GameState { return s.mode }

// Score returns the current score
func (s *Session) Score() int { return s.score }

// Barrels returns the active barrels; callers must not retain the slice
func (s *Session) Barrels() []*entity.Barrel { return s.barrels }

// Player returns the attached player, nil if none
func (s *Session) Player() *entity.Player { return s.player }

// Level returns the active level, nil in the main menu
func (s *Session) Level() *entity.Level { return s.level }

// LevelID returns the active level id, 0 in the main menu
func (s *Session) LevelID() int {
	if s.level == nil {
		return 0
	}
	return s.level.ID
}

// Camera returns the active camera mode
func (s *Session) Camera() system.CameraMode { return s.camera }

// Seed returns the seed of the current level
func (s *Session) Seed() int64 { return s.seed }

// Clock returns the simulation time of the current level
func (s *Session) Clock() float64 { return s.clock }

// ResumeRemaining returns the seconds left on the resume countdown, 0 if none
func (s *Session) ResumeRemaining() float64 { return s.resumeTimer.Remaining() }

// Levels returns the ids of every registered level
func (s *Session) Levels() []int {
	ids := make([]int, 0, len(s.levels))
	for id := range s.levels {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
