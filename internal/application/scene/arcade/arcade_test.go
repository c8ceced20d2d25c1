package arcade

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/barrelrun/internal/application/replay"
	"github.com/younwookim/barrelrun/internal/application/scene"
	"github.com/younwookim/barrelrun/internal/application/state"
	"github.com/younwookim/barrelrun/internal/application/system"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/audio"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

type fakeInput struct {
	state system.InputState
}

func (f *fakeInput) GetInput() system.InputState { return f.state }

type fakeSound struct {
	cues []audio.Cue
}

func (f *fakeSound) Play(c audio.Cue) { f.cues = append(f.cues, c) }

func (f *fakeSound) count(c audio.Cue) int {
	n := 0
	for _, cue := range f.cues {
		if cue == c {
			n++
		}
	}
	return n
}

type menuStub struct{}

func (menuStub) Update(float64) (scene.Scene, error) { return nil, nil }
func (menuStub) Draw(*ebiten.Image)                  {}
func (menuStub) OnEnter()                            {}
func (menuStub) OnExit()                             {}

func loadTestWorld(t *testing.T) (*config.GameConfig, map[int]*entity.Level) {
	t.Helper()

	loader := config.NewLoader("../../../../cmd/game/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	levelCfgs, err := loader.LoadLevels(1, 2)
	require.NoError(t, err)
	return cfg, system.LoadLevels(levelCfgs)
}

func createTestArcade(t *testing.T, recordPath string) (*Arcade, *fakeInput, *fakeSound) {
	t.Helper()

	cfg, levels := loadTestWorld(t)
	in := &fakeInput{}
	sound := &fakeSound{}
	a, err := New(cfg, levels, 1, Options{
		Input:      in,
		Sound:      sound,
		Seed:       42,
		RecordPath: recordPath,
		OnMenu:     func() scene.Scene { return menuStub{} },
	})
	require.NoError(t, err)
	a.OnEnter()
	return a, in, sound
}

// step runs one frame with the given input and returns the next scene
func step(t *testing.T, a *Arcade, in *fakeInput, st system.InputState) scene.Scene {
	t.Helper()
	in.state = st
	next, err := a.Update(testDT)
	require.NoError(t, err)
	return next
}

func TestArcade_StartsLevel(t *testing.T) {
	a, in, sound := createTestArcade(t, "")

	assert.Equal(t, state.StatePlaying, a.Session().Mode())
	assert.Equal(t, 1, a.Session().LevelID())
	assert.Equal(t, []audio.Cue{audio.CueLevel}, sound.cues)
	assert.Nil(t, a.recorder)

	for i := 0; i < 30; i++ {
		assert.Nil(t, step(t, a, in, system.InputState{}))
	}
	assert.InDelta(t, 0.5, a.Session().Clock(), 1e-9)
}

func TestArcade_UnknownLevel(t *testing.T) {
	cfg, levels := loadTestWorld(t)

	_, err := New(cfg, levels, 9, Options{Input: &fakeInput{}})

	assert.ErrorIs(t, err, config.ErrUnknownLevel)
}

func TestArcade_PauseAndBackToMenu(t *testing.T) {
	a, in, sound := createTestArcade(t, "")

	step(t, a, in, system.InputState{Pause: true})
	require.Equal(t, state.StatePaused, a.Session().Mode())
	assert.Equal(t, 1, sound.count(audio.CuePause))

	step(t, a, in, system.InputState{})
	next := step(t, a, in, system.InputState{Back: true})

	assert.IsType(t, menuStub{}, next)
	assert.Equal(t, state.StateMainMenu, a.Session().Mode())
}

func TestArcade_BackIgnoredWhilePlaying(t *testing.T) {
	a, in, _ := createTestArcade(t, "")

	next := step(t, a, in, system.InputState{Back: true})

	assert.Nil(t, next)
	assert.Equal(t, state.StatePlaying, a.Session().Mode())
}

func TestArcade_BackWithoutMenuTerminates(t *testing.T) {
	cfg, levels := loadTestWorld(t)
	in := &fakeInput{}
	a, err := New(cfg, levels, 1, Options{Input: in})
	require.NoError(t, err)
	a.OnEnter()

	step(t, a, in, system.InputState{Pause: true})
	step(t, a, in, system.InputState{})
	in.state = system.InputState{Back: true}
	_, err = a.Update(testDT)

	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestArcade_LevelKeySwitchesLevel(t *testing.T) {
	a, in, sound := createTestArcade(t, "")

	step(t, a, in, system.InputState{Level2: true})

	assert.Equal(t, 2, a.Session().LevelID())
	assert.Equal(t, state.StatePlaying, a.Session().Mode())
	assert.Equal(t, 2, sound.count(audio.CueLevel))
}

func TestArcade_LevelKeyWithoutLevelIgnored(t *testing.T) {
	cfg, levels := loadTestWorld(t)
	delete(levels, 2)
	in := &fakeInput{}
	sound := &fakeSound{}
	a, err := New(cfg, levels, 1, Options{Input: in, Sound: sound, Seed: 42})
	require.NoError(t, err)
	a.OnEnter()

	step(t, a, in, system.InputState{Level2: true})

	assert.Equal(t, 1, a.Session().LevelID())
	assert.Equal(t, state.StatePlaying, a.Session().Mode())
	assert.Equal(t, 1, sound.count(audio.CueLevel))
	assert.InDelta(t, testDT, a.Session().Clock(), 1e-9)
}

func TestArcade_JumpCue(t *testing.T) {
	a, in, sound := createTestArcade(t, "")

	// settle onto the girder first
	step(t, a, in, system.InputState{})
	step(t, a, in, system.InputState{Jump: true})

	assert.Equal(t, 1, sound.count(audio.CueJump))
}

// A barrel spawned on the player kills on the first spawn
func createDeadlyArcade(t *testing.T, recordPath string) (*Arcade, *fakeInput, *fakeSound, *config.GameConfig, map[int]*entity.Level) {
	t.Helper()

	cfg, levels := loadTestWorld(t)
	levels[1].BarrelSpawn = levels[1].PlayerSpawn

	in := &fakeInput{}
	sound := &fakeSound{}
	a, err := New(cfg, levels, 1, Options{
		Input:      in,
		Sound:      sound,
		Seed:       7,
		RecordPath: recordPath,
		OnMenu:     func() scene.Scene { return menuStub{} },
	})
	require.NoError(t, err)
	a.OnEnter()
	return a, in, sound, cfg, levels
}

func runUntilFinished(t *testing.T, a *Arcade, in *fakeInput) int {
	t.Helper()
	for i := 1; i <= 600; i++ {
		step(t, a, in, system.InputState{})
		if a.Session().Mode().Finished() {
			return i
		}
	}
	t.Fatal("run did not finish")
	return 0
}

func TestArcade_DeathAndRestart(t *testing.T) {
	a, in, sound, _, _ := createDeadlyArcade(t, "")

	runUntilFinished(t, a, in)
	require.Equal(t, state.StateGameOver, a.Session().Mode())
	assert.Equal(t, 1, sound.count(audio.CueDeath))

	step(t, a, in, system.InputState{Confirm: true})

	assert.Equal(t, state.StatePlaying, a.Session().Mode())
	assert.Empty(t, a.Session().Barrels())
	assert.Equal(t, 2, sound.count(audio.CueLevel))
}

func TestArcade_RecordingReplaysToSameOutcome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	a, in, _, cfg, levels := createDeadlyArcade(t, path)

	frames := runUntilFinished(t, a, in)
	require.Equal(t, state.StateGameOver, a.Session().Mode())
	assert.False(t, a.recorder.IsRecording(), "recording stops when the run ends")

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, 1, data.Level)
	assert.Equal(t, a.Session().Seed(), data.Seed)
	require.Len(t, data.Frames, frames)

	res, err := replay.Run(cfg, levels, *data, nil)
	require.NoError(t, err)
	assert.Equal(t, state.StateGameOver, res.Mode)
	assert.Equal(t, a.Session().Player().Position, res.Player.Position)
}

func TestArcade_OnExitSavesUnfinishedRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	a, in, _ := createTestArcade(t, path)

	for i := 0; i < 10; i++ {
		step(t, a, in, system.InputState{Right: true})
	}
	a.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 10)
	assert.True(t, data.Frames[0].R)
}

func TestArcade_Draw(t *testing.T) {
	a, in, _ := createTestArcade(t, "")
	for i := 0; i < 200; i++ {
		step(t, a, in, system.InputState{Camera: i == 100})
	}
	require.Equal(t, system.CameraFollow, a.Session().Camera())

	assert.NotPanics(t, func() {
		a.Draw(ebiten.NewImage(480, 360))
	})
}

func TestCamera_SideCentersFrame(t *testing.T) {
	cam := NewCamera(system.CameraSide, mgl64.Vec3{}, 480, 360)

	x, y, ok := cam.Project(sideCenter)
	require.True(t, ok)
	assert.InDelta(t, 240, x, 1e-6)
	assert.InDelta(t, 180, y, 1e-6)

	// higher in the world is higher on screen, further right is further right
	_, yUp, _ := cam.Project(sideCenter.Add(mgl64.Vec3{0, 5, 0}))
	xRight, _, _ := cam.Project(sideCenter.Add(mgl64.Vec3{5, 0, 0}))
	assert.Less(t, yUp, y)
	assert.Greater(t, xRight, x)
}

func TestCamera_SideFramesWholeLevel(t *testing.T) {
	_, levels := loadTestWorld(t)
	cam := NewCamera(system.CameraSide, mgl64.Vec3{}, 480, 360)

	for _, level := range levels {
		for _, p := range level.Platforms {
			for _, x := range []float64{p.XMin, p.XMax} {
				sx, sy, ok := cam.Project(mgl64.Vec3{x, p.Height, p.Depth})
				require.True(t, ok)
				assert.True(t, sx >= 0 && sx <= 480, "x %v off screen", x)
				assert.True(t, sy >= 0 && sy <= 360, "height %v off screen", p.Height)
			}
		}
	}
}

func TestCamera_FollowTracksTarget(t *testing.T) {
	target := mgl64.Vec3{3, -4, 7.2}
	cam := NewCamera(system.CameraFollow, target, 480, 360)

	x, y, ok := cam.Project(target.Add(followLook))
	require.True(t, ok)
	assert.InDelta(t, 240, x, 1e-6)
	assert.InDelta(t, 180, y, 1e-6)

	_, _, ok = cam.Project(target.Add(mgl64.Vec3{-20, 0, 0}))
	assert.False(t, ok, "points behind the camera are culled")
}

func TestCamera_ProjectBox(t *testing.T) {
	cam := NewCamera(system.CameraSide, mgl64.Vec3{}, 480, 360)
	box := entity.BoxAround(sideCenter, mgl64.Vec3{1, 1, 1})

	x0, y0, x1, y1, ok := cam.ProjectBox(box)

	require.True(t, ok)
	assert.Less(t, x0, 240.0)
	assert.Greater(t, x1, 240.0)
	assert.Less(t, y0, 180.0)
	assert.Greater(t, y1, 180.0)
}
