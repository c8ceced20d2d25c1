// Package arcade provides the gameplay scene: one session driven per frame,
// rendered through a side or follow camera.
package arcade

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/barrelrun/internal/application/replay"
	"github.com/younwookim/barrelrun/internal/application/scene"
	"github.com/younwookim/barrelrun/internal/application/session"
	"github.com/younwookim/barrelrun/internal/application/state"
	"github.com/younwookim/barrelrun/internal/application/system"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/audio"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGirder   = color.RGBA{200, 60, 80, 255}
	colorLadder   = color.RGBA{90, 200, 220, 255}
	colorBarrel   = color.RGBA{170, 110, 50, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorDead     = color.RGBA{220, 50, 50, 255}
	colorGoal     = color.RGBA{255, 215, 0, 255}
	colorGoalMark = color.RGBA{255, 215, 0, 96}
	colorOverlay  = color.RGBA{0, 0, 0, 150}
)

// SoundPlayer plays event cues
type SoundPlayer interface {
	Play(c audio.Cue)
}

// Options wires the arcade scene to its collaborators
type Options struct {
	Input      scene.InputSource
	Sound      SoundPlayer // nil plays nothing
	Seed       int64       // master seed for the per-level seeds
	RecordPath string      // non-empty records every run to this file
	OnMenu     func() scene.Scene
}

// Arcade is the gameplay scene
type Arcade struct {
	config   *config.GameConfig
	session  *session.Session
	opts     Options
	frame    system.InputFrame
	recorder *replay.Recorder
	screenW  int
	screenH  int

	scoreFlash float64 // seconds left on the score highlight
}

// New creates an arcade scene playing level.
// A fresh session is created so returning to the menu discards every entity.
func New(cfg *config.GameConfig, levels map[int]*entity.Level, level int, opts Options) (*Arcade, error) {
	a := &Arcade{
		config:  cfg,
		session: session.New(cfg, levels, opts.Seed),
		opts:    opts,
		screenW: cfg.Physics.Display.ScreenWidth,
		screenH: cfg.Physics.Display.ScreenHeight,
	}
	a.session.NewPlayer()
	a.session.Subscribe(a.onEvent)

	if err := a.session.SelectLevel(level); err != nil {
		return nil, err
	}
	return a, nil
}

// Session returns the simulation driven by the scene
func (a *Arcade) Session() *session.Session {
	return a.session
}

func (a *Arcade) play(c audio.Cue) {
	if a.opts.Sound != nil {
		a.opts.Sound.Play(c)
	}
}

func (a *Arcade) onEvent(ev system.Event) {
	switch ev := ev.(type) {
	case system.LevelSelected:
		a.play(audio.CueLevel)
		a.startRecording(ev.LevelID)
	case system.JumpStarted:
		a.play(audio.CueJump)
	case system.ScoreChanged:
		if ev.Delta > 0 {
			a.play(audio.CueScore)
			a.scoreFlash = 0.5
		}
	case system.Died:
		a.play(audio.CueDeath)
		log.Printf("Game over on level %d (score: %d)", a.session.LevelID(), a.session.Score())
		a.saveRecording()
	case system.Won:
		a.play(audio.CueWin)
		log.Printf("Level %d cleared (score: %d)", a.session.LevelID(), a.session.Score())
		a.saveRecording()
	case system.Paused:
		a.play(audio.CuePause)
	case system.Resumed:
		a.play(audio.CueResume)
	}
}

func (a *Arcade) startRecording(level int) {
	if a.opts.RecordPath == "" {
		return
	}
	// an unfinished run is kept when switching levels
	a.saveRecording()
	a.recorder = replay.NewRecorder(a.session.Seed(), level)
	log.Printf("Recording enabled: %s (level: %d, seed: %d)", a.opts.RecordPath, level, a.session.Seed())
}

// saveRecording saves the current recording once
func (a *Arcade) saveRecording() {
	if a.recorder == nil || !a.recorder.IsRecording() {
		return
	}
	a.recorder.Stop()

	if err := a.recorder.Save(a.opts.RecordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", a.opts.RecordPath, a.recorder.FrameCount())
}

// checkpoint writes the recording so far and keeps recording
func (a *Arcade) checkpoint() {
	if a.recorder == nil || !a.recorder.IsRecording() {
		return
	}
	if err := a.recorder.Save(a.opts.RecordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording checkpoint: %s (%d frames)", a.opts.RecordPath, a.recorder.FrameCount())
}

// Update advances the session one frame (implements scene.Scene)
func (a *Arcade) Update(dt float64) (scene.Scene, error) {
	// F5: save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.checkpoint()
	}

	in := a.opts.Input.GetInput()
	a.frame = a.frame.Next(in)
	s := a.session

	if id := a.frame.LevelPressed(); id != 0 && slices.Contains(s.Levels(), id) {
		if err := s.SelectLevel(id); err != nil {
			log.Printf("Failed to switch level: %v", err)
		}
	}

	mode := s.Mode()
	switch {
	case mode.Finished() && a.frame.ConfirmPressed():
		if err := s.Restart(); err != nil {
			return nil, err
		}
	case (mode.Finished() || mode == state.StatePaused) && a.frame.BackPressed():
		s.ReturnToMenu()
	}

	if s.Mode() == state.StateMainMenu {
		if a.opts.OnMenu == nil {
			return nil, ebiten.Termination
		}
		return a.opts.OnMenu(), nil
	}

	// recorded before the tick so the frame that ends a run is saved with it
	if a.recorder != nil {
		a.recorder.RecordFrame(in)
	}
	s.Tick(dt, in)

	if a.scoreFlash > 0 {
		a.scoreFlash -= dt
	}
	return nil, nil
}

// Draw renders the level, the actors and the HUD
func (a *Arcade) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	s := a.session
	level := s.Level()
	if level == nil {
		return
	}

	var target mgl64.Vec3
	if p := s.Player(); p != nil {
		target = p.Position
	}
	cam := NewCamera(s.Camera(), target, a.screenW, a.screenH)

	a.drawPlatforms(screen, cam, level)
	a.drawLadders(screen, cam, level)
	a.drawGoal(screen, cam, level.Goal)
	a.drawBarrels(screen, cam)
	a.drawPlayer(screen, cam)
	a.drawUI(screen)

	switch s.Mode() {
	case state.StatePaused:
		a.drawPauseOverlay(screen)
	case state.StateGameOver:
		a.drawEndOverlay(screen, "GAME OVER")
	case state.StateWin:
		a.drawEndOverlay(screen, "YOU WIN!")
	}
}

func strokeLine(screen *ebiten.Image, cam Camera, from, to mgl64.Vec3, width float32, c color.Color) {
	x0, y0, ok0 := cam.Project(from)
	x1, y1, ok1 := cam.Project(to)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, c, false)
}

func (a *Arcade) drawPlatforms(screen *ebiten.Image, cam Camera, level *entity.Level) {
	for _, p := range level.Platforms {
		front := p.Depth + level.LaneDepth
		back := p.Depth - level.LaneDepth
		strokeLine(screen, cam, mgl64.Vec3{p.XMin, p.Height, front}, mgl64.Vec3{p.XMax, p.Height, front}, 3, colorGirder)
		strokeLine(screen, cam, mgl64.Vec3{p.XMin, p.Height, back}, mgl64.Vec3{p.XMax, p.Height, back}, 1, colorGirder)
	}
}

// platformDepth returns the lane depth of the platform at height covering x
func platformDepth(level *entity.Level, height, x float64) float64 {
	if p, ok := level.PlatformAt(height, x); ok {
		return p.Depth
	}
	return 0
}

func (a *Arcade) drawLadders(screen *ebiten.Image, cam Camera, level *entity.Level) {
	const rungs = 5
	for _, ld := range level.Ladders {
		zLow := platformDepth(level, ld.Height, ld.Mid())
		zHigh := platformDepth(level, ld.Top(), ld.Mid())
		for _, x := range []float64{ld.XMin, ld.XMax} {
			strokeLine(screen, cam, mgl64.Vec3{x, ld.Height, zLow}, mgl64.Vec3{x, ld.Top(), zHigh}, 2, colorLadder)
		}
		for i := 1; i < rungs; i++ {
			t := float64(i) / rungs
			y := ld.Height + t*entity.LadderRise
			z := zLow + t*(zHigh-zLow)
			strokeLine(screen, cam, mgl64.Vec3{ld.XMin, y, z}, mgl64.Vec3{ld.XMax, y, z}, 1, colorLadder)
		}
	}
}

func (a *Arcade) drawGoal(screen *ebiten.Image, cam Camera, goal entity.Goal) {
	if x, y, ok := cam.Project(goal.Point); ok {
		vector.DrawFilledCircle(screen, float32(x), float32(y), 3, colorGoal, false)
	}
	if x, y, ok := cam.Project(goal.Entity); ok {
		r := projectedRadius(cam, goal.Entity, a.config.Physics.Win.EntityRadius)
		vector.StrokeCircle(screen, float32(x), float32(y), r, 1, colorGoalMark, false)
	}
}

// projectedRadius returns the on-screen size of a world radius at p
func projectedRadius(cam Camera, p mgl64.Vec3, radius float64) float32 {
	_, y0, ok0 := cam.Project(p)
	_, y1, ok1 := cam.Project(p.Add(mgl64.Vec3{0, radius, 0}))
	if !ok0 || !ok1 {
		return 0
	}
	return float32(math.Abs(y1 - y0))
}

func (a *Arcade) drawBarrels(screen *ebiten.Image, cam Camera) {
	for _, b := range a.session.Barrels() {
		center := b.Position.Add(mgl64.Vec3{0, b.Lift, 0})
		x, y, ok := cam.Project(center)
		if !ok {
			continue
		}
		r := projectedRadius(cam, center, b.Radius)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, colorBarrel, false)

		// spoke shows the roll
		sx := x + float64(r)*math.Cos(b.Roll)
		sy := y + float64(r)*math.Sin(b.Roll)
		vector.StrokeLine(screen, float32(x), float32(y), float32(sx), float32(sy), 1, colorBG, false)
	}
}

func (a *Arcade) drawPlayer(screen *ebiten.Image, cam Camera) {
	p := a.session.Player()
	if p == nil {
		return
	}
	x0, y0, x1, y1, ok := cam.ProjectBox(p.Bounds())
	if !ok {
		return
	}

	c := colorPlayer
	if p.Appearance == entity.AppearanceDead {
		c = colorDead
	}
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), c, false)
}

func (a *Arcade) drawUI(screen *ebiten.Image) {
	s := a.session

	scoreText := fmt.Sprintf("SCORE %d", s.Score())
	if a.scoreFlash > 0 {
		scoreText += "  +"
	}
	ebitenutil.DebugPrintAt(screen, scoreText, 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d/%d  TIME %.1f  CAM %s",
		s.LevelID(), len(s.Levels()), s.Clock(), s.Camera()), 10, 24)

	if a.recorder != nil && a.recorder.IsRecording() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", a.recorder.FrameCount()), a.screenW-70, 10)
	}
}

func (a *Arcade) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(a.screenW), float64(a.screenH), colorOverlay)

	text := "PAUSED\n\nP: resume  Q: menu"
	if left := a.session.ResumeRemaining(); left > 0 {
		text = fmt.Sprintf("RESUME IN %d", int(math.Ceil(left)))
	}
	ebitenutil.DebugPrintAt(screen, text, a.screenW/2-60, a.screenH/2-20)
}

func (a *Arcade) drawEndOverlay(screen *ebiten.Image, title string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(a.screenW), float64(a.screenH), colorOverlay)

	text := fmt.Sprintf("%s\n\nScore: %d\n\nENTER: retry  Q: menu", title, a.session.Score())
	ebitenutil.DebugPrintAt(screen, text, a.screenW/2-70, a.screenH/2-30)
}

// OnEnter ignores keys already held when the scene starts
func (a *Arcade) OnEnter() {
	a.frame = system.InputFrame{Current: a.opts.Input.GetInput()}
}

// OnExit keeps an unfinished recording
func (a *Arcade) OnExit() {
	a.saveRecording()
}
