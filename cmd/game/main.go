package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/barrelrun/internal/application/game"
	"github.com/younwookim/barrelrun/internal/application/scene"
	"github.com/younwookim/barrelrun/internal/application/scene/arcade"
	"github.com/younwookim/barrelrun/internal/application/scene/menu"
	"github.com/younwookim/barrelrun/internal/application/system"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/audio"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// levelIDs lists every level shipped in configs/levels
var levelIDs = []int{1, 2}

// loadWorld loads the tuning files and every level from fsys
func loadWorld(fsys fs.FS) (*config.GameConfig, map[int]*entity.Level, error) {
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}

	levelCfgs, err := loader.LoadLevels(levelIDs...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, system.LoadLevels(levelCfgs), nil
}

func main() {
	// Parse command line flags
	levelFlag := flag.Int("level", 0, "Start this level directly instead of the menu (e.g., -level 2)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the outcome")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	seedFlag := flag.Int64("seed", 0, "Master seed for barrel decisions (0 = time based)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, levels, err := loadWorld(fsys)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, levels, *replayFlag, log.Writer()); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := rand.New(rand.NewSource(seed))

	sound := audio.NewSoundManager()
	sound.SetMuted(*muteFlag)
	if !sound.Muted() {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed, continuing without sound: %v", err)
		}
	}
	defer sound.Cleanup()

	display := cfg.Physics.Display
	input := system.NewInputSystem()

	// the menu and the arcade build each other; every play gets a fresh session
	var (
		toMenu  func() scene.Scene
		toLevel menu.StartFunc
	)
	toLevel = func(level int) (scene.Scene, error) {
		return arcade.New(cfg, levels, level, arcade.Options{
			Input:      input,
			Sound:      sound,
			Seed:       seeds.Int63(),
			RecordPath: *recordFlag,
			OnMenu:     toMenu,
		})
	}
	toMenu = func() scene.Scene {
		return menu.New(levelIDs, input, toLevel, display.ScreenWidth, display.ScreenHeight)
	}

	initial := toMenu()
	if *levelFlag != 0 {
		initial, err = toLevel(*levelFlag)
		if err != nil {
			log.Fatalf("Failed to start level: %v", err)
		}
	}
	if *recordFlag != "" {
		log.Printf("Recording runs to %s", *recordFlag)
	}

	g := game.New(initial, display.ScreenWidth, display.ScreenHeight, display.Framerate)
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Barrel Run")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
