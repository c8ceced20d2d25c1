package system

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Ground: config.GroundConfig{
			RayLift:         0.5,
			Threshold:       0.15,
			BarrelThreshold: 0.2,
			HeightTolerance: 0.5,
		},
		Movement: config.MovementConfig{
			Gravity:         -0.01,
			MinFallVelocity: -0.3,
			WalkSpeed:       0.08,
			AirSpeed:        0.04,
			SnapDistance:    0.5,
			HeadMargin:      0.5,
			HeadClearance:   0.5,
		},
		Jump: config.JumpConfig{
			Force:           0.2,
			Duration:        0.75,
			Cooldown:        0.2,
			Nudge:           0.1,
			HorizontalSpeed: 0.06,
		},
		Ladder: config.LadderConfig{
			ClimbUp:    3.1,
			ClimbDown:  3,
			DepthShift: 1.8,
			HeightBand: 0.5,
		},
		Barrel: config.BarrelConfig{
			SpawnInterval:   3,
			DescendChance:   0.1,
			DepthShift:      1.8,
			Gravity:         -0.01,
			MinFallVelocity: -0.3,
		},
		Scoring: config.ScoringConfig{
			JumpOverPoints:      100,
			JumpOverMargin:      1.0,
			HorizontalTolerance: 1.0,
			DepthTolerance:      1.5,
			MaxDistance:         3.0,
			DeathDistance:       0.8,
		},
		Win: config.WinConfig{
			GoalTolerance: 0.5,
			EntityRadius:  1.5,
		},
		Pause: config.PauseConfig{ResumeCountdown: 3},
	}
}

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: createTestPhysicsConfig(),
		Entities: &config.EntitiesConfig{
			Player: config.PlayerConfig{HalfExtents: [3]float64{0.4, 0.9, 0.4}},
			Barrel: config.BarrelEntity{Radius: 0.5, PatrolSpeed: 0.025},
		},
	}
}

// createTestLevel builds seven full-width girders connected by ladders
func createTestLevel() *entity.Level {
	heights := []float64{-10, -7, -4, -1, 2, 5, 8}
	platforms := make([]entity.Platform, 0, len(heights))
	for i, h := range heights {
		platforms = append(platforms, entity.Platform{
			Height: h,
			XMin:   -10,
			XMax:   12,
			Depth:  10.8 - 1.8*float64(i),
		})
	}

	return &entity.Level{
		ID:        1,
		Name:      "test",
		Bounds:    entity.Bounds{XMin: -10, XMax: 12, FloorY: -10},
		LaneDepth: 2,
		Platforms: platforms,
		Ladders: []entity.Ladder{
			{XMin: 9, XMax: 10.5, Height: -10},
			{XMin: -8.5, XMax: -7, Height: -7},
			{XMin: 9, XMax: 10.5, Height: -4},
			{XMin: -8.5, XMax: -7, Height: -1},
			{XMin: 9, XMax: 10.5, Height: 2},
			{XMin: -8.5, XMax: -7, Height: 5},
		},
		PlayerSpawn: mgl64.Vec3{-8, -10, 10.8},
		BarrelSpawn: mgl64.Vec3{-6, 8.5, 0},
		Goal: entity.Goal{
			Point:  mgl64.Vec3{-9, 8, 0},
			Entity: mgl64.Vec3{-9.5, 8.5, 0},
		},
	}
}

func createTestDetector(level *entity.Level) *GroundDetector {
	surfaces := NewSurfaceSet()
	surfaces.AddLevel(level)
	return NewGroundDetector(createTestPhysicsConfig().Ground, surfaces, level)
}

func createTestPlayer(pos mgl64.Vec3) *entity.Player {
	return entity.NewPlayer(1, pos, mgl64.Vec3{0.4, 0.9, 0.4})
}

// fixedSource always yields the same value so probability gates are deterministic
type fixedSource struct{ f float64 }

func (s fixedSource) Int63() int64 { return int64(s.f * (1 << 63)) }

func (s fixedSource) Seed(int64) {}

// fixedRand returns a generator whose Float64 is always f (0 <= f < 1)
func fixedRand(f float64) *rand.Rand {
	return rand.New(fixedSource{f: f})
}
