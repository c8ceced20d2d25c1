package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, -0.01, cfg.Movement.Gravity)
	assert.Equal(t, -0.3, cfg.Movement.MinFallVelocity)
	assert.Equal(t, 0.2, cfg.Jump.Cooldown)
	assert.Equal(t, 3.1, cfg.Ladder.ClimbUp)
	assert.Equal(t, 3.0, cfg.Barrel.SpawnInterval)
	assert.Equal(t, 100, cfg.Scoring.JumpOverPoints)
	assert.Equal(t, 0.8, cfg.Scoring.DeathDistance)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, [3]float64{0.4, 0.9, 0.4}, cfg.Player.HalfExtents)
	assert.Equal(t, 0.025, cfg.Barrel.PatrolSpeed)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadLevel(1)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.ID)
	assert.Equal(t, "Girders", cfg.Name)
	assert.Equal(t, -10.0, cfg.Bounds.XMin)
	assert.Equal(t, 12.0, cfg.Bounds.XMax)
	require.Len(t, cfg.Platforms, 7)
	assert.Equal(t, 8.0, cfg.Platforms[6].Height)
	assert.Len(t, cfg.Ladders, 6)
	assert.Equal(t, -8.0, cfg.PlayerSpawn.X)
	assert.Equal(t, -9.0, cfg.Goal.Point.X)
}

func TestLoader_LoadLevel_Unknown(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	_, err := loader.LoadLevel(99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLoader_LoadLevel_Invalid(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level3.yaml": {Data: []byte("id: 4\nplatforms:\n  - {height: 0, xMin: 0, xMax: 1}\n")},
		"levels/level5.yaml": {Data: []byte("id: 5\nname: empty\n")},
		"levels/level6.yaml": {Data: []byte("id: [\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadLevel(3)
	assert.ErrorContains(t, err, "declares id 4")

	_, err = loader.LoadLevel(5)
	assert.ErrorContains(t, err, "no platforms")

	_, err = loader.LoadLevel(6)
	assert.ErrorContains(t, err, "failed to parse level 6")
}

func TestLoader_LoadLevels(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	levels, err := loader.LoadLevels(1, 2)
	require.NoError(t, err)
	assert.Len(t, levels, 2)
	assert.Equal(t, "Broken Girders", levels[2].Name)

	_, err = loader.LoadLevels(1, 7)
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
}

func TestLoader_MissingFiles(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "mem")

	_, err := loader.LoadAll()
	assert.ErrorContains(t, err, "physics.json")
}
