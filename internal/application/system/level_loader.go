package system

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into an immutable Level registry
func LoadLevel(cfg *config.LevelConfig) *entity.Level {
	platforms := make([]entity.Platform, 0, len(cfg.Platforms))
	for _, p := range cfg.Platforms {
		platforms = append(platforms, entity.Platform{
			Height: p.Height,
			XMin:   p.XMin,
			XMax:   p.XMax,
			Depth:  p.Depth,
		})
	}
	sort.SliceStable(platforms, func(i, j int) bool {
		return platforms[i].Height < platforms[j].Height
	})

	ladders := make([]entity.Ladder, 0, len(cfg.Ladders))
	for _, l := range cfg.Ladders {
		ladders = append(ladders, entity.Ladder{XMin: l.XMin, XMax: l.XMax, Height: l.Height})
	}

	return &entity.Level{
		ID:   cfg.ID,
		Name: cfg.Name,
		Bounds: entity.Bounds{
			XMin:   cfg.Bounds.XMin,
			XMax:   cfg.Bounds.XMax,
			FloorY: cfg.Bounds.FloorY,
		},
		LaneDepth:   cfg.LaneDepth,
		Platforms:   platforms,
		Ladders:     ladders,
		PlayerSpawn: point(cfg.PlayerSpawn),
		BarrelSpawn: point(cfg.BarrelSpawn),
		Goal: entity.Goal{
			Point:  point(cfg.Goal.Point),
			Entity: point(cfg.Goal.Entity),
		},
	}
}

func point(p config.PointConfig) mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// LoadLevels converts every level config, keyed by level id
func LoadLevels(cfgs map[int]*config.LevelConfig) map[int]*entity.Level {
	levels := make(map[int]*entity.Level, len(cfgs))
	for id, cfg := range cfgs {
		levels[id] = LoadLevel(cfg)
	}
	return levels
}
