package system

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// BarrelSimulator spawns barrels and drives their patrol/descent AI
type BarrelSimulator struct {
	config   config.BarrelConfig
	entity   config.BarrelEntity
	band     float64
	detector *GroundDetector
	level    *entity.Level
	rng      *rand.Rand
}

// NewBarrelSimulator creates a barrel simulator.
// rng must be seeded by the caller so runs can be replayed.
func NewBarrelSimulator(cfg *config.GameConfig, detector *GroundDetector, level *entity.Level, rng *rand.Rand) *BarrelSimulator {
	return &BarrelSimulator{
		config:   cfg.Physics.Barrel,
		entity:   cfg.Entities.Barrel,
		band:     cfg.Physics.Ladder.HeightBand,
		detector: detector,
		level:    level,
		rng:      rng,
	}
}

// Spawn creates a barrel at the level's barrel origin
func (s *BarrelSimulator) Spawn(id entity.EntityID) *entity.Barrel {
	var origin mgl64.Vec3
	if s.level != nil {
		origin = s.level.BarrelSpawn
	}
	return entity.NewBarrel(id, origin, s.entity.PatrolSpeed, s.entity.Radius)
}

// Update advances every barrel by one tick and returns the barrels still in
// play. Barrels that fell below the lowest platform are dropped.
func (s *BarrelSimulator) Update(barrels []*entity.Barrel) (alive []*entity.Barrel, removed int) {
	alive = barrels[:0]
	for _, b := range barrels {
		if b == nil {
			continue
		}
		s.step(b)
		if s.level != nil && b.Y() < s.level.LowestHeight() {
			removed++
			continue
		}
		alive = append(alive, b)
	}
	// drop stale pointers past the new length
	for i := len(alive); i < len(barrels); i++ {
		barrels[i] = nil
	}
	return alive, removed
}

func (s *BarrelSimulator) step(b *entity.Barrel) {
	if b.Frozen() || s.detector == nil {
		return
	}

	ground := s.detector.DetectBarrel(b.Position)
	if !ground.Grounded {
		s.fall(b, ground)
		return
	}

	b.Velocity[1] = 0
	plat := ground.Platform
	height := ground.Hit.Point[1]
	if plat != nil {
		height = plat.Height
	}
	b.Platform = plat

	if s.level != nil {
		if ladder, ok := s.level.LadderDown(b.X(), height, s.band); ok && s.rng.Float64() < s.config.DescendChance {
			b.Position[0] = ladder.Mid()
			b.Position[1] = height
			b.Descend(s.config.DepthShift)
			return
		}
	}

	s.patrol(b, height, plat)
}

// fall integrates an airborne barrel, landing it exactly on the surface it
// would otherwise pass through this tick
func (s *BarrelSimulator) fall(b *entity.Barrel, ground GroundResult) {
	b.State = entity.BarrelAirborne
	b.Platform = nil

	b.Velocity[1] += s.config.Gravity
	if b.Velocity[1] < s.config.MinFallVelocity {
		b.Velocity[1] = s.config.MinFallVelocity
	}

	b.Position[0] += b.Velocity[0]
	if ground.HasHit && ground.Gap+b.Velocity[1] <= 0 {
		b.Position[1] = ground.Hit.Point[1]
	} else {
		b.Position[1] += b.Velocity[1]
	}

	if s.level != nil {
		b.Position[0], _ = s.level.Bounds.ClampX(b.X())
	}
}

func (s *BarrelSimulator) patrol(b *entity.Barrel, height float64, plat *entity.Platform) {
	b.State = entity.BarrelPatrolling
	b.Position[0] += b.Velocity[0]
	b.Position[1] = height
	if plat != nil {
		b.Position[2] = plat.Depth
	}
	if b.Radius > 0 {
		b.Roll += b.Velocity[0] / b.Radius
	}

	if s.level == nil {
		return
	}
	if x, clamped := s.level.Bounds.ClampX(b.X()); clamped {
		b.Position[0] = x
		b.Descend(s.config.DepthShift)
	}
}
