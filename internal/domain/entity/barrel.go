package entity

import "github.com/go-gl/mathgl/mgl64"

// BarrelState is the barrel AI state for the current tick
type BarrelState int

const (
	BarrelAirborne BarrelState = iota
	BarrelPatrolling
	BarrelDescending
)

// String returns the state name
func (s BarrelState) String() string {
	switch s {
	case BarrelAirborne:
		return "airborne"
	case BarrelPatrolling:
		return "patrolling"
	case BarrelDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// Barrel represents a rolling barrel
type Barrel struct {
	Body

	State         BarrelState
	PatrolSpeed   float64 // absolute patrol speed, units per tick
	PlatformIndex int     // descents performed so far
	Roll          float64 // accumulated roll angle (rendering only)
	Radius        float64

	Scored   bool // jump-over already awarded
	Collided bool // death collision already resolved

	savedVelocity mgl64.Vec3
	frozen        bool
}

// NewBarrel creates a barrel at origin rolling toward +x
func NewBarrel(id EntityID, origin mgl64.Vec3, speed, radius float64) *Barrel {
	return &Barrel{
		Body: Body{
			ID:       id,
			Kind:     KindBarrel,
			Position: origin,
			Velocity: mgl64.Vec3{speed, 0, 0},
			Extents:  mgl64.Vec3{radius * 1.4, radius * 1.4, radius * 1.4},
			Lift:     radius,
		},
		State:       BarrelAirborne,
		PatrolSpeed: speed,
		Radius:      radius,
	}
}

// PatrolDirection returns the patrol sign for the current platform index.
// Even indices roll toward +x, odd toward -x.
func (b *Barrel) PatrolDirection() float64 {
	if b.PlatformIndex%2 == 0 {
		return 1
	}
	return -1
}

// Descend drops the barrel one platform and flips its patrol direction
func (b *Barrel) Descend(depthShift float64) {
	b.Position[1] -= LadderRise
	b.Position[2] += depthShift
	b.PlatformIndex++
	b.Velocity[0] = b.PatrolSpeed * b.PatrolDirection()
	b.Velocity[1] = 0
	b.Platform = nil
	b.State = BarrelDescending
}

// Freeze snapshots and zeroes the velocity; repeated calls keep the first snapshot
func (b *Barrel) Freeze() {
	if b.frozen {
		return
	}
	b.savedVelocity = b.Velocity
	b.Velocity = mgl64.Vec3{}
	b.frozen = true
}

// Thaw restores the velocity saved by Freeze
func (b *Barrel) Thaw() {
	if !b.frozen {
		return
	}
	b.Velocity = b.savedVelocity
	b.frozen = false
}

// Frozen reports whether the barrel is frozen
func (b *Barrel) Frozen() bool {
	return b.frozen
}
