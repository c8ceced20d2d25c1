package entity

import "github.com/go-gl/mathgl/mgl64"

// Animation is the player's animation clip
type Animation int

const (
	AnimIdle Animation = iota
	AnimWalk
)

// Appearance selects the player's texture
type Appearance int

const (
	AppearanceNormal Appearance = iota
	AppearanceDead
)

// Player represents the player entity
type Player struct {
	Body

	Animation  Animation
	Appearance Appearance

	JumpCount int // jumps started since the last reset
}

// NewPlayer creates a player standing at spawn
func NewPlayer(id EntityID, spawn, extents mgl64.Vec3) *Player {
	p := &Player{
		Body: Body{
			ID:      id,
			Kind:    KindPlayer,
			Extents: extents,
			Lift:    extents[1],
		},
	}
	p.Reset(spawn)
	return p
}

// Reset puts the player back at spawn with default pose and texture
func (p *Player) Reset(spawn mgl64.Vec3) {
	p.Teleport(spawn)
	p.Yaw = 0
	p.Animation = AnimIdle
	p.Appearance = AppearanceNormal
	p.JumpCount = 0
}

// Airborne reports whether the player is off the ground
func (p *Player) Airborne() bool {
	return !p.Grounded
}
