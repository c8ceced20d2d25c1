package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// JumpState tracks the jump in progress.
// VelocityX is captured at takeoff and applied for the whole jump.
type JumpState struct {
	Active    bool
	StartedAt float64 // simulation seconds
	Duration  float64 // seconds
	VelocityX float64 // units per tick
	Queued    bool    // fire once allowed, while the key stays held
}

// Elapsed reports whether the jump outlived its duration at time now
func (j JumpState) Elapsed(now float64) bool {
	return now-j.StartedAt >= j.Duration
}

// Body is the physical state shared by every actor kind.
// Position is the actor's feet point; velocities are units per tick.
type Body struct {
	ID       EntityID
	Kind     Kind
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Yaw      float64 // radians around Y

	Grounded bool
	Platform *Platform // platform under the actor, nil while airborne
	Jump     JumpState

	Extents mgl64.Vec3 // bounding box half extents
	Lift    float64    // box center height above the feet
}

// X returns the horizontal coordinate
func (b *Body) X() float64 { return b.Position[0] }

// Y returns the vertical coordinate
func (b *Body) Y() float64 { return b.Position[1] }

// Z returns the depth coordinate
func (b *Body) Z() float64 { return b.Position[2] }

// Bounds returns the world-space bounding box
func (b *Body) Bounds() Box {
	return BoxAround(b.Position.Add(mgl64.Vec3{0, b.Lift, 0}), b.Extents)
}

// FaceX turns the actor toward the sign of dx
func (b *Body) FaceX(dx float64) {
	if dx > 0 {
		b.Yaw = math.Pi / 2
	} else if dx < 0 {
		b.Yaw = -math.Pi / 2
	}
}

// Teleport moves the actor and drops every motion state
func (b *Body) Teleport(pos mgl64.Vec3) {
	b.Position = pos
	b.Velocity = mgl64.Vec3{}
	b.Grounded = false
	b.Platform = nil
	b.Jump = JumpState{}
}
