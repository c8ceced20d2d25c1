package system

import (
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// MotionResult reports what happened to the player this tick
type MotionResult struct {
	Jumped  bool
	Landed  bool
	Climbed int // +1 up, -1 down, 0 none
	Clamped bool
}

// MotionController integrates the player's movement one tick at a time
type MotionController struct {
	movement config.MovementConfig
	jump     config.JumpConfig
	ladder   config.LadderConfig
	level    *entity.Level
}

// NewMotionController creates a motion controller for a level
func NewMotionController(cfg *config.PhysicsConfig, level *entity.Level) *MotionController {
	return &MotionController{
		movement: cfg.Movement,
		jump:     cfg.Jump,
		ladder:   cfg.Ladder,
		level:    level,
	}
}

// Update advances the player by one tick.
// ground must come from the detector for the player's current position.
func (c *MotionController) Update(p *entity.Player, ground GroundResult, in InputFrame, cam CameraMode, now float64) MotionResult {
	var res MotionResult
	if p == nil {
		return res
	}

	wasGrounded := p.Grounded
	p.Grounded = ground.Grounded
	p.Platform = nil
	if p.Grounded {
		p.Platform = ground.Platform
	}

	if p.Jump.Active && p.Jump.Elapsed(now) {
		p.Jump.Active = false
	}

	if !p.Grounded {
		c.applyGravity(p)
	} else {
		if !wasGrounded {
			c.land(p)
			res.Landed = true
		} else if p.Velocity[1] < 0 {
			p.Velocity[1] = 0
		}
	}

	walk, _ := Axes(in.Current, cam)

	// Jump: edge-triggered; a grounded press that cannot fire yet is queued
	// for as long as the key stays held
	switch {
	case in.JumpPressed():
		if c.canJump(p, now) {
			c.startJump(p, walk, now)
			res.Jumped = true
		} else if p.Grounded {
			p.Jump.Queued = true
		}
	case p.Jump.Queued && !in.Current.Jump:
		p.Jump.Queued = false
	case p.Jump.Queued && c.canJump(p, now):
		c.startJump(p, walk, now)
		res.Jumped = true
	}

	c.moveHorizontal(p, walk)

	if p.Grounded && !p.Jump.Active {
		res.Climbed = c.climb(p, in.ClimbPressed(cam))
	}

	if !p.Grounded {
		p.Position[1] += p.Velocity[1]
		c.avoidHeadBump(p)
	}

	res.Clamped = c.clamp(p)
	return res
}

func (c *MotionController) applyGravity(p *entity.Player) {
	p.Velocity[1] += c.movement.Gravity
	if p.Velocity[1] < c.movement.MinFallVelocity {
		p.Velocity[1] = c.movement.MinFallVelocity
	}
}

// land zeroes the fall, snaps onto the nearest legal height and the lane of
// the platform underneath, and ends the jump
func (c *MotionController) land(p *entity.Player) {
	p.Velocity[1] = 0
	p.Jump.Active = false
	if c.level == nil {
		return
	}
	height, dist := c.level.NearestHeight(p.Y())
	if dist <= c.movement.SnapDistance {
		p.Position[1] = height + c.movement.LandingOffset
	}
	if p.Platform != nil {
		p.Position[2] = p.Platform.Depth
	}
}

func (c *MotionController) canJump(p *entity.Player, now float64) bool {
	if !p.Grounded || p.Jump.Active {
		return false
	}
	return p.JumpCount == 0 || now-p.Jump.StartedAt >= c.jump.Cooldown
}

func (c *MotionController) startJump(p *entity.Player, walk int, now float64) {
	p.Velocity[1] = c.jump.Force
	p.Jump = entity.JumpState{
		Active:    true,
		StartedAt: now,
		Duration:  c.jump.Duration,
		VelocityX: float64(walk) * c.jump.HorizontalSpeed,
	}
	p.Grounded = false
	p.Platform = nil
	p.Position[1] += c.jump.Nudge
	p.JumpCount++
}

func (c *MotionController) moveHorizontal(p *entity.Player, walk int) {
	var dx float64
	switch {
	case p.Jump.Active:
		dx = p.Jump.VelocityX
	case p.Grounded:
		dx = float64(walk) * c.movement.WalkSpeed
	default:
		dx = float64(walk) * c.movement.AirSpeed
	}

	p.Position[0] += dx
	p.FaceX(dx)

	if p.Grounded && dx != 0 {
		p.Animation = entity.AnimWalk
	} else {
		p.Animation = entity.AnimIdle
	}
}

// climb snaps the player one platform up or down when standing at a ladder
func (c *MotionController) climb(p *entity.Player, dir int) int {
	if dir == 0 || c.level == nil {
		return 0
	}

	var target float64
	switch dir {
	case 1:
		ld, ok := c.level.LadderUp(p.X(), p.Y(), c.ladder.HeightBand)
		if !ok {
			return 0
		}
		target = ld.Top()
		p.Position[1] += c.ladder.ClimbUp
		p.Position[2] -= c.ladder.DepthShift
	case -1:
		ld, ok := c.level.LadderDown(p.X(), p.Y(), c.ladder.HeightBand)
		if !ok {
			return 0
		}
		target = ld.Height
		p.Position[1] -= c.ladder.ClimbDown
		p.Position[2] += c.ladder.DepthShift
	}
	if plat, ok := c.level.PlatformAt(target, p.X()); ok {
		p.Position[2] = plat.Depth
	}

	// re-detected as a landing next tick, which snaps the height
	p.Velocity[1] = 0
	p.Grounded = false
	p.Platform = nil
	return dir
}

// avoidHeadBump keeps an ascending player from passing through the
// underside of the platform above
func (c *MotionController) avoidHeadBump(p *entity.Player) {
	if p.Velocity[1] <= 0 || c.level == nil {
		return
	}
	next, ok := c.level.NextHeightAbove(p.Y())
	if !ok {
		return
	}
	if _, covered := c.level.PlatformAt(next, p.X()); !covered {
		return
	}
	if p.Y() >= next-c.movement.HeadMargin {
		p.Position[1] = next - c.movement.HeadClearance
		p.Velocity[1] = -p.Velocity[1]
	}
}

func (c *MotionController) clamp(p *entity.Player) bool {
	if c.level == nil {
		return false
	}
	bounds := c.level.Bounds

	x, clamped := bounds.ClampX(p.X())
	p.Position[0] = x

	if p.Y() < bounds.FloorY {
		p.Position[1] = bounds.FloorY
		p.Velocity[1] = 0
		clamped = true
	}
	return clamped
}
