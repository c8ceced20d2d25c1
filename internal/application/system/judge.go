package system

import (
	"github.com/younwookim/barrelrun/internal/domain/entity"
	"github.com/younwookim/barrelrun/internal/infrastructure/config"
)

// Verdict is the judge's ruling for one tick
type Verdict struct {
	Points int               // score awarded this tick
	Scored []entity.EntityID // barrels jumped over this tick
	Died   bool
	Killer entity.EntityID
}

// Judge resolves player/barrel contacts and win triggers
type Judge struct {
	scoring config.ScoringConfig
	win     config.WinConfig
}

// NewJudge creates a judge
func NewJudge(cfg *config.PhysicsConfig) *Judge {
	return &Judge{scoring: cfg.Scoring, win: cfg.Win}
}

// Evaluate checks every barrel against the player.
// Each barrel scores at most once and kills at most once.
func (j *Judge) Evaluate(p *entity.Player, barrels []*entity.Barrel) Verdict {
	var v Verdict
	if p == nil {
		return v
	}

	playerBox := p.Bounds()
	for _, b := range barrels {
		if b == nil {
			continue
		}

		if !b.Scored && j.jumpedOver(p, b) {
			b.Scored = true
			v.Points += j.scoring.JumpOverPoints
			v.Scored = append(v.Scored, b.ID)
		}

		if b.Collided || v.Died {
			continue
		}
		if !playerBox.Intersects(b.Bounds()) {
			continue
		}
		if p.Position.Sub(b.Position).Len() > j.scoring.DeathDistance {
			continue
		}
		if p.Airborne() && j.clearsAbove(p, b) {
			continue
		}
		b.Collided = true
		v.Died = true
		v.Killer = b.ID
	}
	return v
}

// clearsAbove reports whether the player is high enough above the barrel and
// close enough horizontally to count as passing over it
func (j *Judge) clearsAbove(p *entity.Player, b *entity.Barrel) bool {
	if p.Y()-b.Y() <= j.scoring.JumpOverMargin {
		return false
	}
	return within(p.X(), b.X(), j.scoring.HorizontalTolerance) &&
		within(p.Z(), b.Z(), j.scoring.DepthTolerance)
}

func (j *Judge) jumpedOver(p *entity.Player, b *entity.Barrel) bool {
	if !j.clearsAbove(p, b) {
		return false
	}
	return p.Position.Sub(b.Position).Len() <= j.scoring.MaxDistance
}

// CheckWin tests both goal triggers. The goal point is checked first; the
// goal entity trigger also swaps the player to the dead appearance.
func (j *Judge) CheckWin(p *entity.Player, goal entity.Goal) (WinTrigger, bool) {
	if p == nil {
		return 0, false
	}
	if p.Position.Sub(goal.Point).Len() <= j.win.GoalTolerance {
		return WinGoalPoint, true
	}
	if p.Position.Sub(goal.Entity).Len() <= j.win.EntityRadius {
		p.Appearance = entity.AppearanceDead
		return WinGoalEntity, true
	}
	return 0, false
}
