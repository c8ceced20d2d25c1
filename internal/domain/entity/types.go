package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityID is a unique identifier for an entity (never recycled within a session)
type EntityID uint32

// Kind tags which record an actor carries
type Kind int

const (
	KindPlayer Kind = iota
	KindBarrel
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBarrel:
		return "barrel"
	default:
		return "unknown"
	}
}

// Platform is a walkable horizontal band at a fixed height.
// Depth is the lane z coordinate actors are snapped to while on it.
type Platform struct {
	Height float64
	XMin   float64
	XMax   float64
	Depth  float64
}

// ContainsX reports whether x lies inside the platform's horizontal extent
func (p Platform) ContainsX(x float64) bool {
	return x >= p.XMin && x <= p.XMax
}

// Ladder connects the platform at Height with the one LadderRise above it
type Ladder struct {
	XMin   float64
	XMax   float64
	Height float64
}

// LadderRise is the vertical distance between two connected platforms
const LadderRise = 3.0

// Top returns the height of the upper platform
func (l Ladder) Top() float64 {
	return l.Height + LadderRise
}

// Mid returns the horizontal midpoint of the ladder window
func (l Ladder) Mid() float64 {
	return (l.XMin + l.XMax) / 2
}

// ContainsX reports whether x lies inside the ladder window
func (l Ladder) ContainsX(x float64) bool {
	return x >= l.XMin && x <= l.XMax
}

// Bounds are the horizontal world limits and the world floor
type Bounds struct {
	XMin   float64
	XMax   float64
	FloorY float64
}

// ClampX clamps x into [XMin, XMax], reporting whether it was clamped
func (b Bounds) ClampX(x float64) (float64, bool) {
	if x < b.XMin {
		return b.XMin, true
	}
	if x > b.XMax {
		return b.XMax, true
	}
	return x, false
}

// Goal describes both win triggers of a level
type Goal struct {
	Point  mgl64.Vec3 // exact goal coordinate
	Entity mgl64.Vec3 // secondary goal entity position
}

// Level is the immutable geometry registry of one level.
// Platforms are kept sorted by ascending height.
type Level struct {
	ID          int
	Name        string
	Bounds      Bounds
	LaneDepth   float64 // half depth of each platform slab
	Platforms   []Platform
	Ladders     []Ladder
	PlayerSpawn mgl64.Vec3
	BarrelSpawn mgl64.Vec3
	Goal        Goal
}

// Heights returns the distinct legal platform heights in ascending order
func (l *Level) Heights() []float64 {
	heights := make([]float64, 0, len(l.Platforms))
	for _, p := range l.Platforms {
		if len(heights) > 0 && heights[len(heights)-1] == p.Height {
			continue
		}
		heights = append(heights, p.Height)
	}
	return heights
}

// LowestHeight returns the lowest legal platform height
func (l *Level) LowestHeight() float64 {
	if len(l.Platforms) == 0 {
		return l.Bounds.FloorY
	}
	return l.Platforms[0].Height
}

// NearestHeight returns the legal height closest to y and its distance
func (l *Level) NearestHeight(y float64) (float64, float64) {
	best := math.Inf(1)
	height := y
	for _, p := range l.Platforms {
		if d := math.Abs(y - p.Height); d < best {
			best = d
			height = p.Height
		}
	}
	return height, best
}

// NextHeightAbove returns the lowest legal height strictly above y
func (l *Level) NextHeightAbove(y float64) (float64, bool) {
	for _, p := range l.Platforms {
		if p.Height > y {
			return p.Height, true
		}
	}
	return 0, false
}

// PlatformAt returns the platform at the given height covering x
func (l *Level) PlatformAt(height, x float64) (*Platform, bool) {
	for i := range l.Platforms {
		p := &l.Platforms[i]
		if p.Height == height && p.ContainsX(x) {
			return p, true
		}
	}
	return nil, false
}

// LadderUp returns the ladder leading up from an actor at (x, y).
// band is the vertical tolerance around the ladder's lower platform.
func (l *Level) LadderUp(x, y, band float64) (*Ladder, bool) {
	for i := range l.Ladders {
		ld := &l.Ladders[i]
		if ld.ContainsX(x) && math.Abs(y-ld.Height) <= band {
			return ld, true
		}
	}
	return nil, false
}

// LadderDown returns the ladder leading down from an actor at (x, y)
func (l *Level) LadderDown(x, y, band float64) (*Ladder, bool) {
	for i := range l.Ladders {
		ld := &l.Ladders[i]
		if ld.ContainsX(x) && math.Abs(y-ld.Top()) <= band {
			return ld, true
		}
	}
	return nil, false
}
