package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/barrelrun/internal/domain/entity"
)

// SlabThickness is the vertical thickness of generated platform surfaces
const SlabThickness = 0.2

// Surface is a collidable box, optionally backed by a platform
type Surface struct {
	Box      entity.Box
	Platform *entity.Platform // nil for decorative geometry
}

// Hit describes the nearest surface below a ray origin
type Hit struct {
	Point    mgl64.Vec3
	Distance float64
	Surface  *Surface
}

// Raycaster answers downward ray queries over the collidable geometry
type Raycaster interface {
	CastDown(origin mgl64.Vec3, maxDist float64) (Hit, bool)
}

// SurfaceSet is the registered collidable-object list
type SurfaceSet struct {
	surfaces []*Surface
}

// NewSurfaceSet creates an empty surface set
func NewSurfaceSet() *SurfaceSet {
	return &SurfaceSet{}
}

// Add registers a surface
func (s *SurfaceSet) Add(surface *Surface) {
	s.surfaces = append(s.surfaces, surface)
}

// Clear removes every surface
func (s *SurfaceSet) Clear() {
	s.surfaces = s.surfaces[:0]
}

// Len returns the number of registered surfaces
func (s *SurfaceSet) Len() int {
	return len(s.surfaces)
}

// AddLevel registers one slab per platform of the level
func (s *SurfaceSet) AddLevel(lvl *entity.Level) {
	for i := range lvl.Platforms {
		p := &lvl.Platforms[i]
		s.Add(&Surface{
			Box: entity.Box{
				Min: mgl64.Vec3{p.XMin, p.Height - SlabThickness, p.Depth - lvl.LaneDepth},
				Max: mgl64.Vec3{p.XMax, p.Height, p.Depth + lvl.LaneDepth},
			},
			Platform: p,
		})
	}
}

// CastDown returns the nearest surface top at or below origin whose footprint
// contains the ray. Surfaces whose top is not below the origin are ignored.
func (s *SurfaceSet) CastDown(origin mgl64.Vec3, maxDist float64) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, surf := range s.surfaces {
		if !surf.Box.ContainsXZ(origin) {
			continue
		}
		top := surf.Box.Top()
		if top >= origin[1] {
			continue
		}
		d := origin[1] - top
		if d > maxDist || d >= best.Distance {
			continue
		}
		best = Hit{
			Point:    mgl64.Vec3{origin[0], top, origin[2]},
			Distance: d,
			Surface:  surf,
		}
		found = true
	}
	return best, found
}
